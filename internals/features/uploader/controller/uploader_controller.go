package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	helper "presensiku_backend/internals/helpers"
	"presensiku_backend/internals/helpers/oss"
)

// UploaderController menerima gambar bukti presensi (check-in / check-out)
// dan menyimpannya ke OSS.
type UploaderController struct {
	OSS *oss.Client
}

func NewUploaderController() *UploaderController {
	client, err := oss.NewClient()
	if err != nil {
		log.Println("⚠️ OSS belum terkonfigurasi, upload gambar akan gagal:", err)
	}
	return &UploaderController{OSS: client}
}

// ✅ POST upload gambar bukti presensi
func (ctrl *UploaderController) UploadImage(c *fiber.Ctx) error {
	if ctrl.OSS == nil {
		return helper.Error(c, fiber.StatusServiceUnavailable, "Object storage tidak tersedia")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "File image wajib diupload")
	}

	url, err := ctrl.OSS.UploadImage(fileHeader)
	if err != nil {
		log.Println("[ERROR] Failed to upload image:", err)
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Success Upload Image", fiber.Map{
		"url": url,
	})
}

// ✅ DELETE hapus gambar berdasarkan URL (rollback upload yang batal)
func (ctrl *UploaderController) DeleteImage(c *fiber.Ctx) error {
	if ctrl.OSS == nil {
		return helper.Error(c, fiber.StatusServiceUnavailable, "Object storage tidak tersedia")
	}

	var req struct {
		URL string `json:"url"`
	}
	if err := c.BodyParser(&req); err != nil || req.URL == "" {
		return helper.Error(c, fiber.StatusBadRequest, "url wajib diisi")
	}

	if err := ctrl.OSS.DeleteByURL(req.URL); err != nil {
		log.Println("[ERROR] Failed to delete image:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete image")
	}

	return helper.Success(c, "Success Delete Image", nil)
}
