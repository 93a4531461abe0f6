package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/devices/devices/dto"
	"presensiku_backend/internals/features/devices/devices/model"
	helper "presensiku_backend/internals/helpers"
)

type DeviceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDeviceController(db *gorm.DB) *DeviceController {
	return &DeviceController{DB: db, Validate: validator.New()}
}

func institutionGUIDFromToken(c *fiber.Ctx) (string, error) {
	guid, ok := c.Locals("institution_guid").(string)
	if !ok || guid == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: missing institution")
	}
	return guid, nil
}

// ✅ GET semua device institusi
func (ctrl *DeviceController) GetAll(c *fiber.Ctx) error {
	guidInstitution, err := institutionGUIDFromToken(c)
	if err != nil {
		return err
	}

	var items []model.DeviceModel
	if err := ctrl.DB.
		Where("device_institution_guid = ?", guidInstitution).
		Find(&items).Error; err != nil {
		log.Println("[ERROR] Failed to fetch devices:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch devices")
	}

	return helper.Success(c, "Success Find All Device", items)
}

// ✅ POST daftarkan device baru (mac harus belum terpakai)
func (ctrl *DeviceController) Create(c *fiber.Ctx) error {
	guidInstitution, err := institutionGUIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateDeviceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing model.DeviceModel
	err = ctrl.DB.Where("device_mac = ?", req.Mac).First(&existing).Error
	if err == nil {
		return helper.Error(c, fiber.StatusBadRequest, "Device already in use")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("[ERROR] Failed to check device mac:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to check device")
	}

	item := model.DeviceModel{
		DeviceMac:             req.Mac,
		DeviceLocation:        req.Location,
		DeviceInstitutionGUID: guidInstitution,
		DeviceStatus:          true,
		DeviceType:            req.Type,
		DeviceImage:           req.DeviceImage,
	}
	if err := ctrl.DB.Create(&item).Error; err != nil {
		log.Println("[ERROR] Failed to create device:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create device")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Success Create Device", item)
}

// ✅ PUT update device
func (ctrl *DeviceController) Update(c *fiber.Ctx) error {
	guidInstitution, err := institutionGUIDFromToken(c)
	if err != nil {
		return err
	}

	var item model.DeviceModel
	if err := ctrl.DB.
		Where("device_mac = ? AND device_institution_guid = ?", c.Params("mac"), guidInstitution).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Device not found")
		}
		log.Println("[ERROR] Failed to fetch device:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch device")
	}

	var req dto.UpdateDeviceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Location != nil {
		item.DeviceLocation = *req.Location
	}
	if req.Status != nil {
		item.DeviceStatus = *req.Status
	}
	if req.DeviceImage != nil {
		item.DeviceImage = *req.DeviceImage
	}

	if err := ctrl.DB.Save(&item).Error; err != nil {
		log.Println("[ERROR] Failed to update device:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update device")
	}

	return helper.Success(c, "Success Update Device", item)
}

// ✅ DELETE device
func (ctrl *DeviceController) Delete(c *fiber.Ctx) error {
	guidInstitution, err := institutionGUIDFromToken(c)
	if err != nil {
		return err
	}

	res := ctrl.DB.
		Where("device_mac = ? AND device_institution_guid = ?", c.Params("mac"), guidInstitution).
		Delete(&model.DeviceModel{})
	if res.Error != nil {
		log.Println("[ERROR] Failed to delete device:", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete device")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Device not found")
	}

	return helper.Success(c, "Success Delete Device", nil)
}
