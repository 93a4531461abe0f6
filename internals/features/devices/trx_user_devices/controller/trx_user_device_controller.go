package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	deviceModel "presensiku_backend/internals/features/devices/devices/model"
	"presensiku_backend/internals/features/devices/trx_user_devices/dto"
	"presensiku_backend/internals/features/devices/trx_user_devices/model"
	userModel "presensiku_backend/internals/features/users/users/model"
	helper "presensiku_backend/internals/helpers"
)

type TrxUserDeviceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTrxUserDeviceController(db *gorm.DB) *TrxUserDeviceController {
	return &TrxUserDeviceController{DB: db, Validate: validator.New()}
}

// ✅ GET semua pairing user-device
func (ctrl *TrxUserDeviceController) GetAll(c *fiber.Ctx) error {
	var items []model.TrxUserDeviceModel
	if err := ctrl.DB.Find(&items).Error; err != nil {
		log.Println("[ERROR] Failed to fetch user devices:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch user devices")
	}
	return helper.Success(c, "Success Find All User Device", items)
}

// ✅ POST pasangkan user dengan device
func (ctrl *TrxUserDeviceController) Create(c *fiber.Ctx) error {
	var req dto.AddUserDeviceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctrl.DB.Where("user_guid = ?", req.UserGUID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		log.Println("[ERROR] Failed to fetch user:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	var device deviceModel.DeviceModel
	if err := ctrl.DB.Where("device_mac = ?", req.Mac).First(&device).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Device not found")
		}
		log.Println("[ERROR] Failed to fetch device:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch device")
	}

	// satu device hanya boleh terpasang ke satu user
	var existing model.TrxUserDeviceModel
	err := ctrl.DB.Where("trx_user_device_mac = ?", req.Mac).First(&existing).Error
	if err == nil {
		return helper.Error(c, fiber.StatusBadRequest, "Device already in use")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("[ERROR] Failed to check device pairing:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to check device pairing")
	}

	item := model.TrxUserDeviceModel{
		TrxUserDeviceUserGUID:   user.UserGUID,
		TrxUserDeviceMac:        device.DeviceMac,
		TrxUserDeviceDeviceType: req.DeviceType,
	}
	if err := ctrl.DB.Create(&item).Error; err != nil {
		log.Println("[ERROR] Failed to pair user device:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to pair user device")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Success Add User Device", item)
}

// ✅ DELETE lepas pairing
func (ctrl *TrxUserDeviceController) Delete(c *fiber.Ctx) error {
	res := ctrl.DB.
		Where("trx_user_device_guid = ?", c.Params("guid")).
		Delete(&model.TrxUserDeviceModel{})
	if res.Error != nil {
		log.Println("[ERROR] Failed to delete user device:", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete user device")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "User device not found")
	}

	return helper.Success(c, "Success Delete User Device", nil)
}
