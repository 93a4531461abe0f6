package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/scheduler/shiftings/dto"
	"presensiku_backend/internals/features/scheduler/shiftings/model"
	helper "presensiku_backend/internals/helpers"
)

type ShiftingController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewShiftingController(db *gorm.DB) *ShiftingController {
	return &ShiftingController{DB: db, Validate: validator.New()}
}

func institutionGUIDFromToken(c *fiber.Ctx) (string, error) {
	guid, ok := c.Locals("institution_guid").(string)
	if !ok || guid == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: missing institution")
	}
	return guid, nil
}

// ✅ GET semua shift milik institusi
func (ctrl *ShiftingController) GetAll(c *fiber.Ctx) error {
	guidInstitution, err := institutionGUIDFromToken(c)
	if err != nil {
		return err
	}

	var items []model.ShiftingModel
	if err := ctrl.DB.
		Where("shifting_institution_guid = ?", guidInstitution).
		Order("shifting_name ASC").
		Find(&items).Error; err != nil {
		log.Println("[ERROR] Failed to fetch shiftings:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch shiftings")
	}

	return helper.Success(c, "Success Find All Shifting", items)
}

// ✅ POST create shift
func (ctrl *ShiftingController) Create(c *fiber.Ctx) error {
	guidInstitution, err := institutionGUIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateShiftingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	item := model.ShiftingModel{
		ShiftingInstitutionGUID: guidInstitution,
		ShiftingName:            req.Name,
	}
	if err := item.SetPresenceTime(model.PresenceTime{
		CheckInTime:  model.TimeWindow{Start: req.CheckInTime.Start, End: req.CheckInTime.End, NextDay: req.CheckInTime.NextDay},
		CheckOutTime: model.TimeWindow{Start: req.CheckOutTime.Start, End: req.CheckOutTime.End, NextDay: req.CheckOutTime.NextDay},
	}); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid presence time payload")
	}

	if err := ctrl.DB.Create(&item).Error; err != nil {
		log.Println("[ERROR] Failed to create shifting:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create shifting")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Success Create Shifting", item)
}

// ✅ PUT update shift
func (ctrl *ShiftingController) Update(c *fiber.Ctx) error {
	guidInstitution, err := institutionGUIDFromToken(c)
	if err != nil {
		return err
	}

	var item model.ShiftingModel
	if err := ctrl.DB.
		Where("shifting_guid = ? AND shifting_institution_guid = ?", c.Params("guid"), guidInstitution).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Shifting not found")
		}
		log.Println("[ERROR] Failed to fetch shifting:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch shifting")
	}

	var req dto.UpdateShiftingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.Name != nil {
		item.ShiftingName = *req.Name
	}
	if req.CheckInTime != nil || req.CheckOutTime != nil {
		pt, err := item.PresenceTime()
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Corrupt presence time data")
		}
		if req.CheckInTime != nil {
			pt.CheckInTime = model.TimeWindow{Start: req.CheckInTime.Start, End: req.CheckInTime.End, NextDay: req.CheckInTime.NextDay}
		}
		if req.CheckOutTime != nil {
			pt.CheckOutTime = model.TimeWindow{Start: req.CheckOutTime.Start, End: req.CheckOutTime.End, NextDay: req.CheckOutTime.NextDay}
		}
		if err := item.SetPresenceTime(pt); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid presence time payload")
		}
	}

	if err := ctrl.DB.Save(&item).Error; err != nil {
		log.Println("[ERROR] Failed to update shifting:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update shifting")
	}

	return helper.Success(c, "Success Update Shifting", item)
}

// ✅ DELETE shift (tolak bila masih dipakai unit)
func (ctrl *ShiftingController) Delete(c *fiber.Ctx) error {
	guidInstitution, err := institutionGUIDFromToken(c)
	if err != nil {
		return err
	}

	var usedByUnits int64
	if err := ctrl.DB.Table("units").
		Where("unit_shift_guid = ? AND unit_is_deleted = ?", c.Params("guid"), false).
		Count(&usedByUnits).Error; err != nil {
		log.Println("[ERROR] Failed to check shift usage:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to check shift usage")
	}
	if usedByUnits > 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Shift masih dipakai unit aktif")
	}

	res := ctrl.DB.
		Where("shifting_guid = ? AND shifting_institution_guid = ?", c.Params("guid"), guidInstitution).
		Delete(&model.ShiftingModel{})
	if res.Error != nil {
		log.Println("[ERROR] Failed to delete shifting:", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete shifting")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Shifting not found")
	}

	return helper.Success(c, "Success Delete Shifting", nil)
}
