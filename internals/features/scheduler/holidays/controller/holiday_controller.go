package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/scheduler/holidays/dto"
	"presensiku_backend/internals/features/scheduler/holidays/model"
	helper "presensiku_backend/internals/helpers"
)

type HolidayController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewHolidayController(db *gorm.DB) *HolidayController {
	return &HolidayController{DB: db, Validate: validator.New()}
}

func institutionGUIDFromToken(c *fiber.Ctx) (string, error) {
	guid, ok := c.Locals("institution_guid").(string)
	if !ok || guid == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: missing institution")
	}
	return guid, nil
}

// ✅ GET semua hari libur institusi
func (ctrl *HolidayController) GetAll(c *fiber.Ctx) error {
	guidInstitution, err := institutionGUIDFromToken(c)
	if err != nil {
		return err
	}

	var items []model.HolidayModel
	if err := ctrl.DB.
		Where("holiday_institution_guid = ?", guidInstitution).
		Order("holiday_date ASC").
		Find(&items).Error; err != nil {
		log.Println("[ERROR] Failed to fetch holidays:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch holidays")
	}

	return helper.Success(c, "Success Find All Holiday", items)
}

// ✅ POST create hari libur
func (ctrl *HolidayController) Create(c *fiber.Ctx) error {
	guidInstitution, err := institutionGUIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateHolidayRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	item := model.HolidayModel{
		HolidayTitle:           req.Title,
		HolidayDate:            req.Date,
		HolidayInstitutionGUID: guidInstitution,
	}
	if err := ctrl.DB.Create(&item).Error; err != nil {
		log.Println("[ERROR] Failed to create holiday:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create holiday")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Success Create Holiday", item)
}

// ✅ PUT update hari libur
func (ctrl *HolidayController) Update(c *fiber.Ctx) error {
	guidInstitution, err := institutionGUIDFromToken(c)
	if err != nil {
		return err
	}

	var item model.HolidayModel
	if err := ctrl.DB.
		Where("holiday_guid = ? AND holiday_institution_guid = ?", c.Params("guid"), guidInstitution).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Holiday not found")
		}
		log.Println("[ERROR] Failed to fetch holiday:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch holiday")
	}

	var req dto.UpdateHolidayRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Title != nil {
		item.HolidayTitle = *req.Title
	}
	if req.Date != nil {
		item.HolidayDate = *req.Date
	}

	if err := ctrl.DB.Save(&item).Error; err != nil {
		log.Println("[ERROR] Failed to update holiday:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update holiday")
	}

	return helper.Success(c, "Success Update Holiday", item)
}

// ✅ DELETE hari libur
func (ctrl *HolidayController) Delete(c *fiber.Ctx) error {
	guidInstitution, err := institutionGUIDFromToken(c)
	if err != nil {
		return err
	}

	res := ctrl.DB.
		Where("holiday_guid = ? AND holiday_institution_guid = ?", c.Params("guid"), guidInstitution).
		Delete(&model.HolidayModel{})
	if res.Error != nil {
		log.Println("[ERROR] Failed to delete holiday:", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete holiday")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Holiday not found")
	}

	return helper.Success(c, "Success Delete Holiday", nil)
}
