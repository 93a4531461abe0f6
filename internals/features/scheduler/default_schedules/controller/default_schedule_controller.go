package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/scheduler/default_schedules/dto"
	"presensiku_backend/internals/features/scheduler/default_schedules/model"
	helper "presensiku_backend/internals/helpers"
)

type DefaultScheduleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDefaultScheduleController(db *gorm.DB) *DefaultScheduleController {
	return &DefaultScheduleController{DB: db, Validate: validator.New()}
}

func institutionGUIDFromToken(c *fiber.Ctx) (string, error) {
	guid, ok := c.Locals("institution_guid").(string)
	if !ok || guid == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: missing institution")
	}
	return guid, nil
}

// ✅ GET jadwal default institusi
func (ctrl *DefaultScheduleController) Get(c *fiber.Ctx) error {
	guidInstitution, err := institutionGUIDFromToken(c)
	if err != nil {
		return err
	}

	var item model.DefaultScheduleModel
	if err := ctrl.DB.
		Where("default_schedule_institution_guid = ?", guidInstitution).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Default schedule not found")
		}
		log.Println("[ERROR] Failed to fetch default schedule:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch default schedule")
	}

	return helper.Success(c, "Success Find Default Schedule", item)
}

// ✅ PUT upsert jadwal default (satu institusi satu record)
func (ctrl *DefaultScheduleController) Upsert(c *fiber.Ctx) error {
	guidInstitution, err := institutionGUIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpsertDefaultScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	days := make([]model.DaySchedule, 0, len(req.DaySchedule))
	for _, d := range req.DaySchedule {
		days = append(days, model.DaySchedule{ID: d.ID, Day: d.Day})
	}

	var item model.DefaultScheduleModel
	err = ctrl.DB.
		Where("default_schedule_institution_guid = ?", guidInstitution).
		First(&item).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = model.DefaultScheduleModel{DefaultScheduleInstitutionGUID: guidInstitution}
		if err := item.SetDays(days); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid day schedule payload")
		}
		if err := ctrl.DB.Create(&item).Error; err != nil {
			log.Println("[ERROR] Failed to create default schedule:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to create default schedule")
		}
		return helper.SuccessWithCode(c, fiber.StatusCreated, "Success Create Default Schedule", item)
	case err != nil:
		log.Println("[ERROR] Failed to fetch default schedule:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch default schedule")
	}

	if err := item.SetDays(days); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid day schedule payload")
	}
	if err := ctrl.DB.Save(&item).Error; err != nil {
		log.Println("[ERROR] Failed to update default schedule:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update default schedule")
	}

	return helper.Success(c, "Success Update Default Schedule", item)
}
