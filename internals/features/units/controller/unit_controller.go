package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	shiftingModel "presensiku_backend/internals/features/scheduler/shiftings/model"
	"presensiku_backend/internals/features/units/dto"
	"presensiku_backend/internals/features/units/model"
	helper "presensiku_backend/internals/helpers"
)

type UnitController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUnitController(db *gorm.DB) *UnitController {
	return &UnitController{DB: db, Validate: validator.New()}
}

func institutionGUIDFromToken(c *fiber.Ctx) (string, error) {
	guid, ok := c.Locals("institution_guid").(string)
	if !ok || guid == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: missing institution")
	}
	return guid, nil
}

// ✅ GET semua unit aktif milik institusi
func (ctrl *UnitController) GetAll(c *fiber.Ctx) error {
	guidInstitution, err := institutionGUIDFromToken(c)
	if err != nil {
		return err
	}

	var items []model.UnitModel
	if err := ctrl.DB.
		Where("unit_institution_guid = ? AND unit_is_deleted = ?", guidInstitution, false).
		Order("unit_name ASC").
		Find(&items).Error; err != nil {
		log.Println("[ERROR] Failed to fetch units:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch units")
	}

	return helper.Success(c, "Success Find All Unit", items)
}

// ✅ POST create unit (validasi shift harus ada)
func (ctrl *UnitController) Create(c *fiber.Ctx) error {
	guidInstitution, err := institutionGUIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateUnitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var shift shiftingModel.ShiftingModel
	if err := ctrl.DB.
		Where("shifting_guid = ? AND shifting_institution_guid = ?", req.ShiftGUID, guidInstitution).
		First(&shift).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Shift not found")
		}
		log.Println("[ERROR] Failed to fetch shift:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch shift")
	}

	item := model.UnitModel{
		UnitName:            req.Name,
		UnitInstitutionGUID: guidInstitution,
		UnitShiftGUID:       shift.ShiftingGUID,
	}
	if err := ctrl.DB.Create(&item).Error; err != nil {
		log.Println("[ERROR] Failed to create unit:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create unit")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Success Create Unit", item)
}

// ✅ PUT update unit
func (ctrl *UnitController) Update(c *fiber.Ctx) error {
	guidInstitution, err := institutionGUIDFromToken(c)
	if err != nil {
		return err
	}

	var item model.UnitModel
	if err := ctrl.DB.
		Where("unit_guid = ? AND unit_institution_guid = ? AND unit_is_deleted = ?",
			c.Params("guid"), guidInstitution, false).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Unit not found")
		}
		log.Println("[ERROR] Failed to fetch unit:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch unit")
	}

	var req dto.UpdateUnitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Name != nil {
		item.UnitName = *req.Name
	}
	if req.ShiftGUID != nil {
		item.UnitShiftGUID = *req.ShiftGUID
	}

	if err := ctrl.DB.Save(&item).Error; err != nil {
		log.Println("[ERROR] Failed to update unit:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update unit")
	}

	return helper.Success(c, "Success Update Unit", item)
}

// ✅ DELETE unit (soft delete, histori presensi tetap utuh)
func (ctrl *UnitController) Delete(c *fiber.Ctx) error {
	guidInstitution, err := institutionGUIDFromToken(c)
	if err != nil {
		return err
	}

	res := ctrl.DB.Model(&model.UnitModel{}).
		Where("unit_guid = ? AND unit_institution_guid = ? AND unit_is_deleted = ?",
			c.Params("guid"), guidInstitution, false).
		Update("unit_is_deleted", true)
	if res.Error != nil {
		log.Println("[ERROR] Failed to delete unit:", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete unit")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Unit not found")
	}

	return helper.Success(c, "Success Delete Unit", nil)
}
