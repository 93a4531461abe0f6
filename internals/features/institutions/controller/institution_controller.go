package controller

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/institutions/dto"
	"presensiku_backend/internals/features/institutions/model"
	helper "presensiku_backend/internals/helpers"
)

type InstitutionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewInstitutionController(db *gorm.DB) *InstitutionController {
	return &InstitutionController{DB: db, Validate: validator.New()}
}

// ✅ GET all institutions (super admin)
func (ctrl *InstitutionController) GetAll(c *fiber.Ctx) error {
	var items []model.InstitutionModel
	if err := ctrl.DB.Find(&items).Error; err != nil {
		log.Println("[ERROR] Failed to fetch institutions:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch institutions")
	}
	return helper.Success(c, "Success Find All Institution", items)
}

// ✅ GET institution by guid
func (ctrl *InstitutionController) GetByGUID(c *fiber.Ctx) error {
	var item model.InstitutionModel
	if err := ctrl.DB.First(&item, "institution_guid = ?", c.Params("guid")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Institution not found")
		}
		log.Println("[ERROR] Failed to fetch institution:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch institution")
	}
	return helper.Success(c, "Success Find Detail Institution", item)
}

// ✅ POST create institution
func (ctrl *InstitutionController) Create(c *fiber.Ctx) error {
	var req dto.CreateInstitutionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	item := model.InstitutionModel{
		InstitutionName:      req.Name,
		InstitutionType:      req.Type,
		InstitutionAddress:   req.Address,
		InstitutionLatitude:  req.Latitude,
		InstitutionLongitude: req.Longitude,
	}
	if err := ctrl.DB.Create(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusBadRequest, "Nama institusi sudah terdaftar")
		}
		log.Println("[ERROR] Failed to create institution:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create institution")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Success Create Institution", item)
}

// ✅ PUT update trajectory (titik geofence)
func (ctrl *InstitutionController) UpdateTrajectory(c *fiber.Ctx) error {
	var req dto.UpdateTrajectoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var item model.InstitutionModel
	if err := ctrl.DB.First(&item, "institution_guid = ?", c.Params("guid")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Institution not found")
		}
		log.Println("[ERROR] Failed to fetch institution:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch institution")
	}

	raw, err := json.Marshal(req.Trajectory)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid trajectory payload")
	}
	item.InstitutionTrajectory = raw

	if err := ctrl.DB.Save(&item).Error; err != nil {
		log.Println("[ERROR] Failed to update trajectory:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update trajectory")
	}

	return helper.Success(c, "Success Update Trajectory", item)
}
