package controller

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/presences/dto"
	"presensiku_backend/internals/features/presences/service"
	helper "presensiku_backend/internals/helpers"
	"presensiku_backend/internals/helpers/timezone"
)

type PresenceController struct {
	DB       *gorm.DB
	Service  *service.PresenceService
	Validate *validator.Validate
}

func NewPresenceController(db *gorm.DB) *PresenceController {
	return &PresenceController{
		DB:       db,
		Service:  service.NewPresenceService(db, timezone.NewClock()),
		Validate: validator.New(),
	}
}

func institutionGUIDFromToken(c *fiber.Ctx) (string, error) {
	guid, ok := c.Locals("institution_guid").(string)
	if !ok || guid == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: missing institution")
	}
	return guid, nil
}

func filterFromQuery(c *fiber.Ctx, institutionGUID string) dto.PresenceFilter {
	return dto.PresenceFilter{
		InstitutionGUID: institutionGUID,
		UserGUID:        c.Query("guidUser"),
		UnitGUID:        c.Query("guidUnit"),
		Status:          c.Query("status"),
		Year:            c.Query("year"),
		StartMonth:      c.Query("startMonth"),
		EndMonth:        c.Query("endMonth"),
		Date:            c.Query("date"),
	}
}

// ✅ GET semua presensi institusi (dengan filter opsional)
func (ctrl *PresenceController) GetAll(c *fiber.Ctx) error {
	guidInstitution, err := institutionGUIDFromToken(c)
	if err != nil {
		return err
	}

	rows, err := ctrl.Service.FindAllPresence(c.UserContext(), filterFromQuery(c, guidInstitution))
	if err != nil {
		log.Println("[ERROR] Failed to fetch presences:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch presences")
	}

	return helper.Success(c, "Success Find All Presence", rows)
}

// ✅ GET detail presensi
func (ctrl *PresenceController) GetDetail(c *fiber.Ctx) error {
	guidInstitution, err := institutionGUIDFromToken(c)
	if err != nil {
		return err
	}

	row, err := ctrl.Service.FindDetailPresence(c.UserContext(), c.Params("guid"), guidInstitution)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		log.Println("[ERROR] Failed to fetch presence detail:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch presence detail")
	}

	return helper.Success(c, "Success Find Detail Presence", row)
}

// ✅ GET export xlsx semua presensi ter-filter
func (ctrl *PresenceController) Export(c *fiber.Ctx) error {
	guidInstitution, err := institutionGUIDFromToken(c)
	if err != nil {
		return err
	}

	filename, buf, err := ctrl.Service.ExportAllPresence(c.UserContext(), filterFromQuery(c, guidInstitution))
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		log.Println("[ERROR] Failed to export presences:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to export presences")
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.xlsx"`, filename))
	return c.Send(buf.Bytes())
}

// ✅ PATCH override status presensi (admin)
func (ctrl *PresenceController) ChangeStatus(c *fiber.Ctx) error {
	guidInstitution, err := institutionGUIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.ChangeStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	presence, err := ctrl.Service.ChangePresenceStatus(c.UserContext(), c.Params("guid"), guidInstitution, req.Status)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		log.Println("[ERROR] Failed to change presence status:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to change presence status")
	}

	return helper.Success(c, "Success Change Presence Status", presence)
}

// ✅ DELETE presensi (admin)
func (ctrl *PresenceController) Delete(c *fiber.Ctx) error {
	guidInstitution, err := institutionGUIDFromToken(c)
	if err != nil {
		return err
	}

	if err := ctrl.Service.DeletePresence(c.UserContext(), c.Params("guid"), guidInstitution); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		log.Println("[ERROR] Failed to delete presence:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete presence")
	}

	return helper.Success(c, "Success Delete Presence", nil)
}
