package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"presensiku_backend/internals/features/rmq/dto"
	"presensiku_backend/internals/features/rmq/service"
	helper "presensiku_backend/internals/helpers"
)

type RmqController struct {
	Publisher *service.Publisher
	Validate  *validator.Validate
}

func NewRmqController(pub *service.Publisher) *RmqController {
	return &RmqController{Publisher: pub, Validate: validator.New()}
}

// ✅ POST forward tap RFID / face recognition ke queue
func (ctrl *RmqController) PublishRfid(c *fiber.Ctx) error {
	var msg dto.RfidMessage
	if err := c.BodyParser(&msg); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(msg); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctrl.Publisher.Publish(c.Context(), service.EventPresence, msg); err != nil {
		log.Println("[ERROR] Failed to publish rfid event:", err)
		return helper.Error(c, fiber.StatusBadGateway, "Failed to publish rfid event")
	}

	return helper.Success(c, "Publish Rfid Successfully", nil)
}

// ✅ POST kirim laporan harian manual ke queue
func (ctrl *RmqController) PublishDailyReport(c *fiber.Ctx) error {
	var msg dto.DailyReportMessage
	if err := c.BodyParser(&msg); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(msg); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctrl.Publisher.Publish(c.Context(), service.EventDailyReport, msg); err != nil {
		log.Println("[ERROR] Failed to publish daily report:", err)
		return helper.Error(c, fiber.StatusBadGateway, "Failed to publish daily report")
	}

	return helper.Success(c, "Publish Daily Report Successfully", nil)
}
