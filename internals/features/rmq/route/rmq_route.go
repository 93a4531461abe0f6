package route

import (
	"github.com/gofiber/fiber/v2"

	"presensiku_backend/internals/features/rmq/controller"
	"presensiku_backend/internals/features/rmq/service"
)

func RmqRoutes(router fiber.Router, pub *service.Publisher) {
	ctrl := controller.NewRmqController(pub)

	router.Post("/rfid", ctrl.PublishRfid)
	router.Post("/daily-report", ctrl.PublishDailyReport)
}
