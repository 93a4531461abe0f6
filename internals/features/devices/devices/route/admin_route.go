package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/constants"
	"presensiku_backend/internals/features/devices/devices/controller"
	authMiddleware "presensiku_backend/internals/middlewares/auth"
)

func DeviceRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDeviceController(db)

	adminOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorAdmin("device"),
		constants.AdminAndAbove...,
	)

	router.Get("/", ctrl.GetAll)
	router.Post("/", adminOnly, ctrl.Create)
	router.Put("/:mac", adminOnly, ctrl.Update)
	router.Delete("/:mac", adminOnly, ctrl.Delete)
}
