package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/constants"
	"presensiku_backend/internals/features/devices/trx_user_devices/controller"
	authMiddleware "presensiku_backend/internals/middlewares/auth"
)

func TrxUserDeviceRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTrxUserDeviceController(db)

	adminOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorAdmin("user device"),
		constants.AdminAndAbove...,
	)

	router.Get("/", adminOnly, ctrl.GetAll)
	router.Post("/", adminOnly, ctrl.Create)
	router.Delete("/:guid", adminOnly, ctrl.Delete)
}
