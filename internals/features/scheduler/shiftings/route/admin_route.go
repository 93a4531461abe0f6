package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/constants"
	"presensiku_backend/internals/features/scheduler/shiftings/controller"
	authMiddleware "presensiku_backend/internals/middlewares/auth"
)

func ShiftingRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewShiftingController(db)

	adminOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorAdmin("shift"),
		constants.AdminAndAbove...,
	)

	router.Get("/", ctrl.GetAll)
	router.Post("/", adminOnly, ctrl.Create)
	router.Put("/:guid", adminOnly, ctrl.Update)
	router.Delete("/:guid", adminOnly, ctrl.Delete)
}
