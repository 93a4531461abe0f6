package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/constants"
	"presensiku_backend/internals/features/scheduler/default_schedules/controller"
	authMiddleware "presensiku_backend/internals/middlewares/auth"
)

func DefaultScheduleRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDefaultScheduleController(db)

	adminOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorAdmin("jadwal default"),
		constants.AdminAndAbove...,
	)

	router.Get("/", ctrl.Get)
	router.Put("/", adminOnly, ctrl.Upsert)
}
