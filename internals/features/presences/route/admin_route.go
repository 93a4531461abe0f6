package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/constants"
	"presensiku_backend/internals/features/presences/controller"
	authMiddleware "presensiku_backend/internals/middlewares/auth"
)

func PresenceRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPresenceController(db)

	router.Get("/", ctrl.GetAll)
	router.Get("/export", ctrl.Export)
	router.Get("/:guid", ctrl.GetDetail)

	// override status & hapus hanya untuk admin
	adminOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorAdmin("presensi"),
		constants.AdminAndAbove...,
	)
	router.Patch("/:guid/status", adminOnly, ctrl.ChangeStatus)
	router.Delete("/:guid", adminOnly, ctrl.Delete)
}
