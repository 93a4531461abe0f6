package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/constants"
	"presensiku_backend/internals/features/institutions/controller"
	authMiddleware "presensiku_backend/internals/middlewares/auth"
)

func InstitutionRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewInstitutionController(db)

	superAdminOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorSuperAdmin("institusi"),
		constants.SuperAdminOnly...,
	)
	adminOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorAdmin("institusi"),
		constants.AdminAndAbove...,
	)

	router.Get("/", superAdminOnly, ctrl.GetAll)
	router.Get("/:guid", ctrl.GetByGUID)
	router.Post("/", superAdminOnly, ctrl.Create)
	router.Put("/:guid/trajectory", adminOnly, ctrl.UpdateTrajectory)
}
