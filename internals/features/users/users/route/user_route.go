package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/constants"
	"presensiku_backend/internals/features/users/users/controller"
	authMiddleware "presensiku_backend/internals/middlewares/auth"
)

func UserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	adminOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorAdmin("user"),
		constants.AdminAndAbove...,
	)

	router.Get("/me", ctrl.Me)

	router.Get("/", adminOnly, ctrl.GetAll)
	router.Get("/:guid", adminOnly, ctrl.GetByGUID)
	router.Post("/", adminOnly, ctrl.RegisterByAdmin)
	router.Post("/import", adminOnly, ctrl.ImportByExcel)
	router.Put("/:guid", adminOnly, ctrl.Update)
	router.Delete("/:guid", adminOnly, ctrl.Delete)
}
