package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/users/auth/controller"
	"presensiku_backend/internals/middlewares"
	authMiddleware "presensiku_backend/internals/middlewares/auth"
)

// AuthRoutes memasang endpoint autentikasi. Login dibatasi rate limiter
// khusus untuk menahan brute force.
func AuthRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	router.Post("/register", ctrl.Register)
	router.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	router.Post("/refresh-token", ctrl.RefreshToken)
	router.Post("/forgot-password", ctrl.ForgotPassword)
	router.Post("/new-password", ctrl.NewPassword)

	router.Post("/logout", authMiddleware.AuthMiddleware(db), ctrl.Logout)
}
