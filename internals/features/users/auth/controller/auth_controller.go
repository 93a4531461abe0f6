package controller

import (
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/users/auth/dto"
	"presensiku_backend/internals/features/users/auth/service"
	helper "presensiku_backend/internals/helpers"
	"presensiku_backend/internals/helpers/mailer"
)

type AuthController struct {
	Auth     *service.AuthService
	Password *service.PasswordService
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		Auth:     service.NewAuthService(db),
		Password: service.NewPasswordService(db, mailer.New()),
		Validate: validator.New(),
	}
}

// ✅ POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := ctrl.Auth.Register(c.Context(), &req)
	if err != nil {
		log.Println("[ERROR] Register gagal:", err)
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Success Register User", user)
}

// ✅ POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	tokens, err := ctrl.Auth.Login(&req)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	return helper.Success(c, "Success Login", tokens)
}

// ✅ POST /api/auth/refresh-token
func (ctrl *AuthController) RefreshToken(c *fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	accessToken, err := ctrl.Auth.Token.VerifyRefreshToken(req.RefreshToken)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	return helper.Success(c, "Success Refresh Token", fiber.Map{"accessToken": accessToken})
}

// ✅ POST /api/auth/logout (butuh AuthMiddleware)
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	userGUID, _ := c.Locals("user_guid").(string)
	token := strings.TrimPrefix(c.Get("Authorization"), "Bearer ")
	if token == "" {
		token = c.Cookies("access_token")
	}

	// Ambil exp dari klaim supaya blacklist bisa dibersihkan nanti
	expiredAt := time.Now().Add(24 * time.Hour)
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, _, err := parser.ParseUnverified(token, claims); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(exp), 0)
		}
	}

	if err := ctrl.Auth.Logout(userGUID, token, expiredAt); err != nil {
		log.Println("[ERROR] Logout gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to logout")
	}

	return helper.Success(c, "Success Logout", nil)
}

// ✅ POST /api/auth/forgot-password (kirim OTP)
func (ctrl *AuthController) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctrl.Password.RequestForgotPassword(req.Email); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	return helper.Success(c, "OTP terkirim ke email", nil)
}

// ✅ POST /api/auth/new-password (verifikasi OTP + ganti password)
func (ctrl *AuthController) NewPassword(c *fiber.Ctx) error {
	var req dto.NewPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctrl.Password.ResetPassword(req.Email, req.Token, req.Password); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	return helper.Success(c, "Success Change Password", nil)
}
