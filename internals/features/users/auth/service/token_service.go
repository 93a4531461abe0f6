package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"presensiku_backend/internals/configs"
	"presensiku_backend/internals/features/users/auth/model"
	userModel "presensiku_backend/internals/features/users/users/model"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

// TokenService menerbitkan & memverifikasi JWT access/refresh token.
type TokenService struct {
	DB *gorm.DB
}

func NewTokenService(db *gorm.DB) *TokenService {
	return &TokenService{DB: db}
}

func claimsForUser(user *userModel.UserModel, ttl time.Duration) jwt.MapClaims {
	claims := jwt.MapClaims{
		"user_guid": user.UserGUID,
		"role":      user.UserRole,
		"exp":       time.Now().Add(ttl).Unix(),
		"iat":       time.Now().Unix(),
	}
	if user.UserInstitutionGUID != nil {
		claims["institution_guid"] = *user.UserInstitutionGUID
	}
	return claims
}

func (s *TokenService) GenerateAccessToken(user *userModel.UserModel) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claimsForUser(user, accessTokenTTL))
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("gagal sign access token: %w", err)
	}
	return signed, nil
}

// GenerateRefreshToken menerbitkan refresh token dan menyimpannya di DB
// supaya bisa dicabut.
func (s *TokenService) GenerateRefreshToken(user *userModel.UserModel) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claimsForUser(user, refreshTokenTTL))
	signed, err := token.SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return "", fmt.Errorf("gagal sign refresh token: %w", err)
	}

	record := model.RefreshTokenModel{
		RefreshTokenUserGUID:  user.UserGUID,
		RefreshTokenToken:     signed,
		RefreshTokenExpiredAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.DB.Create(&record).Error; err != nil {
		return "", fmt.Errorf("gagal simpan refresh token: %w", err)
	}
	return signed, nil
}

// VerifyRefreshToken memvalidasi refresh token (tanda tangan + masih
// tersimpan + belum kadaluarsa) lalu menerbitkan access token baru.
func (s *TokenService) VerifyRefreshToken(refreshToken string) (string, error) {
	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(refreshToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("signing method tidak dikenal: %v", token.Header["alg"])
		}
		return []byte(configs.JWTRefreshSecret), nil
	}); err != nil {
		return "", fmt.Errorf("refresh token tidak valid: %w", err)
	}

	var record model.RefreshTokenModel
	err := s.DB.Where("refresh_token_token = ?", refreshToken).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("refresh token sudah dicabut")
	}
	if err != nil {
		return "", err
	}
	if time.Now().After(record.RefreshTokenExpiredAt) {
		return "", fmt.Errorf("refresh token kadaluarsa")
	}

	var user userModel.UserModel
	if err := s.DB.Where("user_guid = ?", record.RefreshTokenUserGUID).First(&user).Error; err != nil {
		return "", fmt.Errorf("user refresh token tidak ditemukan: %w", err)
	}

	return s.GenerateAccessToken(&user)
}

// BlacklistAccessToken menandai access token tidak berlaku (logout).
func (s *TokenService) BlacklistAccessToken(token string, expiredAt time.Time) error {
	return s.DB.Create(&model.TokenBlacklistModel{
		TokenBlacklistToken:     token,
		TokenBlacklistExpiredAt: expiredAt,
	}).Error
}
