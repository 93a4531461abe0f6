package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/users/auth/model"
	userModel "presensiku_backend/internals/features/users/users/model"
	"presensiku_backend/internals/helpers/mailer"
)

// Masa berlaku OTP lupa password
const forgotPasswordTokenTTL = 2 * time.Minute

type PasswordService struct {
	DB     *gorm.DB
	Mailer mailer.Mailer
}

func NewPasswordService(db *gorm.DB, m mailer.Mailer) *PasswordService {
	return &PasswordService{DB: db, Mailer: m}
}

func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("gagal hash password: %w", err)
	}
	return string(hash), nil
}

func ComparePassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// RequestForgotPassword membuat OTP 6 digit, menyimpannya dengan TTL 2
// menit, lalu mengirimkannya lewat email.
func (s *PasswordService) RequestForgotPassword(email string) error {
	var user userModel.UserModel
	if err := s.DB.Where("user_email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("email tidak terdaftar")
		}
		return err
	}

	otp, err := generateOTP()
	if err != nil {
		return fmt.Errorf("gagal generate OTP: %w", err)
	}

	record := model.TokenForgotPasswordModel{
		TokenForgotPasswordUserGUID:  user.UserGUID,
		TokenForgotPasswordToken:     otp,
		TokenForgotPasswordExpiredAt: time.Now().Add(forgotPasswordTokenTTL),
	}
	if err := s.DB.Create(&record).Error; err != nil {
		return fmt.Errorf("gagal simpan token lupa password: %w", err)
	}

	if err := s.Mailer.SendForgotPasswordOTP(user.UserEmail, user.UserName, otp); err != nil {
		log.Println("[ERROR] Gagal kirim email OTP:", err)
		return fmt.Errorf("gagal kirim email OTP")
	}

	return nil
}

// ResetPassword memverifikasi OTP (belum dipakai, belum kadaluarsa) lalu
// mengganti password user.
func (s *PasswordService) ResetPassword(email, token, newPassword string) error {
	var user userModel.UserModel
	if err := s.DB.Where("user_email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("email tidak terdaftar")
		}
		return err
	}

	var record model.TokenForgotPasswordModel
	err := s.DB.
		Where("token_forgot_password_user_guid = ? AND token_forgot_password_token = ? AND token_forgot_password_used = ?",
			user.UserGUID, token, false).
		Order("created_at DESC").
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("kode OTP salah")
	}
	if err != nil {
		return err
	}
	if time.Now().After(record.TokenForgotPasswordExpiredAt) {
		return fmt.Errorf("kode OTP sudah kadaluarsa")
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&userModel.UserModel{}).
			Where("user_guid = ?", user.UserGUID).
			Update("user_password", hash).Error; err != nil {
			return err
		}
		return tx.Model(&model.TokenForgotPasswordModel{}).
			Where("token_forgot_password_id = ?", record.TokenForgotPasswordID).
			Update("token_forgot_password_used", true).Error
	})
}
