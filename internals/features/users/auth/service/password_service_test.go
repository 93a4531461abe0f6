package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"presensiku_backend/internals/constants"
	"presensiku_backend/internals/features/users/auth/model"
	userModel "presensiku_backend/internals/features/users/users/model"
)

type fakeMailer struct {
	lastEmail string
	lastToken string
}

func (f *fakeMailer) SendForgotPasswordOTP(email, name, token string) error {
	f.lastEmail = email
	f.lastToken = token
	return nil
}

func newAuthTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&model.TokenForgotPasswordModel{},
		&model.RefreshTokenModel{},
		&model.TokenBlacklistModel{},
	))
	return db
}

func seedAuthUser(t *testing.T, db *gorm.DB, email, password string) *userModel.UserModel {
	t.Helper()

	hash, err := HashPassword(password)
	require.NoError(t, err)

	user := userModel.UserModel{
		UserName:     "Budi",
		UserEmail:    email,
		UserPassword: hash,
		UserRole:     constants.RoleUser,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("Rahasia#1")
	require.NoError(t, err)
	require.NotEqual(t, "Rahasia#1", hash)

	require.True(t, ComparePassword(hash, "Rahasia#1"))
	require.False(t, ComparePassword(hash, "rahasia#1"))
}

func TestForgotPasswordFlow(t *testing.T) {
	db := newAuthTestDB(t)
	user := seedAuthUser(t, db, "budi@example.com", "LamaBanget#1")

	mail := &fakeMailer{}
	svc := NewPasswordService(db, mail)

	require.NoError(t, svc.RequestForgotPassword("budi@example.com"))
	require.Equal(t, "budi@example.com", mail.lastEmail)
	require.Len(t, mail.lastToken, 6)

	require.NoError(t, svc.ResetPassword("budi@example.com", mail.lastToken, "BaruLagi#2"))

	var updated userModel.UserModel
	require.NoError(t, db.Where("user_guid = ?", user.UserGUID).First(&updated).Error)
	require.True(t, ComparePassword(updated.UserPassword, "BaruLagi#2"))

	// OTP sekali pakai
	err := svc.ResetPassword("budi@example.com", mail.lastToken, "KetigaKali#3")
	require.Error(t, err)
}

func TestResetPasswordRejectsWrongOTP(t *testing.T) {
	db := newAuthTestDB(t)
	seedAuthUser(t, db, "budi@example.com", "LamaBanget#1")

	svc := NewPasswordService(db, &fakeMailer{})
	require.NoError(t, svc.RequestForgotPassword("budi@example.com"))

	err := svc.ResetPassword("budi@example.com", "000000", "BaruLagi#2")
	require.Error(t, err)
}

func TestResetPasswordRejectsExpiredOTP(t *testing.T) {
	db := newAuthTestDB(t)
	user := seedAuthUser(t, db, "budi@example.com", "LamaBanget#1")

	// token kadaluarsa dibuat langsung di tabel
	require.NoError(t, db.Create(&model.TokenForgotPasswordModel{
		TokenForgotPasswordUserGUID:  user.UserGUID,
		TokenForgotPasswordToken:     "123456",
		TokenForgotPasswordExpiredAt: time.Now().Add(-time.Minute),
	}).Error)

	svc := NewPasswordService(db, &fakeMailer{})
	err := svc.ResetPassword("budi@example.com", "123456", "BaruLagi#2")
	require.Error(t, err)
	require.Contains(t, err.Error(), "kadaluarsa")
}

func TestRequestForgotPasswordUnknownEmail(t *testing.T) {
	db := newAuthTestDB(t)

	svc := NewPasswordService(db, &fakeMailer{})
	err := svc.RequestForgotPassword("tidakada@example.com")
	require.Error(t, err)
}
