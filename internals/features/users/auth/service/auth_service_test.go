package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"presensiku_backend/internals/configs"
	"presensiku_backend/internals/constants"
	institutionModel "presensiku_backend/internals/features/institutions/model"
	"presensiku_backend/internals/features/users/auth/dto"
	"presensiku_backend/internals/features/users/auth/model"
	userModel "presensiku_backend/internals/features/users/users/model"
)

func init() {
	// secret deterministik untuk test token
	configs.JWTSecret = "test-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"
}

func strPtr(s string) *string { return &s }

func registerReq() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Name:            "Budi Santoso",
		Email:           "budi@example.com",
		PhoneNumber:     "+628123456789",
		BirthDate:       "1995-04-17",
		Password:        "Rahasia#1",
		InstitutionName: strPtr("PT Maju Jaya"),
		InstitutionType: strPtr(constants.InstitutionTypeCompany),
	}
}

func TestRegisterCreatesInstitutionAndAdmin(t *testing.T) {
	db := newAuthTestDB(t)
	require.NoError(t, db.AutoMigrate(&institutionModel.InstitutionModel{}))

	svc := NewAuthService(db)
	user, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	require.Equal(t, constants.RoleAdmin, user.UserRole)
	require.NotNil(t, user.UserInstitutionGUID)

	var institution institutionModel.InstitutionModel
	require.NoError(t, db.Where("institution_guid = ?", *user.UserInstitutionGUID).
		First(&institution).Error)
	require.Equal(t, "PT Maju Jaya", institution.InstitutionName)
}

func TestRegisterJoinExistingInstitution(t *testing.T) {
	db := newAuthTestDB(t)
	require.NoError(t, db.AutoMigrate(&institutionModel.InstitutionModel{}))

	institution := institutionModel.InstitutionModel{
		InstitutionName: "SMA 1",
		InstitutionType: constants.InstitutionTypeSchool,
	}
	require.NoError(t, db.Create(&institution).Error)

	req := registerReq()
	req.InstitutionName = nil
	req.InstitutionType = nil
	req.InstitutionGUID = &institution.InstitutionGUID

	svc := NewAuthService(db)
	user, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, constants.RoleUser, user.UserRole)
	require.Equal(t, institution.InstitutionGUID, *user.UserInstitutionGUID)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := newAuthTestDB(t)
	require.NoError(t, db.AutoMigrate(&institutionModel.InstitutionModel{}))

	svc := NewAuthService(db)
	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerReq())
	require.Error(t, err)
	require.Contains(t, err.Error(), "sudah terdaftar")
}

func TestRegisterRejectsFutureBirthDate(t *testing.T) {
	db := newAuthTestDB(t)
	require.NoError(t, db.AutoMigrate(&institutionModel.InstitutionModel{}))

	req := registerReq()
	req.BirthDate = time.Now().AddDate(1, 0, 0).Format("2006-01-02")

	svc := NewAuthService(db)
	_, err := svc.Register(context.Background(), req)
	require.Error(t, err)
}

// Gagal membuat user tidak boleh meninggalkan institusi yatim.
func TestRegisterRollsBackInstitutionOnUserFailure(t *testing.T) {
	db := newAuthTestDB(t)
	require.NoError(t, db.AutoMigrate(&institutionModel.InstitutionModel{}))

	// email sudah dipakai user lain dengan nomor telepon sama supaya insert
	// kedua gagal di constraint unik telepon
	seedAuthUser(t, db, "lain@example.com", "Rahasia#1")
	require.NoError(t, db.Model(&userModel.UserModel{}).
		Where("user_email = ?", "lain@example.com").
		Update("user_phone", "+628123456789").Error)

	svc := NewAuthService(db)
	_, err := svc.Register(context.Background(), registerReq())
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&institutionModel.InstitutionModel{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestLoginAndRefreshToken(t *testing.T) {
	db := newAuthTestDB(t)
	seedAuthUser(t, db, "budi@example.com", "Rahasia#1")

	svc := NewAuthService(db)
	tokens, err := svc.Login(&dto.LoginRequest{Email: "budi@example.com", Password: "Rahasia#1"})
	require.NoError(t, err)
	require.NotEmpty(t, tokens.AccessToken)
	require.NotEmpty(t, tokens.RefreshToken)

	accessToken, err := svc.Token.VerifyRefreshToken(tokens.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	db := newAuthTestDB(t)
	seedAuthUser(t, db, "budi@example.com", "Rahasia#1")

	svc := NewAuthService(db)
	_, err := svc.Login(&dto.LoginRequest{Email: "budi@example.com", Password: "salah"})
	require.Error(t, err)

	_, err = svc.Login(&dto.LoginRequest{Email: "tidakada@example.com", Password: "salah"})
	require.Error(t, err)
}

func TestLogoutRevokesTokens(t *testing.T) {
	db := newAuthTestDB(t)
	user := seedAuthUser(t, db, "budi@example.com", "Rahasia#1")

	svc := NewAuthService(db)
	tokens, err := svc.Login(&dto.LoginRequest{Email: "budi@example.com", Password: "Rahasia#1"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(user.UserGUID, tokens.AccessToken, time.Now().Add(15*time.Minute)))

	// access token masuk blacklist
	var blacklisted int64
	require.NoError(t, db.Model(&model.TokenBlacklistModel{}).
		Where("token_blacklist_token = ?", tokens.AccessToken).
		Count(&blacklisted).Error)
	require.EqualValues(t, 1, blacklisted)

	// refresh token dicabut
	_, err = svc.Token.VerifyRefreshToken(tokens.RefreshToken)
	require.Error(t, err)
}
