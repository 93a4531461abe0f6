package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"presensiku_backend/internals/constants"
	database "presensiku_backend/internals/databases"
	institutionModel "presensiku_backend/internals/features/institutions/model"
	"presensiku_backend/internals/features/users/auth/dto"
	authModel "presensiku_backend/internals/features/users/auth/model"
	userModel "presensiku_backend/internals/features/users/users/model"
)

type AuthService struct {
	DB    *gorm.DB
	Token *TokenService
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db, Token: NewTokenService(db)}
}

// Register mendaftarkan user baru. Ada dua jalur:
//   - institutionName terisi: buat institusi baru dan user menjadi ADMIN
//   - institutionGuid terisi: user bergabung sebagai USER biasa
//
// Keduanya berjalan dalam satu transaksi supaya institusi yatim tidak
// tertinggal saat pembuatan user gagal.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*userModel.UserModel, error) {
	var existing userModel.UserModel
	err := s.DB.Where("user_email = ?", req.Email).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("email sudah terdaftar")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("format tanggal lahir tidak valid")
	}
	if birthDate.After(time.Now()) {
		return nil, fmt.Errorf("tanggal lahir tidak boleh di masa depan")
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := userModel.UserModel{
		UserIdentity:   req.Identity,
		UserName:       req.Name,
		UserEmail:      req.Email,
		UserPhone:      &req.PhoneNumber,
		UserAddress:    req.Address,
		UserProfession: req.Profession,
		UserBirthDate:  &birthDate,
		UserPassword:   hash,
		UserRole:       constants.RoleUser,
	}

	err = database.WithTransaction(ctx, s.DB, func(tx *gorm.DB) error {
		switch {
		case req.InstitutionName != nil && *req.InstitutionName != "":
			if req.InstitutionType == nil {
				return fmt.Errorf("tipe institusi wajib diisi")
			}
			institution := institutionModel.InstitutionModel{
				InstitutionName: *req.InstitutionName,
				InstitutionType: *req.InstitutionType,
			}
			if req.Latitude != nil {
				institution.InstitutionLatitude = *req.Latitude
			}
			if req.Longitude != nil {
				institution.InstitutionLongitude = *req.Longitude
			}
			if err := tx.Create(&institution).Error; err != nil {
				return fmt.Errorf("gagal membuat institusi: %w", err)
			}
			user.UserRole = constants.RoleAdmin
			user.UserInstitutionGUID = &institution.InstitutionGUID

		case req.InstitutionGUID != nil && *req.InstitutionGUID != "":
			var institution institutionModel.InstitutionModel
			if err := tx.Where("institution_guid = ?", *req.InstitutionGUID).First(&institution).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("institusi tidak ditemukan")
				}
				return err
			}
			user.UserInstitutionGUID = &institution.InstitutionGUID
		}

		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[SUCCESS] Register user %s (%s)", user.UserEmail, user.UserRole)
	return &user, nil
}

// Login memverifikasi kredensial dan menerbitkan pasangan token.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	var user userModel.UserModel
	if err := s.DB.Where("user_email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("email atau password salah")
		}
		return nil, err
	}

	if !ComparePassword(user.UserPassword, req.Password) {
		return nil, fmt.Errorf("email atau password salah")
	}

	accessToken, err := s.Token.GenerateAccessToken(&user)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.Token.GenerateRefreshToken(&user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Logout memasukkan access token ke blacklist dan mencabut refresh
// token milik user tersebut.
func (s *AuthService) Logout(userGUID, accessToken string, expiredAt time.Time) error {
	if err := s.Token.BlacklistAccessToken(accessToken, expiredAt); err != nil {
		return fmt.Errorf("gagal blacklist token: %w", err)
	}
	return s.DB.
		Where("refresh_token_user_guid = ?", userGUID).
		Delete(&authModel.RefreshTokenModel{}).Error
}
