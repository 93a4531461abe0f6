package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserGUID     string  `gorm:"column:user_guid;primaryKey" json:"user_guid"`
	UserIdentity *string `gorm:"column:user_identity;uniqueIndex" json:"user_identity"` // NISN / NIP / NIK
	UserName     string  `gorm:"column:user_name;not null" json:"user_name"`
	UserEmail    string  `gorm:"column:user_email;uniqueIndex;not null" json:"user_email"`
	UserPhone    *string `gorm:"column:user_phone;uniqueIndex" json:"user_phone"`
	UserAddress  *string `gorm:"column:user_address" json:"user_address"`
	UserProfession *string `gorm:"column:user_profession" json:"user_profession"`
	UserBirthDate  *time.Time `gorm:"column:user_birth_date" json:"user_birth_date"`
	UserPassword   string     `gorm:"column:user_password;not null" json:"-"` // bcrypt hash
	UserRole       string     `gorm:"column:user_role;not null;index" json:"user_role"` // SUPER_ADMIN | ADMIN | USER

	UserInstitutionGUID *string `gorm:"column:user_institution_guid;index" json:"user_institution_guid"`
	// Nullable: user tanpa unit TIDAK ikut generate presensi harian.
	UserUnitGUID *string `gorm:"column:user_unit_guid;index" json:"user_unit_guid"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserGUID == "" {
		m.UserGUID = fmt.Sprintf("user-%s", uuid.NewString())
	}
	return nil
}
