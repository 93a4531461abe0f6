package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UnitModel struct {
	UnitGUID            string `gorm:"column:unit_guid;primaryKey" json:"unit_guid"`
	UnitName            string `gorm:"column:unit_name;not null" json:"unit_name"`
	UnitInstitutionGUID string `gorm:"column:unit_institution_guid;not null;index" json:"unit_institution_guid"`
	UnitShiftGUID       string `gorm:"column:unit_shift_guid;not null" json:"unit_shift_guid"`
	// Soft delete flag: unit terhapus tetap tersimpan untuk histori presensi.
	UnitIsDeleted bool `gorm:"column:unit_is_deleted;default:false" json:"unit_is_deleted"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UnitModel) TableName() string {
	return "units"
}

func (m *UnitModel) BeforeCreate(tx *gorm.DB) error {
	if m.UnitGUID == "" {
		m.UnitGUID = fmt.Sprintf("unit-%s", uuid.NewString())
	}
	return nil
}
