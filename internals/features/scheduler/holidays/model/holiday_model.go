package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HolidayModel struct {
	HolidayGUID            string `gorm:"column:holiday_guid;primaryKey" json:"holiday_guid"`
	HolidayTitle           string `gorm:"column:holiday_title;not null" json:"holiday_title"`
	// Tanggal sipil "2006-01-02"; satu hari libur menonaktifkan generate presensi
	// institusi tsb pada tanggal itu, apapun jadwal mingguannya.
	HolidayDate            string `gorm:"column:holiday_date;not null;index:idx_holiday_institution_date" json:"holiday_date"`
	HolidayInstitutionGUID string `gorm:"column:holiday_institution_guid;not null;index:idx_holiday_institution_date" json:"holiday_institution_guid"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (HolidayModel) TableName() string {
	return "holidays"
}

func (m *HolidayModel) BeforeCreate(tx *gorm.DB) error {
	if m.HolidayGUID == "" {
		m.HolidayGUID = fmt.Sprintf("holiday-%s", uuid.NewString())
	}
	return nil
}
