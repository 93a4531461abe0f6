package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DaySchedule menandai satu hari kerja dalam pola mingguan.
// ID mengikuti index hari (Minggu = 0 .. Sabtu = 6).
type DaySchedule struct {
	ID  int    `json:"id"`
	Day string `json:"day"`
}

type DefaultScheduleModel struct {
	DefaultScheduleGUID            string `gorm:"column:default_schedule_guid;primaryKey" json:"default_schedule_guid"`
	// Satu institusi hanya punya satu jadwal default.
	DefaultScheduleInstitutionGUID string `gorm:"column:default_schedule_institution_guid;uniqueIndex;not null" json:"default_schedule_institution_guid"`
	// Set hari kerja, JSON [{id, day}, ...]. Kosong = jadwal belum dikonfigurasi.
	DefaultScheduleDays datatypes.JSON `gorm:"column:default_schedule_days" json:"default_schedule_days"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (DefaultScheduleModel) TableName() string {
	return "default_schedules"
}

func (m *DefaultScheduleModel) BeforeCreate(tx *gorm.DB) error {
	if m.DefaultScheduleGUID == "" {
		m.DefaultScheduleGUID = fmt.Sprintf("dfs-%s", uuid.NewString())
	}
	return nil
}

// Days meng-decode kolom JSON menjadi slice DaySchedule.
func (m *DefaultScheduleModel) Days() ([]DaySchedule, error) {
	if len(m.DefaultScheduleDays) == 0 {
		return nil, nil
	}
	var days []DaySchedule
	if err := json.Unmarshal(m.DefaultScheduleDays, &days); err != nil {
		return nil, fmt.Errorf("kolom default_schedule_days korup: %w", err)
	}
	return days, nil
}

// SetDays meng-encode slice DaySchedule ke kolom JSON.
func (m *DefaultScheduleModel) SetDays(days []DaySchedule) error {
	raw, err := json.Marshal(days)
	if err != nil {
		return err
	}
	m.DefaultScheduleDays = raw
	return nil
}
