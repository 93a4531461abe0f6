package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TimeWindow adalah rentang jam presensi "HH:mm"; NextDay true bila jendela
// melewati tengah malam (shift malam).
type TimeWindow struct {
	Start   *string `json:"start"`
	End     *string `json:"end"`
	NextDay bool    `json:"next_day"`
}

// PresenceTime memuat jendela check-in dan check-out satu kebijakan shift.
type PresenceTime struct {
	CheckInTime  TimeWindow `json:"check_in_time"`
	CheckOutTime TimeWindow `json:"check_out_time"`
}

type ShiftingModel struct {
	ShiftingGUID            string         `gorm:"column:shifting_guid;primaryKey" json:"shifting_guid"`
	ShiftingInstitutionGUID string         `gorm:"column:shifting_institution_guid;not null;index" json:"shifting_institution_guid"`
	ShiftingName            string         `gorm:"column:shifting_name;not null" json:"shifting_name"`
	ShiftingPresenceTime    datatypes.JSON `gorm:"column:shifting_presence_time" json:"shifting_presence_time"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ShiftingModel) TableName() string {
	return "shiftings"
}

func (m *ShiftingModel) BeforeCreate(tx *gorm.DB) error {
	if m.ShiftingGUID == "" {
		m.ShiftingGUID = fmt.Sprintf("shifting-%s", uuid.NewString())
	}
	return nil
}

func (m *ShiftingModel) PresenceTime() (PresenceTime, error) {
	var pt PresenceTime
	if len(m.ShiftingPresenceTime) == 0 {
		return pt, nil
	}
	if err := json.Unmarshal(m.ShiftingPresenceTime, &pt); err != nil {
		return pt, fmt.Errorf("kolom shifting_presence_time korup: %w", err)
	}
	return pt, nil
}

func (m *ShiftingModel) SetPresenceTime(pt PresenceTime) error {
	raw, err := json.Marshal(pt)
	if err != nil {
		return err
	}
	m.ShiftingPresenceTime = raw
	return nil
}
