package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"presensiku_backend/internals/constants"
)

// PresenceModel adalah satu catatan kehadiran untuk satu user pada satu
// tanggal sipil. Dibuat kosong (status ALPHA) oleh generator harian, diisi
// oleh event check-in/check-out device, disapu reconciler sore hari.
type PresenceModel struct {
	PresenceGUID            string `gorm:"column:presence_guid;primaryKey" json:"presence_guid"`
	PresenceUserGUID        string `gorm:"column:presence_user_guid;not null;uniqueIndex:idx_presence_user_date" json:"presence_user_guid"`
	PresenceInstitutionGUID string `gorm:"column:presence_institution_guid;not null;index" json:"presence_institution_guid"`
	PresenceUnitGUID        string `gorm:"column:presence_unit_guid;not null" json:"presence_unit_guid"`

	PresenceStatus string `gorm:"column:presence_status;not null;default:ALPHA" json:"presence_status"`
	PresenceType   string `gorm:"column:presence_type;not null;default:none" json:"presence_type"`

	PresenceDeviceGUID         *string `gorm:"column:presence_device_guid" json:"presence_device_guid"`
	PresenceDevicePresenceGUID *string `gorm:"column:presence_device_presence_guid" json:"presence_device_presence_guid"`

	PresenceImageCheckIn  *string `gorm:"column:presence_image_check_in" json:"presence_image_check_in"`
	PresenceImageCheckOut *string `gorm:"column:presence_image_check_out" json:"presence_image_check_out"`

	PresenceDescription *string `gorm:"column:presence_description;type:text" json:"presence_description"`

	PresenceCheckInLatitude   *float64 `gorm:"column:presence_check_in_latitude" json:"presence_check_in_latitude"`
	PresenceCheckInLongitude  *float64 `gorm:"column:presence_check_in_longitude" json:"presence_check_in_longitude"`
	PresenceCheckOutLatitude  *float64 `gorm:"column:presence_check_out_latitude" json:"presence_check_out_latitude"`
	PresenceCheckOutLongitude *float64 `gorm:"column:presence_check_out_longitude" json:"presence_check_out_longitude"`

	// Jam lokal "HH:mm" (string, bukan timestamp) supaya record parsial
	// (baru check-in saja) valid tersimpan.
	PresenceCheckIn  *string `gorm:"column:presence_check_in" json:"presence_check_in"`
	PresenceCheckOut *string `gorm:"column:presence_check_out" json:"presence_check_out"`

	// Tanggal sipil "2006-01-02"; bersama user guid menjadi kunci unik
	// agar generate ulang di hari yang sama tidak menggandakan record.
	PresenceDate string `gorm:"column:presence_date;not null;uniqueIndex:idx_presence_user_date;index" json:"presence_date"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (PresenceModel) TableName() string {
	return "presences"
}

func (m *PresenceModel) BeforeCreate(tx *gorm.DB) error {
	if m.PresenceGUID == "" {
		m.PresenceGUID = fmt.Sprintf("presence-%s", uuid.NewString())
	}
	if m.PresenceStatus == "" {
		m.PresenceStatus = constants.PresenceStatusAlpha
	}
	if m.PresenceType == "" {
		m.PresenceType = constants.DeviceTypeNone
	}
	return nil
}
