package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrxUserDeviceModel memetakan user ke device presensi (kartu RFID /
// pendaftaran wajah) miliknya.
type TrxUserDeviceModel struct {
	TrxUserDeviceGUID       string `gorm:"column:trx_user_device_guid;primaryKey" json:"trx_user_device_guid"`
	TrxUserDeviceUserGUID   string `gorm:"column:trx_user_device_user_guid;not null;index" json:"trx_user_device_user_guid"`
	TrxUserDeviceMac        string `gorm:"column:trx_user_device_mac;not null;index" json:"trx_user_device_mac"`
	TrxUserDeviceDeviceType string `gorm:"column:trx_user_device_device_type;not null" json:"trx_user_device_device_type"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (TrxUserDeviceModel) TableName() string {
	return "trx_user_devices"
}

func (m *TrxUserDeviceModel) BeforeCreate(tx *gorm.DB) error {
	if m.TrxUserDeviceGUID == "" {
		m.TrxUserDeviceGUID = fmt.Sprintf("trx-%s", uuid.NewString())
	}
	return nil
}
