package model

import "time"

type DeviceModel struct {
	// MAC address dipakai sebagai identitas unik device.
	DeviceMac             string `gorm:"column:device_mac;primaryKey" json:"device_mac"`
	DeviceLocation        string `gorm:"column:device_location;not null" json:"device_location"`
	DeviceInstitutionGUID string `gorm:"column:device_institution_guid;not null;index" json:"device_institution_guid"`
	DeviceStatus          bool   `gorm:"column:device_status;default:true" json:"device_status"`
	DeviceType            string `gorm:"column:device_type;not null" json:"device_type"` // rfid | face_recognition
	DeviceImage           string `gorm:"column:device_image;not null" json:"device_image"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (DeviceModel) TableName() string {
	return "devices"
}
