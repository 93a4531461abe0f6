package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type InstitutionModel struct {
	InstitutionGUID      string         `gorm:"column:institution_guid;primaryKey" json:"institution_guid"`
	InstitutionName      string         `gorm:"column:institution_name;uniqueIndex;not null" json:"institution_name"`
	InstitutionType      string         `gorm:"column:institution_type;not null" json:"institution_type"` // company | school
	InstitutionAddress   *string        `gorm:"column:institution_address" json:"institution_address"`
	InstitutionLatitude  float64        `gorm:"column:institution_latitude;default:0" json:"institution_latitude"`
	InstitutionLongitude float64        `gorm:"column:institution_longitude;default:0" json:"institution_longitude"`
	// Trajectory: urutan titik geolokasi untuk geofencing, JSON [{latitude, longitude}, ...]
	InstitutionTrajectory datatypes.JSON `gorm:"column:institution_trajectory" json:"institution_trajectory"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (InstitutionModel) TableName() string {
	return "institutions"
}

func (m *InstitutionModel) BeforeCreate(tx *gorm.DB) error {
	if m.InstitutionGUID == "" {
		m.InstitutionGUID = fmt.Sprintf("institution-%s", uuid.NewString())
	}
	return nil
}

// GeoPoint adalah satu titik pada trajectory geofence.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
