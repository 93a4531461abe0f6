package dto

import "time"

// PresenceFilter adalah parameter query list/export presensi.
type PresenceFilter struct {
	InstitutionGUID string
	UserGUID        string
	UnitGUID        string
	Status          string
	Year            string // "2006"
	StartMonth      string // "2006-01"
	EndMonth        string // "2006-01"
	Date            string // "2006-01-02"
}

// PresenceRow adalah hasil join presensi + user + unit + device untuk
// tampilan dan export (denormalisasi dibaca saat query, bukan disimpan).
type PresenceRow struct {
	PresenceGUID            string    `json:"guid"`
	PresenceUserGUID        string    `json:"guid_user"`
	UserIdentity            *string   `json:"identity"`
	UserName                *string   `json:"name"`
	PresenceStatus          string    `json:"status"`
	PresenceUnitGUID        string    `json:"guid_unit"`
	UnitName                *string   `json:"unit"`
	MacDevice               *string   `json:"mac_device"`
	DeviceLocation          *string   `json:"device_location"`
	PresenceDevicePresenceGUID *string `json:"guid_device_presence"`
	PresenceType            string    `json:"presence_type"`
	PresenceImageCheckIn    *string   `json:"image_check_in"`
	PresenceImageCheckOut   *string   `json:"image_check_out"`
	PresenceDescription     *string   `json:"description"`
	PresenceCheckInLatitude   *float64 `json:"check_in_latitude"`
	PresenceCheckInLongitude  *float64 `json:"check_in_longitude"`
	PresenceCheckOutLatitude  *float64 `json:"check_out_latitude"`
	PresenceCheckOutLongitude *float64 `json:"check_out_longitude"`
	PresenceCheckIn         *string   `json:"check_in"`
	PresenceCheckOut        *string   `json:"check_out"`
	PresenceDate            string    `json:"presence_date"`
	CreatedAt               time.Time `json:"created_at"`
}

// ChangeStatusRequest untuk override status manual oleh admin.
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=ALPHA PRESENCE SICK PERMITTED"`
}
