package dto

// AddUserDeviceRequest memasangkan user dengan device presensi miliknya
// (kartu RFID / pendaftaran wajah).
type AddUserDeviceRequest struct {
	UserGUID   string `json:"guidUser" validate:"required"`
	Mac        string `json:"macDevice" validate:"required,mac"`
	DeviceType string `json:"deviceType" validate:"required,oneof=rfid face_recognition"`
}
