package dto

// RfidMessage event tap kartu / deteksi wajah dari device di lapangan.
type RfidMessage struct {
	ID   string `json:"id" validate:"required"`
	Mac  string `json:"mac" validate:"required,mac"`
	Type string `json:"type" validate:"required,oneof=rfid face_recognition"`
}

// DailyReportMessage laporan presensi manual (sakit / izin) beserta bukti.
type DailyReportMessage struct {
	ID          string  `json:"id" validate:"required"`
	Type        string  `json:"type" validate:"required,oneof=rfid face_recognition none"`
	Description string  `json:"description" validate:"required"`
	ImageURL    string  `json:"imageUrl" validate:"required,url"`
	Latitude    float64 `json:"latitude" validate:"required"`
	Longitude   float64 `json:"longitude" validate:"required"`
}
