package dto

type CreateDeviceRequest struct {
	Mac         string `json:"mac" validate:"required,mac"`
	Location    string `json:"location" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=rfid face_recognition"`
	DeviceImage string `json:"deviceImage" validate:"required,url"`
}

type UpdateDeviceRequest struct {
	Location    *string `json:"location"`
	Status      *bool   `json:"status"`
	DeviceImage *string `json:"deviceImage" validate:"omitempty,url"`
}
