package dto

// CreateInstitutionRequest dipakai saat registrasi institusi baru.
type CreateInstitutionRequest struct {
	Name      string  `json:"name" validate:"required,min=3"`
	Type      string  `json:"type" validate:"required,oneof=company school"`
	Address   *string `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type TrajectoryPoint struct {
	Latitude  float64 `json:"latitude" validate:"required"`
	Longitude float64 `json:"longitude" validate:"required"`
}

// UpdateTrajectoryRequest mengganti seluruh titik geofence institusi.
type UpdateTrajectoryRequest struct {
	Trajectory []TrajectoryPoint `json:"trajectory" validate:"required,min=1,dive"`
}
