package dto

type CreateHolidayRequest struct {
	Title string `json:"title" validate:"required,min=1"`
	// Tanggal sipil "2006-01-02"
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type UpdateHolidayRequest struct {
	Title *string `json:"title"`
	Date  *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}
