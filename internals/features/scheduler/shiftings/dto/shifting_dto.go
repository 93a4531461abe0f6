package dto

type TimeWindowItem struct {
	Start   *string `json:"start" validate:"omitempty,datetime=15:04"`
	End     *string `json:"end" validate:"omitempty,datetime=15:04"`
	NextDay bool    `json:"nextDay"`
}

type CreateShiftingRequest struct {
	Name         string         `json:"name" validate:"required,min=1"`
	CheckInTime  TimeWindowItem `json:"checkInTime"`
	CheckOutTime TimeWindowItem `json:"checkOutTime"`
}

type UpdateShiftingRequest struct {
	Name         *string         `json:"name"`
	CheckInTime  *TimeWindowItem `json:"checkInTime"`
	CheckOutTime *TimeWindowItem `json:"checkOutTime"`
}
