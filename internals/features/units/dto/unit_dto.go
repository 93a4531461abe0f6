package dto

type CreateUnitRequest struct {
	Name      string `json:"name" validate:"required,min=1"`
	ShiftGUID string `json:"guidShift" validate:"required"`
}

type UpdateUnitRequest struct {
	Name      *string `json:"name"`
	ShiftGUID *string `json:"guidShift"`
}
