package dto

// RegisterUserByAdminRequest dipakai admin untuk mendaftarkan anggota
// institusinya langsung, opsional sekaligus menempatkan ke unit.
type RegisterUserByAdminRequest struct {
	Identity    *string `json:"identity"`
	Name        string  `json:"name" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	PhoneNumber string  `json:"phoneNumber" validate:"required,e164"`
	Address     *string `json:"address"`
	BirthDate   string  `json:"birthDate" validate:"required,datetime=2006-01-02"`
	Profession  *string `json:"profession"`
	Password    string  `json:"password" validate:"required,min=6"`
	UnitGUID    *string `json:"guidUnit"`
}

type UpdateUserRequest struct {
	Identity    *string `json:"identity"`
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,e164"`
	Address     *string `json:"address"`
	Profession  *string `json:"profession"`
	UnitGUID    *string `json:"guidUnit"`
}
