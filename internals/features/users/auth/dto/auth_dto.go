package dto

// RegisterRequest registrasi admin + institusi baru, atau user yang
// bergabung ke institusi existing (institutionGuid terisi).
type RegisterRequest struct {
	Identity    *string `json:"identity"`
	Name        string  `json:"name" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	PhoneNumber string  `json:"phoneNumber" validate:"required,e164"`
	Address     *string `json:"address"`
	BirthDate   string  `json:"birthDate" validate:"required,datetime=2006-01-02"`
	Profession  *string `json:"profession"`
	// Minimal 6 karakter, kombinasi huruf besar/kecil, angka, simbol
	Password string `json:"password" validate:"required,min=6"`

	InstitutionName *string  `json:"institutionName"`
	InstitutionType *string  `json:"institutionType" validate:"omitempty,oneof=company school"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	InstitutionGUID *string  `json:"institutionGuid"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type NewPasswordRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Token    string `json:"token" validate:"required,len=6"`
	Password string `json:"password" validate:"required,min=6"`
}
