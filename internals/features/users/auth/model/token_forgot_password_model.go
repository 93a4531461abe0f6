package model

import "time"

// TokenForgotPasswordModel menyimpan OTP reset password (berlaku 2 menit).
type TokenForgotPasswordModel struct {
	TokenForgotPasswordID        uint      `gorm:"column:token_forgot_password_id;primaryKey" json:"token_forgot_password_id"`
	TokenForgotPasswordUserGUID  string    `gorm:"column:token_forgot_password_user_guid;not null;index" json:"token_forgot_password_user_guid"`
	TokenForgotPasswordToken     string    `gorm:"column:token_forgot_password_token;not null" json:"token_forgot_password_token"`
	TokenForgotPasswordExpiredAt time.Time `gorm:"column:token_forgot_password_expired_at;not null" json:"token_forgot_password_expired_at"`
	TokenForgotPasswordUsed      bool      `gorm:"column:token_forgot_password_used;default:false" json:"token_forgot_password_used"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (TokenForgotPasswordModel) TableName() string {
	return "token_forgot_passwords"
}
