package model

import "time"

type RefreshTokenModel struct {
	RefreshTokenID        uint      `gorm:"column:refresh_token_id;primaryKey" json:"refresh_token_id"`
	RefreshTokenUserGUID  string    `gorm:"column:refresh_token_user_guid;not null;index" json:"refresh_token_user_guid"`
	RefreshTokenToken     string    `gorm:"column:refresh_token_token;type:text;not null;uniqueIndex" json:"refresh_token_token"`
	RefreshTokenExpiredAt time.Time `gorm:"column:refresh_token_expired_at;not null" json:"refresh_token_expired_at"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
