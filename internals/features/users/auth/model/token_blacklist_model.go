package model

import (
	"time"

	"gorm.io/gorm"
)

// TokenBlacklistModel menampung access token yang sudah logout
// sebelum masa berlakunya habis.
type TokenBlacklistModel struct {
	TokenBlacklistID        uint      `gorm:"column:token_blacklist_id;primaryKey" json:"token_blacklist_id"`
	TokenBlacklistToken     string    `gorm:"column:token_blacklist_token;type:text;not null;index" json:"token_blacklist_token"`
	TokenBlacklistExpiredAt time.Time `gorm:"column:token_blacklist_expired_at;not null" json:"token_blacklist_expired_at"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (TokenBlacklistModel) TableName() string {
	return "token_blacklists"
}
