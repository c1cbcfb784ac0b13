package model

import "time"

type User struct {
	Id           uint      `gorm:"primaryKey;autoIncrement"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName     string    `gorm:"type:varchar(255);not null"`
	PasswordHash *string   `gorm:"type:varchar(255)"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

type UserRefreshToken struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	UserId    uint      `gorm:"not null;index"`
	TokenHash string    `gorm:"type:text;not null;index"`
	ExpiresAt time.Time `gorm:"not null"`
	Revoked   bool      `gorm:"default:false"`
	IpAddress string    `gorm:"type:varchar(45)"`
	UserAgent string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (UserRefreshToken) TableName() string {
	return "user_refresh_tokens"
}
