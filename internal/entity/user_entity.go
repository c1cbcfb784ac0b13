// FILE: internal/entity/user_entity.go
package entity

import "time"

type User struct {
	Id           uint
	Email        string
	FullName     string
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type UserRefreshToken struct {
	Id        uint
	UserId    uint
	TokenHash string
	ExpiresAt time.Time
	Revoked   bool
	IpAddress string
	UserAgent string
	CreatedAt time.Time
}
