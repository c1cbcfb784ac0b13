package specification

import (
	"fmt"

	"gorm.io/gorm"
)

// ByID filters by primary key
type ByID struct {
	ID uint
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

// OrderBy applies ordering
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return db.Order(fmt.Sprintf("%s %s", s.Field, direction))
}

// UserOwnedBy filters rows belonging to a user
type UserOwnedBy struct {
	UserID uint
}

func (s UserOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// ByEmail filters users by email
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}
