// FILE: internal/model/feature_model.go
// GORM models for the feature catalog and user preference tables
package model

import "time"

// Group is a catalog group. Creation order drives the stable catalog
// ordering exposed to clients.
type Group struct {
	Id          uint      `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	Features    []Feature `gorm:"foreignKey:GroupId"`
}

func (Group) TableName() string {
	return "groups"
}

type Feature struct {
	Id             uint      `gorm:"primaryKey;autoIncrement"`
	GroupId        uint      `gorm:"not null;index"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Description    string    `gorm:"type:text"`
	DefaultEnabled bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (Feature) TableName() string {
	return "features"
}

// UserFeaturePreference carries the composite uniqueness that makes the
// toggle upsert safe under concurrency.
type UserFeaturePreference struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	UserId    uint      `gorm:"not null;uniqueIndex:idx_user_feature"`
	FeatureId uint      `gorm:"not null;uniqueIndex:idx_user_feature"`
	IsEnabled bool      `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (UserFeaturePreference) TableName() string {
	return "user_feature_preferences"
}
