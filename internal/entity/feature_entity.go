// FILE: internal/entity/feature_entity.go
// Domain entities for the feature catalog and user preferences
package entity

import "time"

// Group is a named collection of features. Immutable after creation;
// catalog ordering is created_at ascending, id ascending on ties.
type Group struct {
	Id          uint
	Name        string // Unique human label: "Wellness", "Productivity"
	Description string
	CreatedAt   time.Time
	Features    []*Feature // Populated by FindAllWithFeatures, same ordering rule
}

// Feature belongs to exactly one group. DefaultEnabled is the fallback
// state when a user has no explicit preference row.
type Feature struct {
	Id             uint
	GroupId        uint
	Name           string
	Description    string
	DefaultEnabled bool
	CreatedAt      time.Time
}

// UserFeaturePreference is an explicit per-user override of a feature's
// default state. At most one row exists per (UserId, FeatureId).
type UserFeaturePreference struct {
	Id        uint
	UserId    uint
	FeatureId uint
	IsEnabled bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
