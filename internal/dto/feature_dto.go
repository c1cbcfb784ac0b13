// FILE: internal/dto/feature_dto.go
// DTOs for the feature catalog, preference resolution and survey flow
package dto

import "time"

// --- Catalog ---

type FeatureResponse struct {
	Id             uint   `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	DefaultEnabled bool   `json:"default_enabled"`
}

type GroupResponse struct {
	Id          uint              `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	CreatedAt   time.Time         `json:"created_at"`
	Features    []FeatureResponse `json:"features"`
}

// --- Resolved per-user view ---

// UserFeatureResponse carries the effective state: the user's stored
// preference when one exists, the feature default otherwise.
type UserFeatureResponse struct {
	Id          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsEnabled   bool   `json:"is_enabled"`
}

type UserGroupResponse struct {
	Id       uint                  `json:"id"`
	Name     string                `json:"name"`
	Features []UserFeatureResponse `json:"features"`
}

// --- Toggle ---

type ToggleFeatureRequest struct {
	FeatureId uint  `json:"feature_id" validate:"required"`
	IsEnabled *bool `json:"is_enabled" validate:"required"`
}

type PreferenceResponse struct {
	Id        uint      `json:"id"`
	UserId    uint      `json:"user_id"`
	FeatureId uint      `json:"feature_id"`
	IsEnabled bool      `json:"is_enabled"`
	UpdatedAt time.Time `json:"updated_at"`
}

// --- Survey ---

type SaveSurveyResultsRequest struct {
	PrimaryCategory string `json:"primary_category" validate:"required"`
	// Empty is allowed: the survey still rewrites every feature to false.
	SelectedCategories []string `json:"selected_categories" validate:"dive,required"`
}

type SaveSurveyResultsResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}

type SurveyStatusResponse struct {
	HasCompletedSurvey bool     `json:"has_completed_survey"`
	PreferenceCount    int      `json:"preference_count"`
	Groups             []string `json:"groups"`
}
