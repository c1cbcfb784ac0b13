// FILE: internal/repository/contract/preference_repository.go
// Durable (user_id, feature_id) -> enabled mapping with composite-key
// uniqueness enforced by the store.
package contract

import (
	"context"

	"feature-prefs-be/internal/entity"
	"feature-prefs-be/internal/repository/specification"
)

type PreferenceRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserFeaturePreference, error)

	// Upsert writes is_enabled for (user_id, feature_id) atomically, creating
	// the row when absent. The preference is updated in place with the
	// stored state.
	Upsert(ctx context.Context, pref *entity.UserFeaturePreference) error

	// DeleteAllByUser and CreateBatch are only meaningful inside a unit of
	// work; the survey full-replace pairs them in one transaction.
	DeleteAllByUser(ctx context.Context, userId uint) error
	CreateBatch(ctx context.Context, prefs []*entity.UserFeaturePreference) error

	CountByUser(ctx context.Context, userId uint) (int64, error)
}
