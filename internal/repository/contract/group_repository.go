// FILE: internal/repository/contract/group_repository.go
// Read path over the feature catalog. The catalog is never mutated by
// resolution or toggle operations.
package contract

import (
	"context"

	"feature-prefs-be/internal/entity"
)

type GroupRepository interface {
	// FindAllWithFeatures returns every group with its features populated,
	// ordered by created_at then id so resolved views are reproducible.
	FindAllWithFeatures(ctx context.Context) ([]*entity.Group, error)
}
