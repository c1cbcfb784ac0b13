// FILE: internal/repository/contract/feature_repository.go
package contract

import (
	"context"

	"feature-prefs-be/internal/entity"
	"feature-prefs-be/internal/repository/specification"
)

type FeatureRepository interface {
	// FindOne returns nil, nil when no feature matches.
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Feature, error)
}
