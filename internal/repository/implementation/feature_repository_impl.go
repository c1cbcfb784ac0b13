// FILE: internal/repository/implementation/feature_repository_impl.go
// GORM implementation of FeatureRepository
package implementation

import (
	"context"
	"errors"

	"feature-prefs-be/internal/entity"
	"feature-prefs-be/internal/mapper"
	"feature-prefs-be/internal/model"
	"feature-prefs-be/internal/repository/contract"
	"feature-prefs-be/internal/repository/specification"

	"gorm.io/gorm"
)

type FeatureRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FeatureMapper
}

func NewFeatureRepository(db *gorm.DB) contract.FeatureRepository {
	return &FeatureRepositoryImpl{
		db:     db,
		mapper: mapper.NewFeatureMapper(),
	}
}

func (r *FeatureRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FeatureRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Feature, error) {
	var m model.Feature
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translate("failed to find feature", err)
	}
	return r.mapper.ToEntity(&m), nil
}
