// FILE: internal/repository/implementation/preference_repository_impl.go
// GORM implementation of PreferenceRepository
package implementation

import (
	"context"

	"feature-prefs-be/internal/entity"
	"feature-prefs-be/internal/mapper"
	"feature-prefs-be/internal/model"
	"feature-prefs-be/internal/repository/contract"
	"feature-prefs-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PreferenceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PreferenceMapper
}

func NewPreferenceRepository(db *gorm.DB) contract.PreferenceRepository {
	return &PreferenceRepositoryImpl{
		db:     db,
		mapper: mapper.NewPreferenceMapper(),
	}
}

func (r *PreferenceRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PreferenceRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserFeaturePreference, error) {
	var models []*model.UserFeaturePreference
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, translate("failed to list user preferences", err)
	}
	return r.mapper.ToEntities(models), nil
}

// Upsert relies on the composite unique index: concurrent toggles on the
// same (user_id, feature_id) pair resolve to last-writer-wins at the store,
// never a duplicate-key failure.
func (r *PreferenceRepositoryImpl) Upsert(ctx context.Context, pref *entity.UserFeaturePreference) error {
	m := r.mapper.ToModel(pref)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "feature_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"is_enabled": m.IsEnabled}),
		}).
		Create(m).Error
	if err != nil {
		return translate("failed to upsert preference", err)
	}
	// Re-read so the caller observes the stored row (id, timestamps) even
	// on the conflict-update path.
	var stored model.UserFeaturePreference
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND feature_id = ?", m.UserId, m.FeatureId).
		First(&stored).Error; err != nil {
		return translate("failed to read back preference", err)
	}
	*pref = *r.mapper.ToEntity(&stored)
	return nil
}

func (r *PreferenceRepositoryImpl) DeleteAllByUser(ctx context.Context, userId uint) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Delete(&model.UserFeaturePreference{}).Error
	return translate("failed to delete user preferences", err)
}

func (r *PreferenceRepositoryImpl) CreateBatch(ctx context.Context, prefs []*entity.UserFeaturePreference) error {
	if len(prefs) == 0 {
		return nil
	}
	models := make([]*model.UserFeaturePreference, 0, len(prefs))
	for _, p := range prefs {
		models = append(models, r.mapper.ToModel(p))
	}
	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return translate("failed to create preferences", err)
	}
	for i, m := range models {
		*prefs[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *PreferenceRepositoryImpl) CountByUser(ctx context.Context, userId uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.UserFeaturePreference{}).
		Where("user_id = ?", userId).
		Count(&count).Error
	if err != nil {
		return 0, translate("failed to count user preferences", err)
	}
	return count, nil
}
