// FILE: internal/repository/implementation/group_repository_impl.go
// GORM implementation of GroupRepository
package implementation

import (
	"context"

	"feature-prefs-be/internal/entity"
	"feature-prefs-be/internal/mapper"
	"feature-prefs-be/internal/model"
	"feature-prefs-be/internal/repository/contract"

	"gorm.io/gorm"
)

type GroupRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.GroupMapper
}

func NewGroupRepository(db *gorm.DB) contract.GroupRepository {
	return &GroupRepositoryImpl{
		db:     db,
		mapper: mapper.NewGroupMapper(),
	}
}

func (r *GroupRepositoryImpl) FindAllWithFeatures(ctx context.Context) ([]*entity.Group, error) {
	var models []*model.Group
	err := r.db.WithContext(ctx).
		Preload("Features", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Order("created_at ASC, id ASC").
		Find(&models).Error
	if err != nil {
		return nil, translate("failed to load feature catalog", err)
	}
	return r.mapper.ToEntities(models), nil
}
