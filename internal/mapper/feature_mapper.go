// FILE: internal/mapper/feature_mapper.go
// Mappers for catalog and preference entity <-> model conversion
package mapper

import (
	"feature-prefs-be/internal/entity"
	"feature-prefs-be/internal/model"
)

type FeatureMapper struct{}

func NewFeatureMapper() *FeatureMapper {
	return &FeatureMapper{}
}

func (m *FeatureMapper) ToEntity(model *model.Feature) *entity.Feature {
	if model == nil {
		return nil
	}
	return &entity.Feature{
		Id:             model.Id,
		GroupId:        model.GroupId,
		Name:           model.Name,
		Description:    model.Description,
		DefaultEnabled: model.DefaultEnabled,
		CreatedAt:      model.CreatedAt,
	}
}

func (m *FeatureMapper) ToModel(entity *entity.Feature) *model.Feature {
	if entity == nil {
		return nil
	}
	return &model.Feature{
		Id:             entity.Id,
		GroupId:        entity.GroupId,
		Name:           entity.Name,
		Description:    entity.Description,
		DefaultEnabled: entity.DefaultEnabled,
		CreatedAt:      entity.CreatedAt,
	}
}

func (m *FeatureMapper) ToEntities(models []*model.Feature) []*entity.Feature {
	entities := make([]*entity.Feature, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}

type GroupMapper struct {
	featureMapper *FeatureMapper
}

func NewGroupMapper() *GroupMapper {
	return &GroupMapper{featureMapper: NewFeatureMapper()}
}

func (m *GroupMapper) ToEntity(mdl *model.Group) *entity.Group {
	if mdl == nil {
		return nil
	}
	features := make([]*entity.Feature, 0, len(mdl.Features))
	for i := range mdl.Features {
		features = append(features, m.featureMapper.ToEntity(&mdl.Features[i]))
	}
	return &entity.Group{
		Id:          mdl.Id,
		Name:        mdl.Name,
		Description: mdl.Description,
		CreatedAt:   mdl.CreatedAt,
		Features:    features,
	}
}

func (m *GroupMapper) ToEntities(models []*model.Group) []*entity.Group {
	entities := make([]*entity.Group, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}

type PreferenceMapper struct{}

func NewPreferenceMapper() *PreferenceMapper {
	return &PreferenceMapper{}
}

func (m *PreferenceMapper) ToEntity(mdl *model.UserFeaturePreference) *entity.UserFeaturePreference {
	if mdl == nil {
		return nil
	}
	return &entity.UserFeaturePreference{
		Id:        mdl.Id,
		UserId:    mdl.UserId,
		FeatureId: mdl.FeatureId,
		IsEnabled: mdl.IsEnabled,
		CreatedAt: mdl.CreatedAt,
		UpdatedAt: mdl.UpdatedAt,
	}
}

func (m *PreferenceMapper) ToModel(ent *entity.UserFeaturePreference) *model.UserFeaturePreference {
	if ent == nil {
		return nil
	}
	return &model.UserFeaturePreference{
		Id:        ent.Id,
		UserId:    ent.UserId,
		FeatureId: ent.FeatureId,
		IsEnabled: ent.IsEnabled,
		CreatedAt: ent.CreatedAt,
		UpdatedAt: ent.UpdatedAt,
	}
}

func (m *PreferenceMapper) ToEntities(models []*model.UserFeaturePreference) []*entity.UserFeaturePreference {
	entities := make([]*entity.UserFeaturePreference, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
