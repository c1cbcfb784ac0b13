// FILE: internal/service/feature_service.go
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"feature-prefs-be/internal/dto"
	"feature-prefs-be/internal/entity"
	"feature-prefs-be/internal/pkg/apperrors"
	"feature-prefs-be/internal/pkg/logger"
	"feature-prefs-be/internal/repository/specification"
	"feature-prefs-be/internal/repository/unitofwork"

	"feature-prefs-be/pkg/events"
	pktNats "feature-prefs-be/pkg/nats"
)

type IFeatureService interface {
	GetCatalog(ctx context.Context) ([]*dto.GroupResponse, error)
	GetUserFeaturePreferences(ctx context.Context, userId uint) ([]*dto.UserGroupResponse, error)
	ToggleFeature(ctx context.Context, userId uint, req *dto.ToggleFeatureRequest) (*dto.PreferenceResponse, error)
	SaveSurveyResults(ctx context.Context, userId uint, req *dto.SaveSurveyResultsRequest) (*dto.SaveSurveyResultsResponse, error)
	GetSurveyStatus(ctx context.Context, userId uint) (*dto.SurveyStatusResponse, error)
}

type featureService struct {
	uowFactory     unitofwork.RepositoryFactory
	logger         logger.ILogger
	eventPublisher *pktNats.Publisher
}

func NewFeatureService(
	uowFactory unitofwork.RepositoryFactory,
	sysLogger logger.ILogger,
	eventPublisher *pktNats.Publisher,
) IFeatureService {
	return &featureService{
		uowFactory:     uowFactory,
		logger:         sysLogger,
		eventPublisher: eventPublisher,
	}
}

func (s *featureService) GetCatalog(ctx context.Context) ([]*dto.GroupResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	groups, err := uow.GroupRepository().FindAllWithFeatures(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.GroupResponse, 0, len(groups))
	for _, group := range groups {
		res := &dto.GroupResponse{
			Id:          group.Id,
			Name:        group.Name,
			Description: group.Description,
			CreatedAt:   group.CreatedAt,
			Features:    make([]dto.FeatureResponse, 0, len(group.Features)),
		}
		for _, feature := range group.Features {
			res.Features = append(res.Features, dto.FeatureResponse{
				Id:             feature.Id,
				Name:           feature.Name,
				Description:    feature.Description,
				DefaultEnabled: feature.DefaultEnabled,
			})
		}
		result = append(result, res)
	}
	return result, nil
}

// GetUserFeaturePreferences merges catalog defaults with the user's stored
// overrides. Every catalog feature appears exactly once, in catalog order;
// reading never creates preference rows.
func (s *featureService) GetUserFeaturePreferences(ctx context.Context, userId uint) ([]*dto.UserGroupResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	groups, err := uow.GroupRepository().FindAllWithFeatures(ctx)
	if err != nil {
		return nil, err
	}

	prefs, err := uow.PreferenceRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}

	overrides := make(map[uint]bool, len(prefs))
	for _, p := range prefs {
		overrides[p.FeatureId] = p.IsEnabled
	}

	result := make([]*dto.UserGroupResponse, 0, len(groups))
	for _, group := range groups {
		res := &dto.UserGroupResponse{
			Id:       group.Id,
			Name:     group.Name,
			Features: make([]dto.UserFeatureResponse, 0, len(group.Features)),
		}
		for _, feature := range group.Features {
			enabled, hasOverride := overrides[feature.Id]
			if !hasOverride {
				enabled = feature.DefaultEnabled
			}
			res.Features = append(res.Features, dto.UserFeatureResponse{
				Id:          feature.Id,
				Name:        feature.Name,
				Description: feature.Description,
				IsEnabled:   enabled,
			})
		}
		result = append(result, res)
	}
	return result, nil
}

func (s *featureService) ToggleFeature(ctx context.Context, userId uint, req *dto.ToggleFeatureRequest) (*dto.PreferenceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	feature, err := uow.FeatureRepository().FindOne(ctx, specification.ByID{ID: req.FeatureId})
	if err != nil {
		return nil, err
	}
	if feature == nil {
		return nil, apperrors.NotFoundf("feature %d not found", req.FeatureId)
	}

	pref := &entity.UserFeaturePreference{
		UserId:    userId,
		FeatureId: req.FeatureId,
		IsEnabled: *req.IsEnabled,
	}
	if err := uow.PreferenceRepository().Upsert(ctx, pref); err != nil {
		return nil, err
	}

	return &dto.PreferenceResponse{
		Id:        pref.Id,
		UserId:    pref.UserId,
		FeatureId: pref.FeatureId,
		IsEnabled: pref.IsEnabled,
		UpdatedAt: pref.UpdatedAt,
	}, nil
}

// isEssentialFeature decides which features of a selected group the survey
// enables: the ones whose name marks them as part of the group's base tier.
func isEssentialFeature(name string) bool {
	lowered := strings.ToLower(name)
	return strings.Contains(lowered, "basic") ||
		strings.Contains(lowered, "core") ||
		strings.Contains(lowered, "essential")
}

// SaveSurveyResults replaces the user's entire preference set with one row
// per catalog feature, inside a single transaction. PrimaryCategory is
// recorded in the emitted event but does not influence the computed set.
func (s *featureService) SaveSurveyResults(ctx context.Context, userId uint, req *dto.SaveSurveyResultsRequest) (*dto.SaveSurveyResultsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	groups, err := uow.GroupRepository().FindAllWithFeatures(ctx)
	if err != nil {
		return nil, err
	}

	selected := make(map[string]bool, len(req.SelectedCategories))
	for _, name := range req.SelectedCategories {
		selected[name] = true
	}

	var prefs []*entity.UserFeaturePreference
	for _, group := range groups {
		isSelectedGroup := selected[group.Name]
		for _, feature := range group.Features {
			prefs = append(prefs, &entity.UserFeaturePreference{
				UserId:    userId,
				FeatureId: feature.Id,
				IsEnabled: isSelectedGroup && isEssentialFeature(feature.Name),
			})
		}
	}

	// Delete-then-recreate must be indivisible: a failure anywhere leaves
	// the user's previous rows untouched.
	if err := uow.Begin(ctx); err != nil {
		return nil, apperrors.TransactionFailure("failed to start survey transaction", err)
	}
	defer uow.Rollback()

	if err := uow.PreferenceRepository().DeleteAllByUser(ctx, userId); err != nil {
		return nil, apperrors.TransactionFailure("failed to clear previous preferences", err)
	}
	if err := uow.PreferenceRepository().CreateBatch(ctx, prefs); err != nil {
		return nil, apperrors.TransactionFailure("failed to write survey preferences", err)
	}
	if err := uow.Commit(); err != nil {
		return nil, apperrors.TransactionFailure("failed to commit survey preferences", err)
	}

	s.logger.Info("FEATURES", "Survey results saved", map[string]interface{}{
		"user_id":          userId,
		"primary_category": req.PrimaryCategory,
		"selected":         req.SelectedCategories,
		"written":          len(prefs),
	})

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "SURVEY_COMPLETED",
			Data: map[string]interface{}{
				"user_id":          userId,
				"primary_category": req.PrimaryCategory,
				"categories":       req.SelectedCategories,
				"preference_count": len(prefs),
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("FEATURES", "Failed to publish SURVEY_COMPLETED event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return &dto.SaveSurveyResultsResponse{
		Success: true,
		Message: "Survey results saved successfully",
		Count:   len(prefs),
	}, nil
}

// GetSurveyStatus reports whether the user has ever been initialized: any
// stored preference row (toggle or survey) counts. Group names are
// deduplicated, first-seen order over the user's rows by feature id.
func (s *featureService) GetSurveyStatus(ctx context.Context, userId uint) (*dto.SurveyStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	prefs, err := uow.PreferenceRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "feature_id"},
	)
	if err != nil {
		return nil, err
	}

	groups, err := uow.GroupRepository().FindAllWithFeatures(ctx)
	if err != nil {
		return nil, err
	}
	groupNameByFeature := make(map[uint]string)
	for _, group := range groups {
		for _, feature := range group.Features {
			groupNameByFeature[feature.Id] = group.Name
		}
	}

	seen := make(map[string]bool)
	names := make([]string, 0)
	for _, p := range prefs {
		name, ok := groupNameByFeature[p.FeatureId]
		if !ok {
			// Preference rows always reference catalog features; a miss here
			// means the invariant broke upstream.
			return nil, apperrors.ConstraintViolation(
				fmt.Sprintf("preference %d references unknown feature %d", p.Id, p.FeatureId), nil)
		}
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	return &dto.SurveyStatusResponse{
		HasCompletedSurvey: len(prefs) > 0,
		PreferenceCount:    len(prefs),
		Groups:             names,
	}, nil
}
