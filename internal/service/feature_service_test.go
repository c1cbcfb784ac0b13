package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"feature-prefs-be/internal/dto"
	"feature-prefs-be/internal/entity"
	"feature-prefs-be/internal/pkg/apperrors"
	"feature-prefs-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func boolPtr(b bool) *bool { return &b }

// newTestService seeds the catalog from the survey scenario: Wellness
// (features 10, 11) plus Productivity (features 20, 21), with feature 21
// defaulting to enabled.
func newTestService(t *testing.T) (IFeatureService, *memory.Store) {
	t.Helper()

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	wellnessBasic := &entity.Feature{Id: 10, GroupId: 1, Name: "Wellness Basic Feature", DefaultEnabled: false, CreatedAt: base}
	wellnessPro := &entity.Feature{Id: 11, GroupId: 1, Name: "Wellness Pro", DefaultEnabled: false, CreatedAt: base.Add(time.Minute)}
	prodCore := &entity.Feature{Id: 20, GroupId: 2, Name: "Productivity Core Planner", DefaultEnabled: false, CreatedAt: base}
	prodFocus := &entity.Feature{Id: 21, GroupId: 2, Name: "Focus Sessions", DefaultEnabled: true, CreatedAt: base.Add(time.Minute)}

	store := memory.NewStore()
	store.SeedCatalog([]*entity.Group{
		{Id: 1, Name: "Wellness", CreatedAt: base, Features: []*entity.Feature{wellnessBasic, wellnessPro}},
		{Id: 2, Name: "Productivity", CreatedAt: base.Add(time.Hour), Features: []*entity.Feature{prodCore, prodFocus}},
	})

	svc := NewFeatureService(memory.NewRepositoryFactory(store), nopLogger{}, nil)
	return svc, store
}

func TestGetUserFeaturePreferences_DefaultsWhenNoRows(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	res, err := svc.GetUserFeaturePreferences(ctx, 7)
	require.NoError(t, err)
	require.Len(t, res, 2)

	// Catalog order is preserved and every feature appears exactly once.
	assert.Equal(t, "Wellness", res[0].Name)
	assert.Equal(t, "Productivity", res[1].Name)
	require.Len(t, res[0].Features, 2)
	require.Len(t, res[1].Features, 2)

	// With zero preference rows the effective state is the default.
	assert.False(t, res[0].Features[0].IsEnabled)
	assert.False(t, res[0].Features[1].IsEnabled)
	assert.False(t, res[1].Features[0].IsEnabled)
	assert.True(t, res[1].Features[1].IsEnabled) // defaultEnabled: true
}

func TestGetUserFeaturePreferences_ReadHasNoSideEffects(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	_, err := svc.GetUserFeaturePreferences(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 0, store.PreferenceCount(7))

	status, err := svc.GetSurveyStatus(ctx, 7)
	require.NoError(t, err)
	assert.False(t, status.HasCompletedSurvey)
	assert.Equal(t, 0, status.PreferenceCount)
}

func TestToggleFeature_CreatesThenOverwrites(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	pref, err := svc.ToggleFeature(ctx, 7, &dto.ToggleFeatureRequest{FeatureId: 10, IsEnabled: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, uint(7), pref.UserId)
	assert.Equal(t, uint(10), pref.FeatureId)
	assert.True(t, pref.IsEnabled)
	assert.Equal(t, 1, store.PreferenceCount(7))

	// Overwrite with the opposite value: still one row.
	pref, err = svc.ToggleFeature(ctx, 7, &dto.ToggleFeatureRequest{FeatureId: 10, IsEnabled: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, pref.IsEnabled)
	assert.Equal(t, 1, store.PreferenceCount(7))
}

func TestToggleFeature_Idempotent(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	first, err := svc.ToggleFeature(ctx, 7, &dto.ToggleFeatureRequest{FeatureId: 10, IsEnabled: boolPtr(true)})
	require.NoError(t, err)

	second, err := svc.ToggleFeature(ctx, 7, &dto.ToggleFeatureRequest{FeatureId: 10, IsEnabled: boolPtr(true)})
	require.NoError(t, err)

	assert.Equal(t, first.Id, second.Id)
	assert.Equal(t, first.IsEnabled, second.IsEnabled)
	assert.Equal(t, 1, store.PreferenceCount(7))
}

func TestToggleFeature_UnknownFeature(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	_, err := svc.ToggleFeature(ctx, 7, &dto.ToggleFeatureRequest{FeatureId: 999, IsEnabled: boolPtr(true)})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Contains(t, err.Error(), "feature 999 not found")
	assert.Equal(t, 0, store.PreferenceCount(7))
}

func TestToggleFeature_AffectsOnlyToggledFeature(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.ToggleFeature(ctx, 7, &dto.ToggleFeatureRequest{FeatureId: 10, IsEnabled: boolPtr(true)})
	require.NoError(t, err)

	res, err := svc.GetUserFeaturePreferences(ctx, 7)
	require.NoError(t, err)
	assert.True(t, res[0].Features[0].IsEnabled)  // toggled
	assert.False(t, res[0].Features[1].IsEnabled) // still default
}

func TestSaveSurveyResults_FullReplace(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	// Pre-existing toggle state that the survey must discard.
	_, err := svc.ToggleFeature(ctx, 7, &dto.ToggleFeatureRequest{FeatureId: 11, IsEnabled: boolPtr(true)})
	require.NoError(t, err)

	res, err := svc.SaveSurveyResults(ctx, 7, &dto.SaveSurveyResultsRequest{
		PrimaryCategory:    "Wellness",
		SelectedCategories: []string{"Wellness"},
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 4, res.Count) // one row per catalog feature, all groups

	// Every catalog feature now has an explicit row.
	assert.Equal(t, 4, store.PreferenceCount(7))

	view, err := svc.GetUserFeaturePreferences(ctx, 7)
	require.NoError(t, err)

	// Selected group: only the "basic" feature enabled.
	assert.True(t, view[0].Features[0].IsEnabled)  // Wellness Basic Feature
	assert.False(t, view[0].Features[1].IsEnabled) // Wellness Pro (toggle discarded)

	// Unselected group: everything explicitly false, including the feature
	// whose catalog default is true. Absence-implies-default no longer applies.
	assert.False(t, view[1].Features[0].IsEnabled)
	assert.False(t, view[1].Features[1].IsEnabled)
}

func TestSaveSurveyResults_EmptySelectionDisablesEverything(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	res, err := svc.SaveSurveyResults(ctx, 7, &dto.SaveSurveyResultsRequest{
		PrimaryCategory:    "Wellness",
		SelectedCategories: []string{},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, res.Count)
	assert.Equal(t, 4, store.PreferenceCount(7))

	view, err := svc.GetUserFeaturePreferences(ctx, 7)
	require.NoError(t, err)
	for _, group := range view {
		for _, feature := range group.Features {
			assert.False(t, feature.IsEnabled)
		}
	}
}

func TestSaveSurveyResults_PrimaryCategoryDoesNotAffectPolicy(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	a, err := svc.SaveSurveyResults(ctx, 7, &dto.SaveSurveyResultsRequest{
		PrimaryCategory:    "Wellness",
		SelectedCategories: []string{"Productivity"},
	})
	require.NoError(t, err)

	b, err := svc.SaveSurveyResults(ctx, 8, &dto.SaveSurveyResultsRequest{
		PrimaryCategory:    "Social",
		SelectedCategories: []string{"Productivity"},
	})
	require.NoError(t, err)
	assert.Equal(t, a.Count, b.Count)

	viewA, err := svc.GetUserFeaturePreferences(ctx, 7)
	require.NoError(t, err)
	viewB, err := svc.GetUserFeaturePreferences(ctx, 8)
	require.NoError(t, err)

	for i := range viewA {
		for j := range viewA[i].Features {
			assert.Equal(t, viewA[i].Features[j].IsEnabled, viewB[i].Features[j].IsEnabled)
		}
	}
}

func TestSaveSurveyResults_AtomicOnWriteFailure(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	_, err := svc.ToggleFeature(ctx, 7, &dto.ToggleFeatureRequest{FeatureId: 11, IsEnabled: boolPtr(true)})
	require.NoError(t, err)

	before, err := svc.GetUserFeaturePreferences(ctx, 7)
	require.NoError(t, err)

	// Fail after the delete step, before the rewrite lands.
	store.FailCreateBatch = errors.New("connection reset")
	_, err = svc.SaveSurveyResults(ctx, 7, &dto.SaveSurveyResultsRequest{
		PrimaryCategory:    "Wellness",
		SelectedCategories: []string{"Wellness"},
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindTransactionFailure, apperrors.KindOf(err))
	store.FailCreateBatch = nil

	// Prior state is fully intact: the single toggle row, nothing deleted.
	assert.Equal(t, 1, store.PreferenceCount(7))
	after, err := svc.GetUserFeaturePreferences(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSaveSurveyResults_AtomicOnCommitFailure(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	_, err := svc.ToggleFeature(ctx, 7, &dto.ToggleFeatureRequest{FeatureId: 10, IsEnabled: boolPtr(true)})
	require.NoError(t, err)

	store.FailCommit = errors.New("serialization failure")
	_, err = svc.SaveSurveyResults(ctx, 7, &dto.SaveSurveyResultsRequest{
		PrimaryCategory:    "Wellness",
		SelectedCategories: []string{"Wellness"},
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindTransactionFailure, apperrors.KindOf(err))
	store.FailCommit = nil

	assert.Equal(t, 1, store.PreferenceCount(7))

	// Retry succeeds and lands the full set.
	res, err := svc.SaveSurveyResults(ctx, 7, &dto.SaveSurveyResultsRequest{
		PrimaryCategory:    "Wellness",
		SelectedCategories: []string{"Wellness"},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, res.Count)
	assert.Equal(t, 4, store.PreferenceCount(7))
}

func TestGetSurveyStatus_Lifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	status, err := svc.GetSurveyStatus(ctx, 7)
	require.NoError(t, err)
	assert.False(t, status.HasCompletedSurvey)
	assert.Equal(t, 0, status.PreferenceCount)
	assert.Empty(t, status.Groups)

	// A single toggle is enough to flip the signal.
	_, err = svc.ToggleFeature(ctx, 7, &dto.ToggleFeatureRequest{FeatureId: 10, IsEnabled: boolPtr(false)})
	require.NoError(t, err)

	status, err = svc.GetSurveyStatus(ctx, 7)
	require.NoError(t, err)
	assert.True(t, status.HasCompletedSurvey)
	assert.Equal(t, 1, status.PreferenceCount)
	assert.Equal(t, []string{"Wellness"}, status.Groups)

	// After a survey every group is touched; names are deduplicated.
	_, err = svc.SaveSurveyResults(ctx, 7, &dto.SaveSurveyResultsRequest{
		PrimaryCategory:    "Wellness",
		SelectedCategories: []string{"Wellness"},
	})
	require.NoError(t, err)

	status, err = svc.GetSurveyStatus(ctx, 7)
	require.NoError(t, err)
	assert.True(t, status.HasCompletedSurvey)
	assert.Equal(t, 4, status.PreferenceCount)
	assert.Equal(t, []string{"Wellness", "Productivity"}, status.Groups)
}

func TestGetCatalog_OrderAndDefaults(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	res, err := svc.GetCatalog(ctx)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "Wellness", res[0].Name)
	assert.Equal(t, uint(10), res[0].Features[0].Id)
	assert.Equal(t, uint(11), res[0].Features[1].Id)
	assert.True(t, res[1].Features[1].DefaultEnabled)
}
