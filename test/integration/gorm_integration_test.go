package integration

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"feature-prefs-be/internal/entity"
	"feature-prefs-be/internal/model"
	"feature-prefs-be/internal/repository/specification"
	"feature-prefs-be/internal/repository/unitofwork"
	"feature-prefs-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormPreferenceStore(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	require.NoError(t, gormDB.AutoMigrate(
		&model.Group{}, &model.Feature{}, &model.UserFeaturePreference{},
	))

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)

	assert.NotNil(t, uow.GroupRepository())
	assert.NotNil(t, uow.PreferenceRepository())

	sqlDB, _ := gormDB.DB()
	require.NoError(t, sqlDB.Ping())

	// Unique names per run so reruns don't collide.
	suffix := time.Now().UnixNano()
	group := model.Group{Name: fmt.Sprintf("Integration Group %d", suffix)}
	require.NoError(t, gormDB.Create(&group).Error)
	feature := model.Feature{GroupId: group.Id, Name: "Integration Basic Feature"}
	require.NoError(t, gormDB.Create(&feature).Error)

	userId := uint(suffix%1_000_000) + 1

	t.Run("Upsert is idempotent on the composite key", func(t *testing.T) {
		pref := &entity.UserFeaturePreference{UserId: userId, FeatureId: feature.Id, IsEnabled: true}
		require.NoError(t, uow.PreferenceRepository().Upsert(ctx, pref))
		firstId := pref.Id

		again := &entity.UserFeaturePreference{UserId: userId, FeatureId: feature.Id, IsEnabled: true}
		require.NoError(t, uow.PreferenceRepository().Upsert(ctx, again))
		assert.Equal(t, firstId, again.Id)

		count, err := uow.PreferenceRepository().CountByUser(ctx, userId)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Full replace is transactional", func(t *testing.T) {
		txUow := uowFactory.NewUnitOfWork(ctx)
		require.NoError(t, txUow.Begin(ctx))
		defer txUow.Rollback()

		require.NoError(t, txUow.PreferenceRepository().DeleteAllByUser(ctx, userId))
		require.NoError(t, txUow.PreferenceRepository().CreateBatch(ctx, []*entity.UserFeaturePreference{
			{UserId: userId, FeatureId: feature.Id, IsEnabled: false},
		}))

		// Outside the transaction the old row is still visible.
		outside, err := uow.PreferenceRepository().FindAll(ctx, specification.UserOwnedBy{UserID: userId})
		require.NoError(t, err)
		require.Len(t, outside, 1)
		assert.True(t, outside[0].IsEnabled)

		require.NoError(t, txUow.Commit())

		committed, err := uow.PreferenceRepository().FindAll(ctx, specification.UserOwnedBy{UserID: userId})
		require.NoError(t, err)
		require.Len(t, committed, 1)
		assert.False(t, committed[0].IsEnabled)
	})

	t.Run("Catalog ordering is stable", func(t *testing.T) {
		groups, err := uow.GroupRepository().FindAllWithFeatures(ctx)
		require.NoError(t, err)
		for i := 1; i < len(groups); i++ {
			prev, cur := groups[i-1], groups[i]
			ok := prev.CreatedAt.Before(cur.CreatedAt) ||
				(prev.CreatedAt.Equal(cur.CreatedAt) && prev.Id < cur.Id)
			assert.True(t, ok, "groups out of order at %d", i)
		}
	})
}
