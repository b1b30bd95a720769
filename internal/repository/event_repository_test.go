package repository

import (
	"context"
	"course_insights_backend/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 内存库每个连接各自独立
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func newEventRepository(t *testing.T) *EventRepository {
	t.Helper()
	repo := NewEventRepository(newTestDB(t))
	require.NoError(t, repo.Migrate())
	return repo
}

func TestEventRepository_RoundTripKeepsOrder(t *testing.T) {
	repo := newEventRepository(t)
	ctx := context.Background()

	spent := model.ParseDuration("00:45:10")
	records := []model.FlatRecord{
		{ChapterID: "ch2", ChapterNo: 2, UnitID: "u1", UserID: "s1", UnitAccuracy: 70, UnitTimeSpent: &spent},
		{ChapterID: "ch1", ChapterNo: 1, UnitID: "u1", UserID: "s2", UnitAccuracy: 40},
		{ChapterID: "ch1", ChapterNo: 1, UnitID: "u1", UserID: "s2", ConceptID: "c1", ConceptAccuracy: 55, ActivityAttempts: 3, SequenceBuilderID: "sb1"},
	}
	now := time.Now()
	events := make([]*model.LearningEvent, 0, len(records))
	for _, r := range records {
		events = append(events, model.NewLearningEvent(r, now))
	}
	require.NoError(t, repo.CreateBatch(ctx, events))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	source := &DatabaseRecordSource{Events: repo}
	got, err := source.Fetch(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, model.ID("ch2"), got[0].ChapterID)
	require.NotNil(t, got[0].UnitTimeSpent)
	assert.Equal(t, int64(2710), got[0].UnitTimeSpent.Seconds())
	assert.Nil(t, got[1].UnitTimeSpent)
	assert.Equal(t, model.ID("sb1"), got[2].ActivityKey())
	assert.Equal(t, 55.0, got[2].ConceptAccuracy.Float())
}

func TestEventRepository_Truncate(t *testing.T) {
	repo := newEventRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateBatch(ctx, []*model.LearningEvent{
		model.NewLearningEvent(model.FlatRecord{ChapterID: "ch1"}, time.Now()),
	}))
	require.NoError(t, repo.Truncate(ctx))

	events, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestEventRepository_CreateBatchEmpty(t *testing.T) {
	repo := newEventRepository(t)
	assert.NoError(t, repo.CreateBatch(context.Background(), nil))
}
