package repository

import (
	"testing"
	"time"

	"exam_prep_backend/internal/model"
	"exam_prep_backend/internal/planner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func planFor(userID uint, date time.Time) *model.StudyPlan {
	return &model.StudyPlan{
		UserID:        userID,
		Date:          date,
		LastUpdated:   date,
		NextRefreshAt: date.Add(24 * time.Hour),
		PlanType:      model.PlanDaily,
		Subjects: []planner.SubjectPlan{
			{
				Name: "Physics",
				Topics: []planner.TopicBlock{
					{ID: "physics-fundamentals", Name: "Physics Fundamentals", Duration: 30},
				},
			},
		},
	}
}

func TestStudyPlanUpsertCreatesThenOverwrites(t *testing.T) {
	db := openTestDB(t)
	repo := NewStudyPlanRepository(db)

	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	first := planFor(1, date)
	require.NoError(t, repo.Upsert(first))
	require.NotEmpty(t, first.ID)

	second := planFor(1, date)
	second.TotalStudyTime = 90
	require.NoError(t, repo.Upsert(second))

	assert.Equal(t, first.ID, second.ID, "same user and date must land on the same row")

	var count int64
	require.NoError(t, db.Model(&model.StudyPlan{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	stored, err := repo.FindByID(first.ID)
	require.NoError(t, err)
	assert.Equal(t, 90, stored.TotalStudyTime)
}

func TestStudyPlanUpsertSeparateDays(t *testing.T) {
	db := openTestDB(t)
	repo := NewStudyPlanRepository(db)

	day1 := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	require.NoError(t, repo.Upsert(planFor(1, day1)))
	require.NoError(t, repo.Upsert(planFor(1, day2)))

	var count int64
	require.NoError(t, db.Model(&model.StudyPlan{}).Count(&count).Error)
	assert.Equal(t, int64(2), count, "a new day supersedes without deleting history")
}

func TestStudyPlanFindLatest(t *testing.T) {
	db := openTestDB(t)
	repo := NewStudyPlanRepository(db)

	day1 := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	require.NoError(t, repo.Upsert(planFor(1, day1)))
	require.NoError(t, repo.Upsert(planFor(1, day2)))
	require.NoError(t, repo.Upsert(planFor(2, day1)))

	latest, err := repo.FindLatest(1)
	require.NoError(t, err)
	assert.True(t, latest.Date.Equal(day2))
	assert.Equal(t, uint(1), latest.UserID)
}

func TestStudyPlanFindLatestNoPlans(t *testing.T) {
	db := openTestDB(t)
	repo := NewStudyPlanRepository(db)

	_, err := repo.FindLatest(42)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestStudyPlanHistoryNewestFirst(t *testing.T) {
	db := openTestDB(t)
	repo := NewStudyPlanRepository(db)

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Upsert(planFor(1, base.AddDate(0, 0, i))))
	}

	plans, err := repo.History(1, 3)
	require.NoError(t, err)
	require.Len(t, plans, 3)
	assert.True(t, plans[0].Date.After(plans[1].Date))
	assert.True(t, plans[1].Date.After(plans[2].Date))
}

func TestStudyPlanCountSince(t *testing.T) {
	db := openTestDB(t)
	repo := NewStudyPlanRepository(db)

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		require.NoError(t, repo.Upsert(planFor(1, base.AddDate(0, 0, i))))
	}

	count, err := repo.CountSince(1, base.AddDate(0, 0, 2))
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
