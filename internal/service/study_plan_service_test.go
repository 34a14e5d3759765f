package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"exam_prep_backend/internal/model"
	"exam_prep_backend/internal/planner"
	"exam_prep_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var planNow = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

func TestGenerateBuildsPlanFromWindow(t *testing.T) {
	clock := &testClock{now: planNow}
	svc, attempts, _ := newPlanService(t, clock)

	seedAttempt(t, attempts, 1, "Physics", 4, 10, planNow.AddDate(0, 0, -2))
	seedAttempt(t, attempts, 1, "Chemistry", 9, 10, planNow.AddDate(0, 0, -1))

	plan, err := svc.Generate(1)
	require.NoError(t, err)

	require.Len(t, plan.Subjects, 2)
	assert.Equal(t, "Physics", plan.Subjects[0].Name, "subjects keep first-attempt order")
	assert.Equal(t, planner.PriorityHigh, plan.Subjects[0].Priority)
	assert.Equal(t, 60, plan.Subjects[0].AllocatedTime)
	assert.Equal(t, planner.PriorityLow, plan.Subjects[1].Priority)
	assert.Equal(t, 30, plan.Subjects[1].AllocatedTime)
	assert.Equal(t, 90, plan.TotalStudyTime)

	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), plan.Date)
	assert.True(t, plan.NextRefreshAt.Equal(planNow.Add(24*time.Hour)))
	assert.Equal(t, model.PlanDaily, plan.PlanType)

	require.NotEmpty(t, plan.Recommendations)
	assert.Equal(t, planner.RecommendWeakness, plan.Recommendations[0].Kind)
	assert.Equal(t, "Focus more on Physics - Current accuracy: 40.0%", plan.Recommendations[0].Message)
}

func TestGenerateIgnoresAttemptsOutsideWindow(t *testing.T) {
	clock := &testClock{now: planNow}
	svc, attempts, _ := newPlanService(t, clock)

	seedAttempt(t, attempts, 1, "Physics", 1, 10, planNow.AddDate(0, 0, -20))
	seedAttempt(t, attempts, 1, "Chemistry", 9, 10, planNow.AddDate(0, 0, -1))

	plan, err := svc.Generate(1)
	require.NoError(t, err)

	require.Len(t, plan.Subjects, 1)
	assert.Equal(t, "Chemistry", plan.Subjects[0].Name)
}

func TestGenerateTwiceSameDayKeepsOneRow(t *testing.T) {
	clock := &testClock{now: planNow}
	svc, attempts, db := newPlanService(t, clock)

	seedAttempt(t, attempts, 1, "Physics", 4, 10, planNow.AddDate(0, 0, -1))

	first, err := svc.Generate(1)
	require.NoError(t, err)
	second, err := svc.Generate(1)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&model.StudyPlan{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGenerateWithNoHistory(t *testing.T) {
	clock := &testClock{now: planNow}
	svc, _, _ := newPlanService(t, clock)

	plan, err := svc.Generate(1)
	require.NoError(t, err)

	assert.Empty(t, plan.Subjects)
	require.Len(t, plan.Recommendations, 2, "zero accuracy and zero quizzes both fire")
	assert.Equal(t, planner.RecommendGeneral, plan.Recommendations[0].Kind)
	assert.Equal(t, planner.RecommendPractice, plan.Recommendations[1].Kind)

	require.Len(t, plan.StudyGoals, 1)
	assert.Equal(t, "Complete all high-priority topics", plan.StudyGoals[0].Goal)
	assert.True(t, plan.StudyGoals[0].TargetDate.Equal(planNow.Add(24*time.Hour)))
}

func TestCurrentKeepsFreshPlan(t *testing.T) {
	clock := &testClock{now: planNow}
	svc, attempts, db := newPlanService(t, clock)

	seedAttempt(t, attempts, 1, "Physics", 4, 10, planNow.AddDate(0, 0, -1))

	generated, err := svc.Generate(1)
	require.NoError(t, err)

	clock.now = planNow.Add(2 * time.Hour)
	current, err := svc.Current(1)
	require.NoError(t, err)

	assert.Equal(t, generated.ID, current.ID, "a same-day fresh plan is reused")

	var count int64
	require.NoError(t, db.Model(&model.StudyPlan{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCurrentRegeneratesNextDay(t *testing.T) {
	clock := &testClock{now: planNow}
	svc, attempts, db := newPlanService(t, clock)

	seedAttempt(t, attempts, 1, "Physics", 4, 10, planNow.AddDate(0, 0, -1))

	generated, err := svc.Generate(1)
	require.NoError(t, err)

	clock.now = planNow.AddDate(0, 0, 1)
	current, err := svc.Current(1)
	require.NoError(t, err)

	assert.NotEqual(t, generated.ID, current.ID)
	assert.True(t, current.Date.After(generated.Date))

	var count int64
	require.NoError(t, db.Model(&model.StudyPlan{}).Count(&count).Error)
	assert.Equal(t, int64(2), count, "the stale plan stays as history")
}

func TestCurrentFirstCallGenerates(t *testing.T) {
	clock := &testClock{now: planNow}
	svc, _, _ := newPlanService(t, clock)

	plan, err := svc.Current(1)
	require.NoError(t, err)
	assert.NotEmpty(t, plan.ID)
}

func TestUpdateProgress(t *testing.T) {
	clock := &testClock{now: planNow}
	svc, attempts, _ := newPlanService(t, clock)

	seedAttempt(t, attempts, 1, "Physics", 4, 10, planNow.AddDate(0, 0, -1))

	plan, err := svc.Generate(1)
	require.NoError(t, err)

	// a weak subject carries a review block and a practice block
	require.Len(t, plan.Subjects[0].Topics, 2)
	topicID := plan.Subjects[0].Topics[0].ID

	updated, err := svc.UpdateProgress(plan.ID, topicID, true)
	require.NoError(t, err)

	assert.True(t, updated.Subjects[0].Topics[0].Completed)
	assert.InDelta(t, 50.0, updated.CompletionPct, 0.001)

	reverted, err := svc.UpdateProgress(plan.ID, topicID, false)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, reverted.CompletionPct, 0.001)
}

func TestUpdateProgressUnknownTopic(t *testing.T) {
	clock := &testClock{now: planNow}
	svc, attempts, _ := newPlanService(t, clock)

	seedAttempt(t, attempts, 1, "Physics", 4, 10, planNow.AddDate(0, 0, -1))
	plan, err := svc.Generate(1)
	require.NoError(t, err)

	_, err = svc.UpdateProgress(plan.ID, "no-such-topic", true)
	assert.ErrorIs(t, err, util.ErrTopicNotFound)
}

func TestUpdateProgressUnknownPlan(t *testing.T) {
	clock := &testClock{now: planNow}
	svc, _, _ := newPlanService(t, clock)

	_, err := svc.UpdateProgress("missing-plan-id", "any-topic", true)
	assert.ErrorIs(t, err, util.ErrStudyPlanNotFound)
}

func TestExportWritesSnapshot(t *testing.T) {
	clock := &testClock{now: planNow}
	svc, attempts, _ := newPlanService(t, clock)

	seedAttempt(t, attempts, 1, "Physics", 4, 10, planNow.AddDate(0, 0, -1))
	plan, err := svc.Generate(1)
	require.NoError(t, err)

	url, err := svc.Export(context.Background(), 1, plan.ID)
	require.NoError(t, err)
	assert.Contains(t, url, "/uploads/plans/1/2025-06-10-"+plan.ID)

	local := svc.Storage.Provider.(*LocalStorageProvider)
	path := filepath.Join(local.Config.LocalPath, "plans", "1", "2025-06-10-"+plan.ID+".json")
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestExportOtherUsersPlan(t *testing.T) {
	clock := &testClock{now: planNow}
	svc, attempts, _ := newPlanService(t, clock)

	seedAttempt(t, attempts, 1, "Physics", 4, 10, planNow.AddDate(0, 0, -1))
	plan, err := svc.Generate(1)
	require.NoError(t, err)

	_, err = svc.Export(context.Background(), 2, plan.ID)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)
}

func TestScheduledPolicySelection(t *testing.T) {
	clock := &testClock{now: planNow}
	svc, attempts, db := newPlanService(t, clock)
	svc.Policy = planner.ScheduledRefreshPolicy{}

	seedAttempt(t, attempts, 1, "Physics", 4, 10, planNow.AddDate(0, 0, -1))

	generated, err := svc.Generate(1)
	require.NoError(t, err)

	// before NextRefreshAt the plan survives even on the next calendar day
	clock.now = planNow.Add(20 * time.Hour)
	current, err := svc.Current(1)
	require.NoError(t, err)
	assert.Equal(t, generated.ID, current.ID)

	clock.now = planNow.Add(25 * time.Hour)
	refreshed, err := svc.Current(1)
	require.NoError(t, err)
	assert.NotEqual(t, generated.ID, refreshed.ID)

	var count int64
	require.NoError(t, db.Model(&model.StudyPlan{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
