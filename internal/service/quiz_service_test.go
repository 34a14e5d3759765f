package service

import (
	"context"
	"testing"
	"time"

	"exam_prep_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quizNow = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

func newQuizService(t *testing.T) (*QuizService, *testClock) {
	t.Helper()

	db := openTestDB(t)
	clock := &testClock{now: quizNow}
	attemptRepo := repository.NewQuizAttemptRepository(db)
	liveStats := repository.NewLiveStatsRepository(nil)
	return NewQuizService(attemptRepo, liveStats, clock), clock
}

func TestSubmitGroupedQuizComputesAccuracy(t *testing.T) {
	svc, _ := newQuizService(t)

	attempt, err := svc.Submit(context.Background(), 1, SubmitAttemptInput{
		Subject:      "Physics",
		Topic:        "Kinematics",
		Score:        6,
		Total:        8,
		TimeSpentSec: 600,
	})
	require.NoError(t, err)

	require.NotNil(t, attempt.Accuracy)
	assert.InDelta(t, 75.0, *attempt.Accuracy, 0.001)
	assert.True(t, attempt.CompletedAt.Equal(quizNow))
}

func TestSubmitSingleAnswerHasNoAccuracy(t *testing.T) {
	svc, _ := newQuizService(t)

	attempt, err := svc.Submit(context.Background(), 1, SubmitAttemptInput{
		Subject:   "Chemistry",
		IsCorrect: true,
	})
	require.NoError(t, err)

	assert.Nil(t, attempt.Accuracy, "single answers carry no quiz-level accuracy")
	assert.Zero(t, attempt.Total)
}

func TestSubmitSurvivesMissingRedis(t *testing.T) {
	svc, _ := newQuizService(t)

	_, err := svc.Submit(context.Background(), 1, SubmitAttemptInput{
		Subject: "Biology",
		Score:   3,
		Total:   5,
	})
	assert.NoError(t, err, "redis being down must not fail a submission")

	stats := svc.LiveStats(context.Background(), 1)
	assert.Zero(t, stats.QuestionsAttempted)
}

func TestWindowAccuracyMixesRawAndSingle(t *testing.T) {
	svc, _ := newQuizService(t)
	ctx := context.Background()

	// 6/8 from a grouped quiz plus 1/1 and 0/1 single answers: 7/10
	_, err := svc.Submit(ctx, 1, SubmitAttemptInput{Subject: "Physics", Score: 6, Total: 8})
	require.NoError(t, err)
	_, err = svc.Submit(ctx, 1, SubmitAttemptInput{Subject: "Physics", IsCorrect: true})
	require.NoError(t, err)
	_, err = svc.Submit(ctx, 1, SubmitAttemptInput{Subject: "Physics", IsCorrect: false})
	require.NoError(t, err)

	accuracy, err := svc.WindowAccuracy(1, 7)
	require.NoError(t, err)
	assert.InDelta(t, 70.0, accuracy, 0.001)
}

func TestWindowAccuracyNoAttempts(t *testing.T) {
	svc, _ := newQuizService(t)

	accuracy, err := svc.WindowAccuracy(1, 7)
	require.NoError(t, err)
	assert.Zero(t, accuracy)
}

func TestHistoryOnlyReturnsWindow(t *testing.T) {
	svc, clock := newQuizService(t)
	ctx := context.Background()

	clock.now = quizNow.AddDate(0, 0, -10)
	_, err := svc.Submit(ctx, 1, SubmitAttemptInput{Subject: "Physics", Score: 2, Total: 10})
	require.NoError(t, err)

	clock.now = quizNow
	_, err = svc.Submit(ctx, 1, SubmitAttemptInput{Subject: "Chemistry", Score: 8, Total: 10})
	require.NoError(t, err)

	attempts, err := svc.History(1, 7)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, "Chemistry", attempts[0].Subject)
}
