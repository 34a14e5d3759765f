package service

import (
	"context"
	"exam_prep_backend/internal/model"
	"exam_prep_backend/internal/planner"
	"exam_prep_backend/internal/repository"
	"exam_prep_backend/pkg/logger"

	"go.uber.org/zap"
)

type QuizService struct {
	AttemptRepo   *repository.QuizAttemptRepository
	LiveStatsRepo *repository.LiveStatsRepository
	Clock         planner.Clock
}

func NewQuizService(
	attemptRepo *repository.QuizAttemptRepository,
	liveStatsRepo *repository.LiveStatsRepository,
	clock planner.Clock,
) *QuizService {
	return &QuizService{
		AttemptRepo:   attemptRepo,
		LiveStatsRepo: liveStatsRepo,
		Clock:         clock,
	}
}

type SubmitAttemptInput struct {
	Subject      string `json:"subject" binding:"required"`
	Topic        string `json:"topic"`
	Score        int    `json:"score"`
	Total        int    `json:"total"`
	IsCorrect    bool   `json:"isCorrect"`
	TimeSpentSec int    `json:"timeSpentSec"`
}

// Submit records one attempt and bumps the live dashboard counters. The
// quiz-level accuracy is precomputed here for grouped submissions; it later
// feeds the overall-accuracy mean, not the per-subject totals.
func (s *QuizService) Submit(ctx context.Context, userID uint, in SubmitAttemptInput) (*model.QuizAttempt, error) {
	attempt := &model.QuizAttempt{
		UserID:       userID,
		Subject:      in.Subject,
		Topic:        in.Topic,
		Score:        in.Score,
		Total:        in.Total,
		IsCorrect:    in.IsCorrect,
		TimeSpentSec: in.TimeSpentSec,
		CompletedAt:  s.Clock.Now(),
	}

	if in.Total > 0 {
		accuracy := float64(in.Score) / float64(in.Total) * 100
		attempt.Accuracy = &accuracy
	}

	if err := s.AttemptRepo.Create(attempt); err != nil {
		return nil, err
	}

	correct, attempted := in.Score, in.Total
	if in.Total == 0 {
		attempted = 1
		if in.IsCorrect {
			correct = 1
		}
	}
	if err := s.LiveStatsRepo.RecordAttempt(ctx, userID, correct, attempted, in.TimeSpentSec); err != nil {
		// Live counters are display-only; a redis hiccup must not fail the
		// submission.
		logger.Log.Warn("live stats update failed", zap.Uint("userID", userID), zap.Error(err))
	}

	return attempt, nil
}

func (s *QuizService) History(userID uint, windowDays int) ([]model.QuizAttempt, error) {
	since := s.Clock.Now().AddDate(0, 0, -windowDays)
	return s.AttemptRepo.FindByUserSince(userID, since)
}

func (s *QuizService) LiveStats(ctx context.Context, userID uint) repository.LiveStats {
	return s.LiveStatsRepo.Get(ctx, userID)
}

// WindowAccuracy reports correct/attempted over the trailing window, for
// the dashboard's seven-day figure.
func (s *QuizService) WindowAccuracy(userID uint, windowDays int) (float64, error) {
	since := s.Clock.Now().AddDate(0, 0, -windowDays)
	attempts, err := s.AttemptRepo.FindByUserSince(userID, since)
	if err != nil {
		return 0, err
	}

	var correct, attempted int
	for _, a := range attempts {
		if a.Total > 0 {
			correct += a.Score
			attempted += a.Total
		} else {
			attempted++
			if a.IsCorrect {
				correct++
			}
		}
	}
	if attempted == 0 {
		return 0, nil
	}
	return float64(correct) / float64(attempted) * 100, nil
}
