package service

import (
	"bytes"
	"context"
	"encoding/json"
	"exam_prep_backend/internal/config"
	"exam_prep_backend/internal/model"
	"exam_prep_backend/internal/planner"
	"exam_prep_backend/internal/repository"
	"exam_prep_backend/internal/util"
	"exam_prep_backend/pkg/logger"
	"exam_prep_backend/pkg/monitoring"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StudyPlanService owns the generate/refresh/progress lifecycle around the
// pure planner core. The core never touches storage or the wall clock, so
// everything time- and I/O-shaped lives here.
type StudyPlanService struct {
	PlanRepo    *repository.StudyPlanRepository
	AttemptRepo *repository.QuizAttemptRepository
	Storage     *StorageService
	Policy      planner.RefreshPolicy
	Clock       planner.Clock

	windowDays      int
	refreshInterval time.Duration
}

func NewStudyPlanService(
	planRepo *repository.StudyPlanRepository,
	attemptRepo *repository.QuizAttemptRepository,
	storage *StorageService,
	cfg *config.PlanConfig,
	clock planner.Clock,
) *StudyPlanService {
	var policy planner.RefreshPolicy = planner.NewDailyRefreshPolicy()
	if cfg.RefreshPolicy == "scheduled" {
		policy = planner.ScheduledRefreshPolicy{}
	}

	return &StudyPlanService{
		PlanRepo:        planRepo,
		AttemptRepo:     attemptRepo,
		Storage:         storage,
		Policy:          policy,
		Clock:           clock,
		windowDays:      cfg.WindowDays,
		refreshInterval: time.Duration(cfg.RefreshIntervalHrs) * time.Hour,
	}
}

// Generate builds a fresh plan from the trailing performance window and
// upserts it as today's plan for the user.
func (s *StudyPlanService) Generate(userID uint) (*model.StudyPlan, error) {
	plan, err := s.regenerate(userID)
	if err != nil {
		return nil, err
	}
	monitoring.PlansGenerated.WithLabelValues("explicit").Inc()
	return plan, nil
}

// Current returns the user's active plan, lazily regenerating when the
// configured refresh policy says the stored one is stale.
func (s *StudyPlanService) Current(userID uint) (*model.StudyPlan, error) {
	now := s.Clock.Now()

	existing, err := s.PlanRepo.FindLatest(userID)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}

	var stamp *planner.PlanStamp
	if existing != nil && err == nil {
		stamp = &planner.PlanStamp{
			Date:          existing.Date,
			LastUpdated:   existing.LastUpdated,
			NextRefreshAt: existing.NextRefreshAt,
		}
	}

	if !s.Policy.NeedsRegeneration(stamp, now) {
		return existing, nil
	}

	plan, err := s.regenerate(userID)
	if err != nil {
		return nil, err
	}
	monitoring.PlansGenerated.WithLabelValues("stale").Inc()
	return plan, nil
}

// UpdateProgress flips one topic block's completion flag and recomputes the
// plan-wide completion percentage (completed blocks over total blocks).
func (s *StudyPlanService) UpdateProgress(planID, topicID string, completed bool) (*model.StudyPlan, error) {
	plan, err := s.PlanRepo.FindByID(planID)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrStudyPlanNotFound
	} else if err != nil {
		return nil, err
	}

	found := false
	for i := range plan.Subjects {
		for j := range plan.Subjects[i].Topics {
			if plan.Subjects[i].Topics[j].ID == topicID {
				plan.Subjects[i].Topics[j].Completed = completed
				found = true
			}
		}
	}
	if !found {
		return nil, util.ErrTopicNotFound
	}

	done, total := plan.TopicCount()
	if total > 0 {
		plan.CompletionPct = float64(done) / float64(total) * 100
	}
	plan.LastUpdated = s.Clock.Now()

	if err := s.PlanRepo.Save(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// Export snapshots a plan as a JSON object in storage and returns its URL.
// The snapshot captures the plan as it stands; later progress updates do
// not rewrite exported copies.
func (s *StudyPlanService) Export(ctx context.Context, userID uint, planID string) (string, error) {
	plan, err := s.PlanRepo.FindByID(planID)
	if err == gorm.ErrRecordNotFound {
		return "", util.ErrStudyPlanNotFound
	} else if err != nil {
		return "", err
	}
	if plan.UserID != userID {
		return "", util.ErrPermissionDenied
	}

	payload, err := json.Marshal(plan)
	if err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("plans/%d/%s-%s.json", userID, plan.Date.Format("2006-01-02"), plan.ID)
	return s.Storage.Upload(ctx, objectName, bytes.NewReader(payload), int64(len(payload)), "application/json")
}

func (s *StudyPlanService) History(userID uint, limit int) ([]model.StudyPlan, error) {
	if limit <= 0 || limit > 100 {
		limit = 30
	}
	return s.PlanRepo.History(userID, limit)
}

func (s *StudyPlanService) regenerate(userID uint) (*model.StudyPlan, error) {
	now := s.Clock.Now()
	since := now.AddDate(0, 0, -s.windowDays)

	attempts, err := s.AttemptRepo.FindByUserSince(userID, since)
	if err != nil {
		return nil, err
	}

	perf := planner.Aggregate(toPlannerAttempts(attempts))
	if perf.Dropped > 0 {
		logger.Log.Debug("plan aggregation skipped malformed attempts",
			zap.Uint("userID", userID),
			zap.Int("dropped", perf.Dropped),
		)
	}

	draft := planner.Allocate(perf, now)

	plan := &model.StudyPlan{
		UserID:          userID,
		Date:            time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		LastUpdated:     now,
		NextRefreshAt:   now.Add(s.refreshInterval),
		PlanType:        model.PlanDaily,
		Subjects:        draft.Subjects,
		Performance:     draft.Performance,
		Recommendations: draft.Recommendations,
		StudyGoals:      draft.StudyGoals,
		TotalStudyTime:  draft.TotalStudyTime,
	}

	if err := s.PlanRepo.Upsert(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// toPlannerAttempts maps stored rows onto the planner's tagged input:
// grouped quizzes carry their raw score, everything else counts as a single
// answered question.
func toPlannerAttempts(attempts []model.QuizAttempt) []planner.Attempt {
	out := make([]planner.Attempt, 0, len(attempts))
	for _, a := range attempts {
		var result planner.Result
		if a.Total > 0 {
			result = planner.RawScore{Score: a.Score, Total: a.Total}
		} else {
			result = planner.SingleAnswer{Correct: a.IsCorrect}
		}
		out = append(out, planner.Attempt{
			Subject:  a.Subject,
			Topic:    a.Topic,
			Result:   result,
			Accuracy: a.Accuracy,
		})
	}
	return out
}
