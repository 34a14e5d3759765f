package service

import (
	"context"
	"exam_prep_backend/internal/planner"
	"exam_prep_backend/internal/repository"
)

type DashboardService struct {
	StudyPlanService *StudyPlanService
	QuizService      *QuizService
	WindowDays       int
}

func NewDashboardService(studyPlanService *StudyPlanService, quizService *QuizService, windowDays int) *DashboardService {
	return &DashboardService{
		StudyPlanService: studyPlanService,
		QuizService:      quizService,
		WindowDays:       windowDays,
	}
}

type PlanSummary struct {
	PlanID          string                   `json:"planId"`
	TotalStudyTime  int                      `json:"totalStudyTime"`
	CompletionPct   float64                  `json:"completionPct"`
	Subjects        []planner.SubjectPlan    `json:"subjects"`
	Recommendations []planner.Recommendation `json:"recommendations"`
}

type Dashboard struct {
	TodayPlan      PlanSummary          `json:"todayPlan"`
	LiveStats      repository.LiveStats `json:"liveStats"`
	WindowAccuracy float64              `json:"windowAccuracy"`
}

// GetDashboard assembles the student home view: today's plan (regenerated
// lazily if stale), the live counters and the trailing-window accuracy.
// Live counters feed only this display; the plan itself always comes from
// re-aggregated history.
func (s *DashboardService) GetDashboard(ctx context.Context, userID uint) (*Dashboard, error) {
	plan, err := s.StudyPlanService.Current(userID)
	if err != nil {
		return nil, err
	}

	accuracy, err := s.QuizService.WindowAccuracy(userID, s.WindowDays)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		TodayPlan: PlanSummary{
			PlanID:          plan.ID,
			TotalStudyTime:  plan.TotalStudyTime,
			CompletionPct:   plan.CompletionPct,
			Subjects:        plan.Subjects,
			Recommendations: plan.Recommendations,
		},
		LiveStats:      s.QuizService.LiveStats(ctx, userID),
		WindowAccuracy: accuracy,
	}, nil
}
