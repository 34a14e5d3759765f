package service

import (
	"exam_prep_backend/internal/planner"
	"exam_prep_backend/internal/repository"
)

// AnalyticsService backs the admin console: windowed performance summaries
// across the student roster, reusing the same aggregation the planner runs
// for a single student.
type AnalyticsService struct {
	UserRepo    *repository.UserRepository
	AttemptRepo *repository.QuizAttemptRepository
	Clock       planner.Clock
	WindowDays  int
}

func NewAnalyticsService(
	userRepo *repository.UserRepository,
	attemptRepo *repository.QuizAttemptRepository,
	clock planner.Clock,
	windowDays int,
) *AnalyticsService {
	return &AnalyticsService{
		UserRepo:    userRepo,
		AttemptRepo: attemptRepo,
		Clock:       clock,
		WindowDays:  windowDays,
	}
}

type StudentPerformanceItem struct {
	StudentID       uint     `json:"studentId"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	TargetExam      string   `json:"targetExam"`
	QuizzesInWindow int      `json:"quizzesInWindow"`
	OverallAccuracy float64  `json:"overallAccuracy"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
}

func (s *AnalyticsService) ListStudentPerformance(page, pageSize int, search string) ([]StudentPerformanceItem, int64, error) {
	students, total, err := s.UserRepo.ListStudents(page, pageSize, search)
	if err != nil {
		return nil, 0, err
	}

	since := s.Clock.Now().AddDate(0, 0, -s.WindowDays)

	items := make([]StudentPerformanceItem, 0, len(students))
	for _, student := range students {
		attempts, err := s.AttemptRepo.FindByUserSince(student.ID, since)
		if err != nil {
			return nil, 0, err
		}
		perf := planner.Aggregate(toPlannerAttempts(attempts))

		items = append(items, StudentPerformanceItem{
			StudentID:       student.ID,
			Name:            student.Name,
			Email:           student.Email,
			TargetExam:      student.TargetExam,
			QuizzesInWindow: perf.TotalQuizzes,
			OverallAccuracy: perf.OverallAccuracyPct,
			Strengths:       perf.Strengths,
			Weaknesses:      perf.Weaknesses,
		})
	}

	return items, total, nil
}
