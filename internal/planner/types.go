// Package planner turns a student's recent quiz history into a prioritized,
// time-boxed daily study plan. It is pure computation: no I/O, no clock of
// its own, no shared state. Callers load attempts, hand them to Aggregate,
// feed the result to Allocate and persist the draft.
package planner

import "time"

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type FocusArea string

const (
	FocusWeakness FocusArea = "weakness"
	FocusRevision FocusArea = "revision"
	FocusStrength FocusArea = "strength"
)

type RecommendationKind string

const (
	RecommendWeakness RecommendationKind = "weakness"
	RecommendGeneral  RecommendationKind = "general"
	RecommendPractice RecommendationKind = "practice"
)

// Result is what one attempt contributed, either a grouped quiz score or a
// single answered question. Normalizing here keeps field-presence branching
// out of the aggregation loop.
type Result interface {
	counts() (correct, attempted int)
}

// RawScore is a grouped quiz result: Score out of Total questions.
type RawScore struct {
	Score int
	Total int
}

func (r RawScore) counts() (int, int) { return r.Score, r.Total }

// SingleAnswer is one answered question.
type SingleAnswer struct {
	Correct bool
}

func (s SingleAnswer) counts() (int, int) {
	if s.Correct {
		return 1, 1
	}
	return 0, 1
}

// Attempt is the read-only input unit. Accuracy, when present, is the
// quiz-level percentage precomputed upstream; it feeds the overall mean
// only, never the per-subject totals.
type Attempt struct {
	Subject  string
	Topic    string
	Result   Result
	Accuracy *float64
}

// SubjectSummary is recomputed on every run and never persisted on its own.
type SubjectSummary struct {
	Subject        string
	TotalCorrect   int
	TotalAttempted int
	AccuracyPct    float64
	Topics         []string // distinct topics, first-seen order
}

// Performance is the aggregator's output. Subjects preserve first-seen
// order; that order flows through to the plan's display order.
type Performance struct {
	Subjects           []SubjectSummary
	Strengths          []string
	Weaknesses         []string
	OverallAccuracyPct float64
	TotalQuizzes       int
	Dropped            int // attempts skipped for a missing subject
}

type TopicBlock struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Duration   int        `json:"duration"` // minutes
	Difficulty Difficulty `json:"difficulty"`
	Reason     string     `json:"reason"`
	FocusArea  FocusArea  `json:"focusArea"`
	Completed  bool       `json:"completed"`
}

type SubjectPlan struct {
	Name          string       `json:"name"`
	Priority      Priority     `json:"priority"`
	AllocatedTime int          `json:"allocatedTime"` // minutes
	Topics        []TopicBlock `json:"topics"`
}

type Recommendation struct {
	Kind     RecommendationKind `json:"type"`
	Message  string             `json:"message"`
	Priority Priority           `json:"priority"`
}

type StudyGoal struct {
	Goal       string    `json:"goal"`
	TargetDate time.Time `json:"targetDate"`
	Progress   float64   `json:"progress"`
}

type PerformanceSummary struct {
	OverallAccuracy  float64  `json:"overallAccuracy"`
	Strengths        []string `json:"strengths"`
	Weaknesses       []string `json:"weaknesses"`
	ImprovementAreas []string `json:"improvementAreas"`
}

// Draft is an allocated plan before the owning service stamps identity and
// persistence metadata onto it.
type Draft struct {
	Subjects        []SubjectPlan
	Performance     PerformanceSummary
	Recommendations []Recommendation
	StudyGoals      []StudyGoal
	TotalStudyTime  int
}
