package planner

import (
	"fmt"
	"strings"
	"time"
)

const (
	weakAccuracyCutoff   = 60.0
	reviewAccuracyCutoff = 70.0
	strongAccuracyCutoff = 80.0

	defaultMinutes = 45
	weakMinutes    = 60
	strongMinutes  = 30
)

// Allocate converts aggregated performance into a plan draft. It is total
// and deterministic: the same Performance value always yields the same
// draft, and an empty one yields a plan with no subjects but both global
// recommendations (zero accuracy and zero quizzes trip them).
//
// Subjects come out in the aggregator's first-seen order; no further sort
// is applied.
func Allocate(perf Performance, now time.Time) Draft {
	draft := Draft{}

	for _, s := range perf.Subjects {
		priority := PriorityMedium
		allocated := defaultMinutes

		if s.AccuracyPct < weakAccuracyCutoff {
			priority = PriorityHigh
			allocated = weakMinutes
			draft.Recommendations = append(draft.Recommendations, Recommendation{
				Kind:     RecommendWeakness,
				Message:  fmt.Sprintf("Focus more on %s - Current accuracy: %.1f%%", s.Subject, s.AccuracyPct),
				Priority: PriorityHigh,
			})
		} else if s.AccuracyPct >= strongAccuracyCutoff {
			priority = PriorityLow
			allocated = strongMinutes
		}

		draft.Subjects = append(draft.Subjects, SubjectPlan{
			Name:          s.Subject,
			Priority:      priority,
			AllocatedTime: allocated,
			Topics:        topicBlocks(s),
		})
		draft.TotalStudyTime += allocated
	}

	if perf.OverallAccuracyPct < weakAccuracyCutoff {
		draft.Recommendations = append(draft.Recommendations, Recommendation{
			Kind:     RecommendGeneral,
			Message:  "Consider reviewing basic concepts across all subjects",
			Priority: PriorityHigh,
		})
	}
	if perf.TotalQuizzes < 3 {
		draft.Recommendations = append(draft.Recommendations, Recommendation{
			Kind:     RecommendPractice,
			Message:  "Take more practice quizzes to better assess your performance",
			Priority: PriorityMedium,
		})
	}

	draft.Performance = PerformanceSummary{
		OverallAccuracy:  perf.OverallAccuracyPct,
		Strengths:        perf.Strengths,
		Weaknesses:       perf.Weaknesses,
		ImprovementAreas: perf.Weaknesses,
	}
	draft.StudyGoals = []StudyGoal{
		{
			Goal:       "Complete all high-priority topics",
			TargetDate: now.Add(24 * time.Hour),
			Progress:   0,
		},
	}

	return draft
}

// topicBlocks synthesizes the session blocks for one subject. The review
// block is keyed on 70, independently of the 60/80 priority ladder, so a
// 70-79 subject ends up with a single practice block while both weaker and
// stronger subjects get two. That asymmetry is long-standing product
// behavior, not an oversight.
func topicBlocks(s SubjectSummary) []TopicBlock {
	var topics []TopicBlock

	if s.AccuracyPct < reviewAccuracyCutoff {
		topics = append(topics, block(
			fmt.Sprintf("%s Fundamentals Review", s.Subject),
			20, DifficultyMedium, "Strengthen foundation", FocusWeakness,
		))
	}

	practiceDifficulty := DifficultyMedium
	if s.AccuracyPct < weakAccuracyCutoff {
		practiceDifficulty = DifficultyEasy
	}
	topics = append(topics, block(
		fmt.Sprintf("%s Practice Problems", s.Subject),
		25, practiceDifficulty, "Regular practice", FocusRevision,
	))

	if s.AccuracyPct >= strongAccuracyCutoff {
		topics = append(topics, block(
			fmt.Sprintf("Advanced %s Concepts", s.Subject),
			15, DifficultyHard, "Challenge yourself", FocusStrength,
		))
	}

	return topics
}

func block(name string, duration int, d Difficulty, reason string, f FocusArea) TopicBlock {
	return TopicBlock{
		ID:         topicID(name),
		Name:       name,
		Duration:   duration,
		Difficulty: d,
		Reason:     reason,
		FocusArea:  f,
	}
}

// topicID derives a stable identifier from the block name so progress
// updates can address blocks without the allocator needing randomness.
func topicID(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
