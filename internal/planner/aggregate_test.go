package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pct(v float64) *float64 { return &v }

func TestAggregateEmptyInput(t *testing.T) {
	perf := Aggregate(nil)

	assert.Empty(t, perf.Subjects)
	assert.Empty(t, perf.Strengths)
	assert.Empty(t, perf.Weaknesses)
	assert.Zero(t, perf.OverallAccuracyPct)
	assert.Zero(t, perf.TotalQuizzes)
}

func TestAggregateSingleSubjectAccuracy(t *testing.T) {
	attempts := []Attempt{
		{Subject: "Physics", Result: SingleAnswer{Correct: true}},
		{Subject: "Physics", Result: SingleAnswer{Correct: true}},
		{Subject: "Physics", Result: SingleAnswer{Correct: false}},
		{Subject: "Physics", Result: SingleAnswer{Correct: true}},
	}

	perf := Aggregate(attempts)

	require.Len(t, perf.Subjects, 1)
	s := perf.Subjects[0]
	assert.Equal(t, "Physics", s.Subject)
	assert.Equal(t, 3, s.TotalCorrect)
	assert.Equal(t, 4, s.TotalAttempted)
	assert.InDelta(t, 75.0, s.AccuracyPct, 0.0001)
	assert.Equal(t, 4, perf.TotalQuizzes)
}

func TestAggregateGroupedScores(t *testing.T) {
	attempts := []Attempt{
		{Subject: "Chemistry", Result: RawScore{Score: 9, Total: 10}, Accuracy: pct(90)},
		{Subject: "Chemistry", Result: RawScore{Score: 8, Total: 10}, Accuracy: pct(80)},
	}

	perf := Aggregate(attempts)

	require.Len(t, perf.Subjects, 1)
	assert.Equal(t, 17, perf.Subjects[0].TotalCorrect)
	assert.Equal(t, 20, perf.Subjects[0].TotalAttempted)
	assert.InDelta(t, 85.0, perf.Subjects[0].AccuracyPct, 0.0001)
	assert.InDelta(t, 85.0, perf.OverallAccuracyPct, 0.0001)
}

// Overall accuracy is the mean of the quiz-level figures, not a
// recomputation from totals, so the two can diverge.
func TestAggregateOverallIsMeanOfQuizAccuracies(t *testing.T) {
	attempts := []Attempt{
		{Subject: "Physics", Result: RawScore{Score: 1, Total: 10}, Accuracy: pct(10)},
		{Subject: "Physics", Result: RawScore{Score: 90, Total: 100}, Accuracy: pct(90)},
	}

	perf := Aggregate(attempts)

	// Mean of quiz accuracies: (10 + 90) / 2.
	assert.InDelta(t, 50.0, perf.OverallAccuracyPct, 0.0001)
	// Subject accuracy from totals: 91/110.
	assert.InDelta(t, 82.7272, perf.Subjects[0].AccuracyPct, 0.001)
}

func TestAggregateClassification(t *testing.T) {
	attempts := []Attempt{
		{Subject: "Physics", Result: RawScore{Score: 4, Total: 10}},   // 40 -> weakness
		{Subject: "Chemistry", Result: RawScore{Score: 9, Total: 10}}, // 90 -> strength
		{Subject: "Math", Result: RawScore{Score: 7, Total: 10}},      // 70 -> neither
	}

	perf := Aggregate(attempts)

	assert.Equal(t, []string{"Chemistry"}, perf.Strengths)
	assert.Equal(t, []string{"Physics"}, perf.Weaknesses)
}

func TestAggregateClassificationBoundaries(t *testing.T) {
	attempts := []Attempt{
		{Subject: "Sixty", Result: RawScore{Score: 60, Total: 100}},
		{Subject: "Eighty", Result: RawScore{Score: 80, Total: 100}},
	}

	perf := Aggregate(attempts)

	// Exactly 60 is not a weakness; exactly 80 is a strength.
	assert.Empty(t, perf.Weaknesses)
	assert.Equal(t, []string{"Eighty"}, perf.Strengths)
}

func TestAggregateDropsAttemptsWithoutSubject(t *testing.T) {
	attempts := []Attempt{
		{Subject: "", Result: SingleAnswer{Correct: true}},
		{Subject: "Physics", Result: nil},
		{Subject: "Physics", Result: SingleAnswer{Correct: true}},
	}

	perf := Aggregate(attempts)

	require.Len(t, perf.Subjects, 1)
	assert.Equal(t, 2, perf.Dropped)
	assert.Equal(t, 1, perf.TotalQuizzes)
}

func TestAggregateZeroAttemptedNeverDividesByZero(t *testing.T) {
	perf := Aggregate([]Attempt{
		{Subject: "Physics", Result: RawScore{Score: 0, Total: 0}},
	})

	require.Len(t, perf.Subjects, 1)
	assert.Zero(t, perf.Subjects[0].AccuracyPct)
	assert.GreaterOrEqual(t, perf.Subjects[0].AccuracyPct, 0.0)
	assert.LessOrEqual(t, perf.Subjects[0].AccuracyPct, 100.0)
}

func TestAggregateTopicsAreDistinctFirstSeen(t *testing.T) {
	attempts := []Attempt{
		{Subject: "Physics", Topic: "Kinematics", Result: SingleAnswer{Correct: true}},
		{Subject: "Physics", Topic: "Optics", Result: SingleAnswer{Correct: false}},
		{Subject: "Physics", Topic: "Kinematics", Result: SingleAnswer{Correct: true}},
	}

	perf := Aggregate(attempts)

	assert.Equal(t, []string{"Kinematics", "Optics"}, perf.Subjects[0].Topics)
}

func TestAggregateSubjectOrderIsFirstSeen(t *testing.T) {
	attempts := []Attempt{
		{Subject: "Chemistry", Result: SingleAnswer{Correct: true}},
		{Subject: "Physics", Result: SingleAnswer{Correct: true}},
		{Subject: "Chemistry", Result: SingleAnswer{Correct: false}},
		{Subject: "Math", Result: SingleAnswer{Correct: true}},
	}

	perf := Aggregate(attempts)

	require.Len(t, perf.Subjects, 3)
	assert.Equal(t, "Chemistry", perf.Subjects[0].Subject)
	assert.Equal(t, "Physics", perf.Subjects[1].Subject)
	assert.Equal(t, "Math", perf.Subjects[2].Subject)
}
