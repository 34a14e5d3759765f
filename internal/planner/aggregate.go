package planner

// Aggregate folds a window of attempts into per-subject summaries. The
// caller is responsible for restricting attempts to the reporting window;
// Aggregate does not re-filter by time.
//
// Overall accuracy is the arithmetic mean of the quiz-level Accuracy values
// present in the window, not correct/attempted over all rows. Subject
// accuracy IS computed from totals, so the two figures can diverge; that
// mirrors how the product has always reported them.
func Aggregate(attempts []Attempt) Performance {
	perf := Performance{}
	index := map[string]int{}

	var accuracySum float64
	var accuracyCount int

	for _, a := range attempts {
		if a.Subject == "" || a.Result == nil {
			perf.Dropped++
			continue
		}
		perf.TotalQuizzes++

		i, ok := index[a.Subject]
		if !ok {
			i = len(perf.Subjects)
			index[a.Subject] = i
			perf.Subjects = append(perf.Subjects, SubjectSummary{Subject: a.Subject})
		}

		correct, attempted := a.Result.counts()
		perf.Subjects[i].TotalCorrect += correct
		perf.Subjects[i].TotalAttempted += attempted

		if a.Topic != "" && !containsString(perf.Subjects[i].Topics, a.Topic) {
			perf.Subjects[i].Topics = append(perf.Subjects[i].Topics, a.Topic)
		}

		if a.Accuracy != nil {
			accuracySum += *a.Accuracy
			accuracyCount++
		}
	}

	for i := range perf.Subjects {
		s := &perf.Subjects[i]
		if s.TotalAttempted > 0 {
			s.AccuracyPct = float64(s.TotalCorrect) / float64(s.TotalAttempted) * 100
		}
		// Only top and bottom performers get flagged; the 60-79.9 band is
		// deliberately left unclassified.
		switch {
		case s.AccuracyPct >= 80:
			perf.Strengths = append(perf.Strengths, s.Subject)
		case s.AccuracyPct < 60:
			perf.Weaknesses = append(perf.Weaknesses, s.Subject)
		}
	}

	if accuracyCount > 0 {
		perf.OverallAccuracyPct = accuracySum / float64(accuracyCount)
	}

	return perf
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
