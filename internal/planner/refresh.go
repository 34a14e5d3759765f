package planner

import "time"

// Clock supplies the current time. Injected so refresh decisions are
// testable; SystemClock is the production implementation.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// PlanStamp is the slice of a stored plan the refresh policies look at.
type PlanStamp struct {
	Date          time.Time
	LastUpdated   time.Time
	NextRefreshAt time.Time
}

// RefreshPolicy decides whether a stored plan is still current. A nil stamp
// (no plan on record) always regenerates.
//
// Two rules shipped historically and both are kept as named policies rather
// than silently merged: the fixed-24h daily rule and the explicit
// next-refresh-time rule. Config selects one; daily is the default.
type RefreshPolicy interface {
	NeedsRegeneration(stamp *PlanStamp, now time.Time) bool
}

// DailyRefreshPolicy regenerates when the plan predates today or its last
// update is older than MaxAge.
type DailyRefreshPolicy struct {
	MaxAge time.Duration
}

func NewDailyRefreshPolicy() DailyRefreshPolicy {
	return DailyRefreshPolicy{MaxAge: 24 * time.Hour}
}

func (p DailyRefreshPolicy) NeedsRegeneration(stamp *PlanStamp, now time.Time) bool {
	if stamp == nil {
		return true
	}
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if stamp.Date.Before(startOfToday) {
		return true
	}
	return now.Sub(stamp.LastUpdated) > p.MaxAge
}

// ScheduledRefreshPolicy regenerates once the plan's stored NextRefreshAt
// instant has been reached.
type ScheduledRefreshPolicy struct{}

func (ScheduledRefreshPolicy) NeedsRegeneration(stamp *PlanStamp, now time.Time) bool {
	if stamp == nil {
		return true
	}
	return !now.Before(stamp.NextRefreshAt)
}
