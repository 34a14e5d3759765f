package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// LiveStatsRepository keeps fast-moving per-student counters in redis for
// the dashboard. These counters only feed the display layer; the plan
// generator always re-aggregates from the attempt store.
type LiveStatsRepository struct {
	RDB *redis.Client
}

func NewLiveStatsRepository(rdb *redis.Client) *LiveStatsRepository {
	return &LiveStatsRepository{RDB: rdb}
}

type LiveStats struct {
	QuestionsAttempted int64 `json:"questionsAttempted"`
	QuestionsCorrect   int64 `json:"questionsCorrect"`
	QuizzesCompleted   int64 `json:"quizzesCompleted"`
	TimeSpentSec       int64 `json:"timeSpentSec"`
}

func liveStatsKey(userID uint) string {
	return fmt.Sprintf("livestats:%d", userID)
}

func (r *LiveStatsRepository) RecordAttempt(ctx context.Context, userID uint, correct, attempted, timeSpentSec int) error {
	if r.RDB == nil {
		return nil
	}
	key := liveStatsKey(userID)
	pipe := r.RDB.TxPipeline()
	pipe.HIncrBy(ctx, key, "attempted", int64(attempted))
	pipe.HIncrBy(ctx, key, "correct", int64(correct))
	pipe.HIncrBy(ctx, key, "quizzes", 1)
	pipe.HIncrBy(ctx, key, "time_spent", int64(timeSpentSec))
	pipe.Expire(ctx, key, 48*time.Hour)
	_, err := pipe.Exec(ctx)
	return err
}

// Get returns the current counters; a cold or unreachable redis yields
// zeros rather than an error so the dashboard degrades gracefully.
func (r *LiveStatsRepository) Get(ctx context.Context, userID uint) LiveStats {
	stats := LiveStats{}
	if r.RDB == nil {
		return stats
	}
	values, err := r.RDB.HGetAll(ctx, liveStatsKey(userID)).Result()
	if err != nil {
		return stats
	}
	stats.QuestionsAttempted = parseCounter(values["attempted"])
	stats.QuestionsCorrect = parseCounter(values["correct"])
	stats.QuizzesCompleted = parseCounter(values["quizzes"])
	stats.TimeSpentSec = parseCounter(values["time_spent"])
	return stats
}

func parseCounter(s string) int64 {
	var v int64
	fmt.Sscanf(s, "%d", &v)
	return v
}
