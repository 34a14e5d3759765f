package model

import (
	"time"
)

// QuizAttempt stores one answered question or one completed quiz for a
// student. Single-question rows carry IsCorrect with Score/Total 0/0 or 1/1;
// grouped quiz rows carry Score/Total and usually a precomputed Accuracy.
type QuizAttempt struct {
	BaseModel
	UserID       uint      `gorm:"index:idx_attempt_user_time" json:"userId"`
	Subject      string    `gorm:"size:50;index" json:"subject"`
	Topic        string    `gorm:"size:100" json:"topic"`
	Score        int       `gorm:"not null;default:0" json:"score"`
	Total        int       `gorm:"not null;default:0" json:"total"`
	IsCorrect    bool      `gorm:"default:false" json:"isCorrect"`
	Accuracy     *float64  `json:"accuracy,omitempty"` // percent, quiz granularity
	TimeSpentSec int       `gorm:"default:0" json:"timeSpentSec"`
	CompletedAt  time.Time `gorm:"index:idx_attempt_user_time" json:"completedAt"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}
