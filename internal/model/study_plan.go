package model

import (
	"time"

	"exam_prep_backend/internal/planner"
)

type PlanType string

const (
	PlanDaily PlanType = "daily"
)

// StudyPlan is the persisted output of one aggregate+allocate run. One
// active plan per student per calendar day; a stale plan is superseded by a
// fresh row, never mutated in place, so old plans remain as history.
type StudyPlan struct {
	UUIDBase
	UserID          uint                       `gorm:"uniqueIndex:idx_plan_user_date" json:"userId"`
	Date            time.Time                  `gorm:"uniqueIndex:idx_plan_user_date;type:date" json:"date"`
	LastUpdated     time.Time                  `json:"lastUpdated"`
	NextRefreshAt   time.Time                  `json:"nextRefreshAt"`
	PlanType        PlanType                   `gorm:"type:varchar(20);default:'daily'" json:"planType"`
	Subjects        []planner.SubjectPlan      `gorm:"serializer:json" json:"subjects"`
	Performance     planner.PerformanceSummary `gorm:"serializer:json" json:"performance"`
	Recommendations []planner.Recommendation   `gorm:"serializer:json" json:"recommendations"`
	StudyGoals      []planner.StudyGoal        `gorm:"serializer:json" json:"studyGoals"`
	TotalStudyTime  int                        `gorm:"default:0" json:"totalStudyTime"` // minutes
	CompletionPct   float64                    `gorm:"default:0" json:"completionPct"`
}

func (StudyPlan) TableName() string {
	return "study_plans"
}

// TopicCount reports how many topic blocks the plan carries across subjects.
func (p *StudyPlan) TopicCount() (completed, total int) {
	for i := range p.Subjects {
		for j := range p.Subjects[i].Topics {
			total++
			if p.Subjects[i].Topics[j].Completed {
				completed++
			}
		}
	}
	return completed, total
}
