package repository

import (
	"exam_prep_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type StudyPlanRepository struct {
	DB *gorm.DB
}

func NewStudyPlanRepository(db *gorm.DB) *StudyPlanRepository {
	return &StudyPlanRepository{DB: db}
}

func (r *StudyPlanRepository) FindByID(id string) (*model.StudyPlan, error) {
	var plan model.StudyPlan
	err := r.DB.Where("id = ?", id).First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// FindLatest returns the user's most recent plan regardless of date, or
// gorm.ErrRecordNotFound when the user has never had one.
func (r *StudyPlanRepository) FindLatest(userID uint) (*model.StudyPlan, error) {
	var plan model.StudyPlan
	err := r.DB.Where("user_id = ?", userID).
		Order("date desc, last_updated desc").
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// Upsert writes the plan keyed on (user_id, date). Concurrent regenerations
// for the same day land on the same row, so a lost race produces a harmless
// overwrite instead of a duplicate "current" plan.
func (r *StudyPlanRepository) Upsert(plan *model.StudyPlan) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var existing model.StudyPlan
		err := tx.Where("user_id = ? AND date = ?", plan.UserID, plan.Date).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			return tx.Create(plan).Error
		} else if err != nil {
			return err
		}
		plan.ID = existing.ID
		plan.CreatedAt = existing.CreatedAt
		return tx.Save(plan).Error
	})
}

func (r *StudyPlanRepository) Save(plan *model.StudyPlan) error {
	return r.DB.Save(plan).Error
}

// History lists past plans newest first; old plans are kept, never deleted.
func (r *StudyPlanRepository) History(userID uint, limit int) ([]model.StudyPlan, error) {
	var plans []model.StudyPlan
	err := r.DB.Where("user_id = ?", userID).
		Order("date desc").
		Limit(limit).
		Find(&plans).Error
	return plans, err
}

func (r *StudyPlanRepository) CountSince(userID uint, since time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&model.StudyPlan{}).
		Where("user_id = ? AND date >= ?", userID, since).
		Count(&count).Error
	return count, err
}
