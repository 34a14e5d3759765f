package repository

import (
	"exam_prep_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type QuizAttemptRepository struct {
	DB *gorm.DB
}

func NewQuizAttemptRepository(db *gorm.DB) *QuizAttemptRepository {
	return &QuizAttemptRepository{DB: db}
}

func (r *QuizAttemptRepository) Create(attempt *model.QuizAttempt) error {
	return r.DB.Create(attempt).Error
}

// FindByUserSince returns the user's attempts with completed_at >= since,
// oldest first so downstream aggregation sees subjects in the order the
// student actually worked through them.
func (r *QuizAttemptRepository) FindByUserSince(userID uint, since time.Time) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.DB.Where("user_id = ? AND completed_at >= ?", userID, since).
		Order("completed_at asc").
		Find(&attempts).Error
	return attempts, err
}

func (r *QuizAttemptRepository) ListRecent(userID uint, limit int) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.DB.Where("user_id = ?", userID).
		Order("completed_at desc").
		Limit(limit).
		Find(&attempts).Error
	return attempts, err
}
