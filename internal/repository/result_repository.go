package repository

import (
	"github.com/google/uuid"
	"github.com/lshigami/EduSync/internal/model"
	"gorm.io/gorm"
)

type ResultRepository interface {
	Create(result *model.Result) error
	Update(result *model.Result) error
	FindByAssessmentAndUser(assessmentID, userID uuid.UUID) (*model.Result, error)
	FindActiveByAssessmentAndUser(assessmentID, userID uuid.UUID) (*model.Result, error)
	FindByIDWithDetails(id uuid.UUID) (*model.Result, error)
	FindAllByUser(userID uuid.UUID) ([]model.Result, error)
	FindCompletedByAssessment(assessmentID uuid.UUID) ([]model.Result, error)
	CountByAssessment(assessmentID uuid.UUID) (int64, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

// Create inserts optimistically. Callers must treat gorm.ErrDuplicatedKey as
// "somebody else won the join race" and re-read instead of failing.
func (r *resultRepository) Create(result *model.Result) error {
	return r.db.Create(result).Error
}

func (r *resultRepository) Update(result *model.Result) error {
	return r.db.Save(result).Error
}

func (r *resultRepository) FindByAssessmentAndUser(assessmentID, userID uuid.UUID) (*model.Result, error) {
	var result model.Result
	err := r.db.Where("assessment_id = ? AND user_id = ?", assessmentID, userID).First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepository) FindActiveByAssessmentAndUser(assessmentID, userID uuid.UUID) (*model.Result, error) {
	var result model.Result
	err := r.db.Where("assessment_id = ? AND user_id = ? AND is_completed = ?", assessmentID, userID, false).
		First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepository) FindByIDWithDetails(id uuid.UUID) (*model.Result, error) {
	var result model.Result
	err := r.db.
		Preload("Assessment.Course").
		Preload("Assessment.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.order_index ASC")
		}).
		Preload("User").
		First(&result, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepository) FindAllByUser(userID uuid.UUID) ([]model.Result, error) {
	var results []model.Result
	err := r.db.Where("user_id = ?", userID).
		Preload("Assessment.Course").
		Order("attempt_date DESC").
		Find(&results).Error
	return results, err
}

func (r *resultRepository) FindCompletedByAssessment(assessmentID uuid.UUID) ([]model.Result, error) {
	var results []model.Result
	err := r.db.Where("assessment_id = ? AND is_completed = ?", assessmentID, true).
		Preload("User").
		Order("completed_date DESC").
		Find(&results).Error
	return results, err
}

func (r *resultRepository) CountByAssessment(assessmentID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Result{}).Where("assessment_id = ?", assessmentID).Count(&count).Error
	return count, err
}
