package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/EduSync/internal/model"
	"gorm.io/gorm"
)

type AssessmentRepository interface {
	Create(assessment *model.Assessment) error
	FindByID(id uuid.UUID) (*model.Assessment, error)
	FindByIDWithQuestions(id uuid.UUID) (*model.Assessment, error)
	FindByIDWithCourse(id uuid.UUID) (*model.Assessment, error)
	FindAllByInstructor(instructorID uuid.UUID) ([]model.Assessment, error)
	FindAllByCourse(courseID uuid.UUID) ([]model.Assessment, error)
	FindLiveByCourseIDs(courseIDs []uuid.UUID) ([]model.Assessment, error)
	Update(assessment *model.Assessment) error
	Delete(id uuid.UUID) error
	MarkCompleted(id uuid.UUID, endedAt time.Time) error
	MarkCompletedTx(tx *gorm.DB, id uuid.UUID, endedAt time.Time) error
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) Create(assessment *model.Assessment) error {
	// GORM creates the associated questions along with the assessment.
	return r.db.Create(assessment).Error
}

func (r *assessmentRepository) FindByID(id uuid.UUID) (*model.Assessment, error) {
	var assessment model.Assessment
	if err := r.db.First(&assessment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepository) FindByIDWithQuestions(id uuid.UUID) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.order_index ASC")
	}).First(&assessment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepository) FindByIDWithCourse(id uuid.UUID) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.db.Preload("Course").Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.order_index ASC")
	}).First(&assessment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepository) FindAllByInstructor(instructorID uuid.UUID) ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := r.db.
		Joins("JOIN courses ON courses.id = assessments.course_id").
		Where("courses.instructor_id = ? AND courses.deleted_at IS NULL", instructorID).
		Preload("Course").Preload("Questions").
		Order("assessments.created_at DESC").
		Find(&assessments).Error
	return assessments, err
}

func (r *assessmentRepository) FindAllByCourse(courseID uuid.UUID) ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := r.db.Where("course_id = ?", courseID).
		Preload("Course").Preload("Questions").
		Order("created_at DESC").
		Find(&assessments).Error
	return assessments, err
}

func (r *assessmentRepository) FindLiveByCourseIDs(courseIDs []uuid.UUID) ([]model.Assessment, error) {
	var assessments []model.Assessment
	if len(courseIDs) == 0 {
		return assessments, nil
	}
	err := r.db.Where("course_id IN ? AND is_live = ? AND status = ?", courseIDs, true, model.StatusLive).
		Preload("Course").
		Order("started_at DESC").
		Find(&assessments).Error
	return assessments, err
}

func (r *assessmentRepository) Update(assessment *model.Assessment) error {
	return r.db.Save(assessment).Error
}

func (r *assessmentRepository) Delete(id uuid.UUID) error {
	return r.db.Select("Questions", "Results").Delete(&model.Assessment{ID: id}).Error
}

// MarkCompleted closes the live session. The guarded UPDATE makes the call
// idempotent: concurrent submissions all issue it, only the first changes rows.
// The session token is cleared with the flag, keeping session_id non-null only
// while the assessment is live.
func (r *assessmentRepository) MarkCompleted(id uuid.UUID, endedAt time.Time) error {
	return r.MarkCompletedTx(r.db, id, endedAt)
}

// MarkCompletedTx is MarkCompleted inside a caller-managed transaction, so
// submission can complete the assessment atomically with the attempt save.
func (r *assessmentRepository) MarkCompletedTx(tx *gorm.DB, id uuid.UUID, endedAt time.Time) error {
	return tx.Model(&model.Assessment{}).
		Where("id = ? AND status <> ?", id, model.StatusCompleted).
		Updates(map[string]interface{}{
			"status":     model.StatusCompleted,
			"is_live":    false,
			"ended_at":   endedAt,
			"session_id": nil,
		}).Error
}
