package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/EduSync/internal/dto"
	"github.com/lshigami/EduSync/internal/event"
	"github.com/lshigami/EduSync/internal/model"
	"github.com/lshigami/EduSync/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SessionService owns the assessment lifecycle. There is no publish step:
// CreateLive takes an assessment from nothing to Live in one transaction, and
// MarkCompleted is the only way out of Live. The Draft/Scheduled/Archived
// states exist in the model but no transition here produces them; a time
// limit is informational and never ends a session on its own.
type SessionService interface {
	CreateLive(instructorID uuid.UUID, req dto.AssessmentCreateDTO) (*dto.AssessmentCreatedDTO, error)
	MarkCompleted(assessmentID uuid.UUID) error
}

type sessionService struct {
	courseRepo     repository.CourseRepository
	assessmentRepo repository.AssessmentRepository
	notifier       *event.Notifier
	db             *gorm.DB
}

func NewSessionService(
	courseRepo repository.CourseRepository,
	assessmentRepo repository.AssessmentRepository,
	notifier *event.Notifier,
	db *gorm.DB,
) SessionService {
	return &sessionService{
		courseRepo:     courseRepo,
		assessmentRepo: assessmentRepo,
		notifier:       notifier,
		db:             db,
	}
}

// newSessionID mints the opaque live-session token, stable for the lifetime
// of the session.
func newSessionID() string {
	return uuid.New().String()[:8]
}

// CreateLive creates the assessment with its questions and flips it Live
// atomically: Status, IsLive, StartedAt and SessionID are written in the same
// insert, so no reader ever observes a half-live assessment. The fan-out runs
// after the commit and cannot fail the operation.
func (s *sessionService) CreateLive(instructorID uuid.UUID, req dto.AssessmentCreateDTO) (*dto.AssessmentCreatedDTO, error) {
	course, err := s.courseRepo.FindByID(req.CourseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "course"}
		}
		return nil, fmt.Errorf("error looking up course %s: %w", req.CourseID, err)
	}
	if course.InstructorID != instructorID {
		return nil, &PermissionError{Reason: "you don't have permission to create assessments for this course"}
	}

	now := time.Now().UTC()
	sessionID := newSessionID()
	assessment := model.Assessment{
		ID:          uuid.New(),
		CourseID:    course.ID,
		Title:       req.Title,
		Description: req.Description,
		MaxScore:    req.MaxScore,
		TimeLimit:   req.TimeLimit,
		Status:      model.StatusLive,
		IsLive:      true,
		StartedAt:   &now,
		SessionID:   &sessionID,
	}
	for _, q := range req.Questions {
		question := model.Question{
			ID:            uuid.New(),
			AssessmentID:  assessment.ID,
			QuestionText:  q.QuestionText,
			CorrectAnswer: q.CorrectAnswer,
			Points:        q.Points,
			Type:          q.Type,
			OrderIndex:    q.OrderIndex,
		}
		question.SetOptions(q.Options)
		assessment.Questions = append(assessment.Questions, question)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&assessment).Error
	})
	if err != nil {
		log.Error().Err(err).Str("course_id", course.ID.String()).Msg("CreateLive: failed to create assessment")
		return nil, fmt.Errorf("failed to create assessment: %w", err)
	}

	log.Info().Str("assessment_id", assessment.ID.String()).Str("session_id", sessionID).
		Msg("Assessment created and live")

	s.notifier.Emit(assessment.ID.String(), "AssessmentStarted", "AssessmentStarted", map[string]interface{}{
		"AssessmentId": assessment.ID.String(),
		"CourseId":     course.ID.String(),
		"Title":        assessment.Title,
		"StartedAt":    now,
		"SessionId":    sessionID,
		"InstructorId": instructorID.String(),
	})

	return &dto.AssessmentCreatedDTO{
		AssessmentID: assessment.ID,
		SessionID:    sessionID,
		Status:       assessment.Status,
		IsLive:       assessment.IsLive,
	}, nil
}

// MarkCompleted moves the whole assessment to Completed and clears IsLive.
// Idempotent: every concurrent submission calls it, the guarded UPDATE in the
// repository makes all but the first a no-op. Fails only on lookup.
func (s *sessionService) MarkCompleted(assessmentID uuid.UUID) error {
	if _, err := s.assessmentRepo.FindByID(assessmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: "assessment"}
		}
		return fmt.Errorf("error looking up assessment %s: %w", assessmentID, err)
	}
	if err := s.assessmentRepo.MarkCompleted(assessmentID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to mark assessment %s completed: %w", assessmentID, err)
	}
	return nil
}
