package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/EduSync/internal/dto"
	"github.com/lshigami/EduSync/internal/event"
	"github.com/lshigami/EduSync/internal/model"
	"github.com/lshigami/EduSync/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ParticipationService coordinates students joining and leaving a live
// session. Join is idempotent per (assessment, user): the first call creates
// the attempt, later calls resume it, and two racing calls are serialized by
// the unique index on results, with the loser re-reading the winner's row.
type ParticipationService interface {
	Join(assessmentID, userID uuid.UUID) (*dto.JoinedAssessmentDTO, error)
	Leave(assessmentID, userID uuid.UUID) error
	LiveStatus(assessmentID uuid.UUID) (*dto.LiveStatusDTO, error)
}

type participationService struct {
	assessmentRepo repository.AssessmentRepository
	enrollmentRepo repository.EnrollmentRepository
	resultRepo     repository.ResultRepository
	notifier       *event.Notifier
}

func NewParticipationService(
	assessmentRepo repository.AssessmentRepository,
	enrollmentRepo repository.EnrollmentRepository,
	resultRepo repository.ResultRepository,
	notifier *event.Notifier,
) ParticipationService {
	return &participationService{
		assessmentRepo: assessmentRepo,
		enrollmentRepo: enrollmentRepo,
		resultRepo:     resultRepo,
		notifier:       notifier,
	}
}

func (s *participationService) Join(assessmentID, userID uuid.UUID) (*dto.JoinedAssessmentDTO, error) {
	assessment, err := s.assessmentRepo.FindByIDWithCourse(assessmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "assessment"}
		}
		return nil, fmt.Errorf("error looking up assessment %s: %w", assessmentID, err)
	}

	if !assessment.Joinable() {
		return nil, &InvalidStateError{Reason: "assessment is not currently live"}
	}

	enrolled, err := s.enrollmentRepo.IsEnrolled(assessment.CourseID, userID)
	if err != nil {
		return nil, fmt.Errorf("error checking enrollment: %w", err)
	}
	if !enrolled {
		return nil, &PermissionError{Reason: "you are not enrolled in this course"}
	}

	attempt, created, err := s.findOrCreateAttempt(assessmentID, userID)
	if err != nil {
		return nil, err
	}
	if attempt.IsCompleted {
		return nil, &AlreadyCompletedError{Reason: "you have already completed this assessment"}
	}

	if created {
		log.Info().Str("assessment_id", assessmentID.String()).Str("user_id", userID.String()).
			Msg("Student joined live assessment")
		s.notifier.Emit(assessmentID.String(), "StudentJoinedAssessment", "StudentJoined", map[string]interface{}{
			"AssessmentId": assessmentID.String(),
			"UserId":       userID.String(),
			"Timestamp":    time.Now().UTC(),
		})
	}

	resp := &dto.JoinedAssessmentDTO{
		AssessmentID: assessment.ID,
		AttemptID:    attempt.ID,
		Title:        assessment.Title,
		Description:  assessment.Description,
		CourseName:   assessment.Course.Title,
		MaxScore:     assessment.MaxScore,
		TimeLimit:    assessment.TimeLimit,
		StartedAt:    assessment.StartedAt,
		SessionID:    assessment.SessionID,
		Questions:    StudentQuestions(assessment.Questions),
	}
	return resp, nil
}

// findOrCreateAttempt is the insert-or-reread half of Join. Plain
// check-then-insert would race under duplicate joins from one user (retry,
// second tab); the unique index on (assessment_id, user_id) plus the
// duplicate-key re-read closes that window. The ConflictError case is
// internal only and is absorbed here.
func (s *participationService) findOrCreateAttempt(assessmentID, userID uuid.UUID) (*model.Result, bool, error) {
	attempt, err := s.resultRepo.FindByAssessmentAndUser(assessmentID, userID)
	if err == nil {
		return attempt, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("error looking up attempt: %w", err)
	}

	fresh := &model.Result{
		ID:           uuid.New(),
		AssessmentID: assessmentID,
		UserID:       userID,
		AttemptDate:  time.Now().UTC(),
		Score:        0,
		IsCompleted:  false,
	}
	fresh.SetAnswers(map[string]string{})

	if err := s.resultRepo.Create(fresh); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race; the winner's row is the attempt.
			log.Info().Str("assessment_id", assessmentID.String()).Str("user_id", userID.String()).
				Msg("Join race lost, reusing existing attempt")
			existing, rerr := s.resultRepo.FindByAssessmentAndUser(assessmentID, userID)
			if rerr != nil {
				return nil, false, fmt.Errorf("error re-reading attempt after conflict: %w", rerr)
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("failed to create attempt: %w", err)
	}
	return fresh, true, nil
}

// Leave only announces the departure; the attempt row is untouched so the
// student can rejoin while the session remains live.
func (s *participationService) Leave(assessmentID, userID uuid.UUID) error {
	if _, err := s.assessmentRepo.FindByID(assessmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: "assessment"}
		}
		return fmt.Errorf("error looking up assessment %s: %w", assessmentID, err)
	}

	log.Info().Str("assessment_id", assessmentID.String()).Str("user_id", userID.String()).
		Msg("Student left live assessment")
	s.notifier.Emit(assessmentID.String(), "StudentLeftAssessment", "StudentLeft", map[string]interface{}{
		"AssessmentId": assessmentID.String(),
		"UserId":       userID.String(),
		"Timestamp":    time.Now().UTC(),
	})
	return nil
}

func (s *participationService) LiveStatus(assessmentID uuid.UUID) (*dto.LiveStatusDTO, error) {
	assessment, err := s.assessmentRepo.FindByIDWithCourse(assessmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "assessment"}
		}
		return nil, fmt.Errorf("error looking up assessment %s: %w", assessmentID, err)
	}
	if !assessment.Joinable() {
		return nil, &InvalidStateError{Reason: "assessment is not currently live"}
	}

	joined, err := s.resultRepo.CountByAssessment(assessmentID)
	if err != nil {
		return nil, fmt.Errorf("error counting joined students: %w", err)
	}

	return &dto.LiveStatusDTO{
		AssessmentID: assessment.ID,
		Title:        assessment.Title,
		CourseName:   assessment.Course.Title,
		Status:       assessment.Status,
		IsLive:       assessment.IsLive,
		SessionID:    assessment.SessionID,
		StartedAt:    assessment.StartedAt,
		MaxScore:     assessment.MaxScore,
		TimeLimit:    assessment.TimeLimit,
		JoinedCount:  joined,
	}, nil
}

// StudentQuestions maps questions to the student view, dropping the correct
// answers. Options are decoded from the JSON column.
func StudentQuestions(questions []model.Question) []dto.StudentQuestionDTO {
	out := make([]dto.StudentQuestionDTO, 0, len(questions))
	for i := range questions {
		var q dto.StudentQuestionDTO
		copier.Copy(&q, &questions[i])
		q.QuestionID = questions[i].ID
		q.Options = questions[i].OptionsList()
		out = append(out, q)
	}
	return out
}
