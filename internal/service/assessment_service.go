package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lshigami/EduSync/internal/dto"
	"github.com/lshigami/EduSync/internal/model"
	"github.com/lshigami/EduSync/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AssessmentService covers everything around a session that is not the live
// lifecycle itself: instructor CRUD and the student-facing listings.
type AssessmentService interface {
	GetByID(assessmentID, instructorID uuid.UUID) (*dto.AssessmentDetailDTO, error)
	Update(assessmentID, instructorID uuid.UUID, req dto.AssessmentUpdateDTO) (*dto.AssessmentDetailDTO, error)
	Delete(assessmentID, instructorID uuid.UUID) error
	ListByInstructor(instructorID uuid.UUID) ([]dto.AssessmentSummaryDTO, error)

	ListForStudent(studentID uuid.UUID) ([]dto.AssessmentSummaryDTO, error)
	ListLiveForStudent(studentID uuid.UUID) ([]dto.AssessmentSummaryDTO, error)
	ListCompletedForStudent(studentID uuid.UUID) ([]dto.AssessmentSummaryDTO, error)
	ListByCourseForStudent(courseID, studentID uuid.UUID) ([]dto.AssessmentSummaryDTO, error)
}

type assessmentService struct {
	assessmentRepo repository.AssessmentRepository
	enrollmentRepo repository.EnrollmentRepository
	resultRepo     repository.ResultRepository
	db             *gorm.DB
}

func NewAssessmentService(
	assessmentRepo repository.AssessmentRepository,
	enrollmentRepo repository.EnrollmentRepository,
	resultRepo repository.ResultRepository,
	db *gorm.DB,
) AssessmentService {
	return &assessmentService{
		assessmentRepo: assessmentRepo,
		enrollmentRepo: enrollmentRepo,
		resultRepo:     resultRepo,
		db:             db,
	}
}

func (s *assessmentService) findOwned(assessmentID, instructorID uuid.UUID) (*model.Assessment, error) {
	assessment, err := s.assessmentRepo.FindByIDWithCourse(assessmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "assessment"}
		}
		return nil, fmt.Errorf("error looking up assessment %s: %w", assessmentID, err)
	}
	if assessment.Course.InstructorID != instructorID {
		return nil, &PermissionError{Reason: "you do not teach this course"}
	}
	return assessment, nil
}

func (s *assessmentService) GetByID(assessmentID, instructorID uuid.UUID) (*dto.AssessmentDetailDTO, error) {
	assessment, err := s.findOwned(assessmentID, instructorID)
	if err != nil {
		return nil, err
	}
	return assessmentDetail(assessment), nil
}

// Update edits the metadata and upserts questions. A question carrying an ID
// is updated in place, one without an ID is appended. Questions are never
// deleted here so stored answers keep resolving.
func (s *assessmentService) Update(assessmentID, instructorID uuid.UUID, req dto.AssessmentUpdateDTO) (*dto.AssessmentDetailDTO, error) {
	assessment, err := s.findOwned(assessmentID, instructorID)
	if err != nil {
		return nil, err
	}

	assessment.Title = req.Title
	assessment.Description = req.Description
	assessment.MaxScore = req.MaxScore
	assessment.TimeLimit = req.TimeLimit

	existing := make(map[uuid.UUID]*model.Question, len(assessment.Questions))
	for i := range assessment.Questions {
		existing[assessment.Questions[i].ID] = &assessment.Questions[i]
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, qr := range req.Questions {
			if qr.QuestionID != nil {
				q, ok := existing[*qr.QuestionID]
				if !ok {
					return &NotFoundError{Resource: "question"}
				}
				q.QuestionText = qr.QuestionText
				q.CorrectAnswer = qr.CorrectAnswer
				q.Points = qr.Points
				q.Type = qr.Type
				q.OrderIndex = qr.OrderIndex
				q.SetOptions(qr.Options)
				if err := tx.Save(q).Error; err != nil {
					return fmt.Errorf("failed to update question %s: %w", q.ID, err)
				}
				continue
			}

			q := model.Question{
				ID:            uuid.New(),
				AssessmentID:  assessment.ID,
				QuestionText:  qr.QuestionText,
				CorrectAnswer: qr.CorrectAnswer,
				Points:        qr.Points,
				Type:          qr.Type,
				OrderIndex:    qr.OrderIndex,
			}
			q.SetOptions(qr.Options)
			if err := tx.Create(&q).Error; err != nil {
				return fmt.Errorf("failed to create question: %w", err)
			}
			assessment.Questions = append(assessment.Questions, q)
		}

		return tx.Omit("Questions", "Results", "Course").Save(assessment).Error
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("assessment_id", assessment.ID.String()).Msg("Assessment updated")

	// Re-read so the response reflects stored ordering.
	updated, err := s.assessmentRepo.FindByIDWithCourse(assessmentID)
	if err != nil {
		return nil, fmt.Errorf("error re-reading assessment %s: %w", assessmentID, err)
	}
	return assessmentDetail(updated), nil
}

func (s *assessmentService) Delete(assessmentID, instructorID uuid.UUID) error {
	if _, err := s.findOwned(assessmentID, instructorID); err != nil {
		return err
	}
	if err := s.assessmentRepo.Delete(assessmentID); err != nil {
		return fmt.Errorf("failed to delete assessment %s: %w", assessmentID, err)
	}
	log.Info().Str("assessment_id", assessmentID.String()).Msg("Assessment deleted")
	return nil
}

func (s *assessmentService) ListByInstructor(instructorID uuid.UUID) ([]dto.AssessmentSummaryDTO, error) {
	assessments, err := s.assessmentRepo.FindAllByInstructor(instructorID)
	if err != nil {
		return nil, fmt.Errorf("error listing assessments: %w", err)
	}
	summaries := make([]dto.AssessmentSummaryDTO, 0, len(assessments))
	for i := range assessments {
		summaries = append(summaries, assessmentSummary(&assessments[i], nil))
	}
	return summaries, nil
}

// ListForStudent returns every assessment in the student's enrolled courses,
// annotated with the student's own attempt where one exists.
func (s *assessmentService) ListForStudent(studentID uuid.UUID) ([]dto.AssessmentSummaryDTO, error) {
	courseIDs, err := s.enrollmentRepo.CourseIDsForStudent(studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}

	summaries := []dto.AssessmentSummaryDTO{}
	for _, courseID := range courseIDs {
		perCourse, err := s.ListByCourseForStudent(courseID, studentID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, perCourse...)
	}
	return summaries, nil
}

func (s *assessmentService) ListLiveForStudent(studentID uuid.UUID) ([]dto.AssessmentSummaryDTO, error) {
	courseIDs, err := s.enrollmentRepo.CourseIDsForStudent(studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}
	assessments, err := s.assessmentRepo.FindLiveByCourseIDs(courseIDs)
	if err != nil {
		return nil, fmt.Errorf("error listing live assessments: %w", err)
	}

	summaries := make([]dto.AssessmentSummaryDTO, 0, len(assessments))
	for i := range assessments {
		attempt, err := s.attemptFor(assessments[i].ID, studentID)
		if err != nil {
			return nil, err
		}
		// A completed attempt hides the session from the live list.
		if attempt != nil && attempt.IsCompleted {
			continue
		}
		summaries = append(summaries, assessmentSummary(&assessments[i], attempt))
	}
	return summaries, nil
}

func (s *assessmentService) ListCompletedForStudent(studentID uuid.UUID) ([]dto.AssessmentSummaryDTO, error) {
	all, err := s.ListForStudent(studentID)
	if err != nil {
		return nil, err
	}
	completed := []dto.AssessmentSummaryDTO{}
	for _, summary := range all {
		if summary.IsCompleted {
			completed = append(completed, summary)
		}
	}
	return completed, nil
}

func (s *assessmentService) ListByCourseForStudent(courseID, studentID uuid.UUID) ([]dto.AssessmentSummaryDTO, error) {
	enrolled, err := s.enrollmentRepo.IsEnrolled(courseID, studentID)
	if err != nil {
		return nil, fmt.Errorf("error checking enrollment: %w", err)
	}
	if !enrolled {
		return nil, &PermissionError{Reason: "you are not enrolled in this course"}
	}

	assessments, err := s.assessmentRepo.FindAllByCourse(courseID)
	if err != nil {
		return nil, fmt.Errorf("error listing assessments for course %s: %w", courseID, err)
	}

	summaries := make([]dto.AssessmentSummaryDTO, 0, len(assessments))
	for i := range assessments {
		attempt, err := s.attemptFor(assessments[i].ID, studentID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, assessmentSummary(&assessments[i], attempt))
	}
	return summaries, nil
}

func (s *assessmentService) attemptFor(assessmentID, studentID uuid.UUID) (*model.Result, error) {
	attempt, err := s.resultRepo.FindByAssessmentAndUser(assessmentID, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error looking up attempt: %w", err)
	}
	return attempt, nil
}

func assessmentDetail(a *model.Assessment) *dto.AssessmentDetailDTO {
	questions := make([]dto.QuestionDTO, 0, len(a.Questions))
	for i := range a.Questions {
		q := &a.Questions[i]
		questions = append(questions, dto.QuestionDTO{
			QuestionID:    q.ID,
			QuestionText:  q.QuestionText,
			Options:       q.OptionsList(),
			CorrectAnswer: q.CorrectAnswer,
			Points:        q.Points,
			Type:          q.Type,
			OrderIndex:    q.OrderIndex,
		})
	}
	return &dto.AssessmentDetailDTO{
		AssessmentID: a.ID,
		CourseID:     a.CourseID,
		CourseName:   a.Course.Title,
		Title:        a.Title,
		Description:  a.Description,
		MaxScore:     a.MaxScore,
		TimeLimit:    a.TimeLimit,
		Status:       a.Status,
		IsLive:       a.IsLive,
		SessionID:    a.SessionID,
		StartedAt:    a.StartedAt,
		EndedAt:      a.EndedAt,
		CreatedAt:    a.CreatedAt,
		Questions:    questions,
	}
}

func assessmentSummary(a *model.Assessment, attempt *model.Result) dto.AssessmentSummaryDTO {
	summary := dto.AssessmentSummaryDTO{
		AssessmentID:  a.ID,
		CourseID:      a.CourseID,
		CourseName:    a.Course.Title,
		Title:         a.Title,
		Description:   a.Description,
		MaxScore:      a.MaxScore,
		TimeLimit:     a.TimeLimit,
		QuestionCount: len(a.Questions),
		Status:        a.Status,
		IsLive:        a.IsLive,
		CreatedAt:     a.CreatedAt,
	}
	if attempt != nil {
		summary.IsCompleted = attempt.IsCompleted
		if attempt.IsCompleted {
			score := attempt.Score
			summary.Score = &score
			summary.CompletedDate = attempt.CompletedDate
		}
	}
	return summary
}
