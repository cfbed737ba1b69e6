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

// SubmissionService scores submitted answers and serves the result read
// paths. Scoring awards a question's full points whenever an answer is
// present for it; correctness is reconstructed on the read path only, so the
// persisted Score and the displayed per-question breakdown can disagree.
type SubmissionService interface {
	Submit(userID uuid.UUID, req dto.ResultSubmitDTO) (*dto.ResultSubmittedDTO, error)
	ResultDetail(resultID, requesterID uuid.UUID, requesterRole string) (*dto.ResultDetailDTO, error)
	UserResults(userID uuid.UUID) ([]dto.ResultSummaryDTO, error)
	AssessmentResults(assessmentID, instructorID uuid.UUID) ([]dto.StudentResultDTO, error)
}

type submissionService struct {
	assessmentRepo repository.AssessmentRepository
	resultRepo     repository.ResultRepository
	notifier       *event.Notifier
	db             *gorm.DB
}

func NewSubmissionService(
	assessmentRepo repository.AssessmentRepository,
	resultRepo repository.ResultRepository,
	notifier *event.Notifier,
	db *gorm.DB,
) SubmissionService {
	return &submissionService{
		assessmentRepo: assessmentRepo,
		resultRepo:     resultRepo,
		notifier:       notifier,
		db:             db,
	}
}

func (s *submissionService) Submit(userID uuid.UUID, req dto.ResultSubmitDTO) (*dto.ResultSubmittedDTO, error) {
	assessment, err := s.assessmentRepo.FindByIDWithQuestions(req.AssessmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "assessment"}
		}
		return nil, fmt.Errorf("error looking up assessment %s: %w", req.AssessmentID, err)
	}

	attempt, err := s.resultRepo.FindActiveByAssessmentAndUser(req.AssessmentID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NoActiveAttemptError{Reason: "no active attempt, join the assessment first"}
		}
		return nil, fmt.Errorf("error looking up active attempt: %w", err)
	}

	matched, score := matchAnswers(assessment.Questions, req.Answers)
	completedAt := time.Now().UTC()

	attempt.Score = score
	attempt.IsCompleted = true
	attempt.CompletedDate = &completedAt
	attempt.SetAnswers(matched)

	// Scoring the attempt and completing the assessment commit together so
	// a scored-but-still-live session is never observable. The guarded
	// completion makes a concurrent submission a no-op.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(attempt).Error; err != nil {
			return fmt.Errorf("failed to save attempt: %w", err)
		}
		if err := s.assessmentRepo.MarkCompletedTx(tx, assessment.ID, completedAt); err != nil {
			return fmt.Errorf("failed to complete assessment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("assessment_id", assessment.ID.String()).Str("user_id", userID.String()).
		Int("score", score).Msg("Submission scored, assessment completed")

	s.notifier.Emit(assessment.ID.String(), "AnswerSubmitted", "AnswerSubmitted", map[string]interface{}{
		"AssessmentId": assessment.ID.String(),
		"UserId":       userID.String(),
		"ResultId":     attempt.ID.String(),
		"Score":        score,
		"Timestamp":    completedAt,
	})

	return &dto.ResultSubmittedDTO{
		Message:     "Assessment submitted successfully",
		ResultID:    attempt.ID,
		IsCompleted: true,
	}, nil
}

// matchAnswers keeps only answers whose key is a real question of the
// assessment; stray keys are dropped and never stored. Every kept answer
// earns its question's full points, without comparing to the correct answer.
func matchAnswers(questions []model.Question, answers map[string]string) (map[string]string, int) {
	matched := make(map[string]string, len(answers))
	score := 0
	for i := range questions {
		id := questions[i].ID.String()
		if text, ok := answers[id]; ok {
			matched[id] = text
			score += questions[i].Points
		}
	}
	return matched, score
}

func (s *submissionService) ResultDetail(resultID, requesterID uuid.UUID, requesterRole string) (*dto.ResultDetailDTO, error) {
	result, err := s.resultRepo.FindByIDWithDetails(resultID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "result"}
		}
		return nil, fmt.Errorf("error looking up result %s: %w", resultID, err)
	}

	switch requesterRole {
	case model.RoleInstructor:
		if result.Assessment.Course.InstructorID != requesterID {
			return nil, &PermissionError{Reason: "you do not teach this course"}
		}
	default:
		if result.UserID != requesterID {
			return nil, &PermissionError{Reason: "this result belongs to another student"}
		}
	}

	answers := result.AnswersMap()
	questionResults := make([]dto.QuestionResultDTO, 0, len(result.Assessment.Questions))
	for i := range result.Assessment.Questions {
		q := &result.Assessment.Questions[i]
		userAnswer := answers[q.ID.String()]
		correct := userAnswer != "" && userAnswer == q.CorrectAnswer
		earned := 0
		if correct {
			earned = q.Points
		}
		questionResults = append(questionResults, dto.QuestionResultDTO{
			QuestionID:    q.ID,
			QuestionText:  q.QuestionText,
			Options:       q.OptionsList(),
			CorrectAnswer: q.CorrectAnswer,
			UserAnswer:    userAnswer,
			IsCorrect:     correct,
			Points:        q.Points,
			EarnedPoints:  earned,
		})
	}

	return &dto.ResultDetailDTO{
		ResultID:        result.ID,
		AssessmentID:    result.AssessmentID,
		AssessmentTitle: result.Assessment.Title,
		CourseID:        result.Assessment.CourseID,
		CourseTitle:     result.Assessment.Course.Title,
		AttemptDate:     result.AttemptDate,
		CompletedDate:   result.CompletedDate,
		Score:           result.Score,
		MaxScore:        result.Assessment.MaxScore,
		IsCompleted:     result.IsCompleted,
		ScorePercentage: percentage(result.Score, result.Assessment.MaxScore),
		QuestionResults: questionResults,
	}, nil
}

func (s *submissionService) UserResults(userID uuid.UUID) ([]dto.ResultSummaryDTO, error) {
	results, err := s.resultRepo.FindAllByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("error listing results for user %s: %w", userID, err)
	}

	summaries := make([]dto.ResultSummaryDTO, 0, len(results))
	for i := range results {
		r := &results[i]
		summaries = append(summaries, dto.ResultSummaryDTO{
			ResultID:        r.ID,
			AssessmentID:    r.AssessmentID,
			AssessmentTitle: r.Assessment.Title,
			CourseID:        r.Assessment.CourseID,
			CourseTitle:     r.Assessment.Course.Title,
			AttemptDate:     r.AttemptDate,
			CompletedDate:   r.CompletedDate,
			Score:           r.Score,
			MaxScore:        r.Assessment.MaxScore,
			IsCompleted:     r.IsCompleted,
			ScorePercentage: percentage(r.Score, r.Assessment.MaxScore),
		})
	}
	return summaries, nil
}

func (s *submissionService) AssessmentResults(assessmentID, instructorID uuid.UUID) ([]dto.StudentResultDTO, error) {
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

	results, err := s.resultRepo.FindCompletedByAssessment(assessmentID)
	if err != nil {
		return nil, fmt.Errorf("error listing results for assessment %s: %w", assessmentID, err)
	}

	rows := make([]dto.StudentResultDTO, 0, len(results))
	for i := range results {
		r := &results[i]
		rows = append(rows, dto.StudentResultDTO{
			UserID:          r.UserID,
			StudentName:     r.User.Name,
			AttemptDate:     r.AttemptDate,
			CompletedDate:   r.CompletedDate,
			Score:           r.Score,
			ScorePercentage: percentage(r.Score, assessment.MaxScore),
			IsCompleted:     r.IsCompleted,
		})
	}
	return rows, nil
}

func percentage(score, maxScore int) float64 {
	if maxScore <= 0 {
		return 0
	}
	return float64(score) / float64(maxScore) * 100
}
