package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lshigami/EduSync/internal/dto"
	"github.com/lshigami/EduSync/internal/model"
	"github.com/lshigami/EduSync/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type submissionEnv struct {
	*liveEnv
	submission SubmissionService
	questions  []model.Question
}

func setupSubmission(t *testing.T) *submissionEnv {
	t.Helper()
	env := setupLiveAssessment(t)

	notifier, _ := newTestNotifier(t, env.pub)
	sub := NewSubmissionService(
		repository.NewAssessmentRepository(env.db),
		repository.NewResultRepository(env.db),
		notifier,
		env.db,
	)

	var questions []model.Question
	require.NoError(t, env.db.Where("assessment_id = ?", env.assessmentID).
		Order("order_index ASC").Find(&questions).Error)
	require.Len(t, questions, 2)

	return &submissionEnv{liveEnv: env, submission: sub, questions: questions}
}

func (e *submissionEnv) join(t *testing.T, studentID uuid.UUID) {
	t.Helper()
	_, err := e.participation.Join(e.assessmentID, studentID)
	require.NoError(t, err)
}

func TestSubmit_AwardsPointsForEveryMatchedAnswer(t *testing.T) {
	env := setupSubmission(t)
	env.join(t, env.student.ID)

	// The second answer is wrong; the stored score still counts it.
	submitted, err := env.submission.Submit(env.student.ID, dto.ResultSubmitDTO{
		AssessmentID: env.assessmentID,
		Answers: map[string]string{
			env.questions[0].ID.String(): "Raft",
			env.questions[1].ID.String(): "true",
		},
	})
	require.NoError(t, err)
	assert.True(t, submitted.IsCompleted)

	var result model.Result
	require.NoError(t, env.db.First(&result, "id = ?", submitted.ResultID).Error)
	assert.Equal(t, 10, result.Score, "full points for every answered question")
	assert.True(t, result.IsCompleted)
	assert.NotNil(t, result.CompletedDate)
}

func TestSubmit_IgnoresUnmatchedAnswers(t *testing.T) {
	env := setupSubmission(t)
	env.join(t, env.student.ID)

	strayID := uuid.New().String()
	submitted, err := env.submission.Submit(env.student.ID, dto.ResultSubmitDTO{
		AssessmentID: env.assessmentID,
		Answers: map[string]string{
			env.questions[0].ID.String(): "Raft",
			strayID:                      "stray answer",
		},
	})
	require.NoError(t, err)

	var result model.Result
	require.NoError(t, env.db.First(&result, "id = ?", submitted.ResultID).Error)
	assert.Equal(t, 4, result.Score, "only answers matching a question count")

	// The stray key is dropped before persisting, not just excluded from
	// the score.
	stored := result.AnswersMap()
	assert.NotContains(t, stored, strayID)
	assert.Equal(t, map[string]string{env.questions[0].ID.String(): "Raft"}, stored)
}

func TestSubmit_CompletesWholeAssessment(t *testing.T) {
	env := setupSubmission(t)
	env.join(t, env.student.ID)
	other := env.enrollStudent(t)
	env.join(t, other.ID)

	_, err := env.submission.Submit(env.student.ID, dto.ResultSubmitDTO{
		AssessmentID: env.assessmentID,
		Answers:      map[string]string{env.questions[0].ID.String(): "Raft"},
	})
	require.NoError(t, err)

	// The first submission ends the session for everyone.
	var assessment model.Assessment
	require.NoError(t, env.db.First(&assessment, "id = ?", env.assessmentID).Error)
	assert.Equal(t, model.StatusCompleted, assessment.Status)
	assert.False(t, assessment.IsLive)
	assert.Nil(t, assessment.SessionID, "the session token is cleared on completion")

	_, err = env.participation.Join(env.assessmentID, other.ID)
	require.Error(t, err)
	_, ok := err.(interface{ InvalidState() })
	assert.True(t, ok, "late joiners are locked out once completed")

	// A student who joined in time can still submit their open attempt.
	submitted, err := env.submission.Submit(other.ID, dto.ResultSubmitDTO{
		AssessmentID: env.assessmentID,
		Answers:      map[string]string{env.questions[1].ID.String(): "false"},
	})
	require.NoError(t, err)
	assert.True(t, submitted.IsCompleted)
}

func TestSubmit_RequiresActiveAttempt(t *testing.T) {
	env := setupSubmission(t)

	_, err := env.submission.Submit(env.student.ID, dto.ResultSubmitDTO{
		AssessmentID: env.assessmentID,
		Answers:      map[string]string{},
	})
	require.Error(t, err)
	_, ok := err.(interface{ NoActiveAttempt() })
	assert.True(t, ok, "submitting without joining must fail, got %v", err)
}

func TestSubmit_RejectsSecondSubmission(t *testing.T) {
	env := setupSubmission(t)
	env.join(t, env.student.ID)

	answers := map[string]string{env.questions[0].ID.String(): "Raft"}
	_, err := env.submission.Submit(env.student.ID, dto.ResultSubmitDTO{AssessmentID: env.assessmentID, Answers: answers})
	require.NoError(t, err)

	_, err = env.submission.Submit(env.student.ID, dto.ResultSubmitDTO{AssessmentID: env.assessmentID, Answers: answers})
	require.Error(t, err)
	_, ok := err.(interface{ NoActiveAttempt() })
	assert.True(t, ok, "the completed attempt is no longer active")
}

func TestSubmit_UnknownAssessment(t *testing.T) {
	env := setupSubmission(t)

	_, err := env.submission.Submit(env.student.ID, dto.ResultSubmitDTO{
		AssessmentID: uuid.New(),
		Answers:      map[string]string{},
	})
	require.Error(t, err)
	_, ok := err.(interface{ NotFound() })
	assert.True(t, ok)
}

func TestSubmit_SurvivesBrokenDurableLog(t *testing.T) {
	env := setupSubmission(t)
	env.join(t, env.student.ID)

	notifier, _ := newTestNotifier(t, failingPublisher{})
	sub := NewSubmissionService(
		repository.NewAssessmentRepository(env.db),
		repository.NewResultRepository(env.db),
		notifier,
		env.db,
	)

	submitted, err := sub.Submit(env.student.ID, dto.ResultSubmitDTO{
		AssessmentID: env.assessmentID,
		Answers:      map[string]string{env.questions[0].ID.String(): "Raft"},
	})
	require.NoError(t, err, "a down event sink must not fail the submission")
	assert.True(t, submitted.IsCompleted)
}

func TestResultDetail_RecomputesCorrectnessForDisplay(t *testing.T) {
	env := setupSubmission(t)
	env.join(t, env.student.ID)

	submitted, err := env.submission.Submit(env.student.ID, dto.ResultSubmitDTO{
		AssessmentID: env.assessmentID,
		Answers: map[string]string{
			env.questions[0].ID.String(): "Raft", // correct, 4 points
			env.questions[1].ID.String(): "true", // wrong, 6 points stored anyway
		},
	})
	require.NoError(t, err)

	detail, err := env.submission.ResultDetail(submitted.ResultID, env.student.ID, model.RoleStudent)
	require.NoError(t, err)

	assert.Equal(t, 10, detail.Score, "stored score counts both answers")
	require.Len(t, detail.QuestionResults, 2)

	first := detail.QuestionResults[0]
	assert.True(t, first.IsCorrect)
	assert.Equal(t, 4, first.EarnedPoints)

	second := detail.QuestionResults[1]
	assert.False(t, second.IsCorrect)
	assert.Zero(t, second.EarnedPoints, "display breakdown disagrees with the stored score for wrong answers")
	assert.Equal(t, "false", second.CorrectAnswer)
	assert.Equal(t, "true", second.UserAnswer)
}

func TestResultDetail_AccessControl(t *testing.T) {
	env := setupSubmission(t)
	env.join(t, env.student.ID)
	submitted, err := env.submission.Submit(env.student.ID, dto.ResultSubmitDTO{
		AssessmentID: env.assessmentID,
		Answers:      map[string]string{env.questions[0].ID.String(): "Raft"},
	})
	require.NoError(t, err)

	// The course instructor may read it.
	_, err = env.submission.ResultDetail(submitted.ResultID, env.instructor.ID, model.RoleInstructor)
	require.NoError(t, err)

	// Another student may not.
	other := env.enrollStudent(t)
	_, err = env.submission.ResultDetail(submitted.ResultID, other.ID, model.RoleStudent)
	require.Error(t, err)
	_, ok := err.(interface{ PermissionDenied() })
	assert.True(t, ok)

	// A foreign instructor may not either.
	intruder := model.User{ID: uuid.New(), Name: "Eve", Email: "eve2@example.com", Role: model.RoleInstructor}
	require.NoError(t, env.db.Create(&intruder).Error)
	_, err = env.submission.ResultDetail(submitted.ResultID, intruder.ID, model.RoleInstructor)
	require.Error(t, err)
	_, ok = err.(interface{ PermissionDenied() })
	assert.True(t, ok)
}

func TestUserResults_ListsOwnAttempts(t *testing.T) {
	env := setupSubmission(t)
	env.join(t, env.student.ID)
	_, err := env.submission.Submit(env.student.ID, dto.ResultSubmitDTO{
		AssessmentID: env.assessmentID,
		Answers:      map[string]string{env.questions[0].ID.String(): "Raft"},
	})
	require.NoError(t, err)

	results, err := env.submission.UserResults(env.student.ID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Consensus Quiz", results[0].AssessmentTitle)
	assert.Equal(t, 4, results[0].Score)
	assert.InDelta(t, 40.0, results[0].ScorePercentage, 0.001)
}

func TestAssessmentResults_InstructorOnlySeesCompleted(t *testing.T) {
	env := setupSubmission(t)
	env.join(t, env.student.ID)
	other := env.enrollStudent(t)
	env.join(t, other.ID)

	_, err := env.submission.Submit(env.student.ID, dto.ResultSubmitDTO{
		AssessmentID: env.assessmentID,
		Answers: map[string]string{
			env.questions[0].ID.String(): "Raft",
			env.questions[1].ID.String(): "false",
		},
	})
	require.NoError(t, err)

	rows, err := env.submission.AssessmentResults(env.assessmentID, env.instructor.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1, "the open attempt is not listed")
	assert.Equal(t, env.student.ID, rows[0].UserID)
	assert.Equal(t, 10, rows[0].Score)
	assert.InDelta(t, 100.0, rows[0].ScorePercentage, 0.001)

	// A foreign instructor is rejected.
	intruder := model.User{ID: uuid.New(), Name: "Eve", Email: "eve3@example.com", Role: model.RoleInstructor}
	require.NoError(t, env.db.Create(&intruder).Error)
	_, err = env.submission.AssessmentResults(env.assessmentID, intruder.ID)
	require.Error(t, err)
	_, ok := err.(interface{ PermissionDenied() })
	assert.True(t, ok)
}
