package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/EduSync/config"
	"github.com/lshigami/EduSync/internal/model"
	"github.com/lshigami/EduSync/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Without an API key the service constructs fine but reports itself
// unconfigured instead of calling out.
func TestFeedback_UnconfiguredClient(t *testing.T) {
	f := setupFixtures(t)
	svc, err := NewFeedbackService(&config.Config{}, repository.NewResultRepository(f.db))
	require.NoError(t, err)

	assessment := model.Assessment{
		ID:       uuid.New(),
		CourseID: f.course.ID,
		Title:    "Essay Round",
		MaxScore: 5,
		Status:   model.StatusCompleted,
	}
	require.NoError(t, f.db.Create(&assessment).Error)

	now := time.Now().UTC()
	result := model.Result{
		ID:            uuid.New(),
		AssessmentID:  assessment.ID,
		UserID:        f.student.ID,
		AttemptDate:   now,
		CompletedDate: &now,
		IsCompleted:   true,
	}
	result.SetAnswers(map[string]string{})
	require.NoError(t, f.db.Create(&result).Error)

	_, err = svc.AttemptFeedback(result.ID, f.student.ID)
	require.Error(t, err)
	_, ok := err.(interface{ InvalidState() })
	assert.True(t, ok, "unconfigured feedback must be an invalid-state error, got %v", err)
}

func TestFeedback_RejectsForeignStudent(t *testing.T) {
	f := setupFixtures(t)
	svc, err := NewFeedbackService(&config.Config{}, repository.NewResultRepository(f.db))
	require.NoError(t, err)

	assessment := model.Assessment{ID: uuid.New(), CourseID: f.course.ID, Title: "Essay Round", MaxScore: 5}
	require.NoError(t, f.db.Create(&assessment).Error)
	result := model.Result{
		ID:           uuid.New(),
		AssessmentID: assessment.ID,
		UserID:       f.student.ID,
		AttemptDate:  time.Now().UTC(),
		IsCompleted:  true,
	}
	result.SetAnswers(map[string]string{})
	require.NoError(t, f.db.Create(&result).Error)

	other := f.enrollStudent(t)
	_, err = svc.AttemptFeedback(result.ID, other.ID)
	require.Error(t, err)
	_, ok := err.(interface{ PermissionDenied() })
	assert.True(t, ok)
}

func TestFeedback_RequiresCompletedAttempt(t *testing.T) {
	f := setupFixtures(t)
	svc, err := NewFeedbackService(&config.Config{}, repository.NewResultRepository(f.db))
	require.NoError(t, err)

	assessment := model.Assessment{ID: uuid.New(), CourseID: f.course.ID, Title: "Essay Round", MaxScore: 5}
	require.NoError(t, f.db.Create(&assessment).Error)
	result := model.Result{
		ID:           uuid.New(),
		AssessmentID: assessment.ID,
		UserID:       f.student.ID,
		AttemptDate:  time.Now().UTC(),
	}
	result.SetAnswers(map[string]string{})
	require.NoError(t, f.db.Create(&result).Error)

	_, err = svc.AttemptFeedback(result.ID, f.student.ID)
	require.Error(t, err)
	_, ok := err.(interface{ InvalidState() })
	assert.True(t, ok)
}
