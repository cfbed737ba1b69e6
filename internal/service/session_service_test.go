package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lshigami/EduSync/internal/model"
	"github.com/lshigami/EduSync/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionServiceForTest(t *testing.T, f *fixtures, pub *capturingPublisher) SessionService {
	t.Helper()
	notifier, _ := newTestNotifier(t, pub)
	return NewSessionService(
		repository.NewCourseRepository(f.db),
		repository.NewAssessmentRepository(f.db),
		notifier,
		f.db,
	)
}

func TestCreateLive_GoesLiveImmediately(t *testing.T) {
	f := setupFixtures(t)
	pub := &capturingPublisher{}
	svc := newSessionServiceForTest(t, f, pub)

	created, err := svc.CreateLive(f.instructor.ID, sampleCreateDTO(f.course.ID))
	require.NoError(t, err)

	assert.Equal(t, model.StatusLive, created.Status)
	assert.True(t, created.IsLive)
	assert.Len(t, created.SessionID, 8)

	var stored model.Assessment
	require.NoError(t, f.db.Preload("Questions").First(&stored, "id = ?", created.AssessmentID).Error)
	assert.True(t, stored.Joinable())
	assert.NotNil(t, stored.StartedAt)
	require.NotNil(t, stored.SessionID)
	assert.Equal(t, created.SessionID, *stored.SessionID)
	assert.Len(t, stored.Questions, 2)
}

func TestCreateLive_CourseNotFound(t *testing.T) {
	f := setupFixtures(t)
	svc := newSessionServiceForTest(t, f, &capturingPublisher{})

	_, err := svc.CreateLive(f.instructor.ID, sampleCreateDTO(uuid.New()))
	require.Error(t, err)
	_, ok := err.(interface{ NotFound() })
	assert.True(t, ok, "expected a not-found error, got %v", err)
}

func TestCreateLive_RejectsForeignInstructor(t *testing.T) {
	f := setupFixtures(t)
	svc := newSessionServiceForTest(t, f, &capturingPublisher{})

	intruder := model.User{ID: uuid.New(), Name: "Eve", Email: "eve@example.com", Role: model.RoleInstructor}
	require.NoError(t, f.db.Create(&intruder).Error)

	_, err := svc.CreateLive(intruder.ID, sampleCreateDTO(f.course.ID))
	require.Error(t, err)
	_, ok := err.(interface{ PermissionDenied() })
	assert.True(t, ok, "expected a permission error, got %v", err)

	var count int64
	require.NoError(t, f.db.Model(&model.Assessment{}).Count(&count).Error)
	assert.Zero(t, count, "nothing may be persisted on a rejected create")
}

func TestCreateLive_SessionIDsAreDistinct(t *testing.T) {
	f := setupFixtures(t)
	svc := newSessionServiceForTest(t, f, &capturingPublisher{})

	first, err := svc.CreateLive(f.instructor.ID, sampleCreateDTO(f.course.ID))
	require.NoError(t, err)
	second, err := svc.CreateLive(f.instructor.ID, sampleCreateDTO(f.course.ID))
	require.NoError(t, err)

	assert.NotEqual(t, first.SessionID, second.SessionID)
}

func TestCreateLive_SurvivesBrokenDurableLog(t *testing.T) {
	f := setupFixtures(t)
	notifier, _ := newTestNotifier(t, failingPublisher{})
	svc := NewSessionService(
		repository.NewCourseRepository(f.db),
		repository.NewAssessmentRepository(f.db),
		notifier,
		f.db,
	)

	created, err := svc.CreateLive(f.instructor.ID, sampleCreateDTO(f.course.ID))
	require.NoError(t, err, "a down event sink must not fail the operation")
	assert.True(t, created.IsLive)
}

func TestMarkCompleted_IsIdempotent(t *testing.T) {
	f := setupFixtures(t)
	svc := newSessionServiceForTest(t, f, &capturingPublisher{})

	created, err := svc.CreateLive(f.instructor.ID, sampleCreateDTO(f.course.ID))
	require.NoError(t, err)

	require.NoError(t, svc.MarkCompleted(created.AssessmentID))

	var after model.Assessment
	require.NoError(t, f.db.First(&after, "id = ?", created.AssessmentID).Error)
	assert.Equal(t, model.StatusCompleted, after.Status)
	assert.False(t, after.IsLive)
	assert.Nil(t, after.SessionID, "the session token is cleared with the live flag")
	require.NotNil(t, after.EndedAt)
	firstEnd := *after.EndedAt

	// Second call changes nothing, including the end timestamp.
	require.NoError(t, svc.MarkCompleted(created.AssessmentID))
	var again model.Assessment
	require.NoError(t, f.db.First(&again, "id = ?", created.AssessmentID).Error)
	require.NotNil(t, again.EndedAt)
	assert.Equal(t, firstEnd, *again.EndedAt)
}

func TestMarkCompleted_UnknownAssessment(t *testing.T) {
	f := setupFixtures(t)
	svc := newSessionServiceForTest(t, f, &capturingPublisher{})

	err := svc.MarkCompleted(uuid.New())
	require.Error(t, err)
	_, ok := err.(interface{ NotFound() })
	assert.True(t, ok)
}
