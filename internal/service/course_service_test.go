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

func newCourseServiceForTest(f *fixtures) CourseService {
	return NewCourseService(
		repository.NewCourseRepository(f.db),
		repository.NewEnrollmentRepository(f.db),
	)
}

func TestCourseCreateAndList(t *testing.T) {
	f := setupFixtures(t)
	svc := newCourseServiceForTest(f)

	created, err := svc.Create(f.instructor.ID, dto.CourseCreateDTO{Title: "Operating Systems"})
	require.NoError(t, err)
	assert.Equal(t, "Operating Systems", created.Title)
	assert.Equal(t, f.instructor.ID, created.InstructorID)

	courses, err := svc.ListByInstructor(f.instructor.ID)
	require.NoError(t, err)
	assert.Len(t, courses, 2, "the fixture course plus the new one")
}

func TestEnroll_RejectsDuplicates(t *testing.T) {
	f := setupFixtures(t)
	svc := newCourseServiceForTest(f)

	newcomer := model.User{ID: uuid.New(), Name: "Nora", Email: "nora@example.com", Role: model.RoleStudent}
	require.NoError(t, f.db.Create(&newcomer).Error)

	enrolled, err := svc.Enroll(f.course.ID, f.instructor.ID, newcomer.ID)
	require.NoError(t, err)
	assert.Equal(t, f.course.ID, enrolled.CourseID)

	_, err = svc.Enroll(f.course.ID, f.instructor.ID, newcomer.ID)
	require.Error(t, err)
	_, ok := err.(interface{ Conflict() })
	assert.True(t, ok, "duplicate enrollment must conflict, got %v", err)
}

func TestEnroll_RequiresCourseOwnership(t *testing.T) {
	f := setupFixtures(t)
	svc := newCourseServiceForTest(f)

	intruder := model.User{ID: uuid.New(), Name: "Eve", Email: "eve5@example.com", Role: model.RoleInstructor}
	require.NoError(t, f.db.Create(&intruder).Error)

	_, err := svc.Enroll(f.course.ID, intruder.ID, f.student.ID)
	require.Error(t, err)
	_, ok := err.(interface{ PermissionDenied() })
	assert.True(t, ok)
}
