package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/EduSync/internal/dto"
	"github.com/lshigami/EduSync/internal/model"
	"github.com/lshigami/EduSync/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// CourseService is the thin layer behind the enrollment and ownership checks.
type CourseService interface {
	Create(instructorID uuid.UUID, req dto.CourseCreateDTO) (*dto.CourseDTO, error)
	Enroll(courseID, instructorID, studentID uuid.UUID) (*dto.EnrolledDTO, error)
	ListByInstructor(instructorID uuid.UUID) ([]dto.CourseDTO, error)
}

type courseService struct {
	courseRepo     repository.CourseRepository
	enrollmentRepo repository.EnrollmentRepository
}

func NewCourseService(courseRepo repository.CourseRepository, enrollmentRepo repository.EnrollmentRepository) CourseService {
	return &courseService{courseRepo: courseRepo, enrollmentRepo: enrollmentRepo}
}

func (s *courseService) Create(instructorID uuid.UUID, req dto.CourseCreateDTO) (*dto.CourseDTO, error) {
	course := &model.Course{
		ID:           uuid.New(),
		Title:        req.Title,
		Description:  req.Description,
		InstructorID: instructorID,
	}
	if err := s.courseRepo.Create(course); err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}
	log.Info().Str("course_id", course.ID.String()).Str("title", course.Title).Msg("Course created")

	var resp dto.CourseDTO
	copier.Copy(&resp, course)
	resp.CourseID = course.ID
	return &resp, nil
}

func (s *courseService) Enroll(courseID, instructorID, studentID uuid.UUID) (*dto.EnrolledDTO, error) {
	course, err := s.courseRepo.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "course"}
		}
		return nil, fmt.Errorf("error looking up course %s: %w", courseID, err)
	}
	if course.InstructorID != instructorID {
		return nil, &PermissionError{Reason: "you do not teach this course"}
	}

	enrollment := &model.Enrollment{
		ID:             uuid.New(),
		CourseID:       courseID,
		StudentID:      studentID,
		EnrollmentDate: time.Now().UTC(),
	}
	if err := s.enrollmentRepo.Create(enrollment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Reason: "student is already enrolled"}
		}
		return nil, fmt.Errorf("failed to enroll student: %w", err)
	}

	return &dto.EnrolledDTO{
		EnrollmentID: enrollment.ID,
		CourseID:     courseID,
		StudentID:    studentID,
	}, nil
}

func (s *courseService) ListByInstructor(instructorID uuid.UUID) ([]dto.CourseDTO, error) {
	courses, err := s.courseRepo.FindAllByInstructor(instructorID)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	out := make([]dto.CourseDTO, 0, len(courses))
	for i := range courses {
		var c dto.CourseDTO
		copier.Copy(&c, &courses[i])
		c.CourseID = courses[i].ID
		out = append(out, c)
	}
	return out, nil
}
