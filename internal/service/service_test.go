package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/EduSync/internal/dto"
	"github.com/lshigami/EduSync/internal/event"
	"github.com/lshigami/EduSync/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Shared fixtures for the service tests: an in-memory database with the full
// schema, one instructor with a course, and one enrolled student.

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps the in-memory database alive and serializes
	// concurrent test writers the way sqlite expects.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Enrollment{},
		&model.Assessment{},
		&model.Question{},
		&model.Result{},
		&model.EventRecord{},
	))
	return db
}

type fixtures struct {
	db         *gorm.DB
	instructor model.User
	student    model.User
	course     model.Course
}

func setupFixtures(t *testing.T) *fixtures {
	t.Helper()
	db := setupTestDB(t)

	f := &fixtures{
		db: db,
		instructor: model.User{
			ID:    uuid.New(),
			Name:  "Ada Instructor",
			Email: "ada@example.com",
			Role:  model.RoleInstructor,
		},
		student: model.User{
			ID:    uuid.New(),
			Name:  "Sam Student",
			Email: "sam@example.com",
			Role:  model.RoleStudent,
		},
	}
	require.NoError(t, db.Create(&f.instructor).Error)
	require.NoError(t, db.Create(&f.student).Error)

	f.course = model.Course{
		ID:           uuid.New(),
		Title:        "Distributed Systems",
		InstructorID: f.instructor.ID,
	}
	require.NoError(t, db.Create(&f.course).Error)

	require.NoError(t, db.Create(&model.Enrollment{
		ID:             uuid.New(),
		CourseID:       f.course.ID,
		StudentID:      f.student.ID,
		EnrollmentDate: time.Now().UTC(),
	}).Error)

	return f
}

func (f *fixtures) enrollStudent(t *testing.T) model.User {
	t.Helper()
	student := model.User{
		ID:    uuid.New(),
		Name:  "Extra Student",
		Email: uuid.New().String() + "@example.com",
		Role:  model.RoleStudent,
	}
	require.NoError(t, f.db.Create(&student).Error)
	require.NoError(t, f.db.Create(&model.Enrollment{
		ID:             uuid.New(),
		CourseID:       f.course.ID,
		StudentID:      student.ID,
		EnrollmentDate: time.Now().UTC(),
	}).Error)
	return student
}

// capturingPublisher records durable-log publications for assertions.
type capturingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *capturingPublisher) Publish(_ context.Context, eventType string, _ interface{}) {
	p.mu.Lock()
	p.events = append(p.events, eventType)
	p.mu.Unlock()
}

func (p *capturingPublisher) recorded() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.events...)
}

// failingPublisher simulates the durable log being down.
type failingPublisher struct{}

func (failingPublisher) Publish(context.Context, string, interface{}) {
	panic("durable log unreachable")
}

func newTestNotifier(t *testing.T, pub event.Publisher) (*event.Notifier, *event.Hub) {
	t.Helper()
	hub := event.NewHub()
	notifier := event.NewNotifier(pub, hub)
	t.Cleanup(notifier.Close)
	return notifier, hub
}

func sampleCreateDTO(courseID uuid.UUID) dto.AssessmentCreateDTO {
	return dto.AssessmentCreateDTO{
		CourseID: courseID,
		Title:    "Consensus Quiz",
		MaxScore: 10,
		Questions: []dto.QuestionCreateDTO{
			{
				QuestionText:  "Which protocol elects a single leader?",
				Options:       []string{"Raft", "Gossip", "CRDT"},
				CorrectAnswer: "Raft",
				Points:        4,
				Type:          model.QuestionMultipleChoice,
				OrderIndex:    1,
			},
			{
				QuestionText:  "Quorum reads always see the latest write.",
				Options:       []string{"true", "false"},
				CorrectAnswer: "false",
				Points:        6,
				Type:          model.QuestionTrueFalse,
				OrderIndex:    2,
			},
		},
	}
}
