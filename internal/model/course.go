package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Course struct {
	ID           uuid.UUID      `gorm:"type:uuid;primarykey" json:"course_id"`
	Title        string         `json:"title" gorm:"size:100;not null"`
	Description  string         `json:"description" gorm:"size:500"`
	InstructorID uuid.UUID      `gorm:"type:uuid;not null;index" json:"instructor_id"`
	Instructor   User           `json:"instructor,omitempty" gorm:"foreignKey:InstructorID"`
	Enrollments  []Enrollment   `json:"enrollments,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	Assessments  []Assessment   `json:"assessments,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

type Enrollment struct {
	ID             uuid.UUID      `gorm:"type:uuid;primarykey" json:"enrollment_id"`
	CourseID       uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_enrollments_course_student" json:"course_id"`
	StudentID      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_enrollments_course_student" json:"student_id"`
	EnrollmentDate time.Time      `json:"enrollment_date" gorm:"not null"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
