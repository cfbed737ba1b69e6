package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Assessment lifecycle states. An assessment created by an instructor goes
// Live immediately; the first processed submission moves it to Completed.
const (
	StatusDraft     = "Draft"
	StatusScheduled = "Scheduled"
	StatusLive      = "Live"
	StatusCompleted = "Completed"
	StatusArchived  = "Archived"
)

type Assessment struct {
	ID          uuid.UUID      `gorm:"type:uuid;primarykey" json:"assessment_id"`
	CourseID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"course_id"`
	Course      Course         `json:"course,omitempty" gorm:"foreignKey:CourseID"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description,omitempty"`
	MaxScore    int            `json:"max_score" gorm:"not null"`
	TimeLimit   *int           `json:"time_limit,omitempty"` // minutes, informational only

	// Live-session fields. IsLive, Status and SessionID must always agree:
	// IsLive == true iff Status == Live. They are written only by the go-live
	// and completion paths so the fields change together.
	Status    string     `json:"status" gorm:"default:'Draft'"`
	IsLive    bool       `json:"is_live" gorm:"default:false"`
	StartedAt *time.Time `json:"started_at,omitempty"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
	SessionID *string    `json:"session_id,omitempty" gorm:"size:100"`

	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:AssessmentID;constraint:OnDelete:CASCADE"`
	Results   []Result   `json:"results,omitempty" gorm:"foreignKey:AssessmentID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Joinable reports whether the assessment currently accepts joins and
// submissions. Both fields are checked, matching the stored invariant.
func (a *Assessment) Joinable() bool {
	return a.IsLive && a.Status == StatusLive
}
