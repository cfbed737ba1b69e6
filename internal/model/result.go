package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Result is one student's attempt at one assessment. The composite unique
// index backs the at-most-one-attempt-per-(assessment,user) guarantee: join
// inserts optimistically and re-reads on a duplicate-key error, so even two
// racing joins leave exactly one row.
type Result struct {
	ID            uuid.UUID      `gorm:"type:uuid;primarykey" json:"result_id"`
	AssessmentID  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_results_assessment_user" json:"assessment_id"`
	Assessment    Assessment     `json:"assessment,omitempty" gorm:"foreignKey:AssessmentID"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_results_assessment_user" json:"user_id"`
	User          User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Score         int            `json:"score" gorm:"not null;default:0"`
	AttemptDate   time.Time      `json:"attempt_date" gorm:"not null"`
	CompletedDate *time.Time     `json:"completed_date,omitempty"`
	IsCompleted   bool           `json:"is_completed" gorm:"default:false"`
	Answers       datatypes.JSON `json:"answers"` // JSON object, question id -> submitted text
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (r *Result) AnswersMap() map[string]string {
	if len(r.Answers) == 0 {
		return map[string]string{}
	}
	answers := map[string]string{}
	if err := json.Unmarshal(r.Answers, &answers); err != nil {
		return map[string]string{}
	}
	return answers
}

func (r *Result) SetAnswers(answers map[string]string) {
	raw, _ := json.Marshal(answers)
	r.Answers = raw
}
