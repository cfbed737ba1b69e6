package model

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	QuestionMultipleChoice = "multiple_choice"
	QuestionTrueFalse      = "true_false"
	QuestionShortAnswer    = "short_answer"
	QuestionEssay          = "essay"
)

type Question struct {
	ID            uuid.UUID      `gorm:"type:uuid;primarykey" json:"question_id"`
	AssessmentID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"assessment_id"`
	QuestionText  string         `json:"question_text" gorm:"size:500;not null"`
	Options       datatypes.JSON `json:"options" gorm:"not null"` // JSON array of option strings
	CorrectAnswer string         `json:"-" gorm:"size:100;not null"`
	Points        int            `json:"points" gorm:"not null;default:1"`
	Type          string         `json:"type" gorm:"not null;default:'multiple_choice'"`
	OrderIndex    int            `json:"order_index" gorm:"not null"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// OptionsList decodes the stored options column. Falls back to treating the
// column as a comma-separated string for rows written before the JSON format.
func (q *Question) OptionsList() []string {
	if len(q.Options) == 0 {
		return []string{}
	}
	var opts []string
	if err := json.Unmarshal(q.Options, &opts); err == nil {
		return opts
	}
	var out []string
	for _, o := range strings.Split(string(q.Options), ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func (q *Question) SetOptions(opts []string) {
	raw, _ := json.Marshal(opts)
	q.Options = raw
}
