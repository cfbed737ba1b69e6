package dto

import "github.com/google/uuid"

// QuestionCreateDTO is used within AssessmentCreateDTO. CorrectAnswer is
// accepted here but never echoed back to students.
type QuestionCreateDTO struct {
	QuestionText  string   `json:"question_text" binding:"required,max=500"`
	Options       []string `json:"options" binding:"required"`
	CorrectAnswer string   `json:"correct_answer" binding:"required,max=100"`
	Points        int      `json:"points" binding:"required,min=1"`
	Type          string   `json:"type" binding:"required,oneof=multiple_choice true_false short_answer essay"`
	OrderIndex    int      `json:"order_index" binding:"required,min=1"`
}

// AssessmentCreateDTO creates an assessment that goes live immediately:
// there is no separate publish step.
type AssessmentCreateDTO struct {
	CourseID    uuid.UUID           `json:"course_id" binding:"required"`
	Title       string              `json:"title" binding:"required,max=100"`
	Description string              `json:"description,omitempty" binding:"max=500"`
	MaxScore    int                 `json:"max_score" binding:"required,min=1"`
	TimeLimit   *int                `json:"time_limit,omitempty"`
	Questions   []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

// QuestionUpdateDTO upserts: with QuestionID it updates the existing
// question, without it a new one is appended.
type QuestionUpdateDTO struct {
	QuestionID    *uuid.UUID `json:"question_id,omitempty"`
	QuestionText  string     `json:"question_text" binding:"required,max=500"`
	Options       []string   `json:"options" binding:"required"`
	CorrectAnswer string     `json:"correct_answer" binding:"required,max=100"`
	Points        int        `json:"points" binding:"required,min=1"`
	Type          string     `json:"type" binding:"required,oneof=multiple_choice true_false short_answer essay"`
	OrderIndex    int        `json:"order_index" binding:"required,min=1"`
}

type AssessmentUpdateDTO struct {
	Title       string              `json:"title" binding:"required,max=100"`
	Description string              `json:"description,omitempty" binding:"max=500"`
	MaxScore    int                 `json:"max_score" binding:"required,min=1"`
	TimeLimit   *int                `json:"time_limit,omitempty"`
	Questions   []QuestionUpdateDTO `json:"questions,omitempty" binding:"omitempty,dive"`
}

// ResultSubmitDTO carries a student's answers, keyed by question id.
type ResultSubmitDTO struct {
	AssessmentID uuid.UUID         `json:"assessment_id" binding:"required"`
	Answers      map[string]string `json:"answers" binding:"required"`
}

type CourseCreateDTO struct {
	Title       string `json:"title" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
}

// ClientEventDTO is a client-forwarded event relayed verbatim to both sinks.
// Both sinks must tolerate arbitrary payload shapes, so AdditionalData is an
// open map merged into the payload.
type ClientEventDTO struct {
	EventType      string                 `json:"eventType" binding:"required"`
	AssessmentID   string                 `json:"assessmentId"`
	QuestionID     string                 `json:"questionId"`
	Answer         string                 `json:"answer"`
	AdditionalData map[string]interface{} `json:"additionalData"`
}

// EventPayload flattens a client event for publication.
func (e *ClientEventDTO) EventPayload(timestamp string) map[string]interface{} {
	payload := map[string]interface{}{
		"assessmentId": e.AssessmentID,
		"questionId":   e.QuestionID,
		"answer":       e.Answer,
		"timestamp":    timestamp,
	}
	for k, v := range e.AdditionalData {
		payload[k] = v
	}
	return payload
}
