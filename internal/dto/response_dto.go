package dto

import (
	"time"

	"github.com/google/uuid"
)

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// AssessmentCreatedDTO confirms a create-and-go-live operation.
type AssessmentCreatedDTO struct {
	AssessmentID uuid.UUID `json:"assessment_id"`
	SessionID    string    `json:"session_id"`
	Status       string    `json:"status"`
	IsLive       bool      `json:"is_live"`
}

// QuestionDTO is the instructor view, correct answer included.
type QuestionDTO struct {
	QuestionID    uuid.UUID `json:"question_id"`
	QuestionText  string    `json:"question_text"`
	Options       []string  `json:"options"`
	CorrectAnswer string    `json:"correct_answer"`
	Points        int       `json:"points"`
	Type          string    `json:"type"`
	OrderIndex    int       `json:"order_index"`
}

// StudentQuestionDTO is the student view: no correct answer, ever.
type StudentQuestionDTO struct {
	QuestionID   uuid.UUID `json:"question_id"`
	QuestionText string    `json:"question_text"`
	Options      []string  `json:"options"`
	Points       int       `json:"points"`
	Type         string    `json:"type"`
	OrderIndex   int       `json:"order_index"`
}

type AssessmentDetailDTO struct {
	AssessmentID uuid.UUID     `json:"assessment_id"`
	CourseID     uuid.UUID     `json:"course_id"`
	CourseName   string        `json:"course_name"`
	Title        string        `json:"title"`
	Description  string        `json:"description,omitempty"`
	MaxScore     int           `json:"max_score"`
	TimeLimit    *int          `json:"time_limit,omitempty"`
	Status       string        `json:"status"`
	IsLive       bool          `json:"is_live"`
	SessionID    *string       `json:"session_id,omitempty"`
	StartedAt    *time.Time    `json:"started_at,omitempty"`
	EndedAt      *time.Time    `json:"ended_at,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	Questions    []QuestionDTO `json:"questions"`
}

// AssessmentSummaryDTO serves every assessment listing. The attempt fields
// are populated only on student-facing listings.
type AssessmentSummaryDTO struct {
	AssessmentID  uuid.UUID  `json:"assessment_id"`
	CourseID      uuid.UUID  `json:"course_id"`
	CourseName    string     `json:"course_name"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	MaxScore      int        `json:"max_score"`
	TimeLimit     *int       `json:"time_limit,omitempty"`
	QuestionCount int        `json:"question_count"`
	Status        string     `json:"status"`
	IsLive        bool       `json:"is_live"`
	CreatedAt     time.Time  `json:"created_at"`
	IsCompleted   bool       `json:"is_completed"`
	Score         *int       `json:"score,omitempty"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`
}

// JoinedAssessmentDTO is what a student sees after a successful join. The
// questions become visible only through this response.
type JoinedAssessmentDTO struct {
	AssessmentID uuid.UUID            `json:"assessment_id"`
	AttemptID    uuid.UUID            `json:"attempt_id"`
	Title        string               `json:"title"`
	Description  string               `json:"description,omitempty"`
	CourseName   string               `json:"course_name"`
	MaxScore     int                  `json:"max_score"`
	TimeLimit    *int                 `json:"time_limit,omitempty"`
	StartedAt    *time.Time           `json:"started_at,omitempty"`
	SessionID    *string              `json:"session_id,omitempty"`
	Questions    []StudentQuestionDTO `json:"questions"`
}

type LiveStatusDTO struct {
	AssessmentID uuid.UUID  `json:"assessment_id"`
	Title        string     `json:"title"`
	CourseName   string     `json:"course_name"`
	Status       string     `json:"status"`
	IsLive       bool       `json:"is_live"`
	SessionID    *string    `json:"session_id,omitempty"`
	StartedAt    *time.Time `json:"started_at,omitempty"`
	MaxScore     int        `json:"max_score"`
	TimeLimit    *int       `json:"time_limit,omitempty"`
	JoinedCount  int64      `json:"joined_count"`
}

type ResultSubmittedDTO struct {
	Message     string    `json:"message"`
	ResultID    uuid.UUID `json:"result_id"`
	IsCompleted bool      `json:"is_completed"`
}

type ResultSummaryDTO struct {
	ResultID        uuid.UUID  `json:"result_id"`
	AssessmentID    uuid.UUID  `json:"assessment_id"`
	AssessmentTitle string     `json:"assessment_title"`
	CourseID        uuid.UUID  `json:"course_id"`
	CourseTitle     string     `json:"course_title"`
	AttemptDate     time.Time  `json:"attempt_date"`
	CompletedDate   *time.Time `json:"completed_date,omitempty"`
	Score           int        `json:"score"`
	MaxScore        int        `json:"max_score"`
	IsCompleted     bool       `json:"is_completed"`
	ScorePercentage float64    `json:"score_percentage"`
}

// QuestionResultDTO is the display-only scoring reconstruction: IsCorrect and
// EarnedPoints come from comparing the stored answer to the correct one, and
// may legitimately disagree with the persisted Score.
type QuestionResultDTO struct {
	QuestionID    uuid.UUID `json:"question_id"`
	QuestionText  string    `json:"question_text"`
	Options       []string  `json:"options"`
	CorrectAnswer string    `json:"correct_answer"`
	UserAnswer    string    `json:"user_answer"`
	IsCorrect     bool      `json:"is_correct"`
	Points        int       `json:"points"`
	EarnedPoints  int       `json:"earned_points"`
}

type ResultDetailDTO struct {
	ResultID        uuid.UUID           `json:"result_id"`
	AssessmentID    uuid.UUID           `json:"assessment_id"`
	AssessmentTitle string              `json:"assessment_title"`
	CourseID        uuid.UUID           `json:"course_id"`
	CourseTitle     string              `json:"course_title"`
	AttemptDate     time.Time           `json:"attempt_date"`
	CompletedDate   *time.Time          `json:"completed_date,omitempty"`
	Score           int                 `json:"score"`
	MaxScore        int                 `json:"max_score"`
	IsCompleted     bool                `json:"is_completed"`
	ScorePercentage float64             `json:"score_percentage"`
	QuestionResults []QuestionResultDTO `json:"question_results"`
}

// StudentResultDTO is the instructor's per-student row for one assessment.
type StudentResultDTO struct {
	UserID          uuid.UUID  `json:"user_id"`
	StudentName     string     `json:"student_name"`
	AttemptDate     time.Time  `json:"attempt_date"`
	CompletedDate   *time.Time `json:"completed_date,omitempty"`
	Score           int        `json:"score"`
	ScorePercentage float64    `json:"score_percentage"`
	IsCompleted     bool       `json:"is_completed"`
}

type CourseDTO struct {
	CourseID     uuid.UUID `json:"course_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	InstructorID uuid.UUID `json:"instructor_id"`
	CreatedAt    time.Time `json:"created_at"`
}

type EnrolledDTO struct {
	EnrollmentID uuid.UUID `json:"enrollment_id"`
	CourseID     uuid.UUID `json:"course_id"`
	StudentID    uuid.UUID `json:"student_id"`
}

type AnswerFeedbackDTO struct {
	QuestionID uuid.UUID `json:"question_id"`
	Feedback   string    `json:"feedback"`
}
