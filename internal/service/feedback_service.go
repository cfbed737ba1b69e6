package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"github.com/lshigami/EduSync/config"
	"github.com/lshigami/EduSync/internal/dto"
	"github.com/lshigami/EduSync/internal/model"
	"github.com/lshigami/EduSync/internal/repository"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	"gorm.io/gorm"
)

// FeedbackService asks Gemini to comment on a student's free-text answers
// after an attempt is completed. It never contributes to the stored score.
type FeedbackService interface {
	AttemptFeedback(resultID, studentID uuid.UUID) ([]dto.AnswerFeedbackDTO, error)
}

type feedbackService struct {
	client     *genai.GenerativeModel
	resultRepo repository.ResultRepository
	cfg        *config.Config
}

func NewFeedbackService(cfg *config.Config, resultRepo repository.ResultRepository) (FeedbackService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. FeedbackService will not function.")
		return &feedbackService{cfg: cfg, resultRepo: resultRepo, client: nil}, nil
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		log.Error().Err(err).Msg("Failed to create Gemini client")
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-flash")
	return &feedbackService{client: model, resultRepo: resultRepo, cfg: cfg}, nil
}

func (s *feedbackService) AttemptFeedback(resultID, studentID uuid.UUID) ([]dto.AnswerFeedbackDTO, error) {
	result, err := s.resultRepo.FindByIDWithDetails(resultID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "result"}
		}
		return nil, fmt.Errorf("error looking up result %s: %w", resultID, err)
	}
	if result.UserID != studentID {
		return nil, &PermissionError{Reason: "this result belongs to another student"}
	}
	if !result.IsCompleted {
		return nil, &InvalidStateError{Reason: "feedback is available after submission only"}
	}

	if s.client == nil {
		return nil, &InvalidStateError{Reason: "AI feedback is not configured"}
	}

	answers := result.AnswersMap()
	out := []dto.AnswerFeedbackDTO{}
	for i := range result.Assessment.Questions {
		q := &result.Assessment.Questions[i]
		if q.Type != model.QuestionShortAnswer && q.Type != model.QuestionEssay {
			continue
		}
		answer := answers[q.ID.String()]
		if answer == "" {
			continue
		}

		feedback, err := s.feedbackForAnswer(q, answer)
		if err != nil {
			log.Error().Err(err).Str("question_id", q.ID.String()).Msg("Gemini feedback failed")
			feedback = "Feedback is temporarily unavailable for this answer."
		}
		out = append(out, dto.AnswerFeedbackDTO{QuestionID: q.ID, Feedback: feedback})
	}
	return out, nil
}

func (s *feedbackService) feedbackForAnswer(question *model.Question, userAnswer string) (string, error) {
	ctx := context.Background()

	var prompt strings.Builder
	prompt.WriteString("You are a helpful course instructor reviewing a student's answer to an assessment question.\n\n")
	prompt.WriteString("Question:\n---\n")
	prompt.WriteString(question.QuestionText)
	prompt.WriteString("\n---\n\n")
	if question.CorrectAnswer != "" {
		prompt.WriteString(fmt.Sprintf("Reference answer: %s\n\n", question.CorrectAnswer))
	}
	prompt.WriteString("Student's answer:\n---\n")
	prompt.WriteString(userAnswer)
	prompt.WriteString("\n---\n\n")
	prompt.WriteString("Give short, constructive feedback: what the student got right, what is missing or wrong, and one concrete suggestion. Do not assign a score or grade.")

	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt.String()))
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no content")
	}

	text := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text += string(txt)
		}
	}
	if text == "" {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return strings.TrimSpace(text), nil
}
