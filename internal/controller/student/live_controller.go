package student

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/EduSync/internal/controller"
	"github.com/lshigami/EduSync/internal/dto"
	"github.com/lshigami/EduSync/internal/event"
	"github.com/lshigami/EduSync/internal/middleware"
	"github.com/lshigami/EduSync/internal/service"
	"github.com/rs/zerolog/log"
)

// LiveController is the student's surface for a running session: joining,
// leaving, submitting and the event streams.
type LiveController struct {
	participationService service.ParticipationService
	submissionService    service.SubmissionService
	notifier             *event.Notifier
	hub                  *event.Hub
}

func NewLiveController(
	ps service.ParticipationService,
	sub service.SubmissionService,
	notifier *event.Notifier,
	hub *event.Hub,
) *LiveController {
	return &LiveController{
		participationService: ps,
		submissionService:    sub,
		notifier:             notifier,
		hub:                  hub,
	}
}

// JoinAssessment godoc
// @Summary (Student) Join a live assessment
// @Description Creates the student's attempt on first join; later joins resume it. Returns the questions without correct answers.
// @Tags Student - Live
// @Produce json
// @Param id path string true "Assessment ID"
// @Success 200 {object} dto.JoinedAssessmentDTO
// @Failure 400 {object} dto.ErrorResponse "Assessment is not live"
// @Failure 403 {object} dto.ErrorResponse "Not enrolled"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Failure 409 {object} dto.ErrorResponse "Already completed"
// @Security BearerAuth
// @Router /assessments/live/join/{id} [post]
func (c *LiveController) JoinAssessment(ctx *gin.Context) {
	id, ok := controller.ParseUUIDParam(ctx, "id")
	if !ok {
		return
	}
	joined, err := c.participationService.Join(id, middleware.UserID(ctx))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, joined)
}

// LeaveAssessment godoc
// @Summary (Student) Leave a live assessment
// @Description Announces the departure. The attempt is kept, so the student can rejoin while the session is live.
// @Tags Student - Live
// @Produce json
// @Param id path string true "Assessment ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /assessments/live/leave/{id} [post]
func (c *LiveController) LeaveAssessment(ctx *gin.Context) {
	id, ok := controller.ParseUUIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.participationService.Leave(id, middleware.UserID(ctx)); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Left assessment"})
}

// LiveStatus godoc
// @Summary Get the live status of an assessment
// @Description Reports whether the session is live, its session token and how many students have joined.
// @Tags Student - Live
// @Produce json
// @Param id path string true "Assessment ID"
// @Success 200 {object} dto.LiveStatusDTO
// @Failure 400 {object} dto.ErrorResponse "Assessment is not live"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /assessments/live/status/{id} [get]
func (c *LiveController) LiveStatus(ctx *gin.Context) {
	id, ok := controller.ParseUUIDParam(ctx, "id")
	if !ok {
		return
	}
	status, err := c.participationService.LiveStatus(id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, status)
}

// SubmitAssessment godoc
// @Summary (Student) Submit answers for a joined assessment
// @Description Scores the submission, completes the attempt and marks the assessment Completed.
// @Tags Student - Live
// @Accept json
// @Produce json
// @Param submission body dto.ResultSubmitDTO true "Answers keyed by question id"
// @Success 200 {object} dto.ResultSubmittedDTO
// @Failure 400 {object} dto.ErrorResponse "No active attempt"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Security BearerAuth
// @Router /results [post]
func (c *LiveController) SubmitAssessment(ctx *gin.Context) {
	var req dto.ResultSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitAssessment: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	submitted, err := c.submissionService.Submit(middleware.UserID(ctx), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, submitted)
}

// ForwardEvent godoc
// @Summary Forward a client activity event to both sinks
// @Description Relays a client-side event (answer typed, question viewed) to the durable log and the broadcast hub verbatim.
// @Tags Events
// @Accept json
// @Produce json
// @Param event body dto.ClientEventDTO true "Client event"
// @Success 202 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /events [post]
func (c *LiveController) ForwardEvent(ctx *gin.Context) {
	var req dto.ClientEventDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	group := req.AssessmentID
	if group == "" {
		group = event.GroupAll
	}
	payload := req.EventPayload(time.Now().UTC().Format(time.RFC3339))
	payload["userId"] = middleware.UserID(ctx).String()

	c.notifier.Emit(group, req.EventType, req.EventType, payload)
	ctx.JSON(http.StatusAccepted, gin.H{"message": "Event accepted"})
}

// StreamAssessment godoc
// @Summary Subscribe to an assessment's event stream
// @Description Server-sent events for one assessment's group. Delivery is at-most-once; slow consumers lose events.
// @Tags Events
// @Produce text/event-stream
// @Param id path string true "Assessment ID"
// @Success 200 {string} string "SSE stream"
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /events/stream/{id} [get]
func (c *LiveController) StreamAssessment(ctx *gin.Context) {
	id, ok := controller.ParseUUIDParam(ctx, "id")
	if !ok {
		return
	}
	c.stream(ctx, id.String())
}

// StreamAll godoc
// @Summary Subscribe to the platform-wide event stream
// @Description Server-sent events for every broadcast, regardless of assessment.
// @Tags Events
// @Produce text/event-stream
// @Success 200 {string} string "SSE stream"
// @Security BearerAuth
// @Router /events/stream [get]
func (c *LiveController) StreamAll(ctx *gin.Context) {
	c.stream(ctx, event.GroupAll)
}

func (c *LiveController) stream(ctx *gin.Context, group string) {
	sub := c.hub.Subscribe(group)
	defer c.hub.Unsubscribe(sub)

	ctx.Writer.Header().Set("Content-Type", "text/event-stream")
	ctx.Writer.Header().Set("Cache-Control", "no-cache")
	ctx.Writer.Header().Set("Connection", "keep-alive")

	log.Info().Str("group", group).Msg("SSE subscriber connected")
	ctx.Stream(func(w io.Writer) bool {
		select {
		case msg, open := <-sub.C():
			if !open {
				return false
			}
			sse.Encode(w, sse.Event{Event: msg.EventType, Data: msg})
			return true
		case <-ctx.Request.Context().Done():
			log.Info().Str("group", group).Msg("SSE subscriber disconnected")
			return false
		}
	})
}
