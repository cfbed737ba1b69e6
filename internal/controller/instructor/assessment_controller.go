package instructor

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/EduSync/internal/controller"
	"github.com/lshigami/EduSync/internal/dto"
	"github.com/lshigami/EduSync/internal/middleware"
	"github.com/lshigami/EduSync/internal/service"
	"github.com/rs/zerolog/log"
)

type AssessmentController struct {
	sessionService    service.SessionService
	assessmentService service.AssessmentService
	submissionService service.SubmissionService
}

func NewAssessmentController(
	ss service.SessionService,
	as service.AssessmentService,
	sub service.SubmissionService,
) *AssessmentController {
	return &AssessmentController{
		sessionService:    ss,
		assessmentService: as,
		submissionService: sub,
	}
}

// CreateAssessment godoc
// @Summary (Instructor) Create an assessment and start its live session
// @Description Creates the assessment with its questions. The assessment goes live immediately and enrolled students are notified.
// @Tags Instructor - Assessments
// @Accept json
// @Produce json
// @Param assessment body dto.AssessmentCreateDTO true "Assessment with questions"
// @Success 201 {object} dto.AssessmentCreatedDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 403 {object} dto.ErrorResponse "Not the course instructor"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /assessments [post]
func (c *AssessmentController) CreateAssessment(ctx *gin.Context) {
	var req dto.AssessmentCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateAssessment: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	created, err := c.sessionService.CreateLive(middleware.UserID(ctx), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// GetAssessment godoc
// @Summary (Instructor) Get an assessment with its questions
// @Tags Instructor - Assessments
// @Produce json
// @Param id path string true "Assessment ID"
// @Success 200 {object} dto.AssessmentDetailDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /assessments/{id} [get]
func (c *AssessmentController) GetAssessment(ctx *gin.Context) {
	id, ok := controller.ParseUUIDParam(ctx, "id")
	if !ok {
		return
	}
	detail, err := c.assessmentService.GetByID(id, middleware.UserID(ctx))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// UpdateAssessment godoc
// @Summary (Instructor) Update assessment metadata and questions
// @Description Updates title, description, max score and time limit. Questions with an ID are updated, questions without one are appended.
// @Tags Instructor - Assessments
// @Accept json
// @Produce json
// @Param id path string true "Assessment ID"
// @Param assessment body dto.AssessmentUpdateDTO true "Fields to update"
// @Success 200 {object} dto.AssessmentDetailDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /assessments/{id} [put]
func (c *AssessmentController) UpdateAssessment(ctx *gin.Context) {
	id, ok := controller.ParseUUIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.AssessmentUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	detail, err := c.assessmentService.Update(id, middleware.UserID(ctx), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// DeleteAssessment godoc
// @Summary (Instructor) Delete an assessment
// @Description Deletes the assessment along with its questions and results.
// @Tags Instructor - Assessments
// @Produce json
// @Param id path string true "Assessment ID"
// @Success 204 "Deleted"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /assessments/{id} [delete]
func (c *AssessmentController) DeleteAssessment(ctx *gin.Context) {
	id, ok := controller.ParseUUIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.assessmentService.Delete(id, middleware.UserID(ctx)); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ListAssessments godoc
// @Summary (Instructor) List assessments across the instructor's courses
// @Tags Instructor - Assessments
// @Produce json
// @Success 200 {array} dto.AssessmentSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /assessments/instructor [get]
func (c *AssessmentController) ListAssessments(ctx *gin.Context) {
	summaries, err := c.assessmentService.ListByInstructor(middleware.UserID(ctx))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, summaries)
}

// EndAssessment godoc
// @Summary (Instructor) End a live session explicitly
// @Description Marks the assessment Completed without waiting for a submission. Idempotent.
// @Tags Instructor - Assessments
// @Produce json
// @Param id path string true "Assessment ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /assessments/{id}/end [post]
func (c *AssessmentController) EndAssessment(ctx *gin.Context) {
	id, ok := controller.ParseUUIDParam(ctx, "id")
	if !ok {
		return
	}
	if _, err := c.assessmentService.GetByID(id, middleware.UserID(ctx)); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	if err := c.sessionService.MarkCompleted(id); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Assessment completed"})
}

// AssessmentResults godoc
// @Summary (Instructor) List completed results for an assessment
// @Tags Instructor - Results
// @Produce json
// @Param id path string true "Assessment ID"
// @Success 200 {array} dto.StudentResultDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /results/assessment/{id} [get]
func (c *AssessmentController) AssessmentResults(ctx *gin.Context) {
	id, ok := controller.ParseUUIDParam(ctx, "id")
	if !ok {
		return
	}
	rows, err := c.submissionService.AssessmentResults(id, middleware.UserID(ctx))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, rows)
}
