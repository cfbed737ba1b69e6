package student

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/EduSync/internal/controller"
	"github.com/lshigami/EduSync/internal/middleware"
	"github.com/lshigami/EduSync/internal/service"
)

// AssessmentController serves the student's listings and result views.
type AssessmentController struct {
	assessmentService service.AssessmentService
	submissionService service.SubmissionService
	feedbackService   service.FeedbackService
}

func NewAssessmentController(
	as service.AssessmentService,
	sub service.SubmissionService,
	fs service.FeedbackService,
) *AssessmentController {
	return &AssessmentController{
		assessmentService: as,
		submissionService: sub,
		feedbackService:   fs,
	}
}

// ListAssessments godoc
// @Summary (Student) List assessments in enrolled courses
// @Tags Student - Assessments
// @Produce json
// @Success 200 {array} dto.AssessmentSummaryDTO
// @Security BearerAuth
// @Router /assessments/student [get]
func (c *AssessmentController) ListAssessments(ctx *gin.Context) {
	summaries, err := c.assessmentService.ListForStudent(middleware.UserID(ctx))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, summaries)
}

// ListLiveAssessments godoc
// @Summary (Student) List joinable live assessments
// @Description Live assessments in enrolled courses the student has not completed yet.
// @Tags Student - Assessments
// @Produce json
// @Success 200 {array} dto.AssessmentSummaryDTO
// @Security BearerAuth
// @Router /assessments/student/live [get]
func (c *AssessmentController) ListLiveAssessments(ctx *gin.Context) {
	summaries, err := c.assessmentService.ListLiveForStudent(middleware.UserID(ctx))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, summaries)
}

// ListCompletedAssessments godoc
// @Summary (Student) List completed assessments
// @Tags Student - Assessments
// @Produce json
// @Success 200 {array} dto.AssessmentSummaryDTO
// @Security BearerAuth
// @Router /assessments/student/completed [get]
func (c *AssessmentController) ListCompletedAssessments(ctx *gin.Context) {
	summaries, err := c.assessmentService.ListCompletedForStudent(middleware.UserID(ctx))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, summaries)
}

// ListCourseAssessments godoc
// @Summary (Student) List assessments of one enrolled course
// @Tags Student - Assessments
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {array} dto.AssessmentSummaryDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Not enrolled"
// @Security BearerAuth
// @Router /assessments/course/{id} [get]
func (c *AssessmentController) ListCourseAssessments(ctx *gin.Context) {
	courseID, ok := controller.ParseUUIDParam(ctx, "id")
	if !ok {
		return
	}
	summaries, err := c.assessmentService.ListByCourseForStudent(courseID, middleware.UserID(ctx))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, summaries)
}

// ListResults godoc
// @Summary (Student) List own results
// @Tags Student - Results
// @Produce json
// @Success 200 {array} dto.ResultSummaryDTO
// @Security BearerAuth
// @Router /results [get]
func (c *AssessmentController) ListResults(ctx *gin.Context) {
	results, err := c.submissionService.UserResults(middleware.UserID(ctx))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}

// GetResult godoc
// @Summary Get a result with the per-question breakdown
// @Description Students see their own results, instructors the results of their courses. Correctness is recomputed here for display.
// @Tags Student - Results
// @Produce json
// @Param id path string true "Result ID"
// @Success 200 {object} dto.ResultDetailDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /results/{id} [get]
func (c *AssessmentController) GetResult(ctx *gin.Context) {
	id, ok := controller.ParseUUIDParam(ctx, "id")
	if !ok {
		return
	}
	detail, err := c.submissionService.ResultDetail(id, middleware.UserID(ctx), middleware.Role(ctx))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// GetResultFeedback godoc
// @Summary (Student) Get AI feedback on free-text answers of a completed result
// @Description Asks the language model to comment on short answer and essay responses. Never affects the stored score.
// @Tags Student - Results
// @Produce json
// @Param id path string true "Result ID"
// @Success 200 {array} dto.AnswerFeedbackDTO
// @Failure 400 {object} dto.ErrorResponse "Result not completed or feedback unconfigured"
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /results/{id}/feedback [get]
func (c *AssessmentController) GetResultFeedback(ctx *gin.Context) {
	id, ok := controller.ParseUUIDParam(ctx, "id")
	if !ok {
		return
	}
	feedback, err := c.feedbackService.AttemptFeedback(id, middleware.UserID(ctx))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, feedback)
}
