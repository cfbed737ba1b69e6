package instructor

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lshigami/EduSync/internal/controller"
	"github.com/lshigami/EduSync/internal/dto"
	"github.com/lshigami/EduSync/internal/middleware"
	"github.com/lshigami/EduSync/internal/service"
	"github.com/rs/zerolog/log"
)

type CourseController struct {
	courseService service.CourseService
}

func NewCourseController(cs service.CourseService) *CourseController {
	return &CourseController{courseService: cs}
}

// CreateCourse godoc
// @Summary (Instructor) Create a course
// @Tags Instructor - Courses
// @Accept json
// @Produce json
// @Param course body dto.CourseCreateDTO true "Course"
// @Success 201 {object} dto.CourseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CourseCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateCourse: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	course, err := c.courseService.Create(middleware.UserID(ctx), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, course)
}

// EnrollStudent godoc
// @Summary (Instructor) Enroll a student into a course
// @Tags Instructor - Courses
// @Produce json
// @Param id path string true "Course ID"
// @Param student_id query string true "Student ID"
// @Success 201 {object} dto.EnrolledDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Already enrolled"
// @Security BearerAuth
// @Router /courses/{id}/enroll [post]
func (c *CourseController) EnrollStudent(ctx *gin.Context) {
	courseID, ok := controller.ParseUUIDParam(ctx, "id")
	if !ok {
		return
	}
	studentID, err := uuid.Parse(ctx.Query("student_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid student_id format"})
		return
	}
	enrolled, err := c.courseService.Enroll(courseID, middleware.UserID(ctx), studentID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, enrolled)
}

// ListCourses godoc
// @Summary (Instructor) List own courses
// @Tags Instructor - Courses
// @Produce json
// @Success 200 {array} dto.CourseDTO
// @Security BearerAuth
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.courseService.ListByInstructor(middleware.UserID(ctx))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, courses)
}
