package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/EduSync/config"
	"github.com/lshigami/EduSync/database"
	_ "github.com/lshigami/EduSync/docs" // Swagger docs - auto-generated
	instructorctrl "github.com/lshigami/EduSync/internal/controller/instructor"
	studentctrl "github.com/lshigami/EduSync/internal/controller/student"
	"github.com/lshigami/EduSync/internal/event"
	"github.com/lshigami/EduSync/internal/logger"
	"github.com/lshigami/EduSync/internal/middleware"
	"github.com/lshigami/EduSync/internal/model"
	"github.com/lshigami/EduSync/internal/repository"
	"github.com/lshigami/EduSync/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title EduSync Live Assessment API
// @version 1.0
// @description Backend for live classroom assessments: instructors start a session, enrolled students join, submit and receive results in real time.
// @contact.name API Support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// Event Fan-out
		fx.Provide(
			event.NewPublisher,
			event.NewHub,
			event.NewNotifier,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewCourseRepository,
			repository.NewEnrollmentRepository,
			repository.NewAssessmentRepository,
			repository.NewResultRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewSessionService,
			service.NewParticipationService,
			service.NewSubmissionService,
			service.NewAssessmentService,
			service.NewCourseService,
			service.NewFeedbackService,
		),

		// API Controllers Layer
		fx.Provide(
			instructorctrl.NewAssessmentController,
			instructorctrl.NewCourseController,
			studentctrl.NewLiveController,
			studentctrl.NewAssessmentController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.DebugMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	notifier *event.Notifier,
	instructorAssessmentCtrl *instructorctrl.AssessmentController,
	instructorCourseCtrl *instructorctrl.CourseController,
	liveCtrl *studentctrl.LiveController,
	studentAssessmentCtrl *studentctrl.AssessmentController,
) {
	api := router.Group("/api/v1")
	api.Use(middleware.RequireAuth(cfg))

	// Instructor routes
	instructorGroup := api.Group("")
	instructorGroup.Use(middleware.RequireRole(model.RoleInstructor))
	{
		instructorGroup.POST("/assessments", instructorAssessmentCtrl.CreateAssessment)
		instructorGroup.GET("/assessments/instructor", instructorAssessmentCtrl.ListAssessments)
		instructorGroup.GET("/assessments/:id", instructorAssessmentCtrl.GetAssessment)
		instructorGroup.PUT("/assessments/:id", instructorAssessmentCtrl.UpdateAssessment)
		instructorGroup.DELETE("/assessments/:id", instructorAssessmentCtrl.DeleteAssessment)
		instructorGroup.POST("/assessments/:id/end", instructorAssessmentCtrl.EndAssessment)
		instructorGroup.GET("/results/assessment/:id", instructorAssessmentCtrl.AssessmentResults)

		instructorGroup.POST("/courses", instructorCourseCtrl.CreateCourse)
		instructorGroup.GET("/courses", instructorCourseCtrl.ListCourses)
		instructorGroup.POST("/courses/:id/enroll", instructorCourseCtrl.EnrollStudent)
	}

	// Student routes
	studentGroup := api.Group("")
	studentGroup.Use(middleware.RequireRole(model.RoleStudent))
	{
		studentGroup.POST("/assessments/live/join/:id", liveCtrl.JoinAssessment)
		studentGroup.POST("/assessments/live/leave/:id", liveCtrl.LeaveAssessment)
		studentGroup.POST("/results", liveCtrl.SubmitAssessment)

		studentGroup.GET("/assessments/student", studentAssessmentCtrl.ListAssessments)
		studentGroup.GET("/assessments/student/live", studentAssessmentCtrl.ListLiveAssessments)
		studentGroup.GET("/assessments/student/completed", studentAssessmentCtrl.ListCompletedAssessments)
		studentGroup.GET("/assessments/course/:id", studentAssessmentCtrl.ListCourseAssessments)
		studentGroup.GET("/results", studentAssessmentCtrl.ListResults)
		studentGroup.GET("/results/:id/feedback", studentAssessmentCtrl.GetResultFeedback)
	}

	// Shared routes, any authenticated role
	api.GET("/assessments/live/status/:id", liveCtrl.LiveStatus)
	api.GET("/results/:id", studentAssessmentCtrl.GetResult)
	api.POST("/events", liveCtrl.ForwardEvent)
	api.GET("/events/stream", liveCtrl.StreamAll)
	api.GET("/events/stream/:id", liveCtrl.StreamAssessment)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("EduSync API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			err := server.Shutdown(shutdownCtx)
			notifier.Close()
			return err
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Enrollment{},
		&model.Assessment{},
		&model.Question{},
		&model.Result{},
		&model.EventRecord{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
