package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/smart-timetable-api/api/swagger"
	"github.com/noah-isme/smart-timetable-api/internal/handler"
	"github.com/noah-isme/smart-timetable-api/internal/middleware"
	"github.com/noah-isme/smart-timetable-api/internal/models"
	"github.com/noah-isme/smart-timetable-api/internal/repository"
	"github.com/noah-isme/smart-timetable-api/internal/service"
	"github.com/noah-isme/smart-timetable-api/pkg/cache"
	"github.com/noah-isme/smart-timetable-api/pkg/config"
	"github.com/noah-isme/smart-timetable-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/smart-timetable-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/smart-timetable-api/pkg/middleware/requestid"
	"github.com/noah-isme/smart-timetable-api/pkg/storage"
)

// @title Smart Timetable API
// @version 1.0.0
// @description Personal timetable and study planner
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := service.NewMetricsService()

	store, err := repository.NewStore(cfg.Data.File, models.SemesterSettings{
		StartDate: cfg.Semester.StartDate,
		StartWeek: cfg.Semester.StartWeek,
	}, logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to open data file", "error", err)
	}
	store.SetWriteObserver(metrics.ObserveDataWrite)

	exportStorage, err := storage.NewLocalStorage(cfg.Exports.Dir)
	if err != nil {
		logr.Sugar().Fatalw("failed to prepare exports directory", "error", err)
	}

	var cacheRepo service.CacheRepository
	if cfg.Dashboard.CacheEnabled {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, dashboard cache disabled", "error", err)
		} else {
			cacheRepo = repository.NewCacheRepository(client, logr)
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Dashboard.CacheTTL, logr, cfg.Dashboard.CacheEnabled)

	validate := validator.New()

	courseRepo := repository.NewCourseRepository(store)
	holidayRepo := repository.NewHolidayRepository(store)
	attendanceRepo := repository.NewAttendanceRepository(store)
	assignmentRepo := repository.NewAssignmentRepository(store)
	examRepo := repository.NewExamRepository(store)
	noteRepo := repository.NewNoteRepository(store)
	settingsRepo := repository.NewSettingsRepository(store)

	statsSvc := service.NewStatsService(store, logr)
	courseSvc := service.NewCourseService(courseRepo, validate, logr)
	holidaySvc := service.NewHolidayService(holidayRepo, settingsRepo, validate, logr)
	attendanceSvc := service.NewAttendanceService(attendanceRepo, courseRepo, validate, logr)
	assignmentSvc := service.NewAssignmentService(assignmentRepo, courseRepo, validate, logr)
	examSvc := service.NewExamService(examRepo, courseRepo, validate, logr)
	noteSvc := service.NewNoteService(noteRepo, validate, logr)
	settingsSvc := service.NewSettingsService(settingsRepo, logr)
	calendarSvc := service.NewCalendarService(settingsRepo, logr)
	transferSvc := service.NewTransferService(store, logr)
	exportSvc := service.NewExportService(courseRepo, settingsRepo, statsSvc, exportStorage, logr)
	dashboardSvc := service.NewDashboardService(statsSvc, store, cacheSvc, logr)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.RegisterRoutes(r, cfg.APIPrefix, handler.Handlers{
		Courses:    handler.NewCourseHandler(courseSvc),
		Holidays:   handler.NewHolidayHandler(holidaySvc),
		Attendance: handler.NewAttendanceHandler(attendanceSvc, statsSvc),
		Dashboard:  handler.NewDashboardHandler(dashboardSvc, calendarSvc),
		Calendar:   handler.NewCalendarHandler(calendarSvc),
		Planner:    handler.NewPlannerHandler(assignmentSvc, examSvc, noteSvc),
		Settings:   handler.NewSettingsHandler(settingsSvc),
		Transfer:   handler.NewTransferHandler(transferSvc),
		Exports:    handler.NewExportHandler(exportSvc),
		Metrics:    handler.NewMetricsHandler(metrics),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "data", cfg.Data.File)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
