// Package app wires the engine: configuration, logging, the slot
// store and its backend, the repositories (each loading and seeding
// its collection) and the operation services the presentation layer
// calls into. There is no network surface; App is the library
// boundary.
package app

import (
	"context"

	"edu_feedback_backend/internal/config"
	"edu_feedback_backend/internal/model"
	"edu_feedback_backend/internal/repository"
	"edu_feedback_backend/internal/service"
	"edu_feedback_backend/internal/store"
	"edu_feedback_backend/pkg/database"
	"edu_feedback_backend/pkg/logger"
	"edu_feedback_backend/pkg/monitoring"
	"edu_feedback_backend/pkg/tracing"

	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Store  *store.Store

	// Session is the persisted login context; tests and multi-user
	// hosts construct further model.Session values as needed.
	Session *model.Session

	Auth          *service.AuthService
	Campaigns     *service.CampaignService
	Submissions   *service.SubmissionService
	Notifications *service.NotificationService
	Analytics     *service.AnalyticsService

	sessionRepo *repository.SessionRepository
	tracer      *sdktrace.TracerProvider
}

func New(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg.Server.Mode)
	logger.Log.Info("Logger initialized successfully")

	a := &App{Config: cfg}

	var backend store.Backend
	switch cfg.Store.Backend {
	case "database":
		db, err := database.InitDB(&cfg.Database)
		if err != nil {
			return nil, err
		}
		a.DB = db
		backend = store.NewGormBackend(db)
	case "redis":
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		a.Redis = rdb
		backend = store.NewRedisBackend(rdb)
	default:
		backend = store.NewMemoryBackend()
	}
	a.Store = store.New(backend)

	userRepo := repository.NewUserRepository(a.Store)
	campaignRepo := repository.NewCampaignRepository(a.Store)
	feedbackRepo := repository.NewFeedbackRepository(a.Store)
	notificationRepo := repository.NewNotificationRepository(a.Store)
	a.sessionRepo = repository.NewSessionRepository(a.Store)
	a.Session = a.sessionRepo.Load()

	reports, err := service.NewReportStorage(&cfg.Storage)
	if err != nil {
		return nil, err
	}

	a.Notifications = service.NewNotificationService(notificationRepo)
	a.Auth = service.NewAuthService(userRepo, a.sessionRepo)
	a.Campaigns = service.NewCampaignService(campaignRepo, feedbackRepo, a.Notifications)
	a.Submissions = service.NewSubmissionService(feedbackRepo, a.sessionRepo)
	a.Analytics = service.NewAnalyticsService(feedbackRepo, campaignRepo, reports)

	monitoring.Init()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("feedback-engine", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			return nil, err
		}
		a.tracer = tp
	}

	logger.Log.Info("Engine ready",
		zap.String("store", cfg.Store.Backend),
		zap.Int("campaigns", a.Analytics.TotalCampaigns()))

	return a, nil
}

func (a *App) Close() error {
	if a.tracer != nil {
		if err := a.tracer.Shutdown(context.Background()); err != nil {
			return err
		}
	}
	return nil
}
