package service

import (
	"testing"

	"edu_feedback_backend/internal/config"
	"edu_feedback_backend/internal/model"
	"edu_feedback_backend/internal/repository"
	"edu_feedback_backend/internal/store"
)

// engine bundles the full service surface over a fresh in-memory
// store, seeded the same way a first boot is.
type engine struct {
	store         *store.Store
	users         *repository.UserRepository
	campaigns     *repository.CampaignRepository
	feedbacks     *repository.FeedbackRepository
	notifications *repository.NotificationRepository
	sessions      *repository.SessionRepository

	auth        *AuthService
	campaign    *CampaignService
	submission  *SubmissionService
	notifier    *NotificationService
	analytics   *AnalyticsService
	sess        *model.Session
	reportsPath string
}

func newEngine(t *testing.T) *engine {
	t.Helper()

	st := store.New(store.NewMemoryBackend())
	e := &engine{
		store:         st,
		users:         repository.NewUserRepository(st),
		campaigns:     repository.NewCampaignRepository(st),
		feedbacks:     repository.NewFeedbackRepository(st),
		notifications: repository.NewNotificationRepository(st),
		sessions:      repository.NewSessionRepository(st),
	}
	e.notifier = NewNotificationService(e.notifications)
	e.auth = NewAuthService(e.users, e.sessions)
	e.campaign = NewCampaignService(e.campaigns, e.feedbacks, e.notifier)
	e.submission = NewSubmissionService(e.feedbacks, e.sessions)

	e.reportsPath = t.TempDir()
	e.analytics = NewAnalyticsService(e.feedbacks, e.campaigns, &LocalReportStorage{
		Config: &config.StorageConfig{LocalPath: e.reportsPath},
	})

	e.sess = e.sessions.Load()
	return e
}

// ratingCampaign is a minimal single-rating-field schema used across
// submission tests.
func ratingCampaign(id string) *model.Campaign {
	return &model.Campaign{
		ID:        id,
		Title:     "Course Quality Check",
		Published: true,
		Fields: []model.Field{
			{ID: "q1", Label: "Overall quality?", Type: model.FieldRating, Required: true},
		},
	}
}
