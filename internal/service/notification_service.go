package service

import (
	"time"

	"edu_feedback_backend/internal/model"
	"edu_feedback_backend/internal/repository"
	"edu_feedback_backend/pkg/logger"
	"edu_feedback_backend/pkg/monitoring"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type NotificationService struct {
	NotificationRepo *repository.NotificationRepository
}

func NewNotificationService(notificationRepo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{NotificationRepo: notificationRepo}
}

// Emit prepends a new unread notification and lets the repository
// enforce the feed bound.
func (s *NotificationService) Emit(typ model.NotificationType, message string, metadata map[string]string) model.Notification {
	notif := model.Notification{
		ID:        "notif-" + uuid.New().String(),
		Type:      typ,
		Message:   message,
		Metadata:  metadata,
		Timestamp: time.Now(),
		Read:      false,
	}
	if err := s.NotificationRepo.Prepend(notif); err != nil {
		logger.Log.Warn("notification persisted in memory only", zap.Error(err))
	}
	monitoring.NotificationsEmitted.WithLabelValues(string(typ)).Inc()
	return notif
}

func (s *NotificationService) All() []model.Notification {
	return s.NotificationRepo.All()
}

func (s *NotificationService) MarkAllRead() error {
	return s.NotificationRepo.MarkAllRead()
}

// Clear empties the feed; there is no undo.
func (s *NotificationService) Clear() error {
	return s.NotificationRepo.Clear()
}

func (s *NotificationService) UnreadCount() int {
	return s.NotificationRepo.UnreadCount()
}
