// Package store is the engine's durable-state accessor: named slots
// holding JSON-encoded collections behind a pluggable backend.
// In-memory state stays authoritative for the life of the process;
// writes are best-effort and a failed write never escalates past the
// caller that chose to inspect it. There is no cross-slot atomicity:
// a crash between two Save calls can leave related slots inconsistent.
package store

import (
	"encoding/json"

	"edu_feedback_backend/pkg/logger"
	"edu_feedback_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// Slot names shared with the original deployment's persisted state.
const (
	SlotCampaigns        = "edu_forms"
	SlotFeedbacks        = "edu_feedbacks"
	SlotSubmissionCounts = "edu_submission_counts"
	SlotStudentSubmitted = "edu_student_submitted"
	SlotCurrentUser      = "edu_current_user"
	SlotUsers            = "edu_users"
	SlotNotifications    = "edu_notifications"
)

// Backend reads and writes raw slot bytes.
type Backend interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
}

type Store struct {
	backend Backend
}

func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// Load decodes the named slot into out. On a missing slot, a backend
// failure, or a decode failure it invokes fallback (which should
// restore out to its default) and reports loaded=false; it never
// returns an error.
func (s *Store) Load(key string, out any, fallback func()) (loaded bool) {
	raw, ok, err := s.backend.Get(key)
	if err != nil {
		logger.Log.Warn("slot read failed, using fallback",
			zap.String("slot", key), zap.Error(err))
		fallback()
		return false
	}
	if !ok {
		fallback()
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		logger.Log.Warn("slot decode failed, using fallback",
			zap.String("slot", key), zap.Error(err))
		fallback()
		return false
	}
	return true
}

// Save encodes value and writes it to the named slot. The error is
// returned so tests can observe the write path, but production
// callers log and continue: durability is best-effort and the
// in-memory collection remains the source of truth.
func (s *Store) Save(key string, value any) error {
	raw, err := json.Marshal(value)
	if err == nil {
		err = s.backend.Put(key, raw)
	}
	if err != nil {
		monitoring.StoreWriteFailures.Inc()
		logger.Log.Warn("slot write failed",
			zap.String("slot", key), zap.Error(err))
	}
	return err
}
