package repository

import (
	"time"

	"edu_feedback_backend/internal/model"
	"edu_feedback_backend/internal/store"
	"edu_feedback_backend/internal/util"
)

// NotificationRepository owns the bounded notification feed, newest
// first. The ring invariant lives here: Prepend evicts past
// util.NotificationLimit entries.
type NotificationRepository struct {
	store *store.Store
	feed  []model.Notification
}

func NewNotificationRepository(st *store.Store) *NotificationRepository {
	r := &NotificationRepository{store: st}
	st.Load(store.SlotNotifications, &r.feed, func() { r.feed = nil })
	if len(r.feed) == 0 {
		r.feed = seedNotifications(time.Now())
		r.persist()
	}
	return r
}

func seedNotifications(now time.Time) []model.Notification {
	return []model.Notification{
		{
			ID:        "notif-seed-1",
			Type:      model.NotifNewCampaign,
			Message:   `New feedback form published: "Mid-Semester Course Feedback"`,
			Metadata:  map[string]string{"campaignId": "campaign-seed-1"},
			Timestamp: now.Add(-1 * time.Hour),
			Read:      false,
		},
		{
			ID:        "notif-seed-2",
			Type:      model.NotifAlert,
			Message:   `Reminder: The "End-Semester Evaluation" deadline is approaching!`,
			Metadata:  map[string]string{"campaignId": "campaign-seed-2"},
			Timestamp: now.Add(-2 * time.Hour),
			Read:      true,
		},
	}
}

func (r *NotificationRepository) All() []model.Notification {
	out := make([]model.Notification, len(r.feed))
	copy(out, r.feed)
	return out
}

func (r *NotificationRepository) Prepend(n model.Notification) error {
	r.feed = append([]model.Notification{n}, r.feed...)
	if len(r.feed) > util.NotificationLimit {
		r.feed = r.feed[:util.NotificationLimit]
	}
	return r.persist()
}

func (r *NotificationRepository) MarkAllRead() error {
	for i := range r.feed {
		r.feed[i].Read = true
	}
	return r.persist()
}

func (r *NotificationRepository) Clear() error {
	r.feed = nil
	return r.persist()
}

// UnreadCount is derived, never stored.
func (r *NotificationRepository) UnreadCount() int {
	n := 0
	for _, notif := range r.feed {
		if !notif.Read {
			n++
		}
	}
	return n
}

func (r *NotificationRepository) persist() error {
	return r.store.Save(store.SlotNotifications, r.feed)
}
