package repository

import (
	"strings"

	"edu_feedback_backend/internal/model"
	"edu_feedback_backend/internal/store"
)

// FeedbackRepository owns the append-only feedback ledger and the
// aggregate per-key submission counts. The two live in separate slots
// and are written independently; a crash between the two writes can
// leave them out of step (accepted, see store package doc).
type FeedbackRepository struct {
	store     *store.Store
	feedbacks []model.Feedback
	counts    map[string]int
}

func NewFeedbackRepository(st *store.Store) *FeedbackRepository {
	r := &FeedbackRepository{store: st}
	st.Load(store.SlotFeedbacks, &r.feedbacks, func() { r.feedbacks = nil })
	st.Load(store.SlotSubmissionCounts, &r.counts, func() {
		r.counts = map[string]int{"fb-fsad-ramu": 12, "fb-cis-ganesh": 8}
		r.persistCounts()
	})
	if r.counts == nil {
		r.counts = make(map[string]int)
	}
	return r
}

func (r *FeedbackRepository) All() []model.Feedback {
	out := make([]model.Feedback, len(r.feedbacks))
	copy(out, r.feedbacks)
	return out
}

// Prepend appends a record to the front of the ledger (newest first).
func (r *FeedbackRepository) Prepend(fb model.Feedback) error {
	r.feedbacks = append([]model.Feedback{fb}, r.feedbacks...)
	return r.store.Save(store.SlotFeedbacks, r.feedbacks)
}

// IncrementCount bumps the aggregate counter for key, starting from
// zero on first use.
func (r *FeedbackRepository) IncrementCount(key string) error {
	r.counts[key]++
	return r.persistCounts()
}

func (r *FeedbackRepository) Count(key string) int {
	return r.counts[key]
}

// TotalSubmissions sums the aggregate counts across all keys.
func (r *FeedbackRepository) TotalSubmissions() int {
	total := 0
	for _, n := range r.counts {
		total += n
	}
	return total
}

// DeleteCountsByPrefix drops every counter whose key starts with
// prefix; the campaign-delete cascade.
func (r *FeedbackRepository) DeleteCountsByPrefix(prefix string) error {
	for key := range r.counts {
		if strings.HasPrefix(key, prefix) {
			delete(r.counts, key)
		}
	}
	return r.persistCounts()
}

func (r *FeedbackRepository) persistCounts() error {
	return r.store.Save(store.SlotSubmissionCounts, r.counts)
}
