package repository

import (
	"edu_feedback_backend/internal/model"
	"edu_feedback_backend/internal/store"
)

// SessionRepository persists the login context: the current user and
// the student's submitted-key set, each under its own slot. The
// Session value itself is handed to callers and passed explicitly
// into engine operations.
type SessionRepository struct {
	store *store.Store
}

func NewSessionRepository(st *store.Store) *SessionRepository {
	return &SessionRepository{store: st}
}

// Load restores the persisted session; a fresh deployment yields a
// logged-out session with an empty submitted set.
func (r *SessionRepository) Load() *model.Session {
	sess := &model.Session{}
	r.store.Load(store.SlotCurrentUser, &sess.User, func() { sess.User = nil })
	r.store.Load(store.SlotStudentSubmitted, &sess.Submitted, func() { sess.Submitted = nil })
	return sess
}

func (r *SessionRepository) Save(sess *model.Session) error {
	if err := r.store.Save(store.SlotCurrentUser, sess.User); err != nil {
		return err
	}
	return r.store.Save(store.SlotStudentSubmitted, sess.Submitted)
}
