package repository

import (
	"edu_feedback_backend/internal/model"
	"edu_feedback_backend/internal/store"
)

// UserRepository owns the registered-user collection. The in-memory
// slice is authoritative; every mutation writes the whole collection
// back to its slot.
type UserRepository struct {
	store *store.Store
	users []model.User
}

func NewUserRepository(st *store.Store) *UserRepository {
	r := &UserRepository{store: st}
	st.Load(store.SlotUsers, &r.users, func() { r.users = nil })
	if len(r.users) == 0 {
		r.users = seedUsers()
		r.persist()
	}
	return r
}

func seedUsers() []model.User {
	return []model.User{
		{ID: "2400030040", Name: "Aravind", Username: "aravind", Password: "student123", Role: model.Student, Dept: "Computer Science", Semester: "6th Semester", Email: "aravind@edu.com"},
		{ID: "2400030439", Name: "Jaswanth", Username: "jaswanth", Password: "student123", Role: model.Student, Dept: "Computer Science", Semester: "6th Semester", Email: "jaswanth@edu.com"},
		{ID: "2400032357", Name: "Anish", Username: "anish", Password: "student123", Role: model.Student, Dept: "Computer Science", Semester: "6th Semester", Email: "anish@edu.com"},
		{ID: "admin-ram", Name: "Ram", Username: "ram", Password: "admin123", Role: model.Admin, Email: "admin@edu.com"},
	}
}

func (r *UserRepository) All() []model.User {
	out := make([]model.User, len(r.users))
	copy(out, r.users)
	return out
}

func (r *UserRepository) Append(user model.User) error {
	r.users = append(r.users, user)
	return r.persist()
}

// Delete removes by id; absent ids are a no-op.
func (r *UserRepository) Delete(userID string) error {
	kept := r.users[:0]
	for _, u := range r.users {
		if u.ID != userID {
			kept = append(kept, u)
		}
	}
	r.users = kept
	return r.persist()
}

func (r *UserRepository) persist() error {
	return r.store.Save(store.SlotUsers, r.users)
}
