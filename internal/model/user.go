package model

type UserRole string

const (
	Student UserRole = "student"
	Admin   UserRole = "admin"
)

// User is a registered account. Username and email are unique by
// caller contract; the engine itself does not enforce uniqueness.
type User struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Username string   `json:"username"`
	Password string   `json:"password"`
	Role     UserRole `json:"role"`
	Email    string   `json:"email"`
	Dept     string   `json:"dept,omitempty"`
	Semester string   `json:"semester,omitempty"`
}
