package util

// NotificationLimit bounds the notification feed; the oldest entry is
// evicted when a new one would exceed it.
const NotificationLimit = 20

// MinPasswordLength applies at registration only; existing seed
// accounts are never re-validated.
const MinPasswordLength = 6

// CourseInstructors is the static teaching catalog the analytics view
// fans out over.
var CourseInstructors = map[string][]string{
	"FSAD": {"Ramu"},
	"CIS":  {"Ganesh"},
	"DBMS": {"Abhinav"},
	"OS":   {"Raghavendra"},
	"AIML": {"Sai"},
}

// Courses returns the catalog course codes in a stable order.
func Courses() []string {
	return []string{"FSAD", "CIS", "DBMS", "OS", "AIML"}
}

// Instructors returns the catalog instructors in a stable order.
func Instructors() []string {
	return []string{"Ramu", "Ganesh", "Abhinav", "Raghavendra", "Sai"}
}
