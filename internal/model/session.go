package model

// Session is the explicit login context passed to engine operations.
// One Session models one logged-in identity; constructing several
// sessions side by side is how multi-student scenarios are tested.
// Submitted holds the submission keys this session's student has
// already used, in first-use order.
type Session struct {
	User      *User    `json:"user"`
	Submitted []string `json:"submitted"`
}

// HasSubmitted is a membership test against the session's
// submitted-key set.
func (s *Session) HasSubmitted(key string) bool {
	for _, k := range s.Submitted {
		if k == key {
			return true
		}
	}
	return false
}

// MarkSubmitted records a key; adding a present key is a no-op.
func (s *Session) MarkSubmitted(key string) {
	if !s.HasSubmitted(key) {
		s.Submitted = append(s.Submitted, key)
	}
}
