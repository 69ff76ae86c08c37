package views

// ProfileSession carries the transient, profile-local view state the
// rendering layer owns: which user is selected and whether the anomaly
// detail list is expanded. Selecting a user always collapses the detail
// list so preferences never leak between users.
type ProfileSession struct {
	user     string
	expanded bool
}

// NewProfileSession starts a session on the given user.
func NewProfileSession(user string) *ProfileSession {
	return &ProfileSession{user: user}
}

// Select switches the session to a user and resets transient state.
func (s *ProfileSession) Select(user string) {
	s.user = user
	s.expanded = false
}

// User returns the currently selected user.
func (s *ProfileSession) User() string {
	return s.user
}

// ToggleDetails flips the anomaly detail flag and reports the new state.
func (s *ProfileSession) ToggleDetails() bool {
	s.expanded = !s.expanded
	return s.expanded
}

// DetailsExpanded reports whether the anomaly detail list is open.
func (s *ProfileSession) DetailsExpanded() bool {
	return s.expanded
}
