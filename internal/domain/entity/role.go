// Package entity contains the core business objects of the project.
package entity

// SessionKind represents who, if anyone, holds the single active session.
type SessionKind string

const (
	// SessionAnonymous means nobody is logged in.
	SessionAnonymous SessionKind = "anonymous"
	// SessionUser means a customer is logged in.
	SessionUser SessionKind = "user"
	// SessionAdmin means an administrator is logged in.
	SessionAdmin SessionKind = "admin"
)

// String returns the string representation of the SessionKind.
func (k SessionKind) String() string {
	return string(k)
}

// IsValid checks if the SessionKind is a valid value.
func (k SessionKind) IsValid() bool {
	switch k {
	case SessionAnonymous, SessionUser, SessionAdmin:
		return true
	default:
		return false
	}
}

// Session is a snapshot of the active session. User is set only for SessionUser.
type Session struct {
	Kind SessionKind
	User *User
}

// IsUser reports whether a customer session is active.
func (s Session) IsUser() bool {
	return s.Kind == SessionUser && s.User != nil
}

// IsAdmin reports whether the admin session is active.
func (s Session) IsAdmin() bool {
	return s.Kind == SessionAdmin
}
