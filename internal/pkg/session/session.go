package session

import "time"

// FlashLoginSuccess marks a fresh login for one-time welcome messaging.
const FlashLoginSuccess = "login_success"

// PendingRegistration is the registration snapshot staged between the
// register step and OTP verification.
//
// The password is staged raw and hashed only when the user record is created;
// the whole value lives in session state and is never persisted elsewhere.
type PendingRegistration struct {
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	OTP       string    `json:"otp"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Session is the typed state bag scoped to one browser client.
type Session struct {
	// PendingRegistration holds at most one staged registration with its OTP.
	PendingRegistration *PendingRegistration `json:"pending_registration,omitempty"`
	// EmailForOTP remembers the address OTP resends go to.
	EmailForOTP string `json:"email_for_otp,omitempty"`
	// AuthUserID references the authenticated user, 0 when anonymous.
	AuthUserID int64 `json:"auth_user_id,omitempty"`
	// Flash holds one-time messages popped on first read.
	Flash map[string]string `json:"flash,omitempty"`
}

// Authenticated reports whether the session references a logged-in user.
func (s *Session) Authenticated() bool {
	return s != nil && s.AuthUserID != 0
}

// SetFlash stages a one-time message under key.
func (s *Session) SetFlash(key, value string) {
	if s.Flash == nil {
		s.Flash = make(map[string]string)
	}
	s.Flash[key] = value
}

// PopFlash removes and returns the one-time message under key, giving
// exactly-once display semantics when the session is saved afterwards.
func (s *Session) PopFlash(key string) (string, bool) {
	v, ok := s.Flash[key]
	if ok {
		delete(s.Flash, key)
	}
	return v, ok
}

// ClearPendingRegistration drops the staged registration and resend address.
func (s *Session) ClearPendingRegistration() {
	s.PendingRegistration = nil
	s.EmailForOTP = ""
}
