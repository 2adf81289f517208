package models

import "time"

// Screen identifies which step of the authentication flow is rendered.
type Screen string

const (
	ScreenSplash            Screen = "splash"
	ScreenLogin             Screen = "login"
	ScreenSignup            Screen = "signup"
	ScreenEmailVerification Screen = "emailVerification"
	ScreenForgotPassword    Screen = "forgotPassword"
	ScreenDashboard         Screen = "dashboard"
)

// Screens lists every known screen in flow order.
var Screens = []Screen{
	ScreenSplash,
	ScreenLogin,
	ScreenSignup,
	ScreenEmailVerification,
	ScreenForgotPassword,
	ScreenDashboard,
}

// Known reports whether s is one of the defined screens.
func (s Screen) Known() bool {
	for _, known := range Screens {
		if s == known {
			return true
		}
	}
	return false
}

func (s Screen) String() string {
	if s == "" {
		return "unknown"
	}
	return string(s)
}

// Form field keys. FieldTerms is not an input but carries the
// terms-acceptance error.
const (
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldFullName     = "fullName"
	FieldMobileNumber = "mobileNumber"
	FieldReferralCode = "referralCode"
	FieldTerms        = "terms"
)

// FormErrors maps a field key to the message shown next to it.
// An empty map means the form may be submitted.
type FormErrors map[string]string

// Valid reports whether no field carries an error.
func (e FormErrors) Valid() bool {
	return len(e) == 0
}

// Get returns the error for field, or "" when the field is valid.
func (e FormErrors) Get(field string) string {
	if e == nil {
		return ""
	}
	return e[field]
}

// Has reports whether field carries an error.
func (e FormErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Clear drops the error for field. Clearing a nil map is a no-op.
func (e FormErrors) Clear(field string) {
	if e == nil {
		return
	}
	delete(e, field)
}

// SignupData is the payload captured by the signup form.
type SignupData struct {
	FullName     string
	Email        string
	MobileNumber string
	Password     string
	ReferralCode string // optional
}

// AuthEvent is one journaled placeholder backend call.
type AuthEvent struct {
	ID          int64
	RequestID   string
	Op          string
	MaskedEmail string
	Outcome     string
	CreatedAt   time.Time
}

// Event outcomes.
const (
	OutcomeSuccess   = "success"
	OutcomeFailure   = "failure"
	OutcomeCancelled = "cancelled"
)
