package flow

import "github.com/akyairhashvil/rtauth/internal/models"

// Event is a user action reported by a screen. Screens never change the
// current screen themselves; they emit events and the Controller reacts.
type Event interface {
	event()
}

type (
	// SplashCompleted fires when the splash animation ends.
	SplashCompleted struct{}
	// LoginSubmitted fires once the login form was validated and the
	// backend accepted the credentials.
	LoginSubmitted struct {
		Email    string
		Password string
	}
	// SignupRequested asks to open the signup form.
	SignupRequested struct{}
	// ForgotPasswordRequested asks to open the reset form.
	ForgotPasswordRequested struct{}
	// SignupSubmitted fires once the signup form was validated and the
	// account was created.
	SignupSubmitted struct {
		Data models.SignupData
	}
	// LoginRequested asks to open the login form.
	LoginRequested struct{}
	// VerificationResent fires when the user asks for another email.
	VerificationResent struct{}
	// EmailVerified fires when the user confirms the verification link.
	EmailVerified struct{}
	// ChangeEmailRequested returns to signup to use another address.
	ChangeEmailRequested struct{}
	// PasswordResetRequested fires once a reset link was sent.
	PasswordResetRequested struct {
		Email string
	}
	// BackToLoginRequested leaves the reset flow.
	BackToLoginRequested struct{}
)

func (SplashCompleted) event()         {}
func (LoginSubmitted) event()          {}
func (SignupRequested) event()         {}
func (ForgotPasswordRequested) event() {}
func (SignupSubmitted) event()         {}
func (LoginRequested) event()          {}
func (VerificationResent) event()      {}
func (EmailVerified) event()           {}
func (ChangeEmailRequested) event()    {}
func (PasswordResetRequested) event()  {}
func (BackToLoginRequested) event()    {}
