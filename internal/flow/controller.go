// Package flow holds the navigation state machine of the authentication
// flow: which screen is shown and the email carried between screens.
package flow

import (
	"log/slog"

	"github.com/akyairhashvil/rtauth/internal/forms"
	"github.com/akyairhashvil/rtauth/internal/models"
	"github.com/akyairhashvil/rtauth/internal/util"
)

// Controller is the single writer of the current screen. It has no error
// paths: screens validate before they emit events.
type Controller struct {
	current      models.Screen
	pendingEmail string
	log          *slog.Logger
}

// NewController starts at the splash screen.
func NewController(log *slog.Logger) *Controller {
	return &Controller{current: models.ScreenSplash, log: util.OrDefault(log)}
}

// Current is the screen to render. Unknown states resolve to splash.
func (c *Controller) Current() models.Screen {
	return Resolve(c.current)
}

// PendingEmail is the address captured by the last signup or reset
// request.
func (c *Controller) PendingEmail() string {
	return c.pendingEmail
}

// Resolve maps s to a renderable screen, falling back to splash.
func Resolve(s models.Screen) models.Screen {
	if !s.Known() {
		return models.ScreenSplash
	}
	return s
}

func (c *Controller) CompleteSplash() {
	c.moveTo(models.ScreenLogin)
}

// SubmitLogin is the placeholder boundary for authentication.
func (c *Controller) SubmitLogin(email, password string) {
	c.log.Info("login accepted", "email", forms.MaskEmail(email), "password_set", password != "")
	c.moveTo(models.ScreenDashboard)
}

func (c *Controller) GoToSignup() {
	c.moveTo(models.ScreenSignup)
}

func (c *Controller) GoToForgotPassword() {
	c.moveTo(models.ScreenForgotPassword)
}

// SubmitSignup keeps the email for the verification screen.
func (c *Controller) SubmitSignup(data models.SignupData) {
	c.log.Info("signup accepted", "email", forms.MaskEmail(data.Email), "referral", data.ReferralCode != "")
	c.pendingEmail = data.Email
	c.moveTo(models.ScreenEmailVerification)
}

func (c *Controller) GoToLogin() {
	c.moveTo(models.ScreenLogin)
}

// ResendVerificationEmail does not change screens.
func (c *Controller) ResendVerificationEmail() {
	c.log.Info("verification email resend", "email", forms.MaskEmail(c.pendingEmail))
}

func (c *Controller) ConfirmEmailVerified() {
	c.log.Info("email verified", "email", forms.MaskEmail(c.pendingEmail))
	c.moveTo(models.ScreenDashboard)
}

func (c *Controller) ChangeEmail() {
	c.moveTo(models.ScreenSignup)
}

// RequestPasswordReset stores the email and stays on the reset screen.
func (c *Controller) RequestPasswordReset(email string) {
	c.log.Info("password reset link sent", "email", forms.MaskEmail(email))
	c.pendingEmail = email
}

func (c *Controller) BackToLogin() {
	c.moveTo(models.ScreenLogin)
}

// Dispatch applies ev and reports the screen to render afterwards.
func (c *Controller) Dispatch(ev Event) models.Screen {
	switch ev := ev.(type) {
	case SplashCompleted:
		c.CompleteSplash()
	case LoginSubmitted:
		c.SubmitLogin(ev.Email, ev.Password)
	case SignupRequested:
		c.GoToSignup()
	case ForgotPasswordRequested:
		c.GoToForgotPassword()
	case SignupSubmitted:
		c.SubmitSignup(ev.Data)
	case LoginRequested:
		c.GoToLogin()
	case VerificationResent:
		c.ResendVerificationEmail()
	case EmailVerified:
		c.ConfirmEmailVerified()
	case ChangeEmailRequested:
		c.ChangeEmail()
	case PasswordResetRequested:
		c.RequestPasswordReset(ev.Email)
	case BackToLoginRequested:
		c.BackToLogin()
	default:
		c.log.Warn("ignoring unknown event", "event", ev)
	}
	return c.Current()
}

func (c *Controller) moveTo(next models.Screen) {
	if next == c.current {
		return
	}
	c.log.Debug("screen transition", "from", c.current.String(), "to", next.String())
	c.current = next
}
