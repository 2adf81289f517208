package flow

import "github.com/akyairhashvil/rtauth/internal/models"

// available lists the events each screen can emit. The dashboard belongs
// to the main application and emits nothing here.
var available = map[models.Screen][]Event{
	models.ScreenSplash: {SplashCompleted{}},
	models.ScreenLogin: {
		LoginSubmitted{},
		SignupRequested{},
		ForgotPasswordRequested{},
	},
	models.ScreenSignup: {
		SignupSubmitted{},
		LoginRequested{},
	},
	models.ScreenEmailVerification: {
		VerificationResent{},
		EmailVerified{},
		ChangeEmailRequested{},
	},
	models.ScreenForgotPassword: {
		PasswordResetRequested{},
		BackToLoginRequested{},
	},
	models.ScreenDashboard: nil,
}

// Available returns the events a screen may emit.
func Available(s models.Screen) []Event {
	return available[Resolve(s)]
}
