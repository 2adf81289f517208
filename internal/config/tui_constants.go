package config

// Layout constants.
const (
	// FormWidth is the width of text inputs and banners.
	FormWidth = 40

	// MinFormWidth is the narrowest a form is rendered.
	MinFormWidth = 20

	// SplashBarWidth is the width of the splash progress bar.
	SplashBarWidth = 30

	// CountdownBarWidth is the width of the resend countdown bar.
	CountdownBarWidth = 24
)

// Input constraints.
const (
	// MaxEmailLength is the input limit for email fields.
	MaxEmailLength = 254

	// MaxPasswordLength is the input limit for password fields.
	MaxPasswordLength = 128

	// MaxNameLength is the input limit for the full name field.
	MaxNameLength = 100

	// MaxMobileLength is the input limit for the mobile number field.
	MaxMobileLength = 24

	// MaxReferralLength is the input limit for the referral code field.
	MaxReferralLength = 16
)
