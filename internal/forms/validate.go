// Package forms holds the client-side validation rules of the
// authentication screens and the masked-email display helper.
//
// Every validator is a pure function returning the complete set of field
// errors; an empty result is the only signal that a form may be submitted.
package forms

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/akyairhashvil/rtauth/internal/config"
	"github.com/akyairhashvil/rtauth/internal/models"
)

var (
	emailPattern  = regexp.MustCompile(`\S+@\S+\.\S+`)
	mobilePattern = regexp.MustCompile(`^\+?[\d\s\-()]+$`)

	// RE2 has no lookahead, so the composition rule is one pattern per
	// required character class.
	passwordClasses = []*regexp.Regexp{
		regexp.MustCompile(`[a-z]`),
		regexp.MustCompile(`[A-Z]`),
		regexp.MustCompile(`\d`),
	}
)

// Messages shown next to invalid fields.
const (
	MsgEmailRequired       = "Email is required"
	MsgEmailInvalid        = "Please enter a valid email"
	MsgPasswordRequired    = "Password is required"
	MsgLoginPasswordShort  = "Password must be at least 6 characters"
	MsgFullNameRequired    = "Full name is required"
	MsgFullNameShort       = "Full name must be at least 2 characters"
	MsgMobileRequired      = "Mobile number is required"
	MsgMobileInvalid       = "Please enter a valid mobile number"
	MsgSignupPasswordShort = "Password must be at least 8 characters"
	MsgPasswordComposition = "Password must contain uppercase, lowercase and number"
	MsgTermsRequired       = "You must accept the terms and conditions"
	MsgResetEmailRequired  = "Please enter your email address"
	MsgResetEmailInvalid   = "Please enter a valid email address"
)

// LoginFields are the inputs of the login form.
type LoginFields struct {
	Email    string
	Password string
}

// SignupFields are the inputs of the signup form.
type SignupFields struct {
	FullName      string
	Email         string
	MobileNumber  string
	Password      string
	ReferralCode  string
	AcceptedTerms bool
}

// Data returns the submission payload for the form.
func (f SignupFields) Data() models.SignupData {
	return models.SignupData{
		FullName:     f.FullName,
		Email:        f.Email,
		MobileNumber: f.MobileNumber,
		Password:     f.Password,
		ReferralCode: f.ReferralCode,
	}
}

// IsEmail reports whether s looks like an email address.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsMobileNumber reports whether s contains only an optional leading '+'
// followed by digits, whitespace, hyphens and parentheses.
func IsMobileNumber(s string) bool {
	return mobilePattern.MatchString(s)
}

// HasPasswordClasses reports whether s contains a lowercase letter, an
// uppercase letter and a digit.
func HasPasswordClasses(s string) bool {
	for _, class := range passwordClasses {
		if !class.MatchString(s) {
			return false
		}
	}
	return true
}

// ValidateLogin checks the login form.
func ValidateLogin(f LoginFields) models.FormErrors {
	errs := models.FormErrors{}
	if msg := checkEmail(f.Email, MsgEmailRequired, MsgEmailInvalid); msg != "" {
		errs[models.FieldEmail] = msg
	}
	switch {
	case f.Password == "":
		errs[models.FieldPassword] = MsgPasswordRequired
	case utf8.RuneCountInString(f.Password) < config.MinLoginPasswordLength:
		errs[models.FieldPassword] = MsgLoginPasswordShort
	}
	return errs
}

// ValidateSignup checks every signup field independently, in form order.
func ValidateSignup(f SignupFields) models.FormErrors {
	errs := models.FormErrors{}

	name := strings.TrimSpace(f.FullName)
	switch {
	case name == "":
		errs[models.FieldFullName] = MsgFullNameRequired
	case utf8.RuneCountInString(name) < config.MinFullNameLength:
		errs[models.FieldFullName] = MsgFullNameShort
	}

	if msg := checkEmail(f.Email, MsgEmailRequired, MsgEmailInvalid); msg != "" {
		errs[models.FieldEmail] = msg
	}

	switch {
	case strings.TrimSpace(f.MobileNumber) == "":
		errs[models.FieldMobileNumber] = MsgMobileRequired
	case !IsMobileNumber(f.MobileNumber):
		errs[models.FieldMobileNumber] = MsgMobileInvalid
	}

	switch {
	case f.Password == "":
		errs[models.FieldPassword] = MsgPasswordRequired
	case utf8.RuneCountInString(f.Password) < config.MinSignupPasswordLength:
		errs[models.FieldPassword] = MsgSignupPasswordShort
	case !HasPasswordClasses(f.Password):
		errs[models.FieldPassword] = MsgPasswordComposition
	}

	if !f.AcceptedTerms {
		errs[models.FieldTerms] = MsgTermsRequired
	}
	return errs
}

// ValidateForgotPassword checks the single email field of the reset form.
func ValidateForgotPassword(email string) models.FormErrors {
	errs := models.FormErrors{}
	if msg := checkEmail(email, MsgResetEmailRequired, MsgResetEmailInvalid); msg != "" {
		errs[models.FieldEmail] = msg
	}
	return errs
}

func checkEmail(email, required, invalid string) string {
	if strings.TrimSpace(email) == "" {
		return required
	}
	if !IsEmail(email) {
		return invalid
	}
	return ""
}
