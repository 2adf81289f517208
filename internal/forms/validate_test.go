package forms

import (
	"testing"

	"github.com/akyairhashvil/rtauth/internal/models"
)

func validSignup() SignupFields {
	return SignupFields{
		FullName:      "John Doe",
		Email:         "johndoe@example.com",
		MobileNumber:  "+1 (555) 123-4567",
		Password:      "Secret123",
		AcceptedTerms: true,
	}
}

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name   string
		fields LoginFields
		want   models.FormErrors
	}{
		{"valid", LoginFields{Email: "a@b.co", Password: "123456"}, models.FormErrors{}},
		{"empty", LoginFields{}, models.FormErrors{
			models.FieldEmail:    MsgEmailRequired,
			models.FieldPassword: MsgPasswordRequired,
		}},
		{"blank email", LoginFields{Email: "   ", Password: "123456"}, models.FormErrors{
			models.FieldEmail: MsgEmailRequired,
		}},
		{"missing at", LoginFields{Email: "johndoe.example.com", Password: "123456"}, models.FormErrors{
			models.FieldEmail: MsgEmailInvalid,
		}},
		{"missing dot", LoginFields{Email: "johndoe@example", Password: "123456"}, models.FormErrors{
			models.FieldEmail: MsgEmailInvalid,
		}},
		{"short password", LoginFields{Email: "a@b.co", Password: "12345"}, models.FormErrors{
			models.FieldPassword: MsgLoginPasswordShort,
		}},
		{"whitespace password counts", LoginFields{Email: "a@b.co", Password: "      "}, models.FormErrors{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertErrors(t, ValidateLogin(tt.fields), tt.want)
		})
	}
}

func TestValidateSignup(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SignupFields)
		want   models.FormErrors
	}{
		{"valid", func(*SignupFields) {}, models.FormErrors{}},
		{"referral optional", func(f *SignupFields) { f.ReferralCode = "" }, models.FormErrors{}},
		{"name required", func(f *SignupFields) { f.FullName = "  " }, models.FormErrors{
			models.FieldFullName: MsgFullNameRequired,
		}},
		{"name trimmed length", func(f *SignupFields) { f.FullName = " J " }, models.FormErrors{
			models.FieldFullName: MsgFullNameShort,
		}},
		{"email invalid", func(f *SignupFields) { f.Email = "john@" }, models.FormErrors{
			models.FieldEmail: MsgEmailInvalid,
		}},
		{"mobile required", func(f *SignupFields) { f.MobileNumber = " " }, models.FormErrors{
			models.FieldMobileNumber: MsgMobileRequired,
		}},
		{"mobile letters", func(f *SignupFields) { f.MobileNumber = "555-CALL" }, models.FormErrors{
			models.FieldMobileNumber: MsgMobileInvalid,
		}},
		{"mobile plus in middle", func(f *SignupFields) { f.MobileNumber = "12+34" }, models.FormErrors{
			models.FieldMobileNumber: MsgMobileInvalid,
		}},
		{"password required", func(f *SignupFields) { f.Password = "" }, models.FormErrors{
			models.FieldPassword: MsgPasswordRequired,
		}},
		{"password short", func(f *SignupFields) { f.Password = "Ab1" }, models.FormErrors{
			models.FieldPassword: MsgSignupPasswordShort,
		}},
		{"password no upper", func(f *SignupFields) { f.Password = "secret123" }, models.FormErrors{
			models.FieldPassword: MsgPasswordComposition,
		}},
		{"password no lower", func(f *SignupFields) { f.Password = "SECRET123" }, models.FormErrors{
			models.FieldPassword: MsgPasswordComposition,
		}},
		{"password no digit", func(f *SignupFields) { f.Password = "SecretPass" }, models.FormErrors{
			models.FieldPassword: MsgPasswordComposition,
		}},
		{"terms", func(f *SignupFields) { f.AcceptedTerms = false }, models.FormErrors{
			models.FieldTerms: MsgTermsRequired,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validSignup()
			tt.mutate(&f)
			assertErrors(t, ValidateSignup(f), tt.want)
		})
	}
}

func TestValidateSignupDoesNotShortCircuit(t *testing.T) {
	errs := ValidateSignup(SignupFields{})
	want := models.FormErrors{
		models.FieldFullName:     MsgFullNameRequired,
		models.FieldEmail:        MsgEmailRequired,
		models.FieldMobileNumber: MsgMobileRequired,
		models.FieldPassword:     MsgPasswordRequired,
		models.FieldTerms:        MsgTermsRequired,
	}
	assertErrors(t, errs, want)
}

func TestValidateForgotPassword(t *testing.T) {
	assertErrors(t, ValidateForgotPassword(""), models.FormErrors{models.FieldEmail: MsgResetEmailRequired})
	assertErrors(t, ValidateForgotPassword("nope"), models.FormErrors{models.FieldEmail: MsgResetEmailInvalid})
	assertErrors(t, ValidateForgotPassword("a@b.co"), models.FormErrors{})
}

func TestMalformedEmailsRejectedEverywhere(t *testing.T) {
	for _, email := range []string{"plainaddress", "user@domain", "user.domain.com", "@.", "a @b.c"} {
		if got := ValidateLogin(LoginFields{Email: email, Password: "123456"}).Get(models.FieldEmail); got != MsgEmailInvalid {
			t.Fatalf("login %q: got %q", email, got)
		}
		f := validSignup()
		f.Email = email
		if got := ValidateSignup(f).Get(models.FieldEmail); got != MsgEmailInvalid {
			t.Fatalf("signup %q: got %q", email, got)
		}
		if got := ValidateForgotPassword(email).Get(models.FieldEmail); got != MsgResetEmailInvalid {
			t.Fatalf("forgot %q: got %q", email, got)
		}
	}
}

func TestEmptyErrorsIffSubmittable(t *testing.T) {
	submittable := func(f LoginFields) bool {
		return IsEmail(f.Email) && len([]rune(f.Password)) >= 6
	}
	cases := []LoginFields{
		{},
		{Email: "a@b.co"},
		{Email: "a@b.co", Password: "12345"},
		{Email: "a@b.co", Password: "123456"},
		{Email: "ab.co", Password: "123456"},
	}
	for _, c := range cases {
		if ValidateLogin(c).Valid() != submittable(c) {
			t.Fatalf("validity mismatch for %+v", c)
		}
	}
}

func TestSignupFieldsData(t *testing.T) {
	f := validSignup()
	f.ReferralCode = "REF42"
	d := f.Data()
	if d.Email != f.Email || d.FullName != f.FullName || d.ReferralCode != "REF42" {
		t.Fatalf("unexpected data %+v", d)
	}
}

func assertErrors(t *testing.T, got, want models.FormErrors) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for field, msg := range want {
		if got[field] != msg {
			t.Fatalf("field %s: got %q, want %q", field, got[field], msg)
		}
	}
}
