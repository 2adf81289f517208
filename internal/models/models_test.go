package models

import "testing"

func TestScreenKnown(t *testing.T) {
	for _, s := range Screens {
		if !s.Known() {
			t.Fatalf("expected %q to be known", s)
		}
	}
	if Screen("onboarding").Known() {
		t.Fatalf("onboarding should not be a known screen")
	}
	if Screen("").Known() {
		t.Fatalf("empty screen should not be known")
	}
}

func TestScreenString(t *testing.T) {
	if ScreenEmailVerification.String() != "emailVerification" {
		t.Fatalf("ScreenEmailVerification = %q", ScreenEmailVerification.String())
	}
	if Screen("").String() != "unknown" {
		t.Fatalf("empty screen = %q", Screen("").String())
	}
}

func TestFormErrors(t *testing.T) {
	var nilErrs FormErrors
	if !nilErrs.Valid() {
		t.Fatalf("nil FormErrors should be valid")
	}
	if nilErrs.Get(FieldEmail) != "" {
		t.Fatalf("nil FormErrors should have no messages")
	}
	nilErrs.Clear(FieldEmail)

	errs := FormErrors{FieldEmail: "Email is required", FieldTerms: "accept"}
	if errs.Valid() {
		t.Fatalf("expected invalid form")
	}
	if !errs.Has(FieldTerms) {
		t.Fatalf("expected terms error")
	}
	errs.Clear(FieldEmail)
	if errs.Has(FieldEmail) {
		t.Fatalf("expected email error to be cleared")
	}
	errs.Clear(FieldTerms)
	if !errs.Valid() {
		t.Fatalf("expected valid form after clearing every field")
	}
}
