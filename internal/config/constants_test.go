package config

import "testing"

func TestConstants(t *testing.T) {
	if SplashDuration <= 0 {
		t.Fatalf("SplashDuration must be positive")
	}
	if ResendCountdownStart != 60 {
		t.Fatalf("ResendCountdownStart = %d, want 60", ResendCountdownStart)
	}
	if CountdownInterval <= 0 {
		t.Fatalf("CountdownInterval must be positive")
	}
	if MinLoginPasswordLength != 6 || MinSignupPasswordLength != 8 || MinFullNameLength != 2 {
		t.Fatalf("unexpected validation limits")
	}
	if AppName == "" || DBFileName == "" || LogFileName == "" {
		t.Fatalf("file names should not be empty")
	}
	if FormWidth < MinFormWidth {
		t.Fatalf("FormWidth should not be below MinFormWidth")
	}
}
