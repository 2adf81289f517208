// Package auth defines the backend collaborator the authentication
// screens talk to, and a simulated implementation that stands in for it.
package auth

import (
	"context"

	"github.com/akyairhashvil/rtauth/internal/models"
)

// Op names a backend operation.
type Op string

const (
	OpLogin              Op = "login"
	OpSignup             Op = "signup"
	OpResendVerification Op = "resend_verification"
	OpConfirmVerified    Op = "confirm_email_verified"
	OpPasswordReset      Op = "password_reset"
)

// Ops lists every backend operation.
var Ops = []Op{OpLogin, OpSignup, OpResendVerification, OpConfirmVerified, OpPasswordReset}

// ParseOp maps a configured name to an Op.
func ParseOp(name string) (Op, bool) {
	for _, op := range Ops {
		if string(op) == name {
			return op, true
		}
	}
	return "", false
}

// Session is the result of a successful login. The token is opaque and is
// not stored anywhere by this module.
type Session struct {
	Email string
	Token string
}

// SignupRequest is the account creation payload.
type SignupRequest = models.SignupData

// Service is the authentication backend. Every method either succeeds or
// returns a *Failure.
//
//go:generate mockgen -destination=mock_auth/service_mock.go -package=mock_auth . Service
type Service interface {
	Login(ctx context.Context, email, password string) (Session, error)
	Signup(ctx context.Context, req SignupRequest) error
	ResendVerificationEmail(ctx context.Context, email string) error
	ConfirmEmailVerified(ctx context.Context, email string) error
	SendPasswordReset(ctx context.Context, email string) error
}

// Journal receives a record of every backend call.
type Journal interface {
	RecordEvent(ctx context.Context, ev models.AuthEvent) error
}
