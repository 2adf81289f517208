package auth

import (
	"context"
	"errors"
	"fmt"
)

// Reason classifies a backend failure.
type Reason string

const (
	ReasonUnknown          Reason = "unknown"
	ReasonBadCredentials   Reason = "bad_credentials"
	ReasonNetwork          Reason = "network"
	ReasonDuplicateAccount Reason = "duplicate_account"
	ReasonNotVerified      Reason = "not_verified"
	ReasonExpired          Reason = "expired"
	ReasonInvalid          Reason = "invalid"
	ReasonCancelled        Reason = "cancelled"
)

var (
	ErrBadCredentials   = errors.New("invalid email or password")
	ErrNetwork          = errors.New("network unavailable")
	ErrDuplicateAccount = errors.New("account already exists")
	ErrNotVerified      = errors.New("email not verified yet")
	ErrExpired          = errors.New("verification expired")
	ErrInvalid          = errors.New("request rejected")
)

var reasonErrors = map[Reason]error{
	ReasonBadCredentials:   ErrBadCredentials,
	ReasonNetwork:          ErrNetwork,
	ReasonDuplicateAccount: ErrDuplicateAccount,
	ReasonNotVerified:      ErrNotVerified,
	ReasonExpired:          ErrExpired,
	ReasonInvalid:          ErrInvalid,
}

// Failure is the typed error every Service method returns.
type Failure struct {
	Op        Op
	Reason    Reason
	RequestID string
	Err       error
}

// Fail builds a Failure whose cause is the sentinel for reason.
func Fail(op Op, reason Reason, requestID string) *Failure {
	err := reasonErrors[reason]
	if err == nil {
		err = errors.New(string(reason))
	}
	return &Failure{Op: op, Reason: reason, RequestID: requestID, Err: err}
}

func (f *Failure) Error() string {
	if f == nil {
		return ""
	}
	if f.RequestID != "" {
		return fmt.Sprintf("%s failed (%s, request %s): %v", f.Op, f.Reason, f.RequestID, f.Err)
	}
	return fmt.Sprintf("%s failed (%s): %v", f.Op, f.Reason, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

// ReasonOf extracts the failure reason of err. Context cancellation maps to
// ReasonCancelled; anything else unrecognised is ReasonUnknown.
func ReasonOf(err error) Reason {
	if err == nil {
		return ""
	}
	var f *Failure
	if errors.As(err, &f) {
		return f.Reason
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return ReasonCancelled
	}
	return ReasonUnknown
}

// Message is the banner text shown for a failed operation.
func Message(err error) string {
	switch ReasonOf(err) {
	case "":
		return ""
	case ReasonBadCredentials:
		return "Invalid email or password."
	case ReasonNetwork:
		return "Network error. Please check your connection and try again."
	case ReasonDuplicateAccount:
		return "An account with this email already exists."
	case ReasonNotVerified:
		return "Your email is not verified yet. Check your inbox."
	case ReasonExpired:
		return "The verification link has expired. Request a new one."
	case ReasonInvalid:
		return "The request was rejected. Please review your details."
	case ReasonCancelled:
		return "Request cancelled."
	default:
		return "Something went wrong. Please try again."
	}
}
