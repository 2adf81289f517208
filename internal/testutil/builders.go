package testutil

import (
	"time"

	"github.com/akyairhashvil/rtauth/internal/forms"
	"github.com/akyairhashvil/rtauth/internal/models"
)

// SignupFieldsBuilder provides fluent API for creating signup forms that
// pass validation unless a field is overridden.
type SignupFieldsBuilder struct {
	fields forms.SignupFields
}

func NewSignupFields() *SignupFieldsBuilder {
	return &SignupFieldsBuilder{
		fields: forms.SignupFields{
			FullName:      "Jane Doe",
			Email:         "jane@example.com",
			MobileNumber:  "+1 (555) 010-0000",
			Password:      "Secret123",
			AcceptedTerms: true,
		},
	}
}

func (b *SignupFieldsBuilder) WithFullName(n string) *SignupFieldsBuilder {
	b.fields.FullName = n
	return b
}

func (b *SignupFieldsBuilder) WithEmail(e string) *SignupFieldsBuilder {
	b.fields.Email = e
	return b
}

func (b *SignupFieldsBuilder) WithMobileNumber(m string) *SignupFieldsBuilder {
	b.fields.MobileNumber = m
	return b
}

func (b *SignupFieldsBuilder) WithPassword(p string) *SignupFieldsBuilder {
	b.fields.Password = p
	return b
}

func (b *SignupFieldsBuilder) WithReferralCode(c string) *SignupFieldsBuilder {
	b.fields.ReferralCode = c
	return b
}

func (b *SignupFieldsBuilder) WithoutTerms() *SignupFieldsBuilder {
	b.fields.AcceptedTerms = false
	return b
}

func (b *SignupFieldsBuilder) Build() forms.SignupFields {
	return b.fields
}

// AuthEventBuilder provides fluent API for creating journal entries.
type AuthEventBuilder struct {
	event models.AuthEvent
}

func NewAuthEvent() *AuthEventBuilder {
	return &AuthEventBuilder{
		event: models.AuthEvent{
			RequestID:   "req-test",
			Op:          "login",
			MaskedEmail: "j**e@example.com",
			Outcome:     models.OutcomeSuccess,
			CreatedAt:   time.Now().UTC(),
		},
	}
}

func (b *AuthEventBuilder) WithOp(op string) *AuthEventBuilder {
	b.event.Op = op
	return b
}

func (b *AuthEventBuilder) WithOutcome(o string) *AuthEventBuilder {
	b.event.Outcome = o
	return b
}

func (b *AuthEventBuilder) WithRequestID(id string) *AuthEventBuilder {
	b.event.RequestID = id
	return b
}

func (b *AuthEventBuilder) At(t time.Time) *AuthEventBuilder {
	b.event.CreatedAt = t
	return b
}

func (b *AuthEventBuilder) Build() models.AuthEvent {
	return b.event
}
