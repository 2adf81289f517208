package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/akyairhashvil/rtauth/internal/config"
	"github.com/akyairhashvil/rtauth/internal/forms"
	"github.com/akyairhashvil/rtauth/internal/models"
	"github.com/akyairhashvil/rtauth/internal/util"
	"github.com/google/uuid"
)

// Simulated is the placeholder backend: each call waits a fixed delay,
// logs, optionally journals, and succeeds unless the operation was
// configured to fail.
type Simulated struct {
	delays  map[Op]time.Duration
	failing map[Op]Reason
	journal Journal
	log     *slog.Logger
	newID   func() string
}

// Option customises a Simulated backend.
type Option func(*Simulated)

// WithJournal records every call in j.
func WithJournal(j Journal) Option {
	return func(s *Simulated) { s.journal = j }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Simulated) { s.log = util.OrDefault(l) }
}

// WithFailure makes op fail with reason.
func WithFailure(op Op, reason Reason) Option {
	return func(s *Simulated) { s.failing[op] = reason }
}

// WithDelay overrides the latency of op.
func WithDelay(op Op, d time.Duration) Option {
	return func(s *Simulated) { s.delays[op] = d }
}

// NewSimulated builds the placeholder backend from cfg. Operations listed
// in cfg.FailOps fail with ReasonNetwork.
func NewSimulated(cfg config.Config, opts ...Option) (*Simulated, error) {
	s := &Simulated{
		delays: map[Op]time.Duration{
			OpLogin:              cfg.Delays.Login,
			OpSignup:             cfg.Delays.Signup,
			OpResendVerification: cfg.Delays.Resend,
			OpConfirmVerified:    cfg.Delays.Confirm,
			OpPasswordReset:      cfg.Delays.Reset,
		},
		failing: map[Op]Reason{},
		log:     slog.Default(),
		newID:   uuid.NewString,
	}
	for _, name := range cfg.FailOps {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		op, ok := ParseOp(name)
		if !ok {
			return nil, fmt.Errorf("unknown operation %q in fail list", name)
		}
		s.failing[op] = ReasonNetwork
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Simulated) Login(ctx context.Context, email, password string) (Session, error) {
	id, err := s.call(ctx, OpLogin, email)
	if err != nil {
		return Session{}, err
	}
	return Session{Email: email, Token: id}, nil
}

func (s *Simulated) Signup(ctx context.Context, req SignupRequest) error {
	_, err := s.call(ctx, OpSignup, req.Email, "referral", req.ReferralCode != "")
	return err
}

func (s *Simulated) ResendVerificationEmail(ctx context.Context, email string) error {
	_, err := s.call(ctx, OpResendVerification, email)
	return err
}

func (s *Simulated) ConfirmEmailVerified(ctx context.Context, email string) error {
	_, err := s.call(ctx, OpConfirmVerified, email)
	return err
}

func (s *Simulated) SendPasswordReset(ctx context.Context, email string) error {
	_, err := s.call(ctx, OpPasswordReset, email)
	return err
}

func (s *Simulated) call(ctx context.Context, op Op, email string, attrs ...any) (string, error) {
	id := s.newID()
	masked := forms.MaskEmail(email)
	log := s.log.With("op", string(op), "request_id", id, "email", masked)
	log.Info("backend call", attrs...)

	var err error
	if werr := wait(ctx, s.delays[op]); werr != nil {
		err = &Failure{Op: op, Reason: ReasonCancelled, RequestID: id, Err: werr}
	} else if reason, ok := s.failing[op]; ok {
		err = Fail(op, reason, id)
	}

	outcome := models.OutcomeSuccess
	switch ReasonOf(err) {
	case "":
		log.Info("backend call succeeded")
	case ReasonCancelled:
		outcome = models.OutcomeCancelled
		log.Info("backend call cancelled")
	default:
		outcome = models.OutcomeFailure
		log.Warn("backend call failed", "err", err)
	}
	s.record(ctx, models.AuthEvent{RequestID: id, Op: string(op), MaskedEmail: masked, Outcome: outcome})
	return id, err
}

func (s *Simulated) record(ctx context.Context, ev models.AuthEvent) {
	if s.journal == nil {
		return
	}
	if err := s.journal.RecordEvent(context.WithoutCancel(ctx), ev); err != nil {
		s.log.Error("journal record failed", "op", ev.Op, "err", err)
	}
}

func wait(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

var _ Service = (*Simulated)(nil)
