package tui

import (
	"context"
	"strings"

	"github.com/akyairhashvil/rtauth/internal/auth"
	"github.com/akyairhashvil/rtauth/internal/config"
	"github.com/akyairhashvil/rtauth/internal/flow"
	"github.com/akyairhashvil/rtauth/internal/forms"
	"github.com/akyairhashvil/rtauth/internal/models"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// MsgResetFailed is shown under the email field when the reset call fails.
const MsgResetFailed = "Failed to send reset link. Please try again."

type forgotScreen struct {
	base
	email   *field
	errors  models.FormErrors
	sent    bool
	sentTo  string
	loading bool
	pending string
	spin    spinner.Model
	keys    *HandlerRegistry[*forgotScreen]
}

func newForgotScreen(ctx context.Context, deps Deps) *forgotScreen {
	s := &forgotScreen{
		base:  newBase(ctx, deps),
		email: newField(models.FieldEmail, "Email", "you@example.com", config.MaxEmailLength, true),
		spin:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		keys:  forgotKeys,
	}
	return s
}

var forgotKeys = func() *HandlerRegistry[*forgotScreen] {
	r := NewHandlerRegistry[*forgotScreen]()
	r.Bind([]string{"enter"}, "enter", "send reset link", func(s *forgotScreen, _ string) (tea.Cmd, bool) {
		if s.sent {
			return s.emit(flow.BackToLoginRequested{}), true
		}
		return s.submit(), true
	})
	r.Bind([]string{"t"}, "t", "try a different email", func(s *forgotScreen, _ string) (tea.Cmd, bool) {
		if !s.sent {
			return nil, false
		}
		return s.reset(), true
	})
	r.Bind([]string{"esc", "ctrl+b"}, "esc", "back to login", func(s *forgotScreen, _ string) (tea.Cmd, bool) {
		return s.emit(flow.BackToLoginRequested{}), true
	})
	return r
}()

func (s *forgotScreen) Kind() models.Screen { return models.ScreenForgotPassword }

func (s *forgotScreen) Init() tea.Cmd {
	return tea.Batch(s.email.Focus(), textinput.Blink)
}

func (s *forgotScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, ok := s.keys.Handle(s, msg.String()); ok {
			return cmd
		}
		if s.sent {
			return nil
		}
		return s.updateEmail(msg)
	case opResult[none]:
		if !s.owns(msg.id) {
			return nil
		}
		return s.finish(msg)
	case spinner.TickMsg:
		if !s.loading {
			return nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return cmd
	}
	if s.sent {
		return nil
	}
	return s.updateEmail(msg)
}

func (s *forgotScreen) updateEmail(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyMsg); ok && s.loading {
		return nil
	}
	cmd, changed := s.email.Update(msg)
	if changed {
		s.errors.Clear(models.FieldEmail)
	}
	return cmd
}

func (s *forgotScreen) submit() tea.Cmd {
	if s.loading {
		return nil
	}
	email := s.email.Value()
	s.errors = forms.ValidateForgotPassword(email)
	if !s.errors.Valid() {
		return nil
	}
	s.loading = true
	s.pending = strings.TrimSpace(email)
	svc, email := s.deps.Service, s.pending
	return tea.Batch(s.spin.Tick, runErrOp(s.ctx, s.id, auth.OpPasswordReset, func(ctx context.Context) error {
		return svc.SendPasswordReset(ctx, email)
	}))
}

func (s *forgotScreen) finish(res opResult[none]) tea.Cmd {
	s.loading = false
	email := s.pending
	s.pending = ""
	if res.err != nil {
		s.deps.Logger.Warn("password reset failed", "reason", auth.ReasonOf(res.err), "email", forms.MaskEmail(email))
		s.errors = models.FormErrors{models.FieldEmail: MsgResetFailed}
		return nil
	}
	s.sent = true
	s.sentTo = email
	return s.emit(flow.PasswordResetRequested{Email: email})
}

// reset returns to an empty form after a link was sent.
func (s *forgotScreen) reset() tea.Cmd {
	s.sent = false
	s.sentTo = ""
	s.errors = nil
	s.email.Reset()
	return s.email.Focus()
}

func (s *forgotScreen) View(width int) string {
	w := formWidth(width)
	if s.sent {
		return joinVertical(
			renderHeader("✓", "Check Your Email", "We've sent a password reset link to", w),
			CurrentTheme.Accent.Render(truncate(forms.MaskEmail(s.sentTo), w)),
			"",
			CurrentTheme.Subtitle.Width(w).Render("Follow the link in the email to choose a new password."),
			"",
			renderButton("Back to Login", false, ""),
			"",
			CurrentTheme.Link.Render("Try with a different email")+CurrentTheme.Dim.Render("  t"),
			"",
			renderHelp("enter back to login • t try a different email", w),
		)
	}
	return joinVertical(
		renderHeader("RT", "Forgot Password?", "Enter your email and we'll send you a link to reset your password", w),
		"",
		s.email.View(w, s.errors.Get(models.FieldEmail)),
		"",
		renderButton("Send Reset Link", s.loading, s.spin.View()),
		"",
		CurrentTheme.Link.Render("Back to Login")+CurrentTheme.Dim.Render("  esc"),
		"",
		renderHelp("enter send reset link • esc back to login", w),
	)
}
