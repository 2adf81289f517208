package tui

import (
	"context"

	"github.com/akyairhashvil/rtauth/internal/auth"
	"github.com/akyairhashvil/rtauth/internal/config"
	"github.com/akyairhashvil/rtauth/internal/flow"
	"github.com/akyairhashvil/rtauth/internal/forms"
	"github.com/akyairhashvil/rtauth/internal/models"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type verifyScreen struct {
	base
	email     string
	countdown Countdown
	bar       progress.Model
	banner    string
	notice    string
	loading   bool
	resending bool
	spin      spinner.Model
	keys      *HandlerRegistry[*verifyScreen]
}

func newVerifyScreen(ctx context.Context, deps Deps, email string) *verifyScreen {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = config.CountdownBarWidth
	return &verifyScreen{
		base:      newBase(ctx, deps),
		email:     email,
		countdown: NewCountdown(deps.CountdownStart, deps.CountdownInterval),
		bar:       bar,
		spin:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		keys:      verifyKeys,
	}
}

var verifyKeys = func() *HandlerRegistry[*verifyScreen] {
	r := NewHandlerRegistry[*verifyScreen]()
	r.Bind([]string{"enter", "v"}, "enter", "I've verified my email", func(s *verifyScreen, _ string) (tea.Cmd, bool) {
		return s.confirm(), true
	})
	r.Bind([]string{"r"}, "r", "resend email", func(s *verifyScreen, _ string) (tea.Cmd, bool) {
		return s.resend(), true
	})
	r.Bind([]string{"c", "esc"}, "c", "use a different email", func(s *verifyScreen, _ string) (tea.Cmd, bool) {
		return s.emit(flow.ChangeEmailRequested{}), true
	})
	return r
}()

func (s *verifyScreen) Kind() models.Screen { return models.ScreenEmailVerification }

func (s *verifyScreen) Init() tea.Cmd {
	var cmd tea.Cmd
	s.countdown, cmd = s.countdown.Start()
	return cmd
}

// Close stops the countdown along with any pending call.
func (s *verifyScreen) Close() {
	s.countdown = s.countdown.Stop()
	s.base.Close()
}

func (s *verifyScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, _ := s.keys.Handle(s, msg.String())
		return cmd
	case countdownTickMsg:
		if s.closed() {
			return nil
		}
		var cmd tea.Cmd
		s.countdown, cmd = s.countdown.Update(msg)
		return cmd
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
	return nil
}

func (s *verifyScreen) confirm() tea.Cmd {
	if s.loading {
		return nil
	}
	s.loading = true
	s.banner = ""
	svc, email := s.deps.Service, s.email
	return tea.Batch(s.spin.Tick, runErrOp(s.ctx, s.id, auth.OpConfirmVerified, func(ctx context.Context) error {
		return svc.ConfirmEmailVerified(ctx, email)
	}))
}

// resend is only honoured once the countdown has run out; it restarts the
// countdown immediately.
func (s *verifyScreen) resend() tea.Cmd {
	if !s.countdown.CanResend() || s.resending {
		return nil
	}
	s.resending = true
	s.banner, s.notice = "", ""
	var tick tea.Cmd
	s.countdown, tick = s.countdown.Start()
	svc, email := s.deps.Service, s.email
	return tea.Batch(
		s.emit(flow.VerificationResent{}),
		tick,
		runErrOp(s.ctx, s.id, auth.OpResendVerification, func(ctx context.Context) error {
			return svc.ResendVerificationEmail(ctx, email)
		}),
	)
}

func (s *verifyScreen) finish(res opResult[none]) tea.Cmd {
	switch res.op {
	case auth.OpResendVerification:
		s.resending = false
		if res.err != nil {
			s.deps.Logger.Warn("resend verification failed", "reason", auth.ReasonOf(res.err), "email", forms.MaskEmail(s.email))
			s.banner = auth.Message(res.err)
			return nil
		}
		s.notice = "A new verification email is on its way."
		return nil
	case auth.OpConfirmVerified:
		s.loading = false
		if res.err != nil {
			s.deps.Logger.Warn("confirm verification failed", "reason", auth.ReasonOf(res.err), "email", forms.MaskEmail(s.email))
			s.banner = auth.Message(res.err)
			return nil
		}
		return s.emit(flow.EmailVerified{})
	}
	return nil
}

func (s *verifyScreen) View(width int) string {
	w := formWidth(width)
	var resend string
	if s.countdown.CanResend() {
		resend = CurrentTheme.Link.Render("Resend verification email") + CurrentTheme.Dim.Render("  r")
	} else {
		resend = CurrentTheme.Dim.Render("Resend email in "+FormatCountdown(s.countdown.Remaining())) +
			"\n" + s.bar.ViewAs(s.countdown.Elapsed())
	}
	return joinVertical(
		renderHeader("✉", "Check Your Email", "We've sent a verification link to", w),
		CurrentTheme.Accent.Render(truncate(forms.MaskEmail(s.email), w)),
		"",
		CurrentTheme.Subtitle.Width(w).Render("Click the link in the email to verify your account."),
		"",
		CurrentTheme.Dim.Width(w).Render("If you don't see the email, check your spam folder."),
		"",
		renderBanner(s.banner, w),
		renderNotice(s.notice, w),
		"",
		renderButton("I've Verified My Email", s.loading, s.spin.View()),
		"",
		resend,
		CurrentTheme.Link.Render("Use a different email address")+CurrentTheme.Dim.Render("  c"),
		"",
		renderHelp(s.keys.Help(), w),
	)
}
