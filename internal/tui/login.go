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

type loginScreen struct {
	base
	email    *field
	password *field
	fields   []*field
	focus    focusRing
	errors   models.FormErrors
	banner   string
	loading  bool
	pending  forms.LoginFields
	spin     spinner.Model
	keys     *HandlerRegistry[*loginScreen]
}

func newLoginScreen(ctx context.Context, deps Deps) *loginScreen {
	s := &loginScreen{
		base:     newBase(ctx, deps),
		email:    newField(models.FieldEmail, "Email", "you@example.com", config.MaxEmailLength, true),
		password: newSecretField(models.FieldPassword, "Password", "Your password", config.MaxPasswordLength),
		spin:     spinner.New(spinner.WithSpinner(spinner.Dot)),
		keys:     loginKeys,
	}
	s.fields = []*field{s.email, s.password}
	s.focus = focusRing{size: len(s.fields)}
	return s
}

var loginKeys = func() *HandlerRegistry[*loginScreen] {
	r := NewHandlerRegistry[*loginScreen]()
	r.Bind([]string{"enter"}, "enter", "sign in", func(s *loginScreen, _ string) (tea.Cmd, bool) {
		return s.submit(), true
	})
	r.Bind([]string{"tab", "down"}, "tab", "next field", func(s *loginScreen, _ string) (tea.Cmd, bool) {
		s.focus.Next()
		return applyFocus(s.fields, s.focus), true
	})
	r.Bind([]string{"shift+tab", "up"}, "", "", func(s *loginScreen, _ string) (tea.Cmd, bool) {
		s.focus.Prev()
		return applyFocus(s.fields, s.focus), true
	})
	r.Bind([]string{"ctrl+e"}, "ctrl+e", "show password", func(s *loginScreen, _ string) (tea.Cmd, bool) {
		s.password.ToggleReveal()
		return nil, true
	})
	r.Bind([]string{"ctrl+r"}, "ctrl+r", "forgot password", func(s *loginScreen, _ string) (tea.Cmd, bool) {
		return s.emit(flow.ForgotPasswordRequested{}), true
	})
	r.Bind([]string{"ctrl+n"}, "ctrl+n", "sign up", func(s *loginScreen, _ string) (tea.Cmd, bool) {
		return s.emit(flow.SignupRequested{}), true
	})
	return r
}()

func (s *loginScreen) Kind() models.Screen { return models.ScreenLogin }

func (s *loginScreen) Init() tea.Cmd {
	return tea.Batch(applyFocus(s.fields, s.focus), textinput.Blink)
}

func (s *loginScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, ok := s.keys.Handle(s, msg.String()); ok {
			return cmd
		}
		return s.updateFocused(msg)
	case opResult[auth.Session]:
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
	return s.updateFocused(msg)
}

func (s *loginScreen) updateFocused(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyMsg); ok && s.loading {
		return nil
	}
	f := s.fields[s.focus.index]
	cmd, changed := f.Update(msg)
	if changed {
		s.errors.Clear(f.key)
		s.banner = ""
	}
	return cmd
}

func (s *loginScreen) values() forms.LoginFields {
	return forms.LoginFields{Email: s.email.Value(), Password: s.password.Value()}
}

// submit validates the form and, when it is clean, starts the login call
// with the values as they are now. It does nothing while a call is pending.
func (s *loginScreen) submit() tea.Cmd {
	if s.loading {
		return nil
	}
	in := s.values()
	s.errors = forms.ValidateLogin(in)
	s.banner = ""
	if !s.errors.Valid() {
		return nil
	}
	s.loading = true
	s.pending = forms.LoginFields{Email: strings.TrimSpace(in.Email), Password: in.Password}
	svc, sent := s.deps.Service, s.pending
	return tea.Batch(s.spin.Tick, runOp(s.ctx, s.id, auth.OpLogin, func(ctx context.Context) (auth.Session, error) {
		return svc.Login(ctx, sent.Email, sent.Password)
	}))
}

func (s *loginScreen) finish(res opResult[auth.Session]) tea.Cmd {
	s.loading = false
	sent := s.pending
	s.pending = forms.LoginFields{}
	if res.err != nil {
		s.deps.Logger.Warn("login failed", "reason", auth.ReasonOf(res.err), "email", forms.MaskEmail(sent.Email))
		s.banner = auth.Message(res.err)
		return nil
	}
	s.password.Reset()
	return s.emit(flow.LoginSubmitted{Email: sent.Email, Password: sent.Password})
}

func (s *loginScreen) View(width int) string {
	w := formWidth(width)
	return joinVertical(
		renderHeader("RT", "Welcome Back", "Sign in to continue trading", w),
		"",
		renderBanner(s.banner, w),
		s.email.View(w, s.errors.Get(models.FieldEmail)),
		s.password.View(w, s.errors.Get(models.FieldPassword)),
		"",
		renderButton("Sign In", s.loading, s.spin.View()),
		"",
		CurrentTheme.Link.Render("Forgot password?")+CurrentTheme.Dim.Render("  ctrl+r"),
		CurrentTheme.Dim.Render("Don't have an account? ")+CurrentTheme.Link.Render("Sign Up")+CurrentTheme.Dim.Render("  ctrl+n"),
		"",
		renderHelp(s.keys.Help(), w),
	)
}
