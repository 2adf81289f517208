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
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type signupScreen struct {
	base
	fullName *field
	email    *field
	mobile   *field
	password *field
	referral *field
	fields   []*field
	terms    bool
	focus    focusRing
	errors   models.FormErrors
	banner   string
	loading  bool
	pending  models.SignupData
	spin     spinner.Model
	keys     *HandlerRegistry[*signupScreen]
}

func newSignupScreen(ctx context.Context, deps Deps) *signupScreen {
	s := &signupScreen{
		base:     newBase(ctx, deps),
		fullName: newField(models.FieldFullName, "Full Name", "Jane Doe", config.MaxNameLength, true),
		email:    newField(models.FieldEmail, "Email", "you@example.com", config.MaxEmailLength, true),
		mobile:   newField(models.FieldMobileNumber, "Mobile Number", "+1 555 010 0000", config.MaxMobileLength, true),
		password: newSecretField(models.FieldPassword, "Password", "At least 8 characters", config.MaxPasswordLength),
		referral: newField(models.FieldReferralCode, "Referral Code", "Optional", config.MaxReferralLength, false),
		spin:     spinner.New(spinner.WithSpinner(spinner.Dot)),
		keys:     signupKeys,
	}
	s.fields = []*field{s.fullName, s.email, s.mobile, s.password, s.referral}
	// the last slot is the terms checkbox
	s.focus = focusRing{size: len(s.fields) + 1}
	return s
}

var signupKeys = func() *HandlerRegistry[*signupScreen] {
	r := NewHandlerRegistry[*signupScreen]()
	r.Bind([]string{"enter"}, "enter", "create account", func(s *signupScreen, _ string) (tea.Cmd, bool) {
		if s.onTerms() {
			s.toggleTerms()
			return nil, true
		}
		return s.submit(), true
	})
	r.Bind([]string{"tab", "down"}, "tab", "next field", func(s *signupScreen, _ string) (tea.Cmd, bool) {
		s.focus.Next()
		return applyFocus(s.fields, s.focus), true
	})
	r.Bind([]string{"shift+tab", "up"}, "", "", func(s *signupScreen, _ string) (tea.Cmd, bool) {
		s.focus.Prev()
		return applyFocus(s.fields, s.focus), true
	})
	r.Bind([]string{" "}, "", "", func(s *signupScreen, _ string) (tea.Cmd, bool) {
		if !s.onTerms() {
			return nil, false
		}
		s.toggleTerms()
		return nil, true
	})
	r.Bind([]string{"ctrl+t"}, "ctrl+t", "accept terms", func(s *signupScreen, _ string) (tea.Cmd, bool) {
		s.toggleTerms()
		return nil, true
	})
	r.Bind([]string{"ctrl+e"}, "ctrl+e", "show password", func(s *signupScreen, _ string) (tea.Cmd, bool) {
		s.password.ToggleReveal()
		return nil, true
	})
	r.Bind([]string{"ctrl+l", "esc"}, "ctrl+l", "sign in", func(s *signupScreen, _ string) (tea.Cmd, bool) {
		return s.emit(flow.LoginRequested{}), true
	})
	return r
}()

func (s *signupScreen) Kind() models.Screen { return models.ScreenSignup }

func (s *signupScreen) Init() tea.Cmd {
	return tea.Batch(applyFocus(s.fields, s.focus), textinput.Blink)
}

func (s *signupScreen) onTerms() bool { return s.focus.index == len(s.fields) }

// toggleTerms flips the checkbox unless a signup call is pending.
func (s *signupScreen) toggleTerms() {
	if s.loading {
		return
	}
	s.terms = !s.terms
	s.errors.Clear(models.FieldTerms)
}

func (s *signupScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, ok := s.keys.Handle(s, msg.String()); ok {
			return cmd
		}
		return s.updateFocused(msg)
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
	return s.updateFocused(msg)
}

func (s *signupScreen) updateFocused(msg tea.Msg) tea.Cmd {
	if s.onTerms() {
		return nil
	}
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

func (s *signupScreen) values() forms.SignupFields {
	return forms.SignupFields{
		FullName:      s.fullName.Value(),
		Email:         s.email.Value(),
		MobileNumber:  s.mobile.Value(),
		Password:      s.password.Value(),
		ReferralCode:  s.referral.Value(),
		AcceptedTerms: s.terms,
	}
}

// normalizeSignup tidies the validated form into the submitted payload.
// The password is passed through untouched.
func normalizeSignup(in forms.SignupFields) models.SignupData {
	data := in.Data()
	data.FullName = cases.Title(language.Und, cases.NoLower).String(strings.Join(strings.Fields(data.FullName), " "))
	data.Email = strings.TrimSpace(data.Email)
	data.MobileNumber = strings.TrimSpace(data.MobileNumber)
	data.ReferralCode = cases.Upper(language.Und).String(strings.TrimSpace(data.ReferralCode))
	return data
}

func (s *signupScreen) submit() tea.Cmd {
	if s.loading {
		return nil
	}
	in := s.values()
	s.errors = forms.ValidateSignup(in)
	s.banner = ""
	if !s.errors.Valid() {
		return nil
	}
	s.loading = true
	s.pending = normalizeSignup(in)
	svc, data := s.deps.Service, s.pending
	return tea.Batch(s.spin.Tick, runErrOp(s.ctx, s.id, auth.OpSignup, func(ctx context.Context) error {
		return svc.Signup(ctx, data)
	}))
}

func (s *signupScreen) finish(res opResult[none]) tea.Cmd {
	s.loading = false
	data := s.pending
	s.pending = models.SignupData{}
	if res.err != nil {
		s.deps.Logger.Warn("signup failed", "reason", auth.ReasonOf(res.err), "email", forms.MaskEmail(data.Email))
		s.banner = auth.Message(res.err)
		return nil
	}
	s.password.Reset()
	return s.emit(flow.SignupSubmitted{Data: data})
}

func (s *signupScreen) View(width int) string {
	w := formWidth(width)
	termsErr := ""
	if msg := s.errors.Get(models.FieldTerms); msg != "" {
		termsErr = CurrentTheme.FieldError.Render(truncate(msg, w))
	}
	return joinVertical(
		renderHeader("RT", "Create Account", "Start your automated trading journey", w),
		"",
		renderBanner(s.banner, w),
		s.fullName.View(w, s.errors.Get(models.FieldFullName)),
		s.email.View(w, s.errors.Get(models.FieldEmail)),
		s.mobile.View(w, s.errors.Get(models.FieldMobileNumber)),
		s.password.View(w, s.errors.Get(models.FieldPassword)),
		s.referral.View(w, ""),
		"",
		renderCheckbox(s.terms, s.onTerms(), "I agree to the Terms of Service and Privacy Policy"),
		termsErr,
		"",
		renderButton("Create Account", s.loading, s.spin.View()),
		"",
		CurrentTheme.Dim.Render("Already have an account? ")+CurrentTheme.Link.Render("Sign In")+CurrentTheme.Dim.Render("  ctrl+l"),
		"",
		renderHelp(s.keys.Help(), w),
	)
}
