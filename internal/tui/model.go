package tui

import (
	"context"
	"fmt"

	"github.com/akyairhashvil/rtauth/internal/config"
	"github.com/akyairhashvil/rtauth/internal/flow"
	"github.com/akyairhashvil/rtauth/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

// MainModel is the root bubbletea model. It owns the navigation controller
// and mounts the screen the controller points at.
type MainModel struct {
	ctx        context.Context
	deps       Deps
	flow       *flow.Controller
	active     screen
	signedInAs string
	width      int // Store window dimensions
	height     int
}

func NewMainModel(ctx context.Context, deps Deps) MainModel {
	deps = deps.withDefaults()
	m := MainModel{
		ctx:  ctx,
		deps: deps,
		flow: flow.NewController(deps.Logger),
	}
	m.active = m.mount(m.flow.Current())
	return m
}

func (m MainModel) Init() tea.Cmd {
	return m.active.Init()
}

// Current is the screen being rendered.
func (m MainModel) Current() models.Screen {
	return m.active.Kind()
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.active.Close()
			return m, tea.Quit
		case "ctrl+o":
			return m, m.cycleTheme()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case screenEvent:
		if msg.id != m.active.ID() {
			m.deps.Logger.Debug("dropped event from inactive screen", "event", fmt.Sprintf("%T", msg.ev), "screen", m.active.Kind().String())
			return m, nil
		}
		return m.dispatch(msg.ev)
	}
	return m, m.active.Update(msg)
}

// dispatch hands ev to the controller and swaps screens when it moved.
func (m MainModel) dispatch(ev flow.Event) (tea.Model, tea.Cmd) {
	switch ev := ev.(type) {
	case flow.LoginSubmitted:
		m.signedInAs = ev.Email
	case flow.EmailVerified:
		m.signedInAs = m.flow.PendingEmail()
	}
	next := m.flow.Dispatch(ev)
	if next == m.active.Kind() {
		return m, nil
	}
	m.active.Close()
	m.active = m.mount(next)
	return m, m.active.Init()
}

func (m MainModel) mount(s models.Screen) screen {
	switch flow.Resolve(s) {
	case models.ScreenLogin:
		return newLoginScreen(m.ctx, m.deps)
	case models.ScreenSignup:
		return newSignupScreen(m.ctx, m.deps)
	case models.ScreenEmailVerification:
		return newVerifyScreen(m.ctx, m.deps, m.flow.PendingEmail())
	case models.ScreenForgotPassword:
		return newForgotScreen(m.ctx, m.deps)
	case models.ScreenDashboard:
		return newDashboardScreen(m.ctx, m.deps, m.signedInAs)
	default:
		return newSplashScreen(m.ctx, m.deps)
	}
}

// cycleTheme switches to the next theme and stores the choice.
func (m MainModel) cycleTheme() tea.Cmd {
	next := config.ThemeNames[0]
	for i, name := range config.ThemeNames {
		if name == ThemeKey() {
			next = config.ThemeNames[(i+1)%len(config.ThemeNames)]
			break
		}
	}
	SetTheme(next)
	settings, log, ctx := m.deps.Settings, m.deps.Logger, m.ctx
	if settings == nil {
		return nil
	}
	return func() tea.Msg {
		if err := settings.SetSetting(ctx, config.SettingTheme, next); err != nil {
			log.Warn("save theme", "theme", next, "error", err)
		}
		return nil
	}
}

func (m MainModel) View() string {
	return CurrentTheme.Base.Render(placeCenter(m.width, m.active.View(m.width)))
}
