package tui

import (
	"context"
	"strings"
	"time"

	"github.com/akyairhashvil/rtauth/internal/config"
	"github.com/akyairhashvil/rtauth/internal/flow"
	"github.com/akyairhashvil/rtauth/internal/models"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

const splashFrame = 100 * time.Millisecond

type splashTickMsg struct {
	id int64
	at time.Time
}

type splashScreen struct {
	base
	started time.Time
	elapsed time.Duration
	done    bool
	bar     progress.Model
}

func newSplashScreen(ctx context.Context, deps Deps) *splashScreen {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = config.SplashBarWidth
	return &splashScreen{base: newBase(ctx, deps), bar: bar}
}

func (s *splashScreen) Kind() models.Screen { return models.ScreenSplash }

func (s *splashScreen) Init() tea.Cmd {
	s.started = time.Now()
	return s.tick()
}

func (s *splashScreen) tick() tea.Cmd {
	id := s.id
	return tea.Tick(splashFrame, func(t time.Time) tea.Msg {
		return splashTickMsg{id: id, at: t}
	})
}

func (s *splashScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return s.complete()
	case splashTickMsg:
		if !s.owns(msg.id) || s.done {
			return nil
		}
		s.elapsed = msg.at.Sub(s.started)
		if s.elapsed >= s.deps.SplashDuration {
			return s.complete()
		}
		return s.tick()
	}
	return nil
}

// complete emits SplashCompleted once, whether the animation ran out or a
// key skipped it.
func (s *splashScreen) complete() tea.Cmd {
	if s.done || s.closed() {
		return nil
	}
	s.done = true
	return s.emit(flow.SplashCompleted{})
}

func (s *splashScreen) progress() float64 {
	if s.deps.SplashDuration <= 0 {
		return 1
	}
	p := float64(s.elapsed) / float64(s.deps.SplashDuration)
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}

func (s *splashScreen) View(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(CurrentTheme.Logo.Render("RT"))
	b.WriteString("\n\n")
	b.WriteString(CurrentTheme.Title.Render(config.BrandName))
	b.WriteString("\n\n")
	b.WriteString(CurrentTheme.Subtitle.Render("Automated Crypto Trading."))
	b.WriteString("\n")
	b.WriteString(CurrentTheme.Accent.Render("Smarter. Faster."))
	b.WriteString("\n\n")
	b.WriteString(s.bar.ViewAs(s.progress()))
	b.WriteString("\n\n")
	b.WriteString(renderHelp("press any key to skip", width))
	b.WriteString("\n")
	b.WriteString(CurrentTheme.Dim.Render(versionLabel()))
	return b.String()
}
