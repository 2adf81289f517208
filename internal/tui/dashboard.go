package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/rtauth/internal/auth"
	"github.com/akyairhashvil/rtauth/internal/config"
	"github.com/akyairhashvil/rtauth/internal/database"
	"github.com/akyairhashvil/rtauth/internal/forms"
	"github.com/akyairhashvil/rtauth/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

// opStats counts the journaled calls of one operation.
type opStats struct {
	op     auth.Op
	total  int
	failed int
}

// journalSummary is what the dashboard shows from the journal.
type journalSummary struct {
	recent    []models.AuthEvent
	stats     []opStats
	prevLogin *models.AuthEvent
}

type eventsLoadedMsg struct {
	id      int64
	summary journalSummary
	err     error
}

// loadSummary reads the recent calls, per-operation counts and the sign-in
// before the current one.
func loadSummary(ctx context.Context, repo database.EventRepository) (journalSummary, error) {
	var sum journalSummary
	var err error
	if sum.recent, err = repo.RecentEvents(ctx, config.RecentEventLimit); err != nil {
		return sum, err
	}
	for _, op := range auth.Ops {
		st := opStats{op: op}
		if st.total, err = repo.CountEvents(ctx, string(op), ""); err != nil {
			return sum, err
		}
		if st.total == 0 {
			continue
		}
		if st.failed, err = repo.CountEvents(ctx, string(op), models.OutcomeFailure); err != nil {
			return sum, err
		}
		sum.stats = append(sum.stats, st)
	}
	logins, err := repo.EventsByOp(ctx, string(auth.OpLogin), 2)
	if err != nil {
		return sum, err
	}
	if len(logins) == 2 {
		sum.prevLogin = &logins[1]
	}
	return sum, nil
}

// dashboardScreen stands in for the trading application reached after a
// successful login or verification.
type dashboardScreen struct {
	base
	email   string
	summary journalSummary
	loaded  bool
	err     error
}

func newDashboardScreen(ctx context.Context, deps Deps, email string) *dashboardScreen {
	return &dashboardScreen{base: newBase(ctx, deps), email: email}
}

func (s *dashboardScreen) Kind() models.Screen { return models.ScreenDashboard }

func (s *dashboardScreen) Init() tea.Cmd {
	repo := s.deps.Events
	if repo == nil {
		s.loaded = true
		return nil
	}
	ctx, id := s.ctx, s.id
	return func() tea.Msg {
		sum, err := loadSummary(ctx, repo)
		return eventsLoadedMsg{id: id, summary: sum, err: err}
	}
}

func (s *dashboardScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" {
			return tea.Quit
		}
	case eventsLoadedMsg:
		if !s.owns(msg.id) {
			return nil
		}
		s.loaded = true
		s.summary, s.err = msg.summary, msg.err
		if msg.err != nil {
			s.deps.Logger.Warn("load recent activity", "error", msg.err)
		}
	}
	return nil
}

func (s *dashboardScreen) View(width int) string {
	w := formWidth(width)
	who := "Signed in"
	if s.email != "" {
		who = "Signed in as " + forms.MaskEmail(s.email)
	}
	return joinVertical(
		renderHeader("RT", "Dashboard", "", w),
		CurrentTheme.Accent.Render(truncate(who, w)),
		"",
		s.previousLogin(w),
		"",
		CurrentTheme.Label.Render("Recent activity"),
		s.activity(w),
		"",
		CurrentTheme.Label.Render("Calls"),
		s.stats(w),
		"",
		renderHelp("q quit • ctrl+o theme", w),
	)
}

func (s *dashboardScreen) activity(width int) string {
	switch {
	case s.deps.Events == nil:
		return CurrentTheme.Dim.Render("Activity journal is disabled.")
	case !s.loaded:
		return CurrentTheme.Dim.Render("Loading…")
	case s.err != nil:
		return CurrentTheme.FieldError.Render("Could not load activity.")
	case len(s.summary.recent) == 0:
		return CurrentTheme.Dim.Render("No activity yet.")
	}
	now := time.Now()
	lines := make([]string, 0, len(s.summary.recent))
	for _, ev := range s.summary.recent {
		mark := CurrentTheme.Bull.Render("▲")
		if ev.Outcome != models.OutcomeSuccess {
			mark = CurrentTheme.Bear.Render("▼")
		}
		line := fmt.Sprintf("%-9s %s %s", FormatAgo(now, ev.CreatedAt), ev.Op, ev.MaskedEmail)
		lines = append(lines, mark+" "+truncate(line, width-2))
	}
	return strings.Join(lines, "\n")
}

func (s *dashboardScreen) previousLogin(width int) string {
	prev := s.summary.prevLogin
	if prev == nil {
		return ""
	}
	line := "Previous sign-in " + FormatAgo(time.Now(), prev.CreatedAt)
	if prev.Outcome != models.OutcomeSuccess {
		line += " (" + prev.Outcome + ")"
	}
	return CurrentTheme.Dim.Render(truncate(line, width))
}

// stats lists the call and failure counts per operation.
func (s *dashboardScreen) stats(width int) string {
	if !s.loaded || s.err != nil || len(s.summary.stats) == 0 {
		return CurrentTheme.Dim.Render("-")
	}
	lines := make([]string, 0, len(s.summary.stats))
	for _, st := range s.summary.stats {
		line := fmt.Sprintf("%-22s %3d", st.op, st.total)
		if st.failed > 0 {
			line += fmt.Sprintf(" · %d failed", st.failed)
		}
		lines = append(lines, truncate(line, width))
	}
	return strings.Join(lines, "\n")
}
