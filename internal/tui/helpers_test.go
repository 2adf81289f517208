package tui

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/akyairhashvil/rtauth/internal/auth/mock_auth"
	"github.com/akyairhashvil/rtauth/internal/database"
	"github.com/akyairhashvil/rtauth/internal/flow"
	"github.com/akyairhashvil/rtauth/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/mock/gomock"
)

const (
	cmdTimeout   = 50 * time.Millisecond
	maxPumpSteps = 500
)

func testDeps(t *testing.T) (Deps, *mock_auth.MockService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mock_auth.NewMockService(ctrl)
	return Deps{
		Service:           svc,
		Logger:            util.DiscardLogger(),
		SplashDuration:    10 * time.Millisecond,
		CountdownStart:    3,
		CountdownInterval: time.Millisecond,
	}.withDefaults(), svc
}

func setupJournal(t *testing.T) *database.Database {
	t.Helper()
	db, err := database.Open(context.Background(), filepath.Join(t.TempDir(), "tui.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

func key(k string) tea.KeyMsg {
	special := map[string]tea.KeyType{
		"enter":     tea.KeyEnter,
		"tab":       tea.KeyTab,
		"esc":       tea.KeyEsc,
		"up":        tea.KeyUp,
		"down":      tea.KeyDown,
		"backspace": tea.KeyBackspace,
		"ctrl+b":    tea.KeyCtrlB,
		"ctrl+c":    tea.KeyCtrlC,
		"ctrl+e":    tea.KeyCtrlE,
		"ctrl+l":    tea.KeyCtrlL,
		"ctrl+n":    tea.KeyCtrlN,
		"ctrl+o":    tea.KeyCtrlO,
		"ctrl+r":    tea.KeyCtrlR,
		"ctrl+t":    tea.KeyCtrlT,
	}
	if kt, ok := special[k]; ok {
		return tea.KeyMsg{Type: kt}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// typed turns text into one key message per rune.
func typed(text string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(text))
	for _, r := range text {
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return msgs
}

// drain runs cmd and returns the messages it produces within cmdTimeout per
// command. Long timers such as cursor blinks are dropped.
func drain(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	out := make(chan tea.Msg, 1)
	go func() { out <- cmd() }()
	select {
	case msg := <-out:
		switch msg := msg.(type) {
		case nil:
			return nil
		case tea.BatchMsg:
			var msgs []tea.Msg
			for _, c := range msg {
				msgs = append(msgs, drain(t, c)...)
			}
			return msgs
		default:
			return []tea.Msg{msg}
		}
	case <-time.After(cmdTimeout):
		return nil
	}
}

// pump feeds msgs to m and keeps feeding whatever the resulting commands
// produce until nothing is left.
func pump(t *testing.T, m MainModel, msgs ...tea.Msg) MainModel {
	t.Helper()
	queue := append([]tea.Msg(nil), msgs...)
	for steps := 0; len(queue) > 0; steps++ {
		if steps > maxPumpSteps {
			t.Fatalf("pump did not settle after %d messages", maxPumpSteps)
		}
		msg := queue[0]
		queue = queue[1:]
		if _, ok := msg.(tea.QuitMsg); ok {
			continue
		}
		model, cmd := m.Update(msg)
		m = model.(MainModel)
		queue = append(queue, drain(t, cmd)...)
	}
	return m
}

// send feeds every message to m in order, settling after each one.
func send(t *testing.T, m MainModel, msgs ...tea.Msg) MainModel {
	t.Helper()
	for _, msg := range msgs {
		m = pump(t, m, msg)
	}
	return m
}

// flowEvents unwraps the flow events among msgs, dropping the screen tag.
func flowEvents(msgs []tea.Msg) []flow.Event {
	var out []flow.Event
	for _, msg := range msgs {
		if ev, ok := msg.(screenEvent); ok {
			out = append(out, ev.ev)
		}
	}
	return out
}

// fromActive tags ev as raised by the screen m is showing.
func fromActive(m MainModel, ev flow.Event) tea.Msg {
	return screenEvent{id: m.active.ID(), ev: ev}
}

func hasQuit(msgs []tea.Msg) bool {
	for _, msg := range msgs {
		if _, ok := msg.(tea.QuitMsg); ok {
			return true
		}
	}
	return false
}
