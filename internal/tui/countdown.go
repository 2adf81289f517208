package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type countdownTickMsg struct {
	id  int64
	tag int
}

// Countdown gates the resend action. It counts down from start once per
// interval; at zero it goes idle and CanResend reports true until the
// next Start. Ticks from an earlier Start, or after Stop, are ignored.
type Countdown struct {
	id        int64
	tag       int
	start     int
	remaining int
	interval  time.Duration
	running   bool
}

func NewCountdown(start int, interval time.Duration) Countdown {
	return Countdown{id: nextID(), start: start, remaining: start, interval: interval}
}

func (c Countdown) Remaining() int { return c.remaining }

func (c Countdown) Running() bool { return c.running }

func (c Countdown) CanResend() bool { return !c.running && c.remaining <= 0 }

// Start enters counting at the full duration.
func (c Countdown) Start() (Countdown, tea.Cmd) {
	c.tag++
	c.remaining = c.start
	c.running = c.start > 0
	if !c.running {
		c.remaining = 0
		return c, nil
	}
	return c, c.tick()
}

// Stop cancels pending ticks.
func (c Countdown) Stop() Countdown {
	c.tag++
	c.running = false
	return c
}

func (c Countdown) Update(msg tea.Msg) (Countdown, tea.Cmd) {
	m, ok := msg.(countdownTickMsg)
	if !ok || m.id != c.id || m.tag != c.tag || !c.running {
		return c, nil
	}
	c.remaining--
	if c.remaining <= 0 {
		c.remaining = 0
		c.running = false
		return c, nil
	}
	return c, c.tick()
}

// Elapsed is the completed fraction of the current count.
func (c Countdown) Elapsed() float64 {
	if c.start <= 0 {
		return 1
	}
	return float64(c.start-c.remaining) / float64(c.start)
}

func (c Countdown) tick() tea.Cmd {
	id, tag := c.id, c.tag
	return tea.Tick(c.interval, func(time.Time) tea.Msg {
		return countdownTickMsg{id: id, tag: tag}
	})
}
