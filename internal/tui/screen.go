package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/akyairhashvil/rtauth/internal/auth"
	"github.com/akyairhashvil/rtauth/internal/config"
	"github.com/akyairhashvil/rtauth/internal/database"
	"github.com/akyairhashvil/rtauth/internal/models"
	"github.com/akyairhashvil/rtauth/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/atomic"
)

// Deps are the collaborators shared by every screen. Events and Settings
// may be nil when the journal is disabled.
type Deps struct {
	Service  auth.Service
	Events   database.EventRepository
	Settings database.SettingsRepository
	Logger   *slog.Logger

	SplashDuration    time.Duration
	CountdownStart    int
	CountdownInterval time.Duration
}

func (d Deps) withDefaults() Deps {
	d.Logger = util.OrDefault(d.Logger)
	if d.SplashDuration <= 0 {
		d.SplashDuration = config.SplashDuration
	}
	if d.CountdownStart <= 0 {
		d.CountdownStart = config.ResendCountdownStart
	}
	if d.CountdownInterval <= 0 {
		d.CountdownInterval = config.CountdownInterval
	}
	return d
}

// screen is one mounted step of the flow. It is created when the
// controller moves to it and closed when the controller moves away; a
// closed screen cancels its in-flight calls and ignores late messages.
type screen interface {
	ID() int64
	Kind() models.Screen
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(width int) string
	Close()
}

var lastID = atomic.NewInt64(0)

func nextID() int64 {
	return lastID.Inc()
}

// base carries the lifecycle shared by screens.
type base struct {
	id     int64
	ctx    context.Context
	cancel context.CancelFunc
	deps   Deps
}

func newBase(parent context.Context, deps Deps) base {
	ctx, cancel := context.WithCancel(parent)
	return base{id: nextID(), ctx: ctx, cancel: cancel, deps: deps}
}

func (b *base) ID() int64 { return b.id }

func (b *base) Close() {
	if b.cancel != nil {
		b.cancel()
	}
}

func (b *base) closed() bool {
	return b.ctx.Err() != nil
}

// owns reports whether a result belongs to this mounted screen.
func (b *base) owns(id int64) bool {
	return id == b.id && !b.closed()
}
