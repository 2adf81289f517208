package tui

import (
	"context"

	"github.com/akyairhashvil/rtauth/internal/auth"
	"github.com/akyairhashvil/rtauth/internal/flow"
	tea "github.com/charmbracelet/bubbletea"
)

// opResult is the outcome of one backend call issued by screen id.
type opResult[T any] struct {
	id    int64
	op    auth.Op
	value T
	err   error
}

type none struct{}

// runOp runs fn off the event loop and reports back with an opResult.
func runOp[T any](ctx context.Context, id int64, op auth.Op, fn func(context.Context) (T, error)) tea.Cmd {
	return func() tea.Msg {
		v, err := fn(ctx)
		return opResult[T]{id: id, op: op, value: v, err: err}
	}
}

func runErrOp(ctx context.Context, id int64, op auth.Op, fn func(context.Context) error) tea.Cmd {
	return runOp(ctx, id, op, func(ctx context.Context) (none, error) {
		return none{}, fn(ctx)
	})
}

// screenEvent is a flow event tagged with the screen that raised it. The
// root model drops it unless that screen is still the active one.
type screenEvent struct {
	id int64
	ev flow.Event
}

// emit reports ev to the controller on behalf of this screen.
func (b *base) emit(ev flow.Event) tea.Cmd {
	id := b.id
	return func() tea.Msg { return screenEvent{id: id, ev: ev} }
}
