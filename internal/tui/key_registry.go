package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler reacts to a key on screen s. It reports false to let the key
// fall through, typically to the focused text input.
type KeyHandler[S any] func(s S, key string) (tea.Cmd, bool)

type KeyBinding[S any] struct {
	Key         string
	Handler     KeyHandler[S]
	Label       string
	Description string
	Priority    int
}

type HandlerRegistry[S any] struct {
	bindings []KeyBinding[S]
}

func NewHandlerRegistry[S any]() *HandlerRegistry[S] {
	return &HandlerRegistry[S]{}
}

func (r *HandlerRegistry[S]) Register(b KeyBinding[S]) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

// Bind registers handler for every key; only the first key is shown in
// help, labelled with label.
func (r *HandlerRegistry[S]) Bind(keys []string, label, description string, handler KeyHandler[S]) {
	for i, key := range keys {
		b := KeyBinding[S]{Key: key, Handler: handler}
		if i == 0 {
			b.Label = label
			b.Description = description
		}
		r.Register(b)
	}
}

func (r *HandlerRegistry[S]) Handle(s S, key string) (tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Key != key {
			continue
		}
		if cmd, handled := b.Handler(s, key); handled {
			return cmd, true
		}
	}
	return nil, false
}

// Help renders the described bindings in registration priority order.
func (r *HandlerRegistry[S]) Help() string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.bindings {
		if b.Description == "" || seen[b.Description] {
			continue
		}
		seen[b.Description] = true
		label := b.Label
		if label == "" {
			label = b.Key
		}
		parts = append(parts, label+" "+b.Description)
	}
	return strings.Join(parts, " • ")
}
