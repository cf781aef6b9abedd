package prompt

import (
	"github.com/vito/prompt/pkg/event"
	"github.com/vito/prompt/pkg/pane"
)

// Component is anything the driver can render and feed input to. A prompt
// is an ordered stack of components; each contributes one pane per frame.
type Component interface {
	// MakePane renders the component's current state into a pane laid out
	// for the given terminal width.
	MakePane(width int) pane.Pane
	// HandleEvent applies a single input event to the component's state.
	HandleEvent(ev event.Event)
	// Postrun resets transient view state (scroll offsets, selections)
	// after the prompt loop ends, so the final frame and any reuse of the
	// component start from a clean position.
	Postrun()
}

// Widget is a component that can deep-copy itself. Widgets are the leaves
// wrapped by State; the type parameter keeps Clone's result typed.
type Widget[C any] interface {
	Component
	Clone() C
}

// State wraps a widget with the snapshots evaluators and output extractors
// compare against: the state at prompt start, before the latest event, and
// after it.
type State[C Widget[C]] struct {
	Init   C
	Before C
	After  C
}

// NewState wraps w, snapshotting its initial state.
func NewState[C Widget[C]](w C) *State[C] {
	return &State[C]{Init: w.Clone(), Before: w.Clone(), After: w}
}

func (s *State[C]) MakePane(width int) pane.Pane { return s.After.MakePane(width) }

// HandleEvent snapshots Before, then lets the widget mutate After.
func (s *State[C]) HandleEvent(ev event.Event) {
	s.Before = s.After.Clone()
	s.After.HandleEvent(ev)
}

func (s *State[C]) Postrun() { s.After.Postrun() }
