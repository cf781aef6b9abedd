package preset

import (
	"context"

	pkgerrors "github.com/pkg/errors"

	"github.com/vito/prompt/pkg/event"
	"github.com/vito/prompt/pkg/prompt"
	"github.com/vito/prompt/pkg/widget"
)

// Select picks one item from a list. Enter submits the item under the
// cursor.
type Select struct {
	Title string
	Items []string
	Lines int
	Theme *Theme
}

// Prompt builds the runnable prompt.
func (s Select) Prompt() *prompt.Prompt[string] {
	th := themeOrDefault(s.Theme)

	title := widget.NewText(s.Title)
	title.Style = th.Title

	lb := widget.NewListbox(s.Items)
	lb.Lines = s.Lines
	lb.ActiveStyle = th.Active
	lb.InactiveStyle = th.Inactive

	st := prompt.NewState(lb)

	return &prompt.Prompt[string]{
		Components: []prompt.Component{title, st},
		Evaluator:  quitOnEnter(st),
		Output: func([]prompt.Component) (string, error) {
			if len(st.After.Items) == 0 {
				return "", pkgerrors.New("nothing to select")
			}
			return st.After.Selected(), nil
		},
	}
}

// Run executes the prompt on the process terminal.
func (s Select) Run(ctx context.Context) (string, error) {
	return s.Prompt().Run(ctx)
}

// MultiSelect picks any number of items from a list: space toggles, Enter
// submits the marked set.
type MultiSelect struct {
	Title string
	Items []string
	Lines int
	Theme *Theme
}

// Prompt builds the runnable prompt.
func (m MultiSelect) Prompt() *prompt.Prompt[[]string] {
	th := themeOrDefault(m.Theme)

	title := widget.NewText(m.Title)
	title.Style = th.Title

	cb := widget.NewCheckbox(m.Items)
	cb.Lines = m.Lines
	cb.ActiveStyle = th.Active
	cb.InactiveStyle = th.Inactive

	st := prompt.NewState(cb)

	return &prompt.Prompt[[]string]{
		Components: []prompt.Component{title, st},
		Evaluator:  quitOnEnter(st),
		Output: func([]prompt.Component) ([]string, error) {
			return st.After.Selected(), nil
		},
	}
}

// Run executes the prompt on the process terminal.
func (m MultiSelect) Run(ctx context.Context) ([]string, error) {
	return m.Prompt().Run(ctx)
}

// quitOnEnter forwards every event to the component and quits on a plain
// Enter press.
func quitOnEnter(c prompt.Component) prompt.Evaluator {
	return func(ev event.Event, _ []prompt.Component) (prompt.Signal, error) {
		if ev.Is(event.KeyEnter) {
			return prompt.Quit, nil
		}
		c.HandleEvent(ev)
		return prompt.Continue, nil
	}
}
