package preset

import (
	"context"

	"github.com/vito/prompt/pkg/prompt"
	"github.com/vito/prompt/pkg/widget"
)

// TreeSelect browses a tree and returns the path of labels from the root
// to the node under the cursor.
type TreeSelect struct {
	Title string
	Roots []*widget.TreeNode
	Lines int
	Theme *Theme
}

// Prompt builds the runnable prompt.
func (t TreeSelect) Prompt() *prompt.Prompt[[]string] {
	th := themeOrDefault(t.Theme)

	title := widget.NewText(t.Title)
	title.Style = th.Title

	tr := widget.NewTree(t.Roots...)
	tr.Lines = t.Lines
	tr.ActiveStyle = th.Active
	tr.InactiveStyle = th.Inactive

	st := prompt.NewState(tr)

	return &prompt.Prompt[[]string]{
		Components: []prompt.Component{title, st},
		Evaluator:  quitOnEnter(st),
		Output: func([]prompt.Component) ([]string, error) {
			return st.After.SelectedPath(), nil
		},
	}
}

// Run executes the prompt on the process terminal.
func (t TreeSelect) Run(ctx context.Context) ([]string, error) {
	return t.Prompt().Run(ctx)
}

// JSONView browses a JSON document read-only; Enter leaves the viewer and
// returns the dotted path of the row the cursor was on.
type JSONView struct {
	Title string
	Raw   string
	Lines int
	Theme *Theme
}

// Prompt builds the runnable prompt. The document is parsed eagerly so an
// invalid payload fails before the terminal is touched.
func (j JSONView) Prompt() (*prompt.Prompt[string], error) {
	th := themeOrDefault(j.Theme)

	title := widget.NewText(j.Title)
	title.Style = th.Title

	v, err := widget.NewJSONViewer(j.Raw)
	if err != nil {
		return nil, err
	}
	v.Lines = j.Lines
	v.ActiveStyle = th.Active

	st := prompt.NewState(v)

	return &prompt.Prompt[string]{
		Components: []prompt.Component{title, st},
		Evaluator:  quitOnEnter(st),
		Output: func([]prompt.Component) (string, error) {
			return st.After.SelectedPath(), nil
		},
	}, nil
}

// Run executes the prompt on the process terminal.
func (j JSONView) Run(ctx context.Context) (string, error) {
	p, err := j.Prompt()
	if err != nil {
		return "", err
	}
	return p.Run(ctx)
}
