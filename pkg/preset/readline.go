package preset

import (
	"context"

	"github.com/vito/prompt/pkg/event"
	"github.com/vito/prompt/pkg/history"
	"github.com/vito/prompt/pkg/prompt"
	"github.com/vito/prompt/pkg/suggest"
	"github.com/vito/prompt/pkg/widget"
)

// DefaultPrefix marks the editable line of a readline prompt.
const DefaultPrefix = "❯❯ "

// Readline asks for one line of text. Enter submits (running the
// validator first when one is set), Up/Down browse history, Tab cycles
// completions.
type Readline struct {
	Title  string
	Prefix string
	Mask   rune
	Lines  int

	// History carries entries across Run calls when the caller keeps it;
	// nil gets a fresh, prompt-local history.
	History     *history.History
	Suggestions []string

	// Validator rejects a submission by returning an error; its message
	// is shown below the editor and the prompt keeps running.
	Validator func(string) error

	Theme *Theme
}

// Prompt builds the runnable prompt. Most callers use Run; Prompt is the
// hook for setting In/Out/Logger or driving headlessly.
func (r Readline) Prompt() *prompt.Prompt[string] {
	th := themeOrDefault(r.Theme)

	title := widget.NewText(r.Title)
	title.Style = th.Title
	errMsg := widget.NewText("")
	errMsg.Style = th.Error

	prefix := r.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	ed := widget.NewTextEditor(prefix)
	ed.PrefixStyle = th.Prefix
	ed.TextStyle = th.Text
	ed.CursorStyle = th.Cursor
	ed.Mask = r.Mask
	ed.Lines = r.Lines
	ed.History = r.History
	if ed.History == nil {
		ed.History = history.New()
	}
	if len(r.Suggestions) > 0 {
		ed.Suggest = suggest.New(r.Suggestions...)
	}

	st := prompt.NewState(ed)

	return &prompt.Prompt[string]{
		Components: []prompt.Component{title, st, errMsg},
		Evaluator: func(ev event.Event, _ []prompt.Component) (prompt.Signal, error) {
			if ev.Is(event.KeyEnter) {
				text := st.After.Text()
				if r.Validator != nil {
					if err := r.Validator(text); err != nil {
						errMsg.Body = err.Error()
						return prompt.Continue, nil
					}
				}
				errMsg.Body = ""
				// Masked input stays out of history.
				if st.After.Mask == 0 {
					st.After.History.Insert(text)
				}
				return prompt.Quit, nil
			}
			errMsg.Body = ""
			st.HandleEvent(ev)
			return prompt.Continue, nil
		},
		Output: func([]prompt.Component) (string, error) {
			return st.After.Text(), nil
		},
	}
}

// Run executes the prompt on the process terminal.
func (r Readline) Run(ctx context.Context) (string, error) {
	return r.Prompt().Run(ctx)
}
