package preset

import (
	"context"

	"github.com/vito/prompt/pkg/prompt"
)

// Password asks for a masked line. Input is never added to any history.
type Password struct {
	Title     string
	Validator func(string) error
	Theme     *Theme
}

// Prompt builds the runnable prompt.
func (p Password) Prompt() *prompt.Prompt[string] {
	return Readline{
		Title:     p.Title,
		Mask:      '*',
		Validator: p.Validator,
		Theme:     p.Theme,
	}.Prompt()
}

// Run executes the prompt on the process terminal.
func (p Password) Run(ctx context.Context) (string, error) {
	return p.Prompt().Run(ctx)
}
