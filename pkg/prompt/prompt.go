// Package prompt runs the interactive loop: it owns the terminal for the
// duration of a prompt, feeds decoded input events to an evaluator over a
// stack of components, redraws after every event, and extracts a typed
// result once the evaluator signals completion.
package prompt

import (
	"context"
	"log/slog"
	"os"

	pkgerrors "github.com/pkg/errors"

	"github.com/vito/prompt/pkg/engine"
	"github.com/vito/prompt/pkg/event"
	"github.com/vito/prompt/pkg/pane"
	"github.com/vito/prompt/pkg/terminal"
)

// ErrInterrupted is returned when the user cancels the prompt with Ctrl+C.
var ErrInterrupted = pkgerrors.New("prompt interrupted")

// Signal tells the driver whether to keep looping.
type Signal int

const (
	Continue Signal = iota
	Quit
)

// Evaluator routes one event to the component stack and decides whether
// the prompt is finished.
type Evaluator func(ev event.Event, components []Component) (Signal, error)

// Output extracts the prompt's final value from the component stack after
// the loop ends.
type Output[T any] func(components []Component) (T, error)

// Prompt drives a component stack to produce a T.
type Prompt[T any] struct {
	Components []Component
	Evaluator  Evaluator
	Output     Output[T]

	// In and Out default to os.Stdin and os.Stderr. Rendering goes to
	// stderr so the prompt UI never mixes with the program's stdout.
	In  *os.File
	Out *os.File

	// Logger, when set, records draw stats and recoverable conditions.
	Logger *slog.Logger
}

// Run takes over the terminal, executes the prompt loop, and restores the
// terminal on every exit path.
func (p *Prompt[T]) Run(ctx context.Context) (T, error) {
	var zero T

	in, out := p.In, p.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stderr
	}

	raw, err := engine.EnableRawMode(in)
	if err != nil {
		return zero, pkgerrors.Wrap(err, "run prompt")
	}
	defer raw.Restore()

	eng := engine.New(out)
	row, _, err := eng.CursorPosition(in)
	if err != nil {
		return zero, pkgerrors.Wrap(err, "run prompt")
	}

	sess := terminal.StartSession(eng, row)
	sess.SetLogger(p.Logger)

	if err := eng.HideCursor(); err != nil {
		return zero, pkgerrors.Wrap(err, "run prompt")
	}
	defer func() {
		sess.Finish()
		eng.ShowCursor()
	}()

	return p.RunWith(ctx, event.NewReader(in), eng, sess)
}

// RunWith is the driver loop over an explicit event source and render
// session. Run wires it to the process terminal; tests and headless
// drivers supply scripted readers and in-memory engines instead.
func (p *Prompt[T]) RunWith(ctx context.Context, events *event.Reader, eng *engine.Engine, sess *terminal.Session) (T, error) {
	var zero T

	if err := p.draw(eng, sess); err != nil {
		return zero, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		ev, err := events.Next()
		if err != nil {
			return zero, pkgerrors.Wrap(err, "read input")
		}
		if ev.IsCtrl('c') {
			return zero, ErrInterrupted
		}

		sig, err := p.Evaluator(ev, p.Components)
		if err != nil {
			return zero, err
		}

		// The quit frame is drawn here too; what the evaluator left on the
		// components is the last thing the user sees.
		if err := p.draw(eng, sess); err != nil {
			return zero, err
		}
		if sig == Quit {
			break
		}
	}

	// Extract the result before Postrun resets cursors and scroll state.
	out, err := p.Output(p.Components)
	if err != nil {
		return zero, err
	}

	for _, c := range p.Components {
		c.Postrun()
	}
	return out, nil
}

// draw renders every non-empty pane at the current terminal width. An
// ErrScreenTooSmall frame is skipped rather than aborting the prompt; the
// next event (or a resize) gets another chance.
func (p *Prompt[T]) draw(eng *engine.Engine, sess *terminal.Session) error {
	width, _, err := eng.Size()
	if err != nil {
		return pkgerrors.Wrap(err, "draw")
	}

	panes := make([]pane.Pane, 0, len(p.Components))
	for _, c := range p.Components {
		pn := c.MakePane(width)
		if !pn.IsEmpty() {
			panes = append(panes, pn)
		}
	}

	if err := sess.Draw(panes); err != nil {
		if pkgerrors.Is(err, terminal.ErrScreenTooSmall) {
			if p.Logger != nil {
				p.Logger.Warn("frame skipped", "reason", err)
			}
			return nil
		}
		return err
	}
	return nil
}
