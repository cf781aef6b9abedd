package terminal

import (
	"bytes"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"

	"github.com/vito/prompt/pkg/engine"
	"github.com/vito/prompt/pkg/grapheme"
	"github.com/vito/prompt/pkg/pane"
)

func textPane(lines ...string) pane.Pane {
	rows := make([]grapheme.StyledGraphemes, len(lines))
	for i, l := range lines {
		rows[i] = grapheme.Styled(l, lipgloss.NewStyle())
	}
	return pane.New(rows, 0, 0)
}

// testSession builds a session over an in-memory terminal of the given
// size, with the frame origin at startRow.
func testSession(cols, rows, startRow int) (*Session, *bytes.Buffer) {
	var buf bytes.Buffer
	eng := engine.NewWithSize(&buf, func() (int, int, error) { return cols, rows, nil })
	return StartSession(eng, startRow), &buf
}

func TestFirstFrame(t *testing.T) {
	sess, buf := testSession(80, 24, 0)
	require.NoError(t, sess.Draw([]pane.Pane{textPane("hello", "world")}))

	assert.Equal(t, "hello\nworld", visibleLines(buf.String()))
	golden.Assert(t, buf.String(), "first_frame.golden")
}

func TestFirstPaintSnapsToColumnZero(t *testing.T) {
	// The session may begin with the cursor mid-line, e.g. after output
	// printed without a trailing newline.
	sess, buf := testSession(80, 24, 3)
	require.NoError(t, sess.Draw([]pane.Pane{textPane("hello")}))

	assert.True(t, strings.HasPrefix(buf.String(), "\r"))
}

func TestUnchangedFrameWritesNothing(t *testing.T) {
	sess, buf := testSession(80, 24, 0)
	panes := []pane.Pane{textPane("hello", "world")}
	require.NoError(t, sess.Draw(panes))

	buf.Reset()
	require.NoError(t, sess.Draw(panes))
	assert.Empty(t, buf.String())
}

func TestChangedRowRepaintedInPlace(t *testing.T) {
	sess, buf := testSession(80, 24, 0)
	require.NoError(t, sess.Draw([]pane.Pane{textPane("one", "two", "three")}))

	buf.Reset()
	require.NoError(t, sess.Draw([]pane.Pane{textPane("one", "TWO", "three")}))

	// Up from the parked bottom row, rewrite, back down.
	assert.Equal(t, "\x1b[1A\r\x1b[2KTWO\x1b[1B\r", buf.String())
}

func TestShrinkClearsStaleRows(t *testing.T) {
	sess, buf := testSession(80, 24, 0)
	require.NoError(t, sess.Draw([]pane.Pane{textPane("one", "two", "three")}))

	buf.Reset()
	require.NoError(t, sess.Draw([]pane.Pane{textPane("one", "two")}))

	assert.Contains(t, buf.String(), "\x1b[2K")
	assert.Empty(t, visibleLines(buf.String()))
	assert.Equal(t, 2, sess.Rows())
}

func TestWidthChangeForcesFullRepaint(t *testing.T) {
	cols := 80
	var buf bytes.Buffer
	eng := engine.NewWithSize(&buf, func() (int, int, error) { return cols, 24, nil })
	sess := StartSession(eng, 0)

	panes := []pane.Pane{textPane("hello", "world")}
	require.NoError(t, sess.Draw(panes))

	cols = 40
	buf.Reset()
	require.NoError(t, sess.Draw(panes))

	out := ansi.Strip(buf.String())
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "world")
}

func TestScreenTooSmall(t *testing.T) {
	sess, _ := testSession(80, 2, 0)
	require.NoError(t, sess.Draw([]pane.Pane{textPane("one", "two")}))

	err := sess.Draw([]pane.Pane{textPane("one", "two", "three")})
	require.ErrorIs(t, err, ErrScreenTooSmall)

	// The failed cycle leaves the previous frame intact.
	assert.Equal(t, 2, sess.Rows())
}

func TestScrollsWhenAppendingAtBottom(t *testing.T) {
	// Frame origin on the terminal's last row: every appended line must
	// scroll the content up rather than run off the screen.
	sess, buf := testSession(80, 5, 4)
	require.NoError(t, sess.Draw([]pane.Pane{textPane("one", "two", "three")}))

	assert.Equal(t, 2, countOccurrences(buf.String(), "\x1b[1S"))
}

func TestFinishMovesBelowFrame(t *testing.T) {
	sess, buf := testSession(80, 24, 0)
	require.NoError(t, sess.Draw([]pane.Pane{textPane("done")}))

	buf.Reset()
	require.NoError(t, sess.Finish())
	assert.Equal(t, "\x1b[1E", buf.String())
}

func TestMultiplePanesStackInOrder(t *testing.T) {
	sess, buf := testSession(80, 24, 0)
	require.NoError(t, sess.Draw([]pane.Pane{
		textPane("title"),
		textPane("body1", "body2"),
	}))

	assert.Equal(t, "title\nbody1\nbody2", visibleLines(buf.String()))
	assert.Equal(t, 3, sess.Rows())
}

// visibleLines strips escape sequences and normalizes the next-line moves
// the renderer uses into newlines.
func visibleLines(out string) string {
	var b bytes.Buffer
	for i := 0; i < len(out); i++ {
		if out[i] == '\x1b' && i+3 < len(out) && out[i+1] == '[' && out[i+2] == '1' && out[i+3] == 'E' {
			b.WriteByte('\n')
			i += 3
			continue
		}
		b.WriteByte(out[i])
	}
	s := ansi.Strip(b.String())
	var clean bytes.Buffer
	for i := 0; i < len(s); i++ {
		if s[i] == '\r' {
			continue
		}
		clean.WriteByte(s[i])
	}
	return clean.String()
}

func countOccurrences(s, sub string) int {
	return bytes.Count([]byte(s), []byte(sub))
}
