package widget

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	pkgerrors "github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/vito/prompt/pkg/event"
	"github.com/vito/prompt/pkg/grapheme"
	"github.com/vito/prompt/pkg/pane"
)

// JSONViewer browses a JSON document as a foldable tree: one row per
// scalar or bracket, arrows to move, space to fold the container under the
// cursor down to a stub row.
type JSONViewer struct {
	Cursor int
	Lines  int

	KeyStyle    lipgloss.Style
	StringStyle lipgloss.Style
	NumberStyle lipgloss.Style
	BoolStyle   lipgloss.Style
	NullStyle   lipgloss.Style
	PunctStyle  lipgloss.Style
	ActiveStyle lipgloss.Style

	root   gjson.Result
	folded map[string]bool
}

// NewJSONViewer parses raw and builds a viewer over it.
func NewJSONViewer(raw string) (*JSONViewer, error) {
	if !gjson.Valid(raw) {
		return nil, pkgerrors.New("invalid JSON document")
	}
	return &JSONViewer{
		KeyStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		StringStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		NumberStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		BoolStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		NullStyle:   lipgloss.NewStyle().Faint(true),
		ActiveStyle: lipgloss.NewStyle().Bold(true),
		root:        gjson.Parse(raw),
		folded:      map[string]bool{},
	}, nil
}

type jsonRow struct {
	path      string
	composite bool
	line      grapheme.StyledGraphemes
}

type jsonSeg struct {
	text  string
	style lipgloss.Style
}

func (v *JSONViewer) rows() []jsonRow {
	var out []jsonRow

	emit := func(path string, composite bool, segs ...jsonSeg) {
		var line grapheme.StyledGraphemes
		for _, s := range segs {
			line = append(line, grapheme.Styled(s.text, s.style)...)
		}
		out = append(out, jsonRow{path: path, composite: composite, line: line})
	}

	var walk func(key string, val gjson.Result, path string, depth int)
	walk = func(key string, val gjson.Result, path string, depth int) {
		indent := jsonSeg{strings.Repeat(" ", depth*2), v.PunctStyle}
		segs := []jsonSeg{indent}
		if key != "" {
			segs = append(segs, jsonSeg{`"` + key + `"`, v.KeyStyle}, jsonSeg{": ", v.PunctStyle})
		}

		if val.IsObject() || val.IsArray() {
			open, closing := "{", "}"
			if val.IsArray() {
				open, closing = "[", "]"
			}
			if v.folded[path] {
				emit(path, true, append(segs, jsonSeg{open + "…" + closing, v.PunctStyle})...)
				return
			}
			emit(path, true, append(segs, jsonSeg{open, v.PunctStyle})...)
			idx := 0
			val.ForEach(func(k, child gjson.Result) bool {
				if val.IsObject() {
					walk(k.String(), child, path+"."+k.String(), depth+1)
				} else {
					walk("", child, fmt.Sprintf("%s.%d", path, idx), depth+1)
				}
				idx++
				return true
			})
			emit(path+".$close", false, indent, jsonSeg{closing, v.PunctStyle})
			return
		}

		var valSeg jsonSeg
		switch val.Type {
		case gjson.String:
			valSeg = jsonSeg{`"` + val.Str + `"`, v.StringStyle}
		case gjson.Number:
			valSeg = jsonSeg{val.Raw, v.NumberStyle}
		case gjson.True, gjson.False:
			valSeg = jsonSeg{val.Raw, v.BoolStyle}
		default:
			valSeg = jsonSeg{"null", v.NullStyle}
		}
		emit(path, false, append(segs, valSeg)...)
	}

	walk("", v.root, "$", 0)
	return out
}

// SelectedPath returns the dotted path of the row under the cursor, "$"
// being the document root.
func (v *JSONViewer) SelectedPath() string {
	rows := v.rows()
	if len(rows) == 0 {
		return ""
	}
	return rows[v.Cursor].path
}

func (v *JSONViewer) HandleEvent(ev event.Event) {
	rows := v.rows()
	switch {
	case ev.Is(event.KeyUp):
		if v.Cursor > 0 {
			v.Cursor--
		}
	case ev.Is(event.KeyDown):
		if v.Cursor < len(rows)-1 {
			v.Cursor++
		}
	case ev.Is(event.KeyChar) && ev.Ch == ' ':
		if len(rows) == 0 {
			return
		}
		r := rows[v.Cursor]
		if r.composite {
			v.folded[r.path] = !v.folded[r.path]
			if vis := len(v.rows()); v.Cursor > vis-1 {
				v.Cursor = vis - 1
			}
		}
	}
}

func (v *JSONViewer) MakePane(width int) pane.Pane {
	jsonRows := v.rows()
	rows := make([]grapheme.StyledGraphemes, len(jsonRows))
	for i, r := range jsonRows {
		line := r.line
		if i == v.Cursor {
			line = restyle(line, v.ActiveStyle)
		}
		rows[i] = grapheme.Trim(width, line)
	}
	return pane.New(rows, v.Cursor, v.Lines)
}

func (v *JSONViewer) Postrun() { v.Cursor = 0 }

func (v *JSONViewer) Clone() *JSONViewer {
	c := *v
	c.folded = make(map[string]bool, len(v.folded))
	for k, f := range v.folded {
		c.folded[k] = f
	}
	return &c
}

// restyle applies one style to every cell of a row.
func restyle(row grapheme.StyledGraphemes, style lipgloss.Style) grapheme.StyledGraphemes {
	out := make(grapheme.StyledGraphemes, len(row))
	for i, g := range row {
		g.Style = style
		out[i] = g
	}
	return out
}
