package widget

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/vito/prompt/pkg/event"
	"github.com/vito/prompt/pkg/grapheme"
	"github.com/vito/prompt/pkg/pane"
)

// TreeNode is one labeled node. A folded node hides its subtree.
type TreeNode struct {
	Label    string
	Children []*TreeNode
	Folded   bool
}

// Node builds a tree node.
func Node(label string, children ...*TreeNode) *TreeNode {
	return &TreeNode{Label: label, Children: children}
}

func (n *TreeNode) clone() *TreeNode {
	c := &TreeNode{Label: n.Label, Folded: n.Folded}
	for _, ch := range n.Children {
		c.Children = append(c.Children, ch.clone())
	}
	return c
}

// Tree browses a forest of nodes: arrows move the cursor over the visible
// rows, space folds or unfolds the subtree under it.
type Tree struct {
	Roots  []*TreeNode
	Cursor int
	Lines  int
	Indent int

	ActiveStyle   lipgloss.Style
	InactiveStyle lipgloss.Style
}

// NewTree builds a tree browser with two-space indentation.
func NewTree(roots ...*TreeNode) *Tree {
	return &Tree{
		Roots:       roots,
		Indent:      2,
		ActiveStyle: lipgloss.NewStyle().Bold(true),
	}
}

type treeRow struct {
	node  *TreeNode
	depth int
	path  []string
}

// visible flattens the forest depth-first, skipping folded subtrees.
func (t *Tree) visible() []treeRow {
	var rows []treeRow
	var walk func(nodes []*TreeNode, depth int, path []string)
	walk = func(nodes []*TreeNode, depth int, path []string) {
		for _, n := range nodes {
			p := append(append([]string{}, path...), n.Label)
			rows = append(rows, treeRow{node: n, depth: depth, path: p})
			if !n.Folded {
				walk(n.Children, depth+1, p)
			}
		}
	}
	walk(t.Roots, 0, nil)
	return rows
}

// SelectedPath returns the labels from the root down to the cursor node.
func (t *Tree) SelectedPath() []string {
	rows := t.visible()
	if len(rows) == 0 {
		return nil
	}
	return rows[t.Cursor].path
}

func (t *Tree) HandleEvent(ev event.Event) {
	rows := t.visible()
	switch {
	case ev.Is(event.KeyUp):
		if t.Cursor > 0 {
			t.Cursor--
		}
	case ev.Is(event.KeyDown):
		if t.Cursor < len(rows)-1 {
			t.Cursor++
		}
	case ev.Is(event.KeyChar) && ev.Ch == ' ':
		if len(rows) > 0 {
			n := rows[t.Cursor].node
			if len(n.Children) > 0 {
				n.Folded = !n.Folded
				// Folding can shrink the visible rows above the cursor's
				// old position.
				if vis := len(t.visible()); t.Cursor > vis-1 {
					t.Cursor = vis - 1
				}
			}
		}
	}
}

func (t *Tree) MakePane(width int) pane.Pane {
	treeRows := t.visible()
	rows := make([]grapheme.StyledGraphemes, len(treeRows))
	for i, r := range treeRows {
		symbol := "  "
		if len(r.node.Children) > 0 {
			if r.node.Folded {
				symbol = "▶ "
			} else {
				symbol = "▼ "
			}
		}
		text := strings.Repeat(" ", r.depth*t.Indent) + symbol + r.node.Label
		if i == t.Cursor {
			rows[i] = grapheme.Trim(width, grapheme.Styled(text, t.ActiveStyle))
		} else {
			rows[i] = grapheme.Trim(width, grapheme.Styled(text, t.InactiveStyle))
		}
	}
	return pane.New(rows, t.Cursor, t.Lines)
}

func (t *Tree) Postrun() { t.Cursor = 0 }

func (t *Tree) Clone() *Tree {
	c := *t
	c.Roots = nil
	for _, r := range t.Roots {
		c.Roots = append(c.Roots, r.clone())
	}
	return &c
}
