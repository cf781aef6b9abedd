package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vito/prompt/pkg/event"
)

const sampleJSON = `{"name":"x","count":2,"ok":true,"tags":["a","b"]}`

func TestJSONViewerRows(t *testing.T) {
	v, err := NewJSONViewer(sampleJSON)
	require.NoError(t, err)

	p := v.MakePane(80)
	var lines []string
	for _, r := range p.Rows {
		lines = append(lines, r.String())
	}
	assert.Equal(t, []string{
		`{`,
		`  "name": "x"`,
		`  "count": 2`,
		`  "ok": true`,
		`  "tags": [`,
		`    "a"`,
		`    "b"`,
		`  ]`,
		`}`,
	}, lines)
}

func TestJSONViewerFold(t *testing.T) {
	v, err := NewJSONViewer(sampleJSON)
	require.NoError(t, err)

	v.Cursor = 4 // the tags array
	v.HandleEvent(ch(' '))

	p := v.MakePane(80)
	assert.Len(t, p.Rows, 6)
	assert.Equal(t, `  "tags": […]`, p.Rows[4].String())

	// Unfold restores the subtree.
	v.HandleEvent(ch(' '))
	assert.Len(t, v.MakePane(80).Rows, 9)
}

func TestJSONViewerSelectedPath(t *testing.T) {
	v, err := NewJSONViewer(sampleJSON)
	require.NoError(t, err)

	assert.Equal(t, "$", v.SelectedPath())
	v.Cursor = 5
	assert.Equal(t, "$.tags.0", v.SelectedPath())
}

func TestJSONViewerScalarSpaceIsNoop(t *testing.T) {
	v, err := NewJSONViewer(sampleJSON)
	require.NoError(t, err)

	v.Cursor = 1
	v.HandleEvent(ch(' '))
	assert.Len(t, v.MakePane(80).Rows, 9)
}

func TestJSONViewerNavigationClamps(t *testing.T) {
	v, err := NewJSONViewer(`{"a":1}`)
	require.NoError(t, err)

	v.HandleEvent(key(event.KeyUp))
	assert.Equal(t, 0, v.Cursor)

	for i := 0; i < 10; i++ {
		v.HandleEvent(key(event.KeyDown))
	}
	assert.Equal(t, 2, v.Cursor)
}

func TestJSONViewerNull(t *testing.T) {
	v, err := NewJSONViewer(`{"gone":null}`)
	require.NoError(t, err)

	p := v.MakePane(80)
	assert.Equal(t, `  "gone": null`, p.Rows[1].String())
}

func TestJSONViewerInvalidDocument(t *testing.T) {
	_, err := NewJSONViewer(`{"broken":`)
	assert.Error(t, err)
}

func TestJSONViewerCloneIsIndependent(t *testing.T) {
	v, err := NewJSONViewer(sampleJSON)
	require.NoError(t, err)

	c := v.Clone()
	c.Cursor = 4
	c.HandleEvent(ch(' '))

	assert.Len(t, v.MakePane(80).Rows, 9)
	assert.Len(t, c.MakePane(80).Rows, 6)
}
