// Package preset assembles the built-in widgets into ready-to-run prompts:
// line input, passwords, single and multi selection, and tree/JSON
// browsing. Each preset is a config struct whose Prompt method wires
// components, evaluator, and output extractor together.
package preset

import (
	"charm.land/lipgloss/v2"
	"github.com/BurntSushi/toml"
	pkgerrors "github.com/pkg/errors"
)

// Theme bundles the styles shared by the presets.
type Theme struct {
	Title    lipgloss.Style
	Prefix   lipgloss.Style
	Text     lipgloss.Style
	Cursor   lipgloss.Style
	Error    lipgloss.Style
	Active   lipgloss.Style
	Inactive lipgloss.Style
}

// DefaultTheme is the out-of-the-box look: bold titles, reverse-video
// cursor, red errors, bold selection rows.
func DefaultTheme() Theme {
	return Theme{
		Title:  lipgloss.NewStyle().Bold(true),
		Prefix: lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		Cursor: lipgloss.NewStyle().Reverse(true),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Active: lipgloss.NewStyle().Bold(true),
	}
}

// themeFile is the on-disk theme: one ANSI color (or hex string) per slot.
// Empty slots keep the default.
type themeFile struct {
	Title    string `toml:"title"`
	Prefix   string `toml:"prefix"`
	Text     string `toml:"text"`
	Error    string `toml:"error"`
	Active   string `toml:"active"`
	Inactive string `toml:"inactive"`
}

// LoadTheme reads a TOML theme file and overlays it on the default theme.
func LoadTheme(path string) (Theme, error) {
	var f themeFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return Theme{}, pkgerrors.Wrap(err, "load theme")
	}

	th := DefaultTheme()
	if f.Title != "" {
		th.Title = th.Title.Foreground(lipgloss.Color(f.Title))
	}
	if f.Prefix != "" {
		th.Prefix = th.Prefix.Foreground(lipgloss.Color(f.Prefix))
	}
	if f.Text != "" {
		th.Text = th.Text.Foreground(lipgloss.Color(f.Text))
	}
	if f.Error != "" {
		th.Error = th.Error.Foreground(lipgloss.Color(f.Error))
	}
	if f.Active != "" {
		th.Active = th.Active.Foreground(lipgloss.Color(f.Active))
	}
	if f.Inactive != "" {
		th.Inactive = th.Inactive.Foreground(lipgloss.Color(f.Inactive))
	}
	return th, nil
}

func themeOrDefault(t *Theme) Theme {
	if t != nil {
		return *t
	}
	return DefaultTheme()
}
