// Package faces maps symbolic face names to Lip Gloss styles. The client and
// backend never hold raw styles, only named faces, so colour schemes can be
// swapped in one place.
package faces

import "github.com/charmbracelet/lipgloss"

// Face is a named rendering style.
type Face struct {
	Name  string
	Style lipgloss.Style
}

var registry = map[string]lipgloss.Style{
	"Default":        lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	"StatusLine":     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")),
	"Error":          lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	"Information":    lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	"MenuForeground": lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("25")).Bold(true),
	"MenuBackground": lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Background(lipgloss.Color("236")),
	"Prompt":         lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
}

// Get resolves a face by name. Unknown names fall back to Default so a
// missing registry entry can never fail a draw.
func Get(name string) Face {
	if style, ok := registry[name]; ok {
		return Face{Name: name, Style: style}
	}
	return Face{Name: "Default", Style: registry["Default"]}
}

// Set installs or replaces a named style.
func Set(name string, style lipgloss.Style) {
	registry[name] = style
}
