// Package keys contains keybinding definitions for the preview.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the preview keybindings.
type KeyMap struct {
	// Themes
	NextTheme key.Binding
	PrevTheme key.Binding

	// Views
	ToggleDiff key.Binding

	// Scrolling
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// General
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTheme: key.NewBinding(
			key.WithKeys("t", "right", "l"),
			key.WithHelp("t/→", "next theme"),
		),
		PrevTheme: key.NewBinding(
			key.WithKeys("T", "left", "h"),
			key.WithHelp("T/←", "prev theme"),
		),
		ToggleDiff: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "toggle diff"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTheme, k.PrevTheme, k.ToggleDiff, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTheme, k.PrevTheme, k.ToggleDiff},
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Help, k.Quit},
	}
}
