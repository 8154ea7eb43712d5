package components

import "github.com/charmbracelet/bubbles/key"

// PaletteKeyMap defines key bindings for the jump-to palette
type PaletteKeyMap struct {
	Escape key.Binding
	Enter  key.Binding
	Up     key.Binding
	Down   key.Binding
}

// DefaultPaletteKeyMap returns the default palette key bindings
func DefaultPaletteKeyMap() PaletteKeyMap {
	return PaletteKeyMap{
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "go"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑/C-p", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓/C-n", "next"),
		),
	}
}

// FormKeyMap defines key bindings for the contact form
type FormKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Escape key.Binding
}

// DefaultFormKeyMap returns the default contact form key bindings
func DefaultFormKeyMap() FormKeyMap {
	return FormKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("S-tab", "previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "send"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave form"),
		),
	}
}

// MenuKeyMap defines key bindings for the narrow-layout menu
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Escape key.Binding
}

// DefaultMenuKeyMap returns the default menu key bindings
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "go"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc", "m"),
			key.WithHelp("esc/m", "close"),
		),
	}
}

// Package-level key map instances
var (
	PaletteKeys = DefaultPaletteKeyMap()
	FormKeys    = DefaultFormKeyMap()
	MenuKeys    = DefaultMenuKeyMap()
)
