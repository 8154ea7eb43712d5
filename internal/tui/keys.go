package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application
type KeyMap struct {
	// Scrolling
	Up       key.Binding
	Down     key.Binding
	HalfUp   key.Binding
	HalfDown key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Sections
	Hero     key.Binding
	Services key.Binding
	About    key.Binding
	Contact  key.Binding

	// Actions
	Quit    key.Binding
	Help    key.Binding
	Escape  key.Binding
	Palette key.Binding
	Menu    key.Binding
	Form    key.Binding
	Mail    key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "scroll down"),
		),
		HalfUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("C-u", "half page up"),
		),
		HalfDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("C-d", "half page down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("PgUp", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", " "),
			key.WithHelp("PgDn", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		End: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),

		Hero: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "inicio"),
		),
		Services: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "servicios"),
		),
		About: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "nosotros"),
		),
		Contact: key.NewBinding(
			key.WithKeys("4", "c"),
			key.WithHelp("4/c", "contacto"),
		),

		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Palette: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "jump to"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		Form: key.NewBinding(
			key.WithKeys("tab", "enter"),
			key.WithHelp("tab", "write to us"),
		),
		Mail: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "open mail client"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Palette, k.Contact, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.HalfUp, k.HalfDown, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Hero, k.Services, k.About, k.Contact},
		{k.Palette, k.Menu, k.Form, k.Mail, k.Escape, k.Help, k.Quit},
	}
}

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()
