package components

import (
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mablo/mablo/internal/tui/styles"
	"github.com/mablo/mablo/internal/typewriter"
)

// cursorBlink is half the 0.8s blink period
const cursorBlink = 400 * time.Millisecond

// Tagline renders "lead + typed prefix + cursor + trail". The cursor blinks
// while the reveal is running and holds steady once it completes.
type Tagline struct {
	lead, trail string
	state       typewriter.State
	cursor      cursor.Model
}

// NewTagline creates a tagline with an empty typed part
func NewTagline(lead, trail string) Tagline {
	c := cursor.New()
	c.SetChar(" ")
	c.BlinkSpeed = cursorBlink
	c.Style = lipgloss.NewStyle().Foreground(styles.LightGray)
	c.TextStyle = lipgloss.NewStyle()
	return Tagline{lead: lead, trail: trail, cursor: c}
}

// Start focuses the cursor and starts it blinking
func (t *Tagline) Start() tea.Cmd {
	return tea.Batch(t.cursor.Focus(), t.cursor.SetMode(cursor.CursorBlink))
}

// SetState records a revealed state. Completion stops the blinking.
func (t *Tagline) SetState(s typewriter.State) tea.Cmd {
	wasComplete := t.state.Complete
	t.state = s
	if s.Complete && !wasComplete {
		return t.cursor.SetMode(cursor.CursorStatic)
	}
	if !s.Complete && wasComplete {
		return t.cursor.SetMode(cursor.CursorBlink)
	}
	return nil
}

// State returns the last recorded state
func (t Tagline) State() typewriter.State {
	return t.state
}

// Update forwards blink messages to the cursor
func (t Tagline) Update(msg tea.Msg) (Tagline, tea.Cmd) {
	var cmd tea.Cmd
	t.cursor, cmd = t.cursor.Update(msg)
	return t, cmd
}

// View renders the full tagline
func (t Tagline) View() string {
	return styles.TitleStyle.Render(t.lead) +
		styles.AccentStyle.Bold(true).Render(t.state.Prefix()) +
		t.cursor.View() +
		styles.TitleStyle.Render(t.trail)
}

// Plain renders the tagline without styling or cursor
func (t Tagline) Plain() string {
	return t.lead + t.state.Prefix() + t.trail
}
