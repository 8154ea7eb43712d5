package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mablo/mablo/internal/domain"
	"github.com/mablo/mablo/internal/tui/styles"
)

// Menu is the collapsed navigation of the narrow layout
type Menu struct {
	links   []domain.NavLink
	cta     string
	cursor  int
	visible bool
	width   int
}

// NewMenu creates a menu listing links followed by the contact call to action
func NewMenu(links []domain.NavLink, cta string) Menu {
	return Menu{links: links, cta: cta}
}

// Toggle opens or closes the menu
func (m *Menu) Toggle() {
	m.visible = !m.visible
	m.cursor = 0
}

// Close closes the menu
func (m *Menu) Close() {
	m.visible = false
}

// IsVisible returns true if the menu is open
func (m Menu) IsVisible() bool {
	return m.visible
}

// SetWidth sets the menu width
func (m *Menu) SetWidth(w int) {
	m.width = w
}

func (m Menu) entries() int {
	return len(m.links) + 1
}

// Update handles keys. It returns the chosen section, if any; choosing
// closes the menu.
func (m Menu) Update(msg tea.Msg) (Menu, domain.SectionID, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !m.visible || !ok {
		return m, "", false
	}

	switch {
	case key.Matches(km, MenuKeys.Escape):
		m.Close()
	case key.Matches(km, MenuKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(km, MenuKeys.Down):
		if m.cursor < m.entries()-1 {
			m.cursor++
		}
	case key.Matches(km, MenuKeys.Enter):
		m.Close()
		if m.cursor < len(m.links) {
			return m, m.links[m.cursor].Section, true
		}
		return m, domain.SectionContact, true
	}
	return m, "", false
}

// View renders the open menu as a panel below the header
func (m Menu) View() string {
	if !m.visible {
		return ""
	}
	var b strings.Builder
	for i, link := range m.links {
		b.WriteString(m.row(link.Label, i == m.cursor, false))
		b.WriteString("\n")
	}
	b.WriteString(m.row(m.cta, m.cursor == len(m.links), true))
	return styles.ModalStyle.Padding(0, 1).Width(max(20, m.width)).Render(b.String())
}

func (m Menu) row(label string, selected, cta bool) string {
	switch {
	case selected:
		return styles.SelectedItemStyle.Render("› " + label)
	case cta:
		return styles.AccentStyle.Padding(0, 1).Render("  " + label)
	default:
		return styles.NormalItemStyle.Render("  " + label)
	}
}
