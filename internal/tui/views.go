package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/mablo/mablo/internal/motion"
	"github.com/mablo/mablo/internal/tui/components"
	"github.com/mablo/mablo/internal/tui/styles"
)

// Compact reports whether the header should switch to its scrolled look
func (m Model) Compact() bool {
	return m.viewport.YOffset > CompactAfter
}

// renderHeader renders the brand bar and the rule below it. The rightmost
// DockWidth columns stay free for the docked mascot.
func (m Model) renderHeader() string {
	current := m.currentSection()
	brand := styles.BrandStyle.Render(m.catalog.Brand)

	var right string
	if m.anim.mapper.Layout() == motion.Narrow {
		label := "☰ menú"
		if m.menu.IsVisible() {
			label = "✕ cerrar"
		}
		right = styles.NavLinkStyle.Render(label + " [m]")
	} else {
		var links []string
		for i, link := range m.catalog.Nav {
			style := styles.NavLinkStyle
			if link.Section == current {
				style = styles.NavLinkActiveStyle
			}
			links = append(links, style.Render(link.Label)+styles.DimStyle.Render(string(rune('2'+i))))
		}
		right = strings.Join(links, " ") + "  " + styles.PrimaryButtonStyle.Render(m.catalog.Hero.PrimaryCTA)
	}

	bar := styles.HeaderStyle
	if m.Compact() {
		bar = styles.HeaderCompactStyle
	}
	inner := max(0, m.Width-DockWidth-bar.GetHorizontalFrameSize())
	gap := max(1, inner-lipgloss.Width(brand)-lipgloss.Width(right))
	line := brand + strings.Repeat(" ", gap) + right
	line = bar.Width(m.Width - DockWidth).MaxWidth(m.Width - DockWidth).Render(styles.Truncate(line, inner))

	rule := ""
	if m.Compact() {
		rule = styles.DimStyle.Render(strings.Repeat("─", m.Width))
	}
	return line + "\n" + rule
}

// renderStatus renders the status toast or the key help line
func (m Model) renderStatus() string {
	var line string
	switch {
	case m.StatusMsg != "" && m.StatusIsErr:
		line = styles.ToastErrorStyle.Render(m.StatusMsg)
	case m.StatusMsg != "":
		line = styles.ToastStyle.Render(m.StatusMsg)
	case m.form.Active():
		line = m.help.ShortHelpView([]key.Binding{
			components.FormKeys.Next, components.FormKeys.Prev, components.FormKeys.Submit, components.FormKeys.Escape,
		})
	case m.form.State() == components.FormSubmitting:
		line = styles.DimStyle.Render("Enviando mensaje...")
	default:
		line = m.help.View(Keys)
	}
	return styles.Truncate(line, m.Width)
}

// renderHelp renders the full key reference as a centred modal
func (m Model) renderHelp() string {
	h := m.help
	h.ShowAll = true
	modal := styles.ModalStyle.Render(
		styles.ModalTitleStyle.Render("Atajos de teclado") + "\n" + h.View(Keys),
	)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, modal)
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}
