package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mablo/mablo/internal/domain"
	"github.com/mablo/mablo/internal/motion"
	"github.com/mablo/mablo/internal/tui/components"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.showHelp {
		if key.Matches(msg, Keys.Escape, Keys.Help, Keys.Quit) {
			m.showHelp = false
		}
		return m, nil
	}

	// Route to active overlay or form if any
	if handled, newModel, cmd := m.routeToOverlay(msg); handled {
		return newModel, cmd
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, Keys.Escape):
		m.StatusMsg = ""
		return m, nil

	case key.Matches(msg, Keys.Palette):
		return m, m.palette.Show(m.search.Filter(""))

	case key.Matches(msg, Keys.Menu):
		if m.anim.mapper.Layout() == motion.Narrow {
			m.menu.Toggle()
		}
		return m, nil

	case key.Matches(msg, Keys.Form):
		return m, m.openForm()

	case key.Matches(msg, Keys.Mail):
		if m.mail == nil {
			return m, nil
		}
		return m, OpenMailCmd(m.mail, m.cfg.Contact.Email)

	case key.Matches(msg, Keys.Up):
		return m, m.scrollBy(-1)
	case key.Matches(msg, Keys.Down):
		return m, m.scrollBy(1)
	case key.Matches(msg, Keys.HalfUp):
		return m, m.scrollBy(-m.viewport.Height / 2)
	case key.Matches(msg, Keys.HalfDown):
		return m, m.scrollBy(m.viewport.Height / 2)
	case key.Matches(msg, Keys.PageUp):
		return m, m.scrollBy(-m.viewport.Height)
	case key.Matches(msg, Keys.PageDown):
		return m, m.scrollBy(m.viewport.Height)
	case key.Matches(msg, Keys.Home):
		return m, m.scrollTo(domain.SectionHero)
	case key.Matches(msg, Keys.End):
		return m, m.scrollBy(m.maxOffset())

	case key.Matches(msg, Keys.Hero):
		return m, m.scrollTo(domain.SectionHero)
	case key.Matches(msg, Keys.Services):
		return m, m.scrollTo(domain.SectionServices)
	case key.Matches(msg, Keys.About):
		return m, m.scrollTo(domain.SectionAbout)
	case key.Matches(msg, Keys.Contact):
		return m, m.scrollTo(domain.SectionContact)
	}

	return m, nil
}

// routeToOverlay sends keys to the palette, menu or form when one of them
// owns the keyboard
func (m Model) routeToOverlay(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	switch {
	case m.palette.IsVisible():
		p, cmd, changed, chosen := m.palette.Update(msg)
		m.palette = p
		if changed {
			m.palette.SetResults(m.search.Filter(m.palette.Query()))
		}
		if chosen {
			if sel := m.palette.Selected(); sel != nil {
				m.palette.Hide()
				m.logger.Debug("palette jump", "title", sel.Title, "section", sel.Section)
				return true, m, tea.Batch(cmd, m.scrollTo(sel.Section))
			}
		}
		return true, m, cmd

	case m.menu.IsVisible():
		menu, section, chosen := m.menu.Update(msg)
		m.menu = menu
		if chosen {
			return true, m, m.scrollTo(section)
		}
		return true, m, nil

	case m.form.Active():
		form, cmd, submit := m.form.Update(msg)
		m.form = form
		if submit {
			return true, m, tea.Batch(cmd, m.submit())
		}
		return true, m, cmd
	}
	return false, m, nil
}

// openForm brings the contact section into view and focuses the form
func (m *Model) openForm() tea.Cmd {
	switch m.form.State() {
	case components.FormSubmitting:
		return nil
	case components.FormSent:
		m.form.Reset()
	}
	var scroll tea.Cmd
	if m.currentSection() != domain.SectionContact {
		scroll = m.scrollTo(domain.SectionContact)
	}
	return tea.Batch(scroll, m.form.Activate())
}

// submit validates the form and sends it when valid
func (m *Model) submit() tea.Cmd {
	values, ok, cmd := m.form.BeginSubmit()
	if !ok {
		return tea.Batch(cmd, m.setStatus("Revisa los campos marcados", true))
	}
	m.logger.Info("submitting inquiry", "email", values.Normalize().Email)
	return tea.Batch(cmd, SubmitInquiryCmd(m.contact, values))
}
