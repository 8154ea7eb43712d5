package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/mablo/mablo/internal/domain"
	"github.com/mablo/mablo/internal/service"
	"github.com/mablo/mablo/internal/typewriter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func results(titles ...string) []service.FilterResult {
	out := make([]service.FilterResult, 0, len(titles))
	for _, title := range titles {
		out = append(out, service.FilterResult{FilterItem: service.FilterItem{
			Kind:    service.EntrySection,
			Title:   title,
			Section: domain.SectionID(title),
		}})
	}
	return out
}

func TestPaletteNavigation(t *testing.T) {
	p := NewPalette()
	p.SetSize(100, 30)
	assert.Empty(t, p.View())

	p.Show(results("services", "about", "contact"))
	require.True(t, p.IsVisible())

	p, _, changed, chosen := p.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.False(t, changed)
	assert.False(t, chosen)
	p, _, _, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p, _, _, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, domain.SectionContact, p.Selected().Section)

	p, _, _, _ = p.Update(tea.KeyMsg{Type: tea.KeyUp})
	p, _, _, chosen = p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, chosen)
	assert.Equal(t, domain.SectionAbout, p.Selected().Section)

	p, _, _, _ = p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, p.IsVisible())
}

func TestPaletteQueryChanges(t *testing.T) {
	p := NewPalette()
	p.Show(nil)

	p, _, changed, _ := p.Update(runes("a"))
	assert.True(t, changed)
	assert.Equal(t, "a", p.Query())

	_, _, _, chosen := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, chosen, "nothing to choose")
	assert.Nil(t, p.Selected())
}

func TestPaletteView(t *testing.T) {
	p := NewPalette()
	p.SetSize(100, 30)

	p.Show(nil)
	assert.Contains(t, ansi.Strip(p.View()), "Sin resultados")

	p.SetResults(results("a", "b", "c", "d", "e", "f", "g", "h", "i", "j"))
	view := ansi.Strip(p.View())
	assert.Contains(t, view, "Ir a...")
	assert.Contains(t, view, "y 2 más")
}

func TestHighlightMatches(t *testing.T) {
	assert.Equal(t, "Sofía M.", ansi.Strip(HighlightMatches("Sofía M.", []int{0, 1, 2}, false)))
	assert.Equal(t, "Sofía M.", ansi.Strip(HighlightMatches("Sofía M.", []int{3}, true)))
	assert.Equal(t, "", ansi.Strip(HighlightMatches("", nil, false)))
}

func TestMenu(t *testing.T) {
	links := []domain.NavLink{
		{Label: "Servicios", Section: domain.SectionServices},
		{Label: "Nosotros", Section: domain.SectionAbout},
	}
	m := NewMenu(links, "Contactar")

	_, _, chosen := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, chosen, "closed menu ignores keys")

	m.Toggle()
	view := ansi.Strip(m.View())
	assert.Contains(t, view, "Servicios")
	assert.Contains(t, view, "Contactar")

	m, _, _ = m.Update(runes("j"))
	m, _, _ = m.Update(runes("j"))
	m, _, _ = m.Update(runes("j"))
	m, section, chosen := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, chosen)
	assert.Equal(t, domain.SectionContact, section)
	assert.False(t, m.IsVisible())

	m.Toggle()
	m, _, _ = m.Update(runes("m"))
	assert.False(t, m.IsVisible())
}

func TestContactFormFocusAndSubmit(t *testing.T) {
	f := NewContactForm("¡Gracias!")
	_, _, submit := f.Update(runes("x"))
	assert.False(t, submit)
	assert.Empty(t, f.Values().Name, "inactive form ignores input")

	f.Activate()
	require.True(t, f.Active())
	for _, r := range "Ana" {
		f, _, _ = f.Update(runes(string(r)))
	}
	f, _, _ = f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	for _, r := range "ana@example.com" {
		f, _, _ = f.Update(runes(string(r)))
	}
	f, _, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	for _, r := range "Hola equipo" {
		f, _, _ = f.Update(runes(string(r)))
	}
	assert.Equal(t, service.ContactForm{Name: "Ana", Email: "ana@example.com", Message: "Hola equipo"}, f.Values())

	f, _, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	_, _, submit = f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, submit)

	values, ok, cmd := f.BeginSubmit()
	assert.True(t, ok)
	assert.NotNil(t, cmd)
	assert.Equal(t, "Ana", values.Name)
	assert.Equal(t, FormSubmitting, f.State())
	assert.False(t, f.Active())
	assert.Nil(t, f.Activate())

	f.Finish(nil)
	assert.Equal(t, FormSent, f.State())
	assert.Empty(t, f.Values().Name)
	assert.Contains(t, ansi.Strip(f.View()), "¡Gracias!")

	f.Reset()
	assert.Equal(t, FormEditing, f.State())
}

func TestContactFormValidationErrors(t *testing.T) {
	f := NewContactForm("ok")
	f.Activate()
	f.SetValues(service.ContactForm{Name: "Ana", Email: "no-es-correo"})

	_, ok, _ := f.BeginSubmit()
	assert.False(t, ok)
	assert.Equal(t, FormEditing, f.State())
	assert.Empty(t, f.Error(service.FieldName))
	assert.NotEmpty(t, f.Error(service.FieldEmail))
	assert.NotEmpty(t, f.Error(service.FieldMessage))

	view := ansi.Strip(f.View())
	assert.Contains(t, view, f.Error(service.FieldEmail))
}

func TestContactFormFailureKeepsInput(t *testing.T) {
	f := NewContactForm("ok")
	input := service.ContactForm{Name: "Ana", Email: "ana@example.com", Message: "Hola, quiero información"}
	f.SetValues(input)

	_, ok, _ := f.BeginSubmit()
	require.True(t, ok)
	f.Finish(assert.AnError)
	assert.Equal(t, FormEditing, f.State())
	assert.Equal(t, input, f.Values())
}

func TestTaglineCursorMode(t *testing.T) {
	tl := NewTagline("Tu negocio, ", " y en línea.")
	tl.Start()
	assert.Equal(t, "Tu negocio,  y en línea.", tl.Plain())

	tl.SetState(typewriter.State{Text: []rune("organizado"), Revealed: 4})
	assert.Equal(t, "Tu negocio, orga y en línea.", tl.Plain())
	assert.Contains(t, ansi.Strip(tl.View()), "orga")

	cmd := tl.SetState(typewriter.State{Text: []rune("organizado"), Revealed: 10, Complete: true})
	assert.Nil(t, cmd)
	assert.True(t, tl.State().Complete)
	assert.Equal(t, "Tu negocio, organizado y en línea.", tl.Plain())
}
