package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mablo/mablo/internal/service"
	"github.com/mablo/mablo/internal/tui/styles"
)

const paletteMaxResults = 8

// Palette is the fuzzy jump-to modal over sections, services and team
type Palette struct {
	input   textinput.Model
	results []service.FilterResult
	cursor  int
	visible bool
	width   int
	height  int
}

// NewPalette creates a new palette component
func NewPalette() Palette {
	ti := textinput.New()
	ti.Placeholder = "Buscar sección, servicio o persona..."
	ti.CharLimit = 60
	ti.Width = 40
	ti.Prompt = "/ "
	ti.PromptStyle = styles.AccentStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return Palette{input: ti}
}

// Show makes the palette visible with the given initial results
func (p *Palette) Show(results []service.FilterResult) tea.Cmd {
	p.visible = true
	p.input.SetValue("")
	p.results = results
	p.cursor = 0
	return p.input.Focus()
}

// Hide hides the palette
func (p *Palette) Hide() {
	p.visible = false
	p.input.Blur()
}

// IsVisible returns true if the palette is visible
func (p Palette) IsVisible() bool {
	return p.visible
}

// SetResults replaces the results and resets the cursor
func (p *Palette) SetResults(results []service.FilterResult) {
	p.results = results
	p.cursor = 0
}

// SetSize updates the component dimensions
func (p *Palette) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.input.Width = max(10, min(width, 80)-12)
}

// Query returns the current search query
func (p Palette) Query() string {
	return p.input.Value()
}

// Selected returns the highlighted result
func (p Palette) Selected() *service.FilterItem {
	if p.cursor >= len(p.results) {
		return nil
	}
	return &p.results[p.cursor].FilterItem
}

// Update handles messages. The second return is true when the query text
// changed and results should be refreshed, the third when a result was chosen.
func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd, bool, bool) {
	if !p.visible {
		return p, nil, false, false
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, PaletteKeys.Escape):
			p.Hide()
			return p, nil, false, false

		case key.Matches(msg, PaletteKeys.Enter):
			return p, nil, false, len(p.results) > 0

		case key.Matches(msg, PaletteKeys.Down):
			if p.cursor < min(len(p.results), paletteMaxResults)-1 {
				p.cursor++
			}
			return p, nil, false, false

		case key.Matches(msg, PaletteKeys.Up):
			if p.cursor > 0 {
				p.cursor--
			}
			return p, nil, false, false
		}
	}

	before := p.input.Value()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd, p.input.Value() != before, false
}

// View renders the modal centred in the palette's area
func (p Palette) View() string {
	if !p.visible {
		return ""
	}

	modalWidth := max(40, min(p.width*2/3, 72))

	var b strings.Builder
	b.WriteString(styles.ModalTitleStyle.Render("Ir a..."))
	b.WriteString("\n")
	b.WriteString(p.input.View())
	b.WriteString("\n\n")
	p.renderResults(&b, modalWidth-8)

	modal := styles.ModalStyle.
		Width(modalWidth).
		Render(b.String())

	return lipgloss.Place(p.width, p.height, lipgloss.Center, lipgloss.Center, modal)
}

func (p Palette) renderResults(b *strings.Builder, width int) {
	if len(p.results) == 0 {
		b.WriteString(styles.DimStyle.Render("Sin resultados"))
		return
	}

	shown := min(len(p.results), paletteMaxResults)
	for i := range shown {
		r := p.results[i]
		selected := i == p.cursor

		badge := styles.DimBadgeStyle.Render(fmt.Sprintf("%-8s", r.Kind))
		title := HighlightMatches(styles.Truncate(r.Title, width-30), r.MatchedIndexes, selected)
		detail := styles.DimStyle.Render(" " + styles.Truncate(r.Detail, 20))

		b.WriteString(badge + " " + title + detail)
		if i < shown-1 {
			b.WriteString("\n")
		}
	}
	if len(p.results) > paletteMaxResults {
		b.WriteString("\n")
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("... y %d más", len(p.results)-paletteMaxResults)))
	}
}

// HighlightMatches renders text with the runes starting at the given byte
// offsets emphasised. Consecutive runes with the same state share one style run.
func HighlightMatches(text string, matchedIndexes []int, selected bool) string {
	normal, match := styles.NormalItemStyle.UnsetPadding(), styles.MatchHighlightStyle
	if selected {
		normal, match = styles.SelectedItemStyle.UnsetPadding(), styles.MatchHighlightSelectedStyle
	}
	if len(matchedIndexes) == 0 {
		return normal.Render(text)
	}

	matchSet := make(map[int]bool, len(matchedIndexes))
	for _, idx := range matchedIndexes {
		matchSet[idx] = true
	}

	var out, run strings.Builder
	runMatch := false
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if runMatch {
			out.WriteString(match.Render(run.String()))
		} else {
			out.WriteString(normal.Render(run.String()))
		}
		run.Reset()
	}
	for i, r := range text {
		if matchSet[i] != runMatch {
			flush()
			runMatch = matchSet[i]
		}
		run.WriteRune(r)
	}
	flush()
	return out.String()
}
