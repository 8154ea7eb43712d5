package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/mablo/mablo/internal/config"
	"github.com/mablo/mablo/internal/domain"
	"github.com/mablo/mablo/internal/motion"
	"github.com/mablo/mablo/internal/service"
	"github.com/mablo/mablo/internal/store"
	"github.com/mablo/mablo/internal/tui/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, mutate func(*config.Config)) (Model, *store.OutboxStore) {
	t.Helper()
	cat := testCatalog(t)
	cfg := config.DefaultConfig()
	cfg.Contact.SubmitDelay = 0
	if mutate != nil {
		mutate(cfg)
	}

	outbox, err := store.NewOutboxStore("")
	require.NoError(t, err)
	t.Cleanup(func() { outbox.Close() })

	logger := config.NullLogger()
	m, err := NewModel(Options{
		Catalog: cat,
		Contact: service.NewContactService(outbox, cfg.Contact.SubmitDelay, logger),
		Search:  service.NewSearchService(cat, logger),
		Config:  cfg,
		Logger:  logger,
	})
	require.NoError(t, err)
	t.Cleanup(m.Close)
	return m, outbox
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

// runFrames feeds frames until the glide ends
func runFrames(t *testing.T, m Model) Model {
	t.Helper()
	at := time.Now()
	for i := 0; i < 600 && m.anim.scrolling; i++ {
		at = at.Add(m.anim.frameInterval)
		m = send(m, frameMsg{At: at})
	}
	require.False(t, m.anim.scrolling, "glide did not settle")
	return m
}

func TestModelLayoutFollowsWidth(t *testing.T) {
	m, _ := newTestModel(t, nil)
	assert.Equal(t, "Cargando...", m.View())

	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.True(t, m.Ready)
	assert.Equal(t, motion.Wide, m.anim.mapper.Layout())
	assert.Equal(t, viewportHeight(40), m.viewport.Height)

	m = send(m, tea.WindowSizeMsg{Width: 80, Height: 40})
	assert.Equal(t, motion.Narrow, m.anim.mapper.Layout())

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "menú")
}

func TestModelScrollFeedsMascot(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	require.Zero(t, m.Frame().Input)

	m = send(m, keyMsg("j"), keyMsg("j"))
	assert.Equal(t, 2, m.viewport.YOffset)
	assert.InDelta(t, 2/float64(m.maxOffset()), m.Frame().Input, 1e-9)

	m = send(m, keyMsg("G"))
	assert.Equal(t, m.maxOffset(), m.viewport.YOffset)
	assert.Equal(t, 1.0, m.Frame().Input)
	assert.Equal(t, domain.SectionContact, m.currentSection())

	m = send(m, keyMsg("k"))
	assert.Equal(t, m.maxOffset()-1, m.viewport.YOffset)
}

func TestModelGlidesToSection(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	m = send(m, keyMsg("2"))
	require.True(t, m.anim.scrolling)
	assert.Zero(t, m.viewport.YOffset)

	m = runFrames(t, m)
	want := min(m.page.Offsets[domain.SectionServices], m.maxOffset())
	assert.Equal(t, want, m.viewport.YOffset)
	assert.Equal(t, domain.SectionServices, m.currentSection())
	assert.True(t, m.Compact())
}

func TestModelReducedMotionJumps(t *testing.T) {
	m, _ := newTestModel(t, func(c *config.Config) { c.Motion.Reduced = true })
	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	m = send(m, keyMsg("3"))
	assert.False(t, m.anim.scrolling)
	assert.Equal(t, min(m.page.Offsets[domain.SectionAbout], m.maxOffset()), m.viewport.YOffset)

	// Without smoothing the mascot lands on its target in the same frame
	f := m.Frame()
	for _, p := range m.anim.mapper.Properties() {
		assert.Equal(t, f.Targets[p], f.Values[p], "property %s", p)
	}
}

func TestModelStartSection(t *testing.T) {
	cat := testCatalog(t)
	logger := config.NullLogger()
	m, err := NewModel(Options{
		Catalog:      cat,
		Search:       service.NewSearchService(cat, logger),
		Logger:       logger,
		StartSection: domain.SectionContact,
	})
	require.NoError(t, err)
	t.Cleanup(m.Close)

	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, min(m.page.Offsets[domain.SectionContact], m.maxOffset()), m.viewport.YOffset)
	assert.Empty(t, m.pendingSection)
}

func TestModelTypesTagline(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, "Tu negocio,  y en línea.", m.tagline.Plain())

	for i := 0; i < 100 && m.anim.sched.Pending() > 0; i++ {
		m = send(m, timerFiredMsg{id: m.anim.sched.next})
	}
	assert.True(t, m.anim.typed.Complete)
	assert.Equal(t, "Tu negocio, organizado y en línea.", m.tagline.Plain())
	assert.Contains(t, ansi.Strip(m.viewport.View()), "organizado")
}

func TestModelPaletteJumps(t *testing.T) {
	m, _ := newTestModel(t, func(c *config.Config) { c.Motion.Reduced = true })
	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	m = send(m, keyMsg("/"))
	require.True(t, m.palette.IsVisible())
	m = typeText(m, "sof")
	sel := m.palette.Selected()
	require.NotNil(t, sel)
	assert.Equal(t, service.EntryMember, sel.Kind)

	m = send(m, keyMsg("enter"))
	assert.False(t, m.palette.IsVisible())
	assert.Equal(t, min(m.page.Offsets[domain.SectionAbout], m.maxOffset()), m.viewport.YOffset)
}

func TestModelHelpModal(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	m = send(m, keyMsg("?"))
	assert.True(t, m.showHelp)
	assert.Contains(t, ansi.Strip(m.View()), "Atajos de teclado")

	// Keys other than close are swallowed
	m = send(m, keyMsg("j"))
	assert.Zero(t, m.viewport.YOffset)
	m = send(m, keyMsg("esc"))
	assert.False(t, m.showHelp)
}

func TestModelNarrowMenu(t *testing.T) {
	m, _ := newTestModel(t, func(c *config.Config) { c.Motion.Reduced = true })

	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 40}, keyMsg("m"))
	assert.False(t, m.menu.IsVisible(), "menu is narrow only")

	m = send(m, tea.WindowSizeMsg{Width: 70, Height: 40}, keyMsg("m"))
	require.True(t, m.menu.IsVisible())
	assert.Contains(t, ansi.Strip(m.View()), "Nosotros")

	m = send(m, keyMsg("j"), keyMsg("enter"))
	assert.False(t, m.menu.IsVisible())
	assert.Equal(t, min(m.page.Offsets[domain.SectionAbout], m.maxOffset()), m.viewport.YOffset)
}

func TestModelFormValidation(t *testing.T) {
	m, outbox := newTestModel(t, func(c *config.Config) { c.Motion.Reduced = true })
	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	m = send(m, keyMsg("tab"))
	require.True(t, m.form.Active())
	assert.Equal(t, domain.SectionContact, m.currentSection())

	m = send(m, keyMsg("ctrl+s"))
	assert.Equal(t, components.FormEditing, m.form.State())
	assert.True(t, m.StatusIsErr)
	assert.NotEmpty(t, m.form.Error(service.FieldName))
	assert.NotEmpty(t, m.form.Error(service.FieldEmail))
	assert.NotEmpty(t, m.form.Error(service.FieldMessage))

	inquiries, err := outbox.ListInquiries()
	require.NoError(t, err)
	assert.Empty(t, inquiries)
}

func TestModelFormSubmit(t *testing.T) {
	m, outbox := newTestModel(t, func(c *config.Config) { c.Motion.Reduced = true })
	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 40}, keyMsg("tab"))

	m.form.SetValues(service.ContactForm{
		Name:    "Ana",
		Email:   "ana@example.com",
		Message: "Necesito migrar mis hojas de cálculo",
	})
	next, cmd := m.Update(keyMsg("ctrl+s"))
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.Equal(t, components.FormSubmitting, m.form.State())
	assert.Contains(t, ansi.Strip(m.View()), "Enviando")

	msg := SubmitInquiryCmd(m.contact, service.ContactForm{
		Name:    "Ana",
		Email:   "ana@example.com",
		Message: "Necesito migrar mis hojas de cálculo",
	})()
	submitted, ok := msg.(InquirySubmittedMsg)
	require.True(t, ok)
	require.NoError(t, submitted.Err)
	assert.Equal(t, "Ana", submitted.Inquiry.Name)

	m = send(m, submitted)
	assert.Equal(t, components.FormSent, m.form.State())
	assert.Equal(t, m.catalog.Contact.Success, m.StatusMsg)
	assert.False(t, m.StatusIsErr)

	inquiries, err := outbox.ListInquiries()
	require.NoError(t, err)
	assert.Len(t, inquiries, 1)
}

func TestModelStatusClearsBySequence(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	m = send(m, StatusMsg{Message: "uno"}, StatusMsg{Message: "dos"})
	m = send(m, ClearStatusMsg{Seq: m.statusSeq - 1})
	assert.Equal(t, "dos", m.StatusMsg)
	m = send(m, ClearStatusMsg{Seq: m.statusSeq})
	assert.Empty(t, m.StatusMsg)
}

func TestModelViewFitsScreen(t *testing.T) {
	for _, width := range []int{60, 100, 160} {
		m, _ := newTestModel(t, nil)
		m = send(m, tea.WindowSizeMsg{Width: width, Height: 30})
		lines := strings.Split(m.View(), "\n")
		assert.Len(t, lines, 30, "width %d", width)
		for i, line := range lines {
			assert.LessOrEqual(t, ansi.StringWidth(line), width, "width %d line %d", width, i)
		}
	}
}

func TestRenderStatic(t *testing.T) {
	cat := testCatalog(t)
	out, err := RenderStatic(cat, config.DefaultConfig(), 0)
	require.NoError(t, err)

	text := ansi.Strip(out)
	assert.Contains(t, text, "organizado")
	assert.Contains(t, text, "hola@mablo.dev")
	assert.NotContains(t, text, "Enviar mensaje")
}

type fakeOpener struct {
	links []string
	err   error
}

func (f *fakeOpener) Open(link string) error {
	f.links = append(f.links, link)
	return f.err
}

func TestModelOpensMailClient(t *testing.T) {
	cat := testCatalog(t)
	opener := &fakeOpener{}
	m, err := NewModel(Options{Catalog: cat, Search: service.NewSearchService(cat, nil), Mail: opener})
	require.NoError(t, err)
	t.Cleanup(m.Close)
	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	_, cmd := m.Update(keyMsg("e"))
	require.NotNil(t, cmd)
	msg := OpenMailCmd(opener, "hola@mablo.dev")()
	assert.Equal(t, StatusMsg{Message: "Abriendo hola@mablo.dev"}, msg)
	assert.Equal(t, "mailto:hola@mablo.dev", opener.links[len(opener.links)-1])

	opener.err = assert.AnError
	errMsg, ok := OpenMailCmd(opener, "hola@mablo.dev")().(ErrMsg)
	require.True(t, ok)
	m = send(m, errMsg)
	assert.True(t, m.StatusIsErr)
}

func TestModelCloseStopsAnimation(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	// Reveal a few characters, then tear down mid-sequence
	for i := 0; i < 3; i++ {
		m = send(m, timerFiredMsg{id: m.anim.sched.next})
	}
	m = send(m, keyMsg("j"))
	require.Positive(t, m.anim.typed.Revealed)
	require.Positive(t, m.Frame().Input)

	revealed := m.anim.typed.Revealed
	input := m.Frame().Input
	staleID := m.anim.sched.next
	m.Close()

	assert.True(t, m.anim.mapper.Closed())
	assert.Zero(t, m.anim.sched.Pending())

	m = send(m, timerFiredMsg{id: staleID})
	m.anim.feed.Publish(0.9)
	m = send(m, keyMsg("j"))

	assert.Equal(t, revealed, m.anim.typed.Revealed)
	assert.False(t, m.anim.typed.Complete)
	assert.Equal(t, input, m.Frame().Input)
	assert.Zero(t, m.anim.feed.Listeners())
}
