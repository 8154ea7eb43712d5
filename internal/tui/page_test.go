package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/mablo/mablo/internal/content"
	"github.com/mablo/mablo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *domain.Catalog {
	t.Helper()
	cat, err := content.Default()
	require.NoError(t, err)
	return cat
}

func TestRenderPageSectionOffsets(t *testing.T) {
	cat := testCatalog(t)
	for _, narrow := range []bool{false, true} {
		p := renderPage(cat, pageOptions{Width: 120, Height: 30, Narrow: narrow, Tagline: "Tu negocio", Email: "hola@mablo.dev"})

		require.Len(t, p.Offsets, len(domain.Sections))
		assert.Zero(t, p.Offsets[domain.SectionHero])
		prev := -1
		for _, s := range domain.Sections {
			assert.Greater(t, p.Offsets[s], prev, "section %s", s)
			prev = p.Offsets[s]
		}
		assert.Greater(t, p.Lines, p.Offsets[domain.SectionContact])
	}
}

func TestRenderPageHeroFillsScreen(t *testing.T) {
	cat := testCatalog(t)

	wide := renderPage(cat, pageOptions{Width: 120, Height: 30})
	assert.Equal(t, 30, wide.Offsets[domain.SectionServices])
	assert.Equal(t, stageRect{Col: 60, Row: 0, Width: 60, Height: 30}, wide.Stage)

	narrow := renderPage(cat, pageOptions{Width: 60, Height: 30, Narrow: true})
	assert.Equal(t, 30, narrow.Offsets[domain.SectionServices])
	assert.Equal(t, 30, narrow.Stage.Row+narrow.Stage.Height)
	assert.GreaterOrEqual(t, narrow.Stage.Height, narrowStageHeight)
}

func TestRenderPageContent(t *testing.T) {
	cat := testCatalog(t)
	p := renderPage(cat, pageOptions{Width: 140, Height: 30, Email: "hola@mablo.dev", Form: "FORM", ShowButtons: true})
	text := ansi.Strip(p.Content)

	for _, svc := range cat.Services {
		assert.Contains(t, text, svc.Title)
	}
	for _, member := range cat.Team {
		assert.Contains(t, text, member.Name)
	}
	assert.Contains(t, text, cat.Contact.Heading)
	assert.Contains(t, text, cat.Hero.PrimaryCTA)
	assert.Contains(t, text, "FORM")
	assert.Contains(t, text, "hola@mablo.dev")
	assert.Contains(t, text, cat.Footer.Copyright)
}

func TestRenderQR(t *testing.T) {
	qr, err := renderQR("hola@mablo.dev")
	require.NoError(t, err)
	assert.NotEmpty(t, qr)
	assert.Contains(t, qr, "█")
}

func TestRenderMarkdown(t *testing.T) {
	out, err := renderMarkdown("## Hola\n\nSomos **Mablo**.", "notty", 60)
	require.NoError(t, err)
	assert.Contains(t, ansi.Strip(out), "Hola")
	assert.Contains(t, ansi.Strip(out), "Mablo")
}
