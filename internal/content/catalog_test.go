package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mablo/mablo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Mablo", cat.Brand)
	assert.Equal(t, "organizado", cat.Hero.Typed)
	assert.Equal(t, "Tu negocio, ", cat.Hero.Lead)
	assert.Len(t, cat.Services, 3)
	assert.Len(t, cat.Team, 4)
	assert.Len(t, cat.Visuals, 4)
	assert.Equal(t, domain.IconData, cat.Services[1].Icon)

	var sections []domain.SectionID
	for _, link := range cat.Nav {
		sections = append(sections, link.Section)
	}
	assert.Equal(t, []domain.SectionID{domain.SectionServices, domain.SectionAbout, domain.SectionContact}, sections)
}

func TestParseRejectsUnknownNavSection(t *testing.T) {
	data := []byte(`
brand: X
hero: {title: X}
services: [{id: a, title: A}]
nav: [{label: Blog, section: blog}]
`)
	_, err := Parse(data)
	require.ErrorIs(t, err, ErrIncompleteCatalog)
	require.ErrorIs(t, err, domain.ErrUnknownSection)
}

func TestParseRejectsMissingServices(t *testing.T) {
	_, err := Parse([]byte("brand: X\nhero: {title: X}\n"))
	require.ErrorIs(t, err, ErrIncompleteCatalog)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("brand: Acme\nhero: {title: Acme}\nservices: [{id: s, title: S}]\n"), 0644))

	cat, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Acme", cat.Brand)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
