package service

import (
	"testing"

	"github.com/mablo/mablo/internal/content"
	"github.com/mablo/mablo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSearch(t *testing.T) *SearchService {
	t.Helper()
	cat, err := content.Default()
	require.NoError(t, err)
	return NewSearchService(cat, nil)
}

func TestFilterFindsServicesAndTeam(t *testing.T) {
	s := newSearch(t)

	results := s.Filter("sof")
	require.NotEmpty(t, results)
	assert.Equal(t, EntryMember, results[0].Kind)
	assert.Equal(t, domain.SectionAbout, results[0].Section)

	results = s.Filter("migra")
	require.NotEmpty(t, results)
	assert.Equal(t, "Datos & Migración", results[0].Title)
	assert.Equal(t, domain.SectionServices, results[0].Section)
	assert.NotEmpty(t, results[0].MatchedIndexes)
}

func TestFilterEmptyQueryListsEverything(t *testing.T) {
	s := newSearch(t)
	// 3 nav links + 3 services + 4 team members
	assert.Len(t, s.Filter("  "), 10)
}

func TestFilterNoMatch(t *testing.T) {
	s := newSearch(t)
	assert.Empty(t, s.Filter("zzzzqqq"))
}

func TestResolveSection(t *testing.T) {
	s := newSearch(t)

	cases := map[string]domain.SectionID{
		"":         domain.SectionHero,
		"services": domain.SectionServices,
		"#contact": domain.SectionContact,
		"Nosotros": domain.SectionAbout,
		"serv":     domain.SectionServices,
		"contac":   domain.SectionContact,
		"inicio":   domain.SectionHero,
	}
	for in, want := range cases {
		got, err := s.ResolveSection(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := s.ResolveSection("blog")
	assert.ErrorIs(t, err, domain.ErrUnknownSection)
}
