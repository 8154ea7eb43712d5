package service

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mablo/mablo/internal/domain"
	sahilm "github.com/sahilm/fuzzy"
)

// EntryKind distinguishes what a palette entry points at
type EntryKind int

const (
	EntrySection EntryKind = iota
	EntryService
	EntryMember
)

// String returns a short label for the entry kind
func (k EntryKind) String() string {
	switch k {
	case EntrySection:
		return "sección"
	case EntryService:
		return "servicio"
	case EntryMember:
		return "equipo"
	default:
		return "?"
	}
}

// FilterItem is one searchable entry of the page
type FilterItem struct {
	Kind    EntryKind
	Title   string           // Searchable, displayed text
	Detail  string           // Secondary text
	Section domain.SectionID // Where selecting the entry scrolls to
}

// FilterResult represents a search result with match metadata for highlighting
type FilterResult struct {
	FilterItem
	MatchedIndexes []int // Byte offsets into Title that matched
	Score          int   // Higher is better
}

// FilterIndex implements sahilm/fuzzy.Source over pre-lowered titles
type FilterIndex struct {
	items       []FilterItem
	lowerTitles []string
}

// String returns the lowercase title at index i (implements fuzzy.Source)
func (idx *FilterIndex) String(i int) string { return idx.lowerTitles[i] }

// Len returns the number of items (implements fuzzy.Source)
func (idx *FilterIndex) Len() int { return len(idx.items) }

// SearchService provides the jump-to palette and section name resolution
type SearchService struct {
	logger *slog.Logger

	mu       sync.RWMutex
	index    *FilterIndex
	sections map[string]domain.SectionID // lowercase alias -> section
	aliases  []string
}

// NewSearchService indexes the catalog
func NewSearchService(cat *domain.Catalog, logger *slog.Logger) *SearchService {
	if logger == nil {
		logger = slog.Default()
	}
	s := &SearchService{logger: logger}
	s.Reindex(cat)
	return s
}

// Reindex rebuilds the index from cat
func (s *SearchService) Reindex(cat *domain.Catalog) {
	index := &FilterIndex{}
	sections := make(map[string]domain.SectionID)

	add := func(item FilterItem) {
		index.items = append(index.items, item)
		index.lowerTitles = append(index.lowerTitles, strings.ToLower(item.Title))
	}
	alias := func(name string, section domain.SectionID) {
		sections[strings.ToLower(name)] = section
	}

	for _, sec := range domain.Sections {
		alias(string(sec), sec)
	}
	alias("inicio", domain.SectionHero)
	for _, link := range cat.Nav {
		add(FilterItem{Kind: EntrySection, Title: link.Label, Detail: link.Section.Anchor(), Section: link.Section})
		alias(link.Label, link.Section)
	}
	for _, svc := range cat.Services {
		add(FilterItem{Kind: EntryService, Title: svc.Title, Detail: svc.Subtitle, Section: domain.SectionServices})
	}
	for _, member := range cat.Team {
		add(FilterItem{Kind: EntryMember, Title: member.Name, Detail: member.Specialty, Section: domain.SectionAbout})
	}

	aliases := make([]string, 0, len(sections))
	for name := range sections {
		aliases = append(aliases, name)
	}
	sort.Strings(aliases)

	s.mu.Lock()
	s.index = index
	s.sections = sections
	s.aliases = aliases
	s.mu.Unlock()

	s.logger.Debug("indexed page entries", "entries", index.Len(), "aliases", len(aliases))
}

// Filter fuzzy matches query against every entry, best first
func (s *SearchService) Filter(query string) []FilterResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query = strings.TrimSpace(query)
	if query == "" {
		results := make([]FilterResult, len(s.index.items))
		for i, item := range s.index.items {
			results[i] = FilterResult{FilterItem: item}
		}
		return results
	}

	matches := sahilm.FindFrom(strings.ToLower(query), s.index)
	results := make([]FilterResult, len(matches))
	for i, match := range matches {
		results[i] = FilterResult{
			FilterItem:     s.index.items[match.Index],
			MatchedIndexes: match.MatchedIndexes,
			Score:          match.Score,
		}
	}
	return results
}

// ResolveSection maps a loose section name ("serv", "#contact", "Nosotros")
// to a section. Exact aliases win; otherwise the closest fuzzy match does.
func (s *SearchService) ResolveSection(name string) (domain.SectionID, error) {
	name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "#")))
	if name == "" {
		return domain.SectionHero, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if sec, ok := s.sections[name]; ok {
		return sec, nil
	}

	ranks := fuzzy.RankFindNormalizedFold(name, s.aliases)
	if len(ranks) == 0 {
		return "", fmt.Errorf("%q: %w", name, domain.ErrUnknownSection)
	}
	sort.Sort(ranks)
	return s.sections[ranks[0].Target], nil
}
