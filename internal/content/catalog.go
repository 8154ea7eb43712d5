// Package content loads the static page copy: hero text, services, team and footer.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/mablo/mablo/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

// ErrIncompleteCatalog indicates the content file is missing required parts
var ErrIncompleteCatalog = errors.New("content catalog is incomplete")

// Default returns the built-in catalog
func Default() (*domain.Catalog, error) {
	return Parse(defaultContent)
}

// Load reads a catalog from a YAML file. An empty path loads the built-in content.
func Load(path string) (*domain.Catalog, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog
func Parse(data []byte) (*domain.Catalog, error) {
	var cat domain.Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}
	if err := validate(&cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func validate(cat *domain.Catalog) error {
	if cat.Brand == "" || cat.Hero.Title == "" {
		return fmt.Errorf("%w: brand and hero title are required", ErrIncompleteCatalog)
	}
	if len(cat.Services) == 0 {
		return fmt.Errorf("%w: no services", ErrIncompleteCatalog)
	}
	for _, link := range cat.Nav {
		if _, ok := domain.ParseAnchor(string(link.Section)); !ok {
			return fmt.Errorf("%w: nav link %q: %w", ErrIncompleteCatalog, link.Label, domain.ErrUnknownSection)
		}
	}
	return nil
}
