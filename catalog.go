package pixelgrid

import (
	_ "embed" // catalog.yaml
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/goccy/go-yaml"
)

//go:embed catalog.yaml
var defaultCatalog []byte

var (
	// ErrEmptyCatalog is returned when a catalog defines no assets
	ErrEmptyCatalog = errors.New("catalog: no assets defined")
	// ErrBadSlug is returned for a slug that isn't safe to use in a filename
	ErrBadSlug = errors.New("catalog: invalid slug")
	// ErrDuplicateSlug is returned when two assets share a slug
	ErrDuplicateSlug = errors.New("catalog: duplicate slug")
	// ErrNoCatalog is returned when there is no catalog to render
	ErrNoCatalog = errors.New("pixelgrid: no catalog")
)

var slugPattern = regexp.MustCompile(`^[A-Za-z0-9_-][A-Za-z0-9._-]*$`)

// Catalog is an ordered collection of assets
type Catalog struct {
	Assets []Asset `yaml:"assets"`
}

// Validate checks that every slug is unique and filename safe and that every
// asset can be rasterized
func (c *Catalog) Validate() error {
	if len(c.Assets) == 0 {
		return ErrEmptyCatalog
	}

	slugs := make(map[string]struct{}, len(c.Assets))
	for i := range c.Assets {
		a := &c.Assets[i]
		if !slugPattern.MatchString(a.Slug) {
			return fmt.Errorf("%w: %q", ErrBadSlug, a.Slug)
		}
		if _, ok := slugs[a.Slug]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateSlug, a.Slug)
		}
		slugs[a.Slug] = struct{}{}

		if _, err := a.Render(); err != nil {
			return err
		}
	}

	return nil
}

// ParseCatalog decodes and validates a YAML catalog
func ParseCatalog(b []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.UnmarshalWithOptions(b, &c, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// LoadCatalog reads and validates the YAML catalog in file
func LoadCatalog(file string) (*Catalog, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	c, err := ParseCatalog(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	return c, nil
}

// DefaultCatalog returns the built-in catalog of crash-zone assets
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalog)
}
