package taxtables

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/rgehrsitz/isoamt/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embedded embed.FS

// DefaultYear is the table used when no year is requested
const DefaultYear = 2022

// Registry maps tax years to validated tables
type Registry struct {
	years map[int]*domain.TaxYear
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{years: make(map[int]*domain.TaxYear)}
}

// Default returns a registry preloaded with the embedded 2016 and 2022 tables
func Default() (*Registry, error) {
	r := NewRegistry()
	entries, err := embedded.ReadDir("data")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded tables: %w", err)
	}
	for _, e := range entries {
		data, err := embedded.ReadFile("data/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded table %s: %w", e.Name(), err)
		}
		ty, err := Parse(data, FormatYAML)
		if err != nil {
			return nil, fmt.Errorf("embedded table %s: %w", e.Name(), err)
		}
		r.years[ty.Year] = ty
	}
	return r, nil
}

// MustDefault is Default for package-level initialisation and tests
func MustDefault() *Registry {
	r, err := Default()
	if err != nil {
		panic(err)
	}
	return r
}

// Register validates and stores a table, replacing any table for the same year
func (r *Registry) Register(ty *domain.TaxYear) error {
	if err := Validate(ty); err != nil {
		return err
	}
	r.years[ty.Year] = ty
	return nil
}

// Get returns the table for a year. Year 0 selects DefaultYear.
func (r *Registry) Get(year int) (*domain.TaxYear, error) {
	if year == 0 {
		year = DefaultYear
	}
	ty, ok := r.years[year]
	if !ok {
		return nil, fmt.Errorf("no tax table for year %d (available: %v)", year, r.Years())
	}
	return ty, nil
}

// Years lists the registered years in ascending order
func (r *Registry) Years() []int {
	years := make([]int, 0, len(r.years))
	for y := range r.years {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Format identifies a table file encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatForPath picks a format from a file extension, defaulting to YAML
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// Parse decodes and validates a table
func Parse(data []byte, format Format) (*domain.TaxYear, error) {
	var ty domain.TaxYear
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&ty); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&ty); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}
	if err := Validate(&ty); err != nil {
		return nil, err
	}
	return &ty, nil
}

// LoadFile reads a YAML or TOML table from disk
func LoadFile(path string) (*domain.TaxYear, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	ty, err := Parse(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ty, nil
}

// LoadInto loads each file and registers it, overriding embedded years
func (r *Registry) LoadInto(paths ...string) error {
	for _, p := range paths {
		ty, err := LoadFile(p)
		if err != nil {
			return err
		}
		r.years[ty.Year] = ty
	}
	return nil
}

// Marshal encodes a table in the given format
func Marshal(ty *domain.TaxYear, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		return toml.Marshal(ty)
	default:
		return yaml.Marshal(ty)
	}
}
