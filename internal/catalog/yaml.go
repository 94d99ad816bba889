package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileEntry is one product row in a catalog file.
type fileEntry struct {
	ID       int      `yaml:"id"`
	Name     string   `yaml:"name"`
	Category Category `yaml:"category"`
	Weight   float64  `yaml:"weight"`
	Price    int      `yaml:"price"`
}

// LoadFile reads a YAML catalog. Two layouts are accepted: a document
// with a top-level "classes" list (the detector's label file layout)
// or a bare list of product entries.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	cat, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cat, nil
}

// Parse builds a catalog from raw YAML.
func Parse(raw []byte) (*Catalog, error) {
	var wrapped struct {
		Classes *[]fileEntry `yaml:"classes"`
	}
	if err := yaml.Unmarshal(raw, &wrapped); err == nil && wrapped.Classes != nil {
		return fromEntries(*wrapped.Classes)
	}

	var entries []fileEntry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("expected a 'classes' key or a product list: %w", err)
	}
	return fromEntries(entries)
}

func fromEntries(entries []fileEntry) (*Catalog, error) {
	products := make([]Product, 0, len(entries))
	for i, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("entry %d: missing name", i)
		}
		if e.Weight < 0 {
			return nil, fmt.Errorf("entry %d (%s): negative weight", i, e.Name)
		}
		cat := e.Category
		if _, known := tolerances[cat]; !known {
			cat = Etc
		}
		products = append(products, Product{
			ID:          e.ID,
			Name:        e.Name,
			Category:    cat,
			UnitWeightG: e.Weight,
			UnitPrice:   e.Price,
		})
	}
	return New(products), nil
}
