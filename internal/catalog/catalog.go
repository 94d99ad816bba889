package catalog

import (
	"errors"
	"sort"
)

// ErrNotFound is returned when a product id or name is not registered.
var ErrNotFound = errors.New("product not found")

// HandClassID is the detector class reserved for hands.
const HandClassID = 0

// Catalog maps detector class ids to product data. It is built once and
// never mutated afterwards, so any number of goroutines may read it
// without locking.
type Catalog struct {
	byID   map[int]Product
	byName map[string]Product
}

// New builds a catalog from a product list. Later entries win on
// duplicate ids, matching how overrides behave in catalog files.
func New(products []Product) *Catalog {
	c := &Catalog{
		byID:   make(map[int]Product, len(products)),
		byName: make(map[string]Product, len(products)),
	}
	for _, p := range products {
		c.byID[p.ID] = p
		c.byName[p.Name] = p
	}
	return c
}

// ByID looks a product up by detector class id.
func (c *Catalog) ByID(id int) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// ByName looks a product up by its catalog name.
func (c *Catalog) ByName(name string) (Product, bool) {
	p, ok := c.byName[name]
	return p, ok
}

// All returns every sellable product ordered by id. The hand row is
// not a product and is excluded.
func (c *Catalog) All() []Product {
	out := make([]Product, 0, len(c.byID))
	for id, p := range c.byID {
		if id == HandClassID {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Count reports how many sellable products are registered.
func (c *Catalog) Count() int {
	n := len(c.byID)
	if _, ok := c.byID[HandClassID]; ok {
		n--
	}
	return n
}

// SearchByWeight returns products whose unit weight lies within
// target*(1±tolerance), ordered by id. Products without a known
// weight never match.
func (c *Catalog) SearchByWeight(targetG, tolerance float64) []Product {
	minW := targetG * (1 - tolerance)
	maxW := targetG * (1 + tolerance)

	out := make([]Product, 0, 4)
	for id, p := range c.byID {
		if id == HandClassID || !p.HasKnownWeight() {
			continue
		}
		if p.UnitWeightG >= minW && p.UnitWeightG <= maxW {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
