package catalog

// Category groups products that share a weight tolerance band.
type Category string

const (
	Beverage Category = "beverage"
	Snack    Category = "snack"
	Candy    Category = "candy"
	Food     Category = "food"
	Dairy    Category = "dairy"
	Health   Category = "health"
	Frozen   Category = "frozen"
	Etc      Category = "etc"

	// NonProduct marks the reserved hand row (class id 0). It is never
	// listed and never participates in weight matching.
	NonProduct Category = "non_product"
)

// MaxTolerance is the widest tolerance any category carries.
const MaxTolerance = 0.15

// tolerances maps each category to its relative weight tolerance.
// Frozen items swing the most (ice buildup), beverages the least.
var tolerances = map[Category]float64{
	Beverage: 0.05,
	Snack:    0.10,
	Candy:    0.10,
	Food:     0.08,
	Dairy:    0.07,
	Health:   0.10,
	Frozen:   0.15,
	Etc:      0.15,
}

// ToleranceOf returns the relative tolerance for a category.
// Unknown categories fall back to the Etc band.
func ToleranceOf(cat Category) float64 {
	if tol, ok := tolerances[cat]; ok {
		return tol
	}
	return tolerances[Etc]
}

// Product is one sellable item. ID matches the detector's class id.
type Product struct {
	ID          int      `json:"product_id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Category    Category `json:"category" yaml:"category"`
	UnitWeightG float64  `json:"weight" yaml:"weight"`
	UnitPrice   int      `json:"price" yaml:"price"`
}

// Tolerance returns the product's category tolerance.
func (p Product) Tolerance() float64 {
	return ToleranceOf(p.Category)
}

// HasKnownWeight reports whether the product can take part in
// weight matching.
func (p Product) HasKnownWeight() bool {
	return p.UnitWeightG > 0
}
