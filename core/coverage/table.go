// Package coverage holds the physical coverage constants the engine
// converts with. The table is curated from manufacturer specifications:
// rates are physics, not configuration, and are never mutated or computed
// at runtime. A material the table does not know is a resolution failure,
// never a guess.
package coverage

import (
	"sort"

	"github.com/shopspring/decimal"

	"material-quantity/core/types"
)

func entry(rate, inputUnit, outputUnit string) types.CoverageRate {
	return types.CoverageRate{
		Rate:       decimal.RequireFromString(rate),
		InputUnit:  inputUnit,
		OutputUnit: outputUnit,
	}
}

// rates is the coverage table, keyed by refined material key.
// All rates are strictly positive.
var rates = map[string]types.CoverageRate{
	// Liquids
	"paint":   entry("350", "sq ft", "gallon"),
	"primer":  entry("300", "sq ft", "gallon"),
	"sealant": entry("240", "sq ft", "gallon"),

	// Flooring
	"laminate":    entry("20", "sq ft", "box"),
	"hardwood":    entry("22.5", "sq ft", "box"),
	"vinyl_plank": entry("24", "sq ft", "box"),
	"carpet":      entry("180", "sq ft", "roll"),
	"tile":        entry("12.5", "sq ft", "box"),

	// Sheet goods
	"drywall_4x8":  entry("32", "sq ft", "sheet"),
	"drywall_4x12": entry("48", "sq ft", "sheet"),
	"plywood":      entry("32", "sq ft", "sheet"),

	// Insulation
	"insulation_batt":  entry("40", "sq ft", "roll"),
	"insulation_rigid": entry("32", "sq ft", "sheet"),

	// Setting materials
	"underlayment": entry("100", "sq ft", "roll"),
	"adhesive":     entry("60", "sq ft", "bag"),
	"grout":        entry("120", "sq ft", "bag"),

	// Linear stock, sold in fixed lengths
	"trim":          entry("8", "linear ft", "piece"),
	"crown":         entry("12", "linear ft", "piece"),
	"quarter_round": entry("8", "linear ft", "piece"),
	"stud":          entry("8", "linear ft", "piece"),

	// Bagged and bundled
	"concrete":     entry("1.8", "sq ft", "bag"),
	"shingles":     entry("33.3", "sq ft", "bundle"),
	"roofing_felt": entry("400", "sq ft", "roll"),

	// Masonry units
	"brick":     entry("0.22", "sq ft", "piece"),
	"cmu_block": entry("0.89", "sq ft", "piece"),
}

// Lookup returns the coverage rate for a material key.
func Lookup(key string) (types.CoverageRate, bool) {
	r, ok := rates[key]
	return r, ok
}

// Keys returns all coverage keys in sorted order, for reporting.
func Keys() []string {
	keys := make([]string, 0, len(rates))
	for k := range rates {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
