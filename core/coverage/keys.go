// Package coverage - Coverage key refinement
package coverage

import (
	"strings"

	"material-quantity/core/types"
)

// KeyFor selects a coverage key for a classified material. A single
// category can cover several physical products with different coverage
// rates (hardwood vs laminate boxes, 4x8 vs 4x12 drywall), so the name is
// re-inspected to refine the key; each category falls back to a
// representative default. ok is false only when the category has no
// physical key at all.
func KeyFor(category types.MaterialCategory, name string) (string, bool) {
	lower := strings.ToLower(name)

	switch category {
	case types.CategoryPaint:
		return "paint", true
	case types.CategoryPrimer:
		return "primer", true
	case types.CategorySealant:
		return "sealant", true
	case types.CategoryFlooring:
		switch {
		case strings.Contains(lower, "hardwood"):
			return "hardwood", true
		case strings.Contains(lower, "vinyl"):
			return "vinyl_plank", true
		case strings.Contains(lower, "carpet"):
			return "carpet", true
		default:
			return "laminate", true
		}
	case types.CategoryTile:
		return "tile", true
	case types.CategoryDrywall:
		if strings.Contains(lower, "4x12") || strings.Contains(lower, "4 x 12") {
			return "drywall_4x12", true
		}
		return "drywall_4x8", true
	case types.CategoryInsulation:
		if strings.Contains(lower, "rigid") || strings.Contains(lower, "foam") || strings.Contains(lower, "board") {
			return "insulation_rigid", true
		}
		return "insulation_batt", true
	case types.CategoryUnderlayment:
		return "underlayment", true
	case types.CategoryAdhesive:
		return "adhesive", true
	case types.CategoryGrout:
		return "grout", true
	case types.CategoryTrim:
		switch {
		case strings.Contains(lower, "crown"):
			return "crown", true
		case strings.Contains(lower, "quarter round"):
			return "quarter_round", true
		default:
			return "trim", true
		}
	case types.CategoryLumber:
		if strings.Contains(lower, "plywood") {
			return "plywood", true
		}
		return "stud", true
	case types.CategoryConcrete:
		return "concrete", true
	case types.CategoryRoofing:
		if strings.Contains(lower, "felt") || strings.Contains(lower, "paper") {
			return "roofing_felt", true
		}
		return "shingles", true
	case types.CategoryMasonry:
		if strings.Contains(lower, "block") || strings.Contains(lower, "cmu") {
			return "cmu_block", true
		}
		return "brick", true
	default:
		return "", false
	}
}
