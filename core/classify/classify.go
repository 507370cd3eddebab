// Package classify maps free-text material names to the closed category set.
// Classification is an ordered rule list evaluated top to bottom: the first
// matching rule wins, and ordering is load-bearing because terms overlap
// (tile before generic flooring, primer before paint, trim terms before
// anything that mentions "floor").
package classify

import (
	"strings"

	"material-quantity/core/types"
)

// rule is one (terms, category) pair. A rule matches when any of its
// terms appears as a substring of the lowercased material name.
type rule struct {
	terms    []string
	category types.MaterialCategory
}

// rules is the ordered classification table. Append-only at the bottom;
// reordering existing rules changes classification results.
var rules = []rule{
	{[]string{"primer"}, types.CategoryPrimer},
	{[]string{"transition", "threshold", "baseboard", "crown", "molding", "moulding", "casing", "quarter round", "trim"}, types.CategoryTrim},
	{[]string{"tile", "porcelain", "ceramic", "mosaic"}, types.CategoryTile},
	{[]string{"grout"}, types.CategoryGrout},
	{[]string{"thinset", "thin-set", "adhesive", "glue"}, types.CategoryAdhesive},
	{[]string{"underlayment"}, types.CategoryUnderlayment},
	{[]string{"sealant", "sealer", "caulk", "silicone"}, types.CategorySealant},
	{[]string{"paint"}, types.CategoryPaint},
	{[]string{"drywall", "sheetrock", "gypsum"}, types.CategoryDrywall},
	{[]string{"insulation", "batt"}, types.CategoryInsulation},
	{[]string{"shingle", "roofing", "roof"}, types.CategoryRoofing},
	{[]string{"concrete", "cement"}, types.CategoryConcrete},
	{[]string{"brick", "masonry", "cinder block", "cmu"}, types.CategoryMasonry},
	{[]string{"plywood", "lumber", "stud", "joist", "2x4", "2x6"}, types.CategoryLumber},
	{[]string{"hardwood", "laminate", "vinyl", "carpet", "floor"}, types.CategoryFlooring},
}

// InferCategory classifies a material name. Total over all strings: no
// failure mode, no side effects; unmatched names return CategoryUnknown.
func InferCategory(name string) types.MaterialCategory {
	lower := strings.ToLower(name)
	for _, r := range rules {
		for _, term := range r.terms {
			if strings.Contains(lower, term) {
				return r.category
			}
		}
	}
	return types.CategoryUnknown
}
