// Package linear forks intrinsically linear materials out of the
// area-based resolution path. Dividing 1000 sq ft by a per-linear-ft
// coverage rate would silently produce nonsense for baseboard or
// transition strips, so linear materials are detected by name and their
// footage is estimated geometrically before any coverage lookup happens.
package linear

import (
	"math"
	"strings"

	"material-quantity/core/types"
)

// linearTerms identify materials measured and purchased by linear
// footage rather than area.
var linearTerms = []string{
	"transition",
	"threshold",
	"strip",
	"baseboard",
	"crown",
	"molding",
	"trim",
	"casing",
	"quarter round",
}

// transitionTerms identify the subset estimated per room rather than
// per perimeter.
var transitionTerms = []string{"transition", "threshold", "strip"}

// IsLinearMaterial reports whether the material is intrinsically linear.
func IsLinearMaterial(name string) bool {
	lower := strings.ToLower(name)
	for _, term := range linearTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// EstimateFromArea approximates linear footage for a linear material
// whose caller supplied an area measurement.
//
// Transition and threshold items: one room per 200 sq ft, two 3 ft
// transitions per room; confidence low because room count from area is a
// weak heuristic. Perimeter trim (baseboard, crown, casing): four sides
// of a square room of the given area, less 15% for door and window
// openings; confidence medium. The constants are inherited heuristics
// with no cited source and are deliberately left as-is.
func EstimateFromArea(area float64, name string) (int64, types.ConfidenceLevel) {
	lower := strings.ToLower(name)
	for _, term := range transitionTerms {
		if strings.Contains(lower, term) {
			rooms := math.Ceil(area / 200)
			return int64(math.Ceil(rooms * 2 * 3)), types.ConfidenceLow
		}
	}

	perimeter := 4 * math.Sqrt(area) * 0.85
	return int64(math.Ceil(perimeter)), types.ConfidenceMedium
}
