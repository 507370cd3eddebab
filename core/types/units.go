// Package types - Unit vocabulary
package types

import "strings"

// containerUnits are the terminal purchasable units. A quantity already
// expressed in one of these needs no coverage conversion.
var containerUnits = map[string]bool{
	"gallon": true,
	"box":    true,
	"sheet":  true,
	"roll":   true,
	"piece":  true,
	"bag":    true,
	"bundle": true,
}

// areaUnits are the spellings of square footage accepted on input.
var areaUnits = map[string]bool{
	"sq ft":       true,
	"sqft":        true,
	"sq. ft.":     true,
	"sq.ft.":      true,
	"sf":          true,
	"square feet": true,
	"square foot": true,
}

// irregularPlurals maps plural unit spellings that a bare "s" trim
// does not handle.
var irregularPlurals = map[string]string{
	"boxes": "box",
}

// NormalizeUnit lowercases a unit string and reduces plural container
// units to their singular form. Area units are returned canonically as
// "sq ft". Unrecognized units pass through lowercased.
func NormalizeUnit(unit string) string {
	u := strings.ToLower(strings.TrimSpace(unit))
	if areaUnits[u] {
		return "sq ft"
	}
	if s, ok := irregularPlurals[u]; ok {
		return s
	}
	if containerUnits[u] {
		return u
	}
	if trimmed := strings.TrimSuffix(u, "s"); trimmed != u && containerUnits[trimmed] {
		return trimmed
	}
	return u
}

// IsContainerUnit reports whether the unit is a terminal purchasable
// container unit (singular or plural, any case).
func IsContainerUnit(unit string) bool {
	return containerUnits[NormalizeUnit(unit)]
}

// IsAreaUnit reports whether the unit expresses square footage.
func IsAreaUnit(unit string) bool {
	return NormalizeUnit(unit) == "sq ft"
}
