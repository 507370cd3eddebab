// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
package types

import "strings"

// MaterialCategory is the closed set of material categories the engine
// understands. Every category except CategoryUnknown maps to at least one
// coverage key.
type MaterialCategory string

const (
	CategoryPaint        MaterialCategory = "paint"
	CategoryFlooring     MaterialCategory = "flooring"
	CategoryDrywall      MaterialCategory = "drywall"
	CategoryInsulation   MaterialCategory = "insulation"
	CategoryTile         MaterialCategory = "tile"
	CategoryTrim         MaterialCategory = "trim"
	CategoryUnderlayment MaterialCategory = "underlayment"
	CategoryAdhesive     MaterialCategory = "adhesive"
	CategoryGrout        MaterialCategory = "grout"
	CategoryPrimer       MaterialCategory = "primer"
	CategorySealant      MaterialCategory = "sealant"
	CategoryLumber       MaterialCategory = "lumber"
	CategoryConcrete     MaterialCategory = "concrete"
	CategoryRoofing      MaterialCategory = "roofing"
	CategoryMasonry      MaterialCategory = "masonry"
	CategoryUnknown      MaterialCategory = "unknown"
)

// String returns the string representation of the category
func (c MaterialCategory) String() string {
	return string(c)
}

// IsValid checks if the category is a known category
func (c MaterialCategory) IsValid() bool {
	switch c {
	case CategoryPaint, CategoryFlooring, CategoryDrywall, CategoryInsulation,
		CategoryTile, CategoryTrim, CategoryUnderlayment, CategoryAdhesive,
		CategoryGrout, CategoryPrimer, CategorySealant, CategoryLumber,
		CategoryConcrete, CategoryRoofing, CategoryMasonry:
		return true
	default:
		return false
	}
}

// AllCategories returns every category except unknown.
func AllCategories() []MaterialCategory {
	return []MaterialCategory{
		CategoryPaint, CategoryFlooring, CategoryDrywall, CategoryInsulation,
		CategoryTile, CategoryTrim, CategoryUnderlayment, CategoryAdhesive,
		CategoryGrout, CategoryPrimer, CategorySealant, CategoryLumber,
		CategoryConcrete, CategoryRoofing, CategoryMasonry,
	}
}

// CategoryFromString parses a category string, returning CategoryUnknown
// for anything outside the closed set.
func CategoryFromString(s string) MaterialCategory {
	c := MaterialCategory(strings.ToLower(strings.TrimSpace(s)))
	if c.IsValid() {
		return c
	}
	return CategoryUnknown
}

// ConfidenceLevel grades how trustworthy a resolution is.
// high = table-driven direct conversion, medium = geometric estimation,
// low = weak heuristic estimation, failed = no result produced.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
	ConfidenceFailed ConfidenceLevel = "failed"
)

// String returns the string representation
func (c ConfidenceLevel) String() string {
	return string(c)
}

// ResolutionMethod records why a particular arithmetic path was taken,
// for audit and UI display.
type ResolutionMethod string

const (
	MethodAreaToLiquid   ResolutionMethod = "area_to_liquid"
	MethodAreaToBoxes    ResolutionMethod = "area_to_boxes"
	MethodAreaToSheets   ResolutionMethod = "area_to_sheets"
	MethodAreaToRolls    ResolutionMethod = "area_to_rolls"
	MethodAreaToBags     ResolutionMethod = "area_to_bags"
	MethodLinearToPieces ResolutionMethod = "linear_to_pieces"
	MethodPassthrough    ResolutionMethod = "passthrough"
	MethodManualRequired ResolutionMethod = "manual_required"
)

// String returns the string representation
func (m ResolutionMethod) String() string {
	return string(m)
}

// MethodForUnit selects the resolution method from the shape of the
// output unit a coverage conversion lands in.
func MethodForUnit(unit string) ResolutionMethod {
	switch NormalizeUnit(unit) {
	case "gallon":
		return MethodAreaToLiquid
	case "box":
		return MethodAreaToBoxes
	case "sheet":
		return MethodAreaToSheets
	case "roll":
		return MethodAreaToRolls
	case "bag":
		return MethodAreaToBags
	case "piece":
		return MethodLinearToPieces
	default:
		return MethodPassthrough
	}
}
