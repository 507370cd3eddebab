// Package types - Quantity resolution types
package types

import "github.com/shopspring/decimal"

// CoverageRate is a physical coverage constant curated from manufacturer
// specifications (e.g. 350 sq ft per gallon). Rates are never zero,
// never negative, and never computed at runtime.
type CoverageRate struct {
	// Rate is how much of InputUnit one OutputUnit covers
	Rate decimal.Decimal `json:"rate"`

	// InputUnit is the measured unit (e.g. "sq ft", "linear ft")
	InputUnit string `json:"input_unit"`

	// OutputUnit is the purchasable container unit (e.g. "gallon")
	OutputUnit string `json:"output_unit"`
}

// ResolverInput is one material's raw measurement as produced by AI
// analysis or manual entry.
type ResolverInput struct {
	// MaterialName is the free-text material name
	MaterialName string `json:"material_name"`

	// MaterialType optionally pins the category, bypassing classification
	MaterialType string `json:"material_type,omitempty"`

	// InputUnit is the unit of InputValue (area, linear, or container)
	InputUnit string `json:"input_unit"`

	// InputValue is the raw measured quantity, >= 0
	InputValue float64 `json:"input_value"`

	// CoverageRate optionally overrides the coverage table
	CoverageRate *float64 `json:"coverage_rate,omitempty"`

	// ContainerUnit names the output unit when CoverageRate is
	// overridden; left empty, the resolver falls back to "unit"
	ContainerUnit string `json:"container_unit,omitempty"`

	// WastePercent is the waste buffer as a percentage; nil means 10
	WastePercent *float64 `json:"waste_percent,omitempty"`
}

// Waste returns the effective waste percentage.
func (in ResolverInput) Waste() float64 {
	if in.WastePercent == nil {
		return 10
	}
	return *in.WastePercent
}

// Resolution is the tagged result of resolving one material.
// Failures are values, never errors: a failed resolution carries
// Method=manual_required and Confidence=failed.
type Resolution struct {
	// Success discriminates resolved from failed results
	Success bool `json:"success"`

	// ResolvedQuantity is the net container count, ceiling-rounded
	ResolvedQuantity int64 `json:"resolved_quantity,omitempty"`

	// ResolvedUnit is the purchasable unit of ResolvedQuantity
	ResolvedUnit string `json:"resolved_unit,omitempty"`

	// GrossQuantity is ResolvedQuantity inflated by the waste buffer,
	// always >= ResolvedQuantity
	GrossQuantity int64 `json:"gross_quantity,omitempty"`

	// Method records the arithmetic path taken
	Method ResolutionMethod `json:"resolution_method"`

	// Confidence grades the resolution
	Confidence ConfidenceLevel `json:"confidence"`

	// Trace documents the exact arithmetic performed. First-class
	// output for audit, not a debug log.
	Trace string `json:"calculation_trace,omitempty"`

	// ErrorMessage names the failure cause on unresolved results
	ErrorMessage string `json:"error_message,omitempty"`
}
