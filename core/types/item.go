// Package types - Material list items
package types

import "time"

// ManualOverride is a user-supplied quantity that permanently bypasses
// automatic resolution for one material item. Once set, batch resolution
// must never overwrite it.
type ManualOverride struct {
	Override   bool      `json:"override"`
	Quantity   float64   `json:"quantity"`
	Unit       string    `json:"unit"`
	Reason     string    `json:"reason,omitempty"`
	ResolvedBy string    `json:"resolved_by,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// MaterialItem is one entry in a project's material list. Items are
// created with raw AI or user values, passed through batch resolution,
// and mutated in place with resolved quantities or left unresolved for
// manual entry.
type MaterialItem struct {
	// Name is the free-text material name
	Name string `json:"name"`

	// Type optionally pins the material category
	Type string `json:"type,omitempty"`

	// BaseQuantity is the raw measured value before resolution; after a
	// successful resolution it holds the net container count
	BaseQuantity *float64 `json:"base_quantity,omitempty"`

	// Quantity is the purchase quantity (gross after resolution)
	Quantity float64 `json:"quantity"`

	// Unit is the quantity unit; defaults to "sq ft" before resolution
	Unit string `json:"unit,omitempty"`

	// CoverageRate optionally overrides the coverage table for this item
	CoverageRate *float64 `json:"coverage_rate,omitempty"`

	// ContainerUnit names the output unit for an overridden rate
	ContainerUnit string `json:"container_unit,omitempty"`

	// Override, when present, is sticky and authoritative
	Override *ManualOverride `json:"manual_override,omitempty"`

	// Resolved is set by batch resolution
	Resolved bool `json:"resolved"`

	// ResolutionTrace carries the calculation trace or failure message
	ResolutionTrace string `json:"resolution_trace,omitempty"`

	// Method and Confidence mirror the item's Resolution
	Method     ResolutionMethod `json:"resolution_method,omitempty"`
	Confidence ConfidenceLevel  `json:"confidence,omitempty"`
}
