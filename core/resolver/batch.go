// Package resolver - Batch resolution
package resolver

import (
	"fmt"
	"time"

	"material-quantity/core/types"
)

// BatchResult partitions a material list into resolved and failed items.
// Items appear in exactly one partition; failed items are surfaced to a
// human for manual entry.
type BatchResult struct {
	Resolved []*types.MaterialItem `json:"resolved"`
	Failed   []*types.MaterialItem `json:"failed"`
	Summary  string                `json:"summary"`

	// Confidence is the pessimistic aggregate over resolved items
	Confidence types.ConfidenceLevel `json:"confidence"`
}

// ResolveBatch resolves each material independently, mutating items in
// place. A single unresolvable item never aborts the batch: it degrades
// per item. Items carrying a manual override are copied through as
// resolved without invoking the resolver - overrides are sticky and
// authoritative.
//
// baseArea is the fallback input value for items without a BaseQuantity;
// wastePercent applies to every automatically resolved item.
func ResolveBatch(materials []*types.MaterialItem, baseArea, wastePercent float64) BatchResult {
	result := BatchResult{
		Resolved: make([]*types.MaterialItem, 0, len(materials)),
		Failed:   make([]*types.MaterialItem, 0),
	}

	for _, item := range materials {
		if item.Override != nil && item.Override.Override {
			applyOverride(item)
			result.Resolved = append(result.Resolved, item)
			continue
		}

		value := baseArea
		if item.BaseQuantity != nil {
			value = *item.BaseQuantity
		}
		unit := item.Unit
		if unit == "" {
			unit = "sq ft"
		}

		waste := wastePercent
		res := Resolve(types.ResolverInput{
			MaterialName:  item.Name,
			MaterialType:  item.Type,
			InputUnit:     unit,
			InputValue:    value,
			CoverageRate:  item.CoverageRate,
			ContainerUnit: item.ContainerUnit,
			WastePercent:  &waste,
		})

		if !res.Success {
			item.Resolved = false
			item.ResolutionTrace = res.ErrorMessage
			item.Method = res.Method
			item.Confidence = res.Confidence
			result.Failed = append(result.Failed, item)
			continue
		}

		net := float64(res.ResolvedQuantity)
		item.Quantity = float64(res.GrossQuantity)
		item.Unit = res.ResolvedUnit
		item.BaseQuantity = &net
		item.Resolved = true
		item.ResolutionTrace = res.Trace
		item.Method = res.Method
		item.Confidence = res.Confidence
		result.Resolved = append(result.Resolved, item)
	}

	result.Summary = fmt.Sprintf("resolved %d of %d materials (%d need manual entry)",
		len(result.Resolved), len(materials), len(result.Failed))
	result.Confidence = AggregateConfidence(result.Resolved)
	return result
}

// applyOverride copies a manual override through as a resolved item.
func applyOverride(item *types.MaterialItem) {
	ov := item.Override
	item.Quantity = ov.Quantity
	if ov.Unit != "" {
		item.Unit = ov.Unit
	}
	item.Resolved = true
	item.Method = types.MethodPassthrough
	item.Confidence = types.ConfidenceHigh
	item.ResolutionTrace = overrideTrace(ov)
}

func overrideTrace(ov *types.ManualOverride) string {
	who := ov.ResolvedBy
	if who == "" {
		who = "user"
	}
	reason := ov.Reason
	if reason == "" {
		reason = "no reason given"
	}
	when := ""
	if !ov.Timestamp.IsZero() {
		when = " on " + ov.Timestamp.Format(time.RFC3339)
	}
	return fmt.Sprintf("manual override by %s%s: %s", who, when, reason)
}
