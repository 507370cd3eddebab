// Package resolver - Pessimistic batch confidence
// Aggregate confidence = MIN(all resolved items).
// No averaging or weighting: a batch is only as trustworthy as its
// weakest resolution.
package resolver

import "material-quantity/core/types"

// confidenceRank orders levels from weakest to strongest.
var confidenceRank = map[types.ConfidenceLevel]int{
	types.ConfidenceFailed: 0,
	types.ConfidenceLow:    1,
	types.ConfidenceMedium: 2,
	types.ConfidenceHigh:   3,
}

// AggregateConfidence returns the minimum confidence across resolved
// items. An empty batch, or one where nothing resolved, grades failed:
// no data is no confidence.
func AggregateConfidence(items []*types.MaterialItem) types.ConfidenceLevel {
	min := types.ConfidenceLevel("")
	for _, item := range items {
		if !item.Resolved {
			continue
		}
		if min == "" || confidenceRank[item.Confidence] < confidenceRank[min] {
			min = item.Confidence
		}
	}
	if min == "" {
		return types.ConfidenceFailed
	}
	return min
}
