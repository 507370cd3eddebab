// Package resolver converts raw measurements (area, linear footage, item
// counts) into physically correct, purchasable material quantities.
//
// Resolution is pure and deterministic: no I/O, no hidden state, no
// randomness. The engine never invents a coverage constant - when the
// category cannot be classified or no coverage rate is known, the result
// is an explicit failure value directing the quantity to manual entry.
// Failures are data, never errors.
package resolver

import (
	"fmt"

	"github.com/shopspring/decimal"

	"material-quantity/core/classify"
	"material-quantity/core/coverage"
	"material-quantity/core/linear"
	"material-quantity/core/types"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// wasteMultiplier turns a waste percentage into a gross multiplier,
// e.g. 10 -> 1.1. Waste is additive only: the multiplier is floored at
// 1, so a negative percentage can never shrink a quantity below its
// net resolution.
func wasteMultiplier(percent float64) decimal.Decimal {
	mult := decimal.NewFromFloat(percent).Div(hundred).Add(one)
	if mult.LessThan(one) {
		return one
	}
	return mult
}

// Resolve resolves one material's raw input into a purchase quantity.
//
// InputValue must be >= 0 (the caller's invariant). Exactly two failure
// causes exist: unknown material category and missing coverage rate.
// Both produce Method=manual_required, Confidence=failed; an explicit
// CoverageRate override is the only way past either.
func Resolve(in types.ResolverInput) types.Resolution {
	waste := in.Waste()
	mult := wasteMultiplier(waste)

	category := types.CategoryUnknown
	if in.MaterialType != "" {
		category = types.CategoryFromString(in.MaterialType)
	}
	if category == types.CategoryUnknown {
		category = classify.InferCategory(in.MaterialName)
	}
	if category == types.CategoryUnknown && in.CoverageRate == nil {
		return failure(fmt.Sprintf("unknown material category for %q; manual quantity entry required", in.MaterialName))
	}

	// Terminal container units need no conversion at all.
	if types.IsContainerUnit(in.InputUnit) {
		return passthrough(in, waste, mult)
	}

	// Linear materials with an area input are forked out before any
	// coverage lookup: area / (per linear ft) arithmetic would be
	// nonsense for baseboard or transition strips.
	if linear.IsLinearMaterial(in.MaterialName) && types.IsAreaUnit(in.InputUnit) {
		return resolveLinear(in, waste, mult)
	}

	rate, inputUnit, outputUnit, ok := coverageFor(in, category)
	if !ok {
		return failure(fmt.Sprintf("no coverage rate available for %q (category %s); manual quantity entry required", in.MaterialName, category))
	}

	value := decimal.NewFromFloat(in.InputValue)
	raw := value.Div(rate)
	resolved := raw.Ceil().IntPart()
	gross := decimal.NewFromInt(resolved).Mul(mult).Ceil().IntPart()

	trace := fmt.Sprintf("%s %s / %s %s per %s = %s, rounded up to %d %s; waste %s%%: ceil(%d x %s) = %d %s",
		value.String(), inputUnit, rate.String(), inputUnit, outputUnit,
		raw.StringFixed(2), resolved, outputUnit,
		decimal.NewFromFloat(waste).String(), resolved, mult.String(), gross, outputUnit)

	return types.Resolution{
		Success:          true,
		ResolvedQuantity: resolved,
		ResolvedUnit:     outputUnit,
		GrossQuantity:    gross,
		Method:           types.MethodForUnit(outputUnit),
		Confidence:       types.ConfidenceHigh,
		Trace:            trace,
	}
}

// coverageFor selects the coverage rate for a resolution: an explicit
// caller override wins, otherwise the static table via key refinement.
// ok is false when neither source has a rate. An override without a
// ContainerUnit falls back to the generic output unit "unit"; the input
// surfaces (API, schedule files) reject that combination up front, so
// the fallback is only reachable by direct engine callers.
func coverageFor(in types.ResolverInput, category types.MaterialCategory) (rate decimal.Decimal, inputUnit, outputUnit string, ok bool) {
	if in.CoverageRate != nil {
		if *in.CoverageRate <= 0 {
			return decimal.Zero, "", "", false
		}
		outputUnit = types.NormalizeUnit(in.ContainerUnit)
		if outputUnit == "" {
			outputUnit = "unit"
		}
		return decimal.NewFromFloat(*in.CoverageRate), types.NormalizeUnit(in.InputUnit), outputUnit, true
	}

	key, ok := coverage.KeyFor(category, in.MaterialName)
	if !ok {
		return decimal.Zero, "", "", false
	}
	cr, found := coverage.Lookup(key)
	if !found {
		return decimal.Zero, "", "", false
	}
	return cr.Rate, cr.InputUnit, cr.OutputUnit, true
}

// passthrough handles inputs already expressed in a purchasable unit.
func passthrough(in types.ResolverInput, waste float64, mult decimal.Decimal) types.Resolution {
	unit := types.NormalizeUnit(in.InputUnit)
	value := decimal.NewFromFloat(in.InputValue)
	resolved := value.Ceil().IntPart()
	gross := value.Mul(mult).Ceil().IntPart()
	if gross < resolved {
		gross = resolved
	}

	trace := fmt.Sprintf("passthrough: %s %s is already a container quantity; waste %s%%: ceil(%s x %s) = %d %s",
		value.String(), unit, decimal.NewFromFloat(waste).String(),
		value.String(), mult.String(), gross, unit)

	return types.Resolution{
		Success:          true,
		ResolvedQuantity: resolved,
		ResolvedUnit:     unit,
		GrossQuantity:    gross,
		Method:           types.MethodPassthrough,
		Confidence:       types.ConfidenceHigh,
		Trace:            trace,
	}
}

// resolveLinear estimates linear footage from an area measurement.
func resolveLinear(in types.ResolverInput, waste float64, mult decimal.Decimal) types.Resolution {
	lf, confidence := linear.EstimateFromArea(in.InputValue, in.MaterialName)
	gross := decimal.NewFromInt(lf).Mul(mult).Ceil().IntPart()

	var formula string
	if confidence == types.ConfidenceLow {
		formula = "ceil(area / 200 sq ft per room) x 2 transitions x 3 ft"
	} else {
		formula = "ceil(4 x sqrt(area) x 0.85) perimeter approximation"
	}

	area := decimal.NewFromFloat(in.InputValue)
	trace := fmt.Sprintf("linear material: estimated %d linear ft from %s sq ft via %s; waste %s%%: ceil(%d x %s) = %d linear ft",
		lf, area.String(), formula,
		decimal.NewFromFloat(waste).String(), lf, mult.String(), gross)

	return types.Resolution{
		Success:          true,
		ResolvedQuantity: lf,
		ResolvedUnit:     "linear ft",
		GrossQuantity:    gross,
		Method:           types.MethodLinearToPieces,
		Confidence:       confidence,
		Trace:            trace,
	}
}

// failure builds the explicit manual-entry result. The message doubles
// as the calculation trace so every resolution, failed or not, carries
// an auditable explanation.
func failure(message string) types.Resolution {
	return types.Resolution{
		Success:      false,
		Method:       types.MethodManualRequired,
		Confidence:   types.ConfidenceFailed,
		Trace:        message,
		ErrorMessage: message,
	}
}
