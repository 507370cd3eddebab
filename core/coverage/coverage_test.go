package coverage

import (
	"testing"

	"material-quantity/core/types"
)

// TestRatesAreStrictlyPositive proves the physics invariant: coverage
// constants are never zero or negative.
func TestRatesAreStrictlyPositive(t *testing.T) {
	for _, key := range Keys() {
		rate, ok := Lookup(key)
		if !ok {
			t.Fatalf("Keys() returned %q but Lookup misses it", key)
		}
		if !rate.Rate.IsPositive() {
			t.Errorf("coverage rate %q = %s, must be > 0", key, rate.Rate)
		}
		if rate.InputUnit == "" || rate.OutputUnit == "" {
			t.Errorf("coverage rate %q has empty units: %+v", key, rate)
		}
	}
}

// TestEveryCategoryReachesACoverageKey proves that each category except
// unknown maps to at least one table entry.
func TestEveryCategoryReachesACoverageKey(t *testing.T) {
	for _, category := range types.AllCategories() {
		key, ok := KeyFor(category, string(category))
		if !ok {
			t.Errorf("category %s has no coverage key", category)
			continue
		}
		if _, found := Lookup(key); !found {
			t.Errorf("category %s resolves to key %q with no table entry", category, key)
		}
	}
}

func TestKeyForUnknownCategory(t *testing.T) {
	if key, ok := KeyFor(types.CategoryUnknown, "anything"); ok {
		t.Errorf("KeyFor(unknown) = %q, want no key", key)
	}
}

func TestKeyRefinement(t *testing.T) {
	tests := []struct {
		category types.MaterialCategory
		name     string
		want     string
	}{
		{types.CategoryFlooring, "Oak Hardwood Flooring", "hardwood"},
		{types.CategoryFlooring, "Vinyl Plank", "vinyl_plank"},
		{types.CategoryFlooring, "Berber Carpet", "carpet"},
		{types.CategoryFlooring, "Laminate", "laminate"},
		{types.CategoryFlooring, "generic floor", "laminate"},
		{types.CategoryDrywall, "Drywall 4x12", "drywall_4x12"},
		{types.CategoryDrywall, "Drywall", "drywall_4x8"},
		{types.CategoryInsulation, "Rigid Foam Board", "insulation_rigid"},
		{types.CategoryInsulation, "R-13 Batt", "insulation_batt"},
		{types.CategoryTrim, "Crown Molding", "crown"},
		{types.CategoryTrim, "Quarter Round", "quarter_round"},
		{types.CategoryTrim, "Baseboard", "trim"},
		{types.CategoryLumber, "Plywood Sheathing", "plywood"},
		{types.CategoryLumber, "2x4 Stud", "stud"},
		{types.CategoryRoofing, "Roofing Felt", "roofing_felt"},
		{types.CategoryRoofing, "Architectural Shingles", "shingles"},
		{types.CategoryMasonry, "CMU Block", "cmu_block"},
		{types.CategoryMasonry, "Clay Brick", "brick"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := KeyFor(tt.category, tt.name)
			if !ok {
				t.Fatalf("KeyFor(%s, %q) returned no key", tt.category, tt.name)
			}
			if key != tt.want {
				t.Errorf("KeyFor(%s, %q) = %q, want %q", tt.category, tt.name, key, tt.want)
			}
		})
	}
}

// TestPaintRate pins the constant behind the canonical paint scenario:
// one gallon covers 350 sq ft.
func TestPaintRate(t *testing.T) {
	rate, ok := Lookup("paint")
	if !ok {
		t.Fatal("paint missing from coverage table")
	}
	if rate.Rate.String() != "350" {
		t.Errorf("paint rate = %s, want 350", rate.Rate)
	}
	if rate.InputUnit != "sq ft" || rate.OutputUnit != "gallon" {
		t.Errorf("paint units = %s per %s, want sq ft per gallon", rate.InputUnit, rate.OutputUnit)
	}
}
