package types

import "testing"

func TestNormalizeUnit(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"gallon", "gallon"},
		{"Gallons", "gallon"},
		{"BAGS", "bag"},
		{"boxes", "box"},
		{"box", "box"},
		{"sheets", "sheet"},
		{"Rolls", "roll"},
		{"pieces", "piece"},
		{"bundles", "bundle"},
		{"sq ft", "sq ft"},
		{"SQFT", "sq ft"},
		{"sf", "sq ft"},
		{"Square Feet", "sq ft"},
		{"sq. ft.", "sq ft"},
		{"linear ft", "linear ft"},
		{"widgets", "widgets"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeUnit(tt.in); got != tt.want {
				t.Errorf("NormalizeUnit(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestContainerAndAreaUnits(t *testing.T) {
	containers := []string{"gallon", "Gallons", "box", "BOXES", "sheet", "roll", "piece", "bag", "bundle"}
	for _, u := range containers {
		if !IsContainerUnit(u) {
			t.Errorf("IsContainerUnit(%q) = false, want true", u)
		}
		if IsAreaUnit(u) {
			t.Errorf("IsAreaUnit(%q) = true, want false", u)
		}
	}

	areas := []string{"sq ft", "sqft", "sf", "square feet", "SQ FT"}
	for _, u := range areas {
		if !IsAreaUnit(u) {
			t.Errorf("IsAreaUnit(%q) = false, want true", u)
		}
		if IsContainerUnit(u) {
			t.Errorf("IsContainerUnit(%q) = true, want false", u)
		}
	}

	neither := []string{"linear ft", "each", ""}
	for _, u := range neither {
		if IsContainerUnit(u) || IsAreaUnit(u) {
			t.Errorf("%q classified as container or area unit", u)
		}
	}
}

func TestMethodForUnit(t *testing.T) {
	tests := []struct {
		unit string
		want ResolutionMethod
	}{
		{"gallon", MethodAreaToLiquid},
		{"gallons", MethodAreaToLiquid},
		{"box", MethodAreaToBoxes},
		{"sheet", MethodAreaToSheets},
		{"roll", MethodAreaToRolls},
		{"bag", MethodAreaToBags},
		{"piece", MethodLinearToPieces},
		{"bundle", MethodPassthrough},
		{"unit", MethodPassthrough},
	}

	for _, tt := range tests {
		if got := MethodForUnit(tt.unit); got != tt.want {
			t.Errorf("MethodForUnit(%q) = %s, want %s", tt.unit, got, tt.want)
		}
	}
}

func TestCategoryFromString(t *testing.T) {
	if got := CategoryFromString("Paint"); got != CategoryPaint {
		t.Errorf("CategoryFromString(Paint) = %s, want paint", got)
	}
	if got := CategoryFromString("  drywall  "); got != CategoryDrywall {
		t.Errorf("CategoryFromString(drywall) = %s, want drywall", got)
	}
	if got := CategoryFromString("astral projection"); got != CategoryUnknown {
		t.Errorf("CategoryFromString(astral projection) = %s, want unknown", got)
	}
	if got := CategoryFromString("unknown"); got != CategoryUnknown {
		t.Errorf("CategoryFromString(unknown) = %s, want unknown", got)
	}
}
