package linear

import (
	"testing"

	"material-quantity/core/types"
)

func TestIsLinearMaterial(t *testing.T) {
	linear := []string{
		"Baseboard", "Crown Molding", "Transition Strip", "Door Threshold",
		"Window Casing", "Quarter Round", "Shoe Trim",
	}
	for _, name := range linear {
		if !IsLinearMaterial(name) {
			t.Errorf("IsLinearMaterial(%q) = false, want true", name)
		}
	}

	area := []string{"Interior Wall Paint", "Laminate Flooring", "Drywall 4x8", "Grout", ""}
	for _, name := range area {
		if IsLinearMaterial(name) {
			t.Errorf("IsLinearMaterial(%q) = true, want false", name)
		}
	}
}

func TestEstimateFromArea(t *testing.T) {
	tests := []struct {
		name       string
		material   string
		area       float64
		wantFt     int64
		wantConf   types.ConfidenceLevel
	}{
		// Perimeter trim: ceil(4 x sqrt(area) x 0.85)
		{"baseboard 144 sq ft", "Baseboard", 144, 41, types.ConfidenceMedium},
		{"crown 400 sq ft", "Crown Molding", 400, 68, types.ConfidenceMedium},
		{"casing 100 sq ft", "Door Casing", 100, 34, types.ConfidenceMedium},

		// Transitions: ceil(area/200) rooms x 2 transitions x 3 ft
		{"transition 150 sq ft", "Transition Strip", 150, 6, types.ConfidenceLow},
		{"transition 450 sq ft", "Transition Strip", 450, 18, types.ConfidenceLow},
		{"threshold 200 sq ft", "Door Threshold", 200, 6, types.ConfidenceLow},
		{"threshold 201 sq ft", "Door Threshold", 201, 12, types.ConfidenceLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ft, conf := EstimateFromArea(tt.area, tt.material)
			if ft != tt.wantFt {
				t.Errorf("EstimateFromArea(%v, %q) = %d ft, want %d", tt.area, tt.material, ft, tt.wantFt)
			}
			if conf != tt.wantConf {
				t.Errorf("EstimateFromArea(%v, %q) confidence = %s, want %s", tt.area, tt.material, conf, tt.wantConf)
			}
		})
	}
}
