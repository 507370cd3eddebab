package versioning

import (
	"testing"
	"time"
)

func TestLogicVersion(t *testing.T) {
	tests := []struct {
		name      string
		createdAt time.Time
		want      int
	}{
		{"well before cutover", time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC), VersionLegacy},
		{"day before cutover", Cutover.Add(-24 * time.Hour), VersionLegacy},
		{"instant before cutover", Cutover.Add(-time.Nanosecond), VersionLegacy},
		{"exactly at cutover", Cutover, VersionResolver},
		{"after cutover", Cutover.Add(time.Hour), VersionResolver},
		{"far future", time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC), VersionResolver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LogicVersion(tt.createdAt); got != tt.want {
				t.Errorf("LogicVersion(%s) = %d, want %d", tt.createdAt, got, tt.want)
			}
		})
	}
}

// TestLogicVersionIsStable proves the mapping depends only on the
// creation timestamp: repeated evaluation never changes the answer.
func TestLogicVersionIsStable(t *testing.T) {
	legacy := Cutover.Add(-time.Hour)
	for i := 0; i < 100; i++ {
		if got := LogicVersion(legacy); got != VersionLegacy {
			t.Fatalf("iteration %d: LogicVersion flipped to %d", i, got)
		}
	}
}

func TestShouldUseResolver(t *testing.T) {
	legacy := Cutover.Add(-time.Hour)
	modern := Cutover.Add(time.Hour)
	v1 := VersionLegacy
	v2 := VersionResolver

	tests := []struct {
		name     string
		created  time.Time
		explicit *int
		want     bool
	}{
		{"legacy by date", legacy, nil, false},
		{"modern by date", modern, nil, true},
		{"legacy opted in explicitly", legacy, &v2, true},
		{"modern pinned to legacy", modern, &v1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldUseResolver(tt.created, tt.explicit); got != tt.want {
				t.Errorf("ShouldUseResolver(%s, %v) = %v, want %v", tt.created, tt.explicit, got, tt.want)
			}
		})
	}
}
