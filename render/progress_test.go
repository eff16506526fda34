package render

import "testing"

// TestBarFill verifies the progress bar fill rounding
func TestBarFill(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		progress float64
		want     int
	}{
		{"empty", 10, 0.0, 0},
		{"full", 10, 1.0, 10},
		{"half", 10, 0.5, 5},
		{"rounds up", 10, 0.55, 6},
		{"first of 89 slides", 80, 1.0 / 89.0, 1},
		{"clamps above full", 10, 1.5, 10},
		{"clamps below empty", 10, -0.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := barFill(tt.width, tt.progress); got != tt.want {
				t.Errorf("Expected fill %d, got %d", tt.want, got)
			}
		})
	}
}
