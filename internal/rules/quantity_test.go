package rules

import "testing"

func TestQuantity(t *testing.T) {
	tests := []struct {
		name     string
		rule     ItemRule
		nights   int
		expected int
	}{
		{"zero multiplier is one unit", ItemRule{Multiplier: 0}, 10, 1},
		{"zero multiplier ignores min", ItemRule{Multiplier: 0, Min: 3}, 10, 1},
		{"ceil of nights times multiplier", ItemRule{Multiplier: 1.2}, 5, 6},
		{"minimum raises low quantities", ItemRule{Multiplier: 0.4, Min: 2}, 1, 2},
		{"maximum lowers high quantities", ItemRule{Multiplier: 0.4, Max: 4}, 20, 4},
		{"no max caps at nights plus two", ItemRule{Multiplier: 6}, 5, 7},
		{"explicit max beats runaway cap", ItemRule{Multiplier: 6, Max: 30}, 4, 24},
		{"fractional multiplier rounds up", ItemRule{Multiplier: 0.3}, 4, 2},
		{"result is never below one", ItemRule{Multiplier: 0.1}, 1, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Quantity(tc.rule, tc.nights)
			if got != tc.expected {
				t.Errorf("Quantity(%+v, %d) = %d, want %d", tc.rule, tc.nights, got, tc.expected)
			}
		})
	}
}

func TestQuantity_AlwaysAtLeastOne(t *testing.T) {
	rules := []ItemRule{
		{Multiplier: 0},
		{Multiplier: 0.1},
		{Multiplier: 1.2, Min: 3},
		{Multiplier: 2, Max: 4},
		{Multiplier: 6},
	}

	for _, rule := range rules {
		for nights := 1; nights <= 30; nights++ {
			got := Quantity(rule, nights)
			if got < 1 {
				t.Fatalf("Quantity(%+v, %d) = %d, want >= 1", rule, nights, got)
			}
			if rule.Max > 0 && got > rule.Max {
				t.Fatalf("Quantity(%+v, %d) = %d, exceeds max %d", rule, nights, got, rule.Max)
			}
			if rule.Multiplier > 0 && rule.Min > 0 && got < rule.Min {
				t.Fatalf("Quantity(%+v, %d) = %d, below min %d", rule, nights, got, rule.Min)
			}
		}
	}
}

func TestAdjustmentFactor(t *testing.T) {
	tests := []struct {
		nights   int
		expected float64
	}{
		{1, 0.8},
		{2, 0.8},
		{3, 1.0},
		{13, 1.0},
		{14, 1.2},
		{30, 1.2},
	}

	for _, tc := range tests {
		got := AdjustmentFactor(tc.nights)
		if got != tc.expected {
			t.Errorf("AdjustmentFactor(%d) = %v, want %v", tc.nights, got, tc.expected)
		}
	}
}
