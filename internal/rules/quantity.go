package rules

import "math"

// Quantity computes how many of an item to pack for a trip of the
// given length. It is total over nights >= 1 and never returns less
// than one.
//
// A zero multiplier means a single unit (passports, chargers). For the
// rest, quantity is ceil(nights * multiplier) clamped to the rule's
// min/max. Rules without an explicit max are capped at nights+2 so
// high multipliers don't run away on long trips.
func Quantity(rule ItemRule, nights int) int {
	if rule.Multiplier == 0 {
		return 1
	}

	quantity := int(math.Ceil(float64(nights) * rule.Multiplier))

	if rule.Min > 0 && quantity < rule.Min {
		quantity = rule.Min
	}
	if rule.Max > 0 && quantity > rule.Max {
		quantity = rule.Max
	}
	if rule.Max == 0 && quantity > nights+2 {
		quantity = nights + 2
	}

	if quantity < 1 {
		quantity = 1
	}
	return quantity
}

// AdjustmentFactor is the final quantity scalar for very short or very
// long trips. It applies only to items packed in multiples.
func AdjustmentFactor(nights int) float64 {
	switch {
	case nights <= 2:
		return 0.8
	case nights >= 14:
		return 1.2
	default:
		return 1.0
	}
}
