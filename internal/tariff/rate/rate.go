// Package rate prices metered consumption against tiered schedules.
package rate

import "sort"

// TierStep is one band of a tiered schedule. Limit is the cumulative
// consumption threshold closing the band; Rate prices each unit inside it.
type TierStep struct {
	Limit float64 `json:"limit"`
	Rate  float64 `json:"rate"`
}

// ComputeTiered walks the schedule in ascending limit order, billing each
// band at its own rate. Consumption beyond the last limit is billed entirely
// at the last tier's rate; that overflow policy is deliberate, not an error.
// An empty schedule or zero consumption yields 0.
func ComputeTiered(consumption float64, tiers []TierStep) float64 {
	if consumption <= 0 || len(tiers) == 0 {
		return 0
	}

	// The input order is not trusted; sort a copy.
	sorted := make([]TierStep, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Limit < sorted[j].Limit })

	var amount float64
	remaining := consumption
	previousLimit := 0.0
	for _, tier := range sorted {
		band := tier.Limit - previousLimit
		if band < 0 {
			band = 0
		}
		consumed := remaining
		if consumed > band {
			consumed = band
		}
		amount += consumed * tier.Rate
		remaining -= consumed
		previousLimit = tier.Limit
		if remaining <= 0 {
			return amount
		}
	}

	// Overflow past the top limit.
	amount += remaining * sorted[len(sorted)-1].Rate
	return amount
}
