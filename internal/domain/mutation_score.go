package domain

import (
	m "github.com/sabot-dev/sabot/internal/model"
)

// CalculateMutationScore returns the percentage of killed mutations over the
// provided result set, in the range 0-100. An empty set scores 0. It is
// usable standalone so callers can recompute scores over externally
// assembled results.
func CalculateMutationScore(results []m.MutationResult) float64 {
	if len(results) == 0 {
		return 0
	}

	killed := 0

	for _, result := range results {
		if result.Killed {
			killed++
		}
	}

	return 100 * float64(killed) / float64(len(results))
}
