package dashboarding

import "math"

// quantile interpola linearmente entre as posições (n-1)·p de uma amostra ordenada
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}

	pos := p * float64(n-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))

	return sorted[lower] + (sorted[upper]-sorted[lower])*(pos-float64(lower))
}
