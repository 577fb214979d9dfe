package utils

import "math"

// Round arredonda para a quantidade de casas decimais; NaN e infinitos voltam como vieram
func Round(f float64, places int) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}

	scale := math.Pow10(places)
	return math.Round(f*scale) / scale
}

func RoundWithTwoDecimalPlace(f float64) float64 {
	return Round(f, 2)
}

// Share é a fração part/total, zero quando total é zero
func Share(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total)
}
