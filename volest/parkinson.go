package volest

import "math"

// Parkinson estimates annualized volatility from the high/low range of
// each bar: sqrt( sum(ln(H/L)^2) / (4 * n * ln2) ) * sqrt(252).
func Parkinson(bars []Bar) (float64, error) {
	const op = "Parkinson"
	if err := validateBars(op, bars, 1); err != nil {
		return 0, err
	}

	n := len(bars)
	sum := 0.0
	for _, b := range bars {
		logRatio := math.Log(b.High / b.Low)
		sum += logRatio * logRatio
	}

	daily := math.Sqrt(sum / (4 * float64(n) * math.Log(2)))
	return daily * math.Sqrt(tradingDaysPerYear), nil
}
