package volest

import "math"

// RogersSatchell estimates annualized volatility using the drift-
// independent open/high/low/close estimator of Rogers & Satchell (1991).
func RogersSatchell(bars []Bar) (float64, error) {
	const op = "RogersSatchell"
	if err := validateBars(op, bars, 1); err != nil {
		return 0, err
	}
	return math.Sqrt(rogersSatchellDailyVariance(bars) * tradingDaysPerYear), nil
}

func rogersSatchellDailyVariance(bars []Bar) float64 {
	n := len(bars)
	sum := 0.0
	for _, b := range bars {
		sum += math.Log(b.High/b.Close)*math.Log(b.High/b.Open) +
			math.Log(b.Low/b.Close)*math.Log(b.Low/b.Open)
	}
	return sum / float64(n)
}
