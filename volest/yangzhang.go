package volest

import "math"

// YangZhang estimates annualized volatility using the drift-independent,
// opening-jump-aware estimator of Yang & Zhang (2000): a weighted blend
// of overnight, open-to-close, and Rogers-Satchell variance.
func YangZhang(bars []Bar) (float64, error) {
	const op = "YangZhang"
	if err := validateBars(op, bars, 2); err != nil {
		return 0, err
	}

	n := len(bars)
	k := 0.34 / (1.34 + (float64(n)+1)/(float64(n)-1))

	overnight := overnightVariance(bars)
	openClose := openCloseVariance(bars)
	rs := rogersSatchellDailyVariance(bars)

	daily := overnight + k*openClose + (1-k)*rs
	if daily < 0 {
		daily = 0
	}
	return math.Sqrt(daily) * math.Sqrt(tradingDaysPerYear), nil
}

func overnightVariance(bars []Bar) float64 {
	n := len(bars)
	sum, mean := 0.0, 0.0
	for i := 1; i < n; i++ {
		r := math.Log(bars[i].Open / bars[i-1].Close)
		mean += r
		sum += r * r
	}
	mean /= float64(n - 1)
	return (sum/float64(n-1) - mean*mean) * float64(n) / float64(n-1)
}

func openCloseVariance(bars []Bar) float64 {
	n := len(bars)
	sum, mean := 0.0, 0.0
	for _, b := range bars {
		r := math.Log(b.Close / b.Open)
		mean += r
		sum += r * r
	}
	mean /= float64(n)
	return (sum/float64(n) - mean*mean) * float64(n) / float64(n-1)
}
