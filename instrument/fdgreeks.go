package instrument

import "math"

const (
	spotBumpFraction = 0.01
	volBump          = 0.01
	timeBumpDays     = 1.0 / 365.0
)

// modelPrice evaluates a pricing kernel at an overridden spot, volatility,
// and time to expiry, holding every other input fixed. Every non-analytic
// Greek in this package is a finite difference over calls to one of
// these: central differences over spot and volatility, a forward
// difference toward expiry over time.
type modelPrice func(spot, vol, t float64) (float64, error)

// finiteDifferenceGreeks computes delta, gamma, vega, and theta by
// bumping spot 1%, volatility by 0.01 (clamped to non-negative), and time
// by one calendar day, per the hybrid analytic/finite-difference policy.
func finiteDifferenceGreeks(pf modelPrice, spot, vol, t float64) (delta, gamma, vega, theta float64, err error) {
	hS := spotBumpFraction * spot

	pUp, err := pf(spot+hS, vol, t)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	pDown, err := pf(spot-hS, vol, t)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	pCenter, err := pf(spot, vol, t)
	if err != nil {
		return 0, 0, 0, 0, err
	}

	delta = (pUp - pDown) / (2 * hS)
	gamma = (pUp - 2*pCenter + pDown) / (hS * hS)

	volUp := vol + volBump
	volDown := math.Max(0, vol-volBump)
	pVolUp, err := pf(spot, volUp, t)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	pVolDown, err := pf(spot, volDown, t)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	if volUp > volDown {
		vega = (pVolUp - pVolDown) / (volUp - volDown)
	}

	if t < timeBumpDays {
		theta = 0
	} else {
		pTimeDown, err := pf(spot, vol, t-timeBumpDays)
		if err != nil {
			return 0, 0, 0, 0, err
		}
		theta = (pTimeDown - pCenter) / timeBumpDays
	}

	return delta, gamma, vega, theta, nil
}
