package blackscholes

import (
	"math"

	"github.com/bcdannyboy/optionrisk/errs"
	"github.com/bcdannyboy/optionrisk/numerics"
)

const (
	ivInitialGuess  = 0.3
	ivTolerance     = 1e-6
	ivMaxIterations = 100
	ivMinVega       = 1e-10
	ivMinSigma      = 0.01
	ivMaxSigma      = 10.0
	ivIntrinsicSlop = 1e-10
)

// ImpliedVolatility solves for the volatility that reproduces marketPrice
// under Black-Scholes, via Newton-Raphson starting at 0.3 with tolerance
// 1e-6 on the price residual, clamping sigma into (0.01, 10.0) after every
// step, and failing if vega collapses below 1e-10 or the price falls
// outside the no-arbitrage band.
func ImpliedVolatility(isCall bool, marketPrice, spot, strike, rate, t float64) (float64, error) {
	const op = "blackscholes.ImpliedVolatility"

	if err := numerics.ValidatePositive(op, "spot price", spot); err != nil {
		return 0, err
	}
	if err := numerics.ValidatePositive(op, "strike price", strike); err != nil {
		return 0, err
	}
	if err := numerics.ValidateNonNegative(op, "time to expiry", t); err != nil {
		return 0, err
	}
	if err := numerics.ValidateFinite(op, "market price", marketPrice); err != nil {
		return 0, err
	}

	intrinsic := math.Max(spot-strike, 0)
	if !isCall {
		intrinsic = math.Max(strike-spot, 0)
	}
	if marketPrice < intrinsic-ivIntrinsicSlop {
		return 0, errs.InvalidArg(op, "market price %v is below intrinsic value %v", marketPrice, intrinsic)
	}

	upperBound := spot
	if !isCall {
		upperBound = strike * math.Exp(-rate*t)
	}
	if marketPrice > upperBound+ivIntrinsicSlop {
		return 0, errs.InvalidArg(op, "market price %v exceeds no-arbitrage upper bound %v", marketPrice, upperBound)
	}

	sigma := ivInitialGuess
	for i := 0; i < ivMaxIterations; i++ {
		price, err := Price(isCall, spot, strike, rate, t, sigma)
		if err != nil {
			return 0, err
		}
		diff := price - marketPrice
		if math.Abs(diff) < ivTolerance {
			return sigma, nil
		}

		vega, err := Vega(spot, strike, rate, t, sigma)
		if err != nil {
			return 0, err
		}
		if math.Abs(vega) < ivMinVega {
			return 0, errs.NumericalErr(op, "vega %v too small to continue Newton-Raphson search", vega)
		}

		sigma -= diff / vega
		if sigma < ivMinSigma {
			sigma = ivMinSigma
		} else if sigma > ivMaxSigma {
			sigma = ivMaxSigma
		}
	}

	return 0, errs.NumericalErr(op, "failed to converge within %d iterations", ivMaxIterations)
}
