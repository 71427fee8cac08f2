// Package jumpdiffusion implements the Merton jump-diffusion European
// option price as a Poisson-weighted series of Black-Scholes prices.
package jumpdiffusion

import (
	"math"

	"github.com/bcdannyboy/optionrisk/blackscholes"
	"github.com/bcdannyboy/optionrisk/errs"
	"github.com/bcdannyboy/optionrisk/numerics"
)

// DefaultMaxJumps is the series truncation bound used when an instrument
// does not override it.
const DefaultMaxJumps = 50

const (
	weightFloor        = 1e-10
	cumulativeWeightTh = 0.9999
	tailWeightFloor    = 1e-8
)

// poissonWeight returns e^(-lambdaT) * lambdaT^n / n!, computed as
// exp(n*ln(lambdaT) - lambdaT - lnGamma(n+1)) to avoid overflow for large n.
func poissonWeight(n int, lambdaT float64) float64 {
	if lambdaT == 0 {
		if n == 0 {
			return 1
		}
		return 0
	}
	logWeight := float64(n)*math.Log(lambdaT) - lambdaT - lgammaOfNPlus1(n)
	return math.Exp(logWeight)
}

func lgammaOfNPlus1(n int) float64 {
	v, _ := math.Lgamma(float64(n + 1))
	return v
}

// Price computes the Merton jump-diffusion price for a European option by
// summing Poisson-weighted Black-Scholes prices over an increasing jump
// count, terminating early once the series weight becomes negligible.
func Price(isCall bool, spot, strike, rate, t, vol, lambda, jumpMean, jumpVol float64, maxJumps int) (float64, error) {
	const op = "jumpdiffusion.Price"
	if err := numerics.ValidatePricingInputs(op, spot, strike, t, vol); err != nil {
		return 0, err
	}
	if err := numerics.ValidateNonNegative(op, "jump intensity", lambda); err != nil {
		return 0, err
	}
	if err := numerics.ValidateNonNegative(op, "jump volatility", jumpVol); err != nil {
		return 0, err
	}
	if err := numerics.ValidateFinite(op, "jump mean", jumpMean); err != nil {
		return 0, err
	}
	if maxJumps <= 0 {
		maxJumps = DefaultMaxJumps
	}

	if t == 0 {
		if isCall {
			return math.Max(spot-strike, 0), nil
		}
		return math.Max(strike-spot, 0), nil
	}

	lambdaT := lambda * t
	if lambdaT == 0 {
		return blackscholes.Price(isCall, spot, strike, rate, t, vol)
	}

	kappa := math.Exp(jumpMean+0.5*jumpVol*jumpVol) - 1

	var value, cumulativeWeight float64
	for n := 0; n <= maxJumps; n++ {
		weight := poissonWeight(n, lambdaT)
		if weight < weightFloor {
			break
		}
		cumulativeWeight += weight

		sigmaN := math.Sqrt(vol*vol + float64(n)*jumpVol*jumpVol/t)
		rN := rate - lambda*kappa + float64(n)*(jumpMean+0.5*jumpVol*jumpVol)/t

		bsPrice, err := blackscholes.Price(isCall, spot, strike, rN, t, sigmaN)
		if err != nil {
			return 0, err
		}
		value += weight * bsPrice

		if cumulativeWeight > cumulativeWeightTh && weight < tailWeightFloor {
			break
		}
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, errs.NumericalErr(op, "jump-diffusion series produced a non-finite price")
	}
	return value, nil
}
