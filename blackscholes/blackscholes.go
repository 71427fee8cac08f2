// Package blackscholes implements the closed-form Black-Scholes-Merton
// European option price and Greeks, and a Newton-Raphson implied
// volatility solver.
package blackscholes

import (
	"math"

	"github.com/bcdannyboy/optionrisk/numerics"
)

// d1d2 returns the Black-Scholes d1 and d2 terms. Callers must already
// have validated T > 0 and sigma > 0.
func d1d2(spot, strike, rate, t, vol float64) (d1, d2 float64) {
	d1 = (math.Log(spot/strike) + (rate+0.5*vol*vol)*t) / (vol * math.Sqrt(t))
	d2 = d1 - vol*math.Sqrt(t)
	return d1, d2
}

func boundary(t, vol float64) bool {
	return t <= 0 || vol <= 0
}

// CallPrice returns the Black-Scholes European call price.
func CallPrice(spot, strike, rate, t, vol float64) (float64, error) {
	if err := numerics.ValidatePricingInputs("blackscholes.CallPrice", spot, strike, t, vol); err != nil {
		return 0, err
	}
	if boundary(t, vol) {
		return math.Max(spot-strike, 0), nil
	}
	d1, d2 := d1d2(spot, strike, rate, t, vol)
	return spot*numerics.NormCDF(d1) - strike*math.Exp(-rate*t)*numerics.NormCDF(d2), nil
}

// PutPrice returns the Black-Scholes European put price.
func PutPrice(spot, strike, rate, t, vol float64) (float64, error) {
	if err := numerics.ValidatePricingInputs("blackscholes.PutPrice", spot, strike, t, vol); err != nil {
		return 0, err
	}
	if boundary(t, vol) {
		return math.Max(strike-spot, 0), nil
	}
	d1, d2 := d1d2(spot, strike, rate, t, vol)
	return strike*math.Exp(-rate*t)*numerics.NormCDF(-d2) - spot*numerics.NormCDF(-d1), nil
}

// Price dispatches to CallPrice or PutPrice.
func Price(isCall bool, spot, strike, rate, t, vol float64) (float64, error) {
	if isCall {
		return CallPrice(spot, strike, rate, t, vol)
	}
	return PutPrice(spot, strike, rate, t, vol)
}

// CallDelta returns N(d1), or the boundary value at T=0 or sigma=0.
func CallDelta(spot, strike, rate, t, vol float64) (float64, error) {
	if err := numerics.ValidatePricingInputs("blackscholes.CallDelta", spot, strike, t, vol); err != nil {
		return 0, err
	}
	if boundary(t, vol) {
		if spot > strike {
			return 1, nil
		}
		return 0, nil
	}
	d1, _ := d1d2(spot, strike, rate, t, vol)
	return numerics.NormCDF(d1), nil
}

// PutDelta returns N(d1) - 1, or the boundary value at T=0 or sigma=0.
func PutDelta(spot, strike, rate, t, vol float64) (float64, error) {
	if err := numerics.ValidatePricingInputs("blackscholes.PutDelta", spot, strike, t, vol); err != nil {
		return 0, err
	}
	if boundary(t, vol) {
		if spot < strike {
			return -1, nil
		}
		return 0, nil
	}
	d1, _ := d1d2(spot, strike, rate, t, vol)
	return numerics.NormCDF(d1) - 1, nil
}

// Delta dispatches to CallDelta or PutDelta.
func Delta(isCall bool, spot, strike, rate, t, vol float64) (float64, error) {
	if isCall {
		return CallDelta(spot, strike, rate, t, vol)
	}
	return PutDelta(spot, strike, rate, t, vol)
}

// Gamma is identical for calls and puts: n(d1) / (S * sigma * sqrt(T)).
func Gamma(spot, strike, rate, t, vol float64) (float64, error) {
	if err := numerics.ValidatePricingInputs("blackscholes.Gamma", spot, strike, t, vol); err != nil {
		return 0, err
	}
	if boundary(t, vol) {
		return 0, nil
	}
	d1, _ := d1d2(spot, strike, rate, t, vol)
	return numerics.NormPDF(d1) / (spot * vol * math.Sqrt(t)), nil
}

// Vega is identical for calls and puts, per one full unit of volatility:
// S * n(d1) * sqrt(T).
func Vega(spot, strike, rate, t, vol float64) (float64, error) {
	if err := numerics.ValidatePricingInputs("blackscholes.Vega", spot, strike, t, vol); err != nil {
		return 0, err
	}
	if boundary(t, vol) {
		return 0, nil
	}
	d1, _ := d1d2(spot, strike, rate, t, vol)
	return spot * numerics.NormPDF(d1) * math.Sqrt(t), nil
}

// CallTheta returns the call theta per calendar day (divided by 365).
func CallTheta(spot, strike, rate, t, vol float64) (float64, error) {
	if err := numerics.ValidatePricingInputs("blackscholes.CallTheta", spot, strike, t, vol); err != nil {
		return 0, err
	}
	if boundary(t, vol) {
		return 0, nil
	}
	d1, d2 := d1d2(spot, strike, rate, t, vol)
	term1 := -(spot * numerics.NormPDF(d1) * vol) / (2 * math.Sqrt(t))
	term2 := rate * strike * math.Exp(-rate*t) * numerics.NormCDF(d2)
	return (term1 - term2) / 365, nil
}

// PutTheta returns the put theta per calendar day (divided by 365).
func PutTheta(spot, strike, rate, t, vol float64) (float64, error) {
	if err := numerics.ValidatePricingInputs("blackscholes.PutTheta", spot, strike, t, vol); err != nil {
		return 0, err
	}
	if boundary(t, vol) {
		return 0, nil
	}
	d1, d2 := d1d2(spot, strike, rate, t, vol)
	term1 := -(spot * numerics.NormPDF(d1) * vol) / (2 * math.Sqrt(t))
	term2 := rate * strike * math.Exp(-rate*t) * numerics.NormCDF(-d2)
	return (term1 + term2) / 365, nil
}

// Theta dispatches to CallTheta or PutTheta.
func Theta(isCall bool, spot, strike, rate, t, vol float64) (float64, error) {
	if isCall {
		return CallTheta(spot, strike, rate, t, vol)
	}
	return PutTheta(spot, strike, rate, t, vol)
}

// CallRho returns K*T*e^(-rT)*N(d2) / 100, per percentage-point change
// in the risk-free rate.
func CallRho(spot, strike, rate, t, vol float64) (float64, error) {
	if err := numerics.ValidatePricingInputs("blackscholes.CallRho", spot, strike, t, vol); err != nil {
		return 0, err
	}
	if boundary(t, vol) {
		return 0, nil
	}
	_, d2 := d1d2(spot, strike, rate, t, vol)
	return strike * t * math.Exp(-rate*t) * numerics.NormCDF(d2) / 100, nil
}

// PutRho returns -K*T*e^(-rT)*N(-d2) / 100.
func PutRho(spot, strike, rate, t, vol float64) (float64, error) {
	if err := numerics.ValidatePricingInputs("blackscholes.PutRho", spot, strike, t, vol); err != nil {
		return 0, err
	}
	if boundary(t, vol) {
		return 0, nil
	}
	_, d2 := d1d2(spot, strike, rate, t, vol)
	return -strike * t * math.Exp(-rate*t) * numerics.NormCDF(-d2) / 100, nil
}

// Rho dispatches to CallRho or PutRho.
func Rho(isCall bool, spot, strike, rate, t, vol float64) (float64, error) {
	if isCall {
		return CallRho(spot, strike, rate, t, vol)
	}
	return PutRho(spot, strike, rate, t, vol)
}
