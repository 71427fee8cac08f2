// Package numerics provides the standard-normal primitives and the
// centralized input validation that every pricing kernel in this module
// builds on.
package numerics

import (
	"math"

	"github.com/bcdannyboy/optionrisk/errs"
)

// NormCDF is the standard normal cumulative distribution function,
// N(z) = 1/2 * (1 + erf(z/sqrt(2))).
func NormCDF(z float64) float64 {
	return 0.5 * (1 + math.Erf(z/math.Sqrt2))
}

// NormPDF is the standard normal density, n(z) = exp(-z^2/2) / sqrt(2*pi).
func NormPDF(z float64) float64 {
	return math.Exp(-0.5*z*z) / math.Sqrt(2*math.Pi)
}

// finite reports whether v is neither NaN nor +/-Inf.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ValidateFinite fails if v is NaN or infinite.
func ValidateFinite(op, field string, v float64) error {
	if !finite(v) {
		return errs.InvalidArg(op, "%s must be finite, got %v", field, v)
	}
	return nil
}

// ValidatePositive fails unless v is finite and strictly positive.
func ValidatePositive(op, field string, v float64) error {
	if !finite(v) {
		return errs.InvalidArg(op, "%s must be finite, got %v", field, v)
	}
	if v <= 0 {
		return errs.InvalidArg(op, "%s must be positive, got %v", field, v)
	}
	return nil
}

// ValidateNonNegative fails unless v is finite and >= 0.
func ValidateNonNegative(op, field string, v float64) error {
	if !finite(v) {
		return errs.InvalidArg(op, "%s must be finite, got %v", field, v)
	}
	if v < 0 {
		return errs.InvalidArg(op, "%s must be non-negative, got %v", field, v)
	}
	return nil
}

// ValidatePricingInputs centralizes the checks every analytic and tree
// kernel needs before touching its inputs: spot and strike positive, time
// to expiry and volatility non-negative, and every value finite.
func ValidatePricingInputs(op string, spot, strike, timeToExpiry, vol float64) error {
	if err := ValidatePositive(op, "spot price", spot); err != nil {
		return err
	}
	if err := ValidatePositive(op, "strike price", strike); err != nil {
		return err
	}
	if err := ValidateNonNegative(op, "time to expiry", timeToExpiry); err != nil {
		return err
	}
	if err := ValidateNonNegative(op, "volatility", vol); err != nil {
		return err
	}
	return nil
}
