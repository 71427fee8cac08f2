// Package marketdata holds the per-asset market snapshot pricing kernels
// consume, and the store that manages a portfolio's universe of such
// snapshots.
package marketdata

import (
	"github.com/bcdannyboy/optionrisk/errs"
	"github.com/bcdannyboy/optionrisk/numerics"
)

// MarketData is an immutable per-asset snapshot: spot, risk-free rate,
// volatility, and a carried-but-unused dividend yield.
type MarketData struct {
	AssetID       string
	Spot          float64
	RiskFreeRate  float64
	Volatility    float64
	DividendYield float64
}

// New constructs a validated MarketData. dividendYield is optional and
// defaults to 0 when omitted; only the first value is used and any
// further values are ignored.
func New(assetID string, spot, riskFreeRate, volatility float64, dividendYield ...float64) (MarketData, error) {
	var dy float64
	if len(dividendYield) > 0 {
		dy = dividendYield[0]
	}
	md := MarketData{
		AssetID:       assetID,
		Spot:          spot,
		RiskFreeRate:  riskFreeRate,
		Volatility:    volatility,
		DividendYield: dy,
	}
	if err := md.Validate(); err != nil {
		return MarketData{}, err
	}
	return md, nil
}

// Validate checks every invariant in the data model: non-empty asset id,
// positive spot, finite rate, non-negative volatility and dividend yield,
// and no NaN or infinite field.
func (md MarketData) Validate() error {
	const op = "MarketData.Validate"
	if md.AssetID == "" {
		return errs.InvalidArg(op, "asset id must not be empty")
	}
	if err := numerics.ValidatePositive(op, "spot price", md.Spot); err != nil {
		return err
	}
	if err := numerics.ValidateFinite(op, "risk-free rate", md.RiskFreeRate); err != nil {
		return err
	}
	if err := numerics.ValidateNonNegative(op, "volatility", md.Volatility); err != nil {
		return err
	}
	if err := numerics.ValidateNonNegative(op, "dividend yield", md.DividendYield); err != nil {
		return err
	}
	return nil
}

// WithSpot returns a copy of md with Spot replaced, leaving md untouched.
// The risk engine uses this to build shocked snapshots without mutating
// the caller's market data.
func (md MarketData) WithSpot(spot float64) MarketData {
	shocked := md
	shocked.Spot = spot
	return shocked
}
