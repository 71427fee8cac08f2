package instrument

import (
	"github.com/bcdannyboy/optionrisk/binomial"
	"github.com/bcdannyboy/optionrisk/errs"
	"github.com/bcdannyboy/optionrisk/marketdata"
)

// AmericanOption is a call or put exercisable at any point up to expiry.
// It always prices off the CRR binomial lattice; there is no closed-form
// kernel for early exercise, so every Greek is a finite difference. Like
// EuropeanOption, it never stores a risk-free rate — every call reads
// md.RiskFreeRate, so a later MarketDataStore.Update to that asset's
// rate is picked up immediately.
type AmericanOption struct {
	assetID string
	kind    OptionKind
	strike  float64
	expiry  float64
	steps   int
}

// NewAmericanOption constructs a call or put on assetID struck at
// strike, expiring in expiry years, priced on a steps-step CRR lattice.
// steps of 0 selects the package default; any other value outside
// [1, 10000] is rejected.
func NewAmericanOption(assetID string, kind OptionKind, strike, expiry float64, steps int) (*AmericanOption, error) {
	const op = "NewAmericanOption"
	if assetID == "" {
		return nil, errs.InvalidArg(op, "asset id must not be empty")
	}
	if strike <= 0 {
		return nil, errs.InvalidArg(op, "strike must be positive, got %v", strike)
	}
	if expiry < 0 {
		return nil, errs.InvalidArg(op, "time to expiry must be non-negative, got %v", expiry)
	}
	if steps == 0 {
		steps = defaultBinomialSteps
	} else if steps < minBinomialSteps || steps > maxBinomialSteps {
		return nil, errs.InvalidArg(op, "binomial steps must be in [%d, %d], got %d", minBinomialSteps, maxBinomialSteps, steps)
	}
	return &AmericanOption{
		assetID: assetID,
		kind:    kind,
		strike:  strike,
		expiry:  expiry,
		steps:   steps,
	}, nil
}

// SetSteps overrides the lattice step count, rejecting a count outside
// [1, 10000].
func (a *AmericanOption) SetSteps(steps int) error {
	const op = "AmericanOption.SetSteps"
	if steps < minBinomialSteps || steps > maxBinomialSteps {
		return errs.InvalidArg(op, "binomial steps must be in [%d, %d], got %d", minBinomialSteps, maxBinomialSteps, steps)
	}
	a.steps = steps
	return nil
}

// AssetID reports the underlying this option is written on.
func (a *AmericanOption) AssetID() string { return a.assetID }

// KindLabel reports "call" or "put".
func (a *AmericanOption) KindLabel() string { return a.kind.String() }

// IsValid reports whether the option's own static parameters are sane.
func (a *AmericanOption) IsValid() bool {
	return a.assetID != "" && a.strike > 0 && a.expiry >= 0 && a.steps > 0
}

func (a *AmericanOption) priceAt(spot, vol, t, rate float64) (float64, error) {
	return binomial.Price(a.kind.isCall(), true, spot, a.strike, rate, t, vol, a.steps)
}

// Price values the option against md on the binomial lattice.
func (a *AmericanOption) Price(md marketdata.MarketData) (float64, error) {
	return a.priceAt(md.Spot, md.Volatility, a.expiry, md.RiskFreeRate)
}

// Delta is a central finite difference over spot.
func (a *AmericanOption) Delta(md marketdata.MarketData) (float64, error) {
	delta, _, _, _, err := a.fd(md)
	return delta, err
}

// Gamma is a central finite difference over spot.
func (a *AmericanOption) Gamma(md marketdata.MarketData) (float64, error) {
	_, gamma, _, _, err := a.fd(md)
	return gamma, err
}

// Vega is a central finite difference over volatility.
func (a *AmericanOption) Vega(md marketdata.MarketData) (float64, error) {
	_, _, vega, _, err := a.fd(md)
	return vega, err
}

// Theta is a forward finite difference toward expiry.
func (a *AmericanOption) Theta(md marketdata.MarketData) (float64, error) {
	_, _, _, theta, err := a.fd(md)
	return theta, err
}

func (a *AmericanOption) fd(md marketdata.MarketData) (delta, gamma, vega, theta float64, err error) {
	pf := func(spot, vol, t float64) (float64, error) {
		return a.priceAt(spot, vol, t, md.RiskFreeRate)
	}
	return finiteDifferenceGreeks(pf, md.Spot, md.Volatility, a.expiry)
}
