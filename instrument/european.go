package instrument

import (
	"github.com/bcdannyboy/optionrisk/binomial"
	"github.com/bcdannyboy/optionrisk/blackscholes"
	"github.com/bcdannyboy/optionrisk/errs"
	"github.com/bcdannyboy/optionrisk/jumpdiffusion"
	"github.com/bcdannyboy/optionrisk/marketdata"
)

const (
	defaultBinomialSteps = 100
	defaultMaxJumps      = jumpdiffusion.DefaultMaxJumps
	minBinomialSteps     = binomial.MinSteps
	maxBinomialSteps     = binomial.MaxSteps
)

// EuropeanOption is a call or put exercisable only at expiry, priced
// against whichever PricingModel it is configured with. It does not own
// a MarketData snapshot; every method takes one, matching the exercise
// against whatever snapshot the caller (typically a Portfolio walk) has
// on hand for AssetID. The risk-free rate is never stored on the
// instrument — every call reads md.RiskFreeRate, so a later
// MarketDataStore.Update to that asset's rate is picked up immediately.
type EuropeanOption struct {
	assetID string
	kind    OptionKind
	strike  float64
	expiry  float64

	model         PricingModel
	binomialSteps int

	jumpLambda   float64
	jumpMean     float64
	jumpVol      float64
	jumpMaxTerms int
}

// NewEuropeanOption constructs a call or put on assetID struck at
// strike, expiring in expiry years, priced under Black-Scholes until a
// different model is selected.
func NewEuropeanOption(assetID string, kind OptionKind, strike, expiry float64) (*EuropeanOption, error) {
	const op = "NewEuropeanOption"
	if assetID == "" {
		return nil, errs.InvalidArg(op, "asset id must not be empty")
	}
	if strike <= 0 {
		return nil, errs.InvalidArg(op, "strike must be positive, got %v", strike)
	}
	if expiry < 0 {
		return nil, errs.InvalidArg(op, "time to expiry must be non-negative, got %v", expiry)
	}
	return &EuropeanOption{
		assetID:       assetID,
		kind:          kind,
		strike:        strike,
		expiry:        expiry,
		model:         BlackScholes,
		binomialSteps: defaultBinomialSteps,
		jumpMaxTerms:  defaultMaxJumps,
	}, nil
}

// SetPricingModel switches the kernel used by Price and the Greeks.
func (e *EuropeanOption) SetPricingModel(model PricingModel) { e.model = model }

// PricingModel reports the kernel currently selected.
func (e *EuropeanOption) PricingModel() PricingModel { return e.model }

// SetBinomialSteps overrides the lattice step count used when the
// pricing model is Binomial, rejecting a count outside [1, 10000].
func (e *EuropeanOption) SetBinomialSteps(steps int) error {
	const op = "EuropeanOption.SetBinomialSteps"
	if steps < minBinomialSteps || steps > maxBinomialSteps {
		return errs.InvalidArg(op, "binomial steps must be in [%d, %d], got %d", minBinomialSteps, maxBinomialSteps, steps)
	}
	e.binomialSteps = steps
	return nil
}

// SetJumpParams configures the Merton jump-diffusion kernel's intensity
// (lambda, jumps per year), mean log jump size, and jump size volatility.
// maxTerms caps the Poisson series; zero or negative selects the
// package default. Rejects a negative lambda or jumpVol.
func (e *EuropeanOption) SetJumpParams(lambda, jumpMean, jumpVol float64, maxTerms int) error {
	const op = "EuropeanOption.SetJumpParams"
	if lambda < 0 {
		return errs.InvalidArg(op, "jump intensity lambda must be non-negative, got %v", lambda)
	}
	if jumpVol < 0 {
		return errs.InvalidArg(op, "jump volatility must be non-negative, got %v", jumpVol)
	}
	e.jumpLambda = lambda
	e.jumpMean = jumpMean
	e.jumpVol = jumpVol
	e.jumpMaxTerms = maxTerms
	return nil
}

// AssetID reports the underlying this option is written on.
func (e *EuropeanOption) AssetID() string { return e.assetID }

// KindLabel reports "call" or "put".
func (e *EuropeanOption) KindLabel() string { return e.kind.String() }

// IsValid reports whether the option's own static parameters are sane.
// It does not check any MarketData; Price and the Greeks do that per call.
func (e *EuropeanOption) IsValid() bool {
	return e.assetID != "" && e.strike > 0 && e.expiry >= 0
}

func (e *EuropeanOption) priceAt(spot, vol, t, rate float64) (float64, error) {
	switch e.model {
	case BlackScholes:
		return blackscholes.Price(e.kind.isCall(), spot, e.strike, rate, t, vol)
	case Binomial:
		return binomial.Price(e.kind.isCall(), false, spot, e.strike, rate, t, vol, e.binomialSteps)
	case MertonJumpDiffusion:
		return jumpdiffusion.Price(e.kind.isCall(), spot, e.strike, rate, t, vol, e.jumpLambda, e.jumpMean, e.jumpVol, e.jumpMaxTerms)
	default:
		return 0, errs.InvalidStateErr("EuropeanOption.priceAt", "unrecognized pricing model %v", e.model)
	}
}

// Price values the option against md under the configured model.
func (e *EuropeanOption) Price(md marketdata.MarketData) (float64, error) {
	return e.priceAt(md.Spot, md.Volatility, e.expiry, md.RiskFreeRate)
}

// Delta is closed-form under Black-Scholes and a central finite
// difference over spot under every other model.
func (e *EuropeanOption) Delta(md marketdata.MarketData) (float64, error) {
	if e.model == BlackScholes {
		return blackscholes.Delta(e.kind.isCall(), md.Spot, e.strike, md.RiskFreeRate, e.expiry, md.Volatility)
	}
	delta, _, _, _, err := e.fd(md)
	return delta, err
}

// Gamma is closed-form under Black-Scholes and a central finite
// difference over spot under every other model.
func (e *EuropeanOption) Gamma(md marketdata.MarketData) (float64, error) {
	if e.model == BlackScholes {
		return blackscholes.Gamma(md.Spot, e.strike, md.RiskFreeRate, e.expiry, md.Volatility)
	}
	_, gamma, _, _, err := e.fd(md)
	return gamma, err
}

// Vega is closed-form under Black-Scholes and a central finite
// difference over volatility under every other model.
func (e *EuropeanOption) Vega(md marketdata.MarketData) (float64, error) {
	if e.model == BlackScholes {
		return blackscholes.Vega(md.Spot, e.strike, md.RiskFreeRate, e.expiry, md.Volatility)
	}
	_, _, vega, _, err := e.fd(md)
	return vega, err
}

// Theta is closed-form under Black-Scholes and a forward finite
// difference toward expiry under every other model.
func (e *EuropeanOption) Theta(md marketdata.MarketData) (float64, error) {
	if e.model == BlackScholes {
		return blackscholes.Theta(e.kind.isCall(), md.Spot, e.strike, md.RiskFreeRate, e.expiry, md.Volatility)
	}
	_, _, _, theta, err := e.fd(md)
	return theta, err
}

func (e *EuropeanOption) fd(md marketdata.MarketData) (delta, gamma, vega, theta float64, err error) {
	pf := func(spot, vol, t float64) (float64, error) {
		return e.priceAt(spot, vol, t, md.RiskFreeRate)
	}
	return finiteDifferenceGreeks(pf, md.Spot, md.Volatility, e.expiry)
}
