// Package instrument defines the polymorphic pricing/Greeks capability
// and its two concrete variants: EuropeanOption and AmericanOption.
package instrument

import "github.com/bcdannyboy/optionrisk/marketdata"

// OptionKind tags a call or a put. It is immutable once constructed.
type OptionKind int

const (
	Call OptionKind = iota
	Put
)

func (k OptionKind) String() string {
	if k == Call {
		return "call"
	}
	return "put"
}

func (k OptionKind) isCall() bool { return k == Call }

// PricingModel selects the kernel a EuropeanOption prices against.
// SetPricingModel may change it at any time, including after the option
// has been priced; each call uses the model selected at that moment.
type PricingModel int

const (
	BlackScholes PricingModel = iota
	Binomial
	MertonJumpDiffusion
)

func (m PricingModel) String() string {
	switch m {
	case BlackScholes:
		return "black-scholes"
	case Binomial:
		return "binomial"
	case MertonJumpDiffusion:
		return "merton-jump-diffusion"
	default:
		return "unknown"
	}
}

// Instrument is the capability every position in a Portfolio exposes to
// the RiskEngine: price and Greeks against a market snapshot, plus enough
// identity to look up that snapshot and report results.
type Instrument interface {
	Price(md marketdata.MarketData) (float64, error)
	Delta(md marketdata.MarketData) (float64, error)
	Gamma(md marketdata.MarketData) (float64, error)
	Vega(md marketdata.MarketData) (float64, error)
	Theta(md marketdata.MarketData) (float64, error)
	AssetID() string
	KindLabel() string
	IsValid() bool
}
