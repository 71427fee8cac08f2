// Package volest estimates historical (realized) volatility from daily
// OHLC price bars. It supplements the core pricing/risk surface: none of
// these estimators calibrate an option-pricing model to observed option
// prices, they only summarize the statistical behavior of the
// underlying itself, so none of them touch the PricingModel enum or the
// no-calibration boundary the core pricing kernels hold to.
package volest

import "github.com/bcdannyboy/optionrisk/errs"

const tradingDaysPerYear = 252.0

// Bar is one day's open/high/low/close for an underlying.
type Bar struct {
	Open, High, Low, Close float64
}

func (b Bar) validate(op string, index int) error {
	if b.Open <= 0 || b.High <= 0 || b.Low <= 0 || b.Close <= 0 {
		return errs.InvalidArg(op, "bar %d has a non-positive price", index)
	}
	if b.High < b.Low {
		return errs.InvalidArg(op, "bar %d has high < low", index)
	}
	return nil
}

func validateBars(op string, bars []Bar, minLen int) error {
	if len(bars) < minLen {
		return errs.InvalidArg(op, "need at least %d bars, got %d", minLen, len(bars))
	}
	for i, b := range bars {
		if err := b.validate(op, i); err != nil {
			return err
		}
	}
	return nil
}
