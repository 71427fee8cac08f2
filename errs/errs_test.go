package errs_test

import (
	"testing"

	"github.com/bcdannyboy/optionrisk/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKindsFormatAndClassify(t *testing.T) {
	cases := []struct {
		kind errs.Kind
		err  error
	}{
		{errs.InvalidArgument, errs.InvalidArg("NewMarketData", "spot price must be positive, got %v", -1.0)},
		{errs.InvalidState, errs.InvalidStateErr("RiskEngine.CalculatePortfolioRisk", "missing market data for asset %q", "AAPL")},
		{errs.Numerical, errs.NumericalErr("binomial.Price", "risk-neutral probability %v outside [0,1]", 1.4)},
		{errs.Range, errs.RangeErr("Portfolio.Remove", "index %d out of bounds for size %d", 5, 2)},
	}

	for _, c := range cases {
		require.Error(t, c.err)
		assert.True(t, errs.Is(c.err, c.kind))
		var e *errs.Error
		require.ErrorAs(t, c.err, &e)
		assert.Equal(t, c.kind, e.Kind)
		assert.NotEmpty(t, e.Error())
	}
}

func TestIsFalseForForeignError(t *testing.T) {
	assert.False(t, errs.Is(assertError{}, errs.Numerical))
}

type assertError struct{}

func (assertError) Error() string { return "not ours" }
