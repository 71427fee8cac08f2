package blackscholes_test

import (
	"testing"

	"github.com/bcdannyboy/optionrisk/blackscholes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImpliedVolatilityRoundTrips(t *testing.T) {
	price, err := blackscholes.CallPrice(atmSpot, atmK, atmR, atmT, atmVol)
	require.NoError(t, err)

	iv, err := blackscholes.ImpliedVolatility(true, price, atmSpot, atmK, atmR, atmT)
	require.NoError(t, err)
	assert.InDelta(t, atmVol, iv, 1e-4)
}

func TestImpliedVolatilityRejectsBelowIntrinsic(t *testing.T) {
	_, err := blackscholes.ImpliedVolatility(true, 5.0, 110, 100, atmR, atmT)
	assert.Error(t, err)
}

func TestImpliedVolatilityRejectsAboveUpperBound(t *testing.T) {
	_, err := blackscholes.ImpliedVolatility(true, 200.0, 100, 100, atmR, atmT)
	assert.Error(t, err)
}
