package portfolio_test

import (
	"math"
	"testing"

	"github.com/bcdannyboy/optionrisk/marketdata"
	"github.com/bcdannyboy/optionrisk/portfolio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubInstrument is a minimal Instrument test double; it reports a fixed
// price/Greeks regardless of the MarketData it is given.
type stubInstrument struct {
	assetID string
	kind    string
	valid   bool
}

func (s *stubInstrument) Price(marketdata.MarketData) (float64, error) { return 1, nil }
func (s *stubInstrument) Delta(marketdata.MarketData) (float64, error) { return 1, nil }
func (s *stubInstrument) Gamma(marketdata.MarketData) (float64, error) { return 1, nil }
func (s *stubInstrument) Vega(marketdata.MarketData) (float64, error)  { return 1, nil }
func (s *stubInstrument) Theta(marketdata.MarketData) (float64, error) { return 1, nil }
func (s *stubInstrument) AssetID() string                              { return s.assetID }
func (s *stubInstrument) KindLabel() string                            { return s.kind }
func (s *stubInstrument) IsValid() bool                                { return s.valid }

func newStub(assetID string) *stubInstrument {
	return &stubInstrument{assetID: assetID, kind: "call", valid: true}
}

func TestAddRejectsNilAndEmptyAssetID(t *testing.T) {
	p := portfolio.New()

	err := p.Add(nil, 1)
	assert.Error(t, err)

	err = p.Add(newStub(""), 1)
	assert.Error(t, err)

	assert.Equal(t, 0, p.Size())
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	p := portfolio.New()
	require.NoError(t, p.Add(newStub("AAPL"), 10))
	require.NoError(t, p.Add(newStub("MSFT"), -5))
	require.NoError(t, p.Add(newStub("AAPL"), 3))

	positions := p.Positions()
	require.Len(t, positions, 3)
	assert.Equal(t, "AAPL", positions[0].Instrument.AssetID())
	assert.Equal(t, "MSFT", positions[1].Instrument.AssetID())
	assert.Equal(t, "AAPL", positions[2].Instrument.AssetID())
}

func TestRemoveAndUpdateQuantity(t *testing.T) {
	p := portfolio.New()
	require.NoError(t, p.Add(newStub("AAPL"), 10))
	require.NoError(t, p.Add(newStub("MSFT"), 5))

	require.NoError(t, p.UpdateQuantity(1, 99))
	pos, err := p.At(1)
	require.NoError(t, err)
	assert.Equal(t, int64(99), pos.Quantity)

	require.NoError(t, p.Remove(0))
	assert.Equal(t, 1, p.Size())
	pos, err = p.At(0)
	require.NoError(t, err)
	assert.Equal(t, "MSFT", pos.Instrument.AssetID())
}

func TestRemoveAndUpdateQuantityRejectOutOfRange(t *testing.T) {
	p := portfolio.New()
	require.NoError(t, p.Add(newStub("AAPL"), 1))

	assert.Error(t, p.Remove(-1))
	assert.Error(t, p.Remove(1))
	assert.Error(t, p.UpdateQuantity(-1, 1))
	assert.Error(t, p.UpdateQuantity(5, 1))
}

func TestTotalQuantityForAssetSumsMatchingPositions(t *testing.T) {
	p := portfolio.New()
	require.NoError(t, p.Add(newStub("AAPL"), 10))
	require.NoError(t, p.Add(newStub("MSFT"), 5))
	require.NoError(t, p.Add(newStub("AAPL"), -3))

	total, err := p.TotalQuantityForAsset("AAPL")
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)

	total, err = p.TotalQuantityForAsset("GOOG")
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestTotalQuantityForAssetDetectsOverflow(t *testing.T) {
	p := portfolio.New()
	require.NoError(t, p.Add(newStub("AAPL"), math.MaxInt64))
	require.NoError(t, p.Add(newStub("AAPL"), 1))

	_, err := p.TotalQuantityForAsset("AAPL")
	assert.Error(t, err)
}

func TestEmptySizeClearReserve(t *testing.T) {
	p := portfolio.New()
	assert.True(t, p.Empty())

	p.Reserve(4)
	require.NoError(t, p.Add(newStub("AAPL"), 1))
	require.NoError(t, p.Add(newStub("MSFT"), 1))
	assert.False(t, p.Empty())
	assert.Equal(t, 2, p.Size())

	p.Clear()
	assert.True(t, p.Empty())
	assert.Equal(t, 0, p.Size())
}
