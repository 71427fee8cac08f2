package marketdata_test

import (
	"testing"

	"github.com/bcdannyboy/optionrisk/marketdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMarketData(t *testing.T, assetID string, spot float64) marketdata.MarketData {
	md, err := marketdata.New(assetID, spot, 0.05, 0.2)
	require.NoError(t, err)
	return md
}

func TestStoreAddGetUpdateRemove(t *testing.T) {
	store := marketdata.NewStore()
	assert.Equal(t, 0, store.Size())

	md := mustMarketData(t, "AAPL", 150)
	require.NoError(t, store.Add(md))
	assert.True(t, store.Has("AAPL"))
	assert.Equal(t, 1, store.Size())

	err := store.Add(md)
	assert.Error(t, err)

	got, err := store.Get("AAPL")
	require.NoError(t, err)
	assert.Equal(t, md, got)

	updated := mustMarketData(t, "AAPL", 155)
	require.NoError(t, store.Update(updated))
	got, err = store.Get("AAPL")
	require.NoError(t, err)
	assert.Equal(t, 155.0, got.Spot)

	require.NoError(t, store.Remove("AAPL"))
	assert.False(t, store.Has("AAPL"))

	err = store.Remove("AAPL")
	assert.Error(t, err)
}

func TestStoreUpdateUnknownFails(t *testing.T) {
	store := marketdata.NewStore()
	err := store.Update(mustMarketData(t, "AAPL", 150))
	assert.Error(t, err)
}

func TestStoreGetMissingFails(t *testing.T) {
	store := marketdata.NewStore()
	_, err := store.Get("AAPL")
	assert.Error(t, err)
}

func TestStoreRejectsEmptyAssetID(t *testing.T) {
	store := marketdata.NewStore()
	_, err := store.Get("")
	assert.Error(t, err)
	err = store.Remove("")
	assert.Error(t, err)
}

func TestStoreClearAndSnapshot(t *testing.T) {
	store := marketdata.NewStore()
	require.NoError(t, store.Add(mustMarketData(t, "AAPL", 150)))
	require.NoError(t, store.Add(mustMarketData(t, "MSFT", 300)))

	snap := store.Snapshot()
	assert.Len(t, snap, 2)

	snap["AAPL"] = mustMarketData(t, "AAPL", 999)
	original, err := store.Get("AAPL")
	require.NoError(t, err)
	assert.Equal(t, 150.0, original.Spot)

	store.Clear()
	assert.Equal(t, 0, store.Size())
}
