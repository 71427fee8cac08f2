package risk_test

import (
	"testing"

	"github.com/bcdannyboy/optionrisk/instrument"
	"github.com/bcdannyboy/optionrisk/marketdata"
	"github.com/bcdannyboy/optionrisk/portfolio"
	"github.com/bcdannyboy/optionrisk/risk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aaplMarketData(t *testing.T) *marketdata.Store {
	store := marketdata.NewStore()
	md, err := marketdata.New("AAPL", 100, 0.05, 0.2)
	require.NoError(t, err)
	require.NoError(t, store.Add(md))
	return store
}

func TestEmptyPortfolioYieldsZeroResult(t *testing.T) {
	engine := risk.NewEngine()
	result, err := engine.CalculatePortfolioRisk(portfolio.New(), aaplMarketData(t))
	require.NoError(t, err)
	assert.Equal(t, risk.PortfolioRiskResult{}, result)
	assert.True(t, result.IsValid())
}

func TestSingleATMLongCallPortfolio(t *testing.T) {
	call, err := instrument.NewEuropeanOption("AAPL", instrument.Call, 100, 1.0)
	require.NoError(t, err)

	pf := portfolio.New()
	require.NoError(t, pf.Add(call, 1))

	engine := risk.NewEngineWithSimulations(10000)
	engine.SetFixedSeed(42)

	result, err := engine.CalculatePortfolioRisk(pf, aaplMarketData(t))
	require.NoError(t, err)

	assert.InDelta(t, 10.4506, result.TotalPV, 1e-4)
	assert.Greater(t, result.ValueAtRisk95, 0.0)
	assert.Greater(t, result.ValueAtRisk99, result.ValueAtRisk95)
	assert.GreaterOrEqual(t, result.ExpectedShortfall95, result.ValueAtRisk95)
	assert.GreaterOrEqual(t, result.ExpectedShortfall99, result.ValueAtRisk99)
}

func TestAggregationAcrossMixedPositions(t *testing.T) {
	call, err := instrument.NewEuropeanOption("AAPL", instrument.Call, 100, 1.0)
	require.NoError(t, err)
	put, err := instrument.NewEuropeanOption("AAPL", instrument.Put, 100, 1.0)
	require.NoError(t, err)

	pf := portfolio.New()
	require.NoError(t, pf.Add(call, 2))
	require.NoError(t, pf.Add(put, 3))

	engine := risk.NewEngine()
	engine.SetFixedSeed(1)

	result, err := engine.CalculatePortfolioRisk(pf, aaplMarketData(t))
	require.NoError(t, err)

	assert.InDelta(t, 37.6217, result.TotalPV, 1e-3)
	assert.InDelta(t, 0.1840, result.TotalDelta, 1e-3)
	assert.InDelta(t, 0.0940, result.TotalGamma, 1e-3)
	assert.InDelta(t, 187.6225, result.TotalVega, 1e-3)
}

func TestFixedSeedIsBitwiseReproducible(t *testing.T) {
	call, err := instrument.NewEuropeanOption("AAPL", instrument.Call, 100, 1.0)
	require.NoError(t, err)

	runOnce := func() risk.PortfolioRiskResult {
		pf := portfolio.New()
		require.NoError(t, pf.Add(call, 1))
		engine := risk.NewEngineWithSimulations(2000)
		engine.SetFixedSeed(7)
		result, err := engine.CalculatePortfolioRisk(pf, aaplMarketData(t))
		require.NoError(t, err)
		return result
	}

	first := runOnce()
	second := runOnce()
	assert.Equal(t, first, second)
}

func TestVaRIncreasesWithConfidence(t *testing.T) {
	put, err := instrument.NewEuropeanOption("AAPL", instrument.Put, 100, 1.0)
	require.NoError(t, err)

	pf := portfolio.New()
	require.NoError(t, pf.Add(put, 5))

	engine := risk.NewEngineWithSimulations(5000)
	engine.SetFixedSeed(99)

	result, err := engine.CalculatePortfolioRisk(pf, aaplMarketData(t))
	require.NoError(t, err)

	assert.GreaterOrEqual(t, result.ValueAtRisk99, result.ValueAtRisk95)
	assert.GreaterOrEqual(t, result.ExpectedShortfall99, result.ExpectedShortfall95)
	assert.GreaterOrEqual(t, result.ExpectedShortfall95, result.ValueAtRisk95)
}

func TestMissingMarketDataFailsFast(t *testing.T) {
	call, err := instrument.NewEuropeanOption("MSFT", instrument.Call, 100, 1.0)
	require.NoError(t, err)

	pf := portfolio.New()
	require.NoError(t, pf.Add(call, 1))

	engine := risk.NewEngine()
	_, err = engine.CalculatePortfolioRisk(pf, aaplMarketData(t))
	assert.Error(t, err)
}

func TestInvalidConfigurationRejected(t *testing.T) {
	engine := risk.NewEngineWithSimulations(0)
	_, err := engine.CalculatePortfolioRisk(portfolio.New(), aaplMarketData(t))
	assert.Error(t, err)

	engine2 := risk.NewEngine()
	engine2.SetTimeHorizonDays(0)
	_, err = engine2.CalculatePortfolioRisk(portfolio.New(), aaplMarketData(t))
	assert.Error(t, err)
}
