// Package risk aggregates a Portfolio's price and Greeks against a
// MarketDataStore and estimates Monte-Carlo value-at-risk and expected
// shortfall.
package risk

import (
	"math"
	"sort"
	"time"

	"github.com/bcdannyboy/optionrisk/errs"
	"github.com/bcdannyboy/optionrisk/marketdata"
	"github.com/bcdannyboy/optionrisk/portfolio"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// DefaultSimulations is the var_simulations count used by NewEngine.
	DefaultSimulations = 10000
	minSimulations      = 1
	maxSimulations      = 1000000

	// DefaultTimeHorizonDays is the var horizon used by NewEngine.
	DefaultTimeHorizonDays = 1.0
	maxTimeHorizonDays     = 252.0

	tradingDaysPerYear = 252.0
	pnlFloor           = 1e-10
)

// Config controls the RiskEngine's Monte-Carlo behavior.
type Config struct {
	VarSimulations  int
	TimeHorizonDays float64
	UseFixedSeed    bool
	RandomSeed      uint32
}

// DefaultConfig returns the engine's default configuration.
func DefaultConfig() Config {
	return Config{
		VarSimulations:  DefaultSimulations,
		TimeHorizonDays: DefaultTimeHorizonDays,
	}
}

func (c Config) validate() error {
	const op = "Config.validate"
	if c.VarSimulations < minSimulations || c.VarSimulations > maxSimulations {
		return errs.InvalidArg(op, "var_simulations must be in [%d, %d], got %d", minSimulations, maxSimulations, c.VarSimulations)
	}
	if c.TimeHorizonDays <= 0 || c.TimeHorizonDays > maxTimeHorizonDays {
		return errs.InvalidArg(op, "time_horizon_days must be in (0, %v], got %v", maxTimeHorizonDays, c.TimeHorizonDays)
	}
	return nil
}

// PortfolioRiskResult is the aggregated price, Greeks, and risk measures
// for one CalculatePortfolioRisk call.
type PortfolioRiskResult struct {
	TotalPV             float64
	TotalDelta          float64
	TotalGamma          float64
	TotalVega           float64
	TotalTheta          float64
	ValueAtRisk95       float64
	ValueAtRisk99       float64
	ExpectedShortfall95 float64
	ExpectedShortfall99 float64
}

// Reset zeros every field.
func (r *PortfolioRiskResult) Reset() { *r = PortfolioRiskResult{} }

// IsValid reports whether every field is finite.
func (r PortfolioRiskResult) IsValid() bool {
	fields := []float64{
		r.TotalPV, r.TotalDelta, r.TotalGamma, r.TotalVega, r.TotalTheta,
		r.ValueAtRisk95, r.ValueAtRisk99, r.ExpectedShortfall95, r.ExpectedShortfall99,
	}
	for _, f := range fields {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// Engine computes PortfolioRiskResults against a Config.
type Engine struct {
	cfg Config
}

// NewEngine returns an Engine with DefaultConfig.
func NewEngine() *Engine {
	return &Engine{cfg: DefaultConfig()}
}

// NewEngineWithSimulations returns an Engine with varSimulations in place
// of the default simulation count.
func NewEngineWithSimulations(varSimulations int) *Engine {
	cfg := DefaultConfig()
	cfg.VarSimulations = varSimulations
	return &Engine{cfg: cfg}
}

// SetVarSimulations overrides the simulation count.
func (e *Engine) SetVarSimulations(n int) { e.cfg.VarSimulations = n }

// SetTimeHorizonDays overrides the VaR time horizon.
func (e *Engine) SetTimeHorizonDays(days float64) { e.cfg.TimeHorizonDays = days }

// SetFixedSeed pins the generator seed for reproducible runs.
func (e *Engine) SetFixedSeed(seed uint32) {
	e.cfg.UseFixedSeed = true
	e.cfg.RandomSeed = seed
}

// ClearFixedSeed reverts to seeding from a nondeterministic source.
func (e *Engine) ClearFixedSeed() { e.cfg.UseFixedSeed = false }

// CalculatePortfolioRisk aggregates pv and Greeks across pf's positions
// against md, then estimates VaR/ES at 95% and 99% via Monte Carlo.
func (e *Engine) CalculatePortfolioRisk(pf *portfolio.Portfolio, md *marketdata.Store) (PortfolioRiskResult, error) {
	const op = "Engine.CalculatePortfolioRisk"

	if err := e.cfg.validate(); err != nil {
		return PortfolioRiskResult{}, err
	}

	var result PortfolioRiskResult
	if pf == nil || pf.Empty() {
		return result, nil
	}

	positions := pf.Positions()
	snapshots := make([]marketdata.MarketData, len(positions))

	for i, pos := range positions {
		if pos.Instrument == nil {
			return PortfolioRiskResult{}, errs.InvalidStateErr(op, "position %d holds a nil instrument", i)
		}
		assetID := pos.Instrument.AssetID()
		snap, err := md.Get(assetID)
		if err != nil {
			return PortfolioRiskResult{}, errs.InvalidStateErr(op, "no market data for asset %q referenced by position %d", assetID, i)
		}
		if err := snap.Validate(); err != nil {
			return PortfolioRiskResult{}, errs.InvalidStateErr(op, "market data for asset %q is invalid: %v", assetID, err)
		}
		snapshots[i] = snap

		q := float64(pos.Quantity)

		price, err := pos.Instrument.Price(snap)
		if err != nil {
			return PortfolioRiskResult{}, err
		}
		if err := checkFiniteMetric(op, "price", assetID, price); err != nil {
			return PortfolioRiskResult{}, err
		}

		delta, err := pos.Instrument.Delta(snap)
		if err != nil {
			return PortfolioRiskResult{}, err
		}
		if err := checkFiniteMetric(op, "delta", assetID, delta); err != nil {
			return PortfolioRiskResult{}, err
		}

		gamma, err := pos.Instrument.Gamma(snap)
		if err != nil {
			return PortfolioRiskResult{}, err
		}
		if err := checkFiniteMetric(op, "gamma", assetID, gamma); err != nil {
			return PortfolioRiskResult{}, err
		}

		vega, err := pos.Instrument.Vega(snap)
		if err != nil {
			return PortfolioRiskResult{}, err
		}
		if err := checkFiniteMetric(op, "vega", assetID, vega); err != nil {
			return PortfolioRiskResult{}, err
		}

		theta, err := pos.Instrument.Theta(snap)
		if err != nil {
			return PortfolioRiskResult{}, err
		}
		if err := checkFiniteMetric(op, "theta", assetID, theta); err != nil {
			return PortfolioRiskResult{}, err
		}

		result.TotalPV += q * price
		result.TotalDelta += q * delta
		result.TotalGamma += q * gamma
		result.TotalVega += q * vega
		result.TotalTheta += q * theta

		if !finiteAggregate(result) {
			return PortfolioRiskResult{}, errs.NumericalErr(op, "running total became non-finite after adding asset %q", assetID)
		}
	}

	varES, err := e.monteCarloVaRES(positions, snapshots, result.TotalPV)
	if err != nil {
		return PortfolioRiskResult{}, err
	}
	result.ValueAtRisk95 = varES.var95
	result.ValueAtRisk99 = varES.var99
	result.ExpectedShortfall95 = varES.es95
	result.ExpectedShortfall99 = varES.es99

	if !result.IsValid() {
		return PortfolioRiskResult{}, errs.NumericalErr(op, "aggregated result contains a non-finite field")
	}
	return result, nil
}

func checkFiniteMetric(op, metric, assetID string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return errs.NumericalErr(op, "%s for asset %q is non-finite", metric, assetID)
	}
	return nil
}

func finiteAggregate(r PortfolioRiskResult) bool {
	return !math.IsNaN(r.TotalPV) && !math.IsInf(r.TotalPV, 0) &&
		!math.IsNaN(r.TotalDelta) && !math.IsInf(r.TotalDelta, 0) &&
		!math.IsNaN(r.TotalGamma) && !math.IsInf(r.TotalGamma, 0) &&
		!math.IsNaN(r.TotalVega) && !math.IsInf(r.TotalVega, 0) &&
		!math.IsNaN(r.TotalTheta) && !math.IsInf(r.TotalTheta, 0)
}

type varESResult struct {
	var95, var99, es95, es99 float64
}

func (e *Engine) monteCarloVaRES(positions []portfolio.Position, snapshots []marketdata.MarketData, v0 float64) (varESResult, error) {
	const op = "Engine.monteCarloVaRES"

	if math.Abs(v0) < pnlFloor {
		return varESResult{}, nil
	}

	seed := uint64(e.cfg.RandomSeed)
	if !e.cfg.UseFixedSeed {
		seed = uint64(time.Now().UnixNano())
	}
	src := newMT19937(seed)
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.Source(src)}

	n := e.cfg.VarSimulations
	dt := e.cfg.TimeHorizonDays / tradingDaysPerYear
	sqrtDt := math.Sqrt(dt)

	pnl := make([]float64, n)
	for s := 0; s < n; s++ {
		vShocked := 0.0
		for i, pos := range positions {
			snap := snapshots[i]
			z := normal.Rand()
			drift := (snap.RiskFreeRate - 0.5*snap.Volatility*snap.Volatility) * dt
			diffusion := snap.Volatility * sqrtDt * z
			shockedSpot := snap.Spot * math.Exp(drift+diffusion)
			if math.IsNaN(shockedSpot) || math.IsInf(shockedSpot, 0) || shockedSpot <= 0 {
				return varESResult{}, errs.NumericalErr(op, "simulated spot for asset %q is non-finite or non-positive", snap.AssetID)
			}
			shocked := snap.WithSpot(shockedSpot)

			price, err := pos.Instrument.Price(shocked)
			if err != nil {
				return varESResult{}, err
			}
			vShocked += float64(pos.Quantity) * price
		}
		if math.IsNaN(vShocked) || math.IsInf(vShocked, 0) {
			return varESResult{}, errs.NumericalErr(op, "simulated portfolio value in scenario %d is non-finite", s)
		}
		pnl[s] = vShocked - v0
	}

	sort.Float64s(pnl)

	var95, es95 := varAndES(pnl, 0.95)
	var99, es99 := varAndES(pnl, 0.99)

	result := varESResult{var95: var95, var99: var99, es95: es95, es99: es99}
	if math.IsNaN(result.var95) || math.IsInf(result.var95, 0) ||
		math.IsNaN(result.var99) || math.IsInf(result.var99, 0) ||
		math.IsNaN(result.es95) || math.IsInf(result.es95, 0) ||
		math.IsNaN(result.es99) || math.IsInf(result.es99, 0) {
		return varESResult{}, errs.NumericalErr(op, "computed var/es is non-finite")
	}
	return result, nil
}

// varAndES returns (VaR, ES) at confidence c over ascending-sorted pnl,
// both reported as positive loss numbers.
func varAndES(pnl []float64, c float64) (v, es float64) {
	n := len(pnl)
	k := int(math.Floor((1 - c) * float64(n)))
	if k >= n {
		k = n - 1
	}
	if k < 0 {
		k = 0
	}

	v = -pnl[k]

	sum := 0.0
	for j := 0; j <= k; j++ {
		sum += pnl[j]
	}
	es = -sum / float64(k+1)
	return v, es
}
