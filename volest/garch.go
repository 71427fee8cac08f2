package volest

import (
	"math"

	"github.com/bcdannyboy/optionrisk/errs"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat/distuv"
)

// GARCH11 holds the persistence (Beta), reaction (Alpha), and long-run
// variance floor (Omega) parameters of a GARCH(1,1) conditional
// variance process: sigma_t^2 = Omega + Alpha*r_{t-1}^2 + Beta*sigma_{t-1}^2.
type GARCH11 struct {
	Omega, Alpha, Beta float64
}

const (
	garchMCMCIterations = 2000
	garchBurnIn         = 200
	garchStepSize       = 0.01
)

// LogReturns converts a bar series into n-1 log close-to-close returns.
func LogReturns(bars []Bar) ([]float64, error) {
	const op = "LogReturns"
	if err := validateBars(op, bars, 2); err != nil {
		return nil, err
	}
	returns := make([]float64, len(bars)-1)
	for i := 1; i < len(bars); i++ {
		returns[i-1] = math.Log(bars[i].Close / bars[i-1].Close)
	}
	return returns, nil
}

// LogLikelihood scores g against a return series under its own
// recursively-built conditional variance path.
func (g GARCH11) LogLikelihood(returns []float64) float64 {
	logLik := 0.0
	variance := g.Omega / (1 - g.Alpha - g.Beta)

	for i := 1; i < len(returns); i++ {
		variance = g.Omega + g.Alpha*returns[i-1]*returns[i-1] + g.Beta*variance
		logLik += -0.5*math.Log(2*math.Pi) - 0.5*math.Log(variance) - 0.5*returns[i]*returns[i]/variance
	}
	return logLik
}

// ConditionalVolatility returns the annualized terminal conditional
// volatility implied by g's recursive variance over returns.
func (g GARCH11) ConditionalVolatility(returns []float64) float64 {
	variance := g.Omega / (1 - g.Alpha - g.Beta)
	for i := 1; i < len(returns); i++ {
		variance = g.Omega + g.Alpha*returns[i-1]*returns[i-1] + g.Beta*variance
	}
	return math.Sqrt(variance * tradingDaysPerYear)
}

// EstimateGARCH11 fits Omega/Alpha/Beta to returns via a short
// Metropolis-Hastings random walk seeded by a stationary-variance
// initial guess, then polishes the posterior mean with Nelder-Mead
// maximum-likelihood refinement.
func EstimateGARCH11(returns []float64, seed uint64) (GARCH11, error) {
	const op = "EstimateGARCH11"
	if len(returns) < garchBurnIn+10 {
		return GARCH11{}, errs.InvalidArg(op, "need at least %d returns, got %d", garchBurnIn+10, len(returns))
	}

	src := rand.NewSource(seed)
	step := func() float64 { return distuv.Normal{Mu: 0, Sigma: garchStepSize, Src: src}.Rand() }
	uniform := func() float64 { return distuv.Uniform{Min: 0, Max: 1, Src: src}.Rand() }

	chain := make([]GARCH11, garchMCMCIterations)
	chain[0] = GARCH11{Omega: 0.000001, Alpha: 0.1, Beta: 0.8}

	for i := 1; i < garchMCMCIterations; i++ {
		proposal := GARCH11{
			Omega: chain[i-1].Omega + step(),
			Alpha: chain[i-1].Alpha + step(),
			Beta:  chain[i-1].Beta + step(),
		}
		if proposal.Omega <= 0 || proposal.Alpha < 0 || proposal.Beta < 0 || proposal.Alpha+proposal.Beta >= 1 {
			chain[i] = chain[i-1]
			continue
		}

		logAcceptRatio := proposal.LogLikelihood(returns) - chain[i-1].LogLikelihood(returns)
		if math.Log(uniform()) < logAcceptRatio {
			chain[i] = proposal
		} else {
			chain[i] = chain[i-1]
		}
	}

	var avg GARCH11
	for i := garchBurnIn; i < garchMCMCIterations; i++ {
		avg.Omega += chain[i].Omega
		avg.Alpha += chain[i].Alpha
		avg.Beta += chain[i].Beta
	}
	count := float64(garchMCMCIterations - garchBurnIn)
	avg.Omega /= count
	avg.Alpha /= count
	avg.Beta /= count

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			return -GARCH11{Omega: x[0], Alpha: x[1], Beta: x[2]}.LogLikelihood(returns)
		},
	}
	result, err := optimize.Minimize(problem, []float64{avg.Omega, avg.Alpha, avg.Beta}, nil, &optimize.NelderMead{})
	if err != nil {
		return avg, nil
	}

	refined := GARCH11{Omega: result.X[0], Alpha: result.X[1], Beta: result.X[2]}
	if refined.Omega <= 0 || refined.Alpha < 0 || refined.Beta < 0 || refined.Alpha+refined.Beta >= 1 {
		return avg, nil
	}
	return refined, nil
}
