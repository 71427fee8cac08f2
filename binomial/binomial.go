// Package binomial implements the Cox-Ross-Rubinstein binomial lattice
// for European and American option pricing, including backward induction
// and an optional full-tree diagnostic build.
package binomial

import (
	"math"

	"github.com/bcdannyboy/optionrisk/errs"
	"github.com/bcdannyboy/optionrisk/numerics"
)

const (
	MinSteps = 1
	MaxSteps = 10000
)

// treeParams holds the CRR lattice parameters derived from the model
// inputs: time step, up/down factors, risk-neutral probability, and the
// per-step discount factor.
type treeParams struct {
	dt, u, d, p, discount float64
}

func buildParams(op string, rate, t, vol float64, steps int) (treeParams, error) {
	if steps < MinSteps || steps > MaxSteps {
		return treeParams{}, errs.InvalidArg(op, "steps must be in [%d, %d], got %d", MinSteps, MaxSteps, steps)
	}

	dt := t / float64(steps)
	u := math.Exp(vol * math.Sqrt(dt))
	d := 1 / u
	p := (math.Exp(rate*dt) - d) / (u - d)
	discount := math.Exp(-rate * dt)

	if p < 0 || p > 1 {
		return treeParams{}, errs.NumericalErr(op, "risk-neutral probability %v is outside [0, 1]", p)
	}

	return treeParams{dt: dt, u: u, d: d, p: p, discount: discount}, nil
}

func intrinsic(isCall bool, spot, strike float64) float64 {
	if isCall {
		return math.Max(spot-strike, 0)
	}
	return math.Max(strike-spot, 0)
}

// Price runs the in-place O(N) backward induction for the CRR tree and
// returns the root value. american selects the max(hold, intrinsic) early
// exercise step at every node; European pricing takes the continuation
// value unconditionally.
func Price(isCall, american bool, spot, strike, rate, t, vol float64, steps int) (float64, error) {
	const op = "binomial.Price"
	if err := numerics.ValidatePricingInputs(op, spot, strike, t, vol); err != nil {
		return 0, err
	}
	if t == 0 || vol == 0 {
		return intrinsic(isCall, spot, strike), nil
	}

	params, err := buildParams(op, rate, t, vol, steps)
	if err != nil {
		return 0, err
	}

	values := make([]float64, steps+1)
	for i := 0; i <= steps; i++ {
		nodeSpot := spot * math.Pow(params.u, float64(steps-i)) * math.Pow(params.d, float64(i))
		values[i] = intrinsic(isCall, nodeSpot, strike)
	}

	for step := steps - 1; step >= 0; step-- {
		for i := 0; i <= step; i++ {
			hold := params.discount * (params.p*values[i] + (1-params.p)*values[i+1])
			if american {
				nodeSpot := spot * math.Pow(params.u, float64(step-i)) * math.Pow(params.d, float64(i))
				hold = math.Max(hold, intrinsic(isCall, nodeSpot, strike))
			}
			values[i] = hold
		}
	}

	if math.IsNaN(values[0]) || math.IsInf(values[0], 0) {
		return 0, errs.NumericalErr(op, "tree produced a non-finite price")
	}
	return values[0], nil
}

// Node is one lattice point in a fully materialized diagnostic tree.
type Node struct {
	Spot      float64
	Value     float64
	Exercised bool
}

// Tree is the full O(N^2) lattice, retained layer by layer, Nodes[step][i].
type Tree struct {
	Steps int
	Nodes [][]Node
}

// BuildTree materializes the full lattice with per-node spot, value, and
// early-exercise flag. This is a diagnostic path, not used by Price; it
// allocates O(N^2) nodes.
func BuildTree(isCall, american bool, spot, strike, rate, t, vol float64, steps int) (*Tree, error) {
	const op = "binomial.BuildTree"
	if err := numerics.ValidatePricingInputs(op, spot, strike, t, vol); err != nil {
		return nil, err
	}
	if t == 0 || vol == 0 {
		v := intrinsic(isCall, spot, strike)
		return &Tree{Steps: 0, Nodes: [][]Node{{{Spot: spot, Value: v, Exercised: false}}}}, nil
	}

	params, err := buildParams(op, rate, t, vol, steps)
	if err != nil {
		return nil, err
	}

	tree := &Tree{Steps: steps, Nodes: make([][]Node, steps+1)}

	terminal := make([]Node, steps+1)
	for i := 0; i <= steps; i++ {
		nodeSpot := spot * math.Pow(params.u, float64(steps-i)) * math.Pow(params.d, float64(i))
		terminal[i] = Node{Spot: nodeSpot, Value: intrinsic(isCall, nodeSpot, strike), Exercised: false}
	}
	tree.Nodes[steps] = terminal

	for step := steps - 1; step >= 0; step-- {
		layer := make([]Node, step+1)
		next := tree.Nodes[step+1]
		for i := 0; i <= step; i++ {
			nodeSpot := spot * math.Pow(params.u, float64(step-i)) * math.Pow(params.d, float64(i))
			hold := params.discount * (params.p*next[i].Value + (1-params.p)*next[i+1].Value)
			exVal := intrinsic(isCall, nodeSpot, strike)

			value := hold
			exercised := false
			if american && exVal > hold {
				value = exVal
				exercised = true
			}
			layer[i] = Node{Spot: nodeSpot, Value: value, Exercised: exercised}
		}
		tree.Nodes[step] = layer
	}

	if math.IsNaN(tree.Nodes[0][0].Value) || math.IsInf(tree.Nodes[0][0].Value, 0) {
		return nil, errs.NumericalErr(op, "tree produced a non-finite root value")
	}
	return tree, nil
}

// RootValue returns the price at the root of a materialized tree.
func (t *Tree) RootValue() float64 {
	return t.Nodes[0][0].Value
}
