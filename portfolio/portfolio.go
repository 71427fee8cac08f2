// Package portfolio holds the exclusive-owner collection of instrument
// positions the risk engine walks in insertion order.
package portfolio

import (
	"github.com/bcdannyboy/optionrisk/errs"
	"github.com/bcdannyboy/optionrisk/instrument"
)

// Position pairs an exclusively-owned Instrument with a signed quantity.
// A negative quantity represents a short.
type Position struct {
	Instrument instrument.Instrument
	Quantity   int64
}

// Portfolio is an insertion-ordered sequence of Positions. It is the
// exclusive owner of every Instrument it holds and is not safe for
// concurrent mutation.
type Portfolio struct {
	positions []Position
}

// New returns an empty Portfolio.
func New() *Portfolio {
	return &Portfolio{}
}

// Add appends instrument/quantity as a new position, rejecting a nil
// instrument or one reporting an empty asset id.
func (p *Portfolio) Add(inst instrument.Instrument, quantity int64) error {
	const op = "Portfolio.Add"
	if inst == nil {
		return errs.InvalidStateErr(op, "instrument must not be nil")
	}
	if inst.AssetID() == "" {
		return errs.InvalidArg(op, "instrument asset id must not be empty")
	}
	p.positions = append(p.positions, Position{Instrument: inst, Quantity: quantity})
	return nil
}

// Remove deletes the position at index, preserving the relative order of
// the remaining positions.
func (p *Portfolio) Remove(index int) error {
	const op = "Portfolio.Remove"
	if index < 0 || index >= len(p.positions) {
		return errs.RangeErr(op, "index %d out of bounds for portfolio of size %d", index, len(p.positions))
	}
	p.positions = append(p.positions[:index], p.positions[index+1:]...)
	return nil
}

// UpdateQuantity overwrites the quantity of the position at index.
func (p *Portfolio) UpdateQuantity(index int, quantity int64) error {
	const op = "Portfolio.UpdateQuantity"
	if index < 0 || index >= len(p.positions) {
		return errs.RangeErr(op, "index %d out of bounds for portfolio of size %d", index, len(p.positions))
	}
	p.positions[index].Quantity = quantity
	return nil
}

// TotalQuantityForAsset sums the signed quantities of every position
// whose instrument reports assetID, failing on signed 64-bit overflow.
func (p *Portfolio) TotalQuantityForAsset(assetID string) (int64, error) {
	const op = "Portfolio.TotalQuantityForAsset"
	var total int64
	for _, pos := range p.positions {
		if pos.Instrument == nil || pos.Instrument.AssetID() != assetID {
			continue
		}
		sum := total + pos.Quantity
		if (pos.Quantity > 0 && sum < total) || (pos.Quantity < 0 && sum > total) {
			return 0, errs.RangeErr(op, "quantity sum for asset %q overflows int64", assetID)
		}
		total = sum
	}
	return total, nil
}

// Size returns the number of positions.
func (p *Portfolio) Size() int { return len(p.positions) }

// Empty reports whether the portfolio holds no positions.
func (p *Portfolio) Empty() bool { return len(p.positions) == 0 }

// Clear releases every owned instrument.
func (p *Portfolio) Clear() { p.positions = nil }

// Reserve preallocates capacity for n additional positions.
func (p *Portfolio) Reserve(n int) {
	if n <= 0 {
		return
	}
	grown := make([]Position, len(p.positions), len(p.positions)+n)
	copy(grown, p.positions)
	p.positions = grown
}

// Positions returns the positions in insertion order. The returned slice
// is owned by the caller but its Instrument values are still owned by
// the Portfolio; callers must not mutate instrument state through it.
func (p *Portfolio) Positions() []Position {
	out := make([]Position, len(p.positions))
	copy(out, p.positions)
	return out
}

// At returns the position at index.
func (p *Portfolio) At(index int) (Position, error) {
	const op = "Portfolio.At"
	if index < 0 || index >= len(p.positions) {
		return Position{}, errs.RangeErr(op, "index %d out of bounds for portfolio of size %d", index, len(p.positions))
	}
	return p.positions[index], nil
}
