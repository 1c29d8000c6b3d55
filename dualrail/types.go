// Package dualrail types: the Pair view, register slicing, readout
// classification, and sentinel errors.
package dualrail

import (
	"errors"
	"fmt"

	"github.com/qbitforge/railqram/circuit"
)

// Sentinel errors for dual-rail register slicing.
var (
	// ErrPairWidth indicates a register whose width cannot hold whole pairs.
	ErrPairWidth = errors.New("dualrail: register width must be a positive multiple of 2")
	// ErrPairIndex indicates a pair index outside the register.
	ErrPairIndex = errors.New("dualrail: pair index out of range")
)

// Pair is a view of one dual-rail logical bit: two physical carriers and a
// diagnostic name. Rail0 carries logical 1, Rail1 carries logical 0.
type Pair struct {
	Rail0 circuit.Qubit
	Rail1 circuit.Qubit
	Name  string
}

// FromRegister builds the pair over a width-2 register.
// Returns ErrPairWidth for any other width.
func FromRegister(reg circuit.Register) (Pair, error) {
	if reg.Width() != 2 {
		return Pair{}, fmt.Errorf("%w: register %q has width %d", ErrPairWidth, reg.Name(), reg.Width())
	}
	return Pair{Rail0: reg.At(0), Rail1: reg.At(1), Name: reg.Name()}, nil
}

// PairAt returns the i-th pair of a flat register laid out as [2i, 2i+1].
func PairAt(reg circuit.Register, i int) (Pair, error) {
	if reg.Width() < 2 || reg.Width()%2 != 0 {
		return Pair{}, fmt.Errorf("%w: register %q has width %d", ErrPairWidth, reg.Name(), reg.Width())
	}
	if i < 0 || 2*i+1 >= reg.Width() {
		return Pair{}, fmt.Errorf("%w: pair %d of register %q[%d]", ErrPairIndex, i, reg.Name(), reg.Width())
	}
	return Pair{
		Rail0: reg.At(2 * i),
		Rail1: reg.At(2*i + 1),
		Name:  fmt.Sprintf("%s_%d", reg.Name(), i),
	}, nil
}

// Split slices a flat register into its dual-rail pairs.
// Complexity: O(width).
func Split(reg circuit.Register) ([]Pair, error) {
	if reg.Width() < 2 || reg.Width()%2 != 0 {
		return nil, fmt.Errorf("%w: register %q has width %d", ErrPairWidth, reg.Name(), reg.Width())
	}
	pairs := make([]Pair, reg.Width()/2)
	for i := range pairs {
		p, err := PairAt(reg, i)
		if err != nil {
			return nil, err
		}
		pairs[i] = p
	}
	return pairs, nil
}

// Value classifies a measured rail pair.
type Value uint8

const (
	// Zero is the valid logical 0 readout (rail1 active only).
	Zero Value = iota
	// One is the valid logical 1 readout (rail0 active only).
	One
	// Erasure is the both-inactive readout: the carrier was lost, not flipped.
	Erasure
	// Invalid is the both-active readout: an illegal duplicated state.
	Invalid
)

// String returns the conventional readout label.
func (v Value) String() string {
	switch v {
	case Zero:
		return "0"
	case One:
		return "1"
	case Erasure:
		return "erasure"
	case Invalid:
		return "invalid"
	default:
		return fmt.Sprintf("value(%d)", uint8(v))
	}
}

// Decode classifies the measured activity of the two rails.
// Complexity: O(1).
func Decode(rail0, rail1 bool) Value {
	switch {
	case rail0 && rail1:
		return Invalid
	case rail0:
		return One
	case rail1:
		return Zero
	default:
		return Erasure
	}
}
