package dualrail

import "github.com/qbitforge/railqram/circuit"

// PrepareZero activates rail1, preparing logical 0.
// Precondition: both rails inactive.
func PrepareZero(c *circuit.Circuit, p Pair) {
	c.X(p.Rail1)
}

// PrepareOne activates rail0, preparing logical 1.
// Precondition: both rails inactive.
func PrepareOne(c *circuit.Circuit, p Pair) {
	c.X(p.Rail0)
}

// Not exchanges the rails: logical NOT, self-inverse.
func Not(c *circuit.Circuit, p Pair) {
	c.Swap(p.Rail0, p.Rail1)
}

// Phase applies a sign flip conditioned on rail0 (the logical-1 rail).
// No effect on rail activity, only on interference behavior.
func Phase(c *circuit.Circuit, p Pair) {
	c.Z(p.Rail0)
}

// Mix applies the logical Hadamard on the valid one-hot subspace: each valid
// state maps to an equal-weight superposition of both, with a relative sign
// determined by the input. Self-inverse on the valid subspace; undefined if
// the pair is not in a valid state beforehand.
func Mix(c *circuit.Circuit, p Pair) {
	c.HL(p.Rail0, p.Rail1)
}

// Swap exchanges two logical bits rail-wise, moving each value to the other
// physical location without duplicating it.
func Swap(c *circuit.Circuit, a, b Pair) {
	c.Swap(a.Rail0, b.Rail0)
	c.Swap(a.Rail1, b.Rail1)
}

// CSwap exchanges two logical bits rail-wise iff control is active.
func CSwap(c *circuit.Circuit, control circuit.Qubit, a, b Pair) {
	c.CSwap(control, a.Rail0, b.Rail0)
	c.CSwap(control, a.Rail1, b.Rail1)
}
