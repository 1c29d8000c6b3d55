package dualrail

import "github.com/qbitforge/railqram/circuit"

// CheckParity emits the strict one-hot validity check of a pair into out.
//
// The ancilla is reset, accumulates rail0 XOR rail1, is complemented, and is
// read out destructively: the emitted bit is 0 iff exactly one rail was
// active, 1 for both-inactive and both-active pairs. The checked pair itself
// is left unmodified.
//
// Intended for externally prepared cells, where vacancy is as much a fault
// as duplication. Inside the router, where a vacant cell is a legal idle
// state, the pre- and post-checks use CheckOccupancy instead.
func CheckParity(c *circuit.Circuit, p Pair, ancilla circuit.Qubit, out circuit.Clbit) {
	c.Reset(ancilla)
	c.CX(p.Rail0, ancilla)
	c.CX(p.Rail1, ancilla)
	c.X(ancilla)
	c.Measure(ancilla, out)
}

// CheckOccupancy emits the double-occupancy check of a pair into out.
//
// The ancilla is reset, receives the AND of the two rails, and is read out:
// the emitted bit is 1 iff both rails were active, the one illegal state a
// conserving move can never produce. Vacant and one-hot pairs both read 0.
func CheckOccupancy(c *circuit.Circuit, p Pair, ancilla circuit.Qubit, out circuit.Clbit) {
	c.Reset(ancilla)
	c.CCX(p.Rail0, p.Rail1, ancilla)
	c.Measure(ancilla, out)
}

// CheckConservation emits the conservation check of a routing step: one
// double-occupancy check per candidate destination, left first. In a
// fault-free step exactly one of the two pairs holds the moved signal and
// the other is vacated, and both outcomes read (0, 0); a duplicated signal
// on either pair reads 1. The shared ancilla is reset before each use.
func CheckConservation(c *circuit.Circuit, left, right Pair, ancilla circuit.Qubit, outLeft, outRight circuit.Clbit) {
	CheckOccupancy(c, left, ancilla, outLeft)
	CheckOccupancy(c, right, ancilla, outRight)
}
