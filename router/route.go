package router

import (
	"github.com/qbitforge/railqram/circuit"
	"github.com/qbitforge/railqram/dualrail"
)

// FTRoute emits the fault-tolerant routing step: the bus pair moves into
// rightBus when addr holds logical 1 (rail0 active) and into leftBus when it
// holds logical 0 (rail1 active), with five check outcomes written through
// the sink in the order [s0, s1, s2, s3, s4].
//
// Both ancillas are reset here, immediately before each use; callers never
// carry ancilla state between invocations. The address cell and the routed
// signal come out unmodified in a fault-free step, so the same node can be
// routed through any number of times.
//
// Steps:
//  1. s0: address pre-check (double-occupancy of the address cell).
//  2. s1: flagged right swap: the flag copies addr rail0 in, gates the
//     rail-wise swap bus↔rightBus, uncopies, and is read out. A fault during
//     the swap leaves the flag set without disturbing the address cell.
//  3. s2: flagged left swap, symmetric, keyed on addr rail1 toward leftBus.
//  4. s3, s4: conservation outcomes on (leftBus, rightBus).
//
// Complexity: O(1) instructions; exactly SyndromeBitsPerCall sink slots.
func FTRoute(c *circuit.Circuit, addr, bus, leftBus, rightBus dualrail.Pair, flag, parity circuit.Qubit, sink Sink) error {
	// 1) Pre-check the cell steering this step.
	s0, err := sink.Next()
	if err != nil {
		return err
	}
	dualrail.CheckOccupancy(c, addr, parity, s0)

	// 2) Flagged routing toward the RIGHT child (addr rail0 = logical 1).
	s1, err := sink.Next()
	if err != nil {
		return err
	}
	c.Reset(flag)
	c.CX(addr.Rail0, flag)
	dualrail.CSwap(c, flag, bus, rightBus)
	c.CX(addr.Rail0, flag)
	c.Measure(flag, s1)

	// 3) Flagged routing toward the LEFT child (addr rail1 = logical 0).
	s2, err := sink.Next()
	if err != nil {
		return err
	}
	c.Reset(flag)
	c.CX(addr.Rail1, flag)
	dualrail.CSwap(c, flag, bus, leftBus)
	c.CX(addr.Rail1, flag)
	c.Measure(flag, s2)

	// 4) Post-check: conservation between the two candidate destinations.
	s3, err := sink.Next()
	if err != nil {
		return err
	}
	s4, err := sink.Next()
	if err != nil {
		return err
	}
	dualrail.CheckConservation(c, leftBus, rightBus, parity, s3, s4)

	return nil
}

// FTRouteNode runs FTRoute at a tree node, wiring in the node's own address
// cell, bus buffer, ancillas, and its children's bus buffers.
// Returns ErrNotAttached before Tree.Attach and ErrLeafRoute at a leaf.
func FTRouteNode(c *circuit.Circuit, t *Tree, n *Node, sink Sink) error {
	if !t.Attached() {
		return ErrNotAttached
	}
	left, right := t.Left(n), t.Right(n)
	if left == nil || right == nil {
		return ErrLeafRoute
	}
	return FTRoute(c, n.Addr, n.Bus, left.Bus, right.Bus, n.Flag, n.Parity, sink)
}

// Route emits the plain, unchecked routing step: no ancillas, no syndrome.
// The swap toward the left child is keyed on the complemented address (a
// NOT/undo bracket around a rail0-controlled swap), the swap toward the
// right child on the address itself. Kept as the baseline primitive the
// checked protocol hardens.
func Route(c *circuit.Circuit, addr, bus, leftBus, rightBus dualrail.Pair) {
	dualrail.Not(c, addr)
	dualrail.CSwap(c, addr.Rail0, bus, leftBus)
	dualrail.Not(c, addr)
	dualrail.CSwap(c, addr.Rail0, bus, rightBus)
}
