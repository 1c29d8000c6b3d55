package qram

import (
	"github.com/qbitforge/railqram/circuit"
	"github.com/qbitforge/railqram/dualrail"
	"github.com/qbitforge/railqram/router"
)

// The canonical traversal ordering: a down-pass routes every node with
// level < target in pre-order (a carrier cascades ahead of the recursion),
// an up-pass routes the same set in post-order (the carrier trails it).
// Store and restore both pass through these two functions, so the phases
// are mirror images by construction.

// routeDown routes the subtree under n down to (but not including) target.
func (q *QRAM) routeDown(c *circuit.Circuit, n *router.Node, target int, sink router.Sink) error {
	if n.Level >= target {
		return nil
	}
	if err := router.FTRouteNode(c, q.tree, n, sink); err != nil {
		return err
	}
	if err := q.routeDown(c, q.tree.Left(n), target, sink); err != nil {
		return err
	}
	return q.routeDown(c, q.tree.Right(n), target, sink)
}

// routeUp is the post-order mirror of routeDown.
func (q *QRAM) routeUp(c *circuit.Circuit, n *router.Node, target int, sink router.Sink) error {
	if n.Level >= target {
		return nil
	}
	if err := q.routeUp(c, q.tree.Left(n), target, sink); err != nil {
		return err
	}
	if err := q.routeUp(c, q.tree.Right(n), target, sink); err != nil {
		return err
	}
	return router.FTRouteNode(c, q.tree, n, sink)
}

// storeAddress deposits the external address bits into the tree, one level
// at a time in ascending order. Bit L rides the root bus down the path
// selected by the bits already stored above it; every node of level L then
// swaps its bus into its address cell; only the on-path node receives a
// real bit, the rest deposit vacancy, which is exactly the idle state an
// off-path router routes nothing with.
func (q *QRAM) storeAddress(c *circuit.Circuit, addrReg circuit.Register, sink router.Sink) error {
	pairs, err := dualrail.Split(addrReg)
	if err != nil {
		return err
	}
	root := q.tree.Root()
	for level, pair := range pairs {
		q.opts.Logger.Trace().Int("level", level).Msg("store address bit")
		dualrail.Swap(c, pair, root.Bus)
		if err = q.routeDown(c, root, level, sink); err != nil {
			return err
		}
		for _, n := range q.tree.Level(level) {
			dualrail.Swap(c, n.Bus, n.Addr)
		}
		if err = q.routeUp(c, root, level, sink); err != nil {
			return err
		}
	}
	return nil
}

// restoreAddress is the mirror of storeAddress, levels descending: an empty
// root bus is routed down, the level's cells swap their stored bits back
// into the bus path, the up-pass carries the on-path bit home, and the swap
// returns it to the external register at position L.
func (q *QRAM) restoreAddress(c *circuit.Circuit, addrReg circuit.Register, sink router.Sink) error {
	pairs, err := dualrail.Split(addrReg)
	if err != nil {
		return err
	}
	root := q.tree.Root()
	for level := q.depth - 1; level >= 0; level-- {
		q.opts.Logger.Trace().Int("level", level).Msg("restore address bit")
		if err = q.routeDown(c, root, level, sink); err != nil {
			return err
		}
		for _, n := range q.tree.Level(level) {
			dualrail.Swap(c, n.Bus, n.Addr)
		}
		if err = q.routeUp(c, root, level, sink); err != nil {
			return err
		}
		dualrail.Swap(c, pairs[level], root.Bus)
	}
	return nil
}

// routeQuery sends each external query cell down to the addressed leaf,
// applies the memory oracle, and brings it back. With PrepareQueryCell the
// cell is prepared in logical 0, mixed before the trip, and un-mixed after,
// converting the oracle's phase imprint into an observable logical flip.
func (q *QRAM) routeQuery(c *circuit.Circuit, busReg circuit.Register, sink router.Sink) error {
	pairs, err := dualrail.Split(busReg)
	if err != nil {
		return err
	}
	root := q.tree.Root()
	for i, pair := range pairs {
		q.opts.Logger.Trace().Int("cell", i).Msg("route query cell")
		if q.opts.PrepareQueryCell {
			dualrail.PrepareZero(c, pair)
			dualrail.Mix(c, pair)
		}
		dualrail.Swap(c, pair, root.Bus)
		if err = q.routeDown(c, root, q.depth-1, sink); err != nil {
			return err
		}
		q.memoryOracle(c)
		if err = q.routeUp(c, root, q.depth-1, sink); err != nil {
			return err
		}
		dualrail.Swap(c, pair, root.Bus)
		if q.opts.PrepareQueryCell {
			dualrail.Mix(c, pair)
		}
	}
	return nil
}

// memoryOracle imprints the memory image on the bus cells waiting at the
// leaves. Leaf j covers addresses 2j ("...0") and 2j+1 ("...1"): a set bit
// at the even index phases the bus conditioned on the leaf's addr rail1
// (last address bit 0), a set bit at the odd index conditions on rail0.
// Off-path leaves hold vacant cells, so neither condition can fire there.
func (q *QRAM) memoryOracle(c *circuit.Circuit) {
	for j, leaf := range q.tree.Leaves() {
		if q.memory[2*j] == 1 {
			c.CZ(leaf.Addr.Rail1, leaf.Bus.Rail0)
		}
		if q.memory[2*j+1] == 1 {
			c.CZ(leaf.Addr.Rail0, leaf.Bus.Rail0)
		}
	}
}
