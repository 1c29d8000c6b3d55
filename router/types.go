// Package router types: Node, Tree, sinks, and sentinel errors.
package router

import (
	"errors"

	"github.com/qbitforge/railqram/circuit"
	"github.com/qbitforge/railqram/dualrail"
)

// Sentinel errors for tree construction and routing.
var (
	// ErrDepth indicates a requested depth < 1; a depth-0 structure has no tree.
	ErrDepth = errors.New("router: tree depth must be >= 1")
	// ErrNotAttached indicates node resources were used before Tree.Attach.
	ErrNotAttached = errors.New("router: tree is not attached to a circuit")
	// ErrAlreadyAttached indicates a second Attach on the same tree.
	ErrAlreadyAttached = errors.New("router: tree is already attached to a circuit")
	// ErrLeafRoute indicates a routing invocation at a leaf node.
	ErrLeafRoute = errors.New("router: cannot route at a leaf node")
	// ErrSinkExhausted indicates a sequential syndrome sink ran out of slots.
	// This is a bookkeeping bug in the caller's accounting, not a user error.
	ErrSinkExhausted = errors.New("router: syndrome sink exhausted")
)

// SyndromeBitsPerCall is the number of check outcomes one FTRoute emits.
const SyndromeBitsPerCall = 5

// Node is one router in the tree. Structure fields are set by NewTree;
// resource fields (Addr, Bus, Flag, Parity) are set by Tree.Attach and are
// never reallocated afterward.
type Node struct {
	// Index is the node's heap position: children at 2i+1/2i+2, parent (i-1)/2.
	Index int
	// Level is the node's depth in the tree; the root is level 0.
	Level int
	// Address is the direction-bit string from the root to this node
	// ("" for the root). It maps leaves to memory indices.
	Address string

	// Addr stores this node's routing bit between store and restore phases.
	Addr dualrail.Pair
	// Bus buffers the carrier passing through this node.
	Bus dualrail.Pair
	// Flag isolates faults of one conditional-swap step from its control input.
	Flag circuit.Qubit
	// Parity hosts the pre- and post-check accumulations.
	Parity circuit.Qubit
}

// IsLeaf reports whether the node sits on the deepest level of its tree.
// Leaves store the last address bit and face the memory oracle directly.
func (n *Node) IsLeaf(depth int) bool { return n.Level == depth-1 }

// Sink allocates destinations for check outcomes.
type Sink interface {
	// Next returns the classical bit the next check outcome must land in.
	// Sequential sinks fail with ErrSinkExhausted when no slot remains.
	Next() (circuit.Clbit, error)
}
