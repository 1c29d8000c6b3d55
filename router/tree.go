package router

import (
	"fmt"
	"math/bits"

	"github.com/qbitforge/railqram/circuit"
	"github.com/qbitforge/railqram/dualrail"
)

// Tree is the complete binary router tree of a depth-D structure, stored in
// heap order. Built once, never structurally mutated afterward.
type Tree struct {
	depth    int
	nodes    []*Node
	attached bool
}

// NewTree builds the structural tree for the given depth: 2^depth - 1 nodes
// across levels 0..depth-1, in heap order. Node resources stay unallocated
// until Attach. Returns ErrDepth for depth < 1.
// Complexity: O(2^depth).
func NewTree(depth int) (*Tree, error) {
	if depth < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrDepth, depth)
	}
	total := (1 << depth) - 1
	nodes := make([]*Node, total)
	for i := 0; i < total; i++ {
		level := LevelOf(i)
		nodes[i] = &Node{
			Index:   i,
			Level:   level,
			Address: addressOf(i, level),
		}
	}
	return &Tree{depth: depth, nodes: nodes}, nil
}

// LevelOf returns the level of heap index i: floor(log2(i+1)).
// Complexity: O(1).
func LevelOf(i int) int { return bits.Len(uint(i+1)) - 1 }

// LevelStart returns the heap index of the first node at a level: 2^L - 1.
// Complexity: O(1).
func LevelStart(level int) int { return (1 << level) - 1 }

// addressOf derives the root-to-node direction string from the heap index:
// the node's position within its level, read as level-many binary digits.
func addressOf(i, level int) string {
	if level == 0 {
		return ""
	}
	pos := i - LevelStart(level)
	buf := make([]byte, level)
	for b := level - 1; b >= 0; b-- {
		buf[b] = byte('0' + pos&1)
		pos >>= 1
	}
	return string(buf)
}

// Depth returns the tree depth D (levels 0..D-1).
func (t *Tree) Depth() int { return t.depth }

// Len returns the total node count, 2^D - 1.
func (t *Tree) Len() int { return len(t.nodes) }

// Root returns the level-0 node.
func (t *Tree) Root() *Node { return t.nodes[0] }

// Node returns the node at heap index i.
// Panics if i is out of range (programmer error).
func (t *Tree) Node(i int) *Node { return t.nodes[i] }

// Left returns the left ("0"-direction) child of n, or nil for a leaf.
// Complexity: O(1).
func (t *Tree) Left(n *Node) *Node {
	ci := 2*n.Index + 1
	if ci >= len(t.nodes) {
		return nil
	}
	return t.nodes[ci]
}

// Right returns the right ("1"-direction) child of n, or nil for a leaf.
// Complexity: O(1).
func (t *Tree) Right(n *Node) *Node {
	ci := 2*n.Index + 2
	if ci >= len(t.nodes) {
		return nil
	}
	return t.nodes[ci]
}

// Parent returns the parent of n, or nil for the root.
// Complexity: O(1).
func (t *Tree) Parent(n *Node) *Node {
	if n.Index == 0 {
		return nil
	}
	return t.nodes[(n.Index-1)/2]
}

// Level returns the nodes of one level in address order. The returned slice
// shares the tree's backing storage; treat it as read-only.
// Complexity: O(1).
func (t *Tree) Level(level int) []*Node {
	lo := LevelStart(level)
	hi := LevelStart(level + 1)
	return t.nodes[lo:hi]
}

// Leaves returns the deepest level in address order: leaf j corresponds to
// memory indices 2j and 2j+1.
func (t *Tree) Leaves() []*Node { return t.Level(t.depth - 1) }

// Attached reports whether node resources have been allocated on a circuit.
func (t *Tree) Attached() bool { return t.attached }

// Attach allocates every node's resources on the circuit, in heap order:
// per node one dual-rail address register, one dual-rail bus register, and
// the flag/parity ancillas. Register names follow
// "router_<level>[_<address>]_<suffix>" with suffixes addr, bus, flag, par.
// A tree attaches exactly once (ErrAlreadyAttached).
// Complexity: O(2^D).
func (t *Tree) Attach(c *circuit.Circuit) error {
	if t.attached {
		return ErrAlreadyAttached
	}
	for _, n := range t.nodes {
		addrReg, err := c.AddRegister(n.regName("addr"), 2)
		if err != nil {
			return fmt.Errorf("router: attach node %d: %w", n.Index, err)
		}
		busReg, err := c.AddRegister(n.regName("bus"), 2)
		if err != nil {
			return fmt.Errorf("router: attach node %d: %w", n.Index, err)
		}
		flagReg, err := c.AddRegister(n.regName("flag"), 1)
		if err != nil {
			return fmt.Errorf("router: attach node %d: %w", n.Index, err)
		}
		parReg, err := c.AddRegister(n.regName("par"), 1)
		if err != nil {
			return fmt.Errorf("router: attach node %d: %w", n.Index, err)
		}
		if n.Addr, err = dualrail.FromRegister(addrReg); err != nil {
			return err
		}
		if n.Bus, err = dualrail.FromRegister(busReg); err != nil {
			return err
		}
		n.Flag = flagReg.At(0)
		n.Parity = parReg.At(0)
	}
	t.attached = true
	return nil
}

// regName formats a node resource register name.
func (n *Node) regName(suffix string) string {
	if n.Address == "" {
		return fmt.Sprintf("router_%d_%s", n.Level, suffix)
	}
	return fmt.Sprintf("router_%d_%s_%s", n.Level, n.Address, suffix)
}
