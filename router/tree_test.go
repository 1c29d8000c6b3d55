package router_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/qbitforge/railqram/circuit"
	"github.com/qbitforge/railqram/router"
)

//----------------------------------------------------------------------------//
// Structural construction
//----------------------------------------------------------------------------//

// TestNewTree_Shape verifies node counts per level for depths 1..4.
func TestNewTree_Shape(t *testing.T) {
	for depth := 1; depth <= 4; depth++ {
		t.Run(fmt.Sprintf("Depth%d", depth), func(t *testing.T) {
			tr, err := router.NewTree(depth)
			if err != nil {
				t.Fatalf("NewTree(%d) error: %v", depth, err)
			}
			if tr.Len() != (1<<depth)-1 {
				t.Errorf("Len = %d; want %d", tr.Len(), (1<<depth)-1)
			}
			for level := 0; level < depth; level++ {
				if got := len(tr.Level(level)); got != 1<<level {
					t.Errorf("level %d count = %d; want %d", level, got, 1<<level)
				}
			}
			if got := len(tr.Leaves()); got != 1<<(depth-1) {
				t.Errorf("leaf count = %d; want %d", got, 1<<(depth-1))
			}
		})
	}
}

// TestNewTree_DepthError rejects depths without a tree.
func TestNewTree_DepthError(t *testing.T) {
	for _, depth := range []int{0, -1} {
		if _, err := router.NewTree(depth); !errors.Is(err, router.ErrDepth) {
			t.Errorf("NewTree(%d) error = %v; want ErrDepth", depth, err)
		}
	}
}

// TestHeapMath pins the index algebra: children, parent, levels.
func TestHeapMath(t *testing.T) {
	tr, err := router.NewTree(3)
	if err != nil {
		t.Fatalf("NewTree error: %v", err)
	}
	root := tr.Root()
	if root.Index != 0 || root.Level != 0 || root.Address != "" {
		t.Fatalf("root = %+v; want index 0, level 0, empty address", root)
	}
	l, r := tr.Left(root), tr.Right(root)
	if l.Index != 1 || r.Index != 2 {
		t.Errorf("root children = (%d,%d); want (1,2)", l.Index, r.Index)
	}
	if tr.Parent(l) != root || tr.Parent(r) != root {
		t.Errorf("children do not point back to root")
	}
	if tr.Parent(root) != nil {
		t.Errorf("root parent should be nil")
	}
	leaf := tr.Node(5) // level 2, position 2
	if leaf.Level != 2 || tr.Left(leaf) != nil || tr.Right(leaf) != nil {
		t.Errorf("node 5 should be a childless leaf at level 2")
	}
	if !leaf.IsLeaf(tr.Depth()) {
		t.Errorf("node 5 should report IsLeaf for depth 3")
	}
	for i := 0; i < tr.Len(); i++ {
		if got := router.LevelOf(i); got != tr.Node(i).Level {
			t.Errorf("LevelOf(%d) = %d; want %d", i, got, tr.Node(i).Level)
		}
	}
}

// TestAddresses verifies the root-to-node direction strings in heap order.
func TestAddresses(t *testing.T) {
	tr, _ := router.NewTree(3)
	want := []string{"", "0", "1", "00", "01", "10", "11"}
	for i, w := range want {
		if got := tr.Node(i).Address; got != w {
			t.Errorf("node %d address = %q; want %q", i, got, w)
		}
	}
}

//----------------------------------------------------------------------------//
// Resource attachment
//----------------------------------------------------------------------------//

// TestAttach allocates 6 qubits per node with stable register names.
func TestAttach(t *testing.T) {
	tr, _ := router.NewTree(2)
	c := circuit.New("t")
	if err := tr.Attach(c); err != nil {
		t.Fatalf("Attach error: %v", err)
	}
	if c.NumQubits() != 6*tr.Len() {
		t.Errorf("NumQubits = %d; want %d", c.NumQubits(), 6*tr.Len())
	}
	names := make(map[string]int)
	for _, r := range c.QuantumRegisters() {
		names[r.Name()] = r.Width()
	}
	for name, width := range map[string]int{
		"router_0_addr":   2,
		"router_0_bus":    2,
		"router_0_flag":   1,
		"router_0_par":    1,
		"router_1_0_addr": 2,
		"router_1_1_bus":  2,
	} {
		if names[name] != width {
			t.Errorf("register %q width = %d; want %d", name, names[name], width)
		}
	}
	if !tr.Attached() {
		t.Errorf("tree should report attached")
	}
	if err := tr.Attach(c); !errors.Is(err, router.ErrAlreadyAttached) {
		t.Errorf("second Attach error = %v; want ErrAlreadyAttached", err)
	}
}
