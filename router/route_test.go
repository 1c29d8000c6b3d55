package router_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/qbitforge/railqram/circuit"
	"github.com/qbitforge/railqram/router"
)

// RouteSuite exercises the routing primitives and sinks together.
type RouteSuite struct {
	suite.Suite

	c    *circuit.Circuit
	tr   *router.Tree
	synd circuit.CRegister
}

func (s *RouteSuite) SetupTest() {
	s.c = circuit.New("t")
	tr, err := router.NewTree(2)
	require.NoError(s.T(), err)
	require.NoError(s.T(), tr.Attach(s.c))
	s.tr = tr
	s.synd, err = s.c.AddClassical("syndrome", 2*router.SyndromeBitsPerCall)
	require.NoError(s.T(), err)
}

// TestFTRoute_EmitsFiveOutcomes verifies slot count and landing order.
func (s *RouteSuite) TestFTRoute_EmitsFiveOutcomes() {
	sink := router.NewSequentialSink(s.synd)
	require.NoError(s.T(), router.FTRouteNode(s.c, s.tr, s.tr.Root(), sink))
	require.Equal(s.T(), router.SyndromeBitsPerCall, sink.Emitted())

	var bits []circuit.Clbit
	for _, in := range s.c.Instructions() {
		if in.Op == circuit.OpMeasure {
			bits = append(bits, in.Bit)
		}
	}
	require.Equal(s.T(), []circuit.Clbit{
		s.synd.At(0), s.synd.At(1), s.synd.At(2), s.synd.At(3), s.synd.At(4),
	}, bits, "outcomes must land in order [s0..s4]")
}

// TestFTRoute_ResetsBeforeUse verifies the ancilla reset-before-use contract.
func (s *RouteSuite) TestFTRoute_ResetsBeforeUse() {
	sink := router.NewSequentialSink(s.synd)
	root := s.tr.Root()
	require.NoError(s.T(), router.FTRouteNode(s.c, s.tr, root, sink))

	ins := s.c.Instructions()
	// Every measured ancilla must have been reset after its previous readout
	// within this invocation: count resets on flag and parity.
	var flagResets, parResets int
	for _, in := range ins {
		if in.Op == circuit.OpReset {
			switch in.Qubits[0] {
			case root.Flag:
				flagResets++
			case root.Parity:
				parResets++
			}
		}
	}
	require.Equal(s.T(), 2, flagResets, "one reset per flagged swap")
	require.Equal(s.T(), 3, parResets, "one reset per parity-hosted check")
}

// TestFTRoute_StructureAroundSwaps verifies the flag bracket around each CSwap pair.
func (s *RouteSuite) TestFTRoute_StructureAroundSwaps() {
	sink := router.NewSequentialSink(s.synd)
	root := s.tr.Root()
	require.NoError(s.T(), router.FTRouteNode(s.c, s.tr, root, sink))

	ins := s.c.Instructions()
	// Expect the right-branch bracket first: CX(rail0,flag) CSWAP CSWAP CX(rail0,flag).
	var cxIdx []int
	for i, in := range ins {
		if in.Op == circuit.OpCX && in.Qubits[1] == root.Flag {
			cxIdx = append(cxIdx, i)
		}
	}
	require.Len(s.T(), cxIdx, 4, "two copy-in/uncopy brackets")
	require.Equal(s.T(), root.Addr.Rail0, ins[cxIdx[0]].Qubits[0], "first bracket keyed on rail0")
	require.Equal(s.T(), root.Addr.Rail1, ins[cxIdx[2]].Qubits[0], "second bracket keyed on rail1")
	for _, span := range [][2]int{{cxIdx[0], cxIdx[1]}, {cxIdx[2], cxIdx[3]}} {
		var swaps int
		for i := span[0] + 1; i < span[1]; i++ {
			require.Equal(s.T(), circuit.OpCSwap, ins[i].Op, "bracket interior is the rail-wise swap")
			swaps++
		}
		require.Equal(s.T(), 2, swaps)
	}
	// Right-branch swap targets the right child's bus, left-branch the left's.
	right := s.tr.Right(root)
	left := s.tr.Left(root)
	require.Equal(s.T(), right.Bus.Rail0, ins[cxIdx[0]+1].Qubits[2])
	require.Equal(s.T(), left.Bus.Rail0, ins[cxIdx[2]+1].Qubits[2])
}

// TestFTRoute_LeafRejected refuses to route where there are no children.
func (s *RouteSuite) TestFTRoute_LeafRejected() {
	sink := router.NewSequentialSink(s.synd)
	leaf := s.tr.Leaves()[0]
	err := router.FTRouteNode(s.c, s.tr, leaf, sink)
	require.ErrorIs(s.T(), err, router.ErrLeafRoute)
}

// TestFTRoute_Unattached refuses to route a structural tree.
func (s *RouteSuite) TestFTRoute_Unattached() {
	bare, err := router.NewTree(2)
	require.NoError(s.T(), err)
	sink := router.NewSequentialSink(s.synd)
	err = router.FTRouteNode(s.c, bare, bare.Root(), sink)
	require.ErrorIs(s.T(), err, router.ErrNotAttached)
}

// TestSequentialSink_Exhaustion surfaces the accounting-bug error mid-call.
func (s *RouteSuite) TestSequentialSink_Exhaustion() {
	small, err := s.c.AddClassical("small", 3)
	require.NoError(s.T(), err)
	sink := router.NewSequentialSink(small)
	err = router.FTRouteNode(s.c, s.tr, s.tr.Root(), sink)
	require.ErrorIs(s.T(), err, router.ErrSinkExhausted)
}

// TestReuseSink_SingleSlot overwrites one bit for every outcome.
func (s *RouteSuite) TestReuseSink_SingleSlot() {
	one, err := s.c.AddClassical("one", 1)
	require.NoError(s.T(), err)
	sink, err := router.NewReuseSink(one)
	require.NoError(s.T(), err)

	before := s.c.NumOps()
	require.NoError(s.T(), router.FTRouteNode(s.c, s.tr, s.tr.Root(), sink))
	for _, in := range s.c.Instructions()[before:] {
		if in.Op == circuit.OpMeasure {
			require.Equal(s.T(), one.At(0), in.Bit)
		}
	}

	empty, err := s.c.AddClassical("none", 0)
	require.NoError(s.T(), err)
	_, err = router.NewReuseSink(empty)
	require.ErrorIs(s.T(), err, router.ErrSinkExhausted)
}

// TestPlainRoute emits the unchecked NOT/CSWAP/NOT/CSWAP sequence.
func (s *RouteSuite) TestPlainRoute() {
	root := s.tr.Root()
	before := s.c.NumOps()
	router.Route(s.c, root.Addr, root.Bus, s.tr.Left(root).Bus, s.tr.Right(root).Bus)

	var ops []circuit.Opcode
	for _, in := range s.c.Instructions()[before:] {
		ops = append(ops, in.Op)
	}
	require.Equal(s.T(), []circuit.Opcode{
		circuit.OpSwap,
		circuit.OpCSwap, circuit.OpCSwap,
		circuit.OpSwap,
		circuit.OpCSwap, circuit.OpCSwap,
	}, ops)
}

func TestRouteSuite(t *testing.T) {
	suite.Run(t, new(RouteSuite))
}

// TestSinkInterfaceCompliance keeps both sinks assignable to Sink.
func TestSinkInterfaceCompliance(t *testing.T) {
	var _ router.Sink = (*router.SequentialSink)(nil)
	var _ router.Sink = (*router.ReuseSink)(nil)
}

// TestSequentialSink_Order hands out slots front to back.
func TestSequentialSink_Order(t *testing.T) {
	c := circuit.New("t")
	reg, _ := c.AddClassical("s", 3)
	sink := router.NewSequentialSink(reg)
	for i := 0; i < 3; i++ {
		bit, err := sink.Next()
		if err != nil {
			t.Fatalf("Next #%d error: %v", i, err)
		}
		if bit != reg.At(i) {
			t.Errorf("Next #%d = %d; want %d", i, bit, reg.At(i))
		}
	}
	if _, err := sink.Next(); !errors.Is(err, router.ErrSinkExhausted) {
		t.Errorf("exhausted Next error = %v; want ErrSinkExhausted", err)
	}
	if sink.Emitted() != 3 {
		t.Errorf("Emitted = %d; want 3", sink.Emitted())
	}
}
