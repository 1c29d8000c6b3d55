package qram

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/qbitforge/railqram/circuit"
	"github.com/qbitforge/railqram/router"
)

// QRAM is one construction: a validated memory image, a router tree, and
// the options fixing its behavior. A QRAM builds exactly one Program.
type QRAM struct {
	depth  int
	memory []int
	opts   Options
	tree   *router.Tree
	built  bool
}

// New validates the address specification and memory image and constructs
// the structural router tree. The memory is deep-copied: the image is
// immutable for the lifetime of the construction.
// Complexity: O(2^depth).
func New(spec AddressSpec, memory []int, opts Options) (*QRAM, error) {
	depth, err := spec.TreeDepth()
	if err != nil {
		return nil, err
	}
	if opts.Bandwidth < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBandwidth, opts.Bandwidth)
	}
	if len(memory) != 1<<depth {
		return nil, fmt.Errorf("%w: depth %d needs %d bits, got %d",
			ErrMemorySize, depth, 1<<depth, len(memory))
	}
	mem := make([]int, len(memory))
	for i, b := range memory {
		if b != 0 && b != 1 {
			return nil, fmt.Errorf("%w: memory[%d] = %d", ErrMemoryBit, i, b)
		}
		mem[i] = b
	}
	tree, err := router.NewTree(depth)
	if err != nil {
		return nil, err
	}
	return &QRAM{depth: depth, memory: mem, opts: opts, tree: tree}, nil
}

// Depth returns the address width D.
func (q *QRAM) Depth() int { return q.depth }

// Memory returns a copy of the validated memory image.
func (q *QRAM) Memory() []int {
	out := make([]int, len(q.memory))
	copy(out, q.memory)
	return out
}

// Tree exposes the router tree, mainly for inspection and tests.
func (q *QRAM) Tree() *router.Tree { return q.tree }

// Build constructs a fresh carrier with its own external registers
// ("addr_dr", width 2·depth; "bus_dr", width 2·bandwidth) and emits the
// program onto it. Equivalent to BuildOn on a new circuit.
func (q *QRAM) Build() (*Program, error) {
	c := circuit.New("railqram")
	addrReg, err := c.AddRegister("addr_dr", 2*q.depth)
	if err != nil {
		return nil, err
	}
	busReg, err := c.AddRegister("bus_dr", 2*q.opts.Bandwidth)
	if err != nil {
		return nil, err
	}
	return q.BuildOn(c, addrReg, busReg)
}

// BuildOn emits the complete routing program onto the given carrier:
// attaches the tree's resources, allocates the syndrome block sized by the
// closed-form accounting, then runs store-address, route-query, and
// restore-address in order. The address and bus registers are borrowed;
// the restore phase returns the address bits to their original location.
//
// A construction error aborts with no usable artifact; the carrier must be
// discarded. Each QRAM builds at most once (ErrAlreadyBuilt).
// Complexity: O(2^depth · depth) emitted instructions.
func (q *QRAM) BuildOn(c *circuit.Circuit, addrReg, busReg circuit.Register) (*Program, error) {
	if c == nil {
		return nil, ErrNilCircuit
	}
	if q.built {
		return nil, ErrAlreadyBuilt
	}
	if addrReg.Width() != 2*q.depth {
		return nil, fmt.Errorf("%w: depth %d needs width %d, register %q has %d",
			ErrAddressWidth, q.depth, 2*q.depth, addrReg.Name(), addrReg.Width())
	}
	if busReg.Width() != 2*q.opts.Bandwidth {
		return nil, fmt.Errorf("%w: bandwidth %d needs width %d, register %q has %d",
			ErrBusWidth, q.opts.Bandwidth, 2*q.opts.Bandwidth, busReg.Name(), busReg.Width())
	}

	if err := q.tree.Attach(c); err != nil {
		return nil, err
	}

	invocations := RouterInvocations(q.depth, q.opts.Bandwidth)
	width := SyndromeWidth(q.depth, q.opts.Bandwidth, q.opts.RecordSyndrome)
	offset := c.NumClbits()
	syndReg, err := c.AddClassical("syndrome", width)
	if err != nil {
		return nil, err
	}

	mode := Sequential
	var sink router.Sink
	var seq *router.SequentialSink
	if q.opts.RecordSyndrome {
		seq = router.NewSequentialSink(syndReg)
		sink = seq
	} else {
		mode = Reuse
		if sink, err = router.NewReuseSink(syndReg); err != nil {
			return nil, err
		}
	}

	q.opts.Logger.Debug().
		Int("depth", q.depth).
		Int("bandwidth", q.opts.Bandwidth).
		Int("routers", q.tree.Len()).
		Int("invocations", invocations).
		Int("syndrome_width", width).
		Str("mode", mode.String()).
		Msg("router tree attached")

	if err = q.storeAddress(c, addrReg, sink); err != nil {
		return nil, err
	}
	if err = q.routeQuery(c, busReg, sink); err != nil {
		return nil, err
	}
	if err = q.restoreAddress(c, addrReg, sink); err != nil {
		return nil, err
	}

	// The emitted check count must land exactly on the closed form; a
	// mismatch means the formula and the traversal disagree.
	if seq != nil && seq.Emitted() != width {
		return nil, fmt.Errorf("%w: emitted %d outcome bits, layout reserves %d",
			ErrAccounting, seq.Emitted(), width)
	}

	q.built = true
	prog := &Program{
		ID:         uuid.New(),
		Circuit:    c,
		AddressReg: addrReg,
		BusReg:     busReg,
		Layout: Layout{
			Depth:          q.depth,
			Bandwidth:      q.opts.Bandwidth,
			Invocations:    invocations,
			BitsPerCall:    router.SyndromeBitsPerCall,
			Mode:           mode,
			SyndromeName:   syndReg.Name(),
			SyndromeOffset: offset,
			SyndromeWidth:  width,
		},
	}

	q.opts.Logger.Debug().
		Str("program_id", prog.ID.String()).
		Int("qubits", c.NumQubits()).
		Int("clbits", c.NumClbits()).
		Int("ops", c.NumOps()).
		Msg("routing program built")

	return prog, nil
}
