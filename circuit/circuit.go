package circuit

import "fmt"

// Circuit is an append-only operation sequence over named registers.
// It is not safe for concurrent mutation; builders emit from a single
// goroutine.
type Circuit struct {
	name   string
	nq, nc int
	qregs  []Register
	cregs  []CRegister
	byName map[string]struct{}
	ops    []Instruction
}

// New returns an empty circuit with the given diagnostic name.
// Complexity: O(1).
func New(name string) *Circuit {
	return &Circuit{
		name:   name,
		byName: make(map[string]struct{}),
	}
}

// Name returns the circuit's diagnostic name.
func (c *Circuit) Name() string { return c.name }

// NumQubits returns the total number of allocated qubits.
func (c *Circuit) NumQubits() int { return c.nq }

// NumClbits returns the total number of allocated clbits.
func (c *Circuit) NumClbits() int { return c.nc }

// NumOps returns the number of emitted instructions.
func (c *Circuit) NumOps() int { return len(c.ops) }

// Instructions returns a copy of the emitted instruction sequence,
// in execution order. Complexity: O(ops).
func (c *Circuit) Instructions() []Instruction {
	out := make([]Instruction, len(c.ops))
	copy(out, c.ops)
	return out
}

// QuantumRegisters returns the quantum registers in allocation order.
func (c *Circuit) QuantumRegisters() []Register {
	out := make([]Register, len(c.qregs))
	copy(out, c.qregs)
	return out
}

// ClassicalRegisters returns the classical registers in allocation order.
func (c *Circuit) ClassicalRegisters() []CRegister {
	out := make([]CRegister, len(c.cregs))
	copy(out, c.cregs)
	return out
}

// validName reports whether s matches [a-z][a-z0-9_]*.
func validName(s string) bool {
	if len(s) == 0 || s[0] < 'a' || s[0] > 'z' {
		return false
	}
	for i := 1; i < len(s); i++ {
		ch := s[i]
		ok := (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9') || ch == '_'
		if !ok {
			return false
		}
	}
	return true
}

// AddRegister allocates a quantum register of the given width at the end of
// the qubit space. Width must be >= 1 and the name unique across both
// register kinds (ErrRegisterWidth, ErrRegisterName).
// Complexity: O(1).
func (c *Circuit) AddRegister(name string, width int) (Register, error) {
	if width < 1 {
		return Register{}, fmt.Errorf("%w: quantum register %q width %d", ErrRegisterWidth, name, width)
	}
	if err := c.claimName(name); err != nil {
		return Register{}, err
	}
	r := Register{name: name, start: c.nq, size: width}
	c.nq += width
	c.qregs = append(c.qregs, r)
	return r, nil
}

// AddClassical allocates a classical register of the given width at the end
// of the clbit space. Width must be >= 0; an empty register still has a
// stable name and offset in the output layout.
// Complexity: O(1).
func (c *Circuit) AddClassical(name string, width int) (CRegister, error) {
	if width < 0 {
		return CRegister{}, fmt.Errorf("%w: classical register %q width %d", ErrRegisterWidth, name, width)
	}
	if err := c.claimName(name); err != nil {
		return CRegister{}, err
	}
	r := CRegister{name: name, start: c.nc, size: width}
	c.nc += width
	c.cregs = append(c.cregs, r)
	return r, nil
}

func (c *Circuit) claimName(name string) error {
	if !validName(name) {
		return fmt.Errorf("%w: %q", ErrRegisterName, name)
	}
	if _, taken := c.byName[name]; taken {
		return fmt.Errorf("%w: %q already allocated", ErrRegisterName, name)
	}
	c.byName[name] = struct{}{}
	return nil
}

// checkQubits panics unless every operand is in range and operands are
// pairwise distinct. Invalid operands are programmer errors in emitting
// code, not user input.
func (c *Circuit) checkQubits(op Opcode, qs ...Qubit) {
	for i, q := range qs {
		if q < 0 || int(q) >= c.nq {
			panic(fmt.Sprintf("circuit: %s operand %d: qubit %d out of range [0,%d)", op, i, q, c.nq))
		}
		for j := 0; j < i; j++ {
			if qs[j] == q {
				panic(fmt.Sprintf("circuit: %s operands alias qubit %d", op, q))
			}
		}
	}
}

func (c *Circuit) append(op Opcode, bit Clbit, qs ...Qubit) {
	if len(qs) != op.Arity() {
		panic(fmt.Sprintf("circuit: %s expects %d operands, got %d", op, op.Arity(), len(qs)))
	}
	c.checkQubits(op, qs...)
	ops := make([]Qubit, len(qs))
	copy(ops, qs)
	c.ops = append(c.ops, Instruction{Op: op, Qubits: ops, Bit: bit})
}

// X appends a carrier flip.
func (c *Circuit) X(q Qubit) { c.append(OpX, NoBit, q) }

// Z appends a sign flip on the active state of q.
func (c *Circuit) Z(q Qubit) { c.append(OpZ, NoBit, q) }

// HL appends the dual-rail logical mix on the rail pair (r0, r1).
func (c *Circuit) HL(r0, r1 Qubit) { c.append(OpHL, NoBit, r0, r1) }

// Swap appends a carrier exchange.
func (c *Circuit) Swap(a, b Qubit) { c.append(OpSwap, NoBit, a, b) }

// CSwap appends a controlled carrier exchange (Fredkin).
func (c *Circuit) CSwap(ctl, a, b Qubit) { c.append(OpCSwap, NoBit, ctl, a, b) }

// CX appends a controlled flip.
func (c *Circuit) CX(ctl, tgt Qubit) { c.append(OpCX, NoBit, ctl, tgt) }

// CCX appends a doubly controlled flip (Toffoli).
func (c *Circuit) CCX(c1, c2, tgt Qubit) { c.append(OpCCX, NoBit, c1, c2, tgt) }

// CZ appends a sign flip conditioned on both carriers being active.
func (c *Circuit) CZ(a, b Qubit) { c.append(OpCZ, NoBit, a, b) }

// Reset appends a forced return of q to the inactive state.
func (c *Circuit) Reset(q Qubit) { c.append(OpReset, NoBit, q) }

// Measure appends a destructive readout of q into classical bit b.
// Panics if b is out of range (programmer error).
func (c *Circuit) Measure(q Qubit, b Clbit) {
	if b < 0 || int(b) >= c.nc {
		panic(fmt.Sprintf("circuit: measure target clbit %d out of range [0,%d)", b, c.nc))
	}
	c.append(OpMeasure, b, q)
}
