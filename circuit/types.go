// Package circuit core types: index spaces, opcodes, registers, instructions,
// and sentinel errors for the railqram operation-sequence IR.
package circuit

import (
	"errors"
	"fmt"
)

// Sentinel errors for circuit construction.
var (
	// ErrRegisterName indicates an empty, malformed, or duplicate register name.
	ErrRegisterName = errors.New("circuit: register name must be unique and match [a-z][a-z0-9_]*")
	// ErrRegisterWidth indicates a quantum register width < 1 or a classical width < 0.
	ErrRegisterWidth = errors.New("circuit: register width out of range")
)

// Qubit is a global index into a Circuit's quantum carrier space.
type Qubit int

// Clbit is a global index into a Circuit's classical output space.
type Clbit int

// NoBit marks the classical slot of instructions that produce no readout.
const NoBit Clbit = -1

// Opcode enumerates the closed operation set of the IR.
type Opcode uint8

const (
	// OpX flips one carrier (Pauli-X).
	OpX Opcode = iota
	// OpZ applies a sign flip conditioned on one carrier being active (Pauli-Z).
	OpZ
	// OpHL is the dual-rail logical mix on a rail pair: it maps the two valid
	// one-hot states to their equal-weight superpositions and is self-inverse
	// on that subspace. Undefined outside it.
	OpHL
	// OpSwap exchanges two carriers.
	OpSwap
	// OpCSwap exchanges two carriers iff the control carrier is active.
	OpCSwap
	// OpCX flips the target iff the control is active.
	OpCX
	// OpCCX flips the target iff both controls are active (Toffoli).
	OpCCX
	// OpCZ applies a sign flip iff both carriers are active.
	OpCZ
	// OpReset forces one carrier to the inactive state.
	OpReset
	// OpMeasure reads one carrier destructively into a classical bit.
	OpMeasure
)

// opcode arity table; OpMeasure additionally consumes one Clbit.
var opArity = [...]int{
	OpX:       1,
	OpZ:       1,
	OpHL:      2,
	OpSwap:    2,
	OpCSwap:   3,
	OpCX:      2,
	OpCCX:     3,
	OpCZ:      2,
	OpReset:   1,
	OpMeasure: 1,
}

var opNames = [...]string{
	OpX:       "x",
	OpZ:       "z",
	OpHL:      "hl",
	OpSwap:    "swap",
	OpCSwap:   "cswap",
	OpCX:      "cx",
	OpCCX:     "ccx",
	OpCZ:      "cz",
	OpReset:   "reset",
	OpMeasure: "measure",
}

// Arity returns the number of qubit operands the opcode consumes.
func (op Opcode) Arity() int {
	if int(op) >= len(opArity) {
		panic(fmt.Sprintf("circuit: unknown opcode %d", op))
	}
	return opArity[op]
}

// String returns the lowercase mnemonic used in QASM and JSON output.
func (op Opcode) String() string {
	if int(op) >= len(opNames) {
		return fmt.Sprintf("op(%d)", op)
	}
	return opNames[op]
}

// Instruction is one emitted operation. Qubits holds exactly Op.Arity()
// operands; Bit is NoBit unless Op == OpMeasure.
type Instruction struct {
	Op     Opcode
	Qubits []Qubit
	Bit    Clbit
}

// Register is a contiguous, named view into a Circuit's qubit space.
// The zero value is not a usable register; obtain one from AddRegister.
type Register struct {
	name  string
	start int
	size  int
}

// Name returns the register's unique name.
func (r Register) Name() string { return r.name }

// Width returns the number of qubits in the register.
func (r Register) Width() int { return r.size }

// Start returns the global index of the register's first qubit.
func (r Register) Start() Qubit { return Qubit(r.start) }

// At returns the i-th qubit of the register.
// Panics if i is out of range (programmer error).
func (r Register) At(i int) Qubit {
	if i < 0 || i >= r.size {
		panic(fmt.Sprintf("circuit: qubit index %d out of range for register %q[%d]", i, r.name, r.size))
	}
	return Qubit(r.start + i)
}

// CRegister is a contiguous, named view into a Circuit's clbit space.
// Unlike quantum registers, a classical register may be empty (width 0):
// a construction that emits no readouts still has a well-defined layout.
type CRegister struct {
	name  string
	start int
	size  int
}

// Name returns the register's unique name.
func (r CRegister) Name() string { return r.name }

// Width returns the number of clbits in the register.
func (r CRegister) Width() int { return r.size }

// Start returns the global index of the register's first clbit.
func (r CRegister) Start() Clbit { return Clbit(r.start) }

// At returns the i-th clbit of the register.
// Panics if i is out of range (programmer error).
func (r CRegister) At(i int) Clbit {
	if i < 0 || i >= r.size {
		panic(fmt.Sprintf("circuit: clbit index %d out of range for register %q[%d]", i, r.name, r.size))
	}
	return Clbit(r.start + i)
}
