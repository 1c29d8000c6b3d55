// Package circuit defines the operation-sequence intermediate representation
// shared by every railqram builder: global qubit/clbit index spaces, named
// quantum and classical registers, and an append-only instruction list over a
// fixed opcode set.
//
// What:
//
//   - Circuit owns two flat index spaces (Qubit, Clbit) carved into named,
//     contiguous registers; registers are views, never reallocated.
//   - A small closed opcode set: X, Z, HL (dual-rail logical mix), SWAP,
//     CSWAP, CX, CCX, CZ, RESET, MEASURE. Nothing else is representable.
//   - Instructions are appended in program order; that order is exactly the
//     order an external engine must execute them in.
//   - WriteQASM serializes the whole circuit as OpenQASM 2.0 text (HL is
//     declared opaque; all other opcodes map to qelib1 gates).
//
// Why:
//
//   - Construction and execution are separate concerns: railqram only ever
//     emits a fully specified sequence plus a documented register layout.
//   - A closed opcode set keeps every downstream consumer (QASM writer,
//     test evaluators, accounting) total over the instruction stream.
//
// Validation model:
//
//   - Register construction (AddRegister, AddClassical) returns sentinel
//     errors for caller mistakes: empty/duplicate/malformed names, bad widths.
//   - Gate appenders panic on out-of-range or aliased qubit arguments; those
//     are programmer errors in the emitting code, never user input.
//
// Errors:
//
//   - ErrRegisterName: register name is empty, malformed, or already taken.
//   - ErrRegisterWidth: quantum register width < 1, or classical width < 0.
//
// Complexity: every append is O(1); WriteQASM is O(ops).
package circuit
