// Package qram assembles the complete fault-tolerant QRAM routing program:
// the three-phase traversal over a dual-rail router tree, the memory oracle,
// and the exact syndrome accounting.
//
// What:
//
//   - New validates an address specification (explicit depth or a list of
//     binary strings) against a classical memory of exactly 2^D bits and
//     builds the router tree for it.
//   - Build / BuildOn emit the whole operation sequence onto a carrier
//     circuit: store-address, route-query, restore-address. The external
//     address and bus registers are borrowed, never owned: the restore phase
//     returns every address bit to its original location.
//   - The Program artifact records the circuit, the borrowed registers, and
//     the classical Layout (where the syndrome block lives and how wide it
//     is) plus a UUID for correlating artifacts and logs.
//   - RouterInvocations / SyndromeWidth are the closed forms fixing the
//     classical output layout before a single operation is emitted.
//
// Phases:
//
//   - Store (levels 0..D-1 ascending): swap address bit L into the root bus,
//     route it down to level L (pre-order over the 2^L - 1 routers above L),
//     deposit it into the level's address cells, route back up (post-order)
//     leaving the root bus vacated.
//   - Query (per bus pair): optionally prepare-and-mix the query cell, swap
//     it into the root bus, route down to the leaves, apply the phase oracle,
//     route back up, swap out, un-mix. A prepared cell reveals the stored
//     memory bit at readout; an unprepared cell reveals routing success only.
//   - Restore (levels D-1..0 descending): the mirror of store.
//
// Why phase oracle + mix bracket: memory bits are imprinted as a relative
// sign on the bus cell. Only a cell mixed before the query and un-mixed
// after shows the bit as a 0↔1 flip; that bracket is what
// Options.PrepareQueryCell enables, and it is the supported query contract.
//
// Errors:
//
//   - ErrAddressSpec: the specification defines no depth >= 1 (non-positive
//     explicit depth; empty, ragged, or non-binary address list).
//   - ErrMemorySize: memory length differs from 2^depth.
//   - ErrMemoryBit: a memory value outside {0, 1}.
//   - ErrBandwidth: bandwidth < 1.
//   - ErrAddressWidth / ErrBusWidth: borrowed register narrower (or wider)
//     than 2·depth / 2·bandwidth.
//   - ErrAlreadyBuilt: a second build on the same QRAM.
//   - ErrAccounting: emitted check count disagrees with the closed form,
//     an internal bookkeeping bug surfaced instead of silently truncated.
//
// Detected faults are never errors: any nonzero syndrome bit in a trial is
// data for the downstream consumer (spec'd detect-only protocol), and an
// all-inactive readout pair is an erasure, likewise surfaced verbatim.
package qram
