// Package dualrail implements the loss-tolerant two-rail encoding of one
// logical bit and the check primitives built on it.
//
// What:
//
//   - Pair names the two physical carriers (rail0, rail1) of one logical bit.
//     Logical 1 ≡ rail0 active, logical 0 ≡ rail1 active; exactly one rail is
//     active in a valid state. Both-inactive is an erasure, both-active is
//     invalid.
//   - Cell primitives: PrepareZero, PrepareOne, Not (rail exchange), Phase
//     (sign flip on the logical-1 rail), Mix (logical Hadamard on the valid
//     subspace), Swap and CSwap (rail-wise moves that never duplicate a
//     logical value).
//   - Checks: CheckParity (strict one-hot validity; emitted bit is 0 iff the
//     pair is valid) and CheckConservation (per-branch double-occupancy after
//     a routing step; 0 means the branch was not duplicated).
//   - Decode classifies a measured rail pair as Zero, One, Erasure, Invalid.
//
// Why:
//
//   - Losing a whole pair shows up as a detectable erasure at readout instead
//     of a silent bit flip; duplications show up as check outcomes.
//   - Every primitive is a fixed, deterministic instruction sequence: the
//     package emits operations, it never simulates them.
//
// Check-bit convention:
//
//   - All emitted check bits read 0 in a fault-free trial. CheckParity
//     complements the accumulated rail parity before readout so that "valid"
//     is 0; CheckConservation reports the illegal both-rails-active state,
//     under which a legitimately vacated branch also reads 0. A vacant pair
//     is not a fault; it is either an idle resource or, at final readout,
//     an erasure for the downstream decoder.
//
// Errors:
//
//   - ErrPairWidth: register width is odd or too small to slice into pairs.
//   - ErrPairIndex: requested pair index out of range.
//
// Complexity: every primitive appends O(1) instructions.
package dualrail
