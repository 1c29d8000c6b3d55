// SPDX-License-Identifier: MIT

// Package qram: closed-form accounting and the classical output layout.
// The syndrome block's width is a function of depth and bandwidth alone and
// is computed, and allocated, before any operation is emitted, so the
// classical bit layout of the artifact is fixed up front.
package qram

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/qbitforge/railqram/circuit"
	"github.com/qbitforge/railqram/router"
)

// SyndromeMode selects how check outcomes are laid out.
type SyndromeMode uint8

const (
	// Sequential gives every check outcome its own classical slot.
	Sequential SyndromeMode = iota
	// Reuse overwrites a single classical slot with every outcome.
	Reuse
)

// String returns the layout-mode label used in logs and JSON.
func (m SyndromeMode) String() string {
	switch m {
	case Sequential:
		return "sequential"
	case Reuse:
		return "reuse"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// routersAbove is the number of router nodes strictly above a level:
// 2^level - 1, the node count of a full tree of that many levels.
func routersAbove(level int) int {
	if level <= 0 {
		return 0
	}
	return (1 << level) - 1
}

// RouterInvocations returns the exact number of FTRoute invocations one
// construction emits for a given depth and bandwidth:
//
//	store:   per level L, one down-pass and one up-pass over the 2^L - 1
//	         routers above L           → Σ 2·(2^L − 1), L = 0..D-1
//	query:   per bus pair, one down- and one up-pass to the leaf level
//	                                   → bandwidth · 2·(2^(D-1) − 1)
//	restore: the mirror of store      → Σ 2·(2^L − 1) again
//
// Complexity: O(depth).
func RouterInvocations(depth, bandwidth int) int {
	total := 0
	for level := 0; level < depth; level++ {
		total += 4 * routersAbove(level) // store + restore, down + up
	}
	total += bandwidth * 2 * routersAbove(depth-1) // query, down + up
	return total
}

// SyndromeWidth returns the classical width of the syndrome block:
// SyndromeBitsPerCall per invocation in sequential mode (possibly zero for
// depth 1, which routes nothing), or a single reused slot otherwise.
func SyndromeWidth(depth, bandwidth int, record bool) int {
	if !record {
		return 1
	}
	return router.SyndromeBitsPerCall * RouterInvocations(depth, bandwidth)
}

// Layout describes where the construction's classical output lives. The
// core appends only the syndrome block; callers append their own address-
// and bus-echo blocks after it (see cmd/railqram for the typical readout).
type Layout struct {
	// Depth is the address width D; the tree has 2^D - 1 routers.
	Depth int `json:"depth"`
	// Bandwidth is the number of query cells routed per trial.
	Bandwidth int `json:"bandwidth"`
	// Invocations is the exact FTRoute count behind the syndrome width.
	Invocations int `json:"invocations"`
	// BitsPerCall is the per-invocation outcome count (5).
	BitsPerCall int `json:"bits_per_call"`
	// Mode is the syndrome layout mode.
	Mode SyndromeMode `json:"mode"`
	// SyndromeName is the classical register holding the outcomes.
	SyndromeName string `json:"syndrome_name"`
	// SyndromeOffset is the global clbit index of the block's first slot.
	SyndromeOffset int `json:"syndrome_offset"`
	// SyndromeWidth is the block's slot count.
	SyndromeWidth int `json:"syndrome_width"`
}

// Program is the constructed artifact: the fully specified operation
// sequence plus the layout a downstream engine needs to place and decode
// its classical outcomes.
type Program struct {
	// ID correlates this artifact across logs and result stores.
	ID uuid.UUID
	// Circuit is the carrier holding the emitted operation sequence.
	Circuit *circuit.Circuit
	// AddressReg is the borrowed external address register (width 2·depth),
	// returned to its original state by the restore phase.
	AddressReg circuit.Register
	// BusReg is the borrowed external bus register (width 2·bandwidth)
	// carrying the query result after the un-mix.
	BusReg circuit.Register
	// Layout fixes the classical output geometry.
	Layout Layout
}
