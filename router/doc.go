// Package router implements the binary routing tree and the fault-tolerant
// routing primitive at its heart.
//
// What:
//
//   - Tree is an array-indexed complete binary tree of router nodes: node i's
//     children live at 2i+1 and 2i+2, its parent at (i-1)/2. A depth-D tree
//     has levels 0..D-1 and exactly 2^D - 1 nodes; the nodes at level D-1 are
//     the leaves. No parent pointers, no cyclic ownership.
//   - Each Node owns one dual-rail address cell, one dual-rail bus buffer,
//     and two single-rail ancillas (flag, parity), allocated once when the
//     tree is attached to a circuit and never reallocated.
//   - FTRoute is the atomic routing step at one node: it steers the node's
//     bus buffer into the correct child keyed on the address cell, emitting
//     exactly SyndromeBitsPerCall = 5 check outcomes per invocation.
//   - Route is the plain, unchecked routing step (no ancillas, no syndrome),
//     kept for baseline constructions.
//   - Sink abstracts where check outcomes land: SequentialSink hands out one
//     fresh slot per outcome; ReuseSink overwrites a single slot.
//
// The five outcomes of one FTRoute invocation, in order:
//
//	s0: pre-check, address cell double-occupancy (a vacant cell is a legal
//	     idle router in bucket-brigade mode, so only the duplicated state
//	     is reported).
//	s1: flag of the right-branch conditional swap, keyed on addr rail0.
//	s2: flag of the left-branch conditional swap, keyed on addr rail1.
//	s3: conservation outcome of the left output branch.
//	s4: conservation outcome of the right output branch.
//
// Every bit reads 0 in a fault-free trial. The two branch swaps are mutually
// exclusive for a one-hot address, but both execute unconditionally behind
// independent flags, so a fault in either branch is detectable without
// assuming which branch was supposed to fire.
//
// Errors:
//
//   - ErrDepth: requested tree depth < 1.
//   - ErrNotAttached: routing or accounting before Tree.Attach.
//   - ErrAlreadyAttached: a second Attach on the same tree.
//   - ErrLeafRoute: FTRoute invoked at a leaf (no children to route into).
//   - ErrSinkExhausted: a sequential sink ran out of slots, a bookkeeping
//     bug in the invocation-count formula, never a user error.
//
// Complexity: NewTree/Attach are O(2^D); FTRoute appends O(1) instructions.
package router
