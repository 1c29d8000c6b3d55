// Package railqram builds fault-tolerant routing circuits for quantum
// random-access memory on a loss-tolerant dual-rail encoding, from
// single-cell primitives to the full store/query/restore traversal.
//
// 🚀 What is railqram?
//
//	A deterministic, pure-Go circuit builder that brings together:
//		• Circuit IR: named registers, a fixed opcode set, OpenQASM export
//		• Dual-rail cells: prepare, NOT, phase, mix, swap, checked moves
//		• Router tree: array-indexed complete binary bucket-brigade tree
//		• FT routing: flagged swaps plus parity/occupancy syndrome checks
//		• Traversal: store-address / route-query / restore-address phases
//		• Accounting: exact syndrome layout known before a single gate
//
// ✨ Why choose railqram?
//
//   - Detect, don't guess – every routing step emits five check outcomes
//   - Stable artifacts – the classical bit layout is fixed up front
//   - Pure construction – execution engines and statistics stay external
//   - Deterministic – identical inputs always emit identical circuits
//
// Under the hood, everything is organized under four subpackages:
//
//	circuit/  - operation-sequence IR, registers, QASM 2.0 export
//	dualrail/ - dual-rail cell primitives, validity checks, readout decode
//	router/   - router-node tree, FT routing primitive, syndrome sinks
//	qram/     - three-phase traversal, memory oracle, build entry points
//
// Quick ASCII example (depth 2, address 01 → leaf 1):
//
//	        [root]
//	        /    \
//	    [0]        [1]
//	    /  \      /  \
//	  m[0] m[1] m[2] m[3]
//
//	the query carrier follows the stored address bits down to one leaf,
//	picks up the memory phase, and retraces its path back up.
//
// The cmd/railqram CLI constructs programs from TOML/YAML configs and
// emits them as OpenQASM or JSON for an external execution engine.
//
//	go get github.com/qbitforge/railqram
package railqram
