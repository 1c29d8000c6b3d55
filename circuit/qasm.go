// SPDX-License-Identifier: MIT

// Package circuit: OpenQASM 2.0 serialization of a constructed circuit.
// The emitted text is the hand-off artifact for external execution engines;
// railqram itself never executes anything.
package circuit

import (
	"bufio"
	"fmt"
	"io"
)

// WriteQASM writes the circuit as an OpenQASM 2.0 program.
//
// All opcodes map onto qelib1 gates except HL, which is declared opaque:
// the dual-rail logical mix is a two-qubit unitary the consuming engine is
// expected to provide (or further decompose) under the name "hl".
//
// Register declarations appear in allocation order, so qubit/clbit offsets
// in the text match the circuit's documented layout exactly.
// Complexity: O(registers + ops).
func (c *Circuit) WriteQASM(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "OPENQASM 2.0;")
	fmt.Fprintln(bw, "include \"qelib1.inc\";")
	fmt.Fprintln(bw, "opaque hl a,b;")
	for _, r := range c.qregs {
		fmt.Fprintf(bw, "qreg %s[%d];\n", r.name, r.size)
	}
	for _, r := range c.cregs {
		if r.size == 0 {
			// QASM cannot declare an empty creg; the block simply has no bits.
			continue
		}
		fmt.Fprintf(bw, "creg %s[%d];\n", r.name, r.size)
	}

	qname := c.qubitNames()
	cname := c.clbitNames()
	for _, in := range c.ops {
		switch in.Op {
		case OpMeasure:
			fmt.Fprintf(bw, "measure %s -> %s;\n", qname[in.Qubits[0]], cname[in.Bit])
		default:
			fmt.Fprintf(bw, "%s", in.Op)
			for i, q := range in.Qubits {
				if i == 0 {
					fmt.Fprintf(bw, " %s", qname[q])
				} else {
					fmt.Fprintf(bw, ",%s", qname[q])
				}
			}
			fmt.Fprintln(bw, ";")
		}
	}

	return bw.Flush()
}

// qubitNames precomputes the "reg[i]" spelling of every qubit.
func (c *Circuit) qubitNames() []string {
	names := make([]string, c.nq)
	for _, r := range c.qregs {
		for i := 0; i < r.size; i++ {
			names[r.start+i] = fmt.Sprintf("%s[%d]", r.name, i)
		}
	}
	return names
}

// clbitNames precomputes the "reg[i]" spelling of every clbit.
func (c *Circuit) clbitNames() []string {
	names := make([]string, c.nc)
	for _, r := range c.cregs {
		for i := 0; i < r.size; i++ {
			names[r.start+i] = fmt.Sprintf("%s[%d]", r.name, i)
		}
	}
	return names
}
