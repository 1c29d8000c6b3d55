package router

import (
	"fmt"

	"github.com/qbitforge/railqram/circuit"
)

// SequentialSink hands out one fresh classical slot per check outcome,
// walking its register front to back. The cursor is owned here and advanced
// only through Next, so no ambient iteration state leaks into callers.
type SequentialSink struct {
	reg    circuit.CRegister
	cursor int
}

// NewSequentialSink returns a sink over the whole register.
func NewSequentialSink(reg circuit.CRegister) *SequentialSink {
	return &SequentialSink{reg: reg}
}

// Next returns the next unused slot, or ErrSinkExhausted once the register
// is spent, which means the caller's invocation accounting was wrong.
// Complexity: O(1).
func (s *SequentialSink) Next() (circuit.Clbit, error) {
	if s.cursor >= s.reg.Width() {
		return circuit.NoBit, fmt.Errorf("%w: register %q has %d slots",
			ErrSinkExhausted, s.reg.Name(), s.reg.Width())
	}
	bit := s.reg.At(s.cursor)
	s.cursor++
	return bit, nil
}

// Emitted returns how many slots have been handed out so far.
func (s *SequentialSink) Emitted() int { return s.cursor }

// ReuseSink returns the same classical slot for every outcome: later checks
// overwrite earlier ones, trading per-check attribution for a single bit of
// classical output.
type ReuseSink struct {
	bit circuit.Clbit
}

// NewReuseSink returns a sink pinned to the register's first slot.
// The register must hold at least one bit.
func NewReuseSink(reg circuit.CRegister) (*ReuseSink, error) {
	if reg.Width() < 1 {
		return nil, fmt.Errorf("%w: reuse register %q is empty", ErrSinkExhausted, reg.Name())
	}
	return &ReuseSink{bit: reg.At(0)}, nil
}

// Next always returns the pinned slot. Complexity: O(1).
func (s *ReuseSink) Next() (circuit.Clbit, error) { return s.bit, nil }
