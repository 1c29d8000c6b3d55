// Package qram types: options, address specifications, and sentinel errors.
package qram

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Sentinel errors for QRAM construction. All of them are fatal: a failed
// build leaves no partial artifact behind.
var (
	// ErrAddressSpec indicates the address specification defines no usable depth.
	ErrAddressSpec = errors.New("qram: address spec must define a depth >= 1")
	// ErrMemorySize indicates the memory length is not 2^depth.
	ErrMemorySize = errors.New("qram: memory length must equal 2^depth")
	// ErrMemoryBit indicates a memory value outside {0, 1}.
	ErrMemoryBit = errors.New("qram: memory values must be 0 or 1")
	// ErrBandwidth indicates a bandwidth < 1.
	ErrBandwidth = errors.New("qram: bandwidth must be >= 1")
	// ErrAddressWidth indicates the borrowed address register is not 2*depth wide.
	ErrAddressWidth = errors.New("qram: address register width must equal 2*depth")
	// ErrBusWidth indicates the borrowed bus register is not 2*bandwidth wide.
	ErrBusWidth = errors.New("qram: bus register width must equal 2*bandwidth")
	// ErrAlreadyBuilt indicates a second build on the same QRAM instance.
	ErrAlreadyBuilt = errors.New("qram: program already built")
	// ErrAccounting indicates the emitted check count disagrees with the
	// closed-form invocation formula, an internal bookkeeping bug.
	ErrAccounting = errors.New("qram: syndrome accounting mismatch")
	// ErrNilCircuit indicates BuildOn received no carrier.
	ErrNilCircuit = errors.New("qram: carrier circuit must not be nil")
)

// AddressSpec fixes the routing-tree depth of a construction.
type AddressSpec interface {
	// TreeDepth returns the depth D (address width in logical bits),
	// or ErrAddressSpec when the specification is unusable.
	TreeDepth() (int, error)
}

// Depth is an explicit address width.
type Depth int

// TreeDepth returns the depth itself; it must be >= 1.
func (d Depth) TreeDepth() (int, error) {
	if d < 1 {
		return 0, fmt.Errorf("%w: explicit depth %d", ErrAddressSpec, int(d))
	}
	return int(d), nil
}

// AddressList derives the depth from the common length of binary strings,
// the way callers that enumerate addresses naturally specify it.
type AddressList []string

// TreeDepth validates the list and returns the shared string length.
// Complexity: O(total characters).
func (a AddressList) TreeDepth() (int, error) {
	if len(a) == 0 {
		return 0, fmt.Errorf("%w: empty address list", ErrAddressSpec)
	}
	depth := len(a[0])
	if depth == 0 {
		return 0, fmt.Errorf("%w: empty address string", ErrAddressSpec)
	}
	for i, s := range a {
		if len(s) != depth {
			return 0, fmt.Errorf("%w: address %d has length %d, want %d", ErrAddressSpec, i, len(s), depth)
		}
		for j := 0; j < len(s); j++ {
			if s[j] != '0' && s[j] != '1' {
				return 0, fmt.Errorf("%w: address %d contains %q", ErrAddressSpec, i, s[j])
			}
		}
	}
	return depth, nil
}

// Options contains tunable parameters for one construction.
type Options struct {
	// Bandwidth is the number of dual-rail query cells in the external bus
	// register. Each cell is routed, queried, and returned independently.
	Bandwidth int
	// RecordSyndrome selects the sequential sink (one slot per check) when
	// true and the single-slot reuse sink when false.
	RecordSyndrome bool
	// PrepareQueryCell wraps each query in the prepare-and-mix bracket,
	// turning the phase oracle's sign into an observable logical flip.
	// Without it, readout shows routing success/failure, not memory content.
	PrepareQueryCell bool
	// Logger receives construction-time trace events. Defaults to a no-op
	// logger; constructions never log unless asked to.
	Logger zerolog.Logger
}

// DefaultOptions returns an Options with default settings:
// Bandwidth=1, RecordSyndrome=true, PrepareQueryCell=true, no-op logger.
func DefaultOptions() Options {
	return Options{
		Bandwidth:        1,
		RecordSyndrome:   true,
		PrepareQueryCell: true,
		Logger:           zerolog.Nop(),
	}
}
