package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/qbitforge/railqram/circuit"
	"github.com/qbitforge/railqram/qram"
)

var (
	buildConfigPath string
	buildFormat     string
	buildOutput     string

	buildCmd = &cobra.Command{
		Use:   "build",
		Short: "Construct a routing program from a config file",
		Long: `build reads a TOML or YAML description (depth or address list, memory
image, bandwidth, readout settings), constructs the routing program, and
writes it out. With echo_readout the address and bus registers are measured
into trailing addr_echo/bus_echo classical blocks after the syndrome block,
so a downstream engine sees both rails of every external cell and can flag
erasure directly.`,
		RunE: runBuild,
	}
)

func init() {
	buildCmd.Flags().StringVarP(&buildConfigPath, "config", "c", "", "build config file (.toml, .yaml or .yml)")
	buildCmd.Flags().StringVarP(&buildFormat, "format", "f", "qasm", "output format: qasm or json")
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "-", "output path, - for stdout")
	_ = buildCmd.MarkFlagRequired("config")
}

// artifact is the JSON summary of a constructed program.
type artifact struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Qubits   int         `json:"qubits"`
	Clbits   int         `json:"clbits"`
	Ops      int         `json:"ops"`
	AddrEcho string      `json:"addr_echo,omitempty"`
	BusEcho  string      `json:"bus_echo,omitempty"`
	Layout   qram.Layout `json:"layout"`
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadBuildConfig(buildConfigPath)
	if err != nil {
		return err
	}
	opts := qram.Options{
		Bandwidth:        cfg.Bandwidth,
		RecordSyndrome:   cfg.RecordSyndrome,
		PrepareQueryCell: cfg.PrepareQueryCell,
		Logger:           logger,
	}

	q, err := qram.New(cfg.spec(), cfg.Memory, opts)
	if err != nil {
		return err
	}

	c := circuit.New(cfg.CircuitName)
	addrReg, err := c.AddRegister("addr_dr", 2*q.Depth())
	if err != nil {
		return err
	}
	busReg, err := c.AddRegister("bus_dr", 2*cfg.Bandwidth)
	if err != nil {
		return err
	}
	prog, err := q.BuildOn(c, addrReg, busReg)
	if err != nil {
		return err
	}

	art := artifact{
		ID:     prog.ID.String(),
		Name:   c.Name(),
		Layout: prog.Layout,
	}
	if cfg.EchoReadout {
		if art.AddrEcho, art.BusEcho, err = echoReadout(c, addrReg, busReg); err != nil {
			return err
		}
	}
	art.Qubits = c.NumQubits()
	art.Clbits = c.NumClbits()
	art.Ops = c.NumOps()

	logger.Info().
		Str("program_id", art.ID).
		Int("depth", prog.Layout.Depth).
		Int("ops", art.Ops).
		Str("format", buildFormat).
		Msg("program constructed")

	w, closeFn, err := openOutput(buildOutput)
	if err != nil {
		return err
	}
	defer closeFn()

	switch buildFormat {
	case "qasm":
		return c.WriteQASM(w)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(art)
	default:
		return fmt.Errorf("unsupported format %q (expected qasm or json)", buildFormat)
	}
}

// echoReadout appends the caller-side readout: both rails of every external
// cell measured into dedicated classical blocks after the syndrome block.
func echoReadout(c *circuit.Circuit, addrReg, busReg circuit.Register) (addrEcho, busEcho string, err error) {
	addr, err := c.AddClassical("addr_echo", addrReg.Width())
	if err != nil {
		return "", "", err
	}
	bus, err := c.AddClassical("bus_echo", busReg.Width())
	if err != nil {
		return "", "", err
	}
	for i := 0; i < addrReg.Width(); i++ {
		c.Measure(addrReg.At(i), addr.At(i))
	}
	for i := 0; i < busReg.Width(); i++ {
		c.Measure(busReg.At(i), bus.At(i))
	}
	return addr.Name(), bus.Name(), nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "-" || path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open output: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
