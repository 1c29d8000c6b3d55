package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qbitforge/railqram/qram"
	"github.com/qbitforge/railqram/router"
)

var (
	layoutDepth     int
	layoutBandwidth int
	layoutJSON      bool

	layoutCmd = &cobra.Command{
		Use:   "layout",
		Short: "Print the accounting for a depth without building anything",
		Long: `layout evaluates the closed-form resource accounting: router count,
exact check-invocation count, and the classical syndrome width in both
layout modes. Useful for sizing a run before committing to a build.`,
		RunE: runLayout,
	}
)

func init() {
	layoutCmd.Flags().IntVarP(&layoutDepth, "depth", "d", 2, "address width (tree depth)")
	layoutCmd.Flags().IntVarP(&layoutBandwidth, "bandwidth", "b", 1, "query cells per trial")
	layoutCmd.Flags().BoolVar(&layoutJSON, "json", false, "emit JSON instead of text")
}

func runLayout(cmd *cobra.Command, args []string) error {
	if _, err := qram.Depth(layoutDepth).TreeDepth(); err != nil {
		return err
	}
	if layoutBandwidth < 1 {
		return qram.ErrBandwidth
	}

	invocations := qram.RouterInvocations(layoutDepth, layoutBandwidth)
	summary := struct {
		Depth       int `json:"depth"`
		Bandwidth   int `json:"bandwidth"`
		Routers     int `json:"routers"`
		Leaves      int `json:"leaves"`
		Invocations int `json:"invocations"`
		BitsPerCall int `json:"bits_per_call"`
		Sequential  int `json:"sequential_width"`
		Reuse       int `json:"reuse_width"`
	}{
		Depth:       layoutDepth,
		Bandwidth:   layoutBandwidth,
		Routers:     (1 << layoutDepth) - 1,
		Leaves:      1 << (layoutDepth - 1),
		Invocations: invocations,
		BitsPerCall: router.SyndromeBitsPerCall,
		Sequential:  qram.SyndromeWidth(layoutDepth, layoutBandwidth, true),
		Reuse:       qram.SyndromeWidth(layoutDepth, layoutBandwidth, false),
	}

	if layoutJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	fmt.Printf("depth %d, bandwidth %d\n", summary.Depth, summary.Bandwidth)
	fmt.Printf("  routers:            %d (%d leaves)\n", summary.Routers, summary.Leaves)
	fmt.Printf("  check invocations:  %d (%d outcomes each)\n", summary.Invocations, summary.BitsPerCall)
	fmt.Printf("  syndrome width:     %d sequential, %d reuse\n", summary.Sequential, summary.Reuse)
	return nil
}
