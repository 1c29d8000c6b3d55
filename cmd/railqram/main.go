// Command railqram builds fault-tolerant dual-rail routing programs from a
// config file and emits them as OpenQASM or a JSON artifact summary.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  zerolog.Logger

	rootCmd = &cobra.Command{
		Use:   "railqram",
		Short: "Construct fault-tolerant dual-rail QRAM routing circuits",
		Long: `railqram builds the complete operation sequence of a bucket-brigade
routing tree over dual-rail cells: store-address, route-query against a
classical memory image, restore-address, with per-step check outcomes laid
out in a classical syndrome block.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = initLogger(verbose)
		},
	}
)

func initLogger(verbose bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(output).Level(level).With().Timestamp().Str("app", "railqram").Logger()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(layoutCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "railqram: %v\n", err)
		os.Exit(1)
	}
}
