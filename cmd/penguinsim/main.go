// penguinsim runs levels headless, records scripted runs and replays them
// to check that the simulation is still deterministic.
//
// Usage:
//
//	penguinsim levels                          - List embedded levels
//	penguinsim run <level> [--script f]        - Simulate a level and print the result
//	penguinsim record <level> --script f       - Simulate and store the run
//	penguinsim replay <id>                     - Re-simulate a stored run and verify it
//	penguinsim runs [level]                    - List stored runs
//
// Global flags:
//
//	--db <path>         - Run database (default: ~/.penguinsim/runs.db)
//	--log-level <lvl>   - debug, info, warn or error
//	--assert            - Panic on invalid placements
package main

import (
	"fmt"
	"os"

	cfg "github.com/automoto/penguin-squad/config"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagDBPath   string
	flagLogLevel string
	flagAssert   bool

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "penguinsim",
	Short:         "Headless Penguin Squad simulator",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		cfg.Debug.LogLevel = level
		cfg.Debug.Assertions = flagAssert
		logger = log.NewWithOptions(os.Stderr, log.Options{
			Prefix:          "penguinsim",
			ReportTimestamp: true,
			Level:           level,
		})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.penguinsim/runs.db", "Path to the run database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&flagAssert, "assert", false, "Panic on invalid placements")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(runsCmd)
}
