package main

import (
	"fmt"
	"io"
	"os"

	"github.com/automoto/penguin-squad/input"
	"github.com/automoto/penguin-squad/replay"
	"github.com/spf13/cobra"
)

var (
	flagScript string
	flagTicks  int
)

var runCmd = &cobra.Command{
	Use:   "run <level>",
	Short: "Simulate a level and print the result",
	Long: `Simulate a level without a window. Input comes from a YAML script
(--script, "-" for stdin); without one the player stands still for --ticks.

Examples:
  penguinsim run level1
  penguinsim run level2 --script walk.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lvl, _, err := loadLevel(args[0])
		if err != nil {
			return err
		}
		frames, err := loadFrames()
		if err != nil {
			return err
		}
		res, err := replay.Simulate(lvl, frames, logger.WithPrefix("replay"))
		if err != nil {
			return err
		}
		printResult(res)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{runCmd, recordCmd} {
		c.Flags().StringVar(&flagScript, "script", "", "YAML input script, - for stdin")
		c.Flags().IntVar(&flagTicks, "ticks", 600, "Ticks to run when no script is given")
	}
}

func loadFrames() ([]input.Snapshot, error) {
	if flagScript == "" {
		if flagTicks <= 0 {
			return nil, fmt.Errorf("--ticks must be positive, got %d", flagTicks)
		}
		return make([]input.Snapshot, flagTicks), nil
	}

	var r io.Reader = os.Stdin
	if flagScript != "-" {
		f, err := os.Open(flagScript)
		if err != nil {
			return nil, fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		r = f
	}
	script, err := input.LoadScript(r)
	if err != nil {
		return nil, err
	}
	return script.Frames(), nil
}

func printResult(res replay.Result) {
	fmt.Printf("level     %s\n", res.Level)
	fmt.Printf("ticks     %d\n", res.Ticks)
	fmt.Printf("notes     %d\n", res.Notes)
	fmt.Printf("penguins  %d\n", res.Penguins)
	fmt.Printf("complete  %v\n", res.Complete)
	if res.Exited {
		fmt.Printf("exit      %s\n", res.Exit)
	}
	fmt.Printf("digest    %s\n", res.Digest)
}
