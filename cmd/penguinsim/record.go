package main

import (
	"fmt"

	"github.com/automoto/penguin-squad/replay"
	"github.com/spf13/cobra"
)

var recordCmd = &cobra.Command{
	Use:   "record <level>",
	Short: "Simulate a level and store the run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lvl, file, err := loadLevel(args[0])
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

		store, err := replay.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.Save(replay.Run{
			Level:  file,
			Ticks:  res.Ticks,
			Digest: res.Digest,
			Frames: frames,
		})
		if err != nil {
			return err
		}
		printResult(res)
		fmt.Printf("run       %d\n", id)
		return nil
	},
}
