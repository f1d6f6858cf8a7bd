package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/automoto/penguin-squad/leveldata"
	"github.com/automoto/penguin-squad/replay"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a stored run and verify its digest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid run id %q", args[0])
		}
		store, err := replay.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		run, err := store.Load(id)
		if err != nil {
			return err
		}
		lvl, _, err := loadLevel(run.Level)
		if err != nil {
			return err
		}
		res, err := replay.Verify(lvl, run, logger.WithPrefix("replay"))
		if err != nil && !errors.Is(err, replay.ErrMismatch) {
			return err
		}
		printResult(res)
		if err != nil {
			return err
		}
		fmt.Println("verified")
		return nil
	},
}

var runsCmd = &cobra.Command{
	Use:   "runs [level]",
	Short: "List stored runs",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level := ""
		if len(args) == 1 {
			file, err := leveldata.Find(leveldata.Embedded(), args[0])
			if err != nil {
				return err
			}
			level = file
		}
		store, err := replay.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		runs, err := store.List(level, 20)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("No runs recorded yet.")
			return nil
		}
		fmt.Printf("  %-5s  %-14s  %-7s  %-12s  %s\n", "ID", "Level", "Ticks", "Digest", "Date")
		for _, r := range runs {
			fmt.Printf("  %-5d  %-14s  %-7d  %-12.12s  %s\n", r.ID, r.Level, r.Ticks, r.Digest, r.CreatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}
