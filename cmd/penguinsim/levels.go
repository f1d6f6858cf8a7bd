package main

import (
	"fmt"

	"github.com/automoto/penguin-squad/leveldata"
	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List embedded levels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fsys := leveldata.Embedded()
		files, err := leveldata.Catalog(fsys)
		if err != nil {
			return err
		}
		fmt.Printf("  %-3s  %-14s  %-16s  %s\n", "#", "File", "Name", "Penguins/Notes")
		for i, f := range files {
			lvl, err := leveldata.Load(fsys, f)
			if err != nil {
				return err
			}
			fmt.Printf("  %-3d  %-14s  %-16s  %d/%d\n", i, f, lvl.Name, lvl.Penguins.Count, len(lvl.Notes.Placements))
		}
		return nil
	},
}

// loadLevel resolves a level by file name or stem and returns the file it
// came from.
func loadLevel(name string) (*leveldata.Level, string, error) {
	fsys := leveldata.Embedded()
	file, err := leveldata.Find(fsys, name)
	if err != nil {
		return nil, "", err
	}
	lvl, err := leveldata.Load(fsys, file)
	return lvl, file, err
}
