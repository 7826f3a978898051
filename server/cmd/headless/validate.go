package main

import (
	"fmt"

	"github.com/automoto/engine2d/server/core"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <path>...",
	Short: "Check level files",
	Long: `Load each directory or level file and report every level it holds.
Fails on the first path that does not load or validate.

Examples:
  engine2d-headless validate assets/levels
  engine2d-headless validate assets/demo/aabb.yaml maps/extra.tmx`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	for _, p := range args {
		levels, err := core.LoadLevels(p)
		if err != nil {
			logger.Error("invalid levels", "path", p, "error", err)
			return err
		}
		for i, l := range levels {
			cells := 0
			if l.Grid != nil {
				cells = l.Grid.Cols * l.Grid.Rows
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d %s %dx%d walls=%d cells=%d bodies=%d\n",
				p, i, l.Name, l.Width, l.Height, len(l.Obstacles), cells, len(l.Bodies))
		}
		logger.Info("levels ok", "path", p, "count", len(levels))
	}
	return nil
}
