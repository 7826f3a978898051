package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/engine2d/config"
	"github.com/automoto/engine2d/server/core"
	"github.com/automoto/engine2d/shared/sim"
	"github.com/spf13/cobra"
)

var (
	flagLevels   string
	flagScript   string
	flagHold     []string
	flagSteps    int
	flagFast     bool
	flagTickRate int
	flagMode     string
	flagEnd      string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Play levels with scripted input",
	Long: `Play a level sequence and print where the player ended up.

Input comes from a YAML script (--script) or from holding keys for a number
of steps (--hold, --steps). Without --fast the loop runs in real time at
--tickrate steps per second; Ctrl+C stops it early.

Examples:
  engine2d-headless run --script walk.yaml
  engine2d-headless run --hold right --hold down --steps 120 --fast
  engine2d-headless run --levels assets/demo/aabb.yaml --mode platformer --hold right --steps 600`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagLevels, "levels", "assets/levels", "Level directory or file")
	runCmd.Flags().StringVar(&flagScript, "script", "", "YAML input script")
	runCmd.Flags().StringSliceVar(&flagHold, "hold", nil, "Keys to hold when no script is given (left, right, up, down)")
	runCmd.Flags().IntVar(&flagSteps, "steps", 600, "Steps to run when no script is given")
	runCmd.Flags().BoolVar(&flagFast, "fast", false, "Step as fast as possible instead of in real time")
	runCmd.Flags().IntVar(&flagTickRate, "tickrate", 0, "Steps per second (default from config)")
	runCmd.Flags().StringVar(&flagMode, "mode", "", "Movement mode: topdown or platformer (default from config)")
	runCmd.Flags().StringVar(&flagEnd, "end", "", "Past-last-level policy: finish or clamp (default from config)")
}

func runRun(cmd *cobra.Command, _ []string) error {
	if flagMode != "" {
		config.Physics.Mode = flagMode
	}
	if flagEnd != "" {
		config.Sim.EndPolicy = flagEnd
	}
	if flagTickRate <= 0 {
		flagTickRate = config.Sim.TickRate
	}

	params, err := config.SimParams()
	if err != nil {
		return err
	}
	levels, err := core.LoadLevels(flagLevels)
	if err != nil {
		return err
	}
	script, err := loadScript()
	if err != nil {
		return err
	}

	world, err := sim.NewWorld(levels, params)
	if err != nil {
		return err
	}
	logger.Info("loaded levels", "path", flagLevels, "count", len(levels), "mode", params.Mode)

	loop := core.NewGameLoop(world, script, flagTickRate, logger)

	var sum core.Summary
	if flagFast {
		sum = loop.RunFast()
	} else {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		sum = loop.Run(ctx)
	}

	fmt.Fprintln(cmd.OutOrStdout(), sum)
	fmt.Fprintf(cmd.OutOrStdout(), "contacts %d, applied %d, stale %d, %s\n",
		sum.Contacts, sum.Applied, sum.Stale, sum.Elapsed)
	return nil
}

func loadScript() (*core.Script, error) {
	if flagScript == "" {
		return core.Hold(flagSteps, flagHold...)
	}
	data, err := os.ReadFile(flagScript)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", flagScript, err)
	}
	return core.ParseScript(data)
}
