package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/haydenrob/refnx/internal/store"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect persisted fit runs",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List persisted fit runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		fs, err := store.NewFSStore(viper.GetString("store.dir"))
		if err != nil {
			return err
		}
		infos, err := fs.ListRuns()
		if err != nil {
			return err
		}
		if len(infos) == 0 {
			fmt.Println("no runs")
			return nil
		}
		for _, info := range infos {
			fmt.Printf("%s  %-10s  cost=%-12.6g  %s\n",
				info.RunID, info.Model, info.BestCost, info.Timestamp.Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

var runsShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show one fit run, including its cost trace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		baseDir := viper.GetString("store.dir")
		fs, err := store.NewFSStore(baseDir)
		if err != nil {
			return err
		}
		record, err := fs.LoadRun(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("run:          %s\n", record.RunID)
		fmt.Printf("model:        %s\n", record.Model)
		fmt.Printf("data:         %s\n", record.DataPath)
		fmt.Printf("initial cost: %.6g\n", record.InitialCost)
		fmt.Printf("best cost:    %.6g\n", record.BestCost)
		fmt.Printf("evaluations:  %d\n", record.Evaluations)
		fmt.Printf("settings:     iters=%d pop=%d seed=%d\n",
			record.Settings.Iters, record.Settings.PopSize, record.Settings.Seed)
		for i, v := range record.BestParams {
			held := ""
			if i < len(record.Hold) && record.Hold[i] {
				held = " (held)"
			}
			fmt.Printf("  p[%d] = %.8g%s\n", i, v, held)
		}

		entries, err := store.ReadTrace(baseDir, args[0])
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil // run saved without a trace
			}
			return err
		}
		fmt.Printf("trace:        %d entries\n", len(entries))
		for _, entry := range entries {
			fmt.Printf("  eval %-8d cost=%.6g\n", entry.Eval, entry.Cost)
		}
		return nil
	},
}

var runsDeleteCmd = &cobra.Command{
	Use:   "delete <run-id>",
	Short: "Delete a persisted fit run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fs, err := store.NewFSStore(viper.GetString("store.dir"))
		if err != nil {
			return err
		}
		if err := fs.DeleteRun(args[0]); err != nil {
			return err
		}
		fmt.Printf("deleted %s\n", args[0])
		return nil
	},
}

func init() {
	runsCmd.AddCommand(runsListCmd, runsShowCmd, runsDeleteCmd)
	rootCmd.AddCommand(runsCmd)
}
