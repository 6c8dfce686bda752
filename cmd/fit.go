package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/haydenrob/refnx/internal/fit"
	"github.com/haydenrob/refnx/internal/opt"
	"github.com/haydenrob/refnx/internal/store"
)

var (
	dataPath       string
	modelName      string
	p0Spec         string
	holdSpec       string
	lowerSpec      string
	upperSpec      string
	fitIters       int
	fitPop         int
	fitSeed        int64
	saveRun        bool
	traceThreshold float64
)

var fitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Fit a built-in model to a data file",
	Long: `Fits a parametric model to CSV data (x, y, e columns) by minimizing
chi-squared over the free parameters with the mayfly optimizer. Held
parameters keep their starting values but still feed the model.`,
	RunE: runFit,
}

func init() {
	fitCmd.Flags().StringVar(&dataPath, "data", "", "Data file path, CSV with x,y,e columns (required)")
	fitCmd.Flags().StringVar(&modelName, "model", "gaussian", "Model: gaussian, line, decay")
	fitCmd.Flags().StringVar(&p0Spec, "p0", "", "Comma-separated initial parameters (required)")
	fitCmd.Flags().StringVar(&holdSpec, "hold", "", "Comma-separated indices of parameters to hold")
	fitCmd.Flags().StringVar(&lowerSpec, "lower", "", "Comma-separated lower bounds (default 0 per parameter)")
	fitCmd.Flags().StringVar(&upperSpec, "upper", "", "Comma-separated upper bounds (default 2x initial)")
	fitCmd.Flags().IntVar(&fitIters, "iters", 0, "Max optimizer iterations (0 = config default)")
	fitCmd.Flags().IntVar(&fitPop, "pop", 0, "Population size (0 = config default)")
	fitCmd.Flags().Int64Var(&fitSeed, "seed", -1, "Random seed (-1 = config default)")
	fitCmd.Flags().BoolVar(&saveRun, "save", false, "Persist the run (record + trace) to the store")
	fitCmd.Flags().Float64Var(&traceThreshold, "trace-threshold", 0.001, "Relative improvement required to trace a new best cost")

	fitCmd.MarkFlagRequired("data")
	fitCmd.MarkFlagRequired("p0")
	rootCmd.AddCommand(fitCmd)
}

func runFit(cmd *cobra.Command, args []string) error {
	iters := fitIters
	if iters <= 0 {
		iters = viper.GetInt("optimizer.iters")
	}
	pop := fitPop
	if pop <= 0 {
		pop = viper.GetInt("optimizer.pop")
	}
	seed := fitSeed
	if seed < 0 {
		seed = viper.GetInt64("optimizer.seed")
	}

	model, err := lookupModel(modelName)
	if err != nil {
		return err
	}

	x, y, e, err := loadData(dataPath)
	if err != nil {
		return err
	}
	slog.Info("Loaded data", "path", dataPath, "points", len(x))

	p0, err := parseFloats(p0Spec)
	if err != nil {
		return fmt.Errorf("bad --p0: %w", err)
	}

	var fitOpts []fit.Option
	var hold []bool
	if holdSpec != "" {
		hold = make([]bool, len(p0))
		indices, err := parseInts(holdSpec)
		if err != nil {
			return fmt.Errorf("bad --hold: %w", err)
		}
		for _, idx := range indices {
			if idx < 0 || idx >= len(p0) {
				return fmt.Errorf("bad --hold: index %d out of range", idx)
			}
			hold[idx] = true
		}
		fitOpts = append(fitOpts, fit.WithHold(hold))
	}
	if lowerSpec != "" || upperSpec != "" {
		lower, err := parseFloats(lowerSpec)
		if err != nil {
			return fmt.Errorf("bad --lower: %w", err)
		}
		upper, err := parseFloats(upperSpec)
		if err != nil {
			return fmt.Errorf("bad --upper: %w", err)
		}
		fitOpts = append(fitOpts, fit.WithLimits(lower, upper))
	}

	problem, err := fit.New(x, y, e, model, p0, fitOpts...)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	baseDir := viper.GetString("store.dir")

	var runOpts []fit.FitOption
	var trace *store.TraceWriter
	if saveRun {
		if trace, err = store.NewTraceWriter(baseDir, runID); err != nil {
			return err
		}
		defer trace.Close()

		runOpts = append(runOpts, fit.WithProgress(traceThreshold, func(evals int, cost float64, params []float64) {
			entry := store.TraceEntry{Eval: evals, Cost: cost, Timestamp: time.Now(), Params: params}
			if err := trace.Write(entry); err != nil {
				slog.Warn("Failed to write trace entry", "error", err)
			}
		}))
	}

	start := time.Now()
	result, err := problem.Fit(opt.NewMayfly(iters, pop, seed), runOpts...)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("model:        %s\n", modelName)
	fmt.Printf("points:       %d\n", problem.NumPoints())
	fmt.Printf("initial cost: %.6g\n", result.InitialCost)
	fmt.Printf("best cost:    %.6g\n", result.Cost)
	fmt.Printf("elapsed:      %s\n", elapsed.Round(time.Millisecond))
	for i, v := range result.Params {
		fmt.Printf("  p[%d] = %.8g\n", i, v)
	}

	if saveRun {
		fs, err := store.NewFSStore(baseDir)
		if err != nil {
			return err
		}
		record := &store.FitRecord{
			RunID:         runID,
			Model:         modelName,
			DataPath:      dataPath,
			InitialParams: p0,
			Hold:          hold,
			BestParams:    result.Params,
			InitialCost:   result.InitialCost,
			BestCost:      result.Cost,
			Evaluations:   result.Evaluations,
			Timestamp:     time.Now(),
			Settings:      store.FitSettings{Iters: iters, PopSize: pop, Seed: seed},
		}
		if err := fs.SaveRun(runID, record); err != nil {
			return err
		}
		fmt.Printf("saved run:    %s\n", runID)
	}

	return nil
}

func parseFloats(spec string) ([]float64, error) {
	parts := strings.Split(spec, ",")
	vals := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func parseInts(spec string) ([]int, error) {
	parts := strings.Split(spec, ",")
	vals := make([]int, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}
