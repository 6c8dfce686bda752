package store

import "time"

// FitSettings holds the optimizer configuration a run was started with, so a
// persisted result can be reproduced.
type FitSettings struct {
	Iters   int   `json:"iters"`
	PopSize int   `json:"popSize"`
	Seed    int64 `json:"seed"`
}

// FitRecord is the persisted outcome of one fit run. Only the winning
// parameter vector is saved, never the optimizer's internal population:
// re-running from a record restarts the search seeded at the recorded
// parameters rather than continuing the exact trajectory.
type FitRecord struct {
	// RunID is the unique identifier for this run
	RunID string `json:"runId"`

	// Model names the forward model that was fitted
	Model string `json:"model"`

	// DataPath is the data file the model was fitted against
	DataPath string `json:"dataPath"`

	// InitialParams is the full parameter vector at the start of the fit
	InitialParams []float64 `json:"initialParams"`

	// Hold marks the parameters that were fixed during the fit
	Hold []bool `json:"hold,omitempty"`

	// BestParams is the full parameter vector returned by the fit
	BestParams []float64 `json:"bestParams"`

	// InitialCost and BestCost bracket the improvement of the run
	InitialCost float64 `json:"initialCost"`
	BestCost    float64 `json:"bestCost"`

	// Evaluations counts objective evaluations observed during the run
	Evaluations int `json:"evaluations"`

	// Timestamp records when the record was written
	Timestamp time.Time `json:"timestamp"`

	Settings FitSettings `json:"settings"`
}

// RunInfo is the listing view of a record.
type RunInfo struct {
	RunID     string    `json:"runId"`
	Model     string    `json:"model"`
	BestCost  float64   `json:"bestCost"`
	Timestamp time.Time `json:"timestamp"`
}

// ToInfo extracts listing metadata from a record.
func (r *FitRecord) ToInfo() RunInfo {
	return RunInfo{
		RunID:     r.RunID,
		Model:     r.Model,
		BestCost:  r.BestCost,
		Timestamp: r.Timestamp,
	}
}
