package store

// Store defines the interface for fit-run persistence.
// Implementations must be safe for concurrent use.
//
// Error handling conventions:
//   - Return nil error on success
//   - Return a NotFoundError if the run doesn't exist (for Load/Delete)
//   - Wrap underlying errors with context using fmt.Errorf("context: %w", err)
type Store interface {
	// SaveRun atomically saves a fit record. An existing record for the same
	// run ID is overwritten.
	SaveRun(runID string, record *FitRecord) error

	// LoadRun retrieves the record for the given run.
	// Returns a NotFoundError if no record exists.
	LoadRun(runID string) (*FitRecord, error)

	// ListRuns returns metadata for all persisted runs. The returned slice
	// may be empty.
	ListRuns() ([]RunInfo, error)

	// DeleteRun removes the record and all associated artifacts (record.json,
	// trace.jsonl) for the given run.
	// Returns a NotFoundError if no record exists.
	DeleteRun(runID string) error
}

// ErrNotFound is returned when a requested run does not exist.
// Use errors.Is(err, ErrNotFound) to check for this error.
var ErrNotFound = &NotFoundError{}

// NotFoundError represents a missing fit run.
type NotFoundError struct {
	RunID string
}

func (e *NotFoundError) Error() string {
	if e.RunID != "" {
		return "fit run not found: " + e.RunID
	}
	return "fit run not found"
}

func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}
