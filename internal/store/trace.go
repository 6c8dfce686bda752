package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// TraceEntry is one point of a run's cost history, serialized as a JSON line
// in trace.jsonl.
type TraceEntry struct {
	// Eval is the objective-evaluation count when the entry was recorded
	Eval int `json:"eval"`

	// Cost is the best cost at that point
	Cost float64 `json:"cost"`

	// Timestamp records when this trace entry was created
	Timestamp time.Time `json:"timestamp"`

	// Params is the full parameter vector achieving Cost (optional, can be
	// nil to save space)
	Params []float64 `json:"params,omitempty"`
}

// TraceWriter appends trace entries to a run's trace.jsonl file.
// It uses buffered I/O and is safe for concurrent use.
type TraceWriter struct {
	mu     sync.Mutex
	file   *os.File
	writer *bufio.Writer
	path   string
}

// NewTraceWriter creates a trace writer for the given run at
// <baseDir>/runs/<runID>/trace.jsonl, truncating any existing trace.
func NewTraceWriter(baseDir, runID string) (*TraceWriter, error) {
	runDir := filepath.Join(baseDir, "runs", runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create run directory: %w", err)
	}

	path := filepath.Join(runDir, "trace.jsonl")
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace file: %w", err)
	}

	return &TraceWriter{
		file:   file,
		writer: bufio.NewWriter(file),
		path:   path,
	}, nil
}

// Write appends one entry.
func (w *TraceWriter) Write(entry TraceEntry) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to serialize trace entry: %w", err)
	}
	if _, err := w.writer.Write(data); err != nil {
		return fmt.Errorf("failed to write trace entry: %w", err)
	}
	if err := w.writer.WriteByte('\n'); err != nil {
		return fmt.Errorf("failed to write trace newline: %w", err)
	}
	return nil
}

// Close flushes buffered entries and closes the file.
func (w *TraceWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.writer.Flush(); err != nil {
		w.file.Close()
		return fmt.Errorf("failed to flush trace file: %w", err)
	}
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("failed to close trace file: %w", err)
	}
	return nil
}

// Path returns the location of the trace file.
func (w *TraceWriter) Path() string { return w.path }

// ReadTrace loads all entries of a run's trace, in order.
func ReadTrace(baseDir, runID string) ([]TraceEntry, error) {
	path := filepath.Join(baseDir, "runs", runID, "trace.jsonl")

	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, &NotFoundError{RunID: runID}
	} else if err != nil {
		return nil, fmt.Errorf("failed to open trace file: %w", err)
	}
	defer file.Close()

	var entries []TraceEntry
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var entry TraceEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			return nil, fmt.Errorf("failed to parse trace entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read trace file: %w", err)
	}

	return entries, nil
}
