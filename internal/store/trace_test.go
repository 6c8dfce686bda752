package store

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestTraceWriteRead(t *testing.T) {
	tempDir := t.TempDir()

	w, err := NewTraceWriter(tempDir, "run-1")
	if err != nil {
		t.Fatalf("NewTraceWriter failed: %v", err)
	}

	entries := []TraceEntry{
		{Eval: 30, Cost: 120.5, Timestamp: time.Now()},
		{Eval: 180, Cost: 44.2, Timestamp: time.Now(), Params: []float64{1, 2}},
		{Eval: 900, Cost: 12.8, Timestamp: time.Now()},
	}
	for _, entry := range entries {
		if err := w.Write(entry); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	got, err := ReadTrace(tempDir, "run-1")
	if err != nil {
		t.Fatalf("ReadTrace failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	for i, entry := range got {
		if entry.Eval != entries[i].Eval || entry.Cost != entries[i].Cost {
			t.Errorf("entry %d = %+v, want %+v", i, entry, entries[i])
		}
	}
	if got[1].Params == nil || got[1].Params[1] != 2 {
		t.Errorf("params not round-tripped: %+v", got[1])
	}
	if got[0].Params != nil {
		t.Errorf("omitted params should stay nil, got %v", got[0].Params)
	}
}

func TestReadTraceNotFound(t *testing.T) {
	if _, err := ReadTrace(t.TempDir(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestTraceWriterConcurrent(t *testing.T) {
	tempDir := t.TempDir()

	w, err := NewTraceWriter(tempDir, "run-1")
	if err != nil {
		t.Fatalf("NewTraceWriter failed: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				_ = w.Write(TraceEntry{Eval: n*20 + j, Cost: float64(j), Timestamp: time.Now()})
			}
		}(i)
	}
	wg.Wait()

	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	got, err := ReadTrace(tempDir, "run-1")
	if err != nil {
		t.Fatalf("ReadTrace failed: %v", err)
	}
	if len(got) != 200 {
		t.Errorf("expected 200 entries, got %d", len(got))
	}
}
