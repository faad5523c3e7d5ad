// pkg/model/summary.go
package model

import (
	"fmt"
	"time"
)

// ChunkOutcome records the accounting for one successfully processed chunk.
type ChunkOutcome struct {
	Index       int
	RowsRead    int
	CleanRows   int
	GarbageRows int
	CleanFile   string
	GarbageFile string // empty when the chunk had no garbage rows
	Duration    time.Duration
}

// ChunkError records a chunk that failed during classification or
// persistence. The chunk contributes nothing to either output.
type ChunkError struct {
	Index int
	Err   error
}

// Error implements the error interface.
func (e ChunkError) Error() string {
	return fmt.Sprintf("chunk %d: %v", e.Index, e.Err)
}

// Unwrap exposes the underlying cause.
func (e ChunkError) Unwrap() error {
	return e.Err
}

// RunSummary aggregates per-chunk outcomes and errors across a full run,
// so callers can detect partial failure without parsing logs.
type RunSummary struct {
	RunID            string
	ChunksProcessed  int
	ChunksFailed     int
	RowsRead         int
	CleanRows        int
	GarbageRows      int
	Outcomes         []ChunkOutcome
	ChunkErrors      []ChunkError
	CleanFinalFile   string // empty when no final clean file was written
	GarbageFinalFile string // empty when no final garbage file was written
	StartTime        time.Time
	EndTime          time.Time
	Duration         time.Duration
}

// NewRunSummary initializes a summary for a run.
func NewRunSummary(runID string) *RunSummary {
	return &RunSummary{
		RunID:     runID,
		StartTime: time.Now(),
	}
}

// AddOutcome incorporates a successful chunk into the summary.
func (s *RunSummary) AddOutcome(o ChunkOutcome) {
	s.Outcomes = append(s.Outcomes, o)
	s.ChunksProcessed++
	s.RowsRead += o.RowsRead
	s.CleanRows += o.CleanRows
	s.GarbageRows += o.GarbageRows
}

// AddChunkError records a failed chunk.
func (s *RunSummary) AddChunkError(index int, err error) {
	s.ChunkErrors = append(s.ChunkErrors, ChunkError{Index: index, Err: err})
	s.ChunksFailed++
}

// Complete marks the run as finished and calculates the duration.
func (s *RunSummary) Complete() {
	s.EndTime = time.Now()
	s.Duration = s.EndTime.Sub(s.StartTime)
}

// HasFailures reports whether any chunk was skipped during the run.
func (s *RunSummary) HasFailures() bool {
	return len(s.ChunkErrors) > 0
}
