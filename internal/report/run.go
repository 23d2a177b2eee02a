// Package report renders analytics query results as terminal tables, CSV
// documents and PNG charts. It consumes the plain structs returned by the
// analytics engine and is the only place formatting decisions live.
package report

import (
	"time"

	"github.com/google/uuid"
)

// Run identifies one report-generation invocation. Every artifact written
// during the run carries the same ID so a dashboard refresh can be traced
// from log line to file.
type Run struct {
	ID        string
	StartedAt time.Time
}

// NewRun stamps a fresh report run.
func NewRun() Run {
	return Run{
		ID:        uuid.New().String(),
		StartedAt: time.Now(),
	}
}
