package telemetry

import (
	"context"
	"time"
)

// Collector defines the core domain interface
type Collector interface {
	Record(ctx context.Context, snapshot *CycleSnapshot) error
	Close() error
}

// Outcome classifies how a cycle ended
type Outcome string

const (
	OutcomeLogged      Outcome = "logged"
	OutcomeInvalid     Outcome = "invalid"
	OutcomeWriteFailed Outcome = "write_failed"
)

// CycleSnapshot is the advisory journal entry for one cycle. Reading fields
// are meaningful only when the cycle produced a valid sample.
type CycleSnapshot struct {
	LoggedAt    time.Time
	UptimeMS    uint32
	Outcome     Outcome
	Reason      string
	Temperature float64
	Humidity    float64
	Pressure    float64
	Light       int
}
