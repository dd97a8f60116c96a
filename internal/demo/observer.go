package demo

import "time"

// EventType represents the lifecycle phases of a step
type EventType string

const (
	EventRunStart  EventType = "run_start"
	EventStepStart EventType = "step_start"
	EventStepEnd   EventType = "step_end"
	EventRunEnd    EventType = "run_end"
)

// Event represents a lifecycle event of a demonstration run
type Event struct {
	Type      EventType   // Type of event
	RunID     string      // Run ID for tracing
	Step      int         // Step number, -1 for run-level events
	Timestamp time.Time   // When the event occurred
	Data      interface{} // Phase-specific data (label, row count, error)
}

// Observer interface for event subscribers
type Observer interface {
	OnEvent(event Event)
}
