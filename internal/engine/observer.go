package engine

import "time"

// EventType represents lifecycle phases of an engine operation.
type EventType string

const (
	EventOpStart EventType = "op_start"
	EventOpEnd   EventType = "op_end"
)

// Event represents a lifecycle event of one engine operation.
type Event struct {
	Type      EventType
	OpID      string    // unique operation ID for tracing
	Operation string    // create_table, filter, aggregate, sort, group_by, join
	Timestamp time.Time // when the event occurred
	Data      any       // phase-specific data (arguments, result shape, error)
}

// Observer receives events at operation boundaries.
type Observer interface {
	OnEvent(event Event)
}
