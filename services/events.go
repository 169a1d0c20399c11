package services

import "log"

// Settlement engine trace event types
const (
	EventSettlementsComputed = "settlements_computed"
	EventSettlementPersisted = "settlement_persisted"
	EventSettlementPruned    = "settlement_pruned"
	EventSettlementCompleted = "settlement_completed"
)

// Event is a structured trace record emitted by the settlement engine
type Event struct {
	Type         string
	GroupID      string
	SettlementID string
	Supersedes   string
	Amount       float64
	Count        int
}

// EventSink receives settlement engine trace events
type EventSink interface {
	Record(event Event)
}

// LogEventSink writes trace events to the standard logger
type LogEventSink struct{}

func (LogEventSink) Record(event Event) {
	log.Printf("settlement event: type=%s group=%s settlement=%s amount=%.2f count=%d",
		event.Type, event.GroupID, event.SettlementID, event.Amount, event.Count)
}
