package dto

import (
	"github.com/aretw0/balance/pkg/domain"
)

// Snapshot is the wire form of a session emitted by structured handlers.
// Stack is bottom-to-top; CurrentChar is empty before the first step and after the verdict.
type Snapshot struct {
	SessionID   string        `json:"session_id"`
	Input       string        `json:"input"`
	Cursor      int           `json:"cursor"`
	Stack       string        `json:"stack"`
	CurrentChar string        `json:"current_char"`
	Status      domain.Status `json:"status"`
	Reason      domain.Reason `json:"reason,omitempty"`
	Steps       int           `json:"steps"`
	Event       Event         `json:"event"`
}

// Event is the wire form of domain.Event with printable characters.
type Event struct {
	Kind    domain.EventKind `json:"kind"`
	Char    string           `json:"char,omitempty"`
	Top     string           `json:"top,omitempty"`
	Index   int              `json:"index"`
	Status  domain.Status    `json:"status"`
	Reason  domain.Reason    `json:"reason,omitempty"`
	Message string           `json:"message"`
}

// NewSnapshot converts a session into its wire form.
func NewSnapshot(s *domain.Session) Snapshot {
	snap := Snapshot{
		SessionID: s.ID,
		Input:     string(s.Input),
		Cursor:    s.Cursor,
		Stack:     string(s.Stack),
		Status:    s.Status,
		Reason:    s.Reason,
		Steps:     s.Steps,
		Event:     NewEvent(s.LastEvent),
	}
	if ch, ok := s.CurrentChar(); ok {
		snap.CurrentChar = string(ch)
	}
	return snap
}

// NewEvent converts an event into its wire form.
func NewEvent(e domain.Event) Event {
	evt := Event{
		Kind:    e.Kind,
		Index:   e.Index,
		Status:  e.Status,
		Reason:  e.Reason,
		Message: e.Message,
	}
	if e.Char != 0 {
		evt.Char = string(e.Char)
	}
	if e.Top != 0 {
		evt.Top = string(e.Top)
	}
	return evt
}
