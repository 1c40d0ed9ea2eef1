package domain

import (
	"context"
	"time"
)

// EventKind defines what a single operation did to the session.
type EventKind string

const (
	EventNone           EventKind = "none" // Fresh session
	EventInput          EventKind = "input"
	EventPush           EventKind = "push"
	EventPop            EventKind = "pop"
	EventRejectEmpty    EventKind = "reject_empty"
	EventRejectMismatch EventKind = "reject_mismatch"
	EventIgnore         EventKind = "ignore"
	EventVerdict        EventKind = "verdict"
)

// MessageIdle is the description of a session waiting for input.
const MessageIdle = "enter a bracket expression and step through it"

// Event is the neutral record of what the last operation did.
// Char and Top are zero when not applicable.
type Event struct {
	Kind    EventKind `json:"kind"`
	Char    rune      `json:"-"`
	Top     rune      `json:"-"`
	Index   int       `json:"index"`
	Status  Status    `json:"status"`
	Reason  Reason    `json:"reason,omitempty"`
	Message string    `json:"message"`
}

// HookType defines the category of a lifecycle notification.
type HookType string

const (
	HookStep    HookType = "step"
	HookVerdict HookType = "verdict"
	HookReset   HookType = "reset"
)

// EventBase contains common fields for all hook payloads.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      HookType  `json:"type"`
	SessionID string    `json:"session_id"`
}

// StepEvent is delivered to lifecycle hooks.
type StepEvent struct {
	EventBase
	Event  Event `json:"event"`
	Cursor int   `json:"cursor"`
	Depth  int   `json:"depth"`
}

// LifecycleHooks defines callbacks for engine observability.
// Any of them may be nil.
type LifecycleHooks struct {
	OnStep    func(context.Context, *StepEvent)
	OnVerdict func(context.Context, *StepEvent)
	OnReset   func(context.Context, *StepEvent)
}
