package domain

// Status defines where a session is in its lifecycle.
type Status string

const (
	StatusNotStarted      Status = "not_started"
	StatusInProgress      Status = "in_progress"
	StatusValidAccepted   Status = "valid_accepted"   // Terminal
	StatusInvalidRejected Status = "invalid_rejected" // Terminal
)

// Terminal reports whether the status is a sink state.
func (s Status) Terminal() bool {
	return s == StatusValidAccepted || s == StatusInvalidRejected
}

// Reason explains an InvalidRejected verdict.
// It is a validation outcome, not an error.
type Reason string

const (
	ReasonNone                Reason = ""
	ReasonEmptyStackUnderflow Reason = "empty_stack_underflow"
	ReasonBracketMismatch     Reason = "bracket_mismatch"
	ReasonUnclosedBrackets    Reason = "unclosed_brackets"
)

// Session represents the snapshot of one validation run.
// Engines never mutate a Session in place: every operation returns a new value.
type Session struct {
	// ID correlates log lines and metrics of a single run. Never persisted.
	ID string

	// Input is the expression under validation, one element per code point.
	// It is fixed once the first step is taken.
	Input []rune

	// Cursor is the index of the next character to process.
	Cursor int

	// Stack holds the open brackets, bottom first. The top is the last element.
	Stack []rune

	// Current is the character processed by the most recent step.
	// Only meaningful when HasCurrent is true.
	Current    rune
	HasCurrent bool

	Status Status

	// Reason is set when Status is StatusInvalidRejected.
	Reason Reason

	// LastEvent describes what the last operation did.
	LastEvent Event

	// Steps counts the Step calls that changed the session.
	Steps int
}

// NewSession creates a clean session with no input.
func NewSession(id string) *Session {
	return &Session{
		ID:     id,
		Input:  []rune{},
		Stack:  []rune{},
		Status: StatusNotStarted,
		LastEvent: Event{
			Kind:    EventNone,
			Status:  StatusNotStarted,
			Message: MessageIdle,
		},
	}
}

// Terminal reports whether the session has reached a verdict.
func (s *Session) Terminal() bool {
	return s.Status.Terminal()
}

// Remaining returns the number of characters not yet processed.
func (s *Session) Remaining() int {
	return len(s.Input) - s.Cursor
}

// CurrentChar returns the character processed by the last step, if any.
func (s *Session) CurrentChar() (rune, bool) {
	return s.Current, s.HasCurrent
}

// Top returns the stack top, if any.
func (s *Session) Top() (rune, bool) {
	if len(s.Stack) == 0 {
		return 0, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// StackTopFirst returns a copy of the stack in display order, top first.
func (s *Session) StackTopFirst() []rune {
	out := make([]rune, len(s.Stack))
	for i, r := range s.Stack {
		out[len(s.Stack)-1-i] = r
	}
	return out
}

// Clone returns a copy that does not share the stack with s.
// Input is shared: it is never written after SetInput.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	next := *s
	next.Stack = make([]rune, len(s.Stack))
	copy(next.Stack, s.Stack)
	return &next
}

// Trace is the full record of a session run to completion.
type Trace struct {
	Session *Session
	Events  []Event
}

// Valid reports whether the traced expression was accepted.
func (t *Trace) Valid() bool {
	return t.Session != nil && t.Session.Status == StatusValidAccepted
}
