package domain

// SessionDiff represents the changes between two session snapshots.
// Presentation layers use it to highlight what a step did to the stack.
type SessionDiff struct {
	SessionID string  `json:"session_id"`
	Cursor    *int    `json:"cursor,omitempty"`
	Status    *Status `json:"status,omitempty"`

	// Pushed lists characters added on top, in push order.
	Pushed []rune `json:"-"`
	// Popped lists characters removed from the top, top first.
	Popped []rune `json:"-"`

	// InputChanged is true when the expression itself differs.
	InputChanged bool `json:"input_changed,omitempty"`
}

// Diff calculates the difference between oldSession and newSession.
// If oldSession is nil, the diff describes newSession from an empty session.
func Diff(oldSession, newSession *Session) *SessionDiff {
	if newSession == nil {
		return nil
	}

	base := oldSession
	if base == nil {
		base = &Session{Status: StatusNotStarted}
	}

	diff := &SessionDiff{SessionID: newSession.ID}

	if base.Cursor != newSession.Cursor {
		diff.Cursor = &newSession.Cursor
	}
	if base.Status != newSession.Status {
		diff.Status = &newSession.Status
	}
	diff.InputChanged = string(base.Input) != string(newSession.Input)
	diff.Pushed, diff.Popped = diffStack(base.Stack, newSession.Stack)

	if diff.IsEmpty() {
		return nil
	}
	return diff
}

// diffStack compares two stacks by their common bottom prefix.
func diffStack(old, new []rune) (pushed, popped []rune) {
	prefix := 0
	for prefix < len(old) && prefix < len(new) && old[prefix] == new[prefix] {
		prefix++
	}
	for i := len(old) - 1; i >= prefix; i-- {
		popped = append(popped, old[i])
	}
	if len(new) > prefix {
		pushed = append(pushed, new[prefix:]...)
	}
	return pushed, popped
}

// IsEmpty checks if the diff contains any actionable changes.
func (d *SessionDiff) IsEmpty() bool {
	return d.Cursor == nil &&
		d.Status == nil &&
		!d.InputChanged &&
		len(d.Pushed) == 0 &&
		len(d.Popped) == 0
}
