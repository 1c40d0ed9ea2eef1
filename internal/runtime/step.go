package runtime

import (
	"context"
	"fmt"

	"github.com/aretw0/balance/pkg/domain"
)

// Step processes exactly one character, or emits the verdict once the input is exhausted.
// On a terminal session it returns the same session and its last event unchanged.
func (e *Engine) Step(ctx context.Context, current *domain.Session) (*domain.Session, domain.Event) {
	if current == nil {
		current = e.New(ctx)
	}
	if current.Terminal() {
		return current, current.LastEvent
	}

	next := current.Clone()
	next.Steps++

	if next.Cursor >= len(next.Input) {
		e.verdict(next)
	} else {
		e.consume(next, next.Input[next.Cursor])
	}

	e.logger.Debug("step",
		"session_id", next.ID,
		"cursor", next.Cursor,
		"kind", next.LastEvent.Kind,
		"status", next.Status,
		"depth", len(next.Stack),
	)

	e.emit(ctx, domain.HookStep, next)
	if next.Terminal() {
		e.logger.Debug("verdict", "session_id", next.ID, "status", next.Status, "reason", next.Reason)
		e.emit(ctx, domain.HookVerdict, next)
	}
	return next, next.LastEvent
}

// Run steps until the session is terminal and returns every event in order.
func (e *Engine) Run(ctx context.Context, current *domain.Session) (*domain.Session, []domain.Event) {
	if current == nil {
		current = e.New(ctx)
	}
	// One step per character plus the end-of-input verdict.
	events := make([]domain.Event, 0, current.Remaining()+1)
	for !current.Terminal() {
		var evt domain.Event
		current, evt = e.Step(ctx, current)
		events = append(events, evt)
	}
	return current, events
}

// verdict decides the outcome once every character was consumed.
func (e *Engine) verdict(s *domain.Session) {
	s.Current, s.HasCurrent = 0, false

	evt := domain.Event{Kind: domain.EventVerdict, Index: s.Cursor}
	if len(s.Stack) == 0 {
		s.Status = domain.StatusValidAccepted
		evt.Message = "expression is valid (stack empty at end)"
	} else {
		s.Status = domain.StatusInvalidRejected
		s.Reason = domain.ReasonUnclosedBrackets
		evt.Reason = s.Reason
		evt.Message = "expression is invalid (stack not empty at end)"
	}
	evt.Status = s.Status
	s.LastEvent = evt
}

// consume applies ch to the session and advances the cursor.
func (e *Engine) consume(s *domain.Session, ch rune) {
	evt := domain.Event{Char: ch, Index: s.Cursor}
	s.Current, s.HasCurrent = ch, true
	s.Status = domain.StatusInProgress
	s.Cursor++

	switch {
	case domain.IsOpening(ch):
		s.Stack = append(s.Stack, ch)
		evt.Kind = domain.EventPush
		evt.Message = fmt.Sprintf("pushed opening bracket '%c'", ch)

	case domain.IsClosing(ch):
		top, ok := s.Top()
		switch {
		case !ok:
			s.Status = domain.StatusInvalidRejected
			s.Reason = domain.ReasonEmptyStackUnderflow
			evt.Kind = domain.EventRejectEmpty
			evt.Message = fmt.Sprintf("closing bracket '%c' found with empty stack", ch)
		case domain.Matches(top, ch):
			s.Stack = s.Stack[:len(s.Stack)-1]
			evt.Kind = domain.EventPop
			evt.Top = top
			evt.Message = fmt.Sprintf("closing bracket '%c' matched and popped '%c'", ch, top)
		default:
			s.Status = domain.StatusInvalidRejected
			s.Reason = domain.ReasonBracketMismatch
			evt.Kind = domain.EventRejectMismatch
			evt.Top = top
			evt.Message = fmt.Sprintf("closing bracket '%c' does not match top '%c'", ch, top)
		}

	default:
		evt.Kind = domain.EventIgnore
		evt.Message = fmt.Sprintf("character '%c' ignored", ch)
	}

	evt.Status = s.Status
	evt.Reason = s.Reason
	s.LastEvent = evt
}

func inputMessage(n int) string {
	if n == 1 {
		return "input set (1 character)"
	}
	return fmt.Sprintf("input set (%d characters)", n)
}
