package domain

import "strings"

// Expectation is the verdict an exercise expects.
type Expectation string

const (
	ExpectValid   Expectation = "valid"
	ExpectInvalid Expectation = "invalid"
)

// ParseExpectation normalizes the loose spellings accepted in exercise metadata.
func ParseExpectation(s string) (Expectation, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "valid", "ok", "true", "yes", "balanced":
		return ExpectValid, true
	case "invalid", "fail", "false", "no", "unbalanced":
		return ExpectInvalid, true
	default:
		return "", false
	}
}

// Exercise is a named expression with an expected outcome.
type Exercise struct {
	ID     string
	Title  string
	Input  string
	Expect Expectation
	// Reason optionally pins the rejection reason of an invalid exercise.
	Reason Reason
	// Notes is free-form markdown shown alongside the exercise.
	Notes string
}

// Check reports whether a terminal session satisfies the exercise.
func (e Exercise) Check(s *Session) bool {
	if s == nil || !s.Terminal() {
		return false
	}
	switch e.Expect {
	case ExpectValid:
		return s.Status == StatusValidAccepted
	case ExpectInvalid:
		if s.Status != StatusInvalidRejected {
			return false
		}
		return e.Reason == ReasonNone || e.Reason == s.Reason
	default:
		return false
	}
}

// ParseReason normalizes a rejection reason, accepting short aliases.
func ParseReason(s string) (Reason, bool) {
	switch strings.ToLower(strings.TrimSpace(strings.ReplaceAll(s, "-", "_"))) {
	case "":
		return ReasonNone, true
	case "empty_stack_underflow", "underflow", "empty_stack":
		return ReasonEmptyStackUnderflow, true
	case "bracket_mismatch", "mismatch":
		return ReasonBracketMismatch, true
	case "unclosed_brackets", "unclosed":
		return ReasonUnclosedBrackets, true
	default:
		return ReasonNone, false
	}
}
