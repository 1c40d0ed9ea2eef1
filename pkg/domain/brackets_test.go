package domain

import "testing"

func TestBrackets(t *testing.T) {
	tests := []struct {
		r       rune
		opening bool
		closing bool
		family  string
	}{
		{'(', true, false, FamilyParen},
		{')', false, true, FamilyParen},
		{'{', true, false, FamilyBrace},
		{'}', false, true, FamilyBrace},
		{'[', true, false, FamilyBracket},
		{']', false, true, FamilyBracket},
		{'<', false, false, ""},
		{'a', false, false, ""},
		{'λ', false, false, ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			if got := IsOpening(tt.r); got != tt.opening {
				t.Errorf("IsOpening(%q) = %v, want %v", tt.r, got, tt.opening)
			}
			if got := IsClosing(tt.r); got != tt.closing {
				t.Errorf("IsClosing(%q) = %v, want %v", tt.r, got, tt.closing)
			}
			if got := Family(tt.r); got != tt.family {
				t.Errorf("Family(%q) = %q, want %q", tt.r, got, tt.family)
			}
		})
	}
}

func TestMatches(t *testing.T) {
	pairs := map[rune]rune{'(': ')', '{': '}', '[': ']'}
	for open, close := range pairs {
		if !Matches(open, close) {
			t.Errorf("expected %q to match %q", open, close)
		}
		if got, ok := PairOf(close); !ok || got != open {
			t.Errorf("PairOf(%q) = %q, %v", close, got, ok)
		}
	}

	if Matches('(', ']') {
		t.Error("'(' must not match ']'")
	}
	if Matches(')', '(') {
		t.Error("reversed pair must not match")
	}
	if _, ok := PairOf('('); ok {
		t.Error("PairOf must reject opening brackets")
	}
}
