package domain

// Bracket families.
const (
	FamilyParen   = "paren"
	FamilyBrace   = "brace"
	FamilyBracket = "bracket"
)

// closingToOpening maps every recognized closing bracket to its opening pair.
var closingToOpening = map[rune]rune{
	')': '(',
	'}': '{',
	']': '[',
}

// IsOpening reports whether r is one of '(', '{', '['.
func IsOpening(r rune) bool {
	return r == '(' || r == '{' || r == '['
}

// IsClosing reports whether r is one of ')', '}', ']'.
func IsClosing(r rune) bool {
	_, ok := PairOf(r)
	return ok
}

// PairOf returns the opening bracket paired with a closing bracket.
func PairOf(closing rune) (rune, bool) {
	open, ok := closingToOpening[closing]
	return open, ok
}

// Matches reports whether open and close form a matching pair.
func Matches(open, close rune) bool {
	want, ok := PairOf(close)
	return ok && want == open
}

// Family returns the bracket family of r, or "" for non-bracket characters.
func Family(r rune) string {
	switch r {
	case '(', ')':
		return FamilyParen
	case '{', '}':
		return FamilyBrace
	case '[', ']':
		return FamilyBracket
	default:
		return ""
	}
}
