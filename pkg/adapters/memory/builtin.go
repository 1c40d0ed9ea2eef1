package memory

import "github.com/aretw0/balance/pkg/domain"

// builtinExercises is the default lesson set used when no lessons directory is configured.
var builtinExercises = []domain.Exercise{
	{
		ID:     "01-pair",
		Title:  "A single pair",
		Input:  "()",
		Expect: domain.ExpectValid,
		Notes:  "Push the **opening** bracket, then pop it when its partner arrives.",
	},
	{
		ID:     "02-nested",
		Title:  "Nested families",
		Input:  "{[()]}",
		Expect: domain.ExpectValid,
		Notes:  "Three pushes, then three pops in reverse order. The stack is empty at the end.",
	},
	{
		ID:     "03-noise",
		Title:  "Other characters",
		Input:  "a(b)c",
		Expect: domain.ExpectValid,
		Notes:  "Characters that are not brackets consume a step but never touch the stack.",
	},
	{
		ID:     "04-underflow",
		Title:  "Closing too early",
		Input:  ")(",
		Expect: domain.ExpectInvalid,
		Reason: domain.ReasonEmptyStackUnderflow,
		Notes:  "A closing bracket with nothing on the stack can never be matched.",
	},
	{
		ID:     "05-mismatch",
		Title:  "Wrong family",
		Input:  "{[(])}",
		Expect: domain.ExpectInvalid,
		Reason: domain.ReasonBracketMismatch,
		Notes:  "`]` arrives while `(` is on top. Pairs must close in the reverse order they opened.",
	},
	{
		ID:     "06-unclosed",
		Title:  "Left open",
		Input:  "((",
		Expect: domain.ExpectInvalid,
		Reason: domain.ReasonUnclosedBrackets,
		Notes:  "Every character was read, but the stack is not empty.",
	},
	{
		ID:     "07-empty",
		Title:  "Nothing at all",
		Input:  "",
		Expect: domain.ExpectValid,
		Notes:  "An empty expression is balanced: the stack is empty at the end.",
	},
}

// Builtin returns a loader with the default lesson set.
func Builtin() *Loader {
	l, err := NewLoader(builtinExercises...)
	if err != nil {
		panic(err) // static data
	}
	return l
}
