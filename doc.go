/*
Package balance is a step-wise bracket validation engine designed for teaching the classic
stack-based matching algorithm.

The engine consumes an expression one character at a time and exposes every intermediate
state: the cursor, the stack of open brackets, the character just processed and a neutral
description of what happened. A run ends in one of two verdicts: ValidAccepted or
InvalidRejected (with a Reason).

# Concept

Every operation takes an immutable Session snapshot and returns a new one. The host
("Presentation Layer") owns rendering: a terminal stepper, a JSON trace, or anything else.
Only the six characters ( ) { } [ ] are meaningful; every other character consumes a step
and is reported as ignored.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/balance"
		"github.com/aretw0/balance/pkg/domain"
	)

	func main() {
		eng := balance.New()
		ctx := context.Background()

		s, err := eng.Start(ctx, "{[()]}")
		if err != nil {
			log.Fatal(err)
		}

		// Main Loop: Step -> Render until terminal
		for !s.Terminal() {
			var evt domain.Event
			s, evt = eng.Step(ctx, s)
			fmt.Println(evt.Message, string(s.Stack))
		}

		fmt.Println("verdict:", s.Status)
	}
*/
package balance
