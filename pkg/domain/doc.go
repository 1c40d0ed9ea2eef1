/*
Package domain contains the core domain models of the Balance engine.

It defines the fundamental entities of a bracket validation run: the bracket
families, the Session snapshot, the Event emitted by every step and the
Exercise catalogue entries. This package is kept pure and free of external
dependencies like I/O or presentation concerns.

# Key Entities

  - Session: Immutable snapshot of one validation run (input, cursor, stack, status).
  - Event: Neutral record of what the last step did. Presentation layers own all styling.
  - Reason: Why a session ended in InvalidRejected.
  - Exercise: A named expression with an expected verdict, used by lessons and checks.
*/
package domain
