/*
Package ports defines the driven ports (interfaces) used by Balance hosts.

The engine itself has no dependencies. Ports exist for the content around it:
the exercise catalogue that lessons, checks and the interactive stepper read from.

# Key Interfaces

  - ExerciseLoader: Responsible for loading Exercise definitions (e.g., from Loam or Memory).
  - Watchable: Optional capability of loaders that can signal content changes.
*/
package ports
