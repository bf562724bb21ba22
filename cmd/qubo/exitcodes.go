package main

// Exit codes.
const (
	ExitSuccess  = 0 // Success
	ExitError    = 1 // Usage, input, or runtime error
	ExitCapacity = 2 // Model exceeds the exact-solver enumeration ceiling
)
