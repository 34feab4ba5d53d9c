package types

// LaunchMode describes how an external viewer process is run.
type LaunchMode string

const (
	// Blocking waits for the external process to exit and inspects
	// its status.
	Blocking LaunchMode = "blocking"
	// Detached starts the external process in its own session so it
	// survives this tool's exit; it is never waited on.
	Detached LaunchMode = "detached"
)
