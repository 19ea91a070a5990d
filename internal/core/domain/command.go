package domain

// Command describes one external tool invocation. The orchestrator treats the
// invoked tool as an opaque synchronous call with a success or failure
// outcome.
type Command struct {
	Path string
	Args []string
	// Dir is the working directory; empty means the current directory.
	Dir string
	// Env holds extra KEY=VALUE entries appended to the process environment.
	Env []string
}
