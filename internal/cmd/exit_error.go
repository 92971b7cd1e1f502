package cmd

// ExitError carries a specific process exit code from command logic to
// Execute. Message, when non-empty, is printed to stderr verbatim.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}
