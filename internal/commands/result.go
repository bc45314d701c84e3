package commands

// Result is the outcome of one dispatched command. Every handler returns
// this same shape: turns advance only on success, never on validation
// failure, so mistyped or currently-impossible actions are free.
type Result struct {
	Success       bool
	Message       string
	IncrementTurn bool
}

// Failure builds a failed Result. Failures never consume a turn.
func Failure(message string) Result {
	return Result{Success: false, Message: message}
}

// SuccessResult builds a successful Result that consumes a turn.
func SuccessResult(message string) Result {
	return Result{Success: true, Message: message, IncrementTurn: true}
}

// Info builds a successful Result for a purely informational action that
// does not consume a turn.
func Info(message string) Result {
	return Result{Success: true, Message: message}
}
