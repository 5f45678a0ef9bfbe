package utils

import (
	"fmt"
	"log/slog"
	"runtime/debug"
)

// PanicError wraps a panic value as an error
type PanicError struct {
	Value      interface{}
	StackTrace string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// RecoverAsError recovers from a panic and stores it in errPtr as a
// *PanicError. Call it with defer in a function with a named error result:
//
//	func doWork() (err error) {
//	    defer RecoverAsError(&err, logger)
//	    // ... code that might panic
//	}
//
// A nil logger uses slog.Default.
func RecoverAsError(errPtr *error, logger *slog.Logger) {
	r := recover()
	if r == nil {
		return
	}
	if logger == nil {
		logger = slog.Default()
	}
	stack := string(debug.Stack())
	*errPtr = &PanicError{
		Value:      r,
		StackTrace: stack,
	}
	logger.Error("Recovered from panic", "panic", r, "stack", stack)
}
