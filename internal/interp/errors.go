package interp

import "fmt"

// ErrorValue represents a runtime error. Errors are threaded through the
// tree-walker as values and propagate to the top-level invocation, where
// the CLI reports them and exits non-zero.
type ErrorValue struct {
	Message string
}

func (e *ErrorValue) Type() string   { return "ERROR" }
func (e *ErrorValue) String() string { return e.Message }

// newError creates a new ErrorValue.
func newError(format string, args ...interface{}) *ErrorValue {
	return &ErrorValue{Message: fmt.Sprintf(format, args...)}
}

// isError checks if a value is a runtime error.
func isError(val Value) bool {
	if val != nil {
		return val.Type() == "ERROR"
	}
	return false
}
