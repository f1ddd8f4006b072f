package errors

import "fmt"

// parseError is the concrete implementation of Error.
// It is private to enforce construction through package functions.
type parseError struct {
	code           Code
	classification ErrorClassification
	message        string
	context        map[string]interface{}
	cause          error
}

// Error returns the string representation of the error.
// Format: "[Name code] message" or "[Name code] message: cause" if cause is present.
// Unregistered codes render as "[code n]".
func (e *parseError) Error() string {
	if e.cause != nil && e.cause.Error() != e.message {
		return fmt.Sprintf("[%s] %s: %v", e.label(), e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.label(), e.message)
}

func (e *parseError) label() string {
	if def, ok := registry[e.code]; ok {
		return fmt.Sprintf("%s %d", def.Name, int(e.code))
	}
	return fmt.Sprintf("code %d", int(e.code))
}

// Code returns the error code.
func (e *parseError) Code() Code {
	return e.code
}

// Classification returns the error classification.
func (e *parseError) Classification() ErrorClassification {
	return e.classification
}

// Message returns the error message.
func (e *parseError) Message() string {
	return e.message
}

// Context returns a copy of the context map, or nil if none is attached.
func (e *parseError) Context() map[string]interface{} {
	return copyContext(e.context)
}

// Unwrap returns the wrapped error for standard library compatibility.
func (e *parseError) Unwrap() error {
	return e.cause
}

func copyContext(ctx map[string]interface{}) map[string]interface{} {
	if ctx == nil {
		return nil
	}
	out := make(map[string]interface{}, len(ctx))
	for k, v := range ctx {
		out[k] = v
	}
	return out
}
