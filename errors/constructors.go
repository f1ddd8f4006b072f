package errors

import "fmt"

// New creates a new Error with the given code and message.
// The error classification is determined by the code using default mappings.
//
// Example:
//
//	err := errors.New(errors.CodeObjectNotFound, "no object with id abc123")
func New(code Code, message string) Error {
	return &parseError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
	}
}

// Newf creates a new Error with a formatted message.
// The error classification is determined by the code using default mappings.
//
// Example:
//
//	err := errors.Newf(errors.CodeInvalidClassName, "invalid class name %q", name)
func Newf(code Code, format string, args ...interface{}) Error {
	return New(code, fmt.Sprintf(format, args...))
}

// NewFromDefinition creates a new Error whose message is the registered
// description of code. Unregistered codes produce an empty message.
//
// Example:
//
//	err := errors.NewFromDefinition(errors.CodeCacheMiss)
//	fmt.Println(err.Message()) // The results were not found in the cache.
func NewFromDefinition(code Code) Error {
	return New(code, code.Description())
}
