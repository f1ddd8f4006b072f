package errors

// Error extends the standard error interface with the structured information
// every Parse failure carries.
//
// Error provides the numeric code for classification by application code,
// the retry classification, contextual metadata, and compatibility with
// standard library error handling (errors.Is, errors.As, errors.Unwrap).
type Error interface {
	error

	// Code returns the registered code identifying the failure.
	Code() Code

	// Classification returns whether the error is retryable or permanent.
	Classification() ErrorClassification

	// Message returns the human-readable error message.
	Message() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the wrapped error for errors.Is and errors.As compatibility.
	// Returns nil if this error does not wrap another error.
	Unwrap() error
}
