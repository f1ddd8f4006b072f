package errors

import (
	jsoniter "github.com/json-iterator/go"
)

// Result is the uniform outcome shape surfaced to application code.
// Successful operations report Succeeded with a zero code; failures report the
// registered code and message. Application code is expected to switch on Code,
// never on Message.
//
// The wrapped error chain is intentionally excluded to prevent information leakage.
type Result struct {
	// Succeeded reports whether the operation completed without error.
	Succeeded bool `json:"succeeded"`

	// Code is the numeric error code; zero on success.
	Code int `json:"code"`

	// Message is the human-readable error message; empty on success.
	Message string `json:"message"`

	// Classification indicates whether the error is retryable or permanent.
	// Omitted on success.
	Classification string `json:"classification,omitempty"`

	// Context contains optional metadata about the error.
	// Omitted from JSON if empty.
	Context map[string]interface{} `json:"context,omitempty"`
}

// ToResult converts any error to a Result suitable for JSON serialization.
// A nil error produces a successful Result.
//
// For Error instances, extracts code, message, classification and context.
// For standard errors, uses CodeOtherCause, ClassificationPermanent and the error message.
func ToResult(err error) Result {
	if err == nil {
		return Result{Succeeded: true}
	}

	result := Result{
		Code:           int(GetCode(err)),
		Message:        err.Error(),
		Classification: string(GetClassification(err)),
	}

	var parseErr Error
	if As(err, &parseErr) {
		result.Message = parseErr.Message()
		result.Context = parseErr.Context()
	}

	return result
}

// MarshalJSON implements json.Marshaler for parseError.
// Errors marshal to the Result shape.
//
// Example:
//
//	err := errors.New(errors.CodeObjectNotFound, "no such object")
//	data, _ := json.Marshal(err)
//	// {"succeeded":false,"code":101,"message":"no such object","classification":"PERMANENT"}
func (e *parseError) MarshalJSON() ([]byte, error) {
	data, err := jsoniter.Marshal(Result{
		Code:           int(e.code),
		Message:        e.message,
		Classification: string(e.classification),
		Context:        e.context,
	})
	if err != nil {
		return nil, &parseError{
			code:           CodeInvalidJSON,
			classification: ClassificationPermanent,
			message:        "failed to marshal error result",
			cause:          err,
		}
	}
	return data, nil
}
