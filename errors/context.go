package errors

import "errors"

// WithContext adds a single context field to an error.
// Returns a new Error with the context field added.
// Existing context fields are preserved.
//
// If err is not an Error, it is converted to one with CodeOtherCause.
// Returns nil if err is nil.
//
// Example:
//
//	err := errors.New(errors.CodeCacheMiss, "no cached results")
//	err = errors.WithContext(err, "class", "GameScore")
//	err = errors.WithContext(err, "policy", "CacheOnly")
func WithContext(err error, key string, value interface{}) Error {
	if err == nil {
		return nil
	}

	return WithContextMap(err, map[string]interface{}{key: value})
}

// WithContextMap adds multiple context fields to an error.
// Returns a new Error with the context fields merged.
// Existing context fields are preserved; new fields override existing ones with the same key.
//
// If err is not an Error, it is converted to one with CodeOtherCause.
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) Error {
	if err == nil {
		return nil
	}

	parseErr := asError(err)

	merged := make(map[string]interface{})
	for k, v := range parseErr.Context() {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}

	return &parseError{
		code:           parseErr.Code(),
		classification: parseErr.Classification(),
		message:        parseErr.Message(),
		context:        merged,
		cause:          parseErr.Unwrap(),
	}
}

// WithClassification overrides the classification of an error.
// Returns a new Error with the specified classification.
//
// This is useful when a collaborator knows more than the default mapping,
// for example when a server reports a normally permanent code for a transient condition.
//
// If err is not an Error, it is converted to one with CodeOtherCause.
// Returns nil if err is nil.
func WithClassification(err error, classification ErrorClassification) Error {
	if err == nil {
		return nil
	}

	parseErr := asError(err)

	return &parseError{
		code:           parseErr.Code(),
		classification: classification,
		message:        parseErr.Message(),
		context:        parseErr.Context(),
		cause:          parseErr.Unwrap(),
	}
}

// asError returns err if it is an Error. If err wraps an Error, the result
// carries that Error's code, classification and context while keeping err's
// own text as the message. Anything else becomes a permanent CodeOtherCause
// failure.
func asError(err error) Error {
	if parseErr, ok := err.(Error); ok {
		return parseErr
	}
	var parseErr Error
	if errors.As(err, &parseErr) {
		return adopt(err, parseErr)
	}
	return &parseError{
		code:           CodeOtherCause,
		classification: ClassificationPermanent,
		message:        err.Error(),
		cause:          err,
	}
}

// adopt rewraps a foreign error around inner so callers see inner's code
// without losing the text the foreign wrapper added.
func adopt(err error, inner Error) Error {
	return &parseError{
		code:           inner.Code(),
		classification: inner.Classification(),
		message:        err.Error(),
		context:        inner.Context(),
		cause:          err,
	}
}
