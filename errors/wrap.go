package errors

import (
	"errors"
	"fmt"
)

// Wrap wraps an error with a code and message while preserving the original error.
// The wrapped error is accessible via Unwrap() and compatible with errors.Is and errors.As.
//
// If the wrapped error is an Error, its classification is preserved.
// Otherwise, the default classification for the code is used.
//
// Returns nil if err is nil.
//
// Example:
//
//	body, err := network.Find(ctx, q)
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeConnectionFailed, "query request failed")
//	}
func Wrap(err error, code Code, message string) Error {
	if err == nil {
		return nil
	}

	return &parseError{
		code:           code,
		classification: inheritClassification(err, code),
		message:        message,
		cause:          err,
	}
}

// Wrapf wraps an error with a formatted message while preserving the original error.
//
// Returns nil if err is nil.
func Wrapf(err error, code Code, format string, args ...interface{}) Error {
	if err == nil {
		return nil
	}

	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps an error and attaches context metadata in a single operation.
// The context map is copied to prevent external mutation.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := store.Save(ctx, entry); err != nil {
//	    return errors.WrapWithContext(err, errors.CodeCacheMiss, "cache write failed", map[string]interface{}{
//	        "class": q.ClassName,
//	        "key":   key,
//	    })
//	}
func WrapWithContext(err error, code Code, message string, ctx map[string]interface{}) Error {
	if err == nil {
		return nil
	}

	return &parseError{
		code:           code,
		classification: inheritClassification(err, code),
		message:        message,
		context:        copyContext(ctx),
		cause:          err,
	}
}

// inheritClassification returns the classification of the outermost Error in
// err's chain, falling back to the default classification of code.
func inheritClassification(err error, code Code) ErrorClassification {
	var parseErr Error
	if errors.As(err, &parseErr) {
		return parseErr.Classification()
	}
	return getDefaultClassification(code)
}
