package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var parseErr errors.Error
//	if errors.As(err, &parseErr) {
//	    code := parseErr.Code()
//	}
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the Code from an error.
// Returns CodeOtherCause if the error is nil or not an Error.
//
// This function handles the error chain and will extract the code from
// the outermost Error in the chain.
//
// Example:
//
//	if errors.GetCode(err) == errors.CodeCacheMiss {
//	    // Nothing cached yet
//	}
func GetCode(err error) Code {
	if err == nil {
		return CodeOtherCause
	}

	var parseErr Error
	if stderrors.As(err, &parseErr) {
		return parseErr.Code()
	}

	return CodeOtherCause
}

// HasCode reports whether any Error in err's chain carries code.
// Unlike GetCode it looks past the outermost Error, so a cache miss that wraps
// a connection failure matches both CodeCacheMiss and CodeConnectionFailed.
func HasCode(err error, code Code) bool {
	for err != nil {
		if parseErr, ok := err.(Error); ok && parseErr.Code() == code {
			return true
		}
		switch x := err.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range x.Unwrap() {
				if HasCode(inner, code) {
					return true
				}
			}
			return false
		case interface{ Unwrap() error }:
			err = x.Unwrap()
		default:
			return false
		}
	}
	return false
}

// GetClassification extracts the ErrorClassification from an error.
// Returns ClassificationPermanent if the error is nil or not an Error.
// This is a safe default that prevents inappropriate retry attempts.
func GetClassification(err error) ErrorClassification {
	if err == nil {
		return ClassificationPermanent
	}

	var parseErr Error
	if stderrors.As(err, &parseErr) {
		return parseErr.Classification()
	}

	return ClassificationPermanent
}

// IsRetryable returns true if the error is classified as retryable.
// Returns false if the error is nil or not an Error (safe default).
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}
