package errors

import (
	"context"
	stderrors "errors"
	"net"

	jsoniter "github.com/json-iterator/go"
)

// Classify tags a failure reported by a collaborator with exactly one code.
//
// Errors already carrying a code are returned unchanged. A foreign error that
// wraps one, such as fmt.Errorf("fetch: %w", err), keeps the wrapped code
// and classification and its own message. Cancellations,
// deadlines and net.Error values become CodeConnectionFailed. Anything else
// becomes CodeOtherCause. The original error stays reachable through Unwrap.
//
// Returns nil if err is nil.
func Classify(err error) Error {
	if err == nil {
		return nil
	}

	if parseErr, ok := err.(Error); ok {
		return parseErr
	}
	var parseErr Error
	if stderrors.As(err, &parseErr) {
		return adopt(err, parseErr)
	}

	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return Wrap(err, CodeConnectionFailed, "request did not complete")
	}

	var netErr net.Error
	if stderrors.As(err, &netErr) {
		return Wrap(err, CodeConnectionFailed, "the connection to the server failed")
	}

	return Wrap(err, CodeOtherCause, err.Error())
}

// serverError is the body the Parse server returns for failed requests.
type serverError struct {
	Code  *int   `json:"code"`
	Error string `json:"error"`
}

// FromResponse decodes a server error body of the form {"code": 101, "error": "..."}.
//
// Bodies that are not valid JSON, or that carry no code, produce a
// CodeInvalidJSON failure. Codes outside the registry are kept as reported
// since the server is the authority on its own taxonomy.
func FromResponse(body []byte) Error {
	var resp serverError
	if err := jsoniter.Unmarshal(body, &resp); err != nil {
		return Wrap(err, CodeInvalidJSON, "malformed error response")
	}
	if resp.Code == nil {
		return New(CodeInvalidJSON, "error response is missing a code")
	}

	code := Code(*resp.Code)
	message := resp.Error
	if message == "" {
		message = code.Description()
	}
	return New(code, message)
}
