package errors

// ErrorClassification indicates whether an error should trigger a retry.
// Collaborators use it to decide between retrying an operation and surfacing
// a permanent failure; the query executor also uses it to decide whether a
// network failure may fall back to cached results.
type ErrorClassification string

const (
	// ClassificationRetryable indicates temporary failures that may succeed on retry.
	// Examples: failed connections, server timeouts, request limits.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on retry.
	// Examples: invalid queries, missing objects, taken usernames.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications lists the codes that are retryable by default.
// Every other code, registered or not, is permanent.
var defaultClassifications = map[Code]ErrorClassification{
	CodeInternalServer:       ClassificationRetryable,
	CodeConnectionFailed:     ClassificationRetryable,
	CodeTimeout:              ClassificationRetryable,
	CodeRequestLimitExceeded: ClassificationRetryable,
}

// getDefaultClassification returns the default classification for an error code.
// Returns ClassificationPermanent if the code is not in the map (safe default).
func getDefaultClassification(code Code) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
