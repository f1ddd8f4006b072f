package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithContext(t *testing.T) {
	err := New(CodeCacheMiss, "no cached results")
	err = WithContext(err, "class", "GameScore")
	err = WithContext(err, "policy", "CacheOnly")

	require.Equal(t, CodeCacheMiss, err.Code())
	require.Equal(t, map[string]interface{}{
		"class":  "GameScore",
		"policy": "CacheOnly",
	}, err.Context())
}

func TestWithContext_Immutable(t *testing.T) {
	original := WithContext(New(CodeTimeout, "slow"), "attempt", 1)
	updated := WithContext(original, "attempt", 2)

	require.Equal(t, 1, original.Context()["attempt"])
	require.Equal(t, 2, updated.Context()["attempt"])
}

func TestWithContext_NilError(t *testing.T) {
	require.Nil(t, WithContext(nil, "k", "v"))
	require.Nil(t, WithContextMap(nil, map[string]interface{}{"k": "v"}))
	require.Nil(t, WithClassification(nil, ClassificationRetryable))
}

func TestWithContext_StandardError(t *testing.T) {
	stdErr := stderrors.New("disk full")
	err := WithContext(stdErr, "path", "/tmp/cache")

	require.Equal(t, CodeOtherCause, err.Code())
	require.Equal(t, ClassificationPermanent, err.Classification())
	require.Equal(t, "disk full", err.Message())
	require.Equal(t, stdErr, err.Unwrap())
	require.Equal(t, "/tmp/cache", err.Context()["path"])
}

func TestWithContextMap_Overrides(t *testing.T) {
	err := WithContextMap(New(CodeInvalidQuery, "bad query"), map[string]interface{}{
		"class": "GameScore",
		"limit": -1,
	})
	err = WithContextMap(err, map[string]interface{}{"limit": -2})

	require.Equal(t, "GameScore", err.Context()["class"])
	require.Equal(t, -2, err.Context()["limit"])
}

func TestWithClassification(t *testing.T) {
	err := New(CodeObjectNotFound, "eventually consistent read")
	err = WithContext(err, "id", "abc")
	retryable := WithClassification(err, ClassificationRetryable)

	require.True(t, retryable.Classification().IsRetryable())
	require.False(t, err.Classification().IsRetryable())
	require.Equal(t, CodeObjectNotFound, retryable.Code())
	require.Equal(t, "abc", retryable.Context()["id"])
}

func TestWithContext_ForeignWrapper(t *testing.T) {
	inner := New(CodeObjectNotFound, "missing")
	err := WithContext(fmt.Errorf("load: %w", inner), "class", "GameScore")

	require.Equal(t, CodeObjectNotFound, err.Code())
	require.Equal(t, "load: [ObjectNotFound 101] missing", err.Message())
	require.Equal(t, "GameScore", err.Context()["class"])
	require.True(t, stderrors.Is(err, inner))
}
