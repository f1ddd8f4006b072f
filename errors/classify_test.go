package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

var _ net.Error = timeoutErr{}

func TestClassify(t *testing.T) {
	existing := New(CodeObjectNotFound, "missing")

	tests := []struct {
		name      string
		err       error
		wantCode  Code
		wantRetry bool
	}{
		{"existing error kept", existing, CodeObjectNotFound, false},
		{"wrapped existing error kept", fmt.Errorf("find: %w", existing), CodeObjectNotFound, false},
		{"deadline exceeded", context.DeadlineExceeded, CodeConnectionFailed, true},
		{"canceled", fmt.Errorf("req: %w", context.Canceled), CodeConnectionFailed, true},
		{"net error", &net.OpError{Op: "dial", Net: "tcp", Err: timeoutErr{}}, CodeConnectionFailed, true},
		{"foreign error", stderrors.New("unexpected"), CodeOtherCause, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			require.NotNil(t, got)
			require.Equal(t, tt.wantCode, got.Code())
			require.Equal(t, tt.wantRetry, got.Classification().IsRetryable())
			require.True(t, stderrors.Is(got, tt.err) || got == existing)
		})
	}
}

func TestClassify_Nil(t *testing.T) {
	require.Nil(t, Classify(nil))
}

func TestFromResponse(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantCode    Code
		wantMessage string
	}{
		{"registered code", `{"code":101,"error":"object not found for get"}`, CodeObjectNotFound, "object not found for get"},
		{"duplicate value", `{"code":137,"error":"duplicate value for a field with unique values"}`, CodeDuplicateValue, "duplicate value for a field with unique values"},
		{"missing message uses description", `{"code":120}`, CodeCacheMiss, "The results were not found in the cache."},
		{"unregistered code kept", `{"code":3001,"error":"new server failure"}`, Code(3001), "new server failure"},
		{"missing code", `{"error":"no code"}`, CodeInvalidJSON, "error response is missing a code"},
		{"malformed body", `<html>502</html>`, CodeInvalidJSON, "malformed error response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromResponse([]byte(tt.body))
			require.Equal(t, tt.wantCode, err.Code())
			require.Equal(t, tt.wantMessage, err.Message())
		})
	}
}

func TestFromResponse_RetryableCodes(t *testing.T) {
	require.True(t, FromResponse([]byte(`{"code":155,"error":"too many requests"}`)).Classification().IsRetryable())
	require.True(t, FromResponse([]byte(`{"code":124,"error":"timeout"}`)).Classification().IsRetryable())
}

func TestClassify_ForeignWrapperKeepsText(t *testing.T) {
	inner := New(CodeTimeout, "server took too long")
	err := fmt.Errorf("fetch GameScore: %w", inner)

	got := Classify(err)
	require.Equal(t, CodeTimeout, got.Code())
	require.Equal(t, inner.Classification(), got.Classification())
	require.Equal(t, "[Timeout 124] fetch GameScore: [Timeout 124] server took too long", got.Error())
	require.True(t, stderrors.Is(got, inner))
}

func TestClassify_ForeignErrorTextNotRepeated(t *testing.T) {
	got := Classify(stderrors.New("socket closed"))
	require.Equal(t, "[OtherCause -1] socket closed", got.Error())
}
