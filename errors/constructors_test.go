package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodeObjectNotFound, "object not found for get")

	require.NotNil(t, err)
	require.Equal(t, CodeObjectNotFound, err.Code())
	require.Equal(t, "object not found for get", err.Message())
	require.Equal(t, ClassificationPermanent, err.Classification())
	require.Nil(t, err.Context())
	require.Nil(t, err.Unwrap())
	require.Equal(t, "[ObjectNotFound 101] object not found for get", err.Error())
}

func TestNew_AllRegisteredCodes(t *testing.T) {
	for _, def := range Definitions() {
		t.Run(def.Name, func(t *testing.T) {
			err := New(def.Code, "test message")
			require.Equal(t, def.Code, err.Code())
			require.Equal(t, def.Classification, err.Classification())
		})
	}
}

func TestNew_UnregisteredCode(t *testing.T) {
	err := New(Code(4242), "from a newer server")

	require.Equal(t, Code(4242), err.Code())
	require.Equal(t, ClassificationPermanent, err.Classification())
	require.Equal(t, "[code 4242] from a newer server", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(CodeInvalidClassName, "invalid class name %q (max %d)", "9Lives", 64)

	require.Equal(t, CodeInvalidClassName, err.Code())
	require.Equal(t, `invalid class name "9Lives" (max 64)`, err.Message())
}

func TestNewFromDefinition(t *testing.T) {
	err := NewFromDefinition(CodeCacheMiss)

	require.Equal(t, CodeCacheMiss, err.Code())
	require.Equal(t, "The results were not found in the cache.", err.Message())

	err = NewFromDefinition(Code(999))
	require.Empty(t, err.Message())
}
