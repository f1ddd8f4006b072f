package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_DocumentedCodes(t *testing.T) {
	tests := []struct {
		code Code
		want int
		name string
	}{
		{CodeInternalServer, 1, "InternalServer"},
		{CodeConnectionFailed, 100, "ConnectionFailed"},
		{CodeObjectNotFound, 101, "ObjectNotFound"},
		{CodeCacheMiss, 120, "CacheMiss"},
		{CodeTimeout, 124, "Timeout"},
		{CodeDuplicateValue, 137, "DuplicateValue"},
		{CodeScriptError, 141, "ScriptError"},
		{CodeRequestLimitExceeded, 155, "RequestLimitExceeded"},
		{CodeInvalidEventName, 160, "InvalidEventName"},
		{CodeUserIDMismatch, 209, "UserIDMismatch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, int(tt.code))
			require.Equal(t, tt.name, tt.code.String())
			require.True(t, IsRegistered(tt.code))
			require.NotEmpty(t, tt.code.Description())
		})
	}
}

func TestRegistry_Injective(t *testing.T) {
	seenCodes := make(map[Code]bool)
	seenNames := make(map[string]Code)

	for _, def := range Definitions() {
		require.False(t, seenCodes[def.Code], "code %d defined twice", def.Code)
		seenCodes[def.Code] = true

		for _, name := range append([]string{def.Name}, def.Aliases...) {
			other, dup := seenNames[name]
			require.False(t, dup, "name %s used by %d and %d", name, other, def.Code)
			seenNames[name] = def.Code
		}
	}
}

func TestRegistry_Aliases(t *testing.T) {
	tests := []struct {
		alias     Code
		canonical Code
		value     int
		names     []string
	}{
		{CodeFacebookAccountAlreadyLinked, CodeAccountAlreadyLinked, 208, []string{"AccountAlreadyLinked", "FacebookAccountAlreadyLinked"}},
		{CodeFacebookIDMissing, CodeLinkedIDMissing, 250, []string{"LinkedIDMissing", "FacebookIDMissing"}},
		{CodeFacebookInvalidSession, CodeInvalidLinkedSession, 251, []string{"InvalidLinkedSession", "FacebookInvalidSession"}},
	}

	for _, tt := range tests {
		t.Run(tt.names[0], func(t *testing.T) {
			require.Equal(t, tt.canonical, tt.alias)
			require.Equal(t, tt.value, int(tt.alias))
			require.Equal(t, tt.names, tt.alias.Names())

			for _, name := range tt.names {
				code, ok := LookupName(name)
				require.True(t, ok)
				require.Equal(t, tt.canonical, code)
			}
		})
	}

	// Only the three documented pairs carry aliases.
	aliased := 0
	for _, def := range Definitions() {
		if len(def.Aliases) > 0 {
			aliased++
		}
	}
	require.Equal(t, 3, aliased)
}

func TestDefinitions_Sorted(t *testing.T) {
	defs := Definitions()
	require.NotEmpty(t, defs)
	require.Equal(t, CodeOtherCause, defs[0].Code)
	for i := 1; i < len(defs); i++ {
		require.Less(t, defs[i-1].Code, defs[i].Code)
	}
}

func TestLookup(t *testing.T) {
	def, ok := Lookup(CodeCacheMiss)
	require.True(t, ok)
	require.Equal(t, "CacheMiss", def.Name)
	require.Equal(t, "The results were not found in the cache.", def.Description)
	require.Equal(t, ClassificationPermanent, def.Classification)

	def, ok = Lookup(CodeConnectionFailed)
	require.True(t, ok)
	require.Equal(t, ClassificationRetryable, def.Classification)

	_, ok = Lookup(Code(999))
	require.False(t, ok)
}

func TestLookup_ReturnsCopy(t *testing.T) {
	def, ok := Lookup(CodeLinkedIDMissing)
	require.True(t, ok)
	def.Aliases[0] = "Mutated"

	require.Equal(t, []string{"LinkedIDMissing", "FacebookIDMissing"}, CodeLinkedIDMissing.Names())
}

func TestCode_Unregistered(t *testing.T) {
	code := Code(999)

	require.False(t, IsRegistered(code))
	require.Equal(t, "Code(999)", code.String())
	require.Empty(t, code.Description())
	require.Nil(t, code.Names())
}
