package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twbindgen/internal/grammar"
)

func TestMethodName(t *testing.T) {
	tests := []struct {
		name    string
		prefix  grammar.Keyword
		symbol  grammar.Keyword
		want    string
		wantErr error
	}{
		{name: "strips prefix and lowers first letter", prefix: "TW", symbol: "TWFooBarDoThing", want: "fooBarDoThing"},
		{name: "single letter remainder", prefix: "TW", symbol: "TWX", want: "x"},
		{name: "already lower", prefix: "TW", symbol: "TWfoo", want: "foo"},
		{name: "acronym keeps inner casing", prefix: "TW", symbol: "TWHDWalletCreate", want: "hDWalletCreate"},
		{name: "non ascii first letter", prefix: "TW", symbol: "TWÄpfel", want: "äpfel"},
		{name: "longer prefix", prefix: "TWString", symbol: "TWStringCreateWithData", want: "createWithData"},
		{name: "empty prefix", prefix: "", symbol: "Create", want: "create"},
		{name: "prefix mismatch", prefix: "TW", symbol: "XYFoo", wantErr: ErrPrefixMismatch},
		{name: "prefix is case sensitive", prefix: "TW", symbol: "twFoo", wantErr: ErrPrefixMismatch},
		{name: "symbol shorter than prefix", prefix: "TWString", symbol: "TW", wantErr: ErrPrefixMismatch},
		{name: "symbol equals prefix", prefix: "TW", symbol: "TW", wantErr: ErrEmptyMethodName},
		{name: "both empty", prefix: "", symbol: "", wantErr: ErrEmptyMethodName},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MethodName(tc.prefix, tc.symbol)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMethodName_ErrorContext(t *testing.T) {
	_, err := MethodName("TW", "XYFoo")
	require.ErrorIs(t, err, ErrPrefixMismatch)
	assert.Contains(t, err.Error(), "codegen.prefix: TW")
	assert.Contains(t, err.Error(), "codegen.symbol: XYFoo")
}
