package codegen

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ygrebnov/errorc"

	"twbindgen/internal/grammar"
)

// Strips the common prefix from a native symbol and lowercases the first letter of
// what remains, e.g. `TW` + `TWFooBarDoThing` gives `fooBarDoThing`.
func MethodName(prefix grammar.Keyword, name grammar.Keyword) (string, error) {
	// Failing here means the grammar let a declaration without the module prefix through.
	rest, found := strings.CutPrefix(string(name), string(prefix))
	if !found {
		return "", errorc.With(
			ErrPrefixMismatch,
			errorc.Field(string(ErrorFieldPrefix), string(prefix)),
			errorc.Field(string(ErrorFieldSymbol), string(name)),
		)
	}

	if rest == "" {
		return "", errorc.With(ErrEmptyMethodName, errorc.Field(string(ErrorFieldSymbol), string(name)))
	}

	first, size := utf8.DecodeRuneInString(rest)
	return string(unicode.ToLower(first)) + rest[size:], nil
}
