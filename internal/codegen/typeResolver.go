package codegen

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/ygrebnov/errorc"

	"twbindgen/internal/grammar"
)

// Opaque struct keywords that get a dedicated host type.
const (
	StringKeyword grammar.Keyword = "TWString"
	DataKeyword   grammar.Keyword = "TWData"
)

// TypeContext describes how a native type is represented in the binding language.
type TypeContext struct {
	// Conventional identifier for a value of this kind. Wrap and deter expressions refer to it.
	Name    string
	Type    string
	WrapAs  *string
	DeterAs *string
}

// TypeResolver maps native types onto one binding language. Only explicitly
// supported shapes resolve; everything else is ErrUnsupportedType.
type TypeResolver interface {
	Language() string
	ResolveType(ty grammar.Type) (TypeContext, error)
}

var resolvers = map[string]TypeResolver{
	Swift{}.Language(): Swift{},
	Go{}.Language():    Go{},
}

func ResolverFor(language string) (TypeResolver, error) {
	resolver, found := resolvers[language]
	if !found {
		return nil, errorc.With(
			ErrUnknownLanguage,
			errorc.Field(string(ErrorFieldLanguage), language),
			errorc.Field(string(ErrorFieldAvailable), strings.Join(Languages(), ", ")),
		)
	}

	return resolver, nil
}

// Returns ids of all binding languages, sorted.
func Languages() []string {
	languages := make([]string, 0, len(resolvers))
	for language := range resolvers {
		languages = append(languages, language)
	}
	slices.Sort(languages)

	return languages
}

// typeShape is the result of matching a type against the supported shapes.
type typeShape int

const (
	shapeUnsupported typeShape = iota
	shapeUInt8
	shapeString
	shapeData
)

// Matches a type against the closed set of shapes every resolver understands.
// Only mutable types are accepted; pointers must point directly at a known keyword.
func matchShape(ty grammar.Type) typeShape {
	if ty.Qualifier != grammar.Mutable {
		return shapeUnsupported
	}

	switch category := ty.Category.(type) {
	case grammar.Scalar:
		if category.Primitive == grammar.UInt8T {
			return shapeUInt8
		}
	case grammar.Pointer:
		keyword, ok := category.Pointee.(grammar.Unrecognized)
		if !ok {
			return shapeUnsupported
		}

		switch keyword.Keyword {
		case StringKeyword:
			return shapeString
		case DataKeyword:
			return shapeData
		}
	}

	return shapeUnsupported
}

func unsupportedType(resolver TypeResolver, ty grammar.Type) error {
	return errorc.With(
		ErrUnsupportedType,
		errorc.Field(string(ErrorFieldType), ty.String()),
		errorc.Field(string(ErrorFieldLanguage), resolver.Language()),
	)
}

// Renders an expression built with jen. Call syntax is shared by all target languages.
func expression(statement *jen.Statement) *string {
	rendered := fmt.Sprintf("%#v", statement)
	return &rendered
}
