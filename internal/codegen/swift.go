package codegen

import (
	"github.com/dave/jennifer/jen"

	"twbindgen/internal/grammar"
)

// Swift maps native types onto Swift, bridging through Foundation types.
type Swift struct{}

func (Swift) Language() string { return "swift" }

func (swift Swift) ResolveType(ty grammar.Type) (TypeContext, error) {
	switch matchShape(ty) {
	case shapeUInt8:
		return TypeContext{Name: "int", Type: "UInt8"}, nil
	case shapeString:
		return TypeContext{
			Name:    "string",
			Type:    "String",
			WrapAs:  expression(jen.Id("TWStringCreateWithNSString").Call(jen.Id("string"))),
			DeterAs: expression(jen.Id("TWStringDelete").Call(jen.Id("string"))),
		}, nil
	case shapeData:
		return TypeContext{
			Name:    "data",
			Type:    "Data",
			WrapAs:  expression(jen.Id("TWDataCreateWithNSData").Call(jen.Id("data"))),
			DeterAs: expression(jen.Id("TWDataDelete").Call(jen.Id("data"))),
		}, nil
	}

	return TypeContext{}, unsupportedType(swift, ty)
}
