package codegen

import (
	"github.com/dave/jennifer/jen"

	"twbindgen/internal/grammar"
)

// Go maps native types onto Go values passed through cgo. The TW constructors copy
// their input, so Go memory is handed over as is and only the TW handle is released.
type Go struct{}

func (Go) Language() string { return "go" }

func (golang Go) ResolveType(ty grammar.Type) (TypeContext, error) {
	switch matchShape(ty) {
	case shapeUInt8:
		return TypeContext{Name: "int", Type: "uint8"}, nil
	case shapeString:
		return TypeContext{
			Name: "string",
			Type: "string",
			WrapAs: expression(cgo("TWStringCreateWithRawBytes").Call(
				bytesPointer(jen.Qual("unsafe", "StringData").Call(jen.Id("string"))),
				cgo("size_t").Call(jen.Len(jen.Id("string"))),
			)),
			DeterAs: expression(cgo("TWStringDelete").Call(jen.Id("string"))),
		}, nil
	case shapeData:
		return TypeContext{
			Name: "data",
			Type: "[]byte",
			WrapAs: expression(cgo("TWDataCreateWithBytes").Call(
				bytesPointer(jen.Qual("unsafe", "SliceData").Call(jen.Id("data"))),
				cgo("size_t").Call(jen.Len(jen.Id("data"))),
			)),
			DeterAs: expression(cgo("TWDataDelete").Call(jen.Id("data"))),
		}, nil
	}

	return TypeContext{}, unsupportedType(golang, ty)
}

// References a name from the cgo pseudo-package.
func cgo(name string) *jen.Statement {
	return jen.Id("C").Dot(name)
}

// Converts a Go byte pointer into `*C.uint8_t`.
func bytesPointer(pointer *jen.Statement) *jen.Statement {
	return jen.Parens(jen.Op("*").Add(cgo("uint8_t"))).Call(jen.Qual("unsafe", "Pointer").Call(pointer))
}
