// The package turning native declarations into render-ready method descriptors.
package codegen

import (
	"fmt"

	"twbindgen/internal/grammar"
)

// MethodTemplate is the template the rendering stage uses for a Function.
const MethodTemplate = "part_method.hbs"

// Function describes one binding method. CFFIName is the unmodified native symbol
// the generated code calls; MethodName is what the binding exposes.
type Function struct {
	MethodName string  `json:"method_name" yaml:"method_name"`
	IsStatic   bool    `json:"is_static" yaml:"is_static"`
	Return     Return  `json:"return" yaml:"return"`
	Params     []Param `json:"params" yaml:"params"`
	CFFIName   string  `json:"c_ffi_name" yaml:"c_ffi_name"`
}

// Return values are owned by the caller, so there is nothing to deter.
type Return struct {
	Type       string  `json:"type" yaml:"type"`
	IsNullable bool    `json:"is_nullable" yaml:"is_nullable"`
	WrapAs     *string `json:"wrap_as" yaml:"wrap_as"`
}

type Param struct {
	Name       string  `json:"name" yaml:"name"`
	Type       string  `json:"type" yaml:"type"`
	IsNullable bool    `json:"is_nullable" yaml:"is_nullable"`
	WrapAs     *string `json:"wrap_as" yaml:"wrap_as"`
	DeterAs    *string `json:"deter_as" yaml:"deter_as"`
}

// Builds the method descriptor for a declaration. The first unsupported type or
// malformed name aborts the whole declaration.
func FromGrammar(resolver TypeResolver, prefix grammar.Keyword, decl grammar.FunctionDecl) (Function, error) {
	methodName, err := MethodName(prefix, decl.Name)
	if err != nil {
		return Function{}, err
	}

	params := make([]Param, 0, len(decl.Params))
	for i, param := range decl.Params {
		ctx, err := resolver.ResolveType(param.Type)
		if err != nil {
			return Function{}, fmt.Errorf("%s: param #%d '%s': %w", decl.Name, i, param.Name, err)
		}

		params = append(params, Param{
			Name:       ctx.Name,
			Type:       ctx.Type,
			IsNullable: IsNullable(param.Markers),
			WrapAs:     ctx.WrapAs,
			DeterAs:    ctx.DeterAs,
		})
	}

	returnCtx, err := resolver.ResolveType(decl.ReturnValue.Type)
	if err != nil {
		return Function{}, fmt.Errorf("%s: return value: %w", decl.Name, err)
	}

	return Function{
		MethodName: methodName,
		IsStatic:   IsStatic(decl.Markers),
		Return: Return{
			Type:       returnCtx.Type,
			IsNullable: IsNullable(decl.ReturnValue.Markers),
			WrapAs:     returnCtx.WrapAs,
		},
		Params:   params,
		CFFIName: string(decl.Name),
	}, nil
}
