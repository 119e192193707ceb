package generation

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"twbindgen/internal/codegen"
	"twbindgen/internal/grammar"
)

func stringReturning(name string) grammar.FunctionDecl {
	return grammar.FunctionDecl{
		Name: grammar.Keyword(name),
		ReturnValue: grammar.ReturnValue{
			Type: grammar.Type{Category: grammar.Pointer{Pointee: grammar.Unrecognized{Keyword: codegen.StringKeyword}}},
		},
	}
}

func unknownReturning(name string) grammar.FunctionDecl {
	return grammar.FunctionDecl{
		Name: grammar.Keyword(name),
		ReturnValue: grammar.ReturnValue{
			Type: grammar.Type{Category: grammar.Pointer{Pointee: grammar.Unrecognized{Keyword: "TWUnknownThing"}}},
		},
	}
}

func TestGenerate_PreservesOrder(t *testing.T) {
	generator := NewGenerator(codegen.Swift{}, "TW", WithWorkers(4))
	for i := 0; i < 50; i++ {
		generator.RegisterFunction(stringReturning(fmt.Sprintf("TWFoo%02d", i)))
	}

	result, err := generator.Generate(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Documents, 50)
	assert.Empty(t, result.Skipped)

	for i, document := range result.Documents {
		assert.Equal(t, codegen.MethodTemplate, document.Template)
		assert.Equal(t, fmt.Sprintf("foo%02d", i), document.Method.MethodName)
		assert.Equal(t, fmt.Sprintf("TWFoo%02d", i), document.Method.CFFIName)
	}
}

func TestGenerate_FailFast(t *testing.T) {
	generator := NewGenerator(codegen.Swift{}, "TW", WithWorkers(1))
	generator.RegisterFunction(stringReturning("TWFooCreate"))
	generator.RegisterFunction(unknownReturning("TWFooBroken"))
	generator.RegisterFunction(stringReturning("TWFooDelete"))

	result, err := generator.Generate(context.Background())
	require.ErrorIs(t, err, codegen.ErrUnsupportedType)
	assert.Contains(t, err.Error(), "TWFooBroken")
	assert.Empty(t, result.Documents)
}

func TestGenerate_SkipFailed(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	generator := NewGenerator(codegen.Go{}, "TW",
		WithPolicy(SkipFailed),
		WithLogger(zap.New(core)))
	generator.RegisterFunction(stringReturning("TWFooCreate"))
	generator.RegisterFunction(unknownReturning("TWFooBroken"))
	generator.RegisterFunction(stringReturning("XYFoo"))
	generator.RegisterFunction(stringReturning("TWFooDelete"))

	result, err := generator.Generate(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Documents, 2)
	assert.Equal(t, "fooCreate", result.Documents[0].Method.MethodName)
	assert.Equal(t, "fooDelete", result.Documents[1].Method.MethodName)
	assert.Equal(t, "string", result.Documents[0].Method.Return.Type)

	require.Len(t, result.Skipped, 2)
	assert.Equal(t, "TWFooBroken", result.Skipped[0].Symbol)
	assert.ErrorIs(t, result.Skipped[0].Err, codegen.ErrUnsupportedType)
	assert.Equal(t, "XYFoo", result.Skipped[1].Symbol)
	assert.ErrorIs(t, result.Skipped[1].Err, codegen.ErrPrefixMismatch)

	assert.Equal(t, 2, logs.FilterMessage("skipping declaration").Len())
}

func TestGenerate_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	generator := NewGenerator(codegen.Swift{}, "TW")
	generator.RegisterFunction(stringReturning("TWFooCreate"))

	_, err := generator.Generate(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestGenerate_Empty(t *testing.T) {
	generator := NewGenerator(codegen.Swift{}, "TW")

	result, err := generator.Generate(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result.Documents)
	assert.Empty(t, result.Skipped)
}
