package generation

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"twbindgen/internal/codegen"
	"twbindgen/internal/grammar"
)

// FailurePolicy decides what a failing declaration does to the whole run.
type FailurePolicy int

const (
	// FailFast aborts the run on the first failing declaration.
	FailFast FailurePolicy = iota
	// SkipFailed records failing declarations and keeps going.
	SkipFailed
)

// Document is the unit handed to the rendering stage.
type Document struct {
	Template string           `json:"template" yaml:"template"`
	Method   codegen.Function `json:"method" yaml:"method"`
}

type Skipped struct {
	Symbol string
	Err    error
}

type Result struct {
	Documents []Document
	Skipped   []Skipped
}

type Generator struct {
	Functions []grammar.FunctionDecl
	Resolver  codegen.TypeResolver
	Prefix    grammar.Keyword
	Workers   int
	Policy    FailurePolicy
	logger    *zap.Logger
}

type Option func(*Generator)

func WithLogger(logger *zap.Logger) Option {
	return func(generator *Generator) {
		if logger != nil {
			generator.logger = logger
		}
	}
}

// Limits how many declarations are assembled at once. Values below one mean GOMAXPROCS.
func WithWorkers(workers int) Option {
	return func(generator *Generator) {
		generator.Workers = workers
	}
}

func WithPolicy(policy FailurePolicy) Option {
	return func(generator *Generator) {
		generator.Policy = policy
	}
}

func NewGenerator(resolver codegen.TypeResolver, prefix grammar.Keyword, options ...Option) Generator {
	generator := Generator{
		Functions: make([]grammar.FunctionDecl, 0),
		Resolver:  resolver,
		Prefix:    prefix,
		Policy:    FailFast,
		logger:    zap.NewNop(),
	}

	for _, option := range options {
		option(&generator)
	}

	return generator
}

func (generator *Generator) RegisterFunction(element grammar.FunctionDecl) {
	generator.Functions = append(generator.Functions, element)
}

// Assembles a descriptor for every registered declaration. Documents come out in
// registration order regardless of how the work was scheduled.
func (generator *Generator) Generate(ctx context.Context) (Result, error) {
	workers := generator.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	documents := make([]*Document, len(generator.Functions))
	failures := make([]error, len(generator.Functions))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for i, decl := range generator.Functions {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			function, err := codegen.FromGrammar(generator.Resolver, generator.Prefix, decl)
			if err != nil {
				if generator.Policy == FailFast {
					return err
				}
				failures[i] = err
				return nil
			}

			generator.logger.Debug("assembled method",
				zap.String("symbol", function.CFFIName),
				zap.String("method", function.MethodName),
				zap.Int("params", len(function.Params)))
			documents[i] = &Document{Template: codegen.MethodTemplate, Method: function}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return Result{}, fmt.Errorf("generation aborted: %w", err)
	}

	result := Result{Documents: make([]Document, 0, len(documents))}
	for i, document := range documents {
		if failures[i] != nil {
			symbol := string(generator.Functions[i].Name)
			generator.logger.Warn("skipping declaration", zap.String("symbol", symbol), zap.Error(failures[i]))
			result.Skipped = append(result.Skipped, Skipped{Symbol: symbol, Err: failures[i]})
			continue
		}
		result.Documents = append(result.Documents, *document)
	}

	generator.logger.Info("generation finished",
		zap.String("language", generator.Resolver.Language()),
		zap.Int("methods", len(result.Documents)),
		zap.Int("skipped", len(result.Skipped)))

	return result, nil
}
