package codegen

import "errors"

const Namespace = "codegen"

// Sentinel errors. Use errors.Is to match.
var (
	ErrUnsupportedType = errors.New(Namespace + ": unsupported type")
	ErrPrefixMismatch  = errors.New(Namespace + ": name does not start with prefix")
	ErrEmptyMethodName = errors.New(Namespace + ": empty method name")
	ErrUnknownLanguage = errors.New(Namespace + ": unknown binding language")
)

// ErrorField is a key for structured error context, passed to errorc.Field.
type ErrorField string

const (
	ErrorFieldType      ErrorField = "codegen.type"
	ErrorFieldPrefix    ErrorField = "codegen.prefix"
	ErrorFieldSymbol    ErrorField = "codegen.symbol"
	ErrorFieldLanguage  ErrorField = "codegen.language"
	ErrorFieldAvailable ErrorField = "codegen.available_languages"
)
