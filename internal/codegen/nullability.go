package codegen

import "twbindgen/internal/grammar"

// Reports whether a slot may be absent. Everything is nullable unless marked
// `_Nonnull`, and `_Nullable` wins over `_Nonnull` when both are present.
//
// TODO: confirm with the header owners whether `_Nonnull` should take precedence.
func IsNullable(markers grammar.Markers) bool {
	return !markers.Has(grammar.NonNull) || markers.Has(grammar.Nullable)
}

// Reports whether a declaration is exported as a type-level (static) method.
func IsStatic(markers grammar.Markers) bool {
	return markers.Has(grammar.TwExportStaticMethod)
}
