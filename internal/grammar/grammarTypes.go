// The package describing exported native declarations as produced by the header grammar.
package grammar

import (
	"fmt"
	"slices"
)

// Keyword is an identifier taken verbatim from a native header, e.g. `TWString`.
type Keyword string

type Qualifier int

const (
	Mutable Qualifier = iota
	Const
	Extern
)

var qualifierNames = map[Qualifier]string{
	Mutable: "mutable",
	Const:   "const",
	Extern:  "extern",
}

func (q Qualifier) String() string {
	if name, found := qualifierNames[q]; found {
		return name
	}

	return fmt.Sprintf("Qualifier(%d)", int(q))
}

type Primitive int

const (
	Void Primitive = iota
	Bool
	Char
	ShortInt
	Int
	UnsignedInt
	LongInt
	Float
	Double
	SizeT
	Int8T
	Int16T
	Int32T
	Int64T
	UInt8T
	UInt16T
	UInt32T
	UInt64T
)

// The map of primitives to their C spelling
var primitiveNames = map[Primitive]string{
	Void:        "void",
	Bool:        "bool",
	Char:        "char",
	ShortInt:    "short",
	Int:         "int",
	UnsignedInt: "unsigned int",
	LongInt:     "long",
	Float:       "float",
	Double:      "double",
	SizeT:       "size_t",
	Int8T:       "int8_t",
	Int16T:      "int16_t",
	Int32T:      "int32_t",
	Int64T:      "int64_t",
	UInt8T:      "uint8_t",
	UInt16T:     "uint16_t",
	UInt32T:     "uint32_t",
	UInt64T:     "uint64_t",
}

func (p Primitive) String() string {
	if name, found := primitiveNames[p]; found {
		return name
	}

	return fmt.Sprintf("Primitive(%d)", int(p))
}

// Looks up a primitive by its C spelling.
func ParsePrimitive(name string) (Primitive, bool) {
	for primitive, spelling := range primitiveNames {
		if spelling == name {
			return primitive, true
		}
	}

	return 0, false
}

// Category is the closed set of type shapes. Only the variants declared in this
// package implement it.
type Category interface {
	fmt.Stringer
	isCategory()
}

type Scalar struct {
	Primitive Primitive
}

type Pointer struct {
	Pointee Category
}

// Unrecognized is a keyword the grammar does not know, usually an opaque struct.
type Unrecognized struct {
	Keyword Keyword
}

func (Scalar) isCategory()       {}
func (Pointer) isCategory()      {}
func (Unrecognized) isCategory() {}

func (s Scalar) String() string { return s.Primitive.String() }

func (p Pointer) String() string {
	if p.Pointee == nil {
		return "<nil> *"
	}

	return p.Pointee.String() + " *"
}

func (u Unrecognized) String() string { return string(u.Keyword) }

// Type is a qualified type description.
type Type struct {
	Qualifier Qualifier
	Category  Category
}

func (t Type) String() string {
	category := "<nil>"
	if t.Category != nil {
		category = t.Category.String()
	}

	if t.Qualifier == Mutable {
		return category
	}

	return t.Qualifier.String() + " " + category
}

type Marker int

const (
	TwExportStruct Marker = iota
	TwExportEnum
	TwExportClass
	TwExportProtoEnum
	TwExportMethod
	TwExportStaticMethod
	TwExportProperty
	TwExportStaticProperty
	TwVisibilityDefault
	TwDeprecated
	Nullable
	NonNull
)

var markerNames = map[Marker]string{
	TwExportStruct:         "TW_EXPORT_STRUCT",
	TwExportEnum:           "TW_EXPORT_ENUM",
	TwExportClass:          "TW_EXPORT_CLASS",
	TwExportProtoEnum:      "TW_EXPORT_PROTO_ENUM",
	TwExportMethod:         "TW_EXPORT_METHOD",
	TwExportStaticMethod:   "TW_EXPORT_STATIC_METHOD",
	TwExportProperty:       "TW_EXPORT_PROPERTY",
	TwExportStaticProperty: "TW_EXPORT_STATIC_PROPERTY",
	TwVisibilityDefault:    "TW_VISIBILITY_DEFAULT",
	TwDeprecated:           "TW_DEPRECATED",
	Nullable:               "_Nullable",
	NonNull:                "_Nonnull",
}

func (m Marker) String() string {
	if name, found := markerNames[m]; found {
		return name
	}

	return fmt.Sprintf("Marker(%d)", int(m))
}

// Looks up a marker by its header spelling.
func ParseMarker(name string) (Marker, bool) {
	for marker, spelling := range markerNames {
		if spelling == name {
			return marker, true
		}
	}

	return 0, false
}

// Markers is an unordered marker collection. It is never modified after creation.
type Markers struct {
	items []Marker
}

func NewMarkers(markers ...Marker) Markers {
	if len(markers) == 0 {
		return Markers{}
	}

	return Markers{slices.Clone(markers)}
}

func (m Markers) Has(marker Marker) bool {
	return slices.Contains(m.items, marker)
}

func (m Markers) Len() int {
	return len(m.items)
}

// Returns a copy of the markers in declaration order.
func (m Markers) Slice() []Marker {
	return slices.Clone(m.items)
}

type Param struct {
	Name    string
	Type    Type
	Markers Markers
}

type ReturnValue struct {
	Type    Type
	Markers Markers
}

// FunctionDecl is one exported native function.
type FunctionDecl struct {
	Name        Keyword
	Params      []Param
	ReturnValue ReturnValue
	Markers     Markers
}
