package grammar

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Reader holds the declarations of one manifest emitted by the header grammar.
type Reader struct {
	prefix    Keyword
	functions []FunctionDecl
}

type manifestNode struct {
	Prefix    string         `yaml:"prefix"`
	Functions []functionNode `yaml:"functions"`
}

type functionNode struct {
	Name    string      `yaml:"name"`
	Markers []string    `yaml:"markers"`
	Params  []paramNode `yaml:"params"`
	Return  *returnNode `yaml:"return"`
}

type paramNode struct {
	Name    string    `yaml:"name"`
	Type    *typeNode `yaml:"type"`
	Markers []string  `yaml:"markers"`
}

type returnNode struct {
	Type    *typeNode `yaml:"type"`
	Markers []string  `yaml:"markers"`
}

type typeNode struct {
	Qualifier string    `yaml:"qualifier"`
	Scalar    string    `yaml:"scalar"`
	Pointer   *typeNode `yaml:"pointer"`
	Keyword   string    `yaml:"keyword"`
}

// Generates a new reader based on the manifest file under given path
func NewReader(manifestPath string) (*Reader, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("could not read manifest '%s': %w", manifestPath, err)
	}

	return ParseManifest(data)
}

// Decodes a YAML manifest.
func ParseManifest(data []byte) (*Reader, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var manifest manifestNode
	err := decoder.Decode(&manifest)
	switch {
	case errors.Is(err, io.EOF):
	case err != nil:
		return nil, fmt.Errorf("malformed manifest: %w", err)
	default:
		if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			return nil, errors.New("manifest must contain a single document")
		}
	}

	reader := &Reader{
		prefix:    Keyword(manifest.Prefix),
		functions: make([]FunctionDecl, 0, len(manifest.Functions)),
	}

	for i, node := range manifest.Functions {
		function, err := node.toFunctionDecl()
		if err != nil {
			return nil, fmt.Errorf("function #%d '%s': %w", i, node.Name, err)
		}
		reader.functions = append(reader.functions, function)
	}

	return reader, nil
}

// The common prefix declared by the manifest. May be empty.
func (reader *Reader) Prefix() Keyword {
	return reader.prefix
}

func (reader *Reader) Functions() []FunctionDecl {
	return slices.Clone(reader.functions)
}

// Tries to get function with given name
func (reader *Reader) TryGetFunction(name string) (element FunctionDecl, found bool) {
	for _, function := range reader.functions {
		if string(function.Name) == name {
			return function, true
		}
	}

	return FunctionDecl{}, false
}

func (node functionNode) toFunctionDecl() (FunctionDecl, error) {
	if strings.TrimSpace(node.Name) == "" {
		return FunctionDecl{}, errors.New("missing function name")
	}

	markers, err := toMarkers(node.Markers)
	if err != nil {
		return FunctionDecl{}, err
	}

	if node.Return == nil || node.Return.Type == nil {
		return FunctionDecl{}, errors.New("missing return type")
	}

	returnType, err := node.Return.Type.toType()
	if err != nil {
		return FunctionDecl{}, fmt.Errorf("return value: %w", err)
	}

	returnMarkers, err := toMarkers(node.Return.Markers)
	if err != nil {
		return FunctionDecl{}, fmt.Errorf("return value: %w", err)
	}

	function := FunctionDecl{
		Name:        Keyword(node.Name),
		Params:      make([]Param, 0, len(node.Params)),
		ReturnValue: ReturnValue{Type: returnType, Markers: returnMarkers},
		Markers:     markers,
	}

	for i, param := range node.Params {
		if param.Type == nil {
			return FunctionDecl{}, fmt.Errorf("param #%d '%s': missing type", i, param.Name)
		}

		paramType, err := param.Type.toType()
		if err != nil {
			return FunctionDecl{}, fmt.Errorf("param #%d '%s': %w", i, param.Name, err)
		}

		paramMarkers, err := toMarkers(param.Markers)
		if err != nil {
			return FunctionDecl{}, fmt.Errorf("param #%d '%s': %w", i, param.Name, err)
		}

		function.Params = append(function.Params, Param{Name: param.Name, Type: paramType, Markers: paramMarkers})
	}

	return function, nil
}

func toMarkers(names []string) (Markers, error) {
	markers := make([]Marker, 0, len(names))
	for _, name := range names {
		marker, found := ParseMarker(name)
		if !found {
			return Markers{}, fmt.Errorf("unknown marker '%s'", name)
		}
		markers = append(markers, marker)
	}

	return NewMarkers(markers...), nil
}

func (node *typeNode) toType() (Type, error) {
	qualifier := Mutable
	switch node.Qualifier {
	case "", "mutable":
	case "const":
		qualifier = Const
	case "extern":
		qualifier = Extern
	default:
		return Type{}, fmt.Errorf("unknown qualifier '%s'", node.Qualifier)
	}

	category, err := node.toCategory()
	if err != nil {
		return Type{}, err
	}

	return Type{Qualifier: qualifier, Category: category}, nil
}

func (node *typeNode) toCategory() (Category, error) {
	set := 0
	for _, present := range []bool{node.Scalar != "", node.Pointer != nil, node.Keyword != ""} {
		if present {
			set++
		}
	}
	if set != 1 {
		return nil, errors.New("type node must have exactly one of 'scalar', 'pointer' or 'keyword'")
	}

	switch {
	case node.Scalar != "":
		primitive, found := ParsePrimitive(node.Scalar)
		if !found {
			return nil, fmt.Errorf("unknown primitive '%s'", node.Scalar)
		}
		return Scalar{Primitive: primitive}, nil
	case node.Pointer != nil:
		if node.Pointer.Qualifier != "" {
			return nil, errors.New("qualifier is only allowed on the outermost type")
		}
		pointee, err := node.Pointer.toCategory()
		if err != nil {
			return nil, err
		}
		return Pointer{Pointee: pointee}, nil
	default:
		return Unrecognized{Keyword: Keyword(node.Keyword)}, nil
	}
}
