package generation

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatJSON, FormatYAML:
		return Format(name), nil
	}

	return "", fmt.Errorf("unknown output format '%s'", name)
}

func WriteDocuments(writer io.Writer, documents []Document, format Format) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(documents)
	case FormatYAML:
		encoder := yaml.NewEncoder(writer)
		encoder.SetIndent(2)
		if err := encoder.Encode(documents); err != nil {
			return err
		}
		return encoder.Close()
	}

	return fmt.Errorf("unknown output format '%s'", format)
}

// Writes documents to a file, creating its directory when missing.
func Save(path string, documents []Document, format Format) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := WriteDocuments(file, documents, format); err != nil {
		return fmt.Errorf("could not write '%s': %w", path, err)
	}

	return file.Close()
}
