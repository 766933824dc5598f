// Package parser reads layout schemas into raw, unvalidated structure
// descriptions. Two formats are accepted: YAML documents and Go source files
// whose types carry a @layout annotation.
package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TypeLayout represents one schema structure before validation
type TypeLayout struct {
	Name   string
	Anno   *TypeAnnotation
	Fields []Field
}

// Field represents one schema field. Name is empty for reserved padding.
type Field struct {
	Name   string
	GoType string // Go field type, only set for Go source schemas
	Layout *FieldLayout
}

// ParseFile parses a schema file, choosing the format by extension
func ParseFile(filename string) ([]*TypeLayout, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	types, err := Parse(filename, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return types, nil
}

// Parse parses schema source; filename only selects the format
func Parse(filename string, data []byte) ([]*TypeLayout, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return parseYAML(data)
	case ".go":
		return parseGoFile(filename, data)
	default:
		return nil, fmt.Errorf("unsupported schema format: %s", filepath.Ext(filename))
	}
}
