package parser

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// parseGoFile parses a Go source file and extracts types with @layout annotations
func parseGoFile(filename string, src any) ([]*TypeLayout, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	return extractTypes(file)
}

func extractTypes(file *ast.File) ([]*TypeLayout, error) {
	var types []*TypeLayout

	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec := spec.(*ast.TypeSpec)
			structType, ok := typeSpec.Type.(*ast.StructType)
			if !ok {
				continue // Not a struct
			}

			// Extract @layout annotation from comments directly above type.
			// A single-spec declaration attaches them to the GenDecl.
			doc := typeSpec.Doc
			if doc == nil {
				doc = genDecl.Doc
			}
			anno, err := extractAnnotation(doc)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", typeSpec.Name.Name, err)
			}
			if anno == nil {
				continue // No @layout, skip this type
			}

			// Extract fields with layout tags
			fields, err := extractFields(structType)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", typeSpec.Name.Name, err)
			}

			types = append(types, &TypeLayout{
				Name:   typeSpec.Name.Name,
				Anno:   anno,
				Fields: fields,
			})
		}
	}

	return types, nil
}

func extractAnnotation(doc *ast.CommentGroup) (*TypeAnnotation, error) {
	if doc == nil {
		return nil, nil
	}

	// Extract comment text lines
	var lines []string
	for _, comment := range doc.List {
		lines = append(lines, CleanComment(comment.Text))
	}

	anno, found, err := FindAnnotation(lines)
	if !found {
		return nil, nil
	}
	return anno, err
}

func extractFields(structType *ast.StructType) ([]Field, error) {
	var fields []Field

	for _, field := range structType.Fields.List {
		if len(field.Names) == 0 {
			return nil, fmt.Errorf("embedded fields are not supported")
		}
		if field.Tag == nil {
			continue // No tags
		}

		tag := reflect.StructTag(strings.Trim(field.Tag.Value, "`"))
		layoutTag, ok := tag.Lookup("layout")
		if !ok {
			continue // No layout tag
		}

		name := field.Names[0].Name
		layout, err := ParseTag(layoutTag)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}

		// Tag values win; the Go type fills in what the tag leaves out
		goType := typeToString(field.Type)
		if err := applyGoType(layout, goType); err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}

		if name == "_" {
			name = "" // reserved padding, named reservedN by the analyzer
		}
		fields = append(fields, Field{
			Name:   name,
			GoType: goType,
			Layout: layout,
		})
	}

	return fields, nil
}

var arrayRe = regexp.MustCompile(`^\[(\d+)\](.+)$`)

// applyGoType fills in count, bits and type from the Go field type where the
// tag leaves them out. [N]T gives count N; builtin unsigned types give the
// width; any other identifier is a nested structure reference. Opaque types
// take the whole array as a single element.
func applyGoType(layout *FieldLayout, goType string) error {
	n, elem := 1, goType
	if m := arrayRe.FindStringSubmatch(goType); m != nil {
		var err error
		if n, err = strconv.Atoi(m[1]); err != nil {
			return fmt.Errorf("invalid array length: %s", m[1])
		}
		elem = m[2]
	}

	if isOpaqueTag(layout.Type) {
		if layout.Bits == 0 {
			bits, ok := builtinBits(elem)
			if !ok {
				return fmt.Errorf("opaque field must be a byte array, got: %s", goType)
			}
			layout.Bits = n * bits
		}
		return nil
	}

	if layout.Count == 0 && n > 1 {
		layout.Count = n
	}

	if bits, ok := builtinBits(elem); ok {
		if layout.Bits == 0 {
			layout.Bits = bits
		}
		return nil
	}

	if strings.HasPrefix(elem, "[") || strings.HasPrefix(elem, "*") || elem == "unknown" {
		return fmt.Errorf("unsupported Go type: %s", goType)
	}

	if layout.Type == "" {
		layout.Type = "struct " + elem
	}
	return nil
}

func isOpaqueTag(t string) bool {
	switch t {
	case "opaque", "bytes", "address", "HdrIPv6Addr":
		return true
	}
	return false
}

func builtinBits(goType string) (int, bool) {
	switch goType {
	case "uint8", "byte":
		return 8, true
	case "uint16":
		return 16, true
	case "uint32":
		return 32, true
	case "uint64":
		return 64, true
	}
	return 0, false
}

// typeToString converts AST type expression to string
// Only supports types with defined binary layout
func typeToString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		// Simple type: uint16, MADHeader, etc.
		return t.Name

	case *ast.ArrayType:
		if t.Len == nil {
			// Slice: rejected later, layouts are fixed size
			return "[]" + typeToString(t.Elt)
		}
		// Array: [8]byte
		return fmt.Sprintf("[%s]%s", exprToString(t.Len), typeToString(t.Elt))

	case *ast.StarExpr:
		// Pointer: not supported for binary layout
		return "*" + typeToString(t.X)

	default:
		return "unknown"
	}
}

func exprToString(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.BasicLit:
		return e.Value
	case *ast.Ident:
		return e.Name
	default:
		return "?"
	}
}
