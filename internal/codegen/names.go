package codegen

import (
	"fmt"
	"strings"

	"github.com/alexhholmes/bitlayout/internal/analyzer"
)

// fieldName returns the Go identifier for a schema field
func fieldName(f *analyzer.FieldSpec) string {
	return f.GoName()
}

// uintType returns the narrowest unsigned type holding bits
func uintType(bits int) string {
	switch {
	case bits <= 8:
		return "uint8"
	case bits <= 16:
		return "uint16"
	case bits <= 32:
		return "uint32"
	default:
		return "uint64"
	}
}

// elemType returns the Go type of a single element of f
func elemType(f *analyzer.FieldSpec) string {
	switch t := f.ElementType.(type) {
	case analyzer.StructType:
		return t.Name
	case analyzer.AddressType, analyzer.OpaqueType:
		return "byte"
	}
	if f.ElementCount > 1 && f.ElementBitWidth <= 8 {
		return "byte"
	}
	return uintType(f.ElementBitWidth)
}

// goType returns the Go type of the whole field
func goType(f *analyzer.FieldSpec) string {
	switch f.ElementType.(type) {
	case analyzer.AddressType:
		return fmt.Sprintf("[%d]byte", analyzer.AddressBytes)
	case analyzer.OpaqueType:
		return fmt.Sprintf("[%d]byte", f.BitLen()/8)
	}

	if f.ElementCount == 1 {
		if _, ok := f.ElementType.(analyzer.UintType); ok && f.ElementBitWidth > 64 {
			return fmt.Sprintf("[%d]byte", f.ElementBitWidth/8)
		}
		return elemType(f)
	}
	return fmt.Sprintf("[%d]%s", f.ElementCount, elemType(f))
}

// ref returns the receiver expression of a field or one of its elements
func ref(f *analyzer.FieldSpec, index int) string {
	if index < 0 {
		return "p." + fieldName(f)
	}
	return fmt.Sprintf("p.%s[%d]", fieldName(f), index)
}

// printVerb returns the fmt verb used to label f in dumps
func printVerb(f *analyzer.FieldSpec) string {
	switch f.ElementType.(type) {
	case analyzer.StructType:
		return "%v"
	case analyzer.AddressType, analyzer.OpaqueType:
		return "%x"
	}
	t := goType(f)
	switch {
	case strings.HasSuffix(t, "]byte"):
		return "%x"
	case strings.HasPrefix(t, "["):
		return "%v"
	}
	return "%d"
}
