package analyzer

import (
	"fmt"
	"unicode"
)

// ElementType is the closed set of element kinds a field can hold
type ElementType interface {
	fmt.Stringer
	elementType()
}

// UintType is a plain unsigned integer element
type UintType struct{}

// OpaqueType is a raw byte array copied without interpretation
type OpaqueType struct{}

// StructType references another compiled structure by name
type StructType struct {
	Name string
}

// AddressType is the 16-byte network address opaque type
type AddressType struct{}

func (UintType) elementType()    {}
func (OpaqueType) elementType()  {}
func (StructType) elementType()  {}
func (AddressType) elementType() {}

func (UintType) String() string     { return "uint" }
func (OpaqueType) String() string   { return "opaque" }
func (t StructType) String() string { return "struct " + t.Name }
func (AddressType) String() string  { return "address" }

// AddressBytes is the fixed size of an AddressType field on the wire,
// regardless of the declared width.
const AddressBytes = 16

// FieldSpec is one validated field of a structure
type FieldSpec struct {
	Name            string
	ElementBitWidth int
	ElementCount    int
	BitOffset       int // absolute bit position from the structure start
	ElementType     ElementType
	Reserved        bool // synthesized reservedN padding
}

// BitLen returns the total width of the field in bits
func (f *FieldSpec) BitLen() int {
	return f.ElementBitWidth * f.ElementCount
}

// generatedMethods are the methods of every generated structure. A field
// whose Go name would shadow one gets a Field suffix.
var generatedMethods = map[string]bool{
	"Zero":       true,
	"Size":       true,
	"PackInto":   true,
	"UnpackFrom": true,
	"Printer":    true,
}

// GoName returns the Go identifier of the field in generated code. Reserved
// padding stays unexported.
func (f *FieldSpec) GoName() string {
	if f.Reserved {
		return f.Name
	}
	r := []rune(f.Name)
	if len(r) == 0 {
		return f.Name
	}
	r[0] = unicode.ToUpper(r[0])
	name := string(r)
	if generatedMethods[name] {
		name += "Field"
	}
	return name
}

// IsStruct reports whether the field references another structure
func (f *FieldSpec) IsStruct() bool {
	_, ok := f.ElementType.(StructType)
	return ok
}

// StructName returns the referenced structure name, or "" for other fields
func (f *FieldSpec) StructName() string {
	if t, ok := f.ElementType.(StructType); ok {
		return t.Name
	}
	return ""
}

// IsAligned reports whether the field can use a native fixed-width buffer
// operation at its declared offset. Fields that are not aligned must be
// bit-packed together with their neighbours.
func (f *FieldSpec) IsAligned() bool {
	bits := f.ElementBitWidth
	if bits >= 32 {
		return bits%32 == 0 && f.BitOffset%32 == 0
	}
	return (bits == 8 || bits == 16) && f.BitOffset%bits == 0
}

// DefaultKind is the shape of a field's zero value
type DefaultKind int

const (
	DefaultScalar DefaultKind = iota // numeric zero
	DefaultBytes                     // zero-filled byte array
	DefaultStruct                    // default-constructed nested structure
)

// DefaultValue describes the initial value of a field
type DefaultValue struct {
	Kind   DefaultKind
	Bytes  int    // byte array length, DefaultBytes only
	Struct string // structure name, DefaultStruct only
	Count  int    // replication count; 1 for a single value
}

// Default returns the default-value descriptor used to seed zero-initializers
func (f *FieldSpec) Default() DefaultValue {
	switch t := f.ElementType.(type) {
	case StructType:
		return DefaultValue{Kind: DefaultStruct, Struct: t.Name, Count: f.ElementCount}
	case AddressType:
		return DefaultValue{Kind: DefaultBytes, Bytes: AddressBytes, Count: 1}
	case OpaqueType:
		return DefaultValue{Kind: DefaultBytes, Bytes: f.BitLen() / 8, Count: 1}
	}

	if f.ElementCount == 1 {
		if f.ElementBitWidth > 64 {
			return DefaultValue{Kind: DefaultBytes, Bytes: f.ElementBitWidth / 8, Count: 1}
		}
		return DefaultValue{Kind: DefaultScalar, Count: 1}
	}
	if f.ElementBitWidth <= 8 {
		return DefaultValue{Kind: DefaultBytes, Bytes: f.ElementCount, Count: 1}
	}
	return DefaultValue{Kind: DefaultScalar, Count: f.ElementCount}
}

// StructSpec is one validated, immutable structure
type StructSpec struct {
	Name        string
	ByteSize    int
	Description string
	Fields      []*FieldSpec
	Protocol    *ProtocolInfo // nil when the schema carries no metadata
}

// BitLen returns the number of bits covered by declared fields
func (s *StructSpec) BitLen() int {
	total := 0
	for _, f := range s.Fields {
		total += f.BitLen()
	}
	return total
}

// Field returns the named field, or nil
func (s *StructSpec) Field(name string) *FieldSpec {
	for _, f := range s.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}
