// Package analyzer turns raw schema structures into validated StructSpecs and
// partitions their fields into layout groups.
package analyzer

import (
	"fmt"
	"strings"

	"github.com/alexhholmes/bitlayout/internal/errors"
	"github.com/alexhholmes/bitlayout/internal/parser"
)

// Analyze validates every non-container structure in layouts. Structure names
// are registered first so nested references may point forward.
func Analyze(layouts []*parser.TypeLayout) ([]*StructSpec, error) {
	reg := NewTypeRegistry()
	var todo []*parser.TypeLayout
	for _, l := range layouts {
		if l.Anno.Container != "" {
			continue
		}
		if !reg.Register(l.Name, l.Anno.Bytes) {
			return nil, errors.Schema(l.Name, "", errors.KindDuplicate, "structure declared more than once")
		}
		todo = append(todo, l)
	}

	specs := make([]*StructSpec, 0, len(todo))
	for _, l := range todo {
		s, err := Build(l, reg)
		if err != nil {
			return nil, err
		}
		specs = append(specs, s)
	}
	return specs, nil
}

// builder holds the per-structure state used while validating one layout
type builder struct {
	name     string
	reg      *TypeRegistry
	size     int               // structure size in bytes
	reserved int               // reservedN counter
	names    map[string]string // generated identifier -> schema name
	end      int               // bit where the previous field ended
}

// Build validates one structure against the registry
func Build(layout *parser.TypeLayout, reg *TypeRegistry) (*StructSpec, error) {
	if layout == nil {
		return nil, fmt.Errorf("layout is nil")
	}

	b := &builder{
		name:  layout.Name,
		size:  layout.Anno.Bytes,
		reg:   reg,
		names: make(map[string]string),
	}

	s := &StructSpec{
		Name:        layout.Name,
		ByteSize:    layout.Anno.Bytes,
		Description: describe(layout.Anno),
	}

	for _, raw := range layout.Fields {
		f, err := b.field(raw)
		if err != nil {
			return nil, err
		}
		s.Fields = append(s.Fields, f)
	}

	if total := s.BitLen(); total > s.ByteSize*8 {
		return nil, errors.Schema(s.Name, "", errors.KindOverflow,
			"fields cover %d bits, structure is %d bytes (%d bits)", total, s.ByteSize, s.ByteSize*8)
	}

	proto, err := protocolInfo(s.Name, layout.Anno)
	if err != nil {
		return nil, err
	}
	s.Protocol = proto

	return s, nil
}

func (b *builder) field(raw parser.Field) (*FieldSpec, error) {
	f := &FieldSpec{Name: raw.Name}
	if f.Name == "" {
		b.reserved++
		f.Name = fmt.Sprintf("reserved%d", b.reserved)
		f.Reserved = true
	}
	// distinct schema names may still map to one Go identifier
	ident := f.GoName()
	if prev, ok := b.names[ident]; ok {
		if prev == f.Name {
			return nil, errors.Schema(b.name, f.Name, errors.KindDuplicate, "field declared more than once")
		}
		return nil, errors.Schema(b.name, f.Name, errors.KindDuplicate,
			"Go identifier %s is already used by field %q", ident, prev)
	}
	b.names[ident] = f.Name

	off, err := parser.ParseOffset(raw.Layout.Offset)
	if err != nil {
		return nil, errors.New(errors.PhaseValidate, errors.KindOffset).
			Struct(b.name).Field(f.Name).Cause(err).Build()
	}
	f.BitOffset = off

	f.ElementCount = raw.Layout.Count
	if f.ElementCount == 0 {
		f.ElementCount = 1
	}
	if f.ElementCount < 0 {
		return nil, errors.Schema(b.name, f.Name, errors.KindCount, "invalid count %d", f.ElementCount)
	}

	f.ElementType, err = b.elementType(f.Name, raw.Layout.Type)
	if err != nil {
		return nil, err
	}

	f.ElementBitWidth = raw.Layout.Bits
	if err := b.checkWidth(f); err != nil {
		return nil, err
	}

	if f.BitOffset != b.end {
		return nil, errors.Schema(b.name, f.Name, errors.KindOffset,
			"declared at bit %d but previous field ends at bit %d", f.BitOffset, b.end)
	}
	b.end += f.BitLen()

	return f, nil
}

func (b *builder) elementType(field, tag string) (ElementType, error) {
	switch tag {
	case "", "uint":
		return UintType{}, nil
	case "opaque", "bytes":
		return OpaqueType{}, nil
	case "address", "HdrIPv6Addr":
		return AddressType{}, nil
	}

	if name, ok := strings.CutPrefix(tag, "struct "); ok {
		name = strings.TrimSpace(name)
		if _, known := b.reg.Lookup(name); !known {
			return nil, errors.Schema(b.name, field, errors.KindUnknownStruct, "unknown structure %q", name)
		}
		return StructType{Name: name}, nil
	}

	return nil, errors.Schema(b.name, field, errors.KindSyntax, "unknown element type %q", tag)
}

func (b *builder) checkWidth(f *FieldSpec) error {
	if t, ok := f.ElementType.(StructType); ok {
		size, _ := b.reg.Lookup(t.Name)
		if f.ElementBitWidth == 0 {
			f.ElementBitWidth = size * 8
		}
		if f.ElementBitWidth != size*8 {
			return errors.Schema(b.name, f.Name, errors.KindWidth,
				"element width %d does not match %s size of %d bytes", f.ElementBitWidth, t.Name, size)
		}
		return nil
	}

	if f.ElementBitWidth <= 0 {
		return errors.Schema(b.name, f.Name, errors.KindWidth, "width must be declared and non-zero")
	}

	switch f.ElementType.(type) {
	case OpaqueType:
		if f.BitLen()%8 != 0 {
			return errors.Schema(b.name, f.Name, errors.KindWidth,
				"opaque field of %d bits is not a whole number of bytes", f.BitLen())
		}
	case AddressType:
		if f.BitLen()%8 != 0 {
			return errors.Schema(b.name, f.Name, errors.KindWidth,
				"opaque field of %d bits is not a whole number of bytes", f.BitLen())
		}
		// addresses are always copied as AddressBytes bytes
		if end := f.BitOffset/8 + AddressBytes; end > b.size {
			return errors.Schema(b.name, f.Name, errors.KindOverflow,
				"address copies %d bytes from byte %d, past the %d byte structure", AddressBytes, f.BitOffset/8, b.size)
		}
	case UintType:
		if f.ElementBitWidth > 64 {
			if f.ElementCount != 1 {
				return errors.Schema(b.name, f.Name, errors.KindWidth,
					"array element of %d bits is wider than 64; declare it opaque", f.ElementBitWidth)
			}
			if f.ElementBitWidth%8 != 0 {
				return errors.Schema(b.name, f.Name, errors.KindWidth,
					"scalar of %d bits is wider than 64 and not a whole number of bytes", f.ElementBitWidth)
			}
		}
	}
	return nil
}

func describe(anno *parser.TypeAnnotation) string {
	if anno.Section == "" {
		return anno.Desc
	}
	return fmt.Sprintf("%s (section %s)", anno.Desc, anno.Section)
}
