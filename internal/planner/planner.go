package planner

import (
	"fmt"

	"github.com/alexhholmes/bitlayout/internal/analyzer"
	"github.com/alexhholmes/bitlayout/internal/errors"
)

// Plan is the complete compilation plan for one structure
type Plan struct {
	Struct *analyzer.StructSpec
	Groups []*analyzer.Group
	Codecs []Codec
	Units  []*Unit
	Spans  []analyzer.PrintSpan
}

// Composites returns the composite codecs of the plan in order
func (p *Plan) Composites() []*Composite {
	var out []*Composite
	for _, c := range p.Codecs {
		if cc, ok := c.(*Composite); ok {
			out = append(out, cc)
		}
	}
	return out
}

// planner holds per-structure state; packCount numbers composite accessors
type planner struct {
	s         *analyzer.StructSpec
	packCount int
}

// Build groups, plans and assembles one structure
func Build(s *analyzer.StructSpec) (*Plan, error) {
	groups, err := analyzer.GroupFields(s)
	if err != nil {
		return nil, err
	}

	p := &planner{s: s}
	var codecs []Codec
	for _, g := range groups {
		cs, err := p.group(g)
		if err != nil {
			return nil, err
		}
		codecs = append(codecs, cs...)
	}

	units, err := Assemble(s.Name, codecs)
	if err != nil {
		return nil, err
	}

	return &Plan{
		Struct: s,
		Groups: groups,
		Codecs: codecs,
		Units:  units,
		Spans:  analyzer.PrintSpans(groups),
	}, nil
}

func (p *planner) group(g *analyzer.Group) ([]Codec, error) {
	if g.Singleton() {
		return p.singleton(g.Fields[0])
	}
	c, err := p.composite(g)
	if err != nil {
		return nil, err
	}
	return []Codec{c}, nil
}

func (p *planner) singleton(f *analyzer.FieldSpec) ([]Codec, error) {
	width := f.ElementBitWidth

	switch f.ElementType.(type) {
	case analyzer.StructType:
		out := make([]Codec, 0, f.ElementCount)
		if f.ElementCount == 1 {
			return append(out, &Nested{Field: f, Index: Scalar, Offset: f.BitOffset}), nil
		}
		for i := 0; i < f.ElementCount; i++ {
			out = append(out, &Nested{Field: f, Index: i, Offset: f.BitOffset + i*width})
		}
		return out, nil
	case analyzer.AddressType:
		return []Codec{&Address{Field: f, Offset: f.BitOffset}}, nil
	case analyzer.OpaqueType:
		return []Codec{&ByteCopy{Field: f, Offset: f.BitOffset, Length: f.BitLen() / 8}}, nil
	}

	if f.ElementCount == 1 {
		if width > 64 {
			return []Codec{&ByteCopy{Field: f, Offset: f.BitOffset, Length: width / 8}}, nil
		}
		if !primitiveWidth(width) {
			return nil, errors.New(errors.PhasePlan, errors.KindCodecWidth).
				Struct(p.s.Name).Field(f.Name).
				Detail("no fixed-width integer codec for %d bits", width).Build()
		}
		return []Codec{&Primitive{Field: f, Index: Scalar, Offset: f.BitOffset, Width: width}}, nil
	}

	switch width {
	case 8:
		return []Codec{&ByteCopy{Field: f, Offset: f.BitOffset, Length: f.ElementCount}}, nil
	case 16, 32, 64:
		out := make([]Codec, 0, f.ElementCount)
		for i := 0; i < f.ElementCount; i++ {
			out = append(out, &Primitive{Field: f, Index: i, Offset: f.BitOffset + i*width, Width: width})
		}
		return out, nil
	}

	if f.BitLen()%8 != 0 || f.BitOffset%8 != 0 {
		return nil, errors.New(errors.PhasePlan, errors.KindAlignment).
			Struct(p.s.Name).Field(f.Name).
			Detail("bit array of %d bits at bit %d does not cover whole bytes", f.BitLen(), f.BitOffset).Build()
	}
	return []Codec{&BitArray{Field: f, Offset: f.BitOffset}}, nil
}

func (p *planner) composite(g *analyzer.Group) (*Composite, error) {
	width := g.Bits()
	if !primitiveWidth(width) {
		return nil, errors.New(errors.PhasePlan, errors.KindCodecWidth).
			Struct(p.s.Name).Field(g.Fields[0].Name).
			Detail("packed group of %d bits does not fit an 8, 16, 32 or 64 bit word", width).Build()
	}

	c := &Composite{
		Name:   fmt.Sprintf("pack%d_%d", p.packCount, width),
		Offset: g.BitOffset(),
		Width:  width,
	}
	p.packCount++

	used := 0
	for _, f := range g.Fields {
		if _, ok := f.ElementType.(analyzer.UintType); !ok {
			return nil, errors.New(errors.PhasePlan, errors.KindAlignment).
				Struct(p.s.Name).Field(f.Name).
				Detail("%s field cannot be bit-packed", f.ElementType).Build()
		}

		for i := 0; i < f.ElementCount; i++ {
			index := i
			if f.ElementCount == 1 {
				index = Scalar
			}
			used += f.ElementBitWidth
			c.Slots = append(c.Slots, Slot{
				Field: f,
				Index: index,
				Bits:  f.ElementBitWidth,
				Shift: width - used,
			})
		}
	}

	return c, nil
}

func primitiveWidth(bits int) bool {
	switch bits {
	case 8, 16, 32, 64:
		return true
	}
	return false
}
