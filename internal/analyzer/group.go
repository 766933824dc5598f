package analyzer

import (
	"github.com/alexhholmes/bitlayout/internal/errors"
)

// Group is a run of consecutive fields whose combined width is a multiple of
// 32 bits, or a single aligned field
type Group struct {
	Fields []*FieldSpec
}

// Bits returns the total width of the group
func (g *Group) Bits() int {
	total := 0
	for _, f := range g.Fields {
		total += f.BitLen()
	}
	return total
}

// BitOffset returns the absolute bit offset of the first field
func (g *Group) BitOffset() int {
	return g.Fields[0].BitOffset
}

// Singleton reports whether the group holds exactly one field
func (g *Group) Singleton() bool {
	return len(g.Fields) == 1
}

// closes reports whether a field of width bits placed at group-relative
// offset off ends the current group
func closes(off, bits int) bool {
	return (off == 0 && (off+bits)%32 == 0) || (off+bits)%32 == 0
}

// GroupFields partitions the structure's fields in declaration order. A closed
// run in which every field is aligned is split into singletons; any other run
// becomes a single composite group.
func GroupFields(s *StructSpec) ([]*Group, error) {
	var (
		groups  []*Group
		current []*FieldSpec
		off     int
	)

	for _, f := range s.Fields {
		bits := f.BitLen()
		current = append(current, f)

		if !closes(off, bits) {
			off += bits
			continue
		}

		if allAligned(current) {
			for _, cf := range current {
				groups = append(groups, &Group{Fields: []*FieldSpec{cf}})
			}
		} else {
			groups = append(groups, &Group{Fields: current})
		}
		current = nil
		off = 0
	}

	if len(current) > 0 {
		return nil, errors.New(errors.PhaseGroup, errors.KindUnclosedGroup).
			Struct(s.Name).
			Field(current[0].Name).
			Detail("%d trailing bits starting at bit %d do not reach a 32-bit boundary", off, current[0].BitOffset).
			Build()
	}

	return groups, nil
}

func allAligned(fields []*FieldSpec) bool {
	for _, f := range fields {
		if !f.IsAligned() {
			return false
		}
	}
	return true
}
