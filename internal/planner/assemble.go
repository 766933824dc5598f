package planner

import (
	"github.com/alexhholmes/bitlayout/internal/errors"
)

// Unit is one emitted operation: a standalone codec, or a run of contiguous
// primitives sharing a single bounds-checked buffer slice
type Unit struct {
	Codecs []Codec
	Start  int // bits
	End    int // bits
}

// Batched reports whether the unit merges several primitives
func (u *Unit) Batched() bool {
	return len(u.Codecs) > 1
}

// StartByte returns the unit start in bytes
func (u *Unit) StartByte() int { return u.Start / 8 }

// EndByte returns the unit end in bytes
func (u *Unit) EndByte() int { return u.End / 8 }

// Assemble merges consecutive primitive codecs with contiguous offsets into
// batched units. Every other codec stands alone.
func Assemble(structName string, codecs []Codec) ([]*Unit, error) {
	var (
		units []*Unit
		run   *Unit
	)

	flush := func() {
		if run != nil {
			units = append(units, run)
			run = nil
		}
	}

	for _, c := range codecs {
		start, end := c.BitOffset(), c.BitOffset()+c.Bits()

		if _, ok := c.(*Primitive); !ok {
			flush()
			units = append(units, &Unit{Codecs: []Codec{c}, Start: start, End: end})
			continue
		}

		if run != nil && run.End != start {
			flush()
		}
		if run == nil {
			run = &Unit{Start: start, End: start}
		}
		run.Codecs = append(run.Codecs, c)
		run.End = end
	}
	flush()

	for _, u := range units {
		if u.Start%8 != 0 || (u.End-u.Start)%8 != 0 {
			return nil, errors.Internal(errors.PhaseAssemble, structName,
				"emission unit [%d, %d) is not byte aligned", u.Start, u.End)
		}
	}

	return units, nil
}
