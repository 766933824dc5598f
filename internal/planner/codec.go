// Package planner chooses an encode/decode strategy for every layout group of
// a structure and merges adjacent strategies into emission units.
package planner

import (
	"fmt"

	"github.com/alexhholmes/bitlayout/internal/analyzer"
)

// Codec is one encode/decode strategy covering a contiguous bit range
type Codec interface {
	// BitOffset is the absolute start of the range
	BitOffset() int
	// Bits is the width of the range
	Bits() int
	// Kind names the strategy for plans and logs
	Kind() string
	codec()
}

// Scalar marks an element reference that is not indexed
const Scalar = -1

// Primitive reads or writes one fixed-width big-endian integer
type Primitive struct {
	Field  *analyzer.FieldSpec
	Index  int // element index, or Scalar
	Offset int
	Width  int // 8, 16, 32 or 64
}

// ByteCopy copies a byte range verbatim
type ByteCopy struct {
	Field  *analyzer.FieldSpec
	Offset int
	Length int // bytes
}

// Address copies a fixed 16-byte network address
type Address struct {
	Field  *analyzer.FieldSpec
	Offset int
}

// BitArray packs elements of an odd width MSB-first over whole bytes
type BitArray struct {
	Field  *analyzer.FieldSpec
	Offset int
}

// Nested delegates one element to the referenced structure's own codec
type Nested struct {
	Field  *analyzer.FieldSpec
	Index  int // element index, or Scalar
	Offset int
}

// Slot is one value inside a composite word
type Slot struct {
	Field *analyzer.FieldSpec
	Index int // element index, or Scalar
	Bits  int
	Shift int // distance of the slot's least significant bit from bit 0 of the word
}

// Mask returns the value mask for the slot width
func (s Slot) Mask() uint64 {
	if s.Bits >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(s.Bits) - 1
}

// Composite bit-packs several values into one machine word through a pair of
// synthesized accessors
type Composite struct {
	Name   string // accessor suffix, packN_W
	Offset int
	Width  int // 8, 16, 32 or 64
	Slots  []Slot
}

// Pack combines vals, one per slot, the way the generated accessor does.
// Values wider than their slot are truncated.
func (c *Composite) Pack(vals []uint64) uint64 {
	var w uint64
	for i, s := range c.Slots {
		w |= (vals[i] & s.Mask()) << uint(s.Shift)
	}
	return w
}

// Unpack splits a word into one value per slot
func (c *Composite) Unpack(w uint64) []uint64 {
	vals := make([]uint64, len(c.Slots))
	for i, s := range c.Slots {
		vals[i] = (w >> uint(s.Shift)) & s.Mask()
	}
	return vals
}

func (c *Primitive) BitOffset() int { return c.Offset }
func (c *ByteCopy) BitOffset() int  { return c.Offset }
func (c *Address) BitOffset() int   { return c.Offset }
func (c *BitArray) BitOffset() int  { return c.Offset }
func (c *Nested) BitOffset() int    { return c.Offset }
func (c *Composite) BitOffset() int { return c.Offset }

func (c *Primitive) Bits() int { return c.Width }
func (c *ByteCopy) Bits() int  { return c.Length * 8 }
func (c *Address) Bits() int   { return analyzer.AddressBytes * 8 }
func (c *BitArray) Bits() int  { return c.Field.BitLen() }
func (c *Nested) Bits() int    { return c.Field.ElementBitWidth }
func (c *Composite) Bits() int { return c.Width }

func (*Primitive) Kind() string { return "primitive" }
func (*ByteCopy) Kind() string  { return "bytes" }
func (*Address) Kind() string   { return "address" }
func (*BitArray) Kind() string  { return "bitarray" }
func (*Nested) Kind() string    { return "nested" }
func (*Composite) Kind() string { return "composite" }

func (*Primitive) codec() {}
func (*ByteCopy) codec()  {}
func (*Address) codec()   {}
func (*BitArray) codec()  {}
func (*Nested) codec()    {}
func (*Composite) codec() {}

// Describe renders a codec for plan tables, e.g. "status[2]" or "pack0_32(a,b,c)"
func Describe(c Codec) string {
	switch c := c.(type) {
	case *Primitive:
		return ref(c.Field.Name, c.Index)
	case *Nested:
		return ref(c.Field.Name, c.Index)
	case *ByteCopy:
		return c.Field.Name
	case *Address:
		return c.Field.Name
	case *BitArray:
		return fmt.Sprintf("%s[%dx%d]", c.Field.Name, c.Field.ElementCount, c.Field.ElementBitWidth)
	case *Composite:
		s := c.Name + "("
		for i, slot := range c.Slots {
			if i > 0 {
				s += ","
			}
			s += ref(slot.Field.Name, slot.Index)
		}
		return s + ")"
	}
	return "?"
}

func ref(name string, index int) string {
	if index == Scalar {
		return name
	}
	return fmt.Sprintf("%s[%d]", name, index)
}
