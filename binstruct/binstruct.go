// Package binstruct is the runtime support imported by code generated with
// mkstructs.
//
// Generated encoders do not validate: a value wider than its field is
// truncated to the field width when packed.
package binstruct

import "io"

// Struct is implemented by every generated structure
type Struct interface {
	// Size returns the wire size in bytes
	Size() int
	// PackInto writes the structure into buf starting at offset
	PackInto(buf []byte, offset int)
	// UnpackFrom reads the structure from buf starting at offset
	UnpackFrom(buf []byte, offset int)
	// Printer writes a labelled hex dump of the structure
	Printer(w io.Writer, offset int) error
}

// Unsigned is the set of element types a bit array can hold
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// PackArray8 writes each value as a bits-wide element, most significant bit
// first, starting at bit 0 of buf[0]. Every target bit is written, so stale
// buffer content is overwritten.
func PackArray8[T Unsigned](buf []byte, bits int, vals []T) {
	pos := 0
	for _, v := range vals {
		for b := bits - 1; b >= 0; b-- {
			mask := byte(0x80) >> uint(pos%8)
			if uint64(v)>>uint(b)&1 == 1 {
				buf[pos/8] |= mask
			} else {
				buf[pos/8] &^= mask
			}
			pos++
		}
	}
}

// UnpackArray8 is the inverse of PackArray8
func UnpackArray8[T Unsigned](buf []byte, bits int, vals []T) {
	pos := 0
	for i := range vals {
		var v uint64
		for b := 0; b < bits; b++ {
			v <<= 1
			if buf[pos/8]&(byte(0x80)>>uint(pos%8)) != 0 {
				v |= 1
			}
			pos++
		}
		vals[i] = T(v)
	}
}
