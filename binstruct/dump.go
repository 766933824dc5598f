package binstruct

import (
	"fmt"
	"io"
	"strings"
)

// Dumper renders a packed structure as rows of 32-bit words in hex, each span
// labelled with its field values:
//
//	MADHeader
//	  0000: 01 81 01 03  baseVersion=1,mgmtClass=129,classVersion=1,r=0,method=3
//	  0004: 00 00 00 00  status=0,classSpecific=0
//
// The first write error is kept and all later output is skipped.
type Dumper struct {
	w    io.Writer
	buf  []byte
	base int
	err  error
}

// NewDumper writes the header line and returns a dumper over buf, whose byte 0
// is reported at address base
func NewDumper(w io.Writer, name string, buf []byte, base int) *Dumper {
	d := &Dumper{w: w, buf: buf, base: base}
	d.printf("%s\n", name)
	return d
}

// Span dumps bits [start, end) of the buffer. The label is printed beside the
// first row.
func (d *Dumper) Span(start, end int, label string) {
	first := start / 8
	last := (end + 7) / 8
	if last > len(d.buf) {
		last = len(d.buf)
	}

	for row := first; row < last; row += 4 {
		stop := row + 4
		if stop > last {
			stop = last
		}

		var hex strings.Builder
		for i := row; i < row+4; i++ {
			if i > row {
				hex.WriteByte(' ')
			}
			if i < stop {
				fmt.Fprintf(&hex, "%02x", d.buf[i])
			} else {
				hex.WriteString("  ")
			}
		}

		if row == first && label != "" {
			d.printf("  %04x: %s  %s\n", d.base+row, hex.String(), label)
		} else {
			d.printf("  %04x: %s\n", d.base+row, hex.String())
		}
	}
}

// Err returns the first write error
func (d *Dumper) Err() error {
	return d.err
}

func (d *Dumper) printf(format string, args ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format, args...)
}
