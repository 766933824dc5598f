package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// FieldLayout is the raw, unvalidated placement of one schema field
type FieldLayout struct {
	Offset string // "N" (byte N) or "N[S]" (bit S of byte N)
	Bits   int    // Element bit width; 0 if not given
	Count  int    // Element count; 0 means 1
	Type   string // "", "uint", "struct Name", "opaque", "bytes", "address", "HdrIPv6Addr"
}

// ParseTag parses layout struct tags
//
// Semantics:
//   - "@N"         : field starts at byte N
//   - "@N[S]"      : field starts at bit S (0-7, most significant first) of byte N
//   - "bits=W"     : element bit width
//   - "count=C"    : number of repeated elements
//   - "type=T"     : element type tag (opaque, address, "struct Name", ...)
//
// Examples:
//
//	"@0,bits=8"                 → 8-bit field at byte 0
//	"@4[3],bits=5"              → 5-bit field starting at bit 35
//	"@8,bits=16,count=4"        → four 16-bit elements from byte 8
//	"@16,bits=128,type=address" → IPv6 style address at byte 16
func ParseTag(tag string) (*FieldLayout, error) {
	if tag == "" {
		return nil, fmt.Errorf("empty layout tag")
	}

	parts := strings.Split(tag, ",")
	if !strings.HasPrefix(parts[0], "@") {
		return nil, fmt.Errorf("layout tag must start with @offset: %s", tag)
	}

	f := &FieldLayout{Offset: strings.TrimPrefix(parts[0], "@")}
	if _, err := ParseOffset(f.Offset); err != nil {
		return nil, err
	}

	for _, part := range parts[1:] {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("invalid layout parameter: %s", part)
		}

		switch key {
		case "bits":
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("invalid bits: %s", value)
			}
			f.Bits = n
		case "count":
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("invalid count: %s", value)
			}
			f.Count = n
		case "type":
			if value == "" {
				return nil, fmt.Errorf("type= requires a value")
			}
			f.Type = value
		default:
			return nil, fmt.Errorf("unknown parameter: %s", key)
		}
	}

	return f, nil
}

var offsetRe = regexp.MustCompile(`^(\d+)(?:\[(\d+)\])?$`)

// ParseOffset converts a schema offset expression to an absolute bit offset.
// "N" is byte N; "N[S]" is byte N plus S bits, S in 0..7.
func ParseOffset(expr string) (int, error) {
	m := offsetRe.FindStringSubmatch(strings.TrimSpace(expr))
	if m == nil {
		return 0, fmt.Errorf("malformed offset %q (want byte or byte[bit])", expr)
	}

	byteOff, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("malformed offset %q: %w", expr, err)
	}
	if m[2] == "" {
		return byteOff * 8, nil
	}

	sub, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, fmt.Errorf("malformed offset %q: %w", expr, err)
	}
	if sub > 7 {
		return 0, fmt.Errorf("malformed offset %q: sub-byte bit %d out of range 0-7", expr, sub)
	}
	return byteOff*8 + sub, nil
}
