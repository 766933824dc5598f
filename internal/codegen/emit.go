package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexhholmes/bitlayout/internal/analyzer"
	"github.com/alexhholmes/bitlayout/internal/planner"
)

// codecEmitter holds encode/decode code generators for one codec kind
type codecEmitter struct {
	encode func(c planner.Codec, ctx emitCtx) string
	decode func(c planner.Codec, ctx emitCtx) string
}

// emitCtx carries the buffer expression a codec is emitted against
type emitCtx struct {
	buf string               // "buf", or "b" inside a batch
	pos func(bit int) string // byte index expression for an absolute bit offset
}

func (c emitCtx) span(start, end int) string {
	return fmt.Sprintf("%s[%s:%s]", c.buf, c.pos(start), c.pos(end))
}

// at returns the byte expression offset+n
func at(n int) string {
	if n == 0 {
		return "offset"
	}
	return "offset+" + strconv.Itoa(n)
}

func standalone() emitCtx {
	return emitCtx{buf: "buf", pos: func(bit int) string { return at(bit / 8) }}
}

func batch(u *planner.Unit) emitCtx {
	return emitCtx{buf: "b", pos: func(bit int) string { return strconv.Itoa((bit - u.Start) / 8) }}
}

// emitters returns the code generators keyed by codec kind
func (g *structGen) emitters() map[string]codecEmitter {
	return map[string]codecEmitter{
		"primitive": {
			encode: func(c planner.Codec, ctx emitCtx) string {
				p := c.(*planner.Primitive)
				if p.Width == 8 {
					return fmt.Sprintf("\t%s[%s] = %s\n", ctx.buf, ctx.pos(p.Offset), ref(p.Field, p.Index))
				}
				g.gen.useBinary = true
				return fmt.Sprintf("\tbinary.BigEndian.PutUint%d(%s[%s:], %s)\n",
					p.Width, ctx.buf, ctx.pos(p.Offset), ref(p.Field, p.Index))
			},
			decode: func(c planner.Codec, ctx emitCtx) string {
				p := c.(*planner.Primitive)
				if p.Width == 8 {
					return fmt.Sprintf("\t%s = %s[%s]\n", ref(p.Field, p.Index), ctx.buf, ctx.pos(p.Offset))
				}
				g.gen.useBinary = true
				return fmt.Sprintf("\t%s = binary.BigEndian.Uint%d(%s[%s:])\n",
					ref(p.Field, p.Index), p.Width, ctx.buf, ctx.pos(p.Offset))
			},
		},
		"bytes": {
			encode: func(c planner.Codec, ctx emitCtx) string {
				b := c.(*planner.ByteCopy)
				return fmt.Sprintf("\tcopy(%s, %s[:])\n", ctx.span(b.Offset, b.Offset+b.Bits()), ref(b.Field, planner.Scalar))
			},
			decode: func(c planner.Codec, ctx emitCtx) string {
				b := c.(*planner.ByteCopy)
				return fmt.Sprintf("\tcopy(%s[:], %s)\n", ref(b.Field, planner.Scalar), ctx.span(b.Offset, b.Offset+b.Bits()))
			},
		},
		"address": {
			encode: func(c planner.Codec, ctx emitCtx) string {
				a := c.(*planner.Address)
				return fmt.Sprintf("\tcopy(%s, %s[:])\n", ctx.span(a.Offset, a.Offset+a.Bits()), ref(a.Field, planner.Scalar))
			},
			decode: func(c planner.Codec, ctx emitCtx) string {
				a := c.(*planner.Address)
				return fmt.Sprintf("\tcopy(%s[:], %s)\n", ref(a.Field, planner.Scalar), ctx.span(a.Offset, a.Offset+a.Bits()))
			},
		},
		"bitarray": {
			encode: func(c planner.Codec, ctx emitCtx) string {
				a := c.(*planner.BitArray)
				return fmt.Sprintf("\tbinstruct.PackArray8(%s, %d, %s[:])\n",
					ctx.span(a.Offset, a.Offset+a.Bits()), a.Field.ElementBitWidth, ref(a.Field, planner.Scalar))
			},
			decode: func(c planner.Codec, ctx emitCtx) string {
				a := c.(*planner.BitArray)
				return fmt.Sprintf("\tbinstruct.UnpackArray8(%s, %d, %s[:])\n",
					ctx.span(a.Offset, a.Offset+a.Bits()), a.Field.ElementBitWidth, ref(a.Field, planner.Scalar))
			},
		},
		"nested": {
			encode: func(c planner.Codec, ctx emitCtx) string {
				n := c.(*planner.Nested)
				return fmt.Sprintf("\t%s.PackInto(%s, %s)\n", ref(n.Field, n.Index), ctx.buf, ctx.pos(n.Offset))
			},
			decode: func(c planner.Codec, ctx emitCtx) string {
				n := c.(*planner.Nested)
				return fmt.Sprintf("\t%s.UnpackFrom(%s, %s)\n", ref(n.Field, n.Index), ctx.buf, ctx.pos(n.Offset))
			},
		},
		"composite": {
			encode: func(c planner.Codec, ctx emitCtx) string {
				cc := c.(*planner.Composite)
				if cc.Width == 8 {
					return fmt.Sprintf("\t%s[%s] = p.%s()\n", ctx.buf, ctx.pos(cc.Offset), cc.Name)
				}
				g.gen.useBinary = true
				return fmt.Sprintf("\tbinary.BigEndian.PutUint%d(%s[%s:], p.%s())\n",
					cc.Width, ctx.buf, ctx.pos(cc.Offset), cc.Name)
			},
			decode: func(c planner.Codec, ctx emitCtx) string {
				cc := c.(*planner.Composite)
				if cc.Width == 8 {
					return fmt.Sprintf("\tp.un%s(%s[%s])\n", cc.Name, ctx.buf, ctx.pos(cc.Offset))
				}
				g.gen.useBinary = true
				return fmt.Sprintf("\tp.un%s(binary.BigEndian.Uint%d(%s[%s:]))\n",
					cc.Name, cc.Width, ctx.buf, ctx.pos(cc.Offset))
			},
		},
	}
}

// generateUnits emits the body of PackInto or UnpackFrom
func (g *structGen) generateUnits(op string) string {
	var code strings.Builder
	emitters := g.emitters()

	for i, u := range g.plan.Units {
		if i > 0 {
			code.WriteString("\n")
		}
		code.WriteString(fmt.Sprintf("\t// %s at [%d, %d)\n", unitFields(u), u.StartByte(), u.EndByte()))

		ctx := standalone()
		if u.Batched() {
			code.WriteString(fmt.Sprintf("\tb = buf[%s : %s]\n", at(u.StartByte()), at(u.EndByte())))
			ctx = batch(u)
		}

		for _, c := range u.Codecs {
			e := emitters[c.Kind()]
			if op == "encode" {
				code.WriteString(e.encode(c, ctx))
			} else {
				code.WriteString(e.decode(c, ctx))
			}
		}
	}

	return code.String()
}

// unitFields lists the distinct field names a unit covers
func unitFields(u *planner.Unit) string {
	var names []string
	seen := make(map[string]bool)
	add := func(f *analyzer.FieldSpec) {
		if !seen[f.Name] {
			seen[f.Name] = true
			names = append(names, f.Name)
		}
	}

	for _, c := range u.Codecs {
		switch c := c.(type) {
		case *planner.Primitive:
			add(c.Field)
		case *planner.ByteCopy:
			add(c.Field)
		case *planner.Address:
			add(c.Field)
		case *planner.BitArray:
			add(c.Field)
		case *planner.Nested:
			add(c.Field)
		case *planner.Composite:
			for _, s := range c.Slots {
				add(s.Field)
			}
		}
	}
	return strings.Join(names, ", ")
}

// generateAccessors emits the pack/unpack pair of every composite codec
func (g *structGen) generateAccessors() string {
	var code strings.Builder
	name := g.plan.Struct.Name

	for _, c := range g.plan.Composites() {
		word := uintType(c.Width)

		code.WriteString(fmt.Sprintf("func (p *%s) %s() %s {\n", name, c.Name, word))
		code.WriteString(fmt.Sprintf("\tvar w %s\n", word))
		for _, s := range c.Slots {
			val := fmt.Sprintf("%s(%s&%#x)", word, ref(s.Field, s.Index), s.Mask())
			if s.Shift > 0 {
				val = fmt.Sprintf("%s << %d", val, s.Shift)
			}
			code.WriteString(fmt.Sprintf("\tw |= %s\n", val))
		}
		code.WriteString("\treturn w\n")
		code.WriteString("}\n\n")

		code.WriteString(fmt.Sprintf("func (p *%s) un%s(w %s) {\n", name, c.Name, word))
		for _, s := range c.Slots {
			src := "w"
			if s.Shift > 0 {
				src = fmt.Sprintf("(w >> %d)", s.Shift)
			}
			code.WriteString(fmt.Sprintf("\t%s = %s(%s & %#x)\n", ref(s.Field, s.Index), elemType(s.Field), src, s.Mask()))
		}
		code.WriteString("}\n\n")
	}

	return code.String()
}
