package codegen

import (
	"fmt"
	"strings"

	"github.com/alexhholmes/bitlayout/internal/analyzer"
)

// GenerateTest returns the formatted source of a test file that round trips
// and prints every structure against a patterned scratch buffer
func (g *Generator) GenerateTest() ([]byte, error) {
	var out strings.Builder
	g.writeHeader(&out)

	compares := false
	for _, p := range g.plans {
		if g.exactBytes(p.Struct) > 0 {
			compares = true
		}
	}

	imports := []string{"io", "testing"}
	if compares {
		imports = append(imports, "bytes")
	}
	writeImports(&out, imports)

	out.WriteString(fmt.Sprintf("const harnessScratchSize = %d\n\n", g.scratchSize()))

	out.WriteString("func harnessScratch() []byte {\n")
	out.WriteString("\tbuf := make([]byte, harnessScratchSize)\n")
	out.WriteString("\tfor i := range buf {\n")
	out.WriteString("\t\tbuf[i] = byte(i*37 + 11)\n")
	out.WriteString("\t}\n")
	out.WriteString("\treturn buf\n")
	out.WriteString("}\n\n")

	out.WriteString("func TestGeneratedStructs(t *testing.T) {\n")
	out.WriteString("\tscratch := harnessScratch()\n\n")
	for i, p := range g.plans {
		if i > 0 {
			out.WriteString("\n")
		}
		out.WriteString(g.harnessCase(p.Struct))
	}
	out.WriteString("}\n")

	return formatSource(out.String())
}

func (g *Generator) harnessCase(s *analyzer.StructSpec) string {
	var code strings.Builder
	name := s.Name

	code.WriteString(fmt.Sprintf("\tt.Run(%q, func(t *testing.T) {\n", name))
	code.WriteString(fmt.Sprintf("\t\tvar v, w %s\n", name))
	code.WriteString("\t\tv.UnpackFrom(scratch, 0)\n\n")
	code.WriteString(fmt.Sprintf("\t\tbuf := make([]byte, %sSize)\n", name))
	code.WriteString("\t\tv.PackInto(buf, 0)\n")
	code.WriteString("\t\tw.UnpackFrom(buf, 0)\n")
	code.WriteString("\t\tif v != w {\n")
	code.WriteString("\t\t\tt.Fatalf(\"round trip mismatch:\\n got %+v\\nwant %+v\", w, v)\n")
	code.WriteString("\t\t}\n")

	if n := g.exactBytes(s); n > 0 {
		code.WriteString(fmt.Sprintf("\t\tif !bytes.Equal(buf[:%d], scratch[:%d]) {\n", n, n))
		code.WriteString(fmt.Sprintf("\t\t\tt.Fatalf(\"packed bytes differ:\\n got %%x\\nwant %%x\", buf[:%d], scratch[:%d])\n", n, n))
		code.WriteString("\t\t}\n")
	}

	code.WriteString("\n")
	code.WriteString("\t\tif err := v.Printer(io.Discard, 0); err != nil {\n")
	code.WriteString("\t\t\tt.Fatalf(\"printer: %v\", err)\n")
	code.WriteString("\t\t}\n\n")

	code.WriteString("\t\tv.Zero()\n")
	code.WriteString(fmt.Sprintf("\t\tif v != (%s{}) {\n", name))
	code.WriteString("\t\t\tt.Fatalf(\"zero value mismatch: %+v\", v)\n")
	code.WriteString("\t\t}\n")
	code.WriteString("\t})\n")

	return code.String()
}

// exactBytes returns how many leading bytes of s are reproduced bit for bit
// by a decode/encode cycle, or 0 when a nested structure leaves bytes
// untouched. Declared fields end on a 32-bit boundary.
func (g *Generator) exactBytes(s *analyzer.StructSpec) int {
	if !g.fullyCovered(s, true) {
		return 0
	}
	return s.BitLen() / 8
}

func (g *Generator) fullyCovered(s *analyzer.StructSpec, root bool) bool {
	if !root && s.BitLen() != s.ByteSize*8 {
		return false
	}
	for _, f := range s.Fields {
		if _, ok := f.ElementType.(analyzer.AddressType); ok && f.BitLen() != analyzer.AddressBytes*8 {
			return false
		}
		name := f.StructName()
		if name == "" {
			continue
		}
		nested, ok := g.specs[name]
		if !ok || !g.fullyCovered(nested, false) {
			return false
		}
	}
	return true
}

func (g *Generator) scratchSize() int {
	size := g.opts.ScratchSize
	for _, p := range g.plans {
		if p.Struct.ByteSize > size {
			size = p.Struct.ByteSize
		}
	}
	return size
}
