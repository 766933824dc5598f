// Package codegen renders compilation plans as Go source: one file holding the
// structure types and their codecs, and one test harness exercising them.
package codegen

import (
	"fmt"
	"go/format"
	"sort"
	"strings"

	"github.com/alexhholmes/bitlayout/internal/analyzer"
	"github.com/alexhholmes/bitlayout/internal/errors"
	"github.com/alexhholmes/bitlayout/internal/planner"
)

// DefaultRuntimeImport is the import path of the runtime support package
const DefaultRuntimeImport = "github.com/alexhholmes/bitlayout/binstruct"

// DefaultScratchSize is the minimum harness scratch buffer size in bytes
const DefaultScratchSize = 512

// Options controls the generated files
type Options struct {
	Package       string   // package clause of the generated files
	RuntimeImport string   // defaults to DefaultRuntimeImport
	Sources       []string // schema files, listed in the header
	ScratchSize   int      // minimum harness scratch size, defaults to DefaultScratchSize
}

// Generator generates Go code for a set of compiled structures
type Generator struct {
	plans []*planner.Plan
	specs map[string]*analyzer.StructSpec
	opts  Options

	// set while emitting, decides the import block
	useBinary bool
	useFmt    bool
}

// structGen generates the code of a single structure
type structGen struct {
	gen  *Generator
	plan *planner.Plan
}

// NewGenerator creates a new code generator
func NewGenerator(plans []*planner.Plan, opts Options) *Generator {
	if opts.RuntimeImport == "" {
		opts.RuntimeImport = DefaultRuntimeImport
	}
	if opts.ScratchSize == 0 {
		opts.ScratchSize = DefaultScratchSize
	}

	specs := make(map[string]*analyzer.StructSpec, len(plans))
	for _, p := range plans {
		specs[p.Struct.Name] = p.Struct
	}

	return &Generator{plans: plans, specs: specs, opts: opts}
}

// Generate returns the formatted source of the structures file
func (g *Generator) Generate() ([]byte, error) {
	g.useBinary, g.useFmt = false, false

	var body strings.Builder
	for _, p := range g.plans {
		sg := &structGen{gen: g, plan: p}
		body.WriteString(sg.generate())
	}

	var out strings.Builder
	g.writeHeader(&out)

	imports := []string{"io", g.opts.RuntimeImport}
	if g.useBinary {
		imports = append(imports, "encoding/binary")
	}
	if g.useFmt {
		imports = append(imports, "fmt")
	}
	writeImports(&out, imports)

	out.WriteString(body.String())
	return formatSource(out.String())
}

func (g *Generator) writeHeader(out *strings.Builder) {
	out.WriteString("// Code generated by mkstructs. DO NOT EDIT.\n")
	for _, src := range g.opts.Sources {
		out.WriteString(fmt.Sprintf("// source: %s\n", src))
	}
	out.WriteString("\n")
	out.WriteString(fmt.Sprintf("package %s\n\n", g.opts.Package))
}

// writeImports writes a grouped import block, standard library first
func writeImports(out *strings.Builder, paths []string) {
	var std, ext []string
	for _, p := range paths {
		if strings.Contains(p, ".") {
			ext = append(ext, p)
		} else {
			std = append(std, p)
		}
	}
	sort.Strings(std)
	sort.Strings(ext)

	out.WriteString("import (\n")
	for _, p := range std {
		out.WriteString(fmt.Sprintf("\t%q\n", p))
	}
	if len(std) > 0 && len(ext) > 0 {
		out.WriteString("\n")
	}
	for _, p := range ext {
		out.WriteString(fmt.Sprintf("\t%q\n", p))
	}
	out.WriteString(")\n\n")
}

func formatSource(src string) ([]byte, error) {
	formatted, err := format.Source([]byte(src))
	if err != nil {
		return nil, errors.Wrap(errors.PhaseGenerate, errors.KindInternal, err, "format generated source")
	}
	return formatted, nil
}

func (g *structGen) generate() string {
	var code strings.Builder

	code.WriteString(g.generateType())
	code.WriteString(g.generateConstants())
	code.WriteString(g.generateZero())
	code.WriteString(g.generateSize())
	code.WriteString(g.generatePackInto())
	code.WriteString(g.generateUnpackFrom())
	code.WriteString(g.generateAccessors())
	code.WriteString(g.generatePrinter())

	return code.String()
}

func (g *structGen) generateType() string {
	var code strings.Builder
	s := g.plan.Struct

	if s.Description != "" {
		code.WriteString(fmt.Sprintf("// %s is the %s\n", s.Name, s.Description))
	} else {
		code.WriteString(fmt.Sprintf("// %s is a %d byte wire structure\n", s.Name, s.ByteSize))
	}
	code.WriteString(fmt.Sprintf("type %s struct {\n", s.Name))
	for _, f := range s.Fields {
		code.WriteString(fmt.Sprintf("\t%s %s // bits [%d, %d)\n",
			fieldName(f), goType(f), f.BitOffset, f.BitOffset+f.BitLen()))
	}
	code.WriteString("}\n\n")

	code.WriteString(fmt.Sprintf("var _ binstruct.Struct = (*%s)(nil)\n\n", s.Name))
	return code.String()
}

func (g *structGen) generateConstants() string {
	var code strings.Builder
	s := g.plan.Struct

	code.WriteString(fmt.Sprintf("// %sSize is the wire size of %s in bytes\n", s.Name, s.Name))
	code.WriteString(fmt.Sprintf("const %sSize = %d\n\n", s.Name, s.ByteSize))

	p := s.Protocol
	if p == nil {
		return code.String()
	}

	code.WriteString(fmt.Sprintf("// %s management protocol constants\n", s.Name))
	code.WriteString("const (\n")
	if p.HasClass {
		code.WriteString(fmt.Sprintf("\t%sMgmtClass = 0x%02x\n", s.Name, p.MgmtClass))
		code.WriteString(fmt.Sprintf("\t%sMgmtClassVersion = 0x%02x\n", s.Name, p.MgmtClassVersion))
	}
	if p.HasAttributeID {
		code.WriteString(fmt.Sprintf("\t%sAttributeID = 0x%04x\n", s.Name, p.AttributeID))
	}
	for _, m := range p.Methods {
		code.WriteString(fmt.Sprintf("\t%sMethod%s = 0x%02x // %s\n", s.Name, m.Name, m.Code, m.Symbol))
	}
	code.WriteString(")\n\n")

	return code.String()
}

func (g *structGen) generateZero() string {
	var code strings.Builder
	s := g.plan.Struct

	code.WriteString(fmt.Sprintf("// Zero resets every field of %s to its default value\n", s.Name))
	code.WriteString(fmt.Sprintf("func (p *%s) Zero() {\n", s.Name))
	for _, f := range s.Fields {
		d := f.Default()
		name := fieldName(f)

		switch {
		case d.Kind == analyzer.DefaultStruct && d.Count == 1:
			code.WriteString(fmt.Sprintf("\tp.%s.Zero()\n", name))
		case d.Kind == analyzer.DefaultStruct:
			code.WriteString(fmt.Sprintf("\tfor i := range p.%s {\n", name))
			code.WriteString(fmt.Sprintf("\t\tp.%s[i].Zero()\n", name))
			code.WriteString("\t}\n")
		case d.Kind == analyzer.DefaultBytes:
			code.WriteString(fmt.Sprintf("\tp.%s = [%d]byte{}\n", name, d.Bytes))
		case d.Count == 1:
			code.WriteString(fmt.Sprintf("\tp.%s = 0\n", name))
		default:
			code.WriteString(fmt.Sprintf("\tp.%s = %s{}\n", name, goType(f)))
		}
	}
	code.WriteString("}\n\n")

	return code.String()
}

func (g *structGen) generateSize() string {
	name := g.plan.Struct.Name
	return fmt.Sprintf("// Size returns the wire size of %s in bytes\nfunc (p *%s) Size() int {\n\treturn %sSize\n}\n\n",
		name, name, name)
}

func (g *structGen) hasBatch() bool {
	for _, u := range g.plan.Units {
		if u.Batched() {
			return true
		}
	}
	return false
}

func (g *structGen) generatePackInto() string {
	var code strings.Builder
	name := g.plan.Struct.Name

	code.WriteString(fmt.Sprintf("// PackInto writes %s into buf at offset. buf must hold %sSize bytes\n", name, name))
	code.WriteString("// from offset. Values wider than their field are truncated.\n")
	code.WriteString(fmt.Sprintf("func (p *%s) PackInto(buf []byte, offset int) {\n", name))
	if g.hasBatch() {
		code.WriteString("\tvar b []byte\n\n")
	}
	code.WriteString(g.generateUnits("encode"))
	code.WriteString("}\n\n")

	return code.String()
}

func (g *structGen) generateUnpackFrom() string {
	var code strings.Builder
	name := g.plan.Struct.Name

	code.WriteString(fmt.Sprintf("// UnpackFrom reads %s from buf at offset\n", name))
	code.WriteString(fmt.Sprintf("func (p *%s) UnpackFrom(buf []byte, offset int) {\n", name))
	if g.hasBatch() {
		code.WriteString("\tvar b []byte\n\n")
	}
	code.WriteString(g.generateUnits("decode"))
	code.WriteString("}\n\n")

	return code.String()
}

func (g *structGen) generatePrinter() string {
	var code strings.Builder
	name := g.plan.Struct.Name

	code.WriteString(fmt.Sprintf("// Printer writes a labelled hex dump of %s. offset is the address reported\n", name))
	code.WriteString("// for the first byte.\n")
	code.WriteString(fmt.Sprintf("func (p *%s) Printer(w io.Writer, offset int) error {\n", name))
	code.WriteString(fmt.Sprintf("\tbuf := make([]byte, %sSize)\n", name))
	code.WriteString("\tp.PackInto(buf, 0)\n\n")
	code.WriteString(fmt.Sprintf("\td := binstruct.NewDumper(w, %q, buf, offset)\n", name))

	for _, span := range g.plan.Spans {
		var labels, args []string
		for _, f := range span.Fields {
			labels = append(labels, f.Name+"="+printVerb(f))
			args = append(args, ref(f, planner.Scalar))
		}
		g.gen.useFmt = true
		code.WriteString(fmt.Sprintf("\td.Span(%d, %d, fmt.Sprintf(%q, %s))\n",
			span.StartBit, span.EndBit, strings.Join(labels, ","), strings.Join(args, ", ")))
	}

	code.WriteString("\treturn d.Err()\n")
	code.WriteString("}\n\n")

	return code.String()
}
