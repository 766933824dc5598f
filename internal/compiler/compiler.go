// Package compiler drives schema files through parsing, validation, planning
// and code generation, and writes the generated artifacts.
package compiler

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/alexhholmes/bitlayout/internal/analyzer"
	"github.com/alexhholmes/bitlayout/internal/codegen"
	"github.com/alexhholmes/bitlayout/internal/config"
	"github.com/alexhholmes/bitlayout/internal/output"
	"github.com/alexhholmes/bitlayout/internal/parser"
	"github.com/alexhholmes/bitlayout/internal/planner"
)

// Result holds everything produced by one compilation
type Result struct {
	Plans  []*planner.Plan
	Source []byte // structures file
	Test   []byte // test harness file
}

// Plan parses and validates the schemas and plans every structure. Structures
// from all files share one namespace, in file order.
func Plan(schemas []string) ([]*planner.Plan, error) {
	var layouts []*parser.TypeLayout
	for _, path := range schemas {
		types, err := parser.ParseFile(path)
		if err != nil {
			return nil, err
		}
		Logger().Debug("parsed schema", zap.String("file", path), zap.Int("structs", len(types)))
		layouts = append(layouts, types...)
	}

	specs, err := analyzer.Analyze(layouts)
	if err != nil {
		return nil, err
	}

	plans := make([]*planner.Plan, 0, len(specs))
	for _, s := range specs {
		p, err := planner.Build(s)
		if err != nil {
			return nil, err
		}
		logPlan(p)
		plans = append(plans, p)
	}

	return plans, nil
}

func logPlan(p *planner.Plan) {
	log := Logger()
	if !log.Core().Enabled(zap.DebugLevel) {
		return
	}

	kinds := make([]string, 0, len(p.Codecs))
	for _, c := range p.Codecs {
		kinds = append(kinds, c.Kind())
	}
	log.Debug("planned struct",
		zap.String("struct", p.Struct.Name),
		zap.Int("bytes", p.Struct.ByteSize),
		zap.Int("groups", len(p.Groups)),
		zap.Strings("codecs", kinds),
		zap.Int("units", len(p.Units)),
		zap.Int("spans", len(p.Spans)),
	)
}

// Compile runs the whole pipeline in memory. Nothing is written.
func Compile(schemas []string, opts codegen.Options) (*Result, error) {
	plans, err := Plan(schemas)
	if err != nil {
		return nil, err
	}

	if len(opts.Sources) == 0 {
		opts.Sources = schemas
	}
	gen := codegen.NewGenerator(plans, opts)

	src, err := gen.Generate()
	if err != nil {
		return nil, err
	}
	test, err := gen.GenerateTest()
	if err != nil {
		return nil, err
	}

	return &Result{Plans: plans, Source: src, Test: test}, nil
}

// Run compiles the configured schemas and writes both artifacts. A failed
// compilation or write leaves both existing outputs untouched.
func Run(cfg *config.Config) (*Result, error) {
	res, err := Compile(cfg.Schemas, codegen.Options{
		Package:       cfg.Package,
		RuntimeImport: cfg.RuntimeImport,
		ScratchSize:   cfg.ScratchSize,
	})
	if err != nil {
		return nil, err
	}

	err = output.WriteAll(
		output.File{Path: cfg.Output, Data: res.Source},
		output.File{Path: cfg.TestOutput, Data: res.Test},
	)
	if err != nil {
		return nil, fmt.Errorf("write %s and %s: %w", cfg.Output, cfg.TestOutput, err)
	}

	Logger().Info("generated structures",
		zap.Int("structs", len(res.Plans)),
		zap.String("output", cfg.Output),
		zap.String("test_output", cfg.TestOutput),
	)
	return res, nil
}
