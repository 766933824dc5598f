package config

import (
	"strings"

	"github.com/alexhholmes/bitlayout/internal/codegen"
)

// ApplyDefaults fills unset fields. Explicit values are preserved.
func ApplyDefaults(cfg *Config) {
	if cfg.Package == "" {
		cfg.Package = "structs"
	}
	if cfg.RuntimeImport == "" {
		cfg.RuntimeImport = codegen.DefaultRuntimeImport
	}
	if cfg.ScratchSize == 0 {
		cfg.ScratchSize = codegen.DefaultScratchSize
	}
	if cfg.TestOutput == "" && cfg.Output != "" {
		cfg.TestOutput = strings.TrimSuffix(cfg.Output, ".go") + "_test.go"
	}

	applyLoggingDefaults(&cfg.Logging)
}

func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	cfg.Level = strings.ToLower(cfg.Level)

	if cfg.Format == "" {
		cfg.Format = "console"
	}
}
