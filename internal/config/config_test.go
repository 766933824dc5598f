package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexhholmes/bitlayout/internal/codegen"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mkstructs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
schemas: [mad.yaml, smp.yaml]
output: gen/mad.go
package: mad
logging:
  level: DEBUG
`)

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"mad.yaml", "smp.yaml"}, cfg.Schemas)
	assert.Equal(t, "gen/mad.go", cfg.Output)
	assert.Equal(t, "gen/mad_test.go", cfg.TestOutput)
	assert.Equal(t, "mad", cfg.Package)
	assert.Equal(t, codegen.DefaultRuntimeImport, cfg.RuntimeImport)
	assert.Equal(t, 512, cfg.ScratchSize)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoad_Env(t *testing.T) {
	path := writeConfig(t, "schemas: [mad.yaml]\noutput: mad.go\n")
	t.Setenv("MKSTRUCTS_PACKAGE", "fromenv")
	t.Setenv("MKSTRUCTS_LOGGING_FORMAT", "json")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "fromenv", cfg.Package)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_FlagsOverride(t *testing.T) {
	path := writeConfig(t, "schemas: [mad.yaml]\noutput: mad.go\npackage: filepkg\n")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("package", "flagdefault", "")
	fs.String("output", "unused.go", "")
	fs.StringSlice("schema", nil, "")
	require.NoError(t, fs.Parse([]string{"--package", "flagpkg", "--schema", "a.yaml", "--schema", "b.go"}))

	cfg, err := Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, "flagpkg", cfg.Package)
	assert.Equal(t, []string{"a.yaml", "b.go"}, cfg.Schemas)
	// unset flag does not mask the file
	assert.Equal(t, "mad.go", cfg.Output)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{Schemas: []string{"a.yaml"}, Output: "a.go"}
		ApplyDefaults(cfg)
		return cfg
	}

	require.NoError(t, Validate(valid()))

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no schemas", func(c *Config) { c.Schemas = nil }},
		{"empty schema", func(c *Config) { c.Schemas = []string{""} }},
		{"no output", func(c *Config) { c.Output = "" }},
		{"bad level", func(c *Config) { c.Logging.Level = "trace" }},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }},
		{"negative scratch", func(c *Config) { c.ScratchSize = -1 }},
		{"same outputs", func(c *Config) { c.TestOutput = c.Output }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, Validate(cfg))
		})
	}
}

func TestApplyDefaults_Preserves(t *testing.T) {
	cfg := &Config{
		Output:      "x.go",
		TestOutput:  "x_harness_test.go",
		Package:     "x",
		ScratchSize: 64,
		Logging:     LoggingConfig{Level: "WARN", Format: "json"},
	}
	ApplyDefaults(cfg)

	assert.Equal(t, "x_harness_test.go", cfg.TestOutput)
	assert.Equal(t, "x", cfg.Package)
	assert.Equal(t, 64, cfg.ScratchSize)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}
