// Package config loads mkstructs settings from a YAML file, MKSTRUCTS_*
// environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultConfigFile is read from the working directory when --config is not given
const DefaultConfigFile = "mkstructs.yaml"

// Config is the mkstructs configuration.
//
// Sources in order of precedence:
//  1. Command-line flags
//  2. Environment variables (MKSTRUCTS_*)
//  3. Configuration file
//  4. Default values
type Config struct {
	// Schemas are the schema files to compile, YAML or annotated Go source
	Schemas []string `mapstructure:"schemas" validate:"required,min=1,dive,required" yaml:"schemas"`

	// Output is the generated Go file
	Output string `mapstructure:"output" validate:"required" yaml:"output"`

	// TestOutput is the generated test harness file.
	// Default: Output with a _test.go suffix
	TestOutput string `mapstructure:"test_output" yaml:"test_output"`

	// Package is the package clause of the generated files.
	// Default: "structs"
	Package string `mapstructure:"package" validate:"required" yaml:"package"`

	// RuntimeImport is the import path of the binstruct runtime package
	RuntimeImport string `mapstructure:"runtime_import" validate:"required" yaml:"runtime_import"`

	// ScratchSize is the minimum scratch buffer used by the test harness.
	// Default: 512
	ScratchSize int `mapstructure:"scratch_size" validate:"gte=0" yaml:"scratch_size"`

	// Logging controls log output
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// LoggingConfig controls logging behavior
type LoggingConfig struct {
	// Level is the minimum level: debug, info, warn, error
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error" yaml:"level"`

	// Format is the encoder: console or json
	Format string `mapstructure:"format" validate:"required,oneof=console json" yaml:"format"`
}

// Load reads configuration from configPath (or DefaultConfigFile if it exists),
// the environment and any flags in fs, then applies defaults and validates.
func Load(configPath string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setupViper(v)

	if err := readConfigFile(v, configPath); err != nil {
		return nil, err
	}

	if fs != nil {
		if err := bindFlags(v, fs); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// setupViper configures environment variable support, e.g.
// MKSTRUCTS_LOGGING_LEVEL=debug
func setupViper(v *viper.Viper) {
	v.SetEnvPrefix("MKSTRUCTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal only sees keys viper already knows about
	for _, key := range []string{
		"schemas", "output", "test_output", "package", "runtime_import",
		"scratch_size", "logging.level", "logging.format",
	} {
		_ = v.BindEnv(key)
	}
}

func readConfigFile(v *viper.Viper, configPath string) error {
	if configPath == "" {
		if _, err := os.Stat(DefaultConfigFile); err != nil {
			return nil
		}
		configPath = DefaultConfigFile
	}

	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// flagKeys maps command-line flags onto configuration keys
var flagKeys = map[string]string{
	"schema":         "schemas",
	"output":         "output",
	"test-output":    "test_output",
	"package":        "package",
	"runtime-import": "runtime_import",
	"scratch-size":   "scratch_size",
	"log-level":      "logging.level",
	"log-format":     "logging.format",
}

// bindFlags binds only the flags the user actually set so file and
// environment values are not masked by flag defaults
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.Visit(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || err != nil {
			return
		}
		err = v.BindPFlag(key, f)
	})
	return err
}

var validate = validator.New()

// Validate checks the struct tags and cross-field rules
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
			}
			return errors.New(strings.Join(msgs, "; "))
		}
		return err
	}

	if cfg.TestOutput == cfg.Output {
		return fmt.Errorf("test_output must differ from output: %s", cfg.Output)
	}
	return nil
}
