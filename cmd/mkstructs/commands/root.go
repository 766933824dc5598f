// Package commands implements the mkstructs command line.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/alexhholmes/bitlayout/internal/codegen"
	"github.com/alexhholmes/bitlayout/internal/compiler"
	"github.com/alexhholmes/bitlayout/internal/config"
	"github.com/alexhholmes/bitlayout/internal/logger"
)

// Execute runs the mkstructs command line
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree. Without a subcommand it generates.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "mkstructs [schema...]",
		Short: "Compile bit-level layout schemas into Go encoders",
		Long: `mkstructs compiles declarative layout schemas of fixed-size protocol
structures into Go types with PackInto, UnpackFrom and Printer methods, plus
a test harness that round trips every structure.

Schemas are YAML documents or Go source files with @layout annotations.
Settings come from mkstructs.yaml (or --config), MKSTRUCTS_* environment
variables and flags, in increasing order of precedence.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./mkstructs.yaml if present)")
	pf.StringSlice("schema", nil, "schema file, repeatable")
	pf.StringP("output", "o", "", "generated Go file")
	pf.String("test-output", "", "generated test harness (default: <output>_test.go)")
	pf.StringP("package", "p", "", "package name of the generated files (default: structs)")
	pf.String("runtime-import", "", "import path of the binstruct runtime")
	pf.Int("scratch-size", 0, "minimum harness scratch buffer in bytes")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-format", "", "log format: console, json")

	gen := newGenerateCmd(&cfgFile)
	root.RunE = gen.RunE

	root.AddCommand(gen)
	root.AddCommand(newPlanCmd(&cfgFile))
	root.AddCommand(newWatchCmd(&cfgFile))
	root.AddCommand(newSchemaCmd())
	root.AddCommand(newVersionCmd())
	root.CompletionOptions.DisableDefaultCmd = true

	return root
}

// loadConfig resolves the configuration for cmd. Positional arguments are
// schema files and take precedence over configured schemas.
func loadConfig(cmd *cobra.Command, cfgFile string, args []string) (*config.Config, error) {
	for _, a := range args {
		if err := cmd.Flags().Set("schema", a); err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, err
	}
	compiler.SetLogger(log)

	return cfg, nil
}

func generatorOptions(cfg *config.Config) codegen.Options {
	return codegen.Options{
		Package:       cfg.Package,
		RuntimeImport: cfg.RuntimeImport,
		ScratchSize:   cfg.ScratchSize,
	}
}
