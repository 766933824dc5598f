package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexhholmes/bitlayout/internal/compiler"
)

func newGenerateCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "generate [schema...]",
		Short: "Generate Go code and a test harness from schemas",
		Example: `  mkstructs generate -o mad/mad.go -p mad schema/mad.yaml
  MKSTRUCTS_LOGGING_LEVEL=debug mkstructs generate --config mkstructs.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, *cfgFile, args)
			if err != nil {
				return err
			}

			res, err := compiler.Run(cfg)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d structures to %s and %s\n",
				len(res.Plans), cfg.Output, cfg.TestOutput)
			return nil
		},
	}
}
