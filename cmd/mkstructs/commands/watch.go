package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexhholmes/bitlayout/internal/compiler"
)

func newWatchCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [schema...]",
		Short: "Regenerate whenever a schema file changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, *cfgFile, args)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			regenerate := func() error {
				_, err := compiler.Run(cfg)
				return err
			}

			// an initial failure is reported but does not stop watching
			if err := regenerate(); err != nil {
				compiler.Logger().Error("generation failed", zap.Error(err))
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Watching %d schema files (Ctrl+C to stop)...\n", len(cfg.Schemas))
			return compiler.Watch(ctx, cfg.Schemas, compiler.DefaultDebounce, regenerate)
		},
	}
}
