package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// Execute runs the graphcore CLI with ctx and returns the first error.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd builds the command tree. Loggers write to the command's error
// stream, summaries to its output stream.
func NewRootCmd() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           "graphcore",
		Short:         "Planar embedded graphs: generate, orient, inspect faces, render",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			level, err := cfg.level(verbose)
			if err != nil {
				return err
			}
			ctx := withConfig(cmd.Context(), cfg)
			ctx = withLogger(ctx, newLogger(cmd.ErrOrStderr(), level))
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "TOML config file")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newOrientCmd())
	root.AddCommand(newFacesCmd())
	root.AddCommand(newDualCmd())
	root.AddCommand(newVerifyCmd())
	root.AddCommand(newRenderCmd())

	return root
}
