package main

import (
	"github.com/spf13/cobra"

	"github.com/lumenui/lumen/internal/logger"
)

type rootFlags struct {
	verbose    bool
	configPath string
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "lumen",
		Short:         "Lumen renders interactive button galleries in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// If no subcommand is provided, launch the gallery
			if len(args) == 0 {
				return runGallery(flags, log)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a gallery configuration file")

	cmd.AddCommand(newGalleryCmd(flags, log))
	cmd.AddCommand(newRenderCmd(flags, log))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
