package main

import (
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags; left as a plain default here
// since this module has no release pipeline wiring that value in.
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pathtrace",
		Short:         "Offline Monte-Carlo path tracer",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(newRenderCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the pathtrace version",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println(version)
			return nil
		},
	}
}
