package main

import (
	"github.com/spf13/cobra"

	"github.com/handiism/musica-packotron/internal/tui"
)

func newTUICommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Edit and build a pack interactively",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.Run(a.settings)
		},
	}
}
