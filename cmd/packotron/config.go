package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/handiism/musica-packotron/internal/config"
	ioutils "github.com/handiism/musica-packotron/internal/io"
)

func newConfigCommand(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage packotron configuration",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [PATH]",
		Short: "Write the default configuration file",
		Long: `Write the default configuration file.

The format follows the file extension (.json, .toml or .yaml). Without
PATH the per-user config location is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfgFile
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				defaultPath, err := config.DefaultPath()
				if err != nil {
					return err
				}
				path = defaultPath
			}

			if ioutils.Exists(path) && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.DefaultSettings().Save(path); err != nil {
				return err
			}

			a.logger.Info("Wrote configuration", "path", path)
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := a.settings
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "output_dir:            %s\n", s.OutputDir)
			fmt.Fprintf(out, "compression_level:     %d\n", s.CompressionLevel)
			fmt.Fprintf(out, "pack_name:             %s\n", s.PackName)
			fmt.Fprintf(out, "pack_author:           %s\n", s.PackAuthor)
			fmt.Fprintf(out, "pack_description:      %s\n", s.PackDescription)
			fmt.Fprintf(out, "pack_version:          %s\n", s.PackVersion)
			fmt.Fprintf(out, "thumbnail_path:        %s\n", s.ThumbnailPath)
			fmt.Fprintf(out, "description_from_tags: %t\n", s.DescriptionFromTags)
			fmt.Fprintf(out, "verbose:               %t\n", s.Verbose)
			return nil
		},
	}

	configCmd.AddCommand(initCmd, showCmd)
	return configCmd
}
