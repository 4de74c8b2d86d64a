package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/handiism/musica-packotron/internal/config"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
)

// app carries the global flags and the state shared by subcommands.
type app struct {
	cfgFile   string
	verbose   bool
	outputDir string

	settings *config.Settings
	logger   *log.Logger
}

func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "packotron",
		Short: "Create resource packs for the Minecraft mod Musica",
		Long: titleStyle.Render("packotron") + subtitleStyle.Render(" - Create resource packs for Musica") + `

Builds a resource pack from '.ogg' sound files and '.png' record textures,
then zips it into '<pack name>.rpack.zip' in the output directory.

` + subtitleStyle.Render("Examples:") + `
  packotron json pack.json
  packotron cl -m songA.ogg -m songB.ogg -t texA.png -t texB.png -n "Test Pack"
  packotron tui
  packotron config init`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/packotron/config.json)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&a.outputDir, "outputdir", "o", "", "where to output the resource pack")

	rootCmd.AddCommand(newJSONCommand(a))
	rootCmd.AddCommand(newCLCommand(a))
	rootCmd.AddCommand(newTUICommand(a))
	rootCmd.AddCommand(newConfigCommand(a))
	rootCmd.AddCommand(newCompletionCommand())

	return rootCmd
}

// setup loads settings and applies the global flags over them.
func (a *app) setup(cmd *cobra.Command) error {
	path := a.cfgFile
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err == nil {
			path = defaultPath
		}
	}

	settings, err := config.Load(path)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("outputdir") {
		settings.OutputDir = a.outputDir
	}
	if a.verbose {
		settings.Verbose = true
	}
	a.settings = settings

	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: "packotron",
	})
	if settings.Verbose {
		a.logger.SetLevel(log.DebugLevel)
	}
	return nil
}
