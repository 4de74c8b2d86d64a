package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/handiism/musica-packotron/internal/assemble"
	"github.com/handiism/musica-packotron/internal/audio"
	"github.com/handiism/musica-packotron/internal/catalog"
	"github.com/handiism/musica-packotron/internal/manifest"
	"github.com/handiism/musica-packotron/internal/model"
)

func newJSONCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "json JSONFILE",
		Short: "Load all data from a JSON file",
		Long: `Load all data from a JSON file.

Paths in the file are relative to the file's directory. The "outputdir"
key is used unless --outputdir is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.logger.Info("Load JSON file...", "path", args[0])
			m, err := manifest.Load(args[0])
			if err != nil {
				return err
			}

			out := m.OutputRoot(a.settings.OutputDir)
			if cmd.Flags().Changed("outputdir") {
				out = a.settings.OutputDir
			}

			return a.assemble(cmd, m.Input(), m.Metadata(a.settings.ToPackMetadata()), out)
		},
	}
}

type clOptions struct {
	audioFiles   []string
	textureFiles []string
	descriptions []string
	thumbnail    string
	name         string
	author       string
	description  string
	version      string
}

func newCLCommand(a *app) *cobra.Command {
	var opts clOptions

	cmd := &cobra.Command{
		Use:   "cl -m AUDIO... -t TEXTURE...",
		Short: "Specify data via command line arguments",
		Long: `Specify data via command line arguments.

Repeat -m and -t once per track; the n-th texture belongs to the n-th
audio file. -l sets the in-game description of the n-th record, which
otherwise uses the file name without its suffix.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.assemble(cmd, opts.input(), opts.metadata(a.settings.ToPackMetadata()), a.settings.OutputDir)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVarP(&opts.audioFiles, "audiofiles", "m", nil, "the .ogg file(s) to add to the pack")
	flags.StringArrayVarP(&opts.textureFiles, "texturefiles", "t", nil, "the .png file(s) to use as record textures")
	flags.StringArrayVarP(&opts.descriptions, "musicdesc", "l", nil, "description of the in-game record item(s)")
	flags.StringVarP(&opts.thumbnail, "packthumbnail", "p", "", "the 128x128 .png thumbnail for the resource pack")
	flags.StringVarP(&opts.name, "packname", "n", "", `the name of the resource pack (default from config, "Musica Pack")`)
	flags.StringVarP(&opts.author, "packauthor", "a", "", `the author of the resource pack (default from config, "An Author")`)
	flags.StringVarP(&opts.description, "packdescription", "d", "", "the description of the resource pack")
	flags.StringVar(&opts.version, "packversion", "", "the version of the resource pack")
	_ = cmd.MarkFlagRequired("audiofiles")
	_ = cmd.MarkFlagRequired("texturefiles")

	return cmd
}

func (o clOptions) input() catalog.Input {
	in := catalog.Input{
		AudioPaths:   o.audioFiles,
		TexturePaths: o.textureFiles,
	}
	for _, desc := range o.descriptions {
		d := desc
		in.Overrides = append(in.Overrides, model.TrackOverride{Description: &d})
	}
	return in
}

func (o clOptions) metadata(defaults model.PackMetadata) model.PackMetadata {
	meta := defaults
	if o.name != "" {
		meta.Name = o.name
	}
	if o.author != "" {
		meta.Author = o.author
	}
	if o.description != "" {
		meta.Description = o.description
	}
	if o.version != "" {
		meta.Version = o.version
	}
	if o.thumbnail != "" {
		meta.ThumbnailPath = o.thumbnail
	}
	return meta
}

// assemble builds the track model and runs the pipeline, printing the
// archive path on success.
func (a *app) assemble(cmd *cobra.Command, in catalog.Input, meta model.PackMetadata, outputDir string) error {
	var describer catalog.Describer
	if a.settings.DescriptionFromTags {
		describer = audio.NewTagReader()
	}

	tracks, err := catalog.NewBuilder(describer).Build(in)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	assembler := assemble.NewAssembler(a.onProgress, a.settings.ToAssembleOptions())
	path, err := assembler.AssemblePack(ctx, tracks, meta, outputDir)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("cancelled: %w", err)
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

// onProgress maps pipeline events onto log levels.
func (a *app) onProgress(e assemble.ProgressEvent) {
	switch e.Level {
	case assemble.LevelVerbose:
		a.logger.Debug(e.Message)
	case assemble.LevelWarning:
		a.logger.Warn(e.Message)
	case assemble.LevelError:
		a.logger.Error(e.Message)
	case assemble.LevelSuccess:
		a.logger.Info(successStyle.Render(e.Message))
	default:
		a.logger.Info(e.Message)
	}
}
