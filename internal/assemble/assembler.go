package assemble

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/handiism/musica-packotron/internal/archive"
	"github.com/handiism/musica-packotron/internal/assets"
	"github.com/handiism/musica-packotron/internal/catalog"
	"github.com/handiism/musica-packotron/internal/descriptor"
	ioutils "github.com/handiism/musica-packotron/internal/io"
	"github.com/handiism/musica-packotron/internal/layout"
	"github.com/handiism/musica-packotron/internal/model"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a pack assembly progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// InstallHint is the last message of a successful run.
const InstallHint = `Move to resource folder ('\minecraft\resourcepacks\') and turn on in options to use.`

// Options tunes an Assembler.
type Options struct {
	// CompressionLevel is the Deflate level of the archive.
	CompressionLevel int
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{CompressionLevel: archive.DefaultLevel}
}

// Assembler runs the pack assembly pipeline.
//
// A run validates the whole model, creates the staging layout, writes the
// descriptors, copies the media, archives the layout and finally removes
// the staging directory. Everything happens on the calling goroutine.
//
// Example:
//
//	a := assemble.NewAssembler(func(e assemble.ProgressEvent) {
//	    fmt.Println(e.Message)
//	}, assemble.DefaultOptions())
//
//	path, err := a.AssemblePack(ctx, tracks, meta, "/tmp/out")
//	// path = "/tmp/out/Test Pack.rpack.zip"
type Assembler struct {
	descriptors *descriptor.Generator
	copier      *assets.Copier
	archiver    *archive.Archiver

	totalFiles  int32
	copiedFiles int32

	onProgress func(ProgressEvent)
}

// NewAssembler creates a new Assembler. onProgress may be nil.
func NewAssembler(onProgress func(ProgressEvent), opts Options) *Assembler {
	a := &Assembler{
		descriptors: descriptor.NewGenerator(),
		archiver:    archive.NewArchiver(opts.CompressionLevel),
		onProgress:  onProgress,
	}
	a.copier = assets.NewCopier(func(src, dst string) {
		atomic.AddInt32(&a.copiedFiles, 1)
		a.progress(ProgressEvent{Message: fmt.Sprintf("Copied %s -> %s", src, dst), Level: LevelVerbose})
	})
	return a
}

// GetProgress returns how many media files have been copied so far and how
// many the current run will copy. It is safe to call from another goroutine.
func (a *Assembler) GetProgress() (copied, total int32) {
	return atomic.LoadInt32(&a.copiedFiles), atomic.LoadInt32(&a.totalFiles)
}

// AssemblePack builds <outputRoot>/<meta.Name>.rpack.zip from tracks and
// returns its absolute path.
//
// Validation errors (ErrInvalidInput, ErrInvalidName, ErrInvalidOutput,
// ErrMissingTexture, ErrSourceNotFound, ErrDuplicateSource) are returned
// before anything is written. Later failures (ErrAlreadyExists,
// ErrCopyFailed, ErrArchiveFailed) leave the staging directory in place
// for inspection; it is removed only after the archive is written. A
// cancelled ctx ends the run with ErrCopyFailed wrapping ctx.Err().
func (a *Assembler) AssemblePack(ctx context.Context, tracks *model.TrackSet, meta model.PackMetadata, outputRoot string) (string, error) {
	meta, err := a.Validate(tracks, meta, outputRoot)
	if err != nil {
		return "", err
	}

	atomic.StoreInt32(&a.copiedFiles, 0)
	atomic.StoreInt32(&a.totalFiles, int32(assets.Count(tracks, meta)))

	a.progress(ProgressEvent{Message: fmt.Sprintf("Assembling '%s' (%d tracks)", meta.Name, tracks.Len()), Level: LevelInfo})

	root, err := layout.Create(outputRoot, meta.Name)
	if err != nil {
		return "", err
	}
	a.progress(ProgressEvent{Message: fmt.Sprintf("Created layout at %s", root), Level: LevelVerbose})

	if err := ctx.Err(); err != nil {
		return "", model.NewError(model.ErrCopyFailed, "assemble pack", "", root, err)
	}
	if err := a.descriptors.Generate(ctx, root, tracks, meta); err != nil {
		return "", err
	}
	a.progress(ProgressEvent{Message: "Wrote pack descriptors", Level: LevelVerbose})

	if err := a.copier.Copy(ctx, root, tracks, meta); err != nil {
		return "", err
	}
	a.progress(ProgressEvent{Message: fmt.Sprintf("Copied %d tracks", tracks.Len()), Level: LevelInfo})

	if err := ctx.Err(); err != nil {
		return "", model.NewError(model.ErrCopyFailed, "assemble pack", "", root, err)
	}
	archivePath, err := a.archiver.Archive(root, outputRoot, meta.Name)
	if err != nil {
		return "", err
	}

	if err := os.RemoveAll(root); err != nil {
		a.progress(ProgressEvent{Message: fmt.Sprintf("Could not remove staging directory %s: %v", root, err), Level: LevelWarning})
	}

	a.progress(ProgressEvent{Message: fmt.Sprintf("Pack written at '%s'.", archivePath), Level: LevelSuccess})
	a.progress(ProgressEvent{Message: InstallHint, Level: LevelInfo})
	return archivePath, nil
}

// Validate runs every check of AssemblePack that does not touch the file
// system and returns the metadata the run will use. A configured thumbnail
// that does not exist is reported as a warning and dropped.
func (a *Assembler) Validate(tracks *model.TrackSet, meta model.PackMetadata, outputRoot string) (model.PackMetadata, error) {
	if tracks.Len() == 0 {
		return meta, model.NewError(model.ErrInvalidInput, "validate pack", "", "", errNoTracks)
	}
	if err := meta.Validate(); err != nil {
		return meta, err
	}

	if _, err := ioutils.IsDir(outputRoot); err != nil {
		return meta, model.NewError(model.ErrInvalidOutput, "validate pack", "", outputRoot, err)
	}

	if err := catalog.ValidateSources(tracks); err != nil {
		return meta, err
	}

	if err := checkAudioNames(tracks); err != nil {
		return meta, err
	}

	if meta.HasThumbnail() {
		if _, err := ioutils.IsFile(meta.ThumbnailPath); err != nil {
			a.progress(ProgressEvent{Message: fmt.Sprintf("Thumbnail %s not found, skipping", meta.ThumbnailPath), Level: LevelWarning})
			meta.ThumbnailPath = ""
		}
	}

	return meta, nil
}

// checkAudioNames rejects tracks whose audio files would land on the same
// name in the records directory.
func checkAudioNames(tracks *model.TrackSet) error {
	owner := make(map[string]string, tracks.Len())
	var dupErr error
	tracks.Each(func(_ int, t model.TrackRecord) {
		if dupErr != nil {
			return
		}
		name := t.AudioFileName()
		if first, ok := owner[name]; ok {
			dupErr = model.NewError(model.ErrDuplicateSource, "validate pack", t.ID, t.AudioPath,
				fmt.Errorf("audio file name %q already used by track %s", name, first))
			return
		}
		owner[name] = t.ID
	})
	return dupErr
}

var errNoTracks = errors.New("pack has no tracks")

func (a *Assembler) progress(event ProgressEvent) {
	if a.onProgress != nil {
		a.onProgress(event)
	}
}
