package catalog

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	ioutils "github.com/handiism/musica-packotron/internal/io"
	"github.com/handiism/musica-packotron/internal/model"
)

// Describer supplies a default description for an audio file.
//
// audio.TagReader implements Describer by reading the ID3 title.
type Describer interface {
	Describe(audioPath string) (string, bool)
}

// Input holds the parallel lists a pack is built from.
//
// AudioPaths, TexturePaths and Overrides are matched by position. Every
// track needs a texture, so TexturePaths must be at least as long as
// AudioPaths. Overrides may be shorter: later tracks keep their defaults.
type Input struct {
	AudioPaths   []string
	TexturePaths []string
	Overrides    []model.TrackOverride
}

// Builder turns user input into an ordered model.TrackSet.
//
// The Builder resolves every path, derives canonical ids, settles id
// collisions and merges per-track overrides. All checks run before anything
// is written to disk, so a bad track anywhere fails the whole build.
//
// Example usage:
//
//	builder := NewBuilder(nil)
//
//	tracks, err := builder.Build(Input{
//	    AudioPaths:   []string{"songA.ogg", "songB.ogg"},
//	    TexturePaths: []string{"texA.png", "texB.png"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, id := range tracks.IDs() {
//	    fmt.Println(id) // "songA", "songB"
//	}
type Builder struct {
	describer Describer
}

// NewBuilder creates a new Builder.
//
// describer is optional. When set, it provides the default description of
// each track; the audio file stem is used otherwise.
func NewBuilder(describer Describer) *Builder {
	return &Builder{describer: describer}
}

// Build creates the ordered track collection from input.
//
// This method performs the following steps for the i-th audio path:
//  1. Resolves the audio and i-th texture path to absolute paths
//  2. Checks that both exist and are regular files
//  3. Normalizes the audio file stem into a candidate id
//  4. Appends 2, 3, ... to the candidate until it is unused
//  5. Merges the i-th override over the defaults
//
// Returns an error wrapping:
//   - model.ErrInvalidInput if there are no audio paths or too many overrides
//   - model.ErrMissingTexture if a track has no texture path
//   - model.ErrSourceNotFound if an audio or texture file does not exist
//   - model.ErrInvalidName if a file stem yields no usable id
//
// The input slices are copied; later changes by the caller do not affect
// the returned TrackSet.
func (b *Builder) Build(in Input) (*model.TrackSet, error) {
	in = in.clone()

	if len(in.AudioPaths) == 0 {
		return nil, model.NewError(model.ErrInvalidInput, "build tracks", "", "", errNoAudio)
	}
	if len(in.Overrides) > len(in.AudioPaths) {
		return nil, model.NewError(model.ErrInvalidInput, "build tracks", "", "",
			fmt.Errorf("%d overrides for %d tracks", len(in.Overrides), len(in.AudioPaths)))
	}

	if len(in.TexturePaths) < len(in.AudioPaths) {
		missing := len(in.TexturePaths)
		return nil, model.NewError(model.ErrMissingTexture, "build tracks", "", in.AudioPaths[missing],
			fmt.Errorf("%d textures for %d tracks", len(in.TexturePaths), len(in.AudioPaths)))
	}

	resolver := newIDResolver()
	records := make([]model.TrackRecord, 0, len(in.AudioPaths))

	for i, rawAudio := range in.AudioPaths {
		audioPath, err := resolveSource(rawAudio)
		if err != nil {
			return nil, err
		}

		if in.TexturePaths[i] == "" {
			return nil, model.NewError(model.ErrMissingTexture, "build tracks", "", audioPath,
				fmt.Errorf("no texture for track %d", i+1))
		}
		texturePath, err := resolveSource(in.TexturePaths[i])
		if err != nil {
			return nil, err
		}

		record := model.NewTrackRecord("", audioPath, texturePath)

		candidate, err := model.NormalizeName(record.AudioStem())
		if err != nil {
			return nil, model.NewError(model.ErrInvalidName, "build tracks", "", audioPath, err)
		}
		record.ID = resolver.Resolve(candidate)

		if b.describer != nil {
			if desc, ok := b.describer.Describe(audioPath); ok {
				record.Description = desc
			}
		}

		if i < len(in.Overrides) {
			record = in.Overrides[i].Apply(record)
		}

		records = append(records, record)
	}

	return model.NewTrackSet(records...)
}

// ValidateSources checks that every audio and texture file of tracks exists.
//
// It is the fail-fast check the pipeline repeats right before it starts
// writing, since files may have moved since the model was built.
func ValidateSources(tracks *model.TrackSet) error {
	var firstErr error
	tracks.Each(func(_ int, t model.TrackRecord) {
		if firstErr != nil {
			return
		}
		if t.TexturePath == "" {
			firstErr = model.NewError(model.ErrMissingTexture, "validate tracks", t.ID, t.AudioPath, nil)
			return
		}
		for _, path := range []string{t.AudioPath, t.TexturePath} {
			if _, err := ioutils.IsFile(path); err != nil {
				firstErr = model.NewError(model.ErrSourceNotFound, "validate tracks", t.ID, path, err)
				return
			}
		}
	})
	return firstErr
}

var errNoAudio = errors.New("at least one audio file is required")

// resolveSource makes path absolute and checks that it is an existing file.
func resolveSource(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", model.NewError(model.ErrSourceNotFound, "build tracks", "", path, err)
	}
	if _, err := ioutils.IsFile(abs); err != nil {
		return "", model.NewError(model.ErrSourceNotFound, "build tracks", "", abs, err)
	}
	return abs, nil
}

func (in Input) clone() Input {
	return Input{
		AudioPaths:   append([]string(nil), in.AudioPaths...),
		TexturePaths: append([]string(nil), in.TexturePaths...),
		Overrides:    append([]model.TrackOverride(nil), in.Overrides...),
	}
}

// idResolver hands out unique ids, suffixing duplicates with 2, 3, ...
type idResolver struct {
	taken map[string]bool
}

func newIDResolver() *idResolver {
	return &idResolver{taken: make(map[string]bool)}
}

// Resolve returns candidate if it is free, otherwise the lowest free
// candidate+N with N >= 2.
func (r *idResolver) Resolve(candidate string) string {
	id := candidate
	for n := 2; r.taken[id]; n++ {
		id = candidate + strconv.Itoa(n)
	}
	r.taken[id] = true
	return id
}
