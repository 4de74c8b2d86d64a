package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/handiism/musica-packotron/internal/catalog"
	"github.com/handiism/musica-packotron/internal/model"
)

// Manifest is the JSON description of a whole pack.
//
//	{
//	    "outputdir": "out",
//	    "pack_info": {"packName": "Test Pack", "packAuthor": "Steve"},
//	    "music": [
//	        {"audioPath": "songA.ogg", "texturePath": "texA.png"},
//	        {"audioPath": "songB.ogg", "texturePath": "texB.png", "isShiny": true, "lore": "Ancient tune"}
//	    ]
//	}
//
// Relative paths are resolved against the directory of the manifest file.
type Manifest struct {
	PackInfo  JSONPackInfo `json:"pack_info"`
	OutputDir string       `json:"outputdir"`
	Music     []JSONTrack  `json:"music"`

	dir string
}

// JSONPackInfo holds the pack metadata of a manifest.
type JSONPackInfo struct {
	PackName      string `json:"packName"`
	PackAuthor    string `json:"packAuthor"`
	PackVersion   string `json:"packVersion"`
	Description   string `json:"description"`
	ThumbnailPath string `json:"thumbnailPath"`
}

// JSONTrack is one entry of the manifest's music list.
//
// hasLore and useSpecialName are accepted for compatibility with older
// manifests: setting one to false switches the feature off even when the
// text is present, setting it to true without the text is an error.
type JSONTrack struct {
	AudioPath      string  `json:"audioPath"`
	TexturePath    string  `json:"texturePath"`
	Description    *string `json:"description,omitempty"`
	Lore           *string `json:"lore,omitempty"`
	HasLore        *bool   `json:"hasLore,omitempty"`
	SpecialName    *string `json:"specialName,omitempty"`
	UseSpecialName *bool   `json:"useSpecialName,omitempty"`
	IsShiny        *bool   `json:"isShiny,omitempty"`
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, model.NewError(model.ErrInvalidInput, "load manifest", "", path, err)
	}

	f, err := os.Open(abs)
	if err != nil {
		return nil, model.NewError(model.ErrSourceNotFound, "load manifest", "", abs, err)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, model.NewError(model.ErrInvalidInput, "load manifest", "", abs, err)
	}
	m.dir = filepath.Dir(abs)
	return m, nil
}

// Decode parses a manifest from r. Unknown keys are rejected.
// Relative paths of a decoded manifest resolve against the working
// directory until it is loaded from a file.
func Decode(r io.Reader) (*Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if dec.More() {
		return nil, errTrailingData
	}

	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	if len(m.Music) == 0 {
		return errNoMusic
	}
	for i, t := range m.Music {
		if t.AudioPath == "" {
			return fmt.Errorf("music[%d]: audioPath is required", i)
		}
		if t.HasLore != nil && *t.HasLore && (t.Lore == nil || *t.Lore == "") {
			return fmt.Errorf("music[%d]: hasLore is set but lore is empty", i)
		}
		if t.UseSpecialName != nil && *t.UseSpecialName && (t.SpecialName == nil || *t.SpecialName == "") {
			return fmt.Errorf("music[%d]: useSpecialName is set but specialName is empty", i)
		}
	}
	return nil
}

// Input converts the music list into Builder input with resolved paths.
// A missing texturePath is kept empty so the Builder reports it.
func (m *Manifest) Input() catalog.Input {
	in := catalog.Input{
		AudioPaths:   make([]string, 0, len(m.Music)),
		TexturePaths: make([]string, 0, len(m.Music)),
		Overrides:    make([]model.TrackOverride, 0, len(m.Music)),
	}
	for _, t := range m.Music {
		in.AudioPaths = append(in.AudioPaths, m.resolve(t.AudioPath))
		in.TexturePaths = append(in.TexturePaths, m.resolve(t.TexturePath))
		in.Overrides = append(in.Overrides, t.Override())
	}
	return in
}

// Override returns the per-track override described by the entry.
func (t JSONTrack) Override() model.TrackOverride {
	o := model.TrackOverride{
		Description: t.Description,
		Lore:        t.Lore,
		SpecialName: t.SpecialName,
		IsShiny:     t.IsShiny,
	}
	off := ""
	if t.HasLore != nil && !*t.HasLore {
		o.Lore = &off
	}
	if t.UseSpecialName != nil && !*t.UseSpecialName {
		o.SpecialName = &off
	}
	return o
}

// Metadata returns the pack metadata, taking unset fields from defaults.
func (m *Manifest) Metadata(defaults model.PackMetadata) model.PackMetadata {
	meta := model.PackMetadata{
		Name:          firstNonEmpty(m.PackInfo.PackName, defaults.Name),
		Author:        firstNonEmpty(m.PackInfo.PackAuthor, defaults.Author),
		Description:   firstNonEmpty(m.PackInfo.Description, defaults.Description),
		Version:       firstNonEmpty(m.PackInfo.PackVersion, defaults.Version),
		ThumbnailPath: defaults.ThumbnailPath,
	}
	if m.PackInfo.ThumbnailPath != "" {
		meta.ThumbnailPath = m.resolve(m.PackInfo.ThumbnailPath)
	}
	return meta
}

// OutputRoot returns the resolved output directory, or fallback when the
// manifest does not name one.
func (m *Manifest) OutputRoot(fallback string) string {
	if m.OutputDir == "" {
		return fallback
	}
	return m.resolve(m.OutputDir)
}

func (m *Manifest) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || m.dir == "" {
		return path
	}
	return filepath.Join(m.dir, path)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

var (
	errNoMusic      = errors.New("manifest has no music entries")
	errTrailingData = errors.New("unexpected data after manifest object")
)
