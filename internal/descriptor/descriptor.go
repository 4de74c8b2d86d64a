package descriptor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	ioutils "github.com/handiism/musica-packotron/internal/io"
	"github.com/handiism/musica-packotron/internal/layout"
	"github.com/handiism/musica-packotron/internal/model"
)

// PackFormat is the resource pack format version written to pack.mcmeta.
const PackFormat = 1

// LangHeader is the first line of the localization file.
const LangHeader = "#Record Descriptions"

// Generator renders the descriptor files of a pack.
//
// Generator produces four artifacts from the track model:
//   - pack.mcmeta: language block and pack description
//   - record-pack.json: pack info and one numbered entry per record
//   - assets/musica/sounds.json: one streamed sound event per record
//   - assets/musica/lang/en_US.lang: item descriptions, lore and names
//
// Output is deterministic: the same tracks and metadata always give the
// same bytes. JSON objects keep the insertion order of the tracks.
//
// Example:
//
//	gen := NewGenerator()
//	err := gen.Generate(ctx, root, tracks, meta)
type Generator struct {
	indent string
}

// NewGenerator creates a Generator that indents JSON with four spaces.
func NewGenerator() *Generator {
	return &Generator{indent: "    "}
}

// Generate writes all descriptor files into the layout at root.
//
// The layout must already exist (see layout.Create). Write failures are
// reported as model.ErrCopyFailed with the offending path.
func (g *Generator) Generate(ctx context.Context, root string, tracks *model.TrackSet, meta model.PackMetadata) error {
	files, err := g.Render(tracks, meta)
	if err != nil {
		return err
	}

	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f.Path))
		if err := ioutils.WriteFile(ctx, path, f.Data); err != nil {
			return model.NewError(model.ErrCopyFailed, "write descriptors", "", path, err)
		}
	}
	return nil
}

// File is a rendered descriptor and its slash-separated path inside the pack.
type File struct {
	Path string
	Data []byte
}

// Render produces every descriptor file without writing anything.
func (g *Generator) Render(tracks *model.TrackSet, meta model.PackMetadata) ([]File, error) {
	mcmeta, err := g.PackDescriptor(meta)
	if err != nil {
		return nil, err
	}
	registry, err := g.PackRegistry(tracks, meta)
	if err != nil {
		return nil, err
	}
	sounds, err := g.SoundRegistry(tracks)
	if err != nil {
		return nil, err
	}

	ns := "assets/" + layout.Namespace
	return []File{
		{Path: layout.PackDescriptorFile, Data: mcmeta},
		{Path: layout.PackRegistryFile, Data: registry},
		{Path: ns + "/" + layout.SoundRegistryFile, Data: sounds},
		{Path: ns + "/lang/" + layout.LangFile, Data: g.Localization(tracks)},
	}, nil
}

type languageInfo struct {
	Region        string `json:"region"`
	Name          string `json:"name"`
	Bidirectional bool   `json:"bidirectional"`
}

type packDescriptor struct {
	Language map[string]languageInfo `json:"language"`
	Pack     struct {
		Description string `json:"description"`
		PackFormat  int    `json:"pack_format"`
	} `json:"pack"`
}

// PackDescriptor renders pack.mcmeta.
//
//	{
//	    "language": {"en_US": {"region": "US", "name": "English", "bidirectional": false}},
//	    "pack": {"description": "Contains music for Musica", "pack_format": 1}
//	}
func (g *Generator) PackDescriptor(meta model.PackMetadata) ([]byte, error) {
	var d packDescriptor
	d.Language = map[string]languageInfo{
		"en_US": {Region: "US", Name: "English", Bidirectional: false},
	}
	d.Pack.Description = meta.DescriptionOrDefault()
	d.Pack.PackFormat = PackFormat

	data, err := marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", layout.PackDescriptorFile, err)
	}
	return g.format(data), nil
}

type packInfo struct {
	Author  string `json:"packAuthor"`
	Name    string `json:"packName"`
	Version string `json:"packVersion"`
}

type recordEntry struct {
	RecordName     string `json:"recordName"`
	HasLore        bool   `json:"hasLore"`
	IsShiny        bool   `json:"isShiny"`
	UseSpecialName bool   `json:"useSpecialName"`
}

// PackRegistry renders record-pack.json.
//
// Records are numbered track1..trackN in insertion order:
//
//	{
//	    "packInfo": {"packAuthor": "An Author", "packName": "Test Pack", "packVersion": "1.0.0"},
//	    "records": {
//	        "track1": {"recordName": "songA", "hasLore": false, "isShiny": false, "useSpecialName": false}
//	    }
//	}
func (g *Generator) PackRegistry(tracks *model.TrackSet, meta model.PackMetadata) ([]byte, error) {
	info, err := marshal(packInfo{
		Author:  meta.AuthorOrDefault(),
		Name:    meta.NameOrDefault(),
		Version: meta.VersionOrDefault(),
	})
	if err != nil {
		return nil, err
	}

	doc := []byte(`{}`)
	if doc, err = sjson.SetRawBytes(doc, "packInfo", info); err != nil {
		return nil, err
	}
	if doc, err = sjson.SetRawBytes(doc, "records", []byte(`{}`)); err != nil {
		return nil, err
	}

	var setErr error
	tracks.Each(func(n int, t model.TrackRecord) {
		if setErr != nil {
			return
		}
		entry, err := marshal(recordEntry{
			RecordName:     t.ID,
			HasLore:        t.HasLore,
			IsShiny:        t.IsShiny,
			UseSpecialName: t.UseSpecialName,
		})
		if err != nil {
			setErr = err
			return
		}
		doc, setErr = sjson.SetRawBytes(doc, "records."+model.RecordKey(n), entry)
	})
	if setErr != nil {
		return nil, fmt.Errorf("failed to render %s: %w", layout.PackRegistryFile, setErr)
	}

	return g.format(doc), nil
}

type soundFile struct {
	Name   string `json:"name"`
	Stream bool   `json:"stream"`
}

type soundEvent struct {
	Category string      `json:"category"`
	Sounds   []soundFile `json:"sounds"`
}

// SoundKey returns the sound event name registered for a track.
func SoundKey(id string) string {
	return "records." + id
}

// SoundRegistry renders assets/musica/sounds.json.
//
// Each track gets a streamed sound event pointing at its copied audio file:
//
//	{
//	    "records.songA": {"category": "record", "sounds": [{"name": "records/songA", "stream": true}]}
//	}
func (g *Generator) SoundRegistry(tracks *model.TrackSet) ([]byte, error) {
	doc := []byte(`{}`)

	var setErr error
	tracks.Each(func(_ int, t model.TrackRecord) {
		if setErr != nil {
			return
		}
		event, err := marshal(soundEvent{
			Category: "record",
			Sounds:   []soundFile{{Name: "records/" + t.AudioStem(), Stream: true}},
		})
		if err != nil {
			setErr = err
			return
		}
		doc, setErr = sjson.SetRawBytes(doc, escapePath(SoundKey(t.ID)), event)
	})
	if setErr != nil {
		return nil, fmt.Errorf("failed to render %s: %w", layout.SoundRegistryFile, setErr)
	}

	return g.format(doc), nil
}

// Localization renders assets/musica/lang/en_US.lang.
//
// Example output for a track with lore and a special name:
//
//	#Record Descriptions
//	item.record.songB.desc=songB
//	item.record.songB.lore=Ancient tune
//	item.musica.record.songB.name=Golden Disc
//
// Lines are separated by "\n" and the file has no trailing newline.
func (g *Generator) Localization(tracks *model.TrackSet) []byte {
	var b strings.Builder
	b.WriteString(LangHeader)

	tracks.Each(func(_ int, t model.TrackRecord) {
		fmt.Fprintf(&b, "\nitem.record.%s.desc=%s", t.ID, singleLine(t.Description))
		if t.HasLore {
			fmt.Fprintf(&b, "\nitem.record.%s.lore=%s", t.ID, singleLine(t.Lore))
		}
		if t.UseSpecialName {
			fmt.Fprintf(&b, "\nitem.musica.record.%s.name=%s", t.ID, singleLine(t.SpecialName))
		}
	})

	return []byte(b.String())
}

func (g *Generator) format(data []byte) []byte {
	return pretty.PrettyOptions(data, &pretty.Options{
		Width:    80,
		Indent:   g.indent,
		SortKeys: false,
	})
}

// marshal encodes v as compact JSON without HTML escaping.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// escapePath escapes the sjson path metacharacters in a literal key.
func escapePath(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '|', '#', '@', '!', '=', '<', '>', '%', '\\', ':':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// singleLine keeps user text from breaking the line-oriented lang format.
func singleLine(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}
