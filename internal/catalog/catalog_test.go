package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/handiism/musica-packotron/internal/model"
)

func writeFiles(t *testing.T, dir string, names ...string) []string {
	t.Helper()
	paths := make([]string, len(names))
	for i, name := range names {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(name), 0644); err != nil {
			t.Fatal(err)
		}
		paths[i] = path
	}
	return paths
}

type stubDescriber map[string]string

func (s stubDescriber) Describe(path string) (string, bool) {
	desc, ok := s[filepath.Base(path)]
	return desc, ok
}

func TestBuilder_Build(t *testing.T) {
	dir := t.TempDir()
	audio := writeFiles(t, dir, "songA.ogg", "songB.ogg")
	textures := writeFiles(t, dir, "texA.png", "texB.png")

	shiny := true
	lore := "Ancient tune"
	tracks, err := NewBuilder(nil).Build(Input{
		AudioPaths:   audio,
		TexturePaths: textures,
		Overrides:    []model.TrackOverride{{}, {IsShiny: &shiny, Lore: &lore}},
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if got := strings.Join(tracks.IDs(), ","); got != "songA,songB" {
		t.Fatalf("IDs() = %q, want %q", got, "songA,songB")
	}

	a, _ := tracks.Get("songA")
	if a.Description != "songA" || a.IsShiny || a.HasLore || a.UseSpecialName {
		t.Errorf("songA = %+v, want defaults", a)
	}
	if a.AudioPath != audio[0] || a.TexturePath != textures[0] {
		t.Errorf("songA paths = %q, %q", a.AudioPath, a.TexturePath)
	}

	b, _ := tracks.Get("songB")
	if !b.IsShiny || !b.HasLore || b.Lore != "Ancient tune" {
		t.Errorf("songB = %+v, want shiny with lore", b)
	}
}

func TestBuilder_Collisions(t *testing.T) {
	dir := t.TempDir()
	audio := writeFiles(t, dir, "a/track.ogg", "b/Track.ogg", "c/track.ogg")
	textures := writeFiles(t, dir, "t1.png", "t2.png", "t3.png")

	tracks, err := NewBuilder(nil).Build(Input{AudioPaths: audio, TexturePaths: textures})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if got := strings.Join(tracks.IDs(), ","); got != "track,track2,track3" {
		t.Fatalf("IDs() = %q, want %q", got, "track,track2,track3")
	}

	for i, id := range []string{"track", "track2", "track3"} {
		rec, ok := tracks.Get(id)
		if !ok {
			t.Fatalf("Get(%q) missing", id)
		}
		if rec.AudioPath != audio[i] || rec.TexturePath != textures[i] {
			t.Errorf("%s paths = %q, %q; want %q, %q", id, rec.AudioPath, rec.TexturePath, audio[i], textures[i])
		}
	}
}

func TestBuilder_CollisionSkipsTakenSuffix(t *testing.T) {
	dir := t.TempDir()
	audio := writeFiles(t, dir, "track2.ogg", "a/track.ogg", "b/track.ogg")
	textures := writeFiles(t, dir, "t1.png", "t2.png", "t3.png")

	tracks, err := NewBuilder(nil).Build(Input{AudioPaths: audio, TexturePaths: textures})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got := strings.Join(tracks.IDs(), ","); got != "track2,track,track3" {
		t.Errorf("IDs() = %q, want %q", got, "track2,track,track3")
	}
}

func TestBuilder_Errors(t *testing.T) {
	dir := t.TempDir()
	audio := writeFiles(t, dir, "songA.ogg", "songB.ogg", "!!!.ogg")
	textures := writeFiles(t, dir, "texA.png", "texB.png", "texC.png")
	desc := "x"

	tests := []struct {
		name string
		in   Input
		want error
	}{
		{"no audio", Input{}, model.ErrInvalidInput},
		{"texture list shorter", Input{AudioPaths: audio[:2], TexturePaths: textures[:1]}, model.ErrMissingTexture},
		{"empty texture path", Input{AudioPaths: audio[:1], TexturePaths: []string{""}}, model.ErrMissingTexture},
		{"missing audio", Input{AudioPaths: []string{filepath.Join(dir, "nope.ogg")}, TexturePaths: textures[:1]}, model.ErrSourceNotFound},
		{"missing texture", Input{AudioPaths: audio[:1], TexturePaths: []string{filepath.Join(dir, "nope.png")}}, model.ErrSourceNotFound},
		{"directory as audio", Input{AudioPaths: []string{dir}, TexturePaths: textures[:1]}, model.ErrSourceNotFound},
		{"unusable name", Input{AudioPaths: audio[2:], TexturePaths: textures[2:]}, model.ErrInvalidName},
		{"too many overrides", Input{
			AudioPaths:   audio[:1],
			TexturePaths: textures[:1],
			Overrides:    []model.TrackOverride{{Description: &desc}, {Description: &desc}},
		}, model.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBuilder(nil).Build(tt.in)
			if !errors.Is(err, tt.want) {
				t.Errorf("Build() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBuilder_DoesNotAliasInput(t *testing.T) {
	dir := t.TempDir()
	audio := writeFiles(t, dir, "songA.ogg")
	textures := writeFiles(t, dir, "texA.png", "other.png")

	want := textures[0]
	in := Input{AudioPaths: audio, TexturePaths: []string{want}}
	tracks, err := NewBuilder(nil).Build(in)
	if err != nil {
		t.Fatal(err)
	}

	in.TexturePaths[0] = textures[1]
	rec, _ := tracks.Get("songA")
	if rec.TexturePath != want {
		t.Errorf("TexturePath changed with caller slice: %q", rec.TexturePath)
	}
}

func TestBuilder_Describer(t *testing.T) {
	dir := t.TempDir()
	audio := writeFiles(t, dir, "songA.mp3", "songB.mp3")
	textures := writeFiles(t, dir, "texA.png", "texB.png")
	override := "From override"

	tracks, err := NewBuilder(stubDescriber{"songA.mp3": "Tagged A", "songB.mp3": "Tagged B"}).Build(Input{
		AudioPaths:   audio,
		TexturePaths: textures,
		Overrides:    []model.TrackOverride{{}, {Description: &override}},
	})
	if err != nil {
		t.Fatal(err)
	}

	if a, _ := tracks.Get("songA"); a.Description != "Tagged A" {
		t.Errorf("songA description = %q, want tag title", a.Description)
	}
	if b, _ := tracks.Get("songB"); b.Description != "From override" {
		t.Errorf("songB description = %q, want override", b.Description)
	}
}

func TestValidateSources(t *testing.T) {
	dir := t.TempDir()
	audio := writeFiles(t, dir, "songA.ogg")
	textures := writeFiles(t, dir, "texA.png")

	tracks, err := NewBuilder(nil).Build(Input{AudioPaths: audio, TexturePaths: textures})
	if err != nil {
		t.Fatal(err)
	}
	if err := ValidateSources(tracks); err != nil {
		t.Fatalf("ValidateSources() error = %v", err)
	}

	if err := os.Remove(textures[0]); err != nil {
		t.Fatal(err)
	}
	err = ValidateSources(tracks)
	if !errors.Is(err, model.ErrSourceNotFound) {
		t.Fatalf("ValidateSources() error = %v, want ErrSourceNotFound", err)
	}
	var pe *model.PackError
	if !errors.As(err, &pe) || pe.TrackID != "songA" || pe.Path != textures[0] {
		t.Errorf("error context = %+v", pe)
	}
}

func TestDraft(t *testing.T) {
	dir := t.TempDir()
	audio := writeFiles(t, dir, "songA.ogg", "songB.ogg", "songC.ogg")
	textures := writeFiles(t, dir, "texA.png", "texB.png", "texC.png")

	var d Draft
	d.Add(Entry{AudioPath: audio[0], TexturePath: textures[0]})
	d.Add(Entry{AudioPath: audio[1], TexturePath: textures[1]})
	last := d.Add(Entry{AudioPath: audio[2], TexturePath: textures[2], Description: "Third"})
	if last != 2 || d.Len() != 3 {
		t.Fatalf("Add() = %d, Len() = %d", last, d.Len())
	}

	if err := d.Update(1, Entry{AudioPath: audio[1], TexturePath: textures[1], Lore: "Ancient tune", IsShiny: true}); err != nil {
		t.Fatal(err)
	}
	if err := d.Remove(0); err != nil {
		t.Fatal(err)
	}
	if err := d.Remove(5); err == nil {
		t.Error("Remove(5) should fail")
	}

	labels := make([]string, 0, d.Len())
	for _, e := range d.Entries() {
		labels = append(labels, e.Label())
	}
	if got := strings.Join(labels, ","); got != "songB,Third" {
		t.Errorf("labels = %q", got)
	}

	tracks, err := NewBuilder(nil).Build(d.Input())
	if err != nil {
		t.Fatalf("Build(draft) error = %v", err)
	}
	if got := strings.Join(tracks.IDs(), ","); got != "songB,songC" {
		t.Errorf("IDs() = %q", got)
	}
	b, _ := tracks.Get("songB")
	if !b.IsShiny || b.Lore != "Ancient tune" || b.Description != "songB" {
		t.Errorf("songB = %+v", b)
	}
	c, _ := tracks.Get("songC")
	if c.Description != "Third" || c.IsShiny {
		t.Errorf("songC = %+v", c)
	}
}
