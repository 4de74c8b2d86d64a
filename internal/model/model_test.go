package model

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Epic Battle Theme", "epicBattleTheme"},
		{"songB", "songB"},
		{"songA", "songA"},
		{"track", "track"},
		{"Track", "track"},
		{"my-song_v2", "my-song_v2"},
		{"  spaced   out  ", "spacedOut"},
		{"Café del Mar", "cafeDelMar"},
		{"01 - Intro (Live)", "01-IntroLive"},
		{"hello, world!", "helloWorld"},
		{"_intro", "intro"},
		{"-x-", "x-"},
		{"__Outro", "outro"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NormalizeName(tt.input)
			if err != nil {
				t.Fatalf("NormalizeName(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if !IsCanonicalID(got) {
				t.Errorf("NormalizeName(%q) = %q is not a canonical id", tt.input, got)
			}
		})
	}
}

func TestNormalizeName_Invalid(t *testing.T) {
	for _, input := range []string{"", "   ", "!!!", "---", "__", "日本"} {
		t.Run(input, func(t *testing.T) {
			_, err := NormalizeName(input)
			if !errors.Is(err, ErrInvalidName) {
				t.Errorf("NormalizeName(%q) error = %v, want ErrInvalidName", input, err)
			}
		})
	}
}

func TestIsCanonicalID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"songA", true},
		{"a-b_c9", true},
		{"9lives", true},
		{"", false},
		{"SongA", false},
		{"song A", false},
		{"song.a", false},
		{"_Intro", false},
		{"-x-", false},
	}

	for _, tt := range tests {
		if got := IsCanonicalID(tt.id); got != tt.want {
			t.Errorf("IsCanonicalID(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestTrackOverride_Apply(t *testing.T) {
	base := NewTrackRecord("songB", "/music/songB.ogg", "/tex/texB.png")
	if base.Description != "songB" {
		t.Fatalf("default Description = %q, want %q", base.Description, "songB")
	}

	shiny := true
	lore := "Ancient tune"
	got := TrackOverride{IsShiny: &shiny, Lore: &lore}.Apply(base)

	if !got.IsShiny || !got.HasLore || got.Lore != "Ancient tune" {
		t.Errorf("Apply() = %+v, want shiny track with lore", got)
	}
	if got.UseSpecialName || got.SpecialName != "" {
		t.Errorf("Apply() should not set a special name, got %+v", got)
	}
	if base.IsShiny || base.HasLore {
		t.Error("Apply() must not modify the original record")
	}

	empty := ""
	cleared := TrackOverride{Lore: &empty, Description: &empty}.Apply(got)
	if cleared.HasLore || cleared.Lore != "" {
		t.Errorf("empty lore should clear lore, got %+v", cleared)
	}
	if cleared.Description != "songB" {
		t.Errorf("empty description should keep the default, got %q", cleared.Description)
	}

	name := "Golden Disc"
	named := TrackOverride{SpecialName: &name}.Apply(base)
	if !named.UseSpecialName || named.SpecialName != name {
		t.Errorf("Apply() special name = %+v", named)
	}
}

func TestTrackRecord_Names(t *testing.T) {
	track := NewTrackRecord("epicBattleTheme", "/music/Epic Battle Theme.ogg", "/tex/epic.png")

	if got := track.AudioFileName(); got != "Epic Battle Theme.ogg" {
		t.Errorf("AudioFileName() = %q", got)
	}
	if got := track.AudioStem(); got != "Epic Battle Theme" {
		t.Errorf("AudioStem() = %q", got)
	}
	if got := track.TextureFileName(); got != "record_epicBattleTheme.png" {
		t.Errorf("TextureFileName() = %q", got)
	}
}

func TestTrackSet_Order(t *testing.T) {
	a := NewTrackRecord("zeta", "/a/zeta.ogg", "/t/z.png")
	b := NewTrackRecord("alpha", "/a/alpha.ogg", "/t/a.png")
	c := NewTrackRecord("mid", "/a/mid.ogg", "/t/m.png")

	ts, err := NewTrackSet(a, b, c)
	if err != nil {
		t.Fatalf("NewTrackSet() error = %v", err)
	}

	if got := strings.Join(ts.IDs(), ","); got != "zeta,alpha,mid" {
		t.Errorf("IDs() = %q, want insertion order", got)
	}

	var keys []string
	ts.Each(func(n int, r TrackRecord) {
		keys = append(keys, RecordKey(n)+"="+r.ID)
	})
	if got := strings.Join(keys, ","); got != "track1=zeta,track2=alpha,track3=mid" {
		t.Errorf("Each() = %q", got)
	}

	ids := ts.IDs()
	ids[0] = "mutated"
	if ts.IDs()[0] != "zeta" {
		t.Error("IDs() must return a copy")
	}

	if got, ok := ts.Get("alpha"); !ok || got.AudioPath != "/a/alpha.ogg" {
		t.Errorf("Get(alpha) = %+v, %v", got, ok)
	}
}

func TestTrackSet_Rejects(t *testing.T) {
	a := NewTrackRecord("same", "/a/same.ogg", "/t/a.png")
	b := NewTrackRecord("same", "/b/same.ogg", "/t/b.png")
	if _, err := NewTrackSet(a, b); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("duplicate ids error = %v, want ErrInvalidInput", err)
	}

	bad := NewTrackRecord("Bad Id", "/a/bad.ogg", "/t/a.png")
	if _, err := NewTrackSet(bad); !errors.Is(err, ErrInvalidName) {
		t.Errorf("invalid id error = %v, want ErrInvalidName", err)
	}
}

func TestPackMetadata_Validate(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"Test Pack", false},
		{"pack.v2", false},
		{"", true},
		{"   ", true},
		{".", true},
		{"..", true},
		{"a/b", true},
		{`a\b`, true},
		{"Pack: Remix", true},
		{"what?", true},
		{`say "hi"`, true},
		{"a<b>", true},
		{"pipe|d", true},
		{"star*", true},
		{"tab\tname", true},
		{"trailing.", true},
		{"trailing ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := PackMetadata{Name: tt.name}.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidName) {
				t.Errorf("Validate() error = %v, want ErrInvalidName", err)
			}
		})
	}
}

func TestPackMetadata_Defaults(t *testing.T) {
	var meta PackMetadata
	if meta.DescriptionOrDefault() != DefaultPackDescription ||
		meta.AuthorOrDefault() != DefaultPackAuthor ||
		meta.NameOrDefault() != DefaultPackName ||
		meta.VersionOrDefault() != DefaultPackVersion {
		t.Errorf("zero PackMetadata should use defaults")
	}

	meta = PackMetadata{Name: "Test Pack", Description: "Tunes"}
	if meta.ArchiveName() != "Test Pack.rpack.zip" {
		t.Errorf("ArchiveName() = %q", meta.ArchiveName())
	}
	if meta.DescriptionOrDefault() != "Tunes" {
		t.Errorf("DescriptionOrDefault() = %q", meta.DescriptionOrDefault())
	}
}

func TestPackError(t *testing.T) {
	cause := &os.PathError{Op: "open", Path: "/x/a.ogg", Err: os.ErrNotExist}
	err := error(NewError(ErrSourceNotFound, "validate", "songA", "/x/a.ogg", cause))

	if !errors.Is(err, ErrSourceNotFound) {
		t.Error("errors.Is(err, ErrSourceNotFound) = false")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("errors.Is(err, os.ErrNotExist) = false")
	}

	var pe *PackError
	if !errors.As(err, &pe) || pe.TrackID != "songA" {
		t.Errorf("errors.As() = %+v", pe)
	}

	msg := err.Error()
	for _, want := range []string{"validate", "source not found", "songA", "/x/a.ogg"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
}
