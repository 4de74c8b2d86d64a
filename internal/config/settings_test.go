package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/handiism/musica-packotron/internal/model"
)

func TestLoad_Defaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *settings != *DefaultSettings() {
		t.Errorf("Load() = %+v, want defaults %+v", settings, DefaultSettings())
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "pack_name: Test Pack\npack_author: Steve\ncompression_level: 9\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PACKOTRON_PACK_AUTHOR", "Alex")
	t.Setenv("PACKOTRON_DESCRIPTION_FROM_TAGS", "true")

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if settings.PackName != "Test Pack" {
		t.Errorf("PackName = %q", settings.PackName)
	}
	if settings.PackAuthor != "Alex" {
		t.Errorf("PackAuthor = %q, want env override", settings.PackAuthor)
	}
	if !settings.DescriptionFromTags {
		t.Error("DescriptionFromTags should come from the environment")
	}
	if settings.CompressionLevel != 9 {
		t.Errorf("CompressionLevel = %d", settings.CompressionLevel)
	}
	if settings.PackVersion != model.DefaultPackVersion {
		t.Errorf("PackVersion = %q, want default", settings.PackVersion)
	}
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on malformed config")
	}
}

func TestSave_RoundTrip(t *testing.T) {
	for _, name := range []string{"config.json", "config.toml", "config.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)

			want := DefaultSettings()
			want.OutputDir = "/tmp/out"
			want.PackName = "Test Pack"
			want.ThumbnailPath = "/art/thumb.png"
			want.Verbose = true

			if err := want.Save(path); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if *got != *want {
				t.Errorf("Load() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestSettings_ToPackMetadata(t *testing.T) {
	s := DefaultSettings()
	s.PackName = "Test Pack"
	s.ThumbnailPath = "/art/thumb.png"

	want := model.PackMetadata{
		Name:          "Test Pack",
		Author:        model.DefaultPackAuthor,
		Description:   model.DefaultPackDescription,
		Version:       model.DefaultPackVersion,
		ThumbnailPath: "/art/thumb.png",
	}
	if got := s.ToPackMetadata(); got != want {
		t.Errorf("ToPackMetadata() = %+v, want %+v", got, want)
	}
	if got := s.ToAssembleOptions().CompressionLevel; got != s.CompressionLevel {
		t.Errorf("CompressionLevel = %d", got)
	}
}
