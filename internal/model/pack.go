package model

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Defaults used by the generated descriptors when metadata is left unset.
const (
	DefaultPackDescription = "Contains music for Musica"
	DefaultPackAuthor      = "An Author"
	DefaultPackName        = "A Musica pack"
	DefaultPackVersion     = "1.0.0"
)

// ArchiveExtension is appended to the pack name to form the archive file name.
const ArchiveExtension = ".rpack.zip"

// PackMetadata represents the user-facing information about a pack.
//
// Name is required: it names both the staging directory and the archive.
// The other fields are optional and fall back to placeholder values in the
// generated descriptors.
//
// Example:
//
//	meta := PackMetadata{Name: "Test Pack", Author: "Steve"}
//	meta.ArchiveName() // "Test Pack.rpack.zip"
type PackMetadata struct {
	// Name is the pack name. Must be a single path segment.
	Name string

	// Author is written to the pack registry.
	Author string

	// Description is shown in the resource pack menu.
	Description string

	// Version is written to the pack registry.
	Version string

	// ThumbnailPath is an optional 128x128 PNG shown next to the pack.
	// Empty means no thumbnail.
	ThumbnailPath string
}

// invalidNameChars matches characters that no file name may contain on
// Windows, the most restrictive of the supported systems.
var invalidNameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)

// Validate checks that Name can be used as a directory and archive name.
//
// Besides being a single path segment, the name must not contain <>:"|?*
// or control characters and must not end with a dot or a space.
func (m PackMetadata) Validate() error {
	name := m.Name
	switch {
	case strings.TrimSpace(name) == "":
		return NewError(ErrInvalidName, "validate pack", "", "", errEmptyPackName)
	case name == "." || name == "..":
		return NewError(ErrInvalidName, "validate pack", "", name, errPackNameSegment)
	case strings.ContainsAny(name, `/\`) || filepath.Base(name) != name:
		return NewError(ErrInvalidName, "validate pack", "", name, errPackNameSegment)
	case invalidNameChars.MatchString(name):
		return NewError(ErrInvalidName, "validate pack", "", name, errPackNameChars)
	case strings.HasSuffix(name, ".") || strings.HasSuffix(name, " "):
		return NewError(ErrInvalidName, "validate pack", "", name, errPackNameChars)
	}
	return nil
}

// HasThumbnail returns true if a thumbnail path is configured.
func (m PackMetadata) HasThumbnail() bool {
	return m.ThumbnailPath != ""
}

// ArchiveName returns the file name of the pack archive.
func (m PackMetadata) ArchiveName() string {
	return m.Name + ArchiveExtension
}

// DescriptionOrDefault returns the pack description shown in-game.
func (m PackMetadata) DescriptionOrDefault() string {
	return orDefault(m.Description, DefaultPackDescription)
}

// AuthorOrDefault returns the author written to the pack registry.
func (m PackMetadata) AuthorOrDefault() string {
	return orDefault(m.Author, DefaultPackAuthor)
}

// NameOrDefault returns the name written to the pack registry.
func (m PackMetadata) NameOrDefault() string {
	return orDefault(m.Name, DefaultPackName)
}

// VersionOrDefault returns the version written to the pack registry.
func (m PackMetadata) VersionOrDefault() string {
	return orDefault(m.Version, DefaultPackVersion)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
