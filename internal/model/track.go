package model

import (
	"path/filepath"
	"strings"
)

// TrackRecord represents a single record (music disc) in a pack.
//
// TrackRecord contains everything the pack needs for one song:
//   - ID, the canonical id used as map key and in generated file names
//   - Description shown on the in-game record item
//   - Source paths of the audio and texture files
//   - Optional lore line, shine and special item name
//
// Records are created by the catalog builder and never modified afterwards.
// HasLore and UseSpecialName are derived from Lore and SpecialName, so a
// record with HasLore set always carries lore text.
//
// Example:
//
//	track := NewTrackRecord("epicBattleTheme", "/music/Epic Battle Theme.ogg", "/tex/epic.png")
//	track.Description // "Epic Battle Theme"
//	track.AudioStem() // "Epic Battle Theme"
type TrackRecord struct {
	// ID is the canonical, collision-free id of the track.
	ID string

	// Description is the item description. Defaults to the audio file stem.
	Description string

	// AudioPath is the absolute path of the source audio file.
	AudioPath string

	// TexturePath is the absolute path of the source texture file.
	TexturePath string

	// HasLore is true when Lore is non-empty.
	HasLore bool

	// Lore is an extra line of text on the record item.
	Lore string

	// IsShiny gives the record item an enchantment glint.
	IsShiny bool

	// UseSpecialName is true when SpecialName is non-empty.
	UseSpecialName bool

	// SpecialName replaces the default "Music Disc" item name.
	SpecialName string
}

// NewTrackRecord creates a record with default metadata.
//
// The description defaults to the audio file name without its extension;
// lore, shine and special name are off.
func NewTrackRecord(id, audioPath, texturePath string) TrackRecord {
	return TrackRecord{
		ID:          id,
		Description: fileStem(audioPath),
		AudioPath:   audioPath,
		TexturePath: texturePath,
	}
}

// AudioFileName returns the base name of the audio source.
func (t TrackRecord) AudioFileName() string {
	return filepath.Base(t.AudioPath)
}

// AudioStem returns the audio file name without its extension.
// Sound events reference the copied audio by this stem.
func (t TrackRecord) AudioStem() string {
	return fileStem(t.AudioPath)
}

// TextureFileName returns the file name the texture gets inside the pack.
func (t TrackRecord) TextureFileName() string {
	return "record_" + t.ID + ".png"
}

// TrackOverride holds optional per-track metadata supplied by the user.
//
// Nil fields leave the default untouched. Setting Lore or SpecialName to an
// empty string clears it.
//
// Example:
//
//	shiny := true
//	lore := "Ancient tune"
//	track = TrackOverride{IsShiny: &shiny, Lore: &lore}.Apply(track)
type TrackOverride struct {
	Description *string
	Lore        *string
	SpecialName *string
	IsShiny     *bool
}

// IsZero reports whether the override changes nothing.
func (o TrackOverride) IsZero() bool {
	return o.Description == nil && o.Lore == nil && o.SpecialName == nil && o.IsShiny == nil
}

// Apply returns a copy of track with the override merged over it.
// An empty description override keeps the existing description.
func (o TrackOverride) Apply(track TrackRecord) TrackRecord {
	if o.Description != nil && *o.Description != "" {
		track.Description = *o.Description
	}
	if o.Lore != nil {
		track.Lore = *o.Lore
	}
	if o.SpecialName != nil {
		track.SpecialName = *o.SpecialName
	}
	if o.IsShiny != nil {
		track.IsShiny = *o.IsShiny
	}

	track.HasLore = track.Lore != ""
	track.UseSpecialName = track.SpecialName != ""

	return track
}

func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
