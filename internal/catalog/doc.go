// Package catalog builds the ordered track model of a pack from user input.
//
// # Builder
//
// The Builder merges parallel lists of audio paths, texture paths and
// optional per-track overrides into a model.TrackSet:
//
//	tracks, err := catalog.NewBuilder(nil).Build(catalog.Input{
//	    AudioPaths:   []string{"songA.ogg", "songB.ogg"},
//	    TexturePaths: []string{"texA.png", "texB.png"},
//	    Overrides:    []model.TrackOverride{{}, {IsShiny: &shiny}},
//	})
//
// Canonical ids come from model.NormalizeName. When two stems normalize to
// the same id, the later track gets the lowest free numeric suffix:
// "track", "track2", "track3", ...
//
// Every path is checked before the TrackSet is returned, so failures
// (ErrMissingTexture, ErrSourceNotFound, ErrInvalidName) surface before any
// directory is created.
//
// # Draft
//
// Draft is the editable list behind the interactive front-end. Tracks are
// added, edited and removed one at a time, then Draft.Input() feeds the
// Builder.
package catalog
