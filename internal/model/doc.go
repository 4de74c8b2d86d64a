// Package model defines the core data structures used throughout
// the musica-packotron application.
//
// # TrackRecord
//
// TrackRecord represents one record (audio + texture + item metadata):
//
//	track := model.NewTrackRecord("epicBattleTheme", audioPath, texturePath)
//	fmt.Println(track.Description)       // "Epic Battle Theme"
//	fmt.Println(track.TextureFileName()) // "record_epicBattleTheme.png"
//
// # TrackSet
//
// TrackSet is the ordered, read-only mapping of canonical id to record that
// every pipeline stage consumes:
//
//	tracks, err := model.NewTrackSet(a, b)
//	tracks.Each(func(n int, t model.TrackRecord) {
//	    fmt.Println(model.RecordKey(n), t.ID) // "track1 songA"
//	})
//
// # Canonical ids
//
// NormalizeName turns a file stem into a canonical id. Tokens are joined
// without a separator:
//
//	id, err := model.NormalizeName("Epic Battle Theme") // "epicBattleTheme"
//
// # Errors
//
// Pipeline failures are *PackError values wrapping one of the Err* kinds,
// so they can be matched with errors.Is.
package model
