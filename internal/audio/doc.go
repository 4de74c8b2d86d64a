// Package audio reads metadata from audio files.
//
// # ID3 Titles
//
// Use the TagReader to pick up the embedded title of a track:
//
//	reader := audio.NewTagReader()
//	title, ok := reader.Describe("/music/song.mp3")
//
// The catalog builder accepts a TagReader as its Describer, so a track's
// default description can come from its tag instead of its file name.
// Only ID3v2 tags are read; files without one report no title.
package audio
