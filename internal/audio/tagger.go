package audio

import (
	"strings"

	"github.com/bogem/id3v2"
)

// TagReader reads descriptive metadata from audio files.
//
// TagReader uses the id3v2 library to look up the title (TIT2 frame) of a
// file. Files without an ID3v2 header, such as plain Ogg Vorbis files,
// simply have no title. The file contents are never modified.
//
// Example:
//
//	reader := NewTagReader()
//	if title, ok := reader.Describe("/music/01 intro.mp3"); ok {
//	    fmt.Println(title) // "Intro"
//	}
type TagReader struct {
	frames []string
}

// NewTagReader creates a TagReader that only parses the title frame.
func NewTagReader() *TagReader {
	return &TagReader{frames: []string{"Title"}}
}

// Title returns the trimmed ID3v2 title of the file at path.
//
// Returns an empty string and no error if the file has no tag or no title.
// Returns an error if the file cannot be opened or the tag is corrupt.
func (r *TagReader) Title(path string) (string, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true, ParseFrames: r.frames})
	if err != nil {
		return "", err
	}
	defer tag.Close()

	return strings.TrimSpace(tag.Title()), nil
}

// Describe returns the title to use as a track's default description.
// It reports false when the file carries no usable title.
func (r *TagReader) Describe(path string) (string, bool) {
	title, err := r.Title(path)
	if err != nil || title == "" {
		return "", false
	}
	return title, true
}
