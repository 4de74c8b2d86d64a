package model

import (
	"errors"
	"strings"
)

// Error kinds reported by the pack assembly pipeline.
//
// Every error returned by the pipeline wraps exactly one of these, so callers
// can classify failures with errors.Is:
//
//	if errors.Is(err, model.ErrMissingTexture) {
//	    // ask the user for the missing texture
//	}
var (
	// ErrInvalidName means a canonical id or pack name could not be derived.
	ErrInvalidName = errors.New("invalid name")

	// ErrMissingTexture means a track has no texture path.
	ErrMissingTexture = errors.New("missing texture")

	// ErrSourceNotFound means a referenced audio or texture file does not exist.
	ErrSourceNotFound = errors.New("source not found")

	// ErrAlreadyExists means the pack staging directory is already present.
	ErrAlreadyExists = errors.New("already exists")

	// ErrCopyFailed means a media file could not be copied into the layout.
	ErrCopyFailed = errors.New("copy failed")

	// ErrArchiveFailed means the pack archive could not be written.
	ErrArchiveFailed = errors.New("archive failed")

	// ErrInvalidInput means the caller supplied malformed input, such as
	// an empty track list or more overrides than tracks.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateSource means two tracks would be copied to the same
	// destination file name.
	ErrDuplicateSource = errors.New("duplicate source")

	// ErrInvalidOutput means the output root is missing or not a directory.
	ErrInvalidOutput = errors.New("invalid output directory")
)

var (
	errEmptyPackName   = errors.New("pack name is empty")
	errPackNameSegment = errors.New("pack name must be a single path segment")
	errPackNameChars   = errors.New("pack name contains characters not allowed in file names")
	errDuplicateID     = errors.New("duplicate track id")
)

// PackError carries the context of a pipeline failure.
//
// Kind is one of the Err* sentinels above. TrackID and Path are set when the
// failure concerns a particular track or file, and Err holds the underlying
// cause (often an *fs.PathError).
type PackError struct {
	Kind    error
	Op      string
	TrackID string
	Path    string
	Err     error
}

// Error renders the failure as a single line suitable for end users.
func (e *PackError) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.Error())
	if e.TrackID != "" {
		b.WriteString(" (track ")
		b.WriteString(e.TrackID)
		b.WriteString(")")
	}
	if e.Path != "" {
		b.WriteString(": ")
		b.WriteString(e.Path)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *PackError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewError builds a PackError of the given kind.
func NewError(kind error, op, trackID, path string, cause error) *PackError {
	return &PackError{Kind: kind, Op: op, TrackID: trackID, Path: path, Err: cause}
}
