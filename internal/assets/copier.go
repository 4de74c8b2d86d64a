package assets

import (
	"context"
	"path/filepath"

	ioutils "github.com/handiism/musica-packotron/internal/io"
	"github.com/handiism/musica-packotron/internal/layout"
	"github.com/handiism/musica-packotron/internal/model"
)

// Copier places the media files of a pack into its layout.
//
// Files are copied byte for byte; nothing is decoded, resized or
// transcoded. The optional onCopy callback is invoked after every file
// that lands in the layout, which lets callers report progress.
type Copier struct {
	onCopy func(src, dst string)
}

// NewCopier creates a Copier. onCopy may be nil.
func NewCopier(onCopy func(src, dst string)) *Copier {
	return &Copier{onCopy: onCopy}
}

// Copy copies every track's audio and texture, plus the pack thumbnail,
// into the layout at root.
//
//   - audio   → assets/musica/sounds/records/<original file name>
//   - texture → assets/musica/textures/items/record_<id>.png
//   - thumbnail (if set and present) → pack.png
//
// Audio and texture failures stop the copy with model.ErrCopyFailed naming
// the track and file. Files copied before the failure are left in place.
// A thumbnail that does not exist is skipped.
func (c *Copier) Copy(ctx context.Context, root string, tracks *model.TrackSet, meta model.PackMetadata) error {
	for _, t := range tracks.Records() {
		if err := c.copyTrack(ctx, root, t); err != nil {
			return err
		}
	}

	if _, err := c.CopyThumbnail(ctx, root, meta); err != nil {
		return err
	}
	return nil
}

// Count returns the number of files Copy would write for tracks and meta.
func Count(tracks *model.TrackSet, meta model.PackMetadata) int {
	n := 2 * tracks.Len()
	if thumbnailPresent(meta) {
		n++
	}
	return n
}

func (c *Copier) copyTrack(ctx context.Context, root string, t model.TrackRecord) error {
	audioDst := filepath.Join(layout.RecordsDir(root), t.AudioFileName())
	if err := c.copy(ctx, t.AudioPath, audioDst); err != nil {
		return model.NewError(model.ErrCopyFailed, "copy audio", t.ID, t.AudioPath, err)
	}

	textureDst := filepath.Join(layout.ItemsDir(root), t.TextureFileName())
	if err := c.copy(ctx, t.TexturePath, textureDst); err != nil {
		return model.NewError(model.ErrCopyFailed, "copy texture", t.ID, t.TexturePath, err)
	}
	return nil
}

// CopyThumbnail copies the pack thumbnail to pack.png and reports whether
// it did. A missing or unset thumbnail is not an error.
func (c *Copier) CopyThumbnail(ctx context.Context, root string, meta model.PackMetadata) (bool, error) {
	if !thumbnailPresent(meta) {
		return false, nil
	}

	dst := filepath.Join(root, layout.ThumbnailFile)
	if err := c.copy(ctx, meta.ThumbnailPath, dst); err != nil {
		return false, model.NewError(model.ErrCopyFailed, "copy thumbnail", "", meta.ThumbnailPath, err)
	}
	return true, nil
}

func (c *Copier) copy(ctx context.Context, src, dst string) error {
	if err := ioutils.CopyFile(ctx, src, dst); err != nil {
		return err
	}
	if c.onCopy != nil {
		c.onCopy(src, dst)
	}
	return nil
}

func thumbnailPresent(meta model.PackMetadata) bool {
	if !meta.HasThumbnail() {
		return false
	}
	ok, _ := ioutils.IsFile(meta.ThumbnailPath)
	return ok
}
