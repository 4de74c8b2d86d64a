package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/klauspost/compress/flate"

	"github.com/handiism/musica-packotron/internal/model"
)

// epoch is the modification time stamped on every entry. It is the
// earliest time the zip format can represent.
var epoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// DefaultLevel is the Deflate level used when none is configured.
const DefaultLevel = flate.DefaultCompression

// Archiver packs a staged layout into a zip archive.
//
// Entries are written in bytewise order of their names with a fixed timestamp and
// mode, so two identical trees always produce identical archives.
type Archiver struct {
	level int
}

// NewArchiver creates an Archiver using the given Deflate level
// (flate.BestSpeed..flate.BestCompression, or DefaultLevel).
// Out-of-range levels fall back to DefaultLevel.
func NewArchiver(level int) *Archiver {
	if level < flate.HuffmanOnly || level > flate.BestCompression {
		level = DefaultLevel
	}
	return &Archiver{level: level}
}

// Archive zips every regular file below root into
// <outputRoot>/<packName>.rpack.zip and returns the archive's absolute path.
//
// Entry names are slash-separated paths relative to root; root itself and
// directories get no entries. An existing archive of the same name is
// replaced. On failure the partial archive is removed, root is left
// untouched and the error wraps model.ErrArchiveFailed.
func (a *Archiver) Archive(root, outputRoot, packName string) (archivePath string, err error) {
	archivePath, err = filepath.Abs(filepath.Join(outputRoot, packName+model.ArchiveExtension))
	if err != nil {
		return "", model.NewError(model.ErrArchiveFailed, "archive pack", "", outputRoot, err)
	}

	zipFile, err := os.Create(archivePath)
	if err != nil {
		return "", model.NewError(model.ErrArchiveFailed, "archive pack", "", archivePath, err)
	}

	writeErr := a.write(zipFile, root)
	if closeErr := zipFile.Close(); closeErr != nil && writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		_ = os.Remove(archivePath)
		return "", model.NewError(model.ErrArchiveFailed, "archive pack", "", archivePath, writeErr)
	}

	return archivePath, nil
}

func (a *Archiver) write(w io.Writer, root string) (err error) {
	zipWriter := zip.NewWriter(w)
	zipWriter.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, a.level)
	})
	defer func() {
		if closeErr := zipWriter.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	files, err := collect(root)
	if err != nil {
		return err
	}
	for _, f := range files {
		if err := addFile(zipWriter, filepath.Join(root, filepath.FromSlash(f)), f); err != nil {
			return err
		}
	}
	return nil
}

// collect lists the regular files below root as slash-separated relative
// paths, sorted bytewise.
func collect(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.Type().IsRegular() {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path: %w", err)
		}
		files = append(files, filepath.ToSlash(relPath))
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(files)
	return files, nil
}

func addFile(zw *zip.Writer, path, name string) error {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	header := &zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: epoch,
	}
	header.SetMode(0o644)

	dst, err := zw.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("failed to create entry %s: %w", name, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to write entry %s: %w", name, err)
	}
	return nil
}
