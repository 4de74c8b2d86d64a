// Package layout creates the fixed directory skeleton of a pack.
//
// A pack staged under <output>/<packName> looks like:
//
//	pack.mcmeta
//	record-pack.json
//	pack.png                      (optional thumbnail)
//	assets/musica/sounds.json
//	assets/musica/lang/en_US.lang
//	assets/musica/sounds/records/ (audio files)
//	assets/musica/textures/items/ (record_<id>.png textures)
//
// The helpers in this package are the only place these paths are spelled
// out; the descriptor, asset and archive stages all go through them.
package layout

import (
	"errors"
	"io/fs"
	"path/filepath"

	ioutils "github.com/handiism/musica-packotron/internal/io"
	"github.com/handiism/musica-packotron/internal/model"
)

// Namespace is the asset namespace of the Musica mod.
const Namespace = "musica"

// File names at fixed positions in the layout.
const (
	PackDescriptorFile = "pack.mcmeta"
	PackRegistryFile   = "record-pack.json"
	ThumbnailFile      = "pack.png"
	SoundRegistryFile  = "sounds.json"
	LangFile           = "en_US.lang"
)

// NamespaceDir returns assets/<namespace> under root.
func NamespaceDir(root string) string {
	return filepath.Join(root, "assets", Namespace)
}

// LangDir returns the localization directory under root.
func LangDir(root string) string {
	return filepath.Join(NamespaceDir(root), "lang")
}

// RecordsDir returns the directory the audio files are copied to.
func RecordsDir(root string) string {
	return filepath.Join(NamespaceDir(root), "sounds", "records")
}

// ItemsDir returns the directory the record textures are copied to.
func ItemsDir(root string) string {
	return filepath.Join(NamespaceDir(root), "textures", "items")
}

// Dirs returns every directory of the skeleton below root, parents first.
func Dirs(root string) []string {
	return []string{
		LangDir(root),
		RecordsDir(root),
		ItemsDir(root),
	}
}

// Root returns the absolute staging directory for packName in outputRoot
// without touching the file system.
func Root(outputRoot, packName string) (string, error) {
	abs, err := filepath.Abs(filepath.Join(outputRoot, packName))
	if err != nil {
		return "", model.NewError(model.ErrInvalidOutput, "plan layout", "", outputRoot, err)
	}
	return abs, nil
}

// Create makes a fresh pack directory named packName in outputRoot together
// with the fixed skeleton, and returns its absolute path.
//
// The pack directory must not exist yet: an existing directory or file
// fails with model.ErrAlreadyExists and is left untouched.
//
// Example:
//
//	root, err := layout.Create("/tmp/out", "Test Pack")
//	// root = "/tmp/out/Test Pack"
func Create(outputRoot, packName string) (string, error) {
	root, err := Root(outputRoot, packName)
	if err != nil {
		return "", err
	}

	if err := ioutils.CreateDir(root); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", model.NewError(model.ErrAlreadyExists, "create layout", "", root, nil)
		}
		return "", model.NewError(model.ErrInvalidOutput, "create layout", "", root, err)
	}

	for _, dir := range Dirs(root) {
		if err := ioutils.EnsureDir(dir); err != nil {
			return "", model.NewError(model.ErrInvalidOutput, "create layout", "", dir, err)
		}
	}

	return root, nil
}
