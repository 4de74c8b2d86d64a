// Package ioutils provides file system utilities shared by the pack stages.
//
// This package contains functions for:
//   - File copying and writing
//   - Existence checks for source files and directories
//   - Directory creation
//
// # File Operations
//
//	// Copy a file
//	err := ioutils.CopyFile(ctx, "/src/song.ogg", "/pack/assets/musica/sounds/records/song.ogg")
//
//	// Write data to file
//	err := ioutils.WriteFile(ctx, "/pack/pack.mcmeta", data)
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("/path/to/new/directory")
//
// # Checks
//
//	ok, err := ioutils.IsFile("/src/song.ogg") // err wraps fs.ErrNotExist if missing
package ioutils
