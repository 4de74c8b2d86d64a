// Package archive compresses a staged pack into a single .rpack.zip file.
//
// Deflate is provided by github.com/klauspost/compress/flate, registered on
// the zip writer in place of the standard library compressor.
package archive
