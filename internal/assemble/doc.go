// Package assemble provides the pack assembly pipeline.
//
// # Assembler
//
// The Assembler coordinates a whole run:
//
//  1. Validate the track model, pack metadata and output directory
//  2. Create the staging layout <output>/<pack name>
//  3. Write the descriptor files
//  4. Copy audio, textures and the optional thumbnail
//  5. Zip the layout into <output>/<pack name>.rpack.zip
//  6. Remove the staging layout
//
// Progress is reported through a ProgressEvent callback. Failures after
// step 2 leave the staging layout on disk.
package assemble
