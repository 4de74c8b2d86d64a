// Package descriptor renders the text artifacts of a resource pack.
//
// # Files
//
// Generate writes four files into a staged layout:
//
//	gen := descriptor.NewGenerator()
//	err := gen.Generate(ctx, root, tracks, meta)
//
//   - pack.mcmeta: pack description and the en_US language block
//   - record-pack.json: pack info plus records track1..trackN
//   - assets/musica/sounds.json: "records.<id>" sound events
//   - assets/musica/lang/en_US.lang: desc, lore and name lines
//
// These file formats are read verbatim by the Musica mod, so key names,
// numbering and order are part of the contract.
//
// # Determinism
//
// JSON objects are assembled key by key with sjson, which keeps insertion
// order, then indented with four spaces. Rendering the same model twice
// yields identical bytes.
package descriptor
