// Package manifest loads pack definitions from JSON files.
//
// A manifest carries the pack info, an optional output directory and the
// ordered music list. Load rejects unknown keys, so a misspelt "isShinny"
// fails loudly instead of being ignored:
//
//	m, err := manifest.Load("pack.json")
//	if err != nil {
//	    return err
//	}
//	tracks, err := catalog.NewBuilder(nil).Build(m.Input())
//	meta := m.Metadata(settings.ToPackMetadata())
//	out := m.OutputRoot(settings.OutputDir)
package manifest
