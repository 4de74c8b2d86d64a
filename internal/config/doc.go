// Package config provides configuration management for packotron.
//
// This package handles:
//   - Default configuration values
//   - Loading settings from a config file and PACKOTRON_* environment variables
//   - Saving settings in JSON, TOML or YAML
//   - Conversion to model.PackMetadata and assemble.Options
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Writes to the current directory
//	// Pack "Musica Pack" by "An Author"
//
// # Loading
//
//	settings, err := config.Load("/path/to/config.yaml")
//	if err != nil {
//	    // The file exists but cannot be parsed
//	}
//
// Environment variables win over the file:
//
//	PACKOTRON_OUTPUT_DIR=/tmp/out PACKOTRON_PACK_AUTHOR=Steve packotron cl ...
//
// # Saving Settings
//
//	settings.PackAuthor = "Steve"
//	err := settings.Save("/path/to/config.json")
package config
