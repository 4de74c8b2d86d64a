package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/flate"
	"github.com/spf13/viper"

	"github.com/handiism/musica-packotron/internal/assemble"
	ioutils "github.com/handiism/musica-packotron/internal/io"
	"github.com/handiism/musica-packotron/internal/model"
)

const (
	// AppName is the application name.
	AppName = "packotron"
	// EnvPrefix prefixes environment variables that override settings.
	EnvPrefix = "PACKOTRON"
	// ConfigFileName is the default config file name.
	ConfigFileName = "config.json"
)

// Settings holds all configuration options.
type Settings struct {
	// Output settings
	OutputDir        string `mapstructure:"output_dir" json:"output_dir"`
	CompressionLevel int    `mapstructure:"compression_level" json:"compression_level"`

	// Pack metadata defaults
	PackName        string `mapstructure:"pack_name" json:"pack_name"`
	PackAuthor      string `mapstructure:"pack_author" json:"pack_author"`
	PackDescription string `mapstructure:"pack_description" json:"pack_description"`
	PackVersion     string `mapstructure:"pack_version" json:"pack_version"`
	ThumbnailPath   string `mapstructure:"thumbnail_path" json:"thumbnail_path"`

	// Track settings
	DescriptionFromTags bool `mapstructure:"description_from_tags" json:"description_from_tags"`

	// UI settings
	Verbose bool `mapstructure:"verbose" json:"verbose"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		OutputDir:        ".",
		CompressionLevel: flate.DefaultCompression,

		PackName:        "Musica Pack",
		PackAuthor:      model.DefaultPackAuthor,
		PackDescription: model.DefaultPackDescription,
		PackVersion:     model.DefaultPackVersion,
		ThumbnailPath:   "",

		DescriptionFromTags: false,

		Verbose: false,
	}
}

// DefaultPath returns the per-user config file location,
// e.g. ~/.config/packotron/config.json on Linux.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(dir, AppName, ConfigFileName), nil
}

// Load reads settings from a config file and the environment.
//
// Values are layered: defaults, then the file at path (JSON, TOML or YAML,
// chosen by extension), then PACKOTRON_* environment variables such as
// PACKOTRON_OUTPUT_DIR. A missing file is not an error; an empty path
// skips the file entirely.
func Load(path string) (*Settings, error) {
	v := newViper()

	if path != "" && ioutils.Exists(path) {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return settings, nil
}

// Save writes settings to a config file, creating parent directories.
// The format follows the file extension.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := ioutils.EnsureDir(dir); err != nil {
		return err
	}

	v := viper.New()
	for key, value := range s.values() {
		v.Set(key, value)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// ToPackMetadata converts settings to the default pack metadata.
func (s *Settings) ToPackMetadata() model.PackMetadata {
	return model.PackMetadata{
		Name:          s.PackName,
		Author:        s.PackAuthor,
		Description:   s.PackDescription,
		Version:       s.PackVersion,
		ThumbnailPath: s.ThumbnailPath,
	}
}

// ToAssembleOptions converts settings to assembler options.
func (s *Settings) ToAssembleOptions() assemble.Options {
	return assemble.Options{CompressionLevel: s.CompressionLevel}
}

func (s *Settings) values() map[string]any {
	return map[string]any{
		"output_dir":            s.OutputDir,
		"compression_level":     s.CompressionLevel,
		"pack_name":             s.PackName,
		"pack_author":           s.PackAuthor,
		"pack_description":      s.PackDescription,
		"pack_version":          s.PackVersion,
		"thumbnail_path":        s.ThumbnailPath,
		"description_from_tags": s.DescriptionFromTags,
		"verbose":               s.Verbose,
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, value := range DefaultSettings().values() {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}
