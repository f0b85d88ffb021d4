package skinny

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// ConfigFile is the default name of the engine configuration.
const ConfigFile = "skinny.toml"

// Config configures an Engine.
type Config struct {
	// Theme is an optional theme file applied over the default skin.
	Theme string `toml:"theme"`

	LogLevel  string `toml:"log_level" validate:"omitempty,oneof=trace debug info warn error disabled"`
	HumanLogs bool   `toml:"human_logs"`

	// Animations enables state transitions for skinnables created by the
	// engine.
	Animations bool `toml:"animations"`

	// SpacingUnit is the pixel size of one spacing step in class strings.
	SpacingUnit float64 `toml:"spacing_unit" validate:"gte=0"`
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() Config {
	return Config{
		LogLevel:    "info",
		Animations:  true,
		SpacingUnit: 4,
	}
}

var configValidator = validator.New()

// Validate checks the field constraints of c.
func (c Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadConfig loads the configuration at path. If the file doesn't exist the
// default config is returned.
func LoadConfig(fsys afero.Fs, path string) (Config, error) {
	config := DefaultConfig()

	data, err := afero.ReadFile(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// Theme paths are relative to the config file.
	if config.Theme != "" && !filepath.IsAbs(config.Theme) {
		config.Theme = filepath.Join(filepath.Dir(path), config.Theme)
	}

	return config, config.Validate()
}

// SaveConfig writes config to path.
func SaveConfig(fsys afero.Fs, path string, config Config) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := afero.WriteFile(fsys, path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
