package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	Message         string  `toml:"message"`
	ElementDuration string  `toml:"element_duration"`
	WPM             float64 `toml:"wpm"`
	ReferenceWord   string  `toml:"reference_word"`
	Output          string  `toml:"output"`
	PinOut          int     `toml:"pin_out"`
	Frequency       float64 `toml:"frequency"`
	LogLevel        string  `toml:"log_level"`
	Format          string  `toml:"format"`
	Watch           *bool   `toml:"watch"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.morsekey/config.toml, or "" when the home
// directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".morsekey", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("message", fc.Message, &cfg.Message)
	s.setString("word", fc.ReferenceWord, &cfg.ReferenceWord)
	s.setString("output", fc.Output, &cfg.Output)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("format", fc.Format, &cfg.Format)

	if err := s.setDuration("element-duration", fc.ElementDuration, &cfg.ElementDuration); err != nil {
		return err
	}
	s.setFloat("wpm", fc.WPM, &cfg.WPM)
	s.setFloat("frequency", fc.Frequency, &cfg.Frequency)
	s.setInt("pin-out", fc.PinOut, &cfg.PinOut)
	s.setBool("watch", fc.Watch, &cfg.Watch)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
