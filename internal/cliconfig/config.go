package cliconfig

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/morsekey/internal/domain"
	"github.com/bft-labs/morsekey/pkg/speed"
)

// Defaults applied by DefaultConfig.
const (
	DefaultMessage   = "SOS"
	DefaultPinOut    = 13
	DefaultFrequency = 784.0
)

// Output names accepted by Config.Output.
const (
	OutputConsole = "console"
	OutputBits    = "bits"
	OutputLED     = "led"
	OutputSound   = "sound"
	OutputNone    = "none"
)

// Dump formats accepted by Config.Format.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Config holds CLI configuration for morsekey.
type Config struct {
	Message string

	ElementDuration time.Duration
	WPM             float64
	ReferenceWord   string

	// Output is a comma separated list of effectors.
	Output    string
	PinOut    int
	Frequency float64

	LogLevel string
	Format   string
	Watch    bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Message:       DefaultMessage,
		ReferenceWord: speed.ReferenceWord,
		Output:        OutputConsole,
		PinOut:        DefaultPinOut,
		Frequency:     DefaultFrequency,
		LogLevel:      zerolog.LevelInfoValue,
		Format:        FormatJSON,
	}
}

// Speed returns the speed selection of the config.
func (c *Config) Speed() speed.Spec {
	return speed.Spec{ElementDuration: c.ElementDuration, WPM: c.WPM}
}

// Outputs splits Output into effector names.
func (c *Config) Outputs() []string {
	var out []string
	for _, name := range strings.Split(c.Output, ",") {
		if name = strings.ToLower(strings.TrimSpace(name)); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// Validate checks the configuration for errors. Speed errors keep their
// identity, so errors.Is(err, speed.ErrAmbiguousSpeedSpec) holds.
func (c *Config) Validate() error {
	if err := c.Speed().Validate(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}

	outputs := c.Outputs()
	if len(outputs) == 0 {
		return fmt.Errorf("%w: output is required", domain.ErrInvalidConfig)
	}
	for _, name := range outputs {
		switch name {
		case OutputConsole, OutputBits, OutputLED, OutputSound, OutputNone:
		default:
			return fmt.Errorf("%w: unknown output %q", domain.ErrInvalidConfig, name)
		}
	}

	if c.PinOut <= 0 {
		return fmt.Errorf("%w: pin-out must be positive", domain.ErrInvalidConfig)
	}
	if c.Frequency <= 0 {
		return fmt.Errorf("%w: frequency must be positive", domain.ErrInvalidConfig)
	}

	switch strings.ToLower(c.Format) {
	case FormatJSON, FormatYAML, FormatTOML:
	default:
		return fmt.Errorf("%w: unknown format %q", domain.ErrInvalidConfig, c.Format)
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level: %w", domain.ErrInvalidConfig, err)
	}

	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setFloat(flag string, value float64, dst *float64) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if positive.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setFloatFromString parses a string to float64 and sets the destination if positive.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if f <= 0 {
		return nil
	}
	*dst = f
	return nil
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
