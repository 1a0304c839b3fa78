package cliconfig

import (
	"errors"
	"testing"
	"time"

	"github.com/bft-labs/morsekey/internal/domain"
	"github.com/bft-labs/morsekey/pkg/speed"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Message != "SOS" {
		t.Errorf("Message = %v, want SOS", cfg.Message)
	}
	if cfg.PinOut != 13 {
		t.Errorf("PinOut = %v, want 13", cfg.PinOut)
	}
	if cfg.Frequency != 784 {
		t.Errorf("Frequency = %v, want 784", cfg.Frequency)
	}
	if !cfg.Speed().IsZero() {
		t.Errorf("Speed() = %v, want unset", cfg.Speed())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := DefaultConfig()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{"defaults", func(c *Config) {}, nil},
		{"element duration", func(c *Config) { c.ElementDuration = 60 * time.Millisecond }, nil},
		{"wpm", func(c *Config) { c.WPM = 20 }, nil},
		{"multiple outputs", func(c *Config) { c.Output = "console, bits" }, nil},
		{"yaml format", func(c *Config) { c.Format = "YAML" }, nil},
		{"both speeds", func(c *Config) {
			c.ElementDuration = time.Millisecond
			c.WPM = 20
		}, speed.ErrAmbiguousSpeedSpec},
		{"negative wpm", func(c *Config) { c.WPM = -1 }, speed.ErrInvalidSpeed},
		{"empty output", func(c *Config) { c.Output = " , " }, domain.ErrInvalidConfig},
		{"unknown output", func(c *Config) { c.Output = "console,buzzer" }, domain.ErrInvalidConfig},
		{"zero pin", func(c *Config) { c.PinOut = 0 }, domain.ErrInvalidConfig},
		{"zero frequency", func(c *Config) { c.Frequency = 0 }, domain.ErrInvalidConfig},
		{"unknown format", func(c *Config) { c.Format = "xml" }, domain.ErrInvalidConfig},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, domain.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, domain.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want it to wrap ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_Outputs(t *testing.T) {
	cfg := Config{Output: " Console,,LED ,sound"}
	got := cfg.Outputs()
	want := []string{"console", "led", "sound"}

	if len(got) != len(want) {
		t.Fatalf("Outputs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Outputs()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
