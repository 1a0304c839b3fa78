package cliconfig

import "os"

// ApplyEnvConfig applies MORSEKEY_* environment variables to cfg, skipping
// values whose flag was set on the command line.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("message", os.Getenv("MORSEKEY_MESSAGE"), &cfg.Message)
	s.setString("word", os.Getenv("MORSEKEY_REFERENCE_WORD"), &cfg.ReferenceWord)
	s.setString("output", os.Getenv("MORSEKEY_OUTPUT"), &cfg.Output)
	s.setString("log-level", os.Getenv("MORSEKEY_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("format", os.Getenv("MORSEKEY_FORMAT"), &cfg.Format)

	if err := s.setDuration("element-duration", os.Getenv("MORSEKEY_ELEMENT_DURATION"), &cfg.ElementDuration); err != nil {
		return err
	}
	if err := s.setFloatFromString("wpm", os.Getenv("MORSEKEY_WPM"), &cfg.WPM); err != nil {
		return err
	}
	if err := s.setFloatFromString("frequency", os.Getenv("MORSEKEY_FREQUENCY"), &cfg.Frequency); err != nil {
		return err
	}
	if err := s.setIntFromString("pin-out", os.Getenv("MORSEKEY_PIN_OUT"), &cfg.PinOut); err != nil {
		return err
	}

	s.setBoolFromString("watch", os.Getenv("MORSEKEY_WATCH"), &cfg.Watch)

	return nil
}
