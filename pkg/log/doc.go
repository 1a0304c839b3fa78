// Package log provides the logging abstraction used by morsekey packages.
//
// Library code never writes to stdout or stderr directly; it logs through
// the [Logger] interface. Two implementations are provided: a zerolog
// adapter and a no-op logger, which is the default everywhere.
//
//	logger := log.NewZerologAdapter(os.Stderr, zerolog.InfoLevel)
//	k, err := keyer.New(cfg, keyer.WithLogger(logger))
//
// Any other logging library can be plugged in by implementing the four
// level methods.
package log
