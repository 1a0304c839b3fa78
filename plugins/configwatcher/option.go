package configwatcher

import "github.com/bft-labs/morsekey/pkg/keyer"

// WithConfigWatcher returns a keyer Option that reloads the speed whenever
// the config file changes.
//
// Usage:
//
//	k, err := keyer.New(cfg,
//	    configwatcher.WithConfigWatcher(configwatcher.Config{
//	        Path:          "/etc/morsekey/config.toml",
//	        DebounceDelay: 100 * time.Millisecond,
//	    }),
//	)
func WithConfigWatcher(cfg Config) keyer.Option {
	return keyer.WithPlugin(New(cfg))
}

// WithDefaultConfigWatcher watches the default config path.
func WithDefaultConfigWatcher() keyer.Option {
	return WithConfigWatcher(DefaultConfig())
}
