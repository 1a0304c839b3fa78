// Package configwatcher reloads the keying speed when the config file
// changes. It watches the file's directory with fsnotify, debounces bursts
// of writes and hands the new speed to the keyer before its next message.
package configwatcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/morsekey/internal/cliconfig"
	"github.com/bft-labs/morsekey/pkg/keyer"
	"github.com/bft-labs/morsekey/pkg/log"
	"github.com/bft-labs/morsekey/pkg/speed"
)

// ResolveFunc turns a freshly loaded config file into the speed to use.
type ResolveFunc func(fc cliconfig.FileConfig) (speed.Spec, error)

// Config holds configuration options for the config watcher plugin.
type Config struct {
	// Path is the config file to watch. Default: cliconfig.DefaultConfigPath().
	Path string

	// DebounceDelay is the delay to wait after a file change before reloading.
	// Default: 100 milliseconds
	DebounceDelay time.Duration

	// Resolve maps the file to a speed. Default: FileSpeed.
	Resolve ResolveFunc
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Path:          cliconfig.DefaultConfigPath(),
		DebounceDelay: 100 * time.Millisecond,
		Resolve:       FileSpeed,
	}
}

// FileSpeed reads the speed straight from the file.
func FileSpeed(fc cliconfig.FileConfig) (speed.Spec, error) {
	var spec speed.Spec
	if fc.ElementDuration != "" {
		d, err := time.ParseDuration(fc.ElementDuration)
		if err != nil {
			return spec, fmt.Errorf("parse element_duration: %w", err)
		}
		spec.ElementDuration = d
	}
	spec.WPM = fc.WPM
	return spec, spec.Validate()
}

// Plugin implements config watching functionality.
type Plugin struct {
	mu sync.Mutex

	path          string
	debounceDelay time.Duration
	resolve       ResolveFunc

	logger      log.Logger
	reconfigure func(speed.Spec) error
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	debounce    *time.Timer
}

// New creates a new config watcher plugin with the given configuration.
func New(cfg Config) *Plugin {
	if cfg.Path == "" {
		cfg.Path = cliconfig.DefaultConfigPath()
	}
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = 100 * time.Millisecond
	}
	if cfg.Resolve == nil {
		cfg.Resolve = FileSpeed
	}

	return &Plugin{
		path:          cfg.Path,
		debounceDelay: cfg.DebounceDelay,
		resolve:       cfg.Resolve,
		logger:        log.NoopLogger{},
	}
}

// Name returns the plugin identifier.
func (p *Plugin) Name() string {
	return "configwatcher"
}

// Initialize starts watching the config file.
func (p *Plugin) Initialize(ctx context.Context, cfg keyer.PluginConfig) error {
	p.mu.Lock()
	p.logger = log.OrNoop(cfg.Logger)
	p.reconfigure = cfg.Reconfigure
	p.mu.Unlock()

	if p.path == "" || p.reconfigure == nil {
		p.logger.Warn("config watcher disabled: no config path or reconfigure hook")
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(p.path)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(p.path), err)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	p.logger.Info("config watcher started", log.String("path", p.path))

	p.wg.Add(1)
	go p.watchLoop(watchCtx, watcher)

	return nil
}

// Shutdown stops the config watcher.
func (p *Plugin) Shutdown(ctx context.Context) error {
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()

	p.mu.Lock()
	if p.debounce != nil {
		p.debounce.Stop()
	}
	p.mu.Unlock()
	return nil
}

func (p *Plugin) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer p.wg.Done()
	defer watcher.Close()

	name := filepath.Clean(p.path)
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			p.debounceReload(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			p.logger.Error("config watcher error", log.Err(err))
		}
	}
}

func (p *Plugin) debounceReload(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.debounce != nil {
		p.debounce.Stop()
	}
	p.debounce = time.AfterFunc(p.debounceDelay, func() {
		if ctx.Err() != nil {
			return
		}
		if err := p.Reload(); err != nil {
			p.logger.Warn("config reload rejected", log.Err(err))
		}
	})
}

// Reload reads the config file and applies its speed. A file with both
// element_duration and wpm is rejected and the current speed is kept.
func (p *Plugin) Reload() error {
	fc, err := cliconfig.LoadFileConfig(p.path)
	if err != nil {
		return fmt.Errorf("load %s: %w", p.path, err)
	}
	spec, err := p.resolve(fc)
	if err != nil {
		return err
	}

	p.mu.Lock()
	reconfigure := p.reconfigure
	p.mu.Unlock()
	if reconfigure == nil {
		return nil
	}
	if err := reconfigure(spec); err != nil {
		return err
	}
	p.logger.Info("config reloaded", log.Stringer("speed", spec))
	return nil
}

var _ keyer.Plugin = (*Plugin)(nil)
