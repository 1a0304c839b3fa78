package keyer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bft-labs/morsekey/internal/app"
	"github.com/bft-labs/morsekey/internal/domain"
	"github.com/bft-labs/morsekey/pkg/codec"
	"github.com/bft-labs/morsekey/pkg/log"
	"github.com/bft-labs/morsekey/pkg/rle"
	"github.com/bft-labs/morsekey/pkg/schedule"
	"github.com/bft-labs/morsekey/pkg/speed"
)

// Errors returned by a Keyer.
var (
	ErrBusy           = domain.ErrBusy
	ErrAlreadyStarted = domain.ErrAlreadyStarted
	ErrNotStarted     = domain.ErrNotStarted
)

// Config holds the keyer settings.
type Config struct {
	// Speed selects the unit duration. The zero value keys at one second
	// per unit.
	Speed speed.Spec

	// ReferenceWord calibrates WPM. Default: PARIS.
	ReferenceWord string
}

// Plan is the keying plan of one message.
type Plan struct {
	Message string           `json:"message" yaml:"message" toml:"message"`
	Morse   string           `json:"morse" yaml:"morse" toml:"morse"`
	Unit    time.Duration    `json:"unit" yaml:"unit" toml:"unit"`
	Units   int              `json:"units" yaml:"units" toml:"units"`
	Runs    []rle.Run        `json:"runs" yaml:"runs" toml:"runs"`
	Events  []schedule.Event `json:"events" yaml:"events" toml:"events"`
}

// Duration returns the time needed to key the plan.
func (p Plan) Duration() time.Duration {
	return schedule.Total(p.Events)
}

// BuildPlan encodes message and schedules it at unit. An empty message
// yields an empty plan.
func BuildPlan(message string, unit time.Duration) (Plan, error) {
	normalized := codec.Normalize(message)
	runs := rle.Compress(codec.EncodeBits(normalized))
	events, err := schedule.Build(runs, unit)
	if err != nil {
		return Plan{}, err
	}
	return Plan{
		Message: normalized,
		Morse:   codec.Format(normalized),
		Unit:    unit,
		Units:   rle.Units(runs),
		Runs:    runs,
		Events:  events,
	}, nil
}

// Result describes one Send.
type Result struct {
	RunID     string
	Message   string
	Unit      time.Duration
	Units     int
	Events    int
	Delivered int
	Elapsed   time.Duration
}

// Keyer sends messages as timed ON/OFF events.
// Use New to create one.
type Keyer struct {
	model     *speed.Model
	lifecycle *app.Lifecycle
	scheduler *schedule.Scheduler
	effector  schedule.Effector
	clock     schedule.Clock
	logger    log.Logger
	emitter   *eventEmitterWrapper
	plugins   []Plugin

	mu      sync.RWMutex
	spec    speed.Spec
	unit    time.Duration
	started bool
	cancel  context.CancelFunc
}

// New creates a Keyer. It fails when cfg.Speed is invalid or ambiguous.
func New(cfg Config, opts ...Option) (*Keyer, error) {
	model := speed.NewModel(cfg.ReferenceWord)
	unit, err := model.UnitDuration(cfg.Speed)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	emitter := &eventEmitterWrapper{handler: o.eventHandler}

	return &Keyer{
		model:     model,
		lifecycle: app.NewLifecycle(o.logger, emitter),
		scheduler: schedule.New(schedule.WithClock(o.clock), schedule.WithLogger(o.logger)),
		effector:  o.effector,
		clock:     o.clock,
		logger:    o.logger,
		emitter:   emitter,
		plugins:   o.plugins,
		spec:      cfg.Speed,
		unit:      unit,
	}, nil
}

// Unit returns the unit duration used by the next message.
func (k *Keyer) Unit() time.Duration {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.unit
}

// Speed returns the speed the keyer was last configured with.
func (k *Keyer) Speed() speed.Spec {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.spec
}

// Reconfigure changes the speed of subsequent messages. A message already
// in flight keeps its unit.
func (k *Keyer) Reconfigure(spec speed.Spec) error {
	unit, err := k.model.UnitDuration(spec)
	if err != nil {
		return err
	}

	k.mu.Lock()
	k.spec = spec
	k.unit = unit
	k.mu.Unlock()

	k.logger.Info("speed reconfigured",
		log.Stringer("speed", spec),
		log.Duration("unit", unit),
	)
	return nil
}

// Status returns the current lifecycle state.
func (k *Keyer) Status() State {
	return convertState(k.lifecycle.State())
}

// Plan builds the plan for message at the current speed without keying it.
func (k *Keyer) Plan(message string) (Plan, error) {
	return BuildPlan(message, k.Unit())
}

// Send keys message and blocks until the last event was delivered, the
// effector failed or ctx was canceled. Effector errors are returned
// unchanged. A Send while another message is in flight returns ErrBusy.
func (k *Keyer) Send(ctx context.Context, message string) (Result, error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if err := k.lifecycle.Acquire("Send() called", cancel); err != nil {
		return Result{}, err
	}

	res := Result{RunID: uuid.NewString(), Message: message}
	logger := k.logger.With(log.String("run_id", res.RunID))

	plan, err := k.Plan(message)
	if err != nil {
		k.fail(&res, err, "plan failed")
		return res, err
	}
	res.Message = plan.Message
	res.Unit = plan.Unit
	res.Units = plan.Units
	res.Events = len(plan.Events)

	if len(plan.Events) == 0 {
		k.lifecycle.Release(false, "empty message")
		k.emitter.onSent(MessageSentEvent{RunID: res.RunID, Message: res.Message})
		return res, nil
	}

	if err := k.lifecycle.TransitionTo(app.StateKeying, "plan built"); err != nil {
		k.fail(&res, err, "keying refused")
		return res, err
	}

	logger.Info("keying message",
		log.String("message", plan.Message),
		log.String("morse", plan.Morse),
		log.Duration("unit", plan.Unit),
		log.Int("units", plan.Units),
		log.Int("events", len(plan.Events)),
	)

	start := k.clock.Now()
	res.Delivered, err = k.scheduler.Run(runCtx, plan.Events, k.effector)
	res.Elapsed = k.clock.Now().Sub(start)
	if err != nil {
		logger.Warn("keying aborted",
			log.Int("delivered", res.Delivered),
			log.Err(err),
		)
		k.fail(&res, err, err.Error())
		return res, err
	}

	k.lifecycle.Release(false, "message sent")
	k.emitter.onSent(MessageSentEvent{
		RunID:   res.RunID,
		Message: res.Message,
		Events:  res.Events,
		Elapsed: res.Elapsed,
	})
	logger.Debug("message sent", log.Duration("elapsed", res.Elapsed))
	return res, nil
}

func (k *Keyer) fail(res *Result, err error, reason string) {
	k.lifecycle.Release(true, reason)
	k.emitter.onFailed(MessageFailedEvent{
		RunID:     res.RunID,
		Message:   res.Message,
		Delivered: res.Delivered,
		Error:     err,
	})
}

// Start initializes plugins. Sending does not require Start; it is only
// needed for plugins.
func (k *Keyer) Start(ctx context.Context) error {
	k.mu.Lock()
	if k.started {
		k.mu.Unlock()
		return ErrAlreadyStarted
	}
	k.started = true
	runCtx, cancel := context.WithCancel(ctx)
	k.cancel = cancel
	pluginCfg := PluginConfig{
		Logger:      k.logger,
		Speed:       k.spec,
		Reconfigure: k.Reconfigure,
	}
	k.mu.Unlock()

	for i, p := range k.plugins {
		if err := p.Initialize(runCtx, pluginCfg); err != nil {
			k.logger.Error("plugin initialization failed",
				log.String("plugin", p.Name()),
				log.Err(err))
			cancel()
			k.shutdownPlugins(k.plugins[:i])

			k.mu.Lock()
			k.started = false
			k.cancel = nil
			k.mu.Unlock()
			return fmt.Errorf("plugin %s: %w", p.Name(), err)
		}
		k.logger.Info("plugin initialized", log.String("plugin", p.Name()))
	}
	return nil
}

// Stop cancels the message in flight, waits for it to finish and shuts
// down plugins in reverse order. Returns ErrShutdownTimeout if the message
// does not stop in time.
func (k *Keyer) Stop() error {
	k.mu.Lock()
	if !k.started {
		k.mu.Unlock()
		return ErrNotStarted
	}
	k.started = false
	cancel := k.cancel
	k.cancel = nil
	k.mu.Unlock()

	k.lifecycle.Cancel()
	err := k.lifecycle.WaitWithTimeout(app.ShutdownTimeout)

	cancel()
	k.shutdownPlugins(k.plugins)
	return err
}

// Cancel aborts the message in flight, if any.
func (k *Keyer) Cancel() {
	k.lifecycle.Cancel()
}

func (k *Keyer) shutdownPlugins(plugins []Plugin) {
	ctx := context.Background()
	for i := len(plugins) - 1; i >= 0; i-- {
		p := plugins[i]
		if err := p.Shutdown(ctx); err != nil {
			k.logger.Error("plugin shutdown failed",
				log.String("plugin", p.Name()),
				log.Err(err))
		} else {
			k.logger.Info("plugin shutdown complete", log.String("plugin", p.Name()))
		}
	}
}
