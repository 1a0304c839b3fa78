package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bft-labs/morsekey/internal/cliconfig"
	"github.com/bft-labs/morsekey/pkg/codec"
	"github.com/bft-labs/morsekey/pkg/keyer"
	"github.com/bft-labs/morsekey/pkg/speed"
	"github.com/bft-labs/morsekey/plugins/configwatcher"
)

func newSendCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "send [message]",
		Short: "Key a message on the configured outputs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSend(cmd.Context(), c.message(args))
		},
	}
}

// newKeyer builds a keyer wired to the configured outputs and, with
// --watch, to the config file watcher.
func (c *cli) newKeyer() (*keyer.Keyer, *outputs, error) {
	unit, err := speed.NewModel(c.cfg.ReferenceWord).UnitDuration(c.cfg.Speed())
	if err != nil {
		return nil, nil, err
	}

	outs, err := openOutputs(c.cfg, unit, c.out)
	if err != nil {
		return nil, nil, err
	}

	opts := []keyer.Option{
		keyer.WithLogger(c.logger()),
		keyer.WithEffector(outs.effector),
	}
	if c.cfg.Watch && c.cfgPath != "" {
		opts = append(opts, configwatcher.WithConfigWatcher(configwatcher.Config{
			Path:    c.cfgPath,
			Resolve: c.resolveFile,
		}))
	}

	k, err := keyer.New(keyer.Config{Speed: c.cfg.Speed(), ReferenceWord: c.cfg.ReferenceWord}, opts...)
	if err != nil {
		outs.Close()
		return nil, nil, err
	}
	return k, outs, nil
}

// resolveFile recomputes the speed after the config file changed. Flags
// keep precedence over the file, and the environment over both defaults
// and file.
func (c *cli) resolveFile(fc cliconfig.FileConfig) (speed.Spec, error) {
	cfg := c.cfg
	if !c.changed["element-duration"] {
		cfg.ElementDuration = 0
	}
	if !c.changed["wpm"] {
		cfg.WPM = 0
	}
	if err := cliconfig.ApplyFileConfig(&cfg, fc, c.changed); err != nil {
		return speed.Spec{}, err
	}
	if err := cliconfig.ApplyEnvConfig(&cfg, c.changed); err != nil {
		return speed.Spec{}, err
	}
	spec := cfg.Speed()
	return spec, spec.Validate()
}

func (c *cli) runSend(ctx context.Context, message string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	k, outs, err := c.newKeyer()
	if err != nil {
		return err
	}
	defer outs.Close()

	if err := k.Start(ctx); err != nil {
		return err
	}
	defer k.Stop()

	printPreview(c.out, message)

	res, err := k.Send(ctx, message)
	if outs.bits != nil {
		fmt.Fprintln(c.out)
	}
	if errors.Is(err, context.Canceled) {
		cliconfig.Logger().Warn().
			Int("delivered", res.Delivered).
			Int("events", res.Events).
			Msg("interrupted")
		return nil
	}
	if err != nil {
		return err
	}

	cliconfig.Logger().Info().
		Str("run_id", res.RunID).
		Dur("unit", res.Unit).
		Int("units", res.Units).
		Dur("elapsed", res.Elapsed).
		Msg("sent")
	return nil
}

// printPreview writes the text, morse and binary forms of message.
func printPreview(w io.Writer, message string) {
	text := codec.Normalize(message)
	fmt.Fprintf(w, "text:  %s\n", text)
	fmt.Fprintf(w, "morse: %s\n", codec.Format(text))
	fmt.Fprintf(w, "bin:   %s\n", codec.EncodeBits(text))
}
