package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/bft-labs/morsekey/internal/cliconfig"
	"github.com/bft-labs/morsekey/pkg/keyer"
	"github.com/bft-labs/morsekey/pkg/speed"
)

const replHelp = `type a message and press enter to key it
  :wpm N        set the speed in words per minute
  :unit D       set the unit duration (e.g. 80ms)
  :speed        show the current speed
  :quit         leave (also Ctrl-D)
Ctrl-C while keying stops the message at the next element`

func newReplCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Key messages typed interactively",
		Long:  replHelp,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRepl(cmd.Context())
		},
	}
}

func historyPath() string {
	if p := cliconfig.DefaultConfigPath(); p != "" {
		return filepath.Join(filepath.Dir(p), "history")
	}
	return ""
}

func (c *cli) runRepl(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	k, outs, err := c.newKeyer()
	if err != nil {
		return err
	}
	defer outs.Close()

	if err := k.Start(ctx); err != nil {
		return err
	}
	defer k.Stop()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "morsekey> ",
		HistoryFile:     historyPath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdout:          c.out,
	})
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer rl.Close()

	// Readline owns Ctrl-C at the prompt. While a message is keyed the
	// terminal is cooked again and the signal cancels the message.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	done := make(chan struct{})
	defer close(done)
	go cancelOnSignal(sigCh, done, k.Cancel)

	fmt.Fprintln(rl.Stdout(), replHelp)
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			quit, err := c.replCommand(k, line)
			if err != nil {
				fmt.Fprintf(rl.Stderr(), "error: %v\n", err)
			}
			if quit {
				return nil
			}
			continue
		}

		outs.setUnit(k.Unit())
		res, err := k.Send(ctx, line)
		if outs.bits != nil {
			fmt.Fprintln(rl.Stdout())
		}
		switch {
		case errors.Is(err, context.Canceled):
			fmt.Fprintf(rl.Stderr(), "interrupted after %d of %d events\n", res.Delivered, res.Events)
		case err != nil:
			fmt.Fprintf(rl.Stderr(), "error: %v\n", err)
		default:
			cliconfig.Logger().Debug().Str("run_id", res.RunID).Dur("elapsed", res.Elapsed).Msg("sent")
		}
	}
}

// cancelOnSignal calls cancel for every signal received on sigCh until
// done is closed.
func cancelOnSignal(sigCh <-chan os.Signal, done <-chan struct{}, cancel func()) {
	for {
		select {
		case <-sigCh:
			cancel()
		case <-done:
			return
		}
	}
}

// replCommand handles a ":" line and reports whether the repl should exit.
func (c *cli) replCommand(k *keyer.Keyer, line string) (bool, error) {
	fields := strings.Fields(strings.TrimPrefix(line, ":"))
	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case "q", "quit", "exit":
		return true, nil
	case "speed":
		fmt.Fprintf(c.out, "%s (unit %s, %.1f wpm)\n",
			k.Speed(), k.Unit(), speed.DurationToWPM(k.Unit(), c.cfg.ReferenceWord))
		return false, nil
	case "wpm":
		if len(fields) != 2 {
			return false, errors.New("usage: :wpm N")
		}
		wpm, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return false, err
		}
		return false, k.Reconfigure(speed.Spec{WPM: wpm})
	case "unit":
		if len(fields) != 2 {
			return false, errors.New("usage: :unit DURATION")
		}
		d, err := time.ParseDuration(fields[1])
		if err != nil {
			return false, err
		}
		return false, k.Reconfigure(speed.Spec{ElementDuration: d})
	default:
		return false, fmt.Errorf("unknown command %q", fields[0])
	}
}
