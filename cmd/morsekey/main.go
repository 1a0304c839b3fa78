package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/morsekey/internal/cliconfig"
	"github.com/bft-labs/morsekey/pkg/log"
)

const helpDescription = `
Key text as Morse code on a console, a GPIO pin or the sound card.

Highlights:
  - Standard timing: dit 1 unit, dah 3, letter gap 3, word gap 7.
  - Speed as a unit duration or as words per minute (PARIS = 50 units).
  - Deadlines are absolute from the start of a message, so slow outputs
    never accumulate drift.
  - Configure via file, env or flags; the speed reloads when the file changes.
`

var exampleUsage = strings.TrimSpace(`
  morsekey "CQ CQ DE K1ABC" --wpm 18
  morsekey send SOS -d 100ms -o console,sound
  morsekey schedule PARIS --wpm 20 --format yaml
  morsekey decode "...   ---   ..."
  morsekey repl --watch
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// cli carries the merged configuration shared by every subcommand.
type cli struct {
	cfg     cliconfig.Config
	cfgPath string
	changed map[string]bool
	out     io.Writer
}

// load merges file, env and flags into c.cfg and validates the result.
func (c *cli) load(cmd *cobra.Command) error {
	cfgFile := c.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })
	c.changed = changed

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&c.cfg, fc, changed); err != nil {
			return err
		}
		c.cfgPath = cfgFile
	}

	if err := cliconfig.ApplyEnvConfig(&c.cfg, changed); err != nil {
		return err
	}

	if err := c.cfg.Validate(); err != nil {
		return err
	}
	if err := cliconfig.SetLevel(c.cfg.LogLevel); err != nil {
		return err
	}

	cliconfig.Logger().Debug().Interface("config", c.cfg).Msg("configuration")
	return nil
}

func (c *cli) message(args []string) string {
	if len(args) > 0 {
		return strings.Join(args, " ")
	}
	return c.cfg.Message
}

func (c *cli) logger() log.Logger {
	return log.NewZerologAdapterWithLogger(cliconfig.Logger())
}

func main() {
	c := &cli{cfg: cliconfig.DefaultConfig(), out: os.Stdout}

	root := &cobra.Command{
		Use:           "morsekey [message]",
		Short:         "Key text as timed Morse code",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSend(cmd.Context(), c.message(args))
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.cfgPath, "config", "", "path to config file (default: $HOME/.morsekey/config.toml)")
	flags.DurationVarP(&c.cfg.ElementDuration, "element-duration", "d", c.cfg.ElementDuration, "duration of one unit (dit length); exclusive with --wpm")
	flags.Float64VarP(&c.cfg.WPM, "wpm", "w", c.cfg.WPM, "speed in words per minute; exclusive with --element-duration")
	flags.StringVar(&c.cfg.ReferenceWord, "word", c.cfg.ReferenceWord, "reference word used to convert wpm")
	flags.StringVarP(&c.cfg.Output, "output", "o", c.cfg.Output, "comma separated outputs: console, bits, led, sound, none")
	flags.IntVar(&c.cfg.PinOut, "pin-out", c.cfg.PinOut, "GPIO pin keyed by the led output")
	flags.Float64Var(&c.cfg.Frequency, "frequency", c.cfg.Frequency, "tone frequency in Hz for the sound output")
	flags.StringVar(&c.cfg.LogLevel, "log-level", c.cfg.LogLevel, "log level: debug, info, warn, error")
	flags.BoolVar(&c.cfg.Watch, "watch", c.cfg.Watch, "reload the speed when the config file changes")

	root.AddCommand(
		newSendCmd(c),
		newEncodeCmd(c),
		newDecodeCmd(c),
		newScheduleCmd(c),
		newLengthCmd(c),
		newReplCmd(c),
	)

	if err := root.Execute(); err != nil {
		cliconfig.Logger().Error().Err(err).Msg("morsekey")
		os.Exit(1)
	}
}
