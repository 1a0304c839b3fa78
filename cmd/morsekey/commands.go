package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bft-labs/morsekey/internal/cliconfig"
	"github.com/bft-labs/morsekey/pkg/codec"
	"github.com/bft-labs/morsekey/pkg/keyer"
	"github.com/bft-labs/morsekey/pkg/signal"
	"github.com/bft-labs/morsekey/pkg/speed"
)

func newEncodeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "encode [message]",
		Short: "Print the morse and binary forms of a message",
		RunE: func(cmd *cobra.Command, args []string) error {
			printPreview(c.out, c.message(args))
			return nil
		},
	}
}

func newDecodeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <morse|bits>",
		Short: "Decode morse text or a 0/1 bit string",
		Long: strings.TrimSpace(`
Decode morse text (dots and dashes, three spaces or more between letters,
five or more, '/' or '|' between words) or a string of 0 and 1 units.`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := decodeInput(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, text)
			return nil
		},
	}
}

// decodeInput decodes bits when input only holds 0 and 1, morse otherwise.
func decodeInput(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed != "" && strings.Trim(trimmed, "01") == "" {
		bits, err := signal.ParseBits(trimmed)
		if err != nil {
			return "", err
		}
		return codec.DecodeBits(bits), nil
	}
	return codec.DecodeMorse(input), nil
}

func newScheduleCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule [message]",
		Short: "Dump the timed plan of a message without keying it",
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, err := speed.NewModel(c.cfg.ReferenceWord).UnitDuration(c.cfg.Speed())
			if err != nil {
				return err
			}
			plan, err := keyer.BuildPlan(c.message(args), unit)
			if err != nil {
				return err
			}
			return writePlan(c.out, plan, c.cfg.Format)
		},
	}
	cmd.Flags().StringVarP(&c.cfg.Format, "format", "f", c.cfg.Format, "output format: json, yaml, toml")
	return cmd
}

func writePlan(w io.Writer, plan keyer.Plan, format string) error {
	var (
		b   []byte
		err error
	)
	switch strings.ToLower(format) {
	case cliconfig.FormatJSON:
		b, err = json.MarshalIndent(plan, "", "  ")
		b = append(b, '\n')
	case cliconfig.FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		err = enc.Encode(plan)
		b = buf.Bytes()
	case cliconfig.FormatTOML:
		b, err = toml.Marshal(plan)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}
	_, err = w.Write(b)
	return err
}

func newLengthCmd(c *cli) *cobra.Command {
	var (
		count      int
		wordSpaced bool
	)
	cmd := &cobra.Command{
		Use:   "length [word]",
		Short: "Print the length of a word in units",
		Long: strings.TrimSpace(`
Print the length in units of n repetitions of a word, word gaps included.
PARIS is 50 units, which makes 1 wpm equal to 50 units per minute.`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := c.cfg.ReferenceWord
			if len(args) == 1 {
				word = args[0]
			}
			units := speed.ReferenceLength(word, count, wordSpaced)

			model := speed.NewModel(c.cfg.ReferenceWord)
			unit, err := model.UnitDuration(c.cfg.Speed())
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "%s x%d: %d units, %s at %s per unit\n",
				codec.Normalize(word), count, units, unit*time.Duration(units), unit)
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of repetitions")
	cmd.Flags().BoolVar(&wordSpaced, "word-spaced", true, "count the trailing word gap")
	return cmd
}
