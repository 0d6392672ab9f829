package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"
	num "github.com/shabbyrobe/go-num1024"
	"github.com/shabbyrobe/go-num1024/entropy"
	"github.com/shabbyrobe/go-num1024/internal/logging"
	"github.com/urfave/cli/v2"
)

const usage = `Prints random odd 1024-bit integers in decimal, one per line.

With no flags, one value is drawn from the system CSPRNG. Use --source=shake
with --seed for a reproducible value.`

func main() {
	r := &runner{log: logging.New(logging.Config{}, os.Stderr)}
	app := newApp(r, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		r.log.Error("u1024 failed", "err", err)
		os.Exit(1)
	}
}

type runner struct {
	log *slog.Logger
}

func newApp(r *runner, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:        "u1024",
		Usage:       "generate random odd 1024-bit integers",
		Description: usage,
		Writer:      stdout,
		ErrWriter:   stderr,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "Number of values to print",
				Value:   1,
			},
			&cli.StringFlag{
				Name:  "source",
				Usage: "Entropy source: system, device or shake",
				Value: "system",
			},
			&cli.StringFlag{
				Name:  "seed",
				Usage: "Seed for the shake source",
			},
			&cli.StringFlag{
				Name:  "device",
				Usage: "Device path for the device source",
				Value: entropy.DefaultDevice,
			},
			&cli.BoolFlag{
				Name:  "hex",
				Usage: "Print values in hexadecimal instead of decimal",
			},
			&cli.BoolFlag{
				Name:  "dump",
				Usage: "Dump the sixteen words of each value to stderr",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn or error",
				Value: "info",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "Log format: text or json",
				Value: "text",
			},
		},
		Before: func(c *cli.Context) error {
			r.log = logging.New(logging.Config{
				Level:  c.String("log-level"),
				Format: c.String("log-format"),
			}, c.App.ErrWriter)
			return nil
		},
		Action: r.generate,
		Commands: []*cli.Command{
			{
				Name:      "modexp",
				Usage:     "Print base**exp mod m",
				ArgsUsage: "<base> <exp> <mod>",
				Action:    r.modExp,
			},
		},
	}
}

func (r *runner) generate(c *cli.Context) error {
	count := c.Int("count")
	if count < 1 {
		return fmt.Errorf("count must be at least 1, found %d", count)
	}

	source, err := entropy.Open(entropy.Config{
		Name:   c.String("source"),
		Seed:   c.String("seed"),
		Device: c.String("device"),
	})
	if err != nil {
		return err
	}
	r.log.Debug("generating", "count", count, "source", c.String("source"))

	for i := 0; i < count; i++ {
		u, err := num.ReadOddU1024(source)
		if err != nil {
			return err
		}
		if c.Bool("dump") {
			spew.Fdump(c.App.ErrWriter, u.Raw())
		}
		if c.Bool("hex") {
			fmt.Fprintf(c.App.Writer, "%#x\n", u)
		} else {
			fmt.Fprintln(c.App.Writer, u.String())
		}
	}
	return nil
}

func (r *runner) modExp(c *cli.Context) error {
	if c.NArg() != 3 {
		return errors.New("modexp needs exactly three arguments: <base> <exp> <mod>")
	}

	var operands [3]num.U1024
	for i := range operands {
		arg := c.Args().Get(i)
		v, accurate, err := num.U1024FromString(arg)
		if err != nil {
			return err
		}
		if !accurate {
			return fmt.Errorf("operand %q does not fit in 1024 bits", arg)
		}
		operands[i] = v
	}

	result, err := operands[0].ModExp(operands[1], operands[2])
	if err != nil {
		return err
	}
	r.log.Debug("modexp", "bits", operands[2].BitLen())
	fmt.Fprintln(c.App.Writer, result.String())
	return nil
}
