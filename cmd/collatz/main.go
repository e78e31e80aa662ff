package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/ardanlabs/collatz/collatz"
	"github.com/ardanlabs/collatz/config"
	"github.com/ardanlabs/collatz/logs"
	"github.com/ardanlabs/collatz/page"
)

// configFiles collects repeated -config flags
type configFiles []string

func (c *configFiles) String() string {
	return strings.Join(*c, ",")
}

func (c *configFiles) Set(v string) error {
	*c = append(*c, v)
	return nil
}

func run(args []string, stdout, stderr io.Writer) error {
	name := path.Base(args[0])
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	var files configFiles
	fs.Var(&files, "config", "CUE configuration `file` (may be repeated)")
	asHTML := fs.Bool("html", false, "render the page as HTML")
	maxSteps := fs.Int("max-steps", 0, "step limit, 0 for the configured one, negative for none")
	logLevel := fs.String("log-level", "info", "log level")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: %s [options] [N]\n", name)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	level, err := logs.ParseLevel(*logLevel)
	if err != nil {
		return err
	}
	logs.SetLevel(level)
	logger := logs.New(logs.Options{Writer: stderr})

	if fs.NArg() > 1 {
		return errors.New("wrong number of arguments")
	}

	cfg, err := config.Load(files...)
	if err != nil {
		return err
	}

	if fs.NArg() == 1 {
		n, err := collatz.Parse(fs.Arg(0))
		if err != nil {
			return err
		}
		cfg.Number = n
	}
	if *maxSteps != 0 {
		cfg.MaxSteps = *maxSteps
	}

	p := page.New(cfg.Options())
	if err := p.Err(); err != nil {
		return err
	}
	seq := p.Component().Sequence()
	logger.Debug("sequence", "number", cfg.Number, "steps", seq.Steps(), "max", seq.Max())

	if !*asHTML {
		_, err := fmt.Fprintln(stdout, seq)
		return err
	}

	return p.Render(stdout)
}

func main() {
	if err := run(os.Args, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
