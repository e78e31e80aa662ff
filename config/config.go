// Package config loads the page composition from CUE files.
package config

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/ardanlabs/collatz/collatz"
	"github.com/ardanlabs/collatz/page"
)

// DefaultLink is the reference shown for the conjecture.
const DefaultLink = "https://en.wikipedia.org/wiki/Collatz_conjecture"

// DefaultNumber is the starting value shown when none is configured.
const DefaultNumber = 17

const schemaSrc = `
number?:   int | float
link?:     string
marker?:   "square" | "circle"
maxSteps?: int
`

// Config is the composition of the page.
type Config struct {
	Number int64
	Link   string
	Marker page.MarkerStyle
	// MaxSteps limits the sequence length, negative means no limit.
	MaxSteps int
}

// Default returns the built in configuration.
func Default() Config {
	return Config{
		Number:   DefaultNumber,
		Link:     DefaultLink,
		Marker:   page.DefaultMarker,
		MaxSteps: collatz.MaxSteps,
	}
}

// Options returns the page options for c.
func (c Config) Options() page.Options {
	return page.Options{
		Number:   c.Number,
		Link:     c.Link,
		Marker:   c.Marker,
		MaxSteps: c.MaxSteps,
	}
}

// Load reads the CUE files in paths on top of Default. Fields set in later
// files override earlier ones. A number that is not a positive integer is
// reported as collatz.ErrInvalidArgument.
func Load(paths ...string) (Config, error) {
	cfg := Default()
	if len(paths) == 0 {
		return cfg, nil
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString("close({" + schemaSrc + "})")
	if err := schema.Err(); err != nil {
		return Config{}, fmt.Errorf("config schema: %w", err)
	}

	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}

		value := ctx.CompileBytes(content, cue.Filename(path))
		if err := value.Err(); err != nil {
			return Config{}, fmt.Errorf("%s: %w", path, err)
		}

		if err := schema.Unify(value).Validate(cue.Concrete(true)); err != nil {
			return Config{}, fmt.Errorf("%s: %w", path, err)
		}

		if err := cfg.apply(value); err != nil {
			return Config{}, fmt.Errorf("%s: %w", path, err)
		}
	}

	return cfg, nil
}

func (c *Config) apply(value cue.Value) error {
	if v := value.LookupPath(cue.ParsePath("number")); v.Exists() {
		n, err := v.Int64()
		if err != nil {
			return fmt.Errorf("%w: number %v is not an integer", collatz.ErrInvalidArgument, v)
		}
		if n < 1 {
			return fmt.Errorf("%w: number %d is not a positive integer", collatz.ErrInvalidArgument, n)
		}
		c.Number = n
	}

	if v := value.LookupPath(cue.ParsePath("link")); v.Exists() {
		link, err := v.String()
		if err != nil {
			return err
		}
		c.Link = link
	}

	if v := value.LookupPath(cue.ParsePath("marker")); v.Exists() {
		s, err := v.String()
		if err != nil {
			return err
		}
		marker, err := page.ParseMarkerStyle(s)
		if err != nil {
			return err
		}
		c.Marker = marker
	}

	if v := value.LookupPath(cue.ParsePath("maxSteps")); v.Exists() {
		n, err := v.Int64()
		if err != nil {
			return err
		}
		c.MaxSteps = int(n)
	}

	return nil
}
