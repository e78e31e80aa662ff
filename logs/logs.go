// Package logs builds the structured logger.
package logs

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

var level = new(slog.LevelVar)

// SetLevel sets the level of every logger created by New.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// ParseLevel parses "debug", "info", "warn" or "error".
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(s))
	return l, err
}

// Options configure New.
type Options struct {
	// Writer receives text output, os.Stderr if nil.
	Writer io.Writer
	// Journal also sends records to the systemd journal.
	Journal bool
}

var newJournalHandler = func(opts *slogjournal.Options) (slog.Handler, error) {
	return slogjournal.NewHandler(opts)
}

// New returns a logger writing text to Writer and, if asked and reachable,
// to the systemd journal.
func New(opts Options) *slog.Logger {
	if opts.Writer == nil {
		opts.Writer = os.Stderr
	}

	terminalHandler := slog.NewTextHandler(opts.Writer, &slog.HandlerOptions{
		Level: level,
	})
	handlers := []slog.Handler{terminalHandler}

	if opts.Journal {
		journalHandler, err := newJournalHandler(&slogjournal.Options{
			Level: level,
			ReplaceGroup: func(key string) string {
				return toJournalKey(key)
			},
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if err != nil {
			record := slog.NewRecord(time.Now(), slog.LevelWarn, "new systemd journal handler", 0)
			record.Add("error", err)
			_ = terminalHandler.Handle(context.Background(), record)
		} else {
			handlers = append(handlers, journalHandler)
		}
	}

	return slog.New(slogmulti.Fanout(handlers...))
}

// UnderSystemd reports whether the process runs as a systemd service.
func UnderSystemd() bool {
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return false
	}
	return underSystemd(string(content))
}

// underSystemd looks for a service unit in the unified (0::) or the
// name=systemd hierarchy of a /proc/self/cgroup listing.
func underSystemd(content string) bool {
	for _, line := range strings.Split(content, "\n") {
		fields := strings.SplitN(strings.TrimSpace(line), ":", 3)
		if len(fields) != 3 {
			continue
		}
		id, controllers, cgroup := fields[0], fields[1], fields[2]
		if id == "0" && controllers == "" || controllers == "name=systemd" {
			if strings.HasSuffix(cgroup, ".service") {
				return true
			}
		}
	}
	return false
}

// journald field names are upper case letters, digits and underscores
func toJournalKey(str string) string {
	str = strings.ToUpper(str)
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, str)
}
