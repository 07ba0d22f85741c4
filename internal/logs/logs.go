// Package logs configures the process-wide logrus logger.
package logs

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type Options struct {
	Level  string // trace|debug|info|warn|error
	Format string // text|json
	File   string // пусто — только stdout
}

// Logger is usable before Init; it then logs at info level to stderr.
var Logger = logrus.New()

// Init reconfigures Logger. Unknown levels fall back to info.
func Init(o Options) {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(o.Level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Logger.SetLevel(lvl)

	switch strings.ToLower(o.Format) {
	case "json":
		Logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	var out io.Writer = os.Stdout
	if o.File != "" {
		f, ferr := os.OpenFile(o.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if ferr != nil {
			Logger.SetOutput(out)
			Logger.Warnf("log file %s: %v; logging to stdout", o.File, ferr)
			return
		}
		out = io.MultiWriter(os.Stdout, f)
	}
	Logger.SetOutput(out)
}
