package main

import (
	"fmt"
	"os"

	sitecolors "github.com/kataras/site-colors"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// newLogger returns the colored terminal logger for an empty format,
// otherwise a logrus logger writing text or JSON records to stderr.
func newLogger(format string) (sitecolors.Logger, error) {
	switch format {
	case "":
		return &cliLogger{}, nil
	case "text":
		l := logrus.New()
		l.SetOutput(os.Stderr)
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		return l, nil
	case "json":
		l := logrus.New()
		l.SetOutput(os.Stderr)
		l.SetFormatter(&logrus.JSONFormatter{})
		return l, nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// cliLogger implements sitecolors.Logger with colored terminal output.
// It writes to stderr so the report on stdout stays clean.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(os.Stderr, format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(os.Stderr, "⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Fprintf(os.Stderr, "✗ "+format+"\n", args...)
}
