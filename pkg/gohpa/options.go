package gohpa

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/d21d3q/gohpa/internal/policy"
)

// MapOptions configures mapping.
type MapOptions struct {
	// Registry overrides the built-in response-type policies.
	Registry *policy.Registry
	// Logger receives debug output about skipped frames. Nil disables it.
	Logger logrus.FieldLogger
}

func (opts MapOptions) registry() *policy.Registry {
	if opts.Registry != nil {
		return opts.Registry
	}
	return policy.Default()
}

func (opts MapOptions) logger() logrus.FieldLogger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return discardLogger
}

var discardLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}()
