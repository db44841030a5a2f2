// Package trace provides a small context-carried tracer used by the
// testkit packages for optional debug output. Test helpers are silent
// by default; a verbose tracer placed in the context makes them narrate
// what they resolve and write.
package trace

import (
	"context"
	"fmt"
	"log"
)

// LogLevel selects tracing verbosity.
type LogLevel int

const (
	// LogLevelNormal emits only user-facing messages and errors.
	LogLevelNormal LogLevel = iota
	// LogLevelVerbose additionally emits debug detail.
	LogLevelVerbose
)

type traceKeyType string

const traceKey traceKeyType = "tracer"

// Tracer writes prefixed log lines at a fixed verbosity level.
type Tracer struct {
	prefix string
	level  LogLevel
}

// NewTracer creates a tracer with the given prefix and level.
func NewTracer(prefix string, level LogLevel) *Tracer {
	return &Tracer{prefix: prefix, level: level}
}

// WithPrefix returns a tracer that logs under a different prefix but
// keeps the receiver's verbosity.
func (t *Tracer) WithPrefix(prefix string) *Tracer {
	return &Tracer{prefix: prefix, level: t.level}
}

// WithContext attaches the tracer to the given context.
func WithContext(ctx context.Context, tracer *Tracer) context.Context {
	return context.WithValue(ctx, traceKey, tracer)
}

// FromContext extracts the tracer from the context, or returns a
// normal-level default when none was attached.
func FromContext(ctx context.Context) *Tracer {
	if tracer, ok := ctx.Value(traceKey).(*Tracer); ok {
		return tracer
	}
	return NewTracer("", LogLevelNormal)
}

// Infof logs a formatted message unconditionally.
func (t *Tracer) Infof(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if t.prefix != "" {
		log.Printf("%s: %s", t.prefix, msg)
	} else {
		log.Print(msg)
	}
}

// Debugf logs a formatted message only at verbose level.
func (t *Tracer) Debugf(format string, args ...interface{}) {
	if t.level < LogLevelVerbose {
		return
	}
	msg := fmt.Sprintf(format, args...)
	log.Printf("%s: %s", t.prefix, msg)
}

// Error logs an error message.
func (t *Tracer) Error(err error) {
	if t.prefix != "" {
		log.Printf("%s ERROR: %v", t.prefix, err)
	} else {
		log.Printf("ERROR: %v", err)
	}
}
