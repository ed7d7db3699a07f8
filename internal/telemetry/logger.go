// Package telemetry wraps github.com/hashicorp/go-hclog so arenas and
// transforms can log without taking a hard hclog dependency in their public
// signatures.
package telemetry

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// Logger is the logging surface used across boolexpr. It is satisfied by
// *hclog.Logger (via Wrap) and by the no-op returned from NoOp.
type Logger interface {
	Trace(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Named(name string) Logger
}

type hclogger struct {
	l hclog.Logger
}

// Wrap adapts an hclog.Logger to Logger.
func Wrap(l hclog.Logger) Logger {
	return &hclogger{l: l}
}

// New builds a Logger backed by a fresh hclog.Logger with the given name,
// writing at Warn level to w.
func New(name string, w io.Writer) Logger {
	return Wrap(hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Level:  hclog.Warn,
		Output: w,
	}))
}

func (h *hclogger) Trace(msg string, args ...interface{}) { h.l.Trace(msg, args...) }
func (h *hclogger) Debug(msg string, args ...interface{}) { h.l.Debug(msg, args...) }
func (h *hclogger) Warn(msg string, args ...interface{})  { h.l.Warn(msg, args...) }
func (h *hclogger) Error(msg string, args ...interface{}) { h.l.Error(msg, args...) }
func (h *hclogger) Named(name string) Logger              { return Wrap(h.l.Named(name)) }

type noop struct{}

// NoOp returns a Logger that discards everything, the default for an Arena
// created without WithLogger.
func NoOp() Logger { return noop{} }

func (noop) Trace(string, ...interface{}) {}
func (noop) Debug(string, ...interface{}) {}
func (noop) Warn(string, ...interface{})  {}
func (noop) Error(string, ...interface{}) {}
func (noop) Named(string) Logger          { return noop{} }
