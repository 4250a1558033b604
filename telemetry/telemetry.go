// Package telemetry defines the named-value publishing surface the
// positioner reports through. Publication is fire-and-forget: the control
// layer never observes sink failures.
package telemetry

import (
	"sync"

	"github.com/edaniels/golog"
)

// A Sink accepts named values. Implementations define their own delivery and
// error semantics; callers ignore both.
type Sink interface {
	PublishDouble(name string, value float64)
	PublishBoolean(name string, value bool)
}

// Noop discards everything.
type Noop struct{}

// PublishDouble does nothing.
func (Noop) PublishDouble(string, float64) {}

// PublishBoolean does nothing.
func (Noop) PublishBoolean(string, bool) {}

// LogSink publishes values as debug-level log entries.
type LogSink struct {
	logger golog.Logger
}

// NewLogSink returns a sink logging through the given logger, or the global
// logger if nil.
func NewLogSink(logger golog.Logger) *LogSink {
	if logger == nil {
		logger = golog.Global()
	}
	return &LogSink{logger: logger}
}

// PublishDouble logs the value.
func (s *LogSink) PublishDouble(name string, value float64) {
	s.logger.Debugw("telemetry", "name", name, "value", value)
}

// PublishBoolean logs the value.
func (s *LogSink) PublishBoolean(name string, value bool) {
	s.logger.Debugw("telemetry", "name", name, "value", value)
}

// Recording captures the latest value published under each name, for tests.
type Recording struct {
	mu       sync.Mutex
	doubles  map[string]float64
	booleans map[string]bool
}

// NewRecording returns an empty recording sink.
func NewRecording() *Recording {
	return &Recording{
		doubles:  map[string]float64{},
		booleans: map[string]bool{},
	}
}

// PublishDouble records the value.
func (r *Recording) PublishDouble(name string, value float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doubles[name] = value
}

// PublishBoolean records the value.
func (r *Recording) PublishBoolean(name string, value bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.booleans[name] = value
}

// Double returns the last value published under name.
func (r *Recording) Double(name string) (float64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.doubles[name]
	return v, ok
}

// Boolean returns the last value published under name.
func (r *Recording) Boolean(name string) (bool, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.booleans[name]
	return v, ok
}
