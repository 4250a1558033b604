package telemetry

import (
	"testing"

	"github.com/edaniels/golog"
	"go.viam.com/test"
)

func TestRecording(t *testing.T) {
	r := NewRecording()

	_, ok := r.Double("position")
	test.That(t, ok, test.ShouldBeFalse)

	r.PublishDouble("position", 0.5)
	r.PublishDouble("position", 0.75)
	r.PublishBoolean("enabled", true)

	v, ok := r.Double("position")
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, v, test.ShouldEqual, 0.75)

	b, ok := r.Boolean("enabled")
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, b, test.ShouldBeTrue)
}

func TestLogSink(t *testing.T) {
	s := NewLogSink(golog.NewTestLogger(t))
	s.PublishDouble("position", 1)
	s.PublishBoolean("enabled", false)

	// nil logger falls back to the global logger
	s = NewLogSink(nil)
	s.PublishDouble("position", 1)
}

func TestNoop(t *testing.T) {
	var s Sink = Noop{}
	s.PublishDouble("position", 1)
	s.PublishBoolean("enabled", true)
}
