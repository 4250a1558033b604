package positioner

import (
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"go.viam.com/test"
	"go.viam.com/utils/testutils"

	fakeencoder "go.viam.com/actuator/components/encoder/fake"
	fakemotor "go.viam.com/actuator/components/motor/fake"
	"go.viam.com/actuator/control"
)

func TestLoopTicks(t *testing.T) {
	ctx := context.Background()
	logger := golog.NewTestLogger(t)
	m := &fakemotor.Motor{}
	e := &fakeencoder.Encoder{}

	p, err := New(Config{
		Motor:   m,
		Encoder: e,
		Gains:   control.Gains{P: 1},
		Logger:  logger,
	})
	test.That(t, err, test.ShouldBeNil)

	test.That(t, e.SetPosition(ctx, rotations(0)), test.ShouldBeNil)
	p.SetSetpoint(rotations(1))

	clk := clock.NewMock()
	loop := NewLoop(p, 10*time.Millisecond, clk, logger)
	test.That(t, loop.Start(), test.ShouldBeNil)
	defer loop.Stop()

	testutils.WaitForAssertion(t, func(tb testing.TB) {
		tb.Helper()
		clk.Add(10 * time.Millisecond)
		test.That(tb, len(m.Writes()), test.ShouldBeGreaterThanOrEqualTo, 2)
	})
}

func TestLoopStartTwice(t *testing.T) {
	logger := golog.NewTestLogger(t)
	p, err := New(Config{
		Motor:   &fakemotor.Motor{},
		Encoder: &fakeencoder.Encoder{},
		Logger:  logger,
	})
	test.That(t, err, test.ShouldBeNil)

	loop := NewLoop(p, 10*time.Millisecond, clock.NewMock(), logger)
	test.That(t, loop.Start(), test.ShouldBeNil)
	err = loop.Start()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "already running")
	loop.Stop()
}

func TestLoopStopIdempotent(t *testing.T) {
	logger := golog.NewTestLogger(t)
	p, err := New(Config{
		Motor:   &fakemotor.Motor{},
		Encoder: &fakeencoder.Encoder{},
		Logger:  logger,
	})
	test.That(t, err, test.ShouldBeNil)

	loop := NewLoop(p, 10*time.Millisecond, clock.NewMock(), logger)
	loop.Stop()
	test.That(t, loop.Start(), test.ShouldBeNil)
	loop.Stop()
	loop.Stop()
}
