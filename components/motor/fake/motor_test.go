package fake

import (
	"context"
	"testing"

	"go.viam.com/test"

	"go.viam.com/actuator/components/motor"
)

func TestMotorRecordsWrites(t *testing.T) {
	ctx := context.Background()
	m := &Motor{}

	_, ok := m.LastWrite()
	test.That(t, ok, test.ShouldBeFalse)

	test.That(t, m.Set(ctx, motor.ControlModeDutyCycle, 0.4), test.ShouldBeNil)
	test.That(t, m.SetWithFeedforward(ctx, motor.ControlModeVoltage, 6, 0.5), test.ShouldBeNil)

	writes := m.Writes()
	test.That(t, writes, test.ShouldHaveLength, 2)
	test.That(t, writes[0], test.ShouldResemble, Write{Mode: motor.ControlModeDutyCycle, Demand: 0.4})
	test.That(t, writes[1].HasFeedforward, test.ShouldBeTrue)
	test.That(t, writes[1].Feedforward, test.ShouldEqual, 0.5)

	last, ok := m.LastWrite()
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, last.Mode, test.ShouldEqual, motor.ControlModeVoltage)
}

func TestMotorStopAndCurrent(t *testing.T) {
	ctx := context.Background()
	m := &Motor{}

	test.That(t, m.Stop(ctx), test.ShouldBeNil)
	test.That(t, m.Stop(ctx), test.ShouldBeNil)
	test.That(t, m.StopCount(), test.ShouldEqual, 2)

	m.SetCurrent(12.5)
	amps, err := m.AppliedCurrent(ctx)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, amps, test.ShouldEqual, 12.5)
}
