package control

import (
	"testing"

	"go.viam.com/test"
)

func TestIdentity(t *testing.T) {
	test.That(t, Identity(1234.5), test.ShouldEqual, 1234.5)
	test.That(t, Identity(-1234.5), test.ShouldEqual, -1234.5)
}

func TestClampToRange(t *testing.T) {
	clamp := ClampToRange(-0.25, 0.5)
	test.That(t, clamp(1), test.ShouldEqual, 0.5)
	test.That(t, clamp(-1), test.ShouldEqual, -0.25)
	test.That(t, clamp(0.1), test.ShouldEqual, 0.1)
}

func TestClampPower(t *testing.T) {
	test.That(t, ClampPower(3), test.ShouldEqual, 1)
	test.That(t, ClampPower(-3), test.ShouldEqual, -1)
	test.That(t, ClampPower(0.4), test.ShouldEqual, 0.4)
}
