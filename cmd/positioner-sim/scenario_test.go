package main

import (
	"os"
	"path/filepath"
	"testing"

	"go.viam.com/test"

	"go.viam.com/actuator/units"
)

func writeScenario(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	test.That(t, os.WriteFile(path, []byte(contents), 0o600), test.ShouldBeNil)
	return path
}

func TestLoadScenario(t *testing.T) {
	path := writeScenario(t, `
gains:
  p: 4.0
  d: 0.2
tolerance:
  position: 0.05
setpoint: 1.0
unit: rotations
plant:
  velocity_gain: 2.0
  time_constant: 0.1
  stall_current: 20
clamp:
  min: -1
  max: 1
`)
	s, err := LoadScenario(path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, s.Gains.P, test.ShouldEqual, 4.0)
	test.That(t, s.Gains.I, test.ShouldEqual, 0)
	test.That(t, s.Tolerance.Position, test.ShouldEqual, 0.05)
	test.That(t, s.Setpoint, test.ShouldEqual, 1.0)
	test.That(t, s.AngleUnit(), test.ShouldEqual, units.Rotations)
	test.That(t, s.Plant.VelocityGain, test.ShouldEqual, 2.0)
	test.That(t, s.Clamp.Max, test.ShouldEqual, 1.0)
}

func TestLoadScenarioDefaults(t *testing.T) {
	path := writeScenario(t, `
gains:
  p: 1.0
setpoint: 0.5
plant:
  velocity_gain: 1.0
`)
	s, err := LoadScenario(path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, s.AngleUnit(), test.ShouldEqual, units.Rotations)
	test.That(t, s.Clamp, test.ShouldBeNil)
}

func TestLoadScenarioRejectsBadInput(t *testing.T) {
	for _, tc := range []struct {
		name     string
		contents string
		errText  string
	}{
		{
			"unknown unit",
			"gains: {p: 1}\nsetpoint: 1\nunit: furlongs\nplant: {velocity_gain: 1}",
			"unknown angle unit",
		},
		{
			"missing plant gain",
			"gains: {p: 1}\nsetpoint: 1",
			"velocity_gain",
		},
		{
			"inverted clamp",
			"gains: {p: 1}\nsetpoint: 1\nplant: {velocity_gain: 1}\nclamp: {min: 1, max: -1}",
			"clamp min",
		},
		{
			"negative tolerance",
			"gains: {p: 1}\nsetpoint: 1\ntolerance: {position: -0.1}\nplant: {velocity_gain: 1}",
			"non-negative",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			path := writeScenario(t, tc.contents)
			_, err := LoadScenario(path)
			test.That(t, err, test.ShouldNotBeNil)
			test.That(t, err.Error(), test.ShouldContainSubstring, tc.errText)
		})
	}
}

func TestLoadScenarioMissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "reading scenario")
}
