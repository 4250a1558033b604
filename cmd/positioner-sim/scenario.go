package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"go.viam.com/actuator/control"
	"go.viam.com/actuator/sim"
	"go.viam.com/actuator/units"
)

// A Scenario is one closed-loop run: controller settings plus the plant it
// drives.
type Scenario struct {
	Gains            control.Gains     `yaml:"gains"`
	Tolerance        control.Tolerance `yaml:"tolerance,omitempty"`
	Setpoint         float64           `yaml:"setpoint"`
	StartingPosition float64           `yaml:"starting_position,omitempty"`
	Unit             string            `yaml:"unit,omitempty"`
	Plant            sim.PlantConfig   `yaml:"plant"`
	Clamp            *ClampRange       `yaml:"clamp,omitempty"`
}

// ClampRange bounds the controller output to [Min, Max].
type ClampRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// LoadScenario reads and validates a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading scenario")
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "parsing scenario")
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) validate() error {
	if _, err := units.ParseAngleUnit(s.Unit); err != nil {
		return err
	}
	if err := s.Gains.Validate(); err != nil {
		return err
	}
	if err := s.Tolerance.Validate(); err != nil {
		return err
	}
	if s.Plant.VelocityGain == 0 {
		return errors.New("plant velocity_gain must be non-zero")
	}
	if s.Clamp != nil && s.Clamp.Min > s.Clamp.Max {
		return errors.Errorf("clamp min %f exceeds max %f", s.Clamp.Min, s.Clamp.Max)
	}
	return nil
}

// AngleUnit returns the parsed working unit.
func (s *Scenario) AngleUnit() units.AngleUnit {
	u, _ := units.ParseAngleUnit(s.Unit)
	return u
}
