// Package fake implements a recording fake motor.
package fake

import (
	"context"
	"sync"

	"go.viam.com/actuator/components/motor"
)

// A Write records one demand applied to the fake motor.
type Write struct {
	Mode           motor.ControlMode
	Demand         float64
	Feedforward    float64
	HasFeedforward bool
}

// Motor records every demand it receives. The zero value is usable.
type Motor struct {
	mu        sync.Mutex
	writes    []Write
	stopCount int
	current   float64

	// SetErr, when non-nil, is returned by Set and SetWithFeedforward.
	SetErr error
}

var _ motor.Motor = (*Motor)(nil)

// Set records the demand.
func (m *Motor) Set(ctx context.Context, mode motor.ControlMode, demand float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetErr != nil {
		return m.SetErr
	}
	m.writes = append(m.writes, Write{Mode: mode, Demand: demand})
	return nil
}

// SetWithFeedforward records the demand and feedforward.
func (m *Motor) SetWithFeedforward(ctx context.Context, mode motor.ControlMode, demand, feedforward float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetErr != nil {
		return m.SetErr
	}
	m.writes = append(m.writes, Write{Mode: mode, Demand: demand, Feedforward: feedforward, HasFeedforward: true})
	return nil
}

// AppliedCurrent returns the value set with SetCurrent.
func (m *Motor) AppliedCurrent(ctx context.Context) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current, nil
}

// Stop counts the stop and records nothing else.
func (m *Motor) Stop(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopCount++
	return nil
}

// SetCurrent sets the current reported by AppliedCurrent.
func (m *Motor) SetCurrent(amps float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = amps
}

// Writes returns a copy of all recorded demands.
func (m *Motor) Writes() []Write {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Write, len(m.writes))
	copy(out, m.writes)
	return out
}

// LastWrite returns the most recent demand, if any.
func (m *Motor) LastWrite() (Write, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.writes) == 0 {
		return Write{}, false
	}
	return m.writes[len(m.writes)-1], true
}

// StopCount returns how many times Stop has been called.
func (m *Motor) StopCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopCount
}
