package positioner

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	goutils "go.viam.com/utils"
)

// A Loop is an optional host-side driver that calls Tick at a fixed period.
// The Positioner itself never creates timing threads; the Loop exists so
// hosts without their own scheduler can still run one.
//
// While a Loop is running, the Positioner must not be called from any other
// goroutine.
type Loop struct {
	logger golog.Logger
	clock  clock.Clock
	period time.Duration
	p      *Positioner

	mu                      sync.Mutex
	cancel                  context.CancelFunc
	activeBackgroundWorkers sync.WaitGroup
}

// NewLoop returns a stopped loop driving p every period. A nil clk selects
// the wall clock.
func NewLoop(p *Positioner, period time.Duration, clk clock.Clock, logger golog.Logger) *Loop {
	if clk == nil {
		clk = clock.New()
	}
	if logger == nil {
		logger = golog.Global()
	}
	return &Loop{logger: logger, clock: clk, period: period, p: p}
}

// Start begins ticking in a background goroutine.
func (l *Loop) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		return errors.New("loop already running")
	}
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.activeBackgroundWorkers.Add(1)
	goutils.ManagedGo(func() {
		ticker := l.clock.Ticker(l.period)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			if err := l.p.Tick(ctx); err != nil {
				l.logger.Errorw("tick failed", "error", err)
			}
		}
	}, l.activeBackgroundWorkers.Done)
	return nil
}

// Stop halts ticking and waits for the driver goroutine to exit. Stopping a
// stopped loop is a no-op.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel == nil {
		return
	}
	l.cancel()
	l.cancel = nil
	l.activeBackgroundWorkers.Wait()
}
