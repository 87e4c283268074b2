package telemetry

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"factorydash.xyz/telemetry-engine/pkg/common"
)

// RepeatingTask is an explicit handle for periodic work. Start and Stop
// are idempotent; a stopped task leaves no goroutine behind, so rapid
// device switching cannot stack duplicate timers.
type RepeatingTask struct {
	interval time.Duration
	fn       func()

	mu     sync.Mutex
	cancel context.CancelFunc
}

func NewRepeatingTask(interval time.Duration, fn func()) *RepeatingTask {
	return &RepeatingTask{interval: interval, fn: fn}
}

func (t *RepeatingTask) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel

	go func() {
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				t.fn()
			}
		}
	}()
}

func (t *RepeatingTask) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}

func (t *RepeatingTask) Restart() {
	t.Stop()
	t.Start()
}

func (t *RepeatingTask) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancel != nil
}

// StartTimers arms the periodic OEE recompute for the active device.
func (e *Engine) StartTimers() {
	e.session.mu.Lock()
	if e.session.oeeTask == nil {
		e.session.oeeTask = NewRepeatingTask(e.Params.OEEInterval, func() {
			deviceID := e.ActiveDevice()
			if deviceID == "" {
				return
			}
			if _, err := e.Derived.ComputeOEE(deviceID); err != nil {
				common.GetLoggerWith(
					common.LoggerNameTelemetryCore,
					zap.String(common.LoggerFieldCategory, common.LoggerCategoryDerived),
				).Warn("Periodic OEE recompute failed",
					zap.String("device_id", deviceID), zap.Error(err))
			}
		})
	}
	task := e.session.oeeTask
	e.session.mu.Unlock()

	task.Start()
}

// StartRefresh arms an auxiliary periodic task, e.g. backend
// reconciliation of the production counter.
func (e *Engine) StartRefresh(interval time.Duration, fn func()) {
	e.session.mu.Lock()
	if e.session.refreshTask != nil {
		e.session.refreshTask.Stop()
	}
	e.session.refreshTask = NewRepeatingTask(interval, fn)
	task := e.session.refreshTask
	e.session.mu.Unlock()

	task.Start()
}

// StopTimers tears down all periodic tasks. Safe to call more than
// once; after it returns no timer mutates the session.
func (e *Engine) StopTimers() {
	e.session.mu.Lock()
	oeeTask := e.session.oeeTask
	refreshTask := e.session.refreshTask
	e.session.mu.Unlock()

	if oeeTask != nil {
		oeeTask.Stop()
	}
	if refreshTask != nil {
		refreshTask.Stop()
	}
}
