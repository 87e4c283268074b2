package telemetry

import (
	"time"

	"factorydash.xyz/telemetry-engine/pkg/db"
	"factorydash.xyz/telemetry-engine/pkg/models"
)

type IDispatch interface {
	Dispatch(deviceID string, evt Event)
}

type IAlert interface {
	EvaluateSnapshot(deviceID string)
	DeviceAlerts(deviceID string) []AlertEntry
	ClearAlerts()
}

type IDerived interface {
	RecomputeAQI(deviceID string)
	ComputeOEE(deviceID string) (OEEReport, error)
	ComputeEfficiency(deviceID string) (EfficiencyReport, error)
}

type IProduction interface {
	Get(deviceID string) (*models.ProductionRecord, error)
	Increment(deviceID string) (int, error)
	ReconcileWithBackend(deviceID string, backendCount int) (int, error)
	AppendLogEntry(deviceID string, product Product) (*models.ProductionLogEntry, error)
	RecentLog(deviceID string) ([]models.ProductionLogEntry, error)
}

type IThreshold interface {
	Update(metric string, input Threshold) error
	Get(metric string) Threshold
	All() map[string]Threshold
	Save() error
	Load() error
}

// Params are the session-level production targets used by the derived
// metrics engine. PlannedMinutesPerDay bounds the availability window,
// TargetUnits the theoretical daily output.
type Params struct {
	PlannedMinutesPerDay float64
	TargetUnits          int
	OEEInterval          time.Duration
}

func DefaultParams() Params {
	return Params{
		PlannedMinutesPerDay: 1440,
		TargetUnits:          1000,
		OEEInterval:          60 * time.Second,
	}
}

// Engine owns one dashboard session: the active device's state snapshot,
// bounded history, critical-state tracker and alert list, plus the
// persisted production counter. All state is session-scoped; no
// package-level singletons, so tests run isolated engines side by side.
type Engine struct {
	Db      db.DB
	Params  Params
	session session

	thresholds thresholdStore

	Dispatch   IDispatch
	Alert      IAlert
	Derived    IDerived
	Production IProduction
	Threshold  IThreshold
}

type ServiceOpts struct {
	Dispatch   IDispatch
	Alert      IAlert
	Derived    IDerived
	Production IProduction
	Threshold  IThreshold
}

func NewEngine(dbInstance db.DB) *Engine {
	e := &Engine{
		Db:     dbInstance,
		Params: DefaultParams(),
	}
	e.session.history = NewBoundedHistory()
	e.session.wasCritical = make(map[string]bool)
	e.thresholds.values = defaultThresholds()
	return e
}

func (e *Engine) WithServices(opts ServiceOpts) *Engine {
	if opts.Dispatch != nil {
		e.Dispatch = opts.Dispatch
	}
	if opts.Alert != nil {
		e.Alert = opts.Alert
	}
	if opts.Derived != nil {
		e.Derived = opts.Derived
	}
	if opts.Production != nil {
		e.Production = opts.Production
	}
	if opts.Threshold != nil {
		e.Threshold = opts.Threshold
	}
	return e
}

// WithDefaultServices wires the engine's own service implementations,
// the common case outside tests.
func (e *Engine) WithDefaultServices() *Engine {
	return e.WithServices(ServiceOpts{
		Dispatch:   e.GetIDispatch(),
		Alert:      e.GetIAlert(),
		Derived:    e.GetIDerived(),
		Production: e.GetIProduction(),
		Threshold:  e.GetIThreshold(),
	})
}
