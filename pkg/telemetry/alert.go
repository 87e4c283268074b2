package telemetry

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"factorydash.xyz/telemetry-engine/pkg/common"
	"factorydash.xyz/telemetry-engine/pkg/models"
)

// Transition is the outcome of one alert evaluation for one metric.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionEnter
	TransitionExit
)

// EvaluateTransition is the edge detector: an alert fires only on
// TransitionEnter, the safe-to-critical rising edge.
func EvaluateTransition(wasCritical, isCritical bool) Transition {
	switch {
	case isCritical && !wasCritical:
		return TransitionEnter
	case !isCritical && wasCritical:
		return TransitionExit
	default:
		return TransitionNone
	}
}

type alertPolicy struct {
	severity   models.Severity
	isCritical func(v float64, th Threshold) bool
	message    func(v float64) string
}

func above(get func(th Threshold) *float64, fallback float64) func(float64, Threshold) bool {
	return func(v float64, th Threshold) bool {
		limit := fallback
		if p := get(th); p != nil {
			limit = *p
		}
		return v > limit
	}
}

// alertPolicies maps each metric to its severity and comparator. The
// comparator reads the threshold store, whose defaults carry the fixed
// limits; editing a threshold re-arms the comparator on the next pass.
var alertPolicies = map[string]alertPolicy{
	MetricTemperature: {
		severity:   models.SeverityCritical,
		isCritical: above(func(th Threshold) *float64 { return th.Max }, 35),
		message: func(v float64) string {
			return fmt.Sprintf("Temperature Critical: %g°C exceeds max threshold", v)
		},
	},
	MetricVibration: {
		severity:   models.SeverityCritical,
		isCritical: above(func(th Threshold) *float64 { return th.Critical }, 10),
		message: func(v float64) string {
			return fmt.Sprintf("Vibration Critical: %g mm/s exceeds critical threshold", v)
		},
	},
	MetricPressure: {
		severity: models.SeverityCritical,
		isCritical: func(v float64, th Threshold) bool {
			min, max := 95000.0, 110000.0
			if th.Min != nil {
				min = *th.Min
			}
			if th.Max != nil {
				max = *th.Max
			}
			return v < min || v > max
		},
		message: func(v float64) string {
			return fmt.Sprintf("Pressure Critical: %g Pa outside safe range", v)
		},
	},
	MetricNoise: {
		severity:   models.SeverityCritical,
		isCritical: above(func(th Threshold) *float64 { return th.Critical }, 85),
		message: func(v float64) string {
			return fmt.Sprintf("Noise Critical: %g dB exceeds threshold", v)
		},
	},
	MetricHumidity: {
		severity:   models.SeverityWarning,
		isCritical: above(func(th Threshold) *float64 { return th.Warning }, 70),
		message: func(v float64) string {
			return fmt.Sprintf("Humidity Warning: %g%% exceeds threshold", v)
		},
	},
	MetricCO2: {
		severity:   models.SeverityCritical,
		isCritical: above(func(th Threshold) *float64 { return th.Max }, 1000),
		message: func(v float64) string {
			return fmt.Sprintf("CO2 Critical: %g ppm exceeds threshold", v)
		},
	},
	MetricAirQuality: {
		severity:   models.SeverityCritical,
		isCritical: above(func(th Threshold) *float64 { return th.Critical }, 150),
		message: func(v float64) string {
			return fmt.Sprintf("Air Quality Critical: index %g exceeds threshold", v)
		},
	},
	MetricPM25: {
		severity:   models.SeverityCritical,
		isCritical: above(func(th Threshold) *float64 { return th.Critical }, 35),
		message: func(v float64) string {
			return fmt.Sprintf("PM2.5 Critical: %g µg/m³ exceeds threshold", v)
		},
	},
}

// evaluateSnapshot runs one alert pass over the active snapshot. The
// tracker write happens before the entry decision for every metric, so
// a repeated critical reading cannot re-fire and a safe reading always
// clears the flag. The tracker update and any alert append happen under
// one lock acquisition.
func (e *Engine) evaluateSnapshot(deviceID string) {
	logger := common.GetLoggerWith(
		common.LoggerNameTelemetryCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAlert),
	)

	thresholds := make(map[string]Threshold, len(alertPolicies))
	for metric := range alertPolicies {
		thresholds[metric] = e.Threshold.Get(metric)
	}

	humanTime := time.Now().Format("2006-01-02 15:04")

	var fired []AlertEntry

	e.session.mu.Lock()
	if e.session.activeDevice != deviceID {
		e.session.mu.Unlock()
		return
	}
	for _, metric := range AllMetrics {
		policy, ok := alertPolicies[metric]
		if !ok {
			continue
		}

		value := e.session.snapshot.Get(metric)
		isCritical := value != nil && policy.isCritical(*value, thresholds[metric])

		key := deviceID + "/" + metric
		wasCritical := e.session.wasCritical[key]
		e.session.wasCritical[key] = isCritical

		if EvaluateTransition(wasCritical, isCritical) != TransitionEnter {
			continue
		}

		entry := AlertEntry{
			Message:   policy.message(*value),
			HumanTime: humanTime,
			Severity:  policy.severity,
			DeviceID:  deviceID,
			Metric:    metric,
		}
		if containsAlert(e.session.alerts, entry) {
			continue
		}
		e.session.alerts = append([]AlertEntry{entry}, e.session.alerts...)
		fired = append(fired, entry)
	}
	e.session.mu.Unlock()

	for _, entry := range fired {
		logger.Info("Alert fired", zap.Reflect("alert", entry))
	}
}

func containsAlert(alerts []AlertEntry, entry AlertEntry) bool {
	for _, a := range alerts {
		if a.Message == entry.Message &&
			a.DeviceID == entry.DeviceID &&
			a.Metric == entry.Metric &&
			a.HumanTime == entry.HumanTime {
			return true
		}
	}
	return false
}

func (e *Engine) deviceAlerts(deviceID string) []AlertEntry {
	e.session.mu.Lock()
	defer e.session.mu.Unlock()

	out := []AlertEntry{}
	for _, a := range e.session.alerts {
		if a.DeviceID == deviceID {
			out = append(out, a)
		}
	}
	return out
}

func (e *Engine) clearAlerts() {
	e.session.mu.Lock()
	defer e.session.mu.Unlock()
	e.session.alerts = nil
}

type IAlertImpl struct {
	engine *Engine
}

func (ia *IAlertImpl) EvaluateSnapshot(deviceID string) {
	ia.engine.evaluateSnapshot(deviceID)
}

func (ia *IAlertImpl) DeviceAlerts(deviceID string) []AlertEntry {
	return ia.engine.deviceAlerts(deviceID)
}

func (ia *IAlertImpl) ClearAlerts() {
	ia.engine.clearAlerts()
}

func (e *Engine) GetIAlert() IAlert {
	return &IAlertImpl{engine: e}
}
