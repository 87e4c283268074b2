package telemetry

import (
	"go.uber.org/zap"
	"factorydash.xyz/telemetry-engine/pkg/common"
)

// dispatch routes one inbound event through the session. The snapshot
// and history writes happen under the session lock; the derived-metric
// recompute and the alert evaluation pass run once afterwards. Nothing
// in here propagates an error to the caller: a bad frame is logged and
// the stream keeps flowing.
func (e *Engine) dispatch(deviceID string, evt Event) {
	logger := common.GetLoggerWith(
		common.LoggerNameTelemetryCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryDispatch),
	)

	c := Classify(evt)

	switch c.Kind {
	case KindMalformed:
		logger.Warn("Dropping malformed event",
			zap.String("device_id", deviceID),
			zap.String("sensor_type", evt.SensorType),
			zap.Any("value", evt.Value))
		return

	case KindTopicNotice:
		// routing hint, no payload
		return
	}

	e.session.mu.Lock()

	if e.session.activeDevice == "" || deviceID != e.session.activeDevice {
		// Event for a device that is not (or no longer) active. Its
		// history may still be useful, but the live snapshot belongs to
		// the active device and must not be cross-written.
		if c.Kind == KindSingleMetric {
			e.session.history.Append(deviceID, c.Metric, Point{Timestamp: c.Timestamp, Value: c.Value})
		}
		e.session.mu.Unlock()
		logger.Debug("Dropped event for inactive device",
			zap.String("device_id", deviceID),
			zap.String("active_device", e.ActiveDevice()))
		return
	}

	switch c.Kind {
	case KindSingleMetric:
		e.session.snapshot.Set(c.Metric, c.Value)
		e.session.history.Append(deviceID, c.Metric, Point{Timestamp: c.Timestamp, Value: c.Value})
		e.session.mu.Unlock()

	case KindPayloadBundle:
		for metric, value := range c.Metrics {
			e.session.snapshot.Set(metric, value)
			e.session.history.Append(deviceID, metric, Point{Timestamp: c.Timestamp, Value: value})
		}
		e.session.mu.Unlock()

	case KindProductBundle:
		e.session.mu.Unlock()
		if _, err := e.Production.AppendLogEntry(deviceID, *c.Product); err != nil {
			logger.Warn("Failed to append production log entry",
				zap.String("device_id", deviceID), zap.Error(err))
		}
		return

	case KindProductScan:
		e.session.mu.Unlock()
		count, err := e.Production.Increment(deviceID)
		if err != nil {
			logger.Warn("Failed to increment production counter",
				zap.String("device_id", deviceID), zap.Error(err))
			return
		}
		if _, err := e.Production.AppendLogEntry(deviceID, *c.Product); err != nil {
			logger.Warn("Failed to append production log entry",
				zap.String("device_id", deviceID), zap.Error(err))
		}
		e.session.mu.Lock()
		if e.session.activeDevice == deviceID {
			e.session.snapshot.Set(MetricUnits, float64(count))
		}
		e.session.mu.Unlock()
		return
	}

	// Reactive pass: recompute derived values, then evaluate alerts.
	// Both are idempotent; the alert pass mutates the critical-state
	// tracker and therefore runs exactly once per dispatched event.
	e.Derived.RecomputeAQI(deviceID)
	e.Alert.EvaluateSnapshot(deviceID)
}

type IDispatchImpl struct {
	engine *Engine
}

func (id *IDispatchImpl) Dispatch(deviceID string, evt Event) {
	id.engine.dispatch(deviceID, evt)
}

func (e *Engine) GetIDispatch() IDispatch {
	return &IDispatchImpl{engine: e}
}
