package telemetry

import (
	"fmt"
	"sync"

	z "github.com/Oudwins/zog"
	"go.uber.org/zap"
	"gorm.io/gorm/clause"
	"factorydash.xyz/telemetry-engine/pkg/common"
	"factorydash.xyz/telemetry-engine/pkg/models"
)

// Threshold holds the configured limits of one metric. Nil means the
// limit is not set; comparators fall back to their fixed defaults.
type Threshold struct {
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Warning  *float64 `json:"warning,omitempty"`
	Critical *float64 `json:"critical,omitempty"`
}

type thresholdStore struct {
	mu     sync.Mutex
	values map[string]Threshold
}

func ptr(v float64) *float64 { return &v }

func defaultThresholds() map[string]Threshold {
	return map[string]Threshold{
		MetricTemperature: {Max: ptr(35)},
		MetricVibration:   {Critical: ptr(10)},
		MetricPressure:    {Min: ptr(95000), Max: ptr(110000)},
		MetricNoise:       {Critical: ptr(85)},
		MetricHumidity:    {Warning: ptr(70)},
		MetricCO2:         {Max: ptr(1000)},
		MetricAirQuality:  {Critical: ptr(150)},
		MetricPM25:        {Critical: ptr(35)},
	}
}

var metricNameSchema = z.String().Min(1).Required()

// thresholdUpdate merges the edit into the stored threshold after
// validation. A rejected edit leaves the previous threshold in effect.
func (e *Engine) thresholdUpdate(metric string, input Threshold) error {
	if err := metricNameSchema.Validate(&metric); err != nil {
		return fmt.Errorf("invalid metric name: %v", err)
	}

	e.thresholds.mu.Lock()
	defer e.thresholds.mu.Unlock()

	current, known := e.thresholds.values[metric]
	if !known {
		return fmt.Errorf("unknown metric %q", metric)
	}

	merged := current
	if input.Min != nil {
		merged.Min = input.Min
	}
	if input.Max != nil {
		merged.Max = input.Max
	}
	if input.Warning != nil {
		merged.Warning = input.Warning
	}
	if input.Critical != nil {
		merged.Critical = input.Critical
	}

	if merged.Min != nil && merged.Max != nil && *merged.Min >= *merged.Max {
		return fmt.Errorf("invalid range for %s: min %g must be below max %g",
			metric, *merged.Min, *merged.Max)
	}

	e.thresholds.values[metric] = merged

	common.GetLoggerWith(
		common.LoggerNameTelemetryCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryThreshold),
	).Info("Updated threshold", zap.String("metric", metric), zap.Reflect("threshold", merged))

	return nil
}

func (e *Engine) thresholdGet(metric string) Threshold {
	e.thresholds.mu.Lock()
	defer e.thresholds.mu.Unlock()
	return e.thresholds.values[metric]
}

func (e *Engine) thresholdAll() map[string]Threshold {
	e.thresholds.mu.Lock()
	defer e.thresholds.mu.Unlock()

	out := make(map[string]Threshold, len(e.thresholds.values))
	for metric, th := range e.thresholds.values {
		out[metric] = th
	}
	return out
}

// thresholdSave persists the current values. Thresholds otherwise live
// only in memory.
func (e *Engine) thresholdSave() error {
	for metric, th := range e.thresholdAll() {
		row := models.ThresholdConfig{
			Metric:   metric,
			Min:      th.Min,
			Max:      th.Max,
			Warning:  th.Warning,
			Critical: th.Critical,
		}
		err := e.Db.Conn.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "metric"}},
			UpdateAll: true,
		}).Create(&row).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) thresholdLoad() error {
	var rows []models.ThresholdConfig
	if err := e.Db.Conn.Find(&rows).Error; err != nil {
		return err
	}

	e.thresholds.mu.Lock()
	defer e.thresholds.mu.Unlock()

	for _, row := range rows {
		if _, known := e.thresholds.values[row.Metric]; !known {
			continue
		}
		e.thresholds.values[row.Metric] = Threshold{
			Min:      row.Min,
			Max:      row.Max,
			Warning:  row.Warning,
			Critical: row.Critical,
		}
	}
	return nil
}

type IThresholdImpl struct {
	engine *Engine
}

func (it *IThresholdImpl) Update(metric string, input Threshold) error {
	return it.engine.thresholdUpdate(metric, input)
}

func (it *IThresholdImpl) Get(metric string) Threshold {
	return it.engine.thresholdGet(metric)
}

func (it *IThresholdImpl) All() map[string]Threshold {
	return it.engine.thresholdAll()
}

func (it *IThresholdImpl) Save() error {
	return it.engine.thresholdSave()
}

func (it *IThresholdImpl) Load() error {
	return it.engine.thresholdLoad()
}

func (e *Engine) GetIThreshold() IThreshold {
	return &IThresholdImpl{engine: e}
}
