package telemetry

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"factorydash.xyz/telemetry-engine/pkg/common"
	_ "factorydash.xyz/telemetry-engine/pkg/testing"
)

func TestThresholdDefaults(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engine, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	th := engine.Threshold.Get(MetricTemperature)
	assert.NotNil(t, th.Max)
	assert.Equal(t, 35.0, *th.Max)

	th = engine.Threshold.Get(MetricPressure)
	assert.Equal(t, 95000.0, *th.Min)
	assert.Equal(t, 110000.0, *th.Max)

	assert.Len(t, engine.Threshold.All(), 8)
}

func TestThresholdUpdate(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engine, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	err := engine.Threshold.Update(MetricTemperature, Threshold{Max: ptr(30)})
	assert.NoError(t, err)
	assert.Equal(t, 30.0, *engine.Threshold.Get(MetricTemperature).Max)

	// partial edit keeps fields it does not touch
	err = engine.Threshold.Update(MetricPressure, Threshold{Max: ptr(105000)})
	assert.NoError(t, err)
	th := engine.Threshold.Get(MetricPressure)
	assert.Equal(t, 95000.0, *th.Min)
	assert.Equal(t, 105000.0, *th.Max)
}

func TestThresholdUpdate_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engine, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	{
		// unknown metric is rejected
		err := engine.Threshold.Update("magnetism", Threshold{Max: ptr(1)})
		assert.Error(t, err)
	}

	{
		// min >= max is rejected, previous threshold stays in effect
		err := engine.Threshold.Update(MetricPressure, Threshold{Min: ptr(120000)})
		assert.Error(t, err)
		th := engine.Threshold.Get(MetricPressure)
		assert.Equal(t, 95000.0, *th.Min)
		assert.Equal(t, 110000.0, *th.Max)
	}

	{
		// empty metric name is rejected
		err := engine.Threshold.Update("", Threshold{Max: ptr(1)})
		assert.Error(t, err)
	}
}

func TestThresholdSaveAndLoad(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engine, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	err := engine.Threshold.Update(MetricNoise, Threshold{Critical: ptr(90)})
	assert.NoError(t, err)
	assert.NoError(t, engine.Threshold.Save())

	// a second engine over the same connection picks the edit up
	other := NewEngine(engine.Db)
	other.WithDefaultServices()
	assert.NoError(t, other.Threshold.Load())

	assert.Equal(t, 90.0, *other.Threshold.Get(MetricNoise).Critical)
	// untouched metrics keep their defaults
	assert.Equal(t, 35.0, *other.Threshold.Get(MetricTemperature).Max)
}

func TestThresholdLoad_IgnoresUnknownRows(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engine, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	// a row for a metric this build does not know must not leak in
	err := engine.Db.Conn.Exec(
		"INSERT OR REPLACE INTO threshold_configs (metric, max) VALUES (?, ?)",
		uuid.NewString(), 1.0,
	).Error
	assert.NoError(t, err)

	assert.NoError(t, engine.Threshold.Load())
	assert.Len(t, engine.Threshold.All(), 8)
}
