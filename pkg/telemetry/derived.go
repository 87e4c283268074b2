package telemetry

import (
	"math"
	"time"

	"go.uber.org/zap"
	"factorydash.xyz/telemetry-engine/pkg/common"
)

// AQI blend weights. Renormalized over the components actually present.
const (
	aqiWeightTemperature = 0.30
	aqiWeightHumidity    = 0.30
	aqiWeightCO2         = 0.40
)

// Degrade rates are calibration values carried over from the deployed
// dashboard, not a published standard.
const (
	oeeQualityRate     = 98.0
	oeeDowntimeFactor  = 0.1
	minutesPerDay      = 24 * 60
)

// TemperatureSubScore is 100 inside the 20-25°C comfort band and loses
// 5 points per degree outside it.
func TemperatureSubScore(v float64) float64 {
	return bandScore(v, 20, 25, 5)
}

// HumiditySubScore is 100 inside 40-60% and loses 2 points per percent
// outside.
func HumiditySubScore(v float64) float64 {
	return bandScore(v, 40, 60, 2)
}

// CO2SubScore is 100 below 45, degrades linearly to 50 between 45 and
// 60, then 2 points per unit beyond 60.
func CO2SubScore(v float64) float64 {
	switch {
	case v <= 45:
		return 100
	case v <= 60:
		return 100 - (v-45)*(50.0/15.0)
	default:
		return math.Max(0, 50-2*(v-60))
	}
}

func bandScore(v, lo, hi, rate float64) float64 {
	var distance float64
	switch {
	case v < lo:
		distance = lo - v
	case v > hi:
		distance = v - hi
	}
	return math.Max(0, 100-rate*distance)
}

// ComputeAQI blends the sub-scores of whichever source readings are
// present, renormalizing the weights over that subset. With no readings
// at all it returns nil and the caller keeps the prior value.
func ComputeAQI(temperature, humidity, co2 *float64) *float64 {
	type component struct {
		score  float64
		weight float64
	}

	var present []component
	if temperature != nil {
		present = append(present, component{TemperatureSubScore(*temperature), aqiWeightTemperature})
	}
	if humidity != nil {
		present = append(present, component{HumiditySubScore(*humidity), aqiWeightHumidity})
	}
	if co2 != nil {
		present = append(present, component{CO2SubScore(*co2), aqiWeightCO2})
	}
	if len(present) == 0 {
		return nil
	}

	weightSum := common.Reducer(present, func(acc float64, c component) float64 {
		return acc + c.weight
	}, 0.0)
	weighted := common.Reducer(present, func(acc float64, c component) float64 {
		return acc + c.score*c.weight
	}, 0.0)

	aqi := round1(weighted / weightSum)
	return &aqi
}

type OEEInput struct {
	PlannedMinutesPerDay float64
	ElapsedMinutes       float64
	EmergencyStop        bool
	UnitsToday           int
	TargetUnits          int
}

type OEEReport struct {
	Availability float64 `json:"availability"`
	Performance  float64 `json:"performance"`
	Quality      float64 `json:"quality"`
	OEE          float64 `json:"oee"`
}

// ComputeOEE is pure: same input, same report. Downtime is estimated
// from elapsed time only while an emergency stop is active.
func ComputeOEE(in OEEInput) OEEReport {
	planned := in.PlannedMinutesPerDay
	if planned <= 0 {
		planned = minutesPerDay
	}

	var downtime float64
	if in.EmergencyStop {
		downtime = in.ElapsedMinutes * oeeDowntimeFactor
	}
	availability := math.Min(100, (planned-downtime)/planned*100)

	dayFraction := in.ElapsedMinutes / minutesPerDay
	theoretical := float64(in.TargetUnits) * dayFraction
	performance := 100.0
	if theoretical > 0 {
		performance = math.Min(100, float64(in.UnitsToday)/theoretical*100)
	}

	report := OEEReport{
		Availability: round1(availability),
		Performance:  round1(performance),
		Quality:      round1(oeeQualityRate),
	}
	report.OEE = round1(report.Availability * report.Performance * report.Quality / 10000)
	return report
}

type EfficiencyReport struct {
	Efficiency float64 `json:"efficiency"`
	Trend      float64 `json:"trend"`
}

// ComputeEfficiency reports progress against the daily target and the
// deviation from the pace expected at this point of the day.
func ComputeEfficiency(unitsToday, targetUnits int, dayFraction float64) EfficiencyReport {
	var efficiency float64
	if targetUnits > 0 {
		efficiency = math.Min(100, float64(unitsToday)/float64(targetUnits)*100)
	}

	var trend float64
	expected := float64(targetUnits) * dayFraction
	if expected > 0 {
		trend = (float64(unitsToday) - expected) / expected * 100
	}

	return EfficiencyReport{Efficiency: round1(efficiency), Trend: round1(trend)}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func elapsedMinutesToday(now time.Time) float64 {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return now.Sub(midnight).Minutes()
}

func (e *Engine) recomputeAQI(deviceID string) {
	e.session.mu.Lock()
	defer e.session.mu.Unlock()

	if e.session.activeDevice != deviceID {
		return
	}
	snap := &e.session.snapshot
	if aqi := ComputeAQI(snap.Temperature, snap.Humidity, snap.CO2); aqi != nil {
		snap.AirQuality = aqi
	}
}

func (e *Engine) computeOEE(deviceID string) (OEEReport, error) {
	record, err := e.Production.Get(deviceID)
	if err != nil {
		return OEEReport{}, err
	}

	e.session.mu.Lock()
	emergencyStop := e.session.emergencyStop
	e.session.mu.Unlock()

	report := ComputeOEE(OEEInput{
		PlannedMinutesPerDay: e.Params.PlannedMinutesPerDay,
		ElapsedMinutes:       elapsedMinutesToday(time.Now()),
		EmergencyStop:        emergencyStop,
		UnitsToday:           record.Units,
		TargetUnits:          e.Params.TargetUnits,
	})

	common.GetLoggerWith(
		common.LoggerNameTelemetryCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryDerived),
	).Debug("Recomputed OEE", zap.String("device_id", deviceID), zap.Reflect("report", report))

	return report, nil
}

func (e *Engine) computeEfficiency(deviceID string) (EfficiencyReport, error) {
	record, err := e.Production.Get(deviceID)
	if err != nil {
		return EfficiencyReport{}, err
	}

	dayFraction := elapsedMinutesToday(time.Now()) / minutesPerDay
	return ComputeEfficiency(record.Units, e.Params.TargetUnits, dayFraction), nil
}

type IDerivedImpl struct {
	engine *Engine
}

func (id *IDerivedImpl) RecomputeAQI(deviceID string) {
	id.engine.recomputeAQI(deviceID)
}

func (id *IDerivedImpl) ComputeOEE(deviceID string) (OEEReport, error) {
	return id.engine.computeOEE(deviceID)
}

func (id *IDerivedImpl) ComputeEfficiency(deviceID string) (EfficiencyReport, error) {
	return id.engine.computeEfficiency(deviceID)
}

func (e *Engine) GetIDerived() IDerived {
	return &IDerivedImpl{engine: e}
}
