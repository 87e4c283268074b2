package telemetry

import (
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm/clause"
	"factorydash.xyz/telemetry-engine/pkg/common"
	"factorydash.xyz/telemetry-engine/pkg/models"
)

// Snapshot is the canonical "current values" record of the active
// device. Nil means no reading has arrived since the last reset.
type Snapshot struct {
	Vibration      *float64 `json:"vibration"`
	Pressure       *float64 `json:"pressure"`
	Noise          *float64 `json:"noise"`
	Temperature    *float64 `json:"temperature"`
	Humidity       *float64 `json:"humidity"`
	CO2            *float64 `json:"co2"`
	AirQuality     *float64 `json:"airQuality"`
	PM25           *float64 `json:"pm25"`
	Units          *float64 `json:"units"`
	Ventilation    *float64 `json:"ventilation"`
	MachineControl *float64 `json:"machineControl"`
}

func (s *Snapshot) field(metric string) **float64 {
	switch metric {
	case MetricVibration:
		return &s.Vibration
	case MetricPressure:
		return &s.Pressure
	case MetricNoise:
		return &s.Noise
	case MetricTemperature:
		return &s.Temperature
	case MetricHumidity:
		return &s.Humidity
	case MetricCO2:
		return &s.CO2
	case MetricAirQuality:
		return &s.AirQuality
	case MetricPM25:
		return &s.PM25
	case MetricUnits:
		return &s.Units
	case MetricVentilation:
		return &s.Ventilation
	case MetricMachineControl:
		return &s.MachineControl
	default:
		return nil
	}
}

// Set writes one metric field. Unknown metrics report false so the
// dispatcher can keep history for them without pretending the snapshot
// changed.
func (s *Snapshot) Set(metric string, value float64) bool {
	f := s.field(metric)
	if f == nil {
		return false
	}
	v := value
	*f = &v
	return true
}

func (s *Snapshot) Get(metric string) *float64 {
	f := s.field(metric)
	if f == nil {
		return nil
	}
	return *f
}

func (s *Snapshot) Reset() {
	*s = Snapshot{}
}

// Clone returns a deep copy safe to hand outside the session lock.
func (s *Snapshot) Clone() Snapshot {
	out := Snapshot{}
	for _, metric := range AllMetrics {
		if v := s.Get(metric); v != nil {
			out.Set(metric, *v)
		}
	}
	return out
}

// AllMetrics lists every snapshot field key, in evaluation order.
var AllMetrics = []string{
	MetricVibration,
	MetricPressure,
	MetricNoise,
	MetricTemperature,
	MetricHumidity,
	MetricCO2,
	MetricAirQuality,
	MetricPM25,
	MetricUnits,
	MetricVentilation,
	MetricMachineControl,
}

// AlertEntry is one fired notification, newest-first in the session
// list. Uniqueness is (Message, DeviceID, Metric, HumanTime).
type AlertEntry struct {
	Message   string          `json:"message"`
	HumanTime string          `json:"humanTime"`
	Severity  models.Severity `json:"severity"`
	DeviceID  string          `json:"deviceId"`
	Metric    string          `json:"metric"`
}

// session is the per-engine mutable state. Every mutation goes through
// the engine under s.mu, so one inbound event is processed atomically
// with respect to reads and device switches.
type session struct {
	mu            sync.Mutex
	activeDevice  string
	snapshot      Snapshot
	history       *BoundedHistory
	wasCritical   map[string]bool
	alerts        []AlertEntry
	emergencyStop bool

	oeeTask     *RepeatingTask
	refreshTask *RepeatingTask
}

func (e *Engine) ActiveDevice() string {
	e.session.mu.Lock()
	defer e.session.mu.Unlock()
	return e.session.activeDevice
}

// SwitchDevice makes deviceID the active device. The id change, the
// snapshot reset and the critical-state tracker reset land under one
// lock acquisition, so no event can observe a half-switched session.
// Periodic tasks are restarted for the new device.
func (e *Engine) SwitchDevice(deviceID string) {
	logger := common.GetLoggerWith(
		common.LoggerNameTelemetryCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategorySnapshot),
	)

	e.session.mu.Lock()
	previous := e.session.activeDevice
	e.session.activeDevice = deviceID
	e.session.snapshot.Reset()
	e.session.wasCritical = make(map[string]bool)
	e.session.emergencyStop = false
	oeeTask := e.session.oeeTask
	refreshTask := e.session.refreshTask
	e.session.mu.Unlock()

	logger.Info("Switched active device",
		zap.String("previous", previous), zap.String("device_id", deviceID))

	if oeeTask != nil {
		oeeTask.Restart()
	}
	if refreshTask != nil {
		refreshTask.Restart()
	}

	if err := e.SetPreference(PreferenceSelectedDevice, deviceID); err != nil {
		logger.Warn("Failed to persist selected device", zap.Error(err))
	}
}

// SnapshotCopy returns the current snapshot of the active device.
func (e *Engine) SnapshotCopy() Snapshot {
	e.session.mu.Lock()
	defer e.session.mu.Unlock()
	return e.session.snapshot.Clone()
}

func (e *Engine) History(deviceID, metric string) []Point {
	e.session.mu.Lock()
	defer e.session.mu.Unlock()
	return e.session.history.Read(deviceID, metric)
}

func (e *Engine) SetEmergencyStop(active bool) {
	e.session.mu.Lock()
	defer e.session.mu.Unlock()
	e.session.emergencyStop = active
	if active {
		v := 0.0
		e.session.snapshot.MachineControl = &v
	}
}

func (e *Engine) EmergencyStopActive() bool {
	e.session.mu.Lock()
	defer e.session.mu.Unlock()
	return e.session.emergencyStop
}

// Preference keys persisted across sessions.
const (
	PreferenceSelectedDevice = "selectedDevice"
	PreferenceActiveTab      = "activeTab"
	PreferenceTargetUnits    = "targetUnits"
)

func (e *Engine) SetPreference(key, value string) error {
	return e.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(&models.Preference{Key: key, Value: value}).Error
}

func (e *Engine) GetPreference(key string) (string, error) {
	var pref models.Preference
	if err := e.Db.Conn.First(&pref, "key = ?", key).Error; err != nil {
		return "", err
	}
	return pref.Value, nil
}
