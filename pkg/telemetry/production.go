package telemetry

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"factorydash.xyz/telemetry-engine/pkg/common"
	"factorydash.xyz/telemetry-engine/pkg/models"
)

// ProductionLogCap bounds the per-device activity log.
const ProductionLogCap = 100

func todayMidnight(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// productionGet loads the device's counter, lazily creating it and
// rolling the window over when it expired (24h without a write, or a
// new calendar day).
func (e *Engine) productionGet(deviceID string) (*models.ProductionRecord, error) {
	now := time.Now()
	midnight := todayMidnight(now)

	var record models.ProductionRecord
	err := e.Db.Conn.First(&record, "device_id = ?", deviceID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record = models.ProductionRecord{
			DeviceID:  deviceID,
			Units:     0,
			DayStart:  midnight,
			LastWrite: now,
		}
		if err := e.Db.Conn.Create(&record).Error; err != nil {
			return nil, err
		}
		return &record, nil
	}
	if err != nil {
		return nil, err
	}

	expired := now.Sub(record.LastWrite) > 24*time.Hour || !record.DayStart.Equal(midnight)
	if expired {
		record.Units = 0
		record.DayStart = midnight
		record.LastWrite = now
		if err := e.Db.Conn.Save(&record).Error; err != nil {
			return nil, err
		}
	}
	return &record, nil
}

func (e *Engine) productionIncrement(deviceID string) (int, error) {
	record, err := e.productionGet(deviceID)
	if err != nil {
		return 0, err
	}

	record.Units++
	record.LastWrite = time.Now()
	if err := e.Db.Conn.Save(record).Error; err != nil {
		return 0, err
	}

	common.GetLoggerWith(
		common.LoggerNameTelemetryCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryProduction),
	).Info("Incremented production counter",
		zap.String("device_id", deviceID), zap.Int("units", record.Units))

	return record.Units, nil
}

// productionReconcile applies a backend-reported count. The local count
// never regresses: a stale backend read smaller than what live events
// already accrued is kept out.
func (e *Engine) productionReconcile(deviceID string, backendCount int) (int, error) {
	record, err := e.productionGet(deviceID)
	if err != nil {
		return 0, err
	}

	logger := common.GetLoggerWith(
		common.LoggerNameTelemetryCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryProduction),
	)

	if backendCount < record.Units && record.Units != 0 {
		logger.Info("Ignored regressive backend count",
			zap.String("device_id", deviceID),
			zap.Int("local", record.Units), zap.Int("backend", backendCount))
		return record.Units, nil
	}

	record.Units = backendCount
	record.LastWrite = time.Now()
	if err := e.Db.Conn.Save(record).Error; err != nil {
		return 0, err
	}

	logger.Info("Reconciled production counter with backend",
		zap.String("device_id", deviceID), zap.Int("units", record.Units))

	return record.Units, nil
}

func (e *Engine) productionAppendLog(deviceID string, product Product) (*models.ProductionLogEntry, error) {
	now := time.Now()
	entry := models.ProductionLogEntry{
		ID:          uuid.NewString(),
		DeviceID:    deviceID,
		ProductID:   product.ID,
		ProductName: product.Name,
		Timestamp:   now,
		HumanTime:   now.Format("2006-01-02 15:04:05"),
	}

	if err := e.Db.Conn.Create(&entry).Error; err != nil {
		return nil, err
	}

	// cap: drop everything older than the most recent 100
	var ids []string
	err := e.Db.Conn.Model(&models.ProductionLogEntry{}).
		Where("device_id = ?", deviceID).
		Order("timestamp desc").
		Limit(ProductionLogCap).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	err = e.Db.Conn.
		Where("device_id = ? AND id NOT IN ?", deviceID, ids).
		Delete(&models.ProductionLogEntry{}).Error
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

// productionRecentLog returns the capped log filtered to the current
// day window, newest-first.
func (e *Engine) productionRecentLog(deviceID string) ([]models.ProductionLogEntry, error) {
	var entries []models.ProductionLogEntry
	err := e.Db.Conn.
		Where("device_id = ? AND timestamp >= ?", deviceID, todayMidnight(time.Now())).
		Order("timestamp desc").
		Limit(ProductionLogCap).
		Find(&entries).Error
	return entries, err
}

type IProductionImpl struct {
	engine *Engine
}

func (ip *IProductionImpl) Get(deviceID string) (*models.ProductionRecord, error) {
	return ip.engine.productionGet(deviceID)
}

func (ip *IProductionImpl) Increment(deviceID string) (int, error) {
	return ip.engine.productionIncrement(deviceID)
}

func (ip *IProductionImpl) ReconcileWithBackend(deviceID string, backendCount int) (int, error) {
	return ip.engine.productionReconcile(deviceID, backendCount)
}

func (ip *IProductionImpl) AppendLogEntry(deviceID string, product Product) (*models.ProductionLogEntry, error) {
	return ip.engine.productionAppendLog(deviceID, product)
}

func (ip *IProductionImpl) RecentLog(deviceID string) ([]models.ProductionLogEntry, error) {
	return ip.engine.productionRecentLog(deviceID)
}

func (e *Engine) GetIProduction() IProduction {
	return &IProductionImpl{engine: e}
}
