package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"factorydash.xyz/telemetry-engine/pkg/command"
	"factorydash.xyz/telemetry-engine/pkg/telemetry"
)

type EventRequest struct {
	SensorType string `json:"sensorType"`
	Value      any    `json:"value"`
	Timestamp  string `json:"timestamp"`
}

var sensorTypeSchema = z.String().Min(1).Required()

// PostEvent feeds one decoded event into the dispatcher, exactly as the
// stream transport would. The value's shape is the normalizer's
// business; only the envelope is validated here.
func (rs *RestfulServer) PostEvent(c *gin.Context) {
	deviceID := c.Param("device_id")

	if !rs.CheckDeviceLimiter(deviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := sensorTypeSchema.Validate(&req.SensorType); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.Engine.Dispatch.Dispatch(deviceID, telemetry.Event{
		SensorType: req.SensorType,
		Value:      req.Value,
		Timestamp:  req.Timestamp,
	})

	c.Status(http.StatusAccepted)
}

func (rs *RestfulServer) SelectDevice(c *gin.Context) {
	rs.Engine.SwitchDevice(c.Param("device_id"))
	c.Status(http.StatusOK)
}

func (rs *RestfulServer) GetSnapshot(c *gin.Context) {
	deviceID := c.Param("device_id")

	if rs.Engine.ActiveDevice() != deviceID {
		c.JSON(http.StatusNotFound, gin.H{"error": "device is not active"})
		return
	}

	snapshot := rs.Engine.SnapshotCopy()
	c.JSON(http.StatusOK, snapshot)
}

func (rs *RestfulServer) GetHistory(c *gin.Context) {
	deviceID := c.Param("device_id")
	metric := c.Param("metric")

	c.JSON(http.StatusOK, rs.Engine.History(deviceID, metric))
}

func (rs *RestfulServer) GetAlerts(c *gin.Context) {
	deviceID := c.Param("device_id")

	if !rs.CheckDeviceLimiter(deviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	c.JSON(http.StatusOK, rs.Engine.Alert.DeviceAlerts(deviceID))
}

func (rs *RestfulServer) ClearAlerts(c *gin.Context) {
	rs.Engine.Alert.ClearAlerts()
	c.Status(http.StatusOK)
}

func (rs *RestfulServer) GetOEE(c *gin.Context) {
	report, err := rs.Engine.Derived.ComputeOEE(c.Param("device_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (rs *RestfulServer) GetEfficiency(c *gin.Context) {
	report, err := rs.Engine.Derived.ComputeEfficiency(c.Param("device_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (rs *RestfulServer) GetProduction(c *gin.Context) {
	deviceID := c.Param("device_id")

	record, err := rs.Engine.Production.Get(deviceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	entries, err := rs.Engine.Production.RecentLog(deviceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"units":    record.Units,
		"dayStart": record.DayStart,
		"log":      entries,
	})
}

type ReconcileRequest struct {
	Count int `json:"count"`
}

var reconcileRequestSchema = z.Struct(z.Shape{
	"Count": z.Int().GTE(0).Required(),
})

func (rs *RestfulServer) ReconcileProduction(c *gin.Context) {
	deviceID := c.Param("device_id")

	var req ReconcileRequest
	if err := reconcileRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	units, err := rs.Engine.Production.ReconcileWithBackend(deviceID, req.Count)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"units": units})
}

func (rs *RestfulServer) GetThresholds(c *gin.Context) {
	c.JSON(http.StatusOK, rs.Engine.Threshold.All())
}

type ThresholdRequest struct {
	Metric   string   `json:"metric"`
	Min      *float64 `json:"min"`
	Max      *float64 `json:"max"`
	Warning  *float64 `json:"warning"`
	Critical *float64 `json:"critical"`
}

var thresholdMetricSchema = z.String().Min(1).Required()

// UpdateThreshold applies one edit. An invalid range is rejected and
// the previously saved thresholds remain armed.
func (rs *RestfulServer) UpdateThreshold(c *gin.Context) {
	var req ThresholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := thresholdMetricSchema.Validate(&req.Metric); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	err := rs.Engine.Threshold.Update(req.Metric, telemetry.Threshold{
		Min:      req.Min,
		Max:      req.Max,
		Warning:  req.Warning,
		Critical: req.Critical,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) SaveThresholds(c *gin.Context) {
	if err := rs.Engine.Threshold.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusOK)
}

type MachineControlRequest struct {
	Command string `json:"command"`
}

var machineControlRequestSchema = z.Struct(z.Shape{
	"Command": z.String().Min(1).Required(),
})

// PostMachineControl relays RUN/STOP/IDLE. Local machine state commits
// only after the backend accepts the command.
func (rs *RestfulServer) PostMachineControl(c *gin.Context) {
	deviceID := c.Param("device_id")

	var req MachineControlRequest
	if err := machineControlRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	cmd := command.MachineCommand(req.Command)
	if !cmd.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "command must be RUN, STOP or IDLE"})
		return
	}

	if !rs.Commands.SendMachineControlCommand(c.Request.Context(), deviceID, cmd) {
		c.JSON(http.StatusBadGateway, gin.H{"warning": "command was not accepted by the backend"})
		return
	}

	if err := rs.Commands.UpdateStateDetails(c.Request.Context(), deviceID,
		command.CategoryMachineControl, map[string]any{"command": string(cmd)}); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"warning": "state update failed after command"})
		return
	}

	c.Status(http.StatusOK)
}

// PostEmergencyStop sets the local stopped state before the network
// command goes out. The operator must see the line halted even if the
// backend call is in flight or later fails.
func (rs *RestfulServer) PostEmergencyStop(c *gin.Context) {
	deviceID := c.Param("device_id")

	rs.Engine.SetEmergencyStop(true)

	go func() {
		ctx := context.Background()
		if !rs.Commands.SendMachineControlCommand(ctx, deviceID, command.CommandStop) {
			return
		}
		rs.Commands.UpdateStateDetails(ctx, deviceID,
			command.CategoryMachineControl, map[string]any{"command": string(command.CommandStop), "emergency": true})
	}()

	c.Status(http.StatusOK)
}

type VentilationRequest struct {
	Level float64 `json:"level"`
}

var ventilationRequestSchema = z.Struct(z.Shape{
	"Level": z.Float64().GTE(0).Required(),
})

func (rs *RestfulServer) PostVentilation(c *gin.Context) {
	deviceID := c.Param("device_id")

	var req VentilationRequest
	if err := ventilationRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	err := rs.Commands.UpdateStateDetails(c.Request.Context(), deviceID,
		command.CategoryVentilation, map[string]any{"level": req.Level})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"warning": "ventilation command failed"})
		return
	}

	c.Status(http.StatusOK)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	deviceID := c.Param("device_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(deviceID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
