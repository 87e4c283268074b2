package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"factorydash.xyz/telemetry-engine/pkg/command"
	"factorydash.xyz/telemetry-engine/pkg/telemetry"
)

type RestfulServer struct {
	Server           *gin.Engine
	Engine           *telemetry.Engine
	Commands         *command.Client
	RateLimiterStore *telemetry.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(deviceID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(deviceID)
	}
}

func (rs *RestfulServer) CheckDeviceLimiter(deviceID string) bool {
	limiter := rs.GetLimiter(deviceID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(deviceID string, deviceRate float64, deviceBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(deviceID, rate.Limit(deviceRate), deviceBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	rs.Server.GET("/thresholds", rs.GetThresholds)
	rs.Server.POST("/thresholds", rs.UpdateThreshold)
	rs.Server.POST("/thresholds/save", rs.SaveThresholds)

	rs.Server.DELETE("/alerts", rs.ClearAlerts)

	devices := rs.Server.Group("/devices/:device_id")
	{
		devices.POST("/events", rs.PostEvent)
		devices.POST("/select", rs.SelectDevice)
		devices.GET("/snapshot", rs.GetSnapshot)
		devices.GET("/history/:metric", rs.GetHistory)
		devices.GET("/alerts", rs.GetAlerts)
		devices.GET("/oee", rs.GetOEE)
		devices.GET("/efficiency", rs.GetEfficiency)
		devices.GET("/production", rs.GetProduction)
		devices.POST("/production/reconcile", rs.ReconcileProduction)
		devices.POST("/commands/machine-control", rs.PostMachineControl)
		devices.POST("/commands/emergency-stop", rs.PostEmergencyStop)
		devices.POST("/commands/ventilation", rs.PostVentilation)
		devices.POST("/limiter", rs.PostLimiter)
	}
}
