package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"factorydash.xyz/telemetry-engine/pkg/command"
	"factorydash.xyz/telemetry-engine/pkg/common"
	"factorydash.xyz/telemetry-engine/pkg/db"
	dashHttp "factorydash.xyz/telemetry-engine/pkg/http"
	"factorydash.xyz/telemetry-engine/pkg/telemetry"
	"factorydash.xyz/telemetry-engine/pkg/transport"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	dashDbType := os.Getenv(common.EnvKeyDashDBType)
	switch dashDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown DASH_DB_TYPE: " + dashDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyDashHttpHostPort))
	streamURL := strings.TrimSpace(os.Getenv(common.EnvKeyDashStreamURL))
	commandBaseURL := strings.TrimSpace(os.Getenv(common.EnvKeyDashCommandBaseURL))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyDashDefaultRate), 64); err != nil {
		log.Fatal("Invalid DASH_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyDashDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid DASH_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	engine := telemetry.NewEngine(*dbInstance)
	engine.WithDefaultServices()

	if targetUnits, err := strconv.Atoi(os.Getenv(common.EnvKeyDashTargetUnits)); err == nil {
		engine.Params.TargetUnits = targetUnits
	}
	if plannedMinutes, err := strconv.ParseFloat(os.Getenv(common.EnvKeyDashPlannedMinutes), 64); err == nil {
		engine.Params.PlannedMinutesPerDay = plannedMinutes
	}

	if err := engine.Threshold.Load(); err != nil {
		logger.Warn("Could not load saved thresholds, using defaults", zap.Error(err))
	}

	if selected, err := engine.GetPreference(telemetry.PreferenceSelectedDevice); err == nil && selected != "" {
		engine.SwitchDevice(selected)
	}

	engine.StartTimers()
	defer engine.StopTimers()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if streamURL != "" {
		logger.Info("Connecting to vendor stream at " + streamURL)
		stream := transport.NewStreamClient(streamURL, func(deviceID string, evt telemetry.Event) {
			engine.Dispatch.Dispatch(deviceID, evt)
		})
		go stream.Run(ctx)
	}

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	rs := &dashHttp.RestfulServer{
		Server:           gin.Default(),
		Engine:           engine,
		Commands:         command.NewClient(commandBaseURL),
		RateLimiterStore: telemetry.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.Float64("default_rate", defaultRate),
		zap.Int64("default_burst", defaultBurst))

	go func() {
		<-ctx.Done()
		logger.Info("Shutting down")
		engine.StopTimers()
		time.Sleep(100 * time.Millisecond)
		os.Exit(0)
	}()

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
