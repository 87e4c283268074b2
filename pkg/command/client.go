package command

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"factorydash.xyz/telemetry-engine/pkg/common"
)

// Category of a state-detail update sent back to the vendor backend.
type Category string

const (
	CategoryMachineControl Category = "machineControl"
	CategoryControlMode    Category = "controlMode"
	CategoryVentilation    Category = "ventilation"
)

// MachineCommand is an outbound control verb.
type MachineCommand string

const (
	CommandRun  MachineCommand = "RUN"
	CommandStop MachineCommand = "STOP"
	CommandIdle MachineCommand = "IDLE"
)

func (c MachineCommand) Valid() bool {
	switch c {
	case CommandRun, CommandStop, CommandIdle:
		return true
	}
	return false
}

// Client talks to the vendor HTTP API. Command failures are reported to
// the caller, never retried here; the caller decides whether local
// state commits.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// SendMachineControlCommand posts a RUN/STOP/IDLE command and reports
// whether the backend accepted it.
func (c *Client) SendMachineControlCommand(ctx context.Context, deviceID string, cmd MachineCommand) bool {
	logger := common.GetLoggerWith(common.LoggerNameCommandClient)

	if !cmd.Valid() {
		logger.Warn("Rejected unknown machine command",
			zap.String("device_id", deviceID), zap.String("command", string(cmd)))
		return false
	}

	err := c.post(ctx, fmt.Sprintf("/devices/%s/machine-control", deviceID), map[string]any{
		"command":   string(cmd),
		"timestamp": time.Now().Format(time.RFC3339),
	})
	if err != nil {
		logger.Warn("Machine control command failed",
			zap.String("device_id", deviceID), zap.String("command", string(cmd)), zap.Error(err))
		return false
	}

	logger.Info("Machine control command accepted",
		zap.String("device_id", deviceID), zap.String("command", string(cmd)))
	return true
}

// UpdateStateDetails posts a state-detail payload for the given
// category. The payload always carries an ISO timestamp.
func (c *Client) UpdateStateDetails(ctx context.Context, deviceID string, category Category, payload map[string]any) error {
	body := make(map[string]any, len(payload)+1)
	for k, v := range payload {
		body[k] = v
	}
	body["timestamp"] = time.Now().Format(time.RFC3339)

	return c.post(ctx, fmt.Sprintf("/devices/%s/state/%s", deviceID, category), body)
}

func (c *Client) post(ctx context.Context, path string, payload map[string]any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("backend rejected command: status %d", resp.StatusCode)
	}
	return nil
}
