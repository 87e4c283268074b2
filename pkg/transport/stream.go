package transport

import (
	"context"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"factorydash.xyz/telemetry-engine/pkg/common"
	"factorydash.xyz/telemetry-engine/pkg/telemetry"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024

	initialBackoff = time.Second
	maxBackoff     = 30 * time.Second
)

// Frame is one raw message from the vendor stream. Either Topic is set
// and resolves to a device/sensor pair, or SensorType names the sensor
// directly together with DeviceID.
type Frame struct {
	Topic      string `json:"topic,omitempty"`
	DeviceID   string `json:"deviceId,omitempty"`
	SensorType string `json:"sensorType,omitempty"`
	Value      any    `json:"value"`
	Timestamp  string `json:"timestamp,omitempty"`
}

// EventHandler receives each decoded event, in arrival order, from a
// single reader goroutine.
type EventHandler func(deviceID string, evt telemetry.Event)

// StreamClient maintains the persistent connection to the vendor cloud
// and feeds decoded events to the handler. Reconnects with backoff
// until the context is cancelled.
type StreamClient struct {
	URL     string
	Handler EventHandler

	dialer *websocket.Dialer
}

func NewStreamClient(url string, handler EventHandler) *StreamClient {
	return &StreamClient{
		URL:     url,
		Handler: handler,
		dialer:  websocket.DefaultDialer,
	}
}

// ResolveTopic maps a routing topic of the form
// "factory/<deviceID>/<sensorKey>" to its device/sensor pair.
func ResolveTopic(topic string) (deviceID, sensorKey string, ok bool) {
	parts := strings.Split(topic, "/")
	if len(parts) < 3 || parts[1] == "" || parts[2] == "" {
		return "", "", false
	}
	return parts[1], parts[2], true
}

// Run blocks until ctx is done, reconnecting as needed.
func (c *StreamClient) Run(ctx context.Context) {
	logger := common.GetLoggerWith(common.LoggerNameStreamClient)

	backoff := initialBackoff
	for {
		if ctx.Err() != nil {
			return
		}

		conn, _, err := c.dialer.DialContext(ctx, c.URL, nil)
		if err != nil {
			logger.Warn("Stream dial failed, will retry",
				zap.String("url", c.URL), zap.Duration("backoff", backoff), zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			backoff = min(backoff*2, maxBackoff)
			continue
		}

		logger.Info("Stream connected", zap.String("url", c.URL))
		backoff = initialBackoff

		if err := c.readLoop(ctx, conn); err != nil {
			logger.Warn("Stream read loop ended", zap.Error(err))
		}
		conn.Close()
	}
}

func (c *StreamClient) readLoop(ctx context.Context, conn *websocket.Conn) error {
	logger := common.GetLoggerWith(common.LoggerNameStreamClient)

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	done := make(chan struct{})
	defer close(done)

	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
					time.Now().Add(writeWait))
				conn.Close()
				return
			case <-ticker.C:
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()

	for {
		var frame Frame
		if err := conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				return err
			}
			return nil
		}

		deviceID, evt, ok := DecodeFrame(frame)
		if !ok {
			logger.Debug("Dropped unroutable frame", zap.Reflect("frame", frame))
			continue
		}
		c.Handler(deviceID, evt)
	}
}

// DecodeFrame turns a raw frame into a routed event. Frames that name
// neither a resolvable topic nor a device id cannot be routed.
func DecodeFrame(frame Frame) (string, telemetry.Event, bool) {
	deviceID := frame.DeviceID
	sensorType := frame.SensorType

	if frame.Topic != "" {
		topicDevice, sensorKey, ok := ResolveTopic(frame.Topic)
		if ok {
			if deviceID == "" {
				deviceID = topicDevice
			}
			if sensorType == "" {
				sensorType = sensorKey
			}
		}
	}

	if deviceID == "" || sensorType == "" {
		return "", telemetry.Event{}, false
	}

	return deviceID, telemetry.Event{
		SensorType: sensorType,
		Value:      frame.Value,
		Timestamp:  frame.Timestamp,
	}, true
}
