// floorload replays a synthetic factory-floor event stream against the
// HTTP ingest surface: single-metric readings, multi-key payload
// bundles and product scans for a set of devices.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

var maxDevices int = 200
var eventsPerDevice int = 50
var httpHostPort string = "127.0.0.1:1080"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func main() {
	deviceIDs := make([]string, maxDevices)
	for i := 0; i < maxDevices; i++ {
		deviceIDs[i] = uuid.NewString()
	}
	fmt.Printf("generated %v device IDs\n", maxDevices)

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	startTime := time.Now()
	wg := sync.WaitGroup{}
	for i := 0; i < maxDevices; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			selectDevice(deviceIDs[i])
			for j := 0; j < eventsPerDevice; j++ {
				postEvent(deviceIDs[i], randomEvent())
				time.Sleep(time.Duration(10+rnd.Int31n(50)) * time.Millisecond)
			}
		}()
	}
	wg.Wait()
	usedTime := time.Since(startTime)

	total := maxDevices * eventsPerDevice
	fmt.Printf(
		"delivered %v events: used time=%v seconds, throughput=%v events/second\n",
		total, usedTime.Seconds(), float64(total)/usedTime.Seconds(),
	)
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := math.Pow10(decimal)
	return math.Round(val*multiplier) / multiplier
}

func randomEvent() map[string]any {
	now := time.Now().Format(time.RFC3339)
	switch rnd.Int31n(4) {
	case 0:
		return map[string]any{
			"sensorType": "temperature",
			"value":      rndFloat64(15, 45, 2),
			"timestamp":  now,
		}
	case 1:
		return map[string]any{
			"sensorType": "payload",
			"value": map[string]any{
				"temperature": rndFloat64(15, 45, 2),
				"humidity":    rndFloat64(20, 90, 2),
				"co2":         rndFloat64(30, 90, 2),
			},
			"timestamp": now,
		}
	case 2:
		return map[string]any{
			"sensorType": "payload",
			"value": map[string]any{
				"productId":   uuid.NewString(),
				"productName": "widget",
			},
			"timestamp": now,
		}
	default:
		return map[string]any{
			"sensorType": "vibration",
			"value":      rndFloat64(0, 15, 2),
			"timestamp":  now,
		}
	}
}

func selectDevice(deviceID string) {
	resp, err := http.Post(fmt.Sprintf("http://%s/devices/%s/select", httpHostPort, deviceID), "application/json", nil)
	if err != nil {
		fmt.Printf("\nerror: %v\n", err)
		return
	}
	resp.Body.Close()
}

func postEvent(deviceID string, event map[string]any) {
	jsonData, _ := json.Marshal(event)
	resp, err := http.Post(
		fmt.Sprintf("http://%s/devices/%s/events", httpHostPort, deviceID),
		"application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		fmt.Printf("\nerror: %v\n", err)
		return
	}
	resp.Body.Close()
}
