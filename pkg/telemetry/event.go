package telemetry

import (
	"strconv"
	"time"
)

// Metric keys as delivered by the vendor stream.
const (
	MetricVibration      = "vibration"
	MetricPressure       = "pressure"
	MetricNoise          = "noise"
	MetricTemperature    = "temperature"
	MetricHumidity       = "humidity"
	MetricCO2            = "co2"
	MetricAirQuality     = "airQuality"
	MetricPM25           = "pm25"
	MetricUnits          = "units"
	MetricVentilation    = "ventilation"
	MetricMachineControl = "machineControl"
)

// Special sensorType markers that carry something other than a single
// metric reading.
const (
	SensorTypeProduct = "product"
	SensorTypePayload = "payload"
	SensorTypeTopic   = "topic"
)

// Event is one decoded frame from the transport collaborator.
type Event struct {
	SensorType string `json:"sensorType"`
	Value      any    `json:"value"`
	Timestamp  string `json:"timestamp,omitempty"`
}

type EventKind int

const (
	KindMalformed EventKind = iota
	KindProductBundle
	KindProductScan
	KindPayloadBundle
	KindTopicNotice
	KindSingleMetric
)

func (k EventKind) String() string {
	switch k {
	case KindProductBundle:
		return "product_bundle"
	case KindProductScan:
		return "product_scan"
	case KindPayloadBundle:
		return "payload_bundle"
	case KindTopicNotice:
		return "topic_notice"
	case KindSingleMetric:
		return "single_metric"
	default:
		return "malformed"
	}
}

type Product struct {
	ID   string
	Name string
}

// Classified is the tagged variant an Event decodes into. Exactly one of
// the payload fields is meaningful per Kind.
type Classified struct {
	Kind      EventKind
	Timestamp time.Time

	// KindSingleMetric
	Metric string
	Value  float64

	// KindPayloadBundle
	Metrics map[string]float64

	// KindProductBundle / KindProductScan
	Product *Product
}

// Classify decodes one inbound event into the closed variant. It never
// panics on malformed input; anything unrecognizable comes back as
// KindMalformed and the caller drops it.
func Classify(evt Event) Classified {
	c := Classified{Kind: KindMalformed, Timestamp: eventTime(evt.Timestamp)}

	switch evt.SensorType {
	case SensorTypeProduct:
		obj, ok := evt.Value.(map[string]any)
		if !ok {
			return c
		}
		entry, ok := obj["log"].(map[string]any)
		if !ok {
			return c
		}
		c.Kind = KindProductBundle
		c.Product = productFrom(entry)
		return c

	case SensorTypeTopic:
		if _, ok := evt.Value.(string); ok {
			c.Kind = KindTopicNotice
		}
		return c

	case SensorTypePayload:
		obj, ok := evt.Value.(map[string]any)
		if !ok {
			return c
		}
		return classifyBundle(obj, c)

	default:
		switch v := evt.Value.(type) {
		case string:
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				c.Kind = KindSingleMetric
				c.Metric = evt.SensorType
				c.Value = f
				return c
			}
			// routing hint delivered under a metric key, nothing to store
			c.Kind = KindTopicNotice
			return c
		case map[string]any:
			return classifyBundle(v, c)
		default:
			if f, ok := toFloat64(evt.Value); ok {
				c.Kind = KindSingleMetric
				c.Metric = evt.SensorType
				c.Value = f
			}
			return c
		}
	}
}

func classifyBundle(obj map[string]any, c Classified) Classified {
	if p := productFrom(obj); p.ID != "" || p.Name != "" {
		c.Kind = KindProductScan
		c.Product = p
		return c
	}

	metrics := make(map[string]float64)
	for key, raw := range obj {
		if f, ok := toFloat64(raw); ok {
			metrics[key] = f
		}
	}
	if len(metrics) == 0 {
		return c
	}
	c.Kind = KindPayloadBundle
	c.Metrics = metrics
	return c
}

func productFrom(obj map[string]any) *Product {
	p := &Product{}
	for _, key := range []string{"productId", "id"} {
		if s, ok := stringValue(obj[key]); ok {
			p.ID = s
			break
		}
	}
	for _, key := range []string{"productName", "name"} {
		if s, ok := stringValue(obj[key]); ok {
			p.Name = s
			break
		}
	}
	return p
}

func stringValue(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, s != ""
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	default:
		return "", false
	}
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func eventTime(raw string) time.Time {
	if raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t
		}
	}
	return time.Now()
}
