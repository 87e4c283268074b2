package telemetry

import "time"

// HistoryCap bounds every per-metric series; older points fall off.
const HistoryCap = 1000

type Point struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// BoundedHistory keeps a per-device, per-metric ring of readings.
// Appends are O(1); reads return a newest-first copy.
type BoundedHistory struct {
	cap    int
	series map[string]map[string]*pointRing
}

type pointRing struct {
	buf  []Point
	head int
	size int
}

func NewBoundedHistory() *BoundedHistory {
	return &BoundedHistory{
		cap:    HistoryCap,
		series: make(map[string]map[string]*pointRing),
	}
}

func (h *BoundedHistory) Append(deviceID, metric string, p Point) {
	byMetric, ok := h.series[deviceID]
	if !ok {
		byMetric = make(map[string]*pointRing)
		h.series[deviceID] = byMetric
	}
	r, ok := byMetric[metric]
	if !ok {
		r = &pointRing{}
		byMetric[metric] = r
	}
	r.append(p, h.cap)
}

// Read returns the stored sequence newest-first. Absent keys behave as
// an empty series.
func (h *BoundedHistory) Read(deviceID, metric string) []Point {
	r := h.ring(deviceID, metric)
	if r == nil {
		return []Point{}
	}
	out := make([]Point, r.size)
	for i := range out {
		out[i] = r.buf[(r.head+r.size-1-i)%r.size]
	}
	return out
}

func (h *BoundedHistory) Len(deviceID, metric string) int {
	r := h.ring(deviceID, metric)
	if r == nil {
		return 0
	}
	return r.size
}

func (h *BoundedHistory) ring(deviceID, metric string) *pointRing {
	byMetric, ok := h.series[deviceID]
	if !ok {
		return nil
	}
	return byMetric[metric]
}

func (r *pointRing) append(p Point, cap int) {
	if r.size < cap {
		r.buf = append(r.buf, p)
		r.size++
		return
	}
	// full: overwrite oldest
	r.buf[r.head] = p
	r.head = (r.head + 1) % cap
}
