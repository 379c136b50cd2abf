// Package metrics exposes the Capture Service's Prometheus metrics:
// request counts, prediction-call duration, and the two per-second FPS
// gauges (camera_fps, prediction_fps), driven by a paired atomic-counter
// reporter that swaps each counter to zero once per second.
package metrics

import (
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	yolometrics "yolofeed/internal/metrics"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "yolo_capture_requests_total",
		Help: "Total number of requests handled by the capture service, by route.",
	}, []string{"route"})

	PredictionDurationMs = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "yolo_capture_prediction_duration_ms",
		Help:    "Duration of a prediction-client call in milliseconds, by route.",
		Buckets: yolometrics.GenerateBoundaries(15, 30, 60, 500, 1000),
	}, []string{"route"})

	CameraFPS = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "yolo_capture_camera_fps",
		Help: "Frames per second captured from the camera, by route.",
	}, []string{"route"})

	PredictionFPS = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "yolo_capture_prediction_fps",
		Help: "Predictions per second completed against the prediction service, by route.",
	}, []string{"route"})
)

// FrameCounters holds the two atomic tick counters the frame task and
// prediction task bump on every iteration. A separate reporter task
// swaps each to zero once per second and records the swapped value,
// compensating for reporter drift by dividing by the actually elapsed
// time rather than assuming an exact second.
type FrameCounters struct {
	route      string
	cameraN    atomic.Uint64
	predictN   atomic.Uint64
}

func NewFrameCounters(route string) *FrameCounters {
	return &FrameCounters{route: route}
}

// TickCamera records one captured frame.
func (f *FrameCounters) TickCamera() {
	f.cameraN.Add(1)
}

// TickPrediction records one completed prediction call.
func (f *FrameCounters) TickPrediction() {
	f.predictN.Add(1)
}

// RunReporter swaps both counters to zero once per second (one atomic
// Swap each, so no tick is lost between read and reset) and publishes
// FPS gauges, until shutdown fires.
func (f *FrameCounters) RunReporter(shutdown <-chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-shutdown:
			return
		case now := <-ticker.C:
			elapsed := now.Sub(last).Seconds()
			last = now
			if elapsed <= 0 {
				continue
			}

			cam := f.cameraN.Swap(0)
			pred := f.predictN.Swap(0)

			CameraFPS.WithLabelValues(f.route).Set(float64(cam) / elapsed)
			PredictionFPS.WithLabelValues(f.route).Set(float64(pred) / elapsed)
		}
	}
}
