// Package metrics exposes the Prediction Service's Prometheus metrics:
// request counts and inference duration. A lighter counterpart of
// internal/capture/metrics, grounded the same way on
// webcam_capture/src/telemetry.rs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	yolometrics "yolofeed/internal/metrics"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "yolo_predictor_requests_total",
		Help: "Total number of gRPC requests handled by the prediction service.",
	}, []string{"method", "status"})

	PredictionDurationMs = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "yolo_predictor_prediction_duration_ms",
		Help:    "Duration of a single Predict call in milliseconds.",
		Buckets: yolometrics.GenerateBoundaries(15, 30, 60, 500, 1000),
	})
)
