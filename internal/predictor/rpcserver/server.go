// Package rpcserver implements the Prediction Service's gRPC surface:
// the YoloService contract generated into api/yolo/v1, wired through
// the image codec, inference pool and postprocessor.
package rpcserver

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	yolov1 "yolofeed/api/yolo/v1"
	"yolofeed/internal/imaging"
	"yolofeed/internal/predictor/inference"
	"yolofeed/internal/predictor/labels"
	"yolofeed/internal/predictor/metrics"
	"yolofeed/internal/predictor/postprocess"
	"yolofeed/internal/yoloerr"
)

// Server implements yolov1.YoloServiceServer.
type Server struct {
	yolov1.UnimplementedYoloServiceServer

	pool           *inference.Pool
	labels         *labels.Store
	minProbability float32
	log            *logrus.Entry
}

func New(pool *inference.Pool, labelStore *labels.Store, minProbability float32, log *logrus.Entry) *Server {
	return &Server{pool: pool, labels: labelStore, minProbability: minProbability, log: log}
}

// Predict decodes the incoming JPEG/PNG frame, runs it through the
// inference pool, decodes the output tensor into bounding boxes and
// returns them with the caller's timestamp echoed back unchanged.
func (s *Server) Predict(ctx context.Context, req *yolov1.ImageFrame) (*yolov1.PredictionBatch, error) {
	start := time.Now()

	img, err := imaging.Decode(req.GetImageData())
	if err != nil {
		s.log.WithError(err).Warn("predict: decode failed")
		metrics.RequestsTotal.WithLabelValues("Predict", "invalid_argument").Inc()
		return nil, mapErr(err)
	}

	tensor, origW, origH := imaging.Preprocess(img)

	output, err := s.pool.Infer(tensor)
	if err != nil {
		s.log.WithError(err).Error("predict: inference failed")
		metrics.RequestsTotal.WithLabelValues("Predict", "internal").Inc()
		return nil, mapErr(err)
	}

	boxes := postprocess.Decode(output, s.pool.NumClasses(), s.pool.NumAnchors(), origW, origH, s.minProbability)

	metrics.PredictionDurationMs.Observe(float64(time.Since(start).Milliseconds()))
	metrics.RequestsTotal.WithLabelValues("Predict", "ok").Inc()

	return &yolov1.PredictionBatch{
		Detections: boxes,
		Timestamp:  req.GetTimestamp(),
	}, nil
}

// GetYoloClassLabels returns the class-id -> (name, color) table loaded
// at startup.
func (s *Server) GetYoloClassLabels(ctx context.Context, _ *yolov1.Empty) (*yolov1.YoloClassLabels, error) {
	metrics.RequestsTotal.WithLabelValues("GetYoloClassLabels", "ok").Inc()
	return &yolov1.YoloClassLabels{ClassLabels: s.labels.All()}, nil
}

// mapErr translates a yoloerr.Kind into the gRPC status code Predict's
// callers expect: a bad frame is the caller's fault (InvalidArgument),
// an inference failure is ours (Internal).
func mapErr(err error) error {
	switch {
	case yoloerr.As(err, yoloerr.DecodeError):
		return status.Error(codes.InvalidArgument, err.Error())
	case yoloerr.As(err, yoloerr.InferenceError):
		return status.Error(codes.Internal, err.Error())
	default:
		return status.Error(codes.Unknown, err.Error())
	}
}
