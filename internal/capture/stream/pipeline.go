// Package stream wires the capture source and the prediction client
// into two cooperating tasks: the frame task (capture, publish raw,
// annotate, publish annotated) and the prediction task (subscribe to
// raw frames, call the prediction client, update the Detection
// Snapshot), cooperating through the broadcast fan-outs and the
// Snapshot cell.
package stream

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"

	"yolofeed/internal/broadcast"
	"yolofeed/internal/capture/metrics"
	"yolofeed/internal/capture/predictclient"
	"yolofeed/internal/capture/source"
	"yolofeed/internal/capture/state"
	"yolofeed/internal/imaging"
	"yolofeed/internal/retry"
	"yolofeed/internal/yoloerr"
)

const annotatedBroadcastBuffer = 32

// Pipeline wires the capture source, the prediction client and the
// detection snapshot into two cooperating tasks: one renders frames,
// the other keeps the snapshot fresh.
type Pipeline struct {
	src       *source.Source
	client    *predictclient.Client
	snapshot  *state.Snapshot
	Annotated *broadcast.Broadcast

	streamDelay     time.Duration
	predictionDelay time.Duration
	retrySchedule   retry.Schedule
	failures        retry.ConsecutiveFailureTracker
	counters        *metrics.FrameCounters

	log *logrus.Entry
}

func New(src *source.Source, client *predictclient.Client, snapshot *state.Snapshot, streamFps, predictionFps int, retrySchedule retry.Schedule, maxConsecutiveFailures int, log *logrus.Entry) *Pipeline {
	return &Pipeline{
		src:             src,
		client:          client,
		snapshot:        snapshot,
		Annotated:       broadcast.New(annotatedBroadcastBuffer),
		streamDelay:     time.Second / time.Duration(streamFps),
		predictionDelay: time.Second / time.Duration(predictionFps),
		retrySchedule:   retrySchedule,
		failures:        retry.ConsecutiveFailureTracker{Max: maxConsecutiveFailures},
		counters:        metrics.NewFrameCounters("camera"),
		log:             log,
	}
}

// RunMetricsReporter runs the per-second FPS reporter until shutdown.
func (p *Pipeline) RunMetricsReporter(shutdown <-chan struct{}) {
	p.counters.RunReporter(shutdown)
}

// RunFrameTask is the periodic render loop: capture, publish raw,
// annotate the latest snapshot, publish annotated. Runs until shutdown
// is signaled.
func (p *Pipeline) RunFrameTask(shutdown <-chan struct{}) {
	ticker := time.NewTicker(p.streamDelay)
	defer ticker.Stop()

	for {
		select {
		case <-shutdown:
			p.Annotated.Close()
			return
		case <-ticker.C:
			p.tickFrame()
		}
	}
}

func (p *Pipeline) tickFrame() {
	frame, ok := p.src.CaptureFrame()
	if !ok {
		return
	}
	defer frame.Close()

	p.counters.TickCamera()

	if !p.src.RawFrame.HasSubscribers() {
		p.log.Debug("no subscribers for raw frame broadcast")
	}
	if _, err := p.src.EncodeAndPublish(frame); err != nil {
		p.log.WithError(err).Warn("encode raw frame failed")
		return
	}

	detections := p.snapshot.Clone()
	boxes := make([]imaging.AnnotatedBox, 0, len(detections))
	for _, d := range detections {
		boxes = append(boxes, imaging.AnnotatedBox{
			X1: d.X1, Y1: d.Y1, X2: d.X2, Y2: d.Y2,
			Label:      d.ClassLabel,
			Red:        d.Red,
			Green:      d.Green,
			Blue:       d.Blue,
			Confidence: d.Confidence,
		})
	}

	annotated := source.Annotate(frame, boxes)
	defer annotated.Close()

	jpegBytes, err := encodeJPEG(annotated)
	if err != nil {
		p.log.WithError(err).Warn("encode annotated frame failed")
		return
	}
	p.Annotated.Publish(jpegBytes)
}

// RunPredictionTask subscribes to raw frames and repeatedly submits
// them to the prediction client, updating the Detection Snapshot on
// success and applying retry/backoff on failure.
func (p *Pipeline) RunPredictionTask(ctx context.Context, shutdown <-chan struct{}) {
	sub := p.src.RawFrame.Subscribe()
	defer sub.Unsubscribe()

	for {
		select {
		case <-shutdown:
			return
		default:
		}

		data, err, ok := sub.Recv()
		if !ok {
			return
		}
		if err != nil {
			p.log.WithError(err).Info("prediction task lagged, resubscribing")
			continue
		}

		if p.predictOnce(ctx, data) {
			// Persistent failure: the stream continues to serve stale
			// detections, but this task exits rather than hammering a
			// prediction service that's clearly down.
			return
		}

		select {
		case <-shutdown:
			return
		case <-time.After(p.predictionDelay):
		}
	}
}

// predictOnce retries a single frame against the prediction client per
// p.retrySchedule before counting the iteration as one failure against
// the consecutive-failure ceiling. It reports whether that ceiling was
// reached, in which case the caller must stop the loop.
func (p *Pipeline) predictOnce(ctx context.Context, jpegBytes []byte) bool {
	start := time.Now()

	var detections []predictclient.BoundingBoxWithLabel
	err := p.retrySchedule.Do(ctx, func(callCtx context.Context) error {
		var err error
		detections, err = p.client.Predict(callCtx, jpegBytes)
		return err
	})

	metrics.RequestsTotal.WithLabelValues("camera").Inc()
	metrics.PredictionDurationMs.WithLabelValues("camera").Observe(float64(time.Since(start).Milliseconds()))

	if err != nil {
		p.log.WithError(err).Warn("prediction failed after exhausting retries")
		if p.failures.Fail() {
			p.log.Error("max consecutive prediction failures reached, stopping prediction task")
			return true
		}
		return false
	}

	p.counters.TickPrediction()
	p.failures.Success()
	p.snapshot.Set(detections)
	return false
}

func encodeJPEG(frame gocv.Mat) ([]byte, error) {
	buf, err := gocv.IMEncode(gocv.JPEGFileExt, frame)
	if err != nil {
		return nil, yoloerr.New(yoloerr.EncodeError, "stream.encodeJPEG", err)
	}
	defer buf.Close()
	return append([]byte(nil), buf.GetBytes()...), nil
}
