// Package service wires the Capture Service's components together:
// the capture source, the prediction client, the snapshot, the stream
// pipeline and the HTTP surface, with the same construct/Start/Stop
// lifecycle shape as internal/predictor/service.
package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"yolofeed/internal/capture/config"
	"yolofeed/internal/capture/predictclient"
	"yolofeed/internal/capture/server"
	"yolofeed/internal/capture/source"
	"yolofeed/internal/capture/state"
	"yolofeed/internal/capture/stream"
	"yolofeed/pkg/log"
)

type Service struct {
	conf   *config.Config
	ctx    context.Context
	cancel context.CancelFunc
	logger *logrus.Entry

	src      *source.Source
	client   *predictclient.Client
	pipeline *stream.Pipeline
	http     *server.Server

	shutdown chan struct{}
}

func New(conf *config.Config) (*Service, error) {
	ctx, cancel := context.WithCancel(context.Background())
	logger := log.GetLogger(ctx).WithField("component", "capture")

	src, err := source.Open(conf.Camera.DeviceIndex)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("open capture device: %w", err)
	}

	client, err := predictclient.Dial(ctx, conf.PredictionService.Addr())
	if err != nil {
		cancel()
		src.Close()
		return nil, fmt.Errorf("connect to prediction service: %w", err)
	}

	snapshot := state.New()
	pipeline := stream.New(src, client, snapshot, conf.Camera.StreamFps, conf.Camera.PredictionFps, conf.Retry.Schedule(), conf.Retry.MaxConsecutive, logger)
	httpServer := server.New(conf.Server.Addr(), pipeline, client, logger)

	return &Service{
		conf:     conf,
		ctx:      ctx,
		cancel:   cancel,
		logger:   logger,
		src:      src,
		client:   client,
		pipeline: pipeline,
		http:     httpServer,
		shutdown: make(chan struct{}),
	}, nil
}

// Start runs the frame task, prediction task, FPS reporter and HTTP
// surface concurrently. It blocks until Stop closes the shutdown
// channel and the HTTP server itself returns.
func (s *Service) Start() {
	go s.pipeline.RunFrameTask(s.shutdown)
	go s.pipeline.RunPredictionTask(s.ctx, s.shutdown)
	go s.pipeline.RunMetricsReporter(s.shutdown)

	s.logger.WithField("addr", s.conf.Server.Addr()).Info("capture service listening")
	s.http.Start()
}

func (s *Service) Stop() {
	close(s.shutdown)
	s.http.Stop()
	s.client.Close()
	s.src.Close()
	s.cancel()
	s.logger.Info("capture service stopped")
}
