// Package service wires the Prediction Service's components together:
// labels store, inference pool and gRPC server, under a simple
// construct/Start/Stop lifecycle.
package service

import (
	"context"
	"fmt"
	"net"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	yolov1 "yolofeed/api/yolo/v1"
	"yolofeed/internal/predictor/config"
	"yolofeed/internal/predictor/inference"
	"yolofeed/internal/predictor/labels"
	"yolofeed/internal/predictor/rpcserver"
	"yolofeed/pkg/log"
)

type Service struct {
	conf   *config.Config
	ctx    context.Context
	cancel context.CancelFunc
	logger *logrus.Entry

	pool       *inference.Pool
	grpcServer *grpc.Server
	listener   net.Listener
}

func New(conf *config.Config) (*Service, error) {
	ctx, cancel := context.WithCancel(context.Background())
	logger := log.GetLogger(ctx).WithField("component", "predictor")

	labelStore, err := labels.NewStore(conf.Labels.Path())
	if err != nil {
		cancel()
		return nil, fmt.Errorf("load labels: %w", err)
	}
	numClasses := len(labelStore.All())

	pool, err := inference.NewPool(conf.Model.Path(), conf.Model.NumInstances, numClasses, numAnchors(numClasses))
	if err != nil {
		cancel()
		return nil, fmt.Errorf("init inference pool: %w", err)
	}

	lis, err := net.Listen("tcp", conf.Server.Addr())
	if err != nil {
		cancel()
		pool.Close()
		return nil, fmt.Errorf("listen on %s: %w", conf.Server.Addr(), err)
	}

	grpcServer := grpc.NewServer()
	yolov1.RegisterYoloServiceServer(grpcServer, rpcserver.New(pool, labelStore, conf.Model.MinProbability, logger))
	reflection.Register(grpcServer)

	return &Service{
		conf:       conf,
		ctx:        ctx,
		cancel:     cancel,
		logger:     logger,
		pool:       pool,
		grpcServer: grpcServer,
		listener:   lis,
	}, nil
}

// numAnchors is fixed by the YOLOv8 export for a 640x640 input; kept as
// a function rather than a constant so it can vary with model config in
// the future without touching callers.
func numAnchors(numClasses int) int {
	return 8400
}

func (s *Service) Start() {
	s.logger.WithField("addr", s.conf.Server.Addr()).Info("prediction service listening")
	if err := s.grpcServer.Serve(s.listener); err != nil {
		s.logger.WithError(err).Error("grpc server stopped")
	}
}

func (s *Service) Stop() {
	s.grpcServer.GracefulStop()
	s.pool.Close()
	s.cancel()
	s.logger.Info("prediction service stopped")
}
