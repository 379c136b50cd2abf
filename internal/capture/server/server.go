// Package server implements the capture service's HTTP surface: the
// MJPEG video feed, the one-shot predict-image endpoint, health and
// metrics, bootstrapped on gin with RequestId/Logger middleware and
// graceful Start/Shutdown.
package server

import (
	"context"
	goerrors "errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"yolofeed/internal/capture/predictclient"
	"yolofeed/internal/capture/stream"
)

const httpXRequestId = "X-Request-Id"

// Server owns the gin engine and the collaborators handlers need: the
// stream pipeline (for the raw/annotated broadcasts) and the
// prediction client (for the one-shot predict_image route).
type Server struct {
	addr       string
	pipeline   *stream.Pipeline
	client     *predictclient.Client
	httpServer *http.Server
	logger     *logrus.Entry
}

func New(addr string, pipeline *stream.Pipeline, client *predictclient.Client, logger *logrus.Entry) *Server {
	return &Server{
		addr:     addr,
		pipeline: pipeline,
		client:   client,
		logger:   logger,
	}
}

func RequestId() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := c.GetHeader(httpXRequestId)
		if requestId == "" {
			requestId = strings.ReplaceAll(uuid.New().String(), "-", "")
		}
		c.Header(httpXRequestId, requestId)
		c.Next()
	}
}

func Logger(log *logrus.Entry) gin.HandlerFunc {
	return func(c *gin.Context) {
		t := time.Now()
		c.Next()
		log.WithFields(logrus.Fields{
			"ip":      c.ClientIP(),
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(t),
		}).Info("http request")
	}
}

// Start runs the HTTP server until Shutdown is called or it fails. It
// is meant to be run on its own goroutine, matching the predictor
// service's gRPC Start/Stop pair.
func (s *Server) Start() {
	router := s.SetUpRouter()
	s.httpServer = &http.Server{
		Addr:    s.addr,
		Handler: router,
	}

	s.logger.Infof("starting http server on %s", s.addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !goerrors.Is(err, http.ErrServerClosed) {
		s.logger.WithError(err).Fatal("http server failed")
	}
}

func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.WithError(err).Error("http server forced to shutdown")
	}
}
