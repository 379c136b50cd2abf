package server

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"yolofeed/internal/capture/metrics"
	"yolofeed/internal/imaging"
)

// handleVideoFeed streams the annotated-frame broadcast as
// multipart/x-mixed-replace. The stream ends when the broadcast closes
// (shutdown) or the client disconnects.
func (s *Server) handleVideoFeed(c *gin.Context) {
	metrics.RequestsTotal.WithLabelValues("video_feed").Inc()

	sub := s.pipeline.Annotated.Subscribe()
	defer sub.Unsubscribe()

	c.Writer.Header().Set("Content-Type", "multipart/x-mixed-replace; boundary=frame")
	c.Writer.WriteHeader(http.StatusOK)
	flusher, canFlush := c.Writer.(http.Flusher)

	for {
		select {
		case <-c.Request.Context().Done():
			return
		default:
		}

		data, err, ok := sub.Recv()
		if !ok {
			return
		}
		if err != nil {
			s.logger.WithError(err).Debug("video feed subscriber lagged")
		}

		header := fmt.Sprintf("--frame\r\nContent-Type: image/jpeg\r\nContent-Length: %d\r\n\r\n", len(data))
		if _, werr := io.WriteString(c.Writer, header); werr != nil {
			return
		}
		if _, werr := c.Writer.Write(data); werr != nil {
			return
		}
		if _, werr := io.WriteString(c.Writer, "\r\n"); werr != nil {
			return
		}
		if canFlush {
			flusher.Flush()
		}
	}
}

// handlePredictImage runs the one-shot decode -> predict -> annotate ->
// encode path against a posted image.
func (s *Server) handlePredictImage(c *gin.Context) {
	start := time.Now()
	const route = "predict_image"

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(route).Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	img, err := imaging.Decode(body)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(route).Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	detections, err := s.client.Predict(c.Request.Context(), body)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(route).Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

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

	annotated := imaging.Annotate(img, boxes)
	jpegBytes, err := imaging.EncodeJPEG(annotated)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(route).Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	metrics.RequestsTotal.WithLabelValues(route).Inc()
	metrics.PredictionDurationMs.WithLabelValues(route).Observe(float64(time.Since(start).Milliseconds()))
	c.Data(http.StatusOK, "image/jpeg", jpegBytes)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "Available"})
}
