// Package predictclient is a gRPC client for the Prediction Service: a
// connection opened with retry/jitter at startup, a label cache
// fetched once via GetYoloClassLabels, and a predict() call that joins
// returned boxes against that cache.
package predictclient

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	yolov1 "yolofeed/api/yolo/v1"
	"yolofeed/internal/retry"
	"yolofeed/internal/yoloerr"
)

// BoundingBoxWithLabel joins a returned detection with its class's
// name and color, falling back to "Unknown class <id>"/black when the
// class id is out of range of the cached label table.
type BoundingBoxWithLabel struct {
	ClassId    uint32
	ClassLabel string
	Red        uint32
	Green      uint32
	Blue       uint32
	Confidence float32
	X1, Y1, X2, Y2 float32
}

// Client wraps yolov1.YoloServiceClient with the retrying connect and
// label-cache-on-connect behavior the Capture Service needs.
type Client struct {
	conn   *grpc.ClientConn
	client yolov1.YoloServiceClient
	labels []*yolov1.ColorLabel
}

// ConnectSchedule is the connect-time retry schedule: initial 50ms,
// factor 2, capped at 1s, 10 retries after the first attempt (11
// attempts in all), 1s per-attempt timeout, jitter
// in [0.9,1.1) so a fleet of capture services doesn't retry in lockstep.
func ConnectSchedule() retry.Schedule {
	return retry.Schedule{
		InitialDelay:      50 * time.Millisecond,
		BackoffFactor:     2,
		MaxDelay:          time.Second,
		MaxRetries:        10,
		PerAttemptTimeout: time.Second,
	}
}

// Dial connects to addr with retry per ConnectSchedule, then caches the
// label table via one GetYoloClassLabels call.
func Dial(ctx context.Context, addr string) (*Client, error) {
	c := &Client{}
	sched := ConnectSchedule()

	err := sched.Do(ctx, func(callCtx context.Context) error {
		conn, err := grpc.DialContext(callCtx, addr,
			grpc.WithTransportCredentials(insecure.NewCredentials()),
			grpc.WithBlock(),
		)
		if err != nil {
			return err
		}
		c.conn = conn
		c.client = yolov1.NewYoloServiceClient(conn)
		return nil
	})
	if err != nil {
		return nil, yoloerr.New(yoloerr.RpcTransport, "predictclient.Dial", fmt.Errorf("connect to %s: %w", addr, err))
	}

	labelCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	resp, err := c.client.GetYoloClassLabels(labelCtx, &yolov1.Empty{})
	if err != nil {
		c.conn.Close()
		return nil, yoloerr.New(yoloerr.RpcTransport, "predictclient.Dial", fmt.Errorf("fetch labels: %w", err))
	}
	c.labels = resp.GetClassLabels()

	return c, nil
}

// Predict sends jpegBytes to the prediction service and joins the
// returned boxes against the cached label table. Safe under concurrent
// callers: the underlying grpc.ClientConn is itself safe for concurrent
// use, and the label cache is read-only after Dial.
func (c *Client) Predict(ctx context.Context, jpegBytes []byte) ([]BoundingBoxWithLabel, error) {
	req := &yolov1.ImageFrame{
		ImageData: jpegBytes,
		Timestamp: time.Now().UnixMilli(),
	}

	resp, err := c.client.Predict(ctx, req)
	if err != nil {
		return nil, yoloerr.New(yoloerr.RpcTransport, "predictclient.Predict", err)
	}

	out := make([]BoundingBoxWithLabel, 0, len(resp.GetDetections()))
	for _, det := range resp.GetDetections() {
		out = append(out, c.join(det))
	}
	return out, nil
}

func (c *Client) join(det *yolov1.BoundingBox) BoundingBoxWithLabel {
	b := BoundingBoxWithLabel{
		ClassId:    det.GetClassId(),
		Confidence: det.GetConfidence(),
		X1:         det.GetX1(),
		Y1:         det.GetY1(),
		X2:         det.GetX2(),
		Y2:         det.GetY2(),
	}

	if int(det.GetClassId()) < len(c.labels) {
		label := c.labels[det.GetClassId()]
		b.ClassLabel = label.GetLabel()
		b.Red = label.GetRed()
		b.Green = label.GetGreen()
		b.Blue = label.GetBlue()
	} else {
		b.ClassLabel = fmt.Sprintf("Unknown class %d", det.GetClassId())
		b.Red, b.Green, b.Blue = 0, 0, 0
	}
	return b
}

// Close tears down the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
