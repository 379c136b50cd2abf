package predictclient

import (
	"context"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	yolov1 "yolofeed/api/yolo/v1"
)

type fakeYoloServer struct {
	yolov1.UnimplementedYoloServiceServer
	labels []*yolov1.ColorLabel
}

func (f *fakeYoloServer) GetYoloClassLabels(ctx context.Context, _ *yolov1.Empty) (*yolov1.YoloClassLabels, error) {
	return &yolov1.YoloClassLabels{ClassLabels: f.labels}, nil
}

func (f *fakeYoloServer) Predict(ctx context.Context, req *yolov1.ImageFrame) (*yolov1.PredictionBatch, error) {
	return &yolov1.PredictionBatch{
		Detections: []*yolov1.BoundingBox{
			{ClassId: 0, Confidence: 0.95, X1: 1, Y1: 2, X2: 3, Y2: 4},
			{ClassId: 99, Confidence: 0.50, X1: 5, Y1: 6, X2: 7, Y2: 8}, // out of range of labels
		},
		Timestamp: req.GetTimestamp(),
	}, nil
}

func startFakeServer(t *testing.T, labels []*yolov1.ColorLabel) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	srv := grpc.NewServer()
	yolov1.RegisterYoloServiceServer(srv, &fakeYoloServer{labels: labels})
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)
	return lis.Addr().String()
}

func TestDial_CachesLabels(t *testing.T) {
	addr := startFakeServer(t, []*yolov1.ColorLabel{
		{Label: "person", Red: 255, Green: 0, Blue: 0},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, err := Dial(ctx, addr)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer c.Close()

	if len(c.labels) != 1 || c.labels[0].GetLabel() != "person" {
		t.Fatalf("labels = %+v, want [person]", c.labels)
	}
}

func TestPredict_JoinsKnownAndUnknownClasses(t *testing.T) {
	addr := startFakeServer(t, []*yolov1.ColorLabel{
		{Label: "person", Red: 255, Green: 0, Blue: 0},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, err := Dial(ctx, addr)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer c.Close()

	boxes, err := c.Predict(ctx, []byte("fake-jpeg"))
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if len(boxes) != 2 {
		t.Fatalf("len(boxes) = %d, want 2", len(boxes))
	}

	known := boxes[0]
	if known.ClassLabel != "person" || known.Red != 255 {
		t.Errorf("known box = %+v, want label=person red=255", known)
	}

	unknown := boxes[1]
	if unknown.ClassLabel != "Unknown class 99" {
		t.Errorf("unknown box label = %q, want %q", unknown.ClassLabel, "Unknown class 99")
	}
	if unknown.Red != 0 || unknown.Green != 0 || unknown.Blue != 0 {
		t.Errorf("unknown box color = (%d,%d,%d), want (0,0,0)", unknown.Red, unknown.Green, unknown.Blue)
	}
}

func TestConnectRetry_FailsWhenNothingListening(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	sched := ConnectSchedule()
	sched.MaxRetries = 1
	sched.InitialDelay = time.Millisecond
	sched.MaxDelay = time.Millisecond
	sched.PerAttemptTimeout = 200 * time.Millisecond

	err := sched.Do(ctx, func(callCtx context.Context) error {
		_, err := grpc.DialContext(callCtx, "127.0.0.1:1", // nothing listens on port 1
			grpc.WithTransportCredentials(insecure.NewCredentials()),
			grpc.WithBlock(),
		)
		return err
	})
	if err == nil {
		t.Fatal("expected connect failure against an unreachable address")
	}
}
