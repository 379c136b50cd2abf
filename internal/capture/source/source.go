// Package source owns the local video device, read under an exclusive
// lock (gocv's VideoCapture is not reentrant) and published as raw
// JPEG on a broadcast fan-out.
package source

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"gocv.io/x/gocv"

	"yolofeed/internal/broadcast"
	"yolofeed/internal/imaging"
	"yolofeed/internal/yoloerr"
)

const rawBroadcastBuffer = 16

// Source owns the capture device and the raw-frame fan-out that feeds
// both the MJPEG stream and the prediction loop from a single read.
type Source struct {
	mu       sync.Mutex
	device   *gocv.VideoCapture
	frame    gocv.Mat
	RawFrame *broadcast.Broadcast
}

// Open opens local video device deviceIndex.
func Open(deviceIndex int) (*Source, error) {
	dev, err := gocv.OpenVideoCapture(deviceIndex)
	if err != nil {
		return nil, yoloerr.New(yoloerr.DeviceUnavailable, "source.Open", fmt.Errorf("open device %d: %w", deviceIndex, err))
	}
	return &Source{
		device:   dev,
		frame:    gocv.NewMat(),
		RawFrame: broadcast.New(rawBroadcastBuffer),
	}, nil
}

// CaptureFrame reads one frame under the device's exclusive lock. A
// false/empty read is not an error: the caller should skip the tick.
func (s *Source) CaptureFrame() (gocv.Mat, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ok := s.device.Read(&s.frame); !ok || s.frame.Empty() {
		return gocv.Mat{}, false
	}
	return s.frame.Clone(), true
}

// EncodeAndPublish JPEG-encodes frame and publishes it on RawFrame.
// Absence of subscribers is not an error: Publish is a no-op fan-out.
func (s *Source) EncodeAndPublish(frame gocv.Mat) ([]byte, error) {
	buf, err := gocv.IMEncode(gocv.JPEGFileExt, frame)
	if err != nil {
		return nil, yoloerr.New(yoloerr.EncodeError, "source.EncodeAndPublish", err)
	}
	defer buf.Close()

	data := append([]byte(nil), buf.GetBytes()...)
	s.RawFrame.Publish(data)
	return data, nil
}

// Annotate draws boxes onto frame using gocv's native drawing calls.
// gocv's color.RGBA{R,G,B,A} parameter to Rectangle/PutText is consumed
// in natural R,G,B field order, so unlike a raw OpenCV
// Scalar(blue,green,red) call, no channel swap is needed here.
func Annotate(frame gocv.Mat, boxes []imaging.AnnotatedBox) gocv.Mat {
	annotated := frame.Clone()
	for _, box := range boxes {
		c := color.RGBA{R: uint8(box.Red), G: uint8(box.Green), B: uint8(box.Blue), A: 255}
		label := imaging.Label(box.Label, box.Confidence)
		labelSize := gocv.GetTextSize(label, gocv.FontHersheySimplex, 0.5, 2)

		x1, y1 := int(box.X1), int(box.Y1)
		x2, y2 := int(box.X2), int(box.Y2)

		gocv.Rectangle(&annotated, image.Rect(x1, y1, x2, y2), c, 2)
		gocv.Rectangle(&annotated, image.Rect(x1, y1-labelSize.Y-10, x1+labelSize.X, y1), c, -1)
		gocv.PutText(&annotated, label, image.Pt(x1, y1-5), gocv.FontHersheySimplex, 0.5, color.RGBA{A: 255}, 2)
	}
	return annotated
}

// Close releases the device and the current frame buffer, and shuts
// down the raw-frame broadcast.
func (s *Source) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frame.Close()
	s.device.Close()
	s.RawFrame.Close()
}
