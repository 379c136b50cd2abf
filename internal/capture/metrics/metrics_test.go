package metrics

import (
	"testing"
	"time"
)

func TestFrameCounters_ReporterSwapsToZero(t *testing.T) {
	f := NewFrameCounters("test_route")
	f.TickCamera()
	f.TickCamera()
	f.TickPrediction()

	shutdown := make(chan struct{})
	done := make(chan struct{})
	go func() {
		f.RunReporter(shutdown)
		close(done)
	}()

	time.Sleep(1100 * time.Millisecond)
	close(shutdown)
	<-done

	if got := CameraFPS.WithLabelValues("test_route"); got == nil {
		t.Fatal("expected camera fps gauge to be registered")
	}
	if got := f.cameraN.Load(); got != 0 {
		t.Errorf("cameraN after report = %d, want 0", got)
	}
	if got := f.predictN.Load(); got != 0 {
		t.Errorf("predictN after report = %d, want 0", got)
	}
}

func TestFrameCounters_TicksAreConcurrencySafe(t *testing.T) {
	f := NewFrameCounters("concurrent")
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				f.TickCamera()
				f.TickPrediction()
			}
			done <- struct{}{}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
	if got := f.cameraN.Load(); got != 800 {
		t.Errorf("cameraN = %d, want 800", got)
	}
	if got := f.predictN.Load(); got != 800 {
		t.Errorf("predictN = %d, want 800", got)
	}
}
