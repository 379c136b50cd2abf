// Package state holds the detection snapshot: a single-writer/
// multi-reader cell holding the most recent detections, read by
// cloning under a short-held lock so the renderer never blocks the
// prediction loop.
package state

import (
	"sync"

	"yolofeed/internal/capture/predictclient"
)

type Snapshot struct {
	mu         sync.RWMutex
	detections []predictclient.BoundingBoxWithLabel
}

func New() *Snapshot {
	return &Snapshot{detections: []predictclient.BoundingBoxWithLabel{}}
}

// Set replaces the snapshot atomically. Called once per successful
// inference by the prediction task; the sole writer.
func (s *Snapshot) Set(detections []predictclient.BoundingBoxWithLabel) {
	s.mu.Lock()
	s.detections = detections
	s.mu.Unlock()
}

// Clone returns a copy of the current detections and releases the lock
// before returning, so the caller can annotate at leisure without
// holding up the writer.
func (s *Snapshot) Clone() []predictclient.BoundingBoxWithLabel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]predictclient.BoundingBoxWithLabel, len(s.detections))
	copy(out, s.detections)
	return out
}
