// Package broadcast implements the single-producer, multi-consumer
// fan-out channel (C6's raw_frame_broadcast and C9's
// annotated_frame_broadcast): a bounded per-subscriber buffer with a
// non-blocking send, so a slow subscriber never stalls the producer.
// Grounded on the streaming-camera FrameBroadcaster subscribe/broadcast
// shape, extended with a sequence number so a subscriber can detect it
// missed frames (Lagged) rather than observing a silent gap.
package broadcast

import (
	"sync"
	"sync/atomic"
)

// Lagged is returned by Recv when the sequence number jumps, i.e. the
// subscriber's buffer was full and the producer dropped frames for it.
type Lagged struct {
	Skipped uint64
}

func (l *Lagged) Error() string {
	return "broadcast: subscriber lagged"
}

type item struct {
	seq  uint64
	data []byte
}

// Broadcast fans out []byte messages (JPEG frames) to every live
// subscriber. The zero value is not usable; construct with New.
type Broadcast struct {
	mu      sync.Mutex
	clients map[int]chan item
	nextID  int
	seq     atomic.Uint64
	bufSize int
	closed  bool
}

func New(bufSize int) *Broadcast {
	return &Broadcast{clients: make(map[int]chan item), bufSize: bufSize}
}

// Subscriber is a single consumer's handle, tracking the last sequence
// number it successfully observed so Recv can detect gaps.
type Subscriber struct {
	b       *Broadcast
	id      int
	ch      chan item
	lastSeq uint64
	started bool
}

// Subscribe registers a new consumer. HasSubscribers reflects the
// updated count immediately after this returns.
func (b *Broadcast) Subscribe() *Subscriber {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan item, b.bufSize)
	b.clients[id] = ch
	return &Subscriber{b: b, id: id, ch: ch}
}

// Unsubscribe removes the consumer. Safe to call more than once.
func (s *Subscriber) Unsubscribe() {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()
	if ch, ok := s.b.clients[s.id]; ok {
		close(ch)
		delete(s.b.clients, s.id)
	}
}

// Recv blocks until a frame arrives, the broadcast is closed (ok=false),
// or a gap is detected (err is *Lagged; data from before the gap is
// unrecoverable, so the caller should treat this as "resubscribe and
// keep going" rather than retry).
func (s *Subscriber) Recv() (data []byte, err error, ok bool) {
	it, chOk := <-s.ch
	if !chOk {
		return nil, nil, false
	}
	if s.started && it.seq != s.lastSeq+1 {
		skipped := it.seq - s.lastSeq - 1
		s.lastSeq = it.seq
		return it.data, &Lagged{Skipped: skipped}, true
	}
	s.lastSeq = it.seq
	s.started = true
	return it.data, nil, true
}

// HasSubscribers reports whether any consumer is currently registered.
func (b *Broadcast) HasSubscribers() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.clients) > 0
}

// Publish sends data to every current subscriber. A subscriber whose
// buffer is full is skipped for this frame rather than blocking the
// producer; it will observe the gap as a Lagged error on its next Recv.
func (b *Broadcast) Publish(data []byte) {
	seq := b.seq.Add(1)

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.clients {
		select {
		case ch <- item{seq: seq, data: data}:
		default:
		}
	}
}

// Close shuts down the broadcast, closing every subscriber channel.
func (b *Broadcast) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.clients {
		close(ch)
		delete(b.clients, id)
	}
}
