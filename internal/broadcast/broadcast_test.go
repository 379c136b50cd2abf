package broadcast

import "testing"

func TestBroadcast_PreservesOrderForSingleSubscriber(t *testing.T) {
	b := New(4)
	sub := b.Subscribe()
	defer sub.Unsubscribe()

	b.Publish([]byte("a"))
	b.Publish([]byte("b"))
	b.Publish([]byte("c"))

	for _, want := range []string{"a", "b", "c"} {
		data, err, ok := sub.Recv()
		if !ok || err != nil {
			t.Fatalf("Recv: ok=%v err=%v", ok, err)
		}
		if string(data) != want {
			t.Errorf("got %q, want %q", data, want)
		}
	}
}

func TestBroadcast_LaggedOnOverflow(t *testing.T) {
	b := New(1)
	sub := b.Subscribe()
	defer sub.Unsubscribe()

	b.Publish([]byte("1"))
	b.Publish([]byte("2")) // dropped for sub: buffer full
	b.Publish([]byte("3")) // dropped for sub: buffer still full until first Recv

	_, err, ok := sub.Recv()
	if !ok || err != nil {
		t.Fatalf("first Recv: ok=%v err=%v", ok, err)
	}

	b.Publish([]byte("4"))
	data, err, ok := sub.Recv()
	if !ok {
		t.Fatal("second Recv: channel closed unexpectedly")
	}
	if err == nil {
		t.Fatal("expected Lagged error after overflow")
	}
	if _, isLagged := err.(*Lagged); !isLagged {
		t.Errorf("expected *Lagged, got %T", err)
	}
	if string(data) != "4" {
		t.Errorf("expected latest frame after lag, got %q", data)
	}
}

func TestBroadcast_DropsSilentlyWhenNoSubscribers(t *testing.T) {
	b := New(4)
	if b.HasSubscribers() {
		t.Fatal("expected no subscribers")
	}
	b.Publish([]byte("x")) // must not panic or block
}

func TestBroadcast_CloseEndsSubscribers(t *testing.T) {
	b := New(4)
	sub := b.Subscribe()
	b.Close()

	_, _, ok := sub.Recv()
	if ok {
		t.Fatal("expected Recv to report closed broadcast")
	}
}
