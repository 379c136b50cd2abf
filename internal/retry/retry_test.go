package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSchedule_DelayCappedAtMaxDelay(t *testing.T) {
	s := Schedule{InitialDelay: 10 * time.Millisecond, BackoffFactor: 2, MaxDelay: 100 * time.Millisecond}
	for attempt := 0; attempt < 10; attempt++ {
		d := s.Delay(attempt)
		if d > 110*time.Millisecond { // 100ms cap * 1.1 max jitter
			t.Fatalf("attempt %d: delay %v exceeds capped+jitter bound", attempt, d)
		}
	}
}

func TestSchedule_Do_SucceedsOnFirstTry(t *testing.T) {
	s := Schedule{InitialDelay: time.Millisecond, BackoffFactor: 2, MaxDelay: time.Millisecond, MaxRetries: 3}
	calls := 0
	err := s.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestSchedule_Do_RetriesThenFails(t *testing.T) {
	s := Schedule{InitialDelay: time.Millisecond, BackoffFactor: 1, MaxDelay: time.Millisecond, MaxRetries: 2}
	calls := 0
	wantErr := errors.New("boom")
	err := s.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return wantErr
	})
	if err != wantErr {
		t.Fatalf("Do err = %v, want %v", err, wantErr)
	}
	if calls != 3 { // initial + 2 retries
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestSchedule_Do_AbortsOnContextCancel(t *testing.T) {
	s := Schedule{InitialDelay: time.Hour, BackoffFactor: 1, MaxDelay: time.Hour, MaxRetries: 5}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.Do(ctx, func(ctx context.Context) error {
		return errors.New("fail")
	})
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

func TestConsecutiveFailureTracker(t *testing.T) {
	tr := ConsecutiveFailureTracker{Max: 3}

	if tr.Fail() {
		t.Fatal("1st failure should not exceed ceiling")
	}
	if tr.Fail() {
		t.Fatal("2nd failure should not exceed ceiling")
	}
	tr.Success()
	if tr.Count() != 0 {
		t.Errorf("Count after Success = %d, want 0", tr.Count())
	}
	if tr.Fail() {
		t.Fatal("1st failure after reset should not exceed ceiling")
	}
	if tr.Fail() {
		t.Fatal("2nd failure after reset should not exceed ceiling")
	}
	if !tr.Fail() {
		t.Fatal("3rd consecutive failure should reach ceiling")
	}
}
