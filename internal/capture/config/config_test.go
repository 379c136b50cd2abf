package config

import (
	"testing"
	"time"
)

func TestDefaultConfig_Validates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig() should validate, got: %v", err)
	}
}

func TestValidate_RejectsNonPositiveStreamFps(t *testing.T) {
	c := DefaultConfig()
	c.Camera.StreamFps = 0
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for zero streamFps")
	}
}

func TestValidate_RejectsNonPositivePredictionFps(t *testing.T) {
	c := DefaultConfig()
	c.Camera.PredictionFps = -1
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for negative predictionFps")
	}
}

func TestServerConfig_Addr(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 8080}
	if got, want := s.Addr(), "127.0.0.1:8080"; got != want {
		t.Errorf("Addr() = %q, want %q", got, want)
	}
}

func TestRetryConfig_Schedule(t *testing.T) {
	r := DefaultConfig().Retry
	sched := r.Schedule()

	if got, want := sched.InitialDelay, 50*time.Millisecond; got != want {
		t.Errorf("InitialDelay = %v, want %v", got, want)
	}
	if got, want := sched.BackoffFactor, r.BackoffFactor; got != want {
		t.Errorf("BackoffFactor = %v, want %v", got, want)
	}
	if got, want := sched.MaxDelay, time.Second; got != want {
		t.Errorf("MaxDelay = %v, want %v", got, want)
	}
	if got, want := sched.MaxRetries, r.MaxRetries; got != want {
		t.Errorf("MaxRetries = %d, want %d", got, want)
	}
	if sched.PerAttemptTimeout != 0 {
		t.Errorf("PerAttemptTimeout = %v, want 0 (caller's context governs instead)", sched.PerAttemptTimeout)
	}
}
