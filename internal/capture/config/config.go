// Package config holds the Capture Service's configuration shape,
// loaded the same two-stage base+environment way as the prediction
// service's config (internal/predictor/config).
package config

import (
	"fmt"
	"time"

	"yolofeed/internal/retry"
)

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// CameraConfig controls the capture device and the two periodic tasks
// that read it: the stream task publishing raw/annotated frames, and
// the prediction task submitting frames to the prediction service.
type CameraConfig struct {
	DeviceIndex   int `yaml:"deviceIndex"`
	StreamFps     int `yaml:"streamFps"`
	PredictionFps int `yaml:"predictionFps"`
}

type RetryConfig struct {
	InitialDelayMs int     `yaml:"initialDelayMs"`
	BackoffFactor  float64 `yaml:"backoffFactor"`
	MaxDelayMs     int     `yaml:"maxDelayMs"`
	MaxRetries     int     `yaml:"maxRetries"`
	MaxConsecutive int     `yaml:"maxConsecutiveFailures"`
}

// Schedule builds the in-loop prediction retry schedule from the
// configured delay, backoff and retry count. There's no per-attempt
// timeout here: the caller's context governs each Predict call instead.
func (r RetryConfig) Schedule() retry.Schedule {
	return retry.Schedule{
		InitialDelay:  time.Duration(r.InitialDelayMs) * time.Millisecond,
		BackoffFactor: r.BackoffFactor,
		MaxDelay:      time.Duration(r.MaxDelayMs) * time.Millisecond,
		MaxRetries:    r.MaxRetries,
	}
}

type Config struct {
	Server            ServerConfig `yaml:"server"`
	PredictionService ServerConfig `yaml:"predictionService"`
	Camera            CameraConfig `yaml:"camera"`
	Retry             RetryConfig  `yaml:"retry"`
	LogLevel          string       `yaml:"logLevel"`
}

func DefaultConfig() *Config {
	return &Config{
		Server:            ServerConfig{Host: "0.0.0.0", Port: 8080},
		PredictionService: ServerConfig{Host: "127.0.0.1", Port: 8500},
		Camera: CameraConfig{
			DeviceIndex:   0,
			StreamFps:     60,
			PredictionFps: 20,
		},
		Retry: RetryConfig{
			InitialDelayMs: 50,
			BackoffFactor:  2,
			MaxDelayMs:     1000,
			MaxRetries:     10,
			MaxConsecutive: 5,
		},
		LogLevel: "info",
	}
}

// Validate rejects FPS configurations that would make stream_delay or
// predict_delay collapse to zero or go negative.
func (c *Config) Validate() error {
	if c.Camera.StreamFps <= 0 {
		return fmt.Errorf("camera.streamFps must be positive, got %d", c.Camera.StreamFps)
	}
	if c.Camera.PredictionFps <= 0 {
		return fmt.Errorf("camera.predictionFps must be positive, got %d", c.Camera.PredictionFps)
	}
	return nil
}
