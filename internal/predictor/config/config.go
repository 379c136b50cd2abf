package config

import (
	"fmt"
	"os"
	"path/filepath"
)

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type ModelConfig struct {
	OnnxFile       string  `yaml:"onnxFile"`
	NumInstances   int     `yaml:"numInstances"`
	ModelDir       string  `yaml:"modelDir"`
	MinProbability float32 `yaml:"minProbability"`
}

func (m ModelConfig) Path() string {
	return filepath.Join(m.ModelDir, m.OnnxFile)
}

type LabelsConfig struct {
	LabelsFile string `yaml:"labelsFile"`
	LabelsDir  string `yaml:"labelsDir"`
}

func (l LabelsConfig) Path() string {
	return filepath.Join(l.LabelsDir, l.LabelsFile)
}

type Config struct {
	Server   ServerConfig `yaml:"server"`
	Model    ModelConfig  `yaml:"model"`
	Labels   LabelsConfig `yaml:"labels"`
	LogLevel string       `yaml:"logLevel"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 8500},
		Model: ModelConfig{
			OnnxFile:       "yolov8n.onnx",
			NumInstances:   2,
			ModelDir:       "./model_repo",
			MinProbability: 0.5,
		},
		Labels: LabelsConfig{
			LabelsFile: "labels.csv",
			LabelsDir:  "./model_repo",
		},
		LogLevel: "info",
	}
}

// Validate aborts startup with a descriptive error when the model file
// is missing, rather than deferring the failure to the first Predict
// call.
func (c *Config) Validate() error {
	if _, err := os.Stat(c.Model.Path()); err != nil {
		return fmt.Errorf("model file %s: %w", c.Model.Path(), err)
	}
	if c.Model.NumInstances <= 0 {
		return fmt.Errorf("model.numInstances must be positive, got %d", c.Model.NumInstances)
	}
	return nil
}
