package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate_RejectsMissingModelFile(t *testing.T) {
	c := DefaultConfig()
	c.Model.ModelDir = t.TempDir()
	if err := c.Validate(); err == nil {
		t.Fatal("expected error when model file is missing")
	}
}

func TestValidate_AcceptsPresentModelFile(t *testing.T) {
	dir := t.TempDir()
	c := DefaultConfig()
	c.Model.ModelDir = dir
	if err := os.WriteFile(filepath.Join(dir, c.Model.OnnxFile), []byte("fake-onnx"), 0644); err != nil {
		t.Fatalf("write fake model file: %v", err)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidate_RejectsNonPositiveNumInstances(t *testing.T) {
	dir := t.TempDir()
	c := DefaultConfig()
	c.Model.ModelDir = dir
	c.Model.NumInstances = 0
	if err := os.WriteFile(filepath.Join(dir, c.Model.OnnxFile), []byte("fake-onnx"), 0644); err != nil {
		t.Fatalf("write fake model file: %v", err)
	}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for zero numInstances")
	}
}

func TestModelConfig_Path(t *testing.T) {
	m := ModelConfig{ModelDir: "model_repo", OnnxFile: "yolov8n.onnx"}
	want := filepath.Join("model_repo", "yolov8n.onnx")
	if got := m.Path(); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}
