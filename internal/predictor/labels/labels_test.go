package labels

import (
	"os"
	"path/filepath"
	"testing"
)

func writeLabels(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write labels file: %v", err)
	}
	return path
}

func TestLoad_OrderAndTrim(t *testing.T) {
	path := writeLabels(t, "person, 255 ,0,0\ncar,0,255,0\n")
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 labels, got %d", len(got))
	}
	if got[0].Label != "person" || got[0].Red != 255 {
		t.Errorf("label[0] = %+v", got[0])
	}
	if got[1].Label != "car" || got[1].Green != 255 {
		t.Errorf("label[1] = %+v", got[1])
	}
}

func TestLoad_BlankLinesSkipped(t *testing.T) {
	path := writeLabels(t, "person,255,0,0\n\ncar,0,255,0\n")
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 labels, got %d", len(got))
	}
}

func TestLoad_WrongFieldCount(t *testing.T) {
	path := writeLabels(t, "person,255,0\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed line")
	}
}

func TestLoad_NonNumericChannel(t *testing.T) {
	path := writeLabels(t, "person,red,0,0\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for non-numeric channel")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
