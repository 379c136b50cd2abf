package metrics

import "testing"

func TestGenerateBoundaries(t *testing.T) {
	got := GenerateBoundaries(2, 22, 26, 46, 146)
	want := []float64{2, 12, 22, 24, 26, 46, 146}

	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
