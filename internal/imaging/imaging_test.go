package imaging

import (
	"image"
	"image/color"
	"testing"
)

func solidImage(w, h int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestEncodeJPEG_DecodeRoundTrip(t *testing.T) {
	img := solidImage(16, 16, color.RGBA{R: 200, G: 10, B: 10, A: 255})

	data, err := EncodeJPEG(img)
	if err != nil {
		t.Fatalf("EncodeJPEG: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty JPEG bytes")
	}

	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	b := decoded.Bounds()
	if b.Dx() != 16 || b.Dy() != 16 {
		t.Errorf("decoded size = %dx%d, want 16x16", b.Dx(), b.Dy())
	}
}

func TestDecode_InvalidData(t *testing.T) {
	if _, err := Decode([]byte("not an image")); err == nil {
		t.Fatal("expected decode error for garbage input")
	}
}

func TestPreprocess_ShapeAndRange(t *testing.T) {
	img := solidImage(100, 50, color.RGBA{R: 255, G: 128, B: 0, A: 255})

	tensor, origW, origH := Preprocess(img)
	if origW != 100 || origH != 50 {
		t.Errorf("origW,origH = %d,%d, want 100,50", origW, origH)
	}
	if len(tensor) != 3*ModelInputSize*ModelInputSize {
		t.Fatalf("tensor len = %d, want %d", len(tensor), 3*ModelInputSize*ModelInputSize)
	}
	for _, v := range tensor {
		if v < 0 || v > 1 {
			t.Fatalf("tensor value %v out of [0,1] range", v)
		}
	}
}

func TestAnnotate_DrawsWithinBounds(t *testing.T) {
	img := solidImage(50, 50, color.RGBA{A: 255})
	boxes := []AnnotatedBox{
		{X1: 5, Y1: 5, X2: 20, Y2: 20, Label: "cat", Red: 0, Green: 255, Blue: 0, Confidence: 0.9},
	}
	annotated := Annotate(img, boxes)
	if annotated.Bounds() != img.Bounds() {
		t.Errorf("annotated bounds %v, want %v", annotated.Bounds(), img.Bounds())
	}
}

func TestAnnotate_DrawsCaptionBackground(t *testing.T) {
	img := solidImage(80, 80, color.RGBA{A: 255})
	boxes := []AnnotatedBox{
		{X1: 10, Y1: 30, X2: 40, Y2: 60, Label: "cat", Red: 0, Green: 255, Blue: 0, Confidence: 0.9},
	}
	annotated := Annotate(img, boxes).(*image.RGBA)

	want := color.RGBA{G: 255, A: 255}
	got := annotated.RGBAAt(11, 20)
	if got != want {
		t.Errorf("caption background pixel = %+v, want %+v", got, want)
	}
}

func TestLabel_Format(t *testing.T) {
	got := Label("person", 0.873)
	want := "person: 0.87"
	if got != want {
		t.Errorf("Label = %q, want %q", got, want)
	}
}
