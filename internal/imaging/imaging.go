// Package imaging implements the Image Codec shared by both services:
// decode, letterbox-free exact resize to the model's 640x640 input,
// CHW float32 normalization, JPEG encode and detection-box annotation.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"yolofeed/internal/yoloerr"
)

const ModelInputSize = 640

const captionPadding = 3

// Decode autodetects JPEG/PNG and returns the raw image. Alpha channels,
// if present, are dropped later during Preprocess.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, yoloerr.New(yoloerr.DecodeError, "imaging.Decode", err)
	}
	return img, nil
}

// Preprocess resizes img exactly to 640x640 with a Catmull-Rom kernel
// and returns a planar [1,3,640,640] float32 tensor with channel order
// RGB, normalized v/255.0, alongside the original image's width and
// height for later coordinate rescaling.
func Preprocess(img image.Image) (tensor []float32, origW, origH int) {
	bounds := img.Bounds()
	origW, origH = bounds.Dx(), bounds.Dy()

	dst := image.NewRGBA(image.Rect(0, 0, ModelInputSize, ModelInputSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	tensor = make([]float32, 3*ModelInputSize*ModelInputSize)
	plane := ModelInputSize * ModelInputSize
	for y := 0; y < ModelInputSize; y++ {
		for x := 0; x < ModelInputSize; x++ {
			r, g, b, _ := dst.At(x, y).RGBA()
			idx := y*ModelInputSize + x
			tensor[0*plane+idx] = float32(r>>8) / 255.0
			tensor[1*plane+idx] = float32(g>>8) / 255.0
			tensor[2*plane+idx] = float32(b>>8) / 255.0
		}
	}
	return tensor, origW, origH
}

// EncodeJPEG encodes img as a JPEG at the library default quality.
func EncodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		return nil, yoloerr.New(yoloerr.EncodeError, "imaging.EncodeJPEG", err)
	}
	return buf.Bytes(), nil
}

// AnnotatedBox is the minimal shape Annotate needs from a detection: box
// corners in the original image's coordinate space, a label and an RGB
// color, duplicated here rather than importing the capture package's
// richer BoundingBoxWithLabel to keep this package dependency-free.
type AnnotatedBox struct {
	X1, Y1, X2, Y2      float32
	Label               string
	Red, Green, Blue    uint32
	Confidence          float32
}

// Annotate draws a 2px rectangle and a "<label>: <confidence>" caption
// for each box onto img, returning a new RGBA image. Rendering never
// fails the frame: drawing errors are impossible for plain rectangles
// and text, so this function has no error return.
func Annotate(img image.Image, boxes []AnnotatedBox) image.Image {
	b := img.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, img, b.Min, draw.Src)

	for _, box := range boxes {
		c := color.RGBA{R: uint8(box.Red), G: uint8(box.Green), B: uint8(box.Blue), A: 255}
		x1, y1, x2, y2 := int(box.X1), int(box.Y1), int(box.X2), int(box.Y2)
		drawRect(dst, x1, y1, x2, y2, c, 2)
		drawCaption(dst, x1, y1, Label(box.Label, box.Confidence), c)
	}
	return dst
}

// drawCaption paints a filled label background just above (x, y) and
// the caption text on top of it, mirroring the gocv-based annotator's
// filled-rect-behind-text look (internal/capture/source.Annotate).
func drawCaption(dst *image.RGBA, x, y int, caption string, bg color.RGBA) {
	face := basicfont.Face7x13
	m := face.Metrics()
	width := font.MeasureString(face, caption).Ceil()
	height := m.Height.Ceil()
	ascent := m.Ascent.Ceil()

	top := y - height - captionPadding
	if top < dst.Bounds().Min.Y {
		top = y
	}
	bottom := top + height + captionPadding

	fillRect(dst, x, top, x+width+captionPadding*2, bottom, bg)

	drawer := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(x + captionPadding),
			Y: fixed.I(top + captionPadding + ascent),
		},
	}
	drawer.DrawString(caption)
}

// drawRect draws an unfilled rectangle outline thickness px wide.
func drawRect(dst *image.RGBA, x1, y1, x2, y2 int, c color.RGBA, thickness int) {
	for t := 0; t < thickness; t++ {
		hLine(dst, x1, x2, y1+t, c)
		hLine(dst, x1, x2, y2-t, c)
		vLine(dst, x1+t, y1, y2, c)
		vLine(dst, x2-t, y1, y2, c)
	}
}

// fillRect fills the rectangle [x1,x2)x[y1,y2) solid, used for the
// caption's label background.
func fillRect(dst *image.RGBA, x1, y1, x2, y2 int, c color.RGBA) {
	for y := y1; y < y2; y++ {
		hLine(dst, x1, x2-1, y, c)
	}
}

func hLine(dst *image.RGBA, x1, x2, y int, c color.RGBA) {
	if y < dst.Bounds().Min.Y || y >= dst.Bounds().Max.Y {
		return
	}
	for x := x1; x <= x2; x++ {
		if x < dst.Bounds().Min.X || x >= dst.Bounds().Max.X {
			continue
		}
		dst.SetRGBA(x, y, c)
	}
}

func vLine(dst *image.RGBA, x, y1, y2 int, c color.RGBA) {
	if x < dst.Bounds().Min.X || x >= dst.Bounds().Max.X {
		return
	}
	for y := y1; y <= y2; y++ {
		if y < dst.Bounds().Min.Y || y >= dst.Bounds().Max.Y {
			continue
		}
		dst.SetRGBA(x, y, c)
	}
}

// Label formats a caption the way the capture annotator renders it.
func Label(name string, confidence float32) string {
	return fmt.Sprintf("%s: %.2f", name, confidence)
}
