// Package postprocess implements argmax decode of the YOLOv8-family
// output tensor, confidence filtering, coordinate rescaling, and
// non-maximum suppression.
package postprocess

import (
	"cmp"
	"math"
	"sort"

	yolov1 "yolofeed/api/yolo/v1"
)

const (
	modelInputSize = 640
	iouThreshold   = 0.70
	numBoxParams   = 4
)

// Decode runs the full argmax-decode/sort/NMS pipeline against a
// [1, 4+numClasses, numAnchors] output tensor flattened channel-major
// (data[channel*numAnchors+anchor]), producing boxes in the original
// image's coordinate space, confidence-sorted and de-duplicated.
func Decode(data []float32, numClasses, numAnchors int, origW, origH int, minProbability float32) []*yolov1.BoundingBox {
	boxes := argmaxDecode(data, numClasses, numAnchors, origW, origH, minProbability)
	sortByConfidenceDesc(boxes)
	return nms(boxes)
}

func argmaxDecode(data []float32, numClasses, numAnchors, origW, origH int, minProbability float32) []*yolov1.BoundingBox {
	scaleX := float32(origW) / modelInputSize
	scaleY := float32(origH) / modelInputSize

	boxes := make([]*yolov1.BoundingBox, 0, numAnchors)
	for a := 0; a < numAnchors; a++ {
		bestClass := 0
		bestProb := data[(numBoxParams+0)*numAnchors+a]
		for c := 1; c < numClasses; c++ {
			prob := data[(numBoxParams+c)*numAnchors+a]
			if prob > bestProb {
				bestProb = prob
				bestClass = c
			}
		}
		if bestProb < minProbability {
			continue
		}

		xc := data[0*numAnchors+a] * scaleX
		yc := data[1*numAnchors+a] * scaleY
		w := data[2*numAnchors+a] * scaleX
		h := data[3*numAnchors+a] * scaleY

		boxes = append(boxes, &yolov1.BoundingBox{
			ClassId:    uint32(bestClass),
			Confidence: bestProb,
			X1:         xc - w/2,
			Y1:         yc - h/2,
			X2:         xc + w/2,
			Y2:         yc + h/2,
		})
	}
	return boxes
}

// sortByConfidenceDesc orders boxes by descending confidence using a
// NaN-safe total order, the Go analogue of f32::total_cmp.
func sortByConfidenceDesc(boxes []*yolov1.BoundingBox) {
	sort.SliceStable(boxes, func(i, j int) bool {
		return totalCmp(boxes[j].Confidence, boxes[i].Confidence) < 0
	})
}

func totalCmp(a, b float32) int {
	return cmp.Compare(totalOrderKey(a), totalOrderKey(b))
}

// totalOrderKey maps a float32 to a uint32 that preserves the IEEE-754
// total order (NaNs sort consistently rather than comparing unordered).
func totalOrderKey(f float32) uint32 {
	bits := math.Float32bits(f)
	if bits&(1<<31) != 0 {
		return ^bits // flip all bits for negative numbers
	}
	return bits | (1 << 31) // set sign bit for non-negative numbers, preserving order
}

// nms removes, for each pick (highest remaining confidence first), the
// pick itself and every box whose IoU with it exceeds the threshold —
// the safe form resolving the loop-termination open question: the
// picked box has IoU 1.0 with itself and is always removed too.
func nms(boxes []*yolov1.BoundingBox) []*yolov1.BoundingBox {
	var result []*yolov1.BoundingBox
	for len(boxes) > 0 {
		pick := boxes[0]
		result = append(result, pick)

		kept := boxes[:0:0]
		for _, b := range boxes {
			if iou(pick, b) <= iouThreshold {
				kept = append(kept, b)
			}
		}
		boxes = kept
	}
	return result
}

func intersection(a, b *yolov1.BoundingBox) float32 {
	w := min32(a.X2, b.X2) - max32(a.X1, b.X1)
	h := min32(a.Y2, b.Y2) - max32(a.Y1, b.Y1)
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w * h
}

func union(a, b *yolov1.BoundingBox) float32 {
	areaA := (a.X2 - a.X1) * (a.Y2 - a.Y1)
	areaB := (b.X2 - b.X1) * (b.Y2 - b.Y1)
	return areaA + areaB - intersection(a, b)
}

func iou(a, b *yolov1.BoundingBox) float32 {
	u := union(a, b)
	if u <= 0 {
		return 0
	}
	return intersection(a, b) / u
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
