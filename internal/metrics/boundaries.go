// Package metrics holds the histogram bucket-boundary generator shared
// by the predictor and capture metrics packages. Ported from
// webcam_capture/src/telemetry.rs's generate_boundaries.
package metrics

// GenerateBoundaries builds ascending, de-duplicated bucket boundaries
// across four arithmetic progressions: step 10 over [a,b], step 2 over
// [b,c], step 20 over [c,d], step 100 over [d,e].
func GenerateBoundaries(a, b, c, d, e int) []float64 {
	seen := make(map[int]bool)
	var out []float64

	add := func(from, to, step int) {
		for x := from; x <= to; x += step {
			if !seen[x] {
				seen[x] = true
				out = append(out, float64(x))
			}
		}
	}

	add(a, b, 10)
	add(b, c, 2)
	add(c, d, 20)
	add(d, e, 100)
	return out
}
