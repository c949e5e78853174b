package imgmetrics

// lumaPlane projects an RGBA8 buffer to a W*H BT.601 luma plane, per §4.1.
// Rows are computed on independent goroutines, mirroring the teacher's
// per-row RGB-to-XYZ pass in metric.go.
func lumaPlane(data []byte, width, height int) []float32 {
	plane := make([]float32, width*height)
	parallelEachRow(height, func(y int) {
		rowOff := y * width
		for x := 0; x < width; x++ {
			pos := (rowOff + x) * 4
			plane[rowOff+x] = float32(luma601(data[pos], data[pos+1], data[pos+2]))
		}
	})
	return plane
}

// squarePlane returns a new plane holding p[i]*p[i].
func squarePlane(p []float32) []float32 {
	out := make([]float32, len(p))
	for i, v := range p {
		out[i] = v * v
	}
	return out
}

// productPlane returns a new plane holding a[i]*b[i].
func productPlane(a, b []float32) []float32 {
	out := make([]float32, len(a))
	for i := range a {
		out[i] = a[i] * b[i]
	}
	return out
}
