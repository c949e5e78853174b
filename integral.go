package imgmetrics

// buildIntegral constructs a (w+1)x(h+1) double-precision summed-area table
// over src with a zero border, per §4.7 step 3: I(y,x) = p(y-1,x-1) +
// I(y-1,x) + I(y,x-1) - I(y-1,x-1).
func buildIntegral(src []float32, w, h int) []float64 {
	stride := w + 1
	integral := make([]float64, stride*(h+1))
	for y := 1; y <= h; y++ {
		for x := 1; x <= w; x++ {
			p := float64(src[(y-1)*w+(x-1)])
			integral[y*stride+x] = p + integral[(y-1)*stride+x] + integral[y*stride+(x-1)] - integral[(y-1)*stride+(x-1)]
		}
	}
	return integral
}

// sumRect returns the sum of the source plane over the half-open window
// [x0,x1) x [y0,y1) via the integral image built with the given stride.
func sumRect(integral []float64, stride, x0, y0, x1, y1 int) float64 {
	return integral[y1*stride+x1] - integral[y0*stride+x1] - integral[y1*stride+x0] + integral[y0*stride+x0]
}
