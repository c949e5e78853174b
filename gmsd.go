package imgmetrics

import (
	"bytes"
	"math"
)

// GMSDOptions configures the GMSD kernel, per §4.8.
type GMSDOptions struct {
	Downsample bool
	C          float64
}

// DefaultGMSDOptions returns the §4.8 defaults: a single 2x2 box downsample
// before the Prewitt pass, and the constant C=170 used by the reference
// MATLAB implementation.
func DefaultGMSDOptions() GMSDOptions {
	return GMSDOptions{Downsample: true, C: 170}
}

// GMSD computes the Gradient Magnitude Similarity Deviation between data1
// and data2, per §4.8. Lower is more similar; zero means identical.
func GMSD(data1, data2, output []byte, width, height int, opts GMSDOptions) (float64, error) {
	if err := validateBuffers(data1, data2, output, width, height); err != nil {
		return 0, err
	}

	w, h := width, height
	if opts.Downsample {
		w, h = w/2, h/2
	}

	if bytes.Equal(data1, data2) {
		if output != nil {
			ones := make([]float32, w*h)
			for i := range ones {
				ones[i] = 1
			}
			zeroGMSDBorder(ones, w, h)
			renderGMSDMap(ones, w, h, width, height, output)
		}
		return 0, nil
	}

	l1 := lumaPlane(data1, width, height)
	l2 := lumaPlane(data2, width, height)

	if opts.Downsample {
		var nw, nh int
		l1, nw, nh = boxDownsample2x(l1, width, height, PadZero)
		l2, _, _ = boxDownsample2x(l2, width, height, PadZero)
		w, h = nw, nh
	}

	g1 := prewittMagnitude(l1, w, h)
	g2 := prewittMagnitude(l2, w, h)

	c := opts.C
	gms := make([]float32, w*h)
	for i := range gms {
		a, b := float64(g1[i]), float64(g2[i])
		gms[i] = float32((2*a*b + c) / (a*a + b*b + c))
	}
	zeroGMSDBorder(gms, w, h)

	ih := h - 2
	var sigma float64
	if ih > 0 {
		mean, _, interiorCount := reduceRowsStats(ih, func(start, end int) (float64, float64, int) {
			var s float64
			n := 0
			for y := start + 1; y < end+1; y++ {
				rowOff := y * w
				for x := 1; x < w-1; x++ {
					s += float64(gms[rowOff+x])
					n++
				}
			}
			return s, 0, n
		})
		if interiorCount > 0 {
			mean /= float64(interiorCount)
			_, sumSq, _ := reduceRowsStats(ih, func(start, end int) (float64, float64, int) {
				var sq float64
				n := 0
				for y := start + 1; y < end+1; y++ {
					rowOff := y * w
					for x := 1; x < w-1; x++ {
						d := float64(gms[rowOff+x]) - mean
						sq += d * d
						n++
					}
				}
				return 0, sq, n
			})
			sigma = math.Sqrt(sumSq / float64(interiorCount))
		}
	}

	if output != nil {
		renderGMSDMap(gms, w, h, width, height, output)
	}
	return sigma, nil
}

// prewittMagnitude computes the Prewitt gradient magnitude of a W*H plane,
// per §4.8 step 3. The outermost ring is left at zero; callers must treat it
// as invalid rather than a measured value.
func prewittMagnitude(p []float32, w, h int) []float32 {
	out := make([]float32, w*h)
	if w < 3 || h < 3 {
		return out
	}
	parallelEachRow(h-2, func(i int) {
		y := i + 1
		rowOff := y * w
		upOff := (y - 1) * w
		downOff := (y + 1) * w
		for x := 1; x < w-1; x++ {
			tl, tc, tr := p[upOff+x-1], p[upOff+x], p[upOff+x+1]
			ml, _, mr := p[rowOff+x-1], p[rowOff+x], p[rowOff+x+1]
			bl, bc, br := p[downOff+x-1], p[downOff+x], p[downOff+x+1]

			gx := (float64(tl) + float64(ml) + float64(bl) - float64(tr) - float64(mr) - float64(br)) / 3
			gy := (float64(tl) + float64(tc) + float64(tr) - float64(bl) - float64(bc) - float64(br)) / 3
			out[rowOff+x] = float32(math.Sqrt(gx*gx + gy*gy))
		}
	})
	return out
}

func zeroGMSDBorder(m []float32, w, h int) {
	for x := 0; x < w; x++ {
		m[x] = 0
		m[(h-1)*w+x] = 0
	}
	for y := 0; y < h; y++ {
		m[y*w] = 0
		m[y*w+w-1] = 0
	}
}

// renderGMSDMap upscales a W*H gradient-similarity map into an imgW*imgH
// RGBA8 buffer via nearest-neighbor, writing fully transparent black for any
// destination pixel whose nearest source cell lies on the map's outer
// border (where the Prewitt operator has no defined value) instead of the
// gray encoding renderMap uses for SSIM-family maps (Decision D.5).
func renderGMSDMap(values []float32, mapW, mapH, imgW, imgH int, output []byte) {
	for y := 0; y < imgH; y++ {
		v := y * mapH / imgH
		rowOff := y * imgW
		border := v == 0 || v == mapH-1
		for x := 0; x < imgW; x++ {
			u := x * mapW / imgW
			pos := (rowOff + x) * 4
			if border || u == 0 || u == mapW-1 {
				output[pos], output[pos+1], output[pos+2], output[pos+3] = 0, 0, 0, 0
				continue
			}
			val := clamp01(values[v*mapW+u])
			g := byte(val * 255)
			output[pos] = g
			output[pos+1] = g
			output[pos+2] = g
			output[pos+3] = 255
		}
	}
}
