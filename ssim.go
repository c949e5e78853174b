package imgmetrics

import (
	"bytes"
	"math"
)

// SSIMOptions configures the SSIM kernel, per §4.5.
type SSIMOptions struct {
	WindowSize int
	K1, K2     float64
	L          float64
}

// DefaultSSIMOptions returns the §4.5 defaults.
func DefaultSSIMOptions() SSIMOptions {
	return SSIMOptions{WindowSize: 11, K1: 0.01, K2: 0.03, L: 255}
}

// ssimStats computes the per-window SSIM and contrast-structure (CS) maps
// for two luma planes at their current resolution, per §4.5 steps 3-6 /
// §4.6 step 1. It is shared by SSIM (with auto-decimation applied by the
// caller) and MS-SSIM (called once per scale, undecimated).
func ssimStats(l1, l2 []float32, width, height, windowSize int, k1, k2, L float64) (ssimMap, csMap []float32, outW, outH int) {
	g := cachedGaussianWindow(windowSize, 1.5)

	mu1, outW, outH := convolveSeparable(l1, width, height, g, ModeValid, PadSymmetric)
	mu2, _, _ := convolveSeparable(l2, width, height, g, ModeValid, PadSymmetric)

	sq1 := squarePlane(l1)
	sq2 := squarePlane(l2)
	prod := productPlane(l1, l2)

	sqMu1, _, _ := convolveSeparable(sq1, width, height, g, ModeValid, PadSymmetric)
	sqMu2, _, _ := convolveSeparable(sq2, width, height, g, ModeValid, PadSymmetric)
	sqMu12, _, _ := convolveSeparable(prod, width, height, g, ModeValid, PadSymmetric)

	c1 := (k1 * L) * (k1 * L)
	c2 := (k2 * L) * (k2 * L)

	n := outW * outH
	ssimMap = make([]float32, n)
	csMap = make([]float32, n)

	for i := 0; i < n; i++ {
		m1, m2 := float64(mu1[i]), float64(mu2[i])
		v1 := float64(sqMu1[i]) - m1*m1
		v2 := float64(sqMu2[i]) - m2*m2
		cov := float64(sqMu12[i]) - m1*m2

		num := (2*m1*m2 + c1) * (2*cov + c2)
		den := (m1*m1 + m2*m2 + c1) * (v1 + v2 + c2)
		ssimMap[i] = float32(num / den)
		csMap[i] = float32((2*cov + c2) / (v1 + v2 + c2))
	}
	return ssimMap, csMap, outW, outH
}

func meanMap(m []float32) float64 {
	sum, count := reduceRows(len(m), func(start, end int) (float64, int) {
		var s float64
		for i := start; i < end; i++ {
			s += float64(m[i])
		}
		return s, end - start
	})
	if count == 0 {
		return 1
	}
	return sum / float64(count)
}

// SSIM computes the Structural Similarity Index between data1 and data2,
// per §4.5.
func SSIM(data1, data2, output []byte, width, height int, opts SSIMOptions) (float64, error) {
	if err := validateBuffers(data1, data2, output, width, height); err != nil {
		return 0, err
	}
	if bytes.Equal(data1, data2) {
		if output != nil {
			fillConstantMap(output, width, height, 1)
		}
		return 1, nil
	}

	l1 := lumaPlane(data1, width, height)
	l2 := lumaPlane(data2, width, height)

	w, h := width, height
	if f := max(1, int(math.Round(float64(min(width, height))/256))); f > 1 {
		l1, w, h = decimate(l1, width, height, f)
		l2, _, _ = decimate(l2, width, height, f)
	}

	ssimMap, _, mapW, mapH := ssimStats(l1, l2, w, h, opts.WindowSize, opts.K1, opts.K2, opts.L)
	score := meanMap(ssimMap)

	if output != nil {
		renderMap(ssimMap, mapW, mapH, width, height, output)
	}
	return score, nil
}

func fillConstantMap(output []byte, width, height int, v float32) {
	m := []float32{v}
	renderMap(m, 1, 1, width, height, output)
}
