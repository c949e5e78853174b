package imgmetrics

import (
	"bytes"
	"math"
)

// MSSSIMMethod selects how per-scale SSIM/CS values are combined.
type MSSSIMMethod int

const (
	MethodProduct MSSSIMMethod = iota
	MethodWeightedSum
)

// MSSSIMOptions configures the MS-SSIM kernel, per §4.6.
type MSSSIMOptions struct {
	Level      int
	Weight     []float64
	Method     MSSSIMMethod
	WindowSize int
	K1, K2     float64
	L          float64
}

// DefaultMSSSIMOptions returns the §4.6 defaults.
func DefaultMSSSIMOptions() MSSSIMOptions {
	return MSSSIMOptions{
		Level:      5,
		Weight:     []float64{0.0448, 0.2856, 0.3001, 0.2363, 0.1333},
		Method:     MethodProduct,
		WindowSize: 11,
		K1:         0.01,
		K2:         0.03,
		L:          255,
	}
}

// MSSSIM computes Multi-Scale SSIM, per §4.6.
func MSSSIM(data1, data2, output []byte, width, height int, opts MSSSIMOptions) (float64, error) {
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

	mScales := make([]float64, opts.Level)
	cScales := make([]float64, opts.Level)
	var finestMap []float32
	var finestW, finestH int

	for l := 0; l < opts.Level; l++ {
		ssimMap, csMap, mapW, mapH := ssimStats(l1, l2, w, h, opts.WindowSize, opts.K1, opts.K2, opts.L)
		mScales[l] = meanMap(ssimMap)
		cScales[l] = meanMap(csMap)
		finestMap, finestW, finestH = ssimMap, mapW, mapH

		if l < opts.Level-1 {
			var nw, nh int
			l1, nw, nh = boxDownsample2x(l1, w, h, PadSymmetric)
			l2, _, _ = boxDownsample2x(l2, w, h, PadSymmetric)
			w, h = nw, nh
		}
	}

	var score float64
	switch opts.Method {
	case MethodWeightedSum:
		var sumW float64
		for _, wt := range opts.Weight {
			sumW += wt
		}
		for l := 0; l < opts.Level; l++ {
			wPrime := opts.Weight[l] / sumW
			if l < opts.Level-1 {
				score += wPrime * cScales[l]
			} else {
				score += wPrime * mScales[l]
			}
		}
	default: // MethodProduct
		score = 1
		for l := 0; l < opts.Level-1; l++ {
			score *= math.Pow(cScales[l], opts.Weight[l])
		}
		score *= math.Pow(mScales[opts.Level-1], opts.Weight[opts.Level-1])
	}

	if output != nil {
		renderMap(finestMap, finestW, finestH, width, height, output)
	}
	return score, nil
}
