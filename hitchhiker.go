package imgmetrics

import (
	"bytes"
	"math"
)

// HitchhikerSSIMOptions configures the HitchhikerSSIM kernel, per §4.7.
type HitchhikerSSIMOptions struct {
	WindowSize   int
	WindowStride int
	K1, K2       float64
	L            float64
	CovPooling   bool
}

// DefaultHitchhikerSSIMOptions returns the §4.7 defaults.
func DefaultHitchhikerSSIMOptions() HitchhikerSSIMOptions {
	return HitchhikerSSIMOptions{
		WindowSize:   11,
		WindowStride: 11,
		K1:           0.01,
		K2:           0.03,
		L:            255,
		CovPooling:   true,
	}
}

// HitchhikerSSIM is a cheaper SSIM variant using rectangular windows over
// summed-area tables, with optional coefficient-of-variation pooling,
// per §4.7.
func HitchhikerSSIM(data1, data2, output []byte, width, height int, opts HitchhikerSSIMOptions) (float64, error) {
	if err := validateBuffers(data1, data2, output, width, height); err != nil {
		return 0, err
	}
	if bytes.Equal(data1, data2) {
		if output != nil {
			fillConstantMap(output, width, height, 1)
		}
		return 1, nil
	}

	k := opts.WindowSize
	stride := opts.WindowStride
	if stride <= 0 {
		stride = k
	}

	l1 := lumaPlane(data1, width, height)
	l2 := lumaPlane(data2, width, height)
	sq1 := squarePlane(l1)
	sq2 := squarePlane(l2)
	prod := productPlane(l1, l2)

	i1 := buildIntegral(l1, width, height)
	i2 := buildIntegral(l2, width, height)
	isq1 := buildIntegral(sq1, width, height)
	isq2 := buildIntegral(sq2, width, height)
	iprod := buildIntegral(prod, width, height)
	stride2 := width + 1

	numY := 0
	if height >= k {
		numY = (height-k)/stride + 1
	}
	numX := 0
	if width >= k {
		numX = (width-k)/stride + 1
	}

	c1 := (opts.K1 * opts.L) * (opts.K1 * opts.L)
	c2 := (opts.K2 * opts.L) * (opts.K2 * opts.L)
	area := float64(k * k)

	values := make([]float32, numX*numY)
	parallelEachRow(numY, func(wy int) {
		y0 := wy * stride
		y1 := y0 + k
		for wx := 0; wx < numX; wx++ {
			x0 := wx * stride
			x1 := x0 + k

			s1 := sumRect(i1, stride2, x0, y0, x1, y1)
			s2 := sumRect(i2, stride2, x0, y0, x1, y1)
			sq1Sum := sumRect(isq1, stride2, x0, y0, x1, y1)
			sq2Sum := sumRect(isq2, stride2, x0, y0, x1, y1)
			sxySum := sumRect(iprod, stride2, x0, y0, x1, y1)

			m1 := s1 / area
			m2 := s2 / area
			v1 := sq1Sum/area - m1*m1
			v2 := sq2Sum/area - m2*m2
			cov := sxySum/area - m1*m2

			num := (2*m1*m2 + c1) * (2*cov + c2)
			den := (m1*m1 + m2*m2 + c1) * (v1 + v2 + c2)
			values[wy*numX+wx] = float32(num / den)
		}
	})

	var score float64
	if !opts.CovPooling {
		score = meanMap(values)
	} else {
		mean := meanMap(values)
		_, sumSq, count := reduceRowsStats(len(values), func(start, end int) (float64, float64, int) {
			var sq float64
			for i := start; i < end; i++ {
				d := float64(values[i]) - mean
				sq += d * d
			}
			return 0, sq, end - start
		})
		if count == 0 || mean == 0 {
			score = 1
		} else {
			variance := sumSq / float64(count)
			score = 1 - math.Sqrt(variance)/mean
		}
	}

	if output != nil && numX > 0 && numY > 0 {
		renderMap(values, numX, numY, width, height, output)
	}
	return score, nil
}
