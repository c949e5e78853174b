package imgmetrics

// ConvMode selects whether a separable convolution crops to the interior
// (valid) or preserves the input's dimensions via padding (same). See §4.4.
type ConvMode int

const (
	ModeValid ConvMode = iota
	ModeSame
)

// PadMode selects the boundary handling used by a same-mode convolution.
type PadMode int

const (
	// PadSymmetric mirrors the plane around the edge without repeating it:
	// s=-s for s<0, s=2n-s-2 for s>=n. Used by SSIM's automatic decimation
	// and by MS-SSIM's downsampler.
	PadSymmetric PadMode = iota
	// PadZero treats out-of-range taps as contributing zero. Used only by
	// GMSD's optional downsample, to match MATLAB's conv2 default — do not
	// unify this with PadSymmetric.
	PadZero
)

func mirrorIndex(s, n int) int {
	if s < 0 {
		s = -s
	}
	if s >= n {
		s = 2*n - s - 2
	}
	if s < 0 {
		s = 0
	}
	if s >= n {
		s = n - 1
	}
	return s
}

// convolveSeparable applies a 1-D kernel horizontally then vertically to a
// W*H plane, per §4.4. In ModeValid both passes crop to the interior (no
// padding), producing a (W-k+1)x(H-k+1) result; in ModeSame both passes pad
// per mode and the result retains the input's W*H dimensions.
func convolveSeparable(src []float32, w, h int, kernel []float32, mode ConvMode, pad PadMode) (dst []float32, outW, outH int) {
	k := len(kernel)

	if mode == ModeValid {
		outW = w - k + 1
		outH = h - k + 1
		if outW <= 0 || outH <= 0 {
			return nil, 0, 0
		}

		tmp := make([]float32, outW*h)
		for y := 0; y < h; y++ {
			rowOff := y * w
			outRowOff := y * outW
			for x := 0; x < outW; x++ {
				var sum float32
				for j := 0; j < k; j++ {
					sum += kernel[j] * src[rowOff+x+j]
				}
				tmp[outRowOff+x] = sum
			}
		}

		dst = make([]float32, outW*outH)
		for y := 0; y < outH; y++ {
			for x := 0; x < outW; x++ {
				var sum float32
				for j := 0; j < k; j++ {
					sum += kernel[j] * tmp[(y+j)*outW+x]
				}
				dst[y*outW+x] = sum
			}
		}
		return dst, outW, outH
	}

	outW, outH = w, h
	p := k / 2

	tmp := make([]float32, w*h)
	for y := 0; y < h; y++ {
		rowOff := y * w
		for x := 0; x < w; x++ {
			var sum float32
			for j := 0; j < k; j++ {
				idx := x + j - p
				if pad == PadSymmetric {
					sum += kernel[j] * src[rowOff+mirrorIndex(idx, w)]
				} else if idx >= 0 && idx < w {
					sum += kernel[j] * src[rowOff+idx]
				}
			}
			tmp[rowOff+x] = sum
		}
	}

	dst = make([]float32, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float32
			for j := 0; j < k; j++ {
				idy := y + j - p
				if pad == PadSymmetric {
					sum += kernel[j] * tmp[mirrorIndex(idy, h)*w+x]
				} else if idy >= 0 && idy < h {
					sum += kernel[j] * tmp[idy*w+x]
				}
			}
			dst[y*w+x] = sum
		}
	}
	return dst, outW, outH
}

// boxDownsample2x applies the 2-tap box filter [0.5,0.5] (equivalent to a
// ones(2,2)/4 2-D box) in same mode under the given padding, then subsamples
// at stride 2 from the origin. Used by MS-SSIM (symmetric padding) and GMSD
// (zero padding) — see §4.6 step 2 and §4.8 step 2.
func boxDownsample2x(src []float32, w, h int, pad PadMode) (dst []float32, outW, outH int) {
	conv, _, _ := convolveSeparable(src, w, h, []float32{0.5, 0.5}, ModeSame, pad)
	outW, outH = w/2, h/2
	dst = make([]float32, outW*outH)
	for y := 0; y < outH; y++ {
		for x := 0; x < outW; x++ {
			dst[y*outW+x] = conv[(2*y)*w+2*x]
		}
	}
	return dst, outW, outH
}

// decimate box-filters then subsamples a plane by an integer factor f,
// matching SSIM's automatic-decimation step (§4.5 step 2).
func decimate(src []float32, w, h, f int) (dst []float32, outW, outH int) {
	if f <= 1 {
		return src, w, h
	}
	conv, _, _ := convolveSeparable(src, w, h, boxWeights(f), ModeSame, PadSymmetric)
	outW, outH = w/f, h/f
	dst = make([]float32, outW*outH)
	for y := 0; y < outH; y++ {
		for x := 0; x < outW; x++ {
			dst[y*outW+x] = conv[(f*y)*w+f*x]
		}
	}
	return dst, outW, outH
}
