package imgmetrics

import (
	"bytes"
	"sync/atomic"
)

// PixelDiffOptions configures the PixelDiff kernel. Start from
// DefaultPixelDiffOptions and override only the fields you need — the
// kernel does not coalesce zero values, so an explicit Threshold: 0 is
// honored rather than replaced by the default.
type PixelDiffOptions struct {
	Threshold       float64
	Alpha           float64
	AAColor         Color
	DiffColor       Color
	DiffColorAlt    Color
	IncludeAA       bool
	DiffMask        bool
	FastBufferCheck bool
}

// DefaultPixelDiffOptions returns the §4.3 defaults.
func DefaultPixelDiffOptions() PixelDiffOptions {
	return PixelDiffOptions{
		Threshold:       0.1,
		Alpha:           0.1,
		AAColor:         colorAA,
		DiffColor:       colorDiff,
		DiffColorAlt:    colorDiff,
		IncludeAA:       false,
		DiffMask:        false,
		FastBufferCheck: true,
	}
}

// PixelDiff computes the YIQ perceptual pixel-wise diff between data1 and
// data2, optionally rendering a diff visualization into output, per §4.3.
// It returns the count of pixels classified as a real (non-anti-aliased)
// difference.
func PixelDiff(data1, data2, output []byte, width, height int, opts PixelDiffOptions) (int, error) {
	if err := validateBuffers(data1, data2, output, width, height); err != nil {
		return 0, err
	}

	if opts.FastBufferCheck && bytes.Equal(data1, data2) {
		if output != nil {
			fillGray(data1, output, width, height, opts.Alpha, opts.DiffMask)
		}
		return 0, nil
	}

	blockSize := adaptiveBlockSize(width, height)
	blocks := scanBlocks(data1, data2, output, width, height, blockSize, opts.Alpha, opts.DiffMask)

	maxDelta := 35215 * opts.Threshold * opts.Threshold

	var diffCount atomic.Int64
	parallelEachRow(len(blocks), func(i int) {
		blk := blocks[i]
		var local int
		for y := blk.startY; y < blk.endY; y++ {
			rowOff := y * width
			for x := blk.startX; x < blk.endX; x++ {
				pos := (rowOff + x) * 4

				var delta float64
				if word32(data1, pos) != word32(data2, pos) {
					delta = yiqDelta(data1, data2, pos, pos, false)
				}

				if abs64(delta) > maxDelta {
					if !opts.IncludeAA {
						aa1 := isAntiAliased(data1, data2, x, y, width, height)
						aa2 := isAntiAliased(data2, data1, x, y, width, height)
						if aa1 || aa2 {
							if output != nil {
								drawColoredPixel(output, pos, opts.AAColor)
							}
							continue
						}
					}
					local++
					if output != nil {
						if delta < 0 {
							drawColoredPixel(output, pos, opts.DiffColorAlt)
						} else {
							drawColoredPixel(output, pos, opts.DiffColor)
						}
					}
				} else if output != nil {
					if opts.DiffMask {
						output[pos], output[pos+1], output[pos+2], output[pos+3] = 0, 0, 0, 0
					} else {
						drawGrayPixel(data1, pos, opts.Alpha, output)
					}
				}
			}
		}
		diffCount.Add(int64(local))
	})

	return int(diffCount.Load()), nil
}

func fillGray(data, output []byte, width, height int, alpha float64, diffMask bool) {
	if diffMask {
		clear(output)
		return
	}
	for i := 0; i < width*height; i++ {
		drawGrayPixel(data, i*4, alpha, output)
	}
}

func abs64(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
