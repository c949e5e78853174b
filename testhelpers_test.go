package imgmetrics_test

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// solidRGBA8 builds a width*height RGBA8 buffer filled with a single color.
func solidRGBA8(width, height int, r, g, b, a byte) []byte {
	buf := make([]byte, 4*width*height)
	for i := 0; i < width*height; i++ {
		buf[i*4], buf[i*4+1], buf[i*4+2], buf[i*4+3] = r, g, b, a
	}
	return buf
}

// checkerboardRGBA8 builds a width*height RGBA8 buffer alternating between
// two colors on an 8x8 cell grid.
func checkerboardRGBA8(width, height int) []byte {
	buf := make([]byte, 4*width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pos := (y*width + x) * 4
			if ((x/8)+(y/8))%2 == 0 {
				buf[pos], buf[pos+1], buf[pos+2], buf[pos+3] = 220, 220, 220, 255
			} else {
				buf[pos], buf[pos+1], buf[pos+2], buf[pos+3] = 30, 30, 30, 255
			}
		}
	}
	return buf
}

// scaledFixtureRGBA8 upscales a small deterministic checkerboard pattern to
// width*height using golang.org/x/image/draw, giving a >256px synthetic
// fixture without needing a vendored PNG — this is what exercises SSIM's
// automatic-decimation path in tests.
func scaledFixtureRGBA8(width, height int) []byte {
	src := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if ((x/2)+(y/2))%2 == 0 {
				src.Set(x, y, color.RGBA{200, 200, 200, 255})
			} else {
				src.Set(x, y, color.RGBA{40, 40, 40, 255})
			}
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	buf := make([]byte, 4*width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pos := (y*width + x) * 4
			off := dst.PixOffset(x, y)
			copy(buf[pos:pos+4], dst.Pix[off:off+4])
		}
	}
	return buf
}

// perturb returns a copy of data with the red channel of pixel (x,y) set to
// r, leaving the rest of the buffer untouched.
func perturb(data []byte, width, x, y int, r byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)
	out[(y*width+x)*4] = r
	return out
}
