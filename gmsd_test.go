package imgmetrics_test

import (
	"testing"

	"github.com/pixelkit/imgmetrics"
)

func TestGMSDIdenticalImagesScoreZero(t *testing.T) {
	width, height := 32, 32
	data := checkerboardRGBA8(width, height)
	score, err := imgmetrics.GMSD(data, data, nil, width, height, imgmetrics.DefaultGMSDOptions())
	if err != nil {
		t.Fatalf("GMSD: %v", err)
	}
	if score != 0 {
		t.Errorf("GMSD(identical) = %v, want exactly 0", score)
	}
}

func TestGMSDDissimilarImagesScoreAboveZero(t *testing.T) {
	width, height := 32, 32
	data1 := checkerboardRGBA8(width, height)
	data2 := solidRGBA8(width, height, 128, 128, 128, 255)
	score, err := imgmetrics.GMSD(data1, data2, nil, width, height, imgmetrics.DefaultGMSDOptions())
	if err != nil {
		t.Fatalf("GMSD: %v", err)
	}
	if score <= 0 {
		t.Errorf("GMSD(checkerboard vs flat) = %v, want > 0", score)
	}
}

func TestGMSDBorderIsTransparent(t *testing.T) {
	width, height := 32, 32
	data1 := checkerboardRGBA8(width, height)
	data2 := solidRGBA8(width, height, 128, 128, 128, 255)
	opts := imgmetrics.DefaultGMSDOptions()
	opts.Downsample = false
	output := make([]byte, 4*width*height)
	if _, err := imgmetrics.GMSD(data1, data2, output, width, height, opts); err != nil {
		t.Fatalf("GMSD: %v", err)
	}
	if output[3] != 0 {
		t.Errorf("border pixel (0,0) alpha = %d, want 0 (transparent)", output[3])
	}
	interiorPos := ((height/2)*width + width/2) * 4
	if output[interiorPos+3] != 255 {
		t.Errorf("interior pixel alpha = %d, want 255 (opaque)", output[interiorPos+3])
	}
}

func TestGMSDDownsampleHalvesWorkingResolutionButRendersFullSize(t *testing.T) {
	width, height := 64, 64
	data1 := checkerboardRGBA8(width, height)
	data2 := solidRGBA8(width, height, 128, 128, 128, 255)
	output := make([]byte, 4*width*height)
	opts := imgmetrics.DefaultGMSDOptions()
	opts.Downsample = true
	if _, err := imgmetrics.GMSD(data1, data2, output, width, height, opts); err != nil {
		t.Fatalf("GMSD: %v", err)
	}
	if len(output) != 4*width*height {
		t.Fatalf("output length = %d, want %d", len(output), 4*width*height)
	}
	// At half resolution the map's 1-cell border ring covers 2 image pixels
	// on each side: (1,1) is transparent, (2,2) is opaque, and the last
	// pixel of the full-size output is transparent again.
	if a := output[(1*width+1)*4+3]; a != 0 {
		t.Errorf("pixel (1,1) alpha = %d, want 0 (border at half resolution)", a)
	}
	if a := output[(2*width+2)*4+3]; a != 255 {
		t.Errorf("pixel (2,2) alpha = %d, want 255 (interior)", a)
	}
	if a := output[len(output)-1]; a != 0 {
		t.Errorf("last pixel alpha = %d, want 0 (border)", a)
	}
}

func TestGMSDCustomConstant(t *testing.T) {
	width, height := 32, 32
	data1 := checkerboardRGBA8(width, height)
	data2 := solidRGBA8(width, height, 128, 128, 128, 255)

	matlab := imgmetrics.DefaultGMSDOptions()
	matlab.C = 170

	legacy := imgmetrics.DefaultGMSDOptions()
	legacy.C = 140

	a, err := imgmetrics.GMSD(data1, data2, nil, width, height, matlab)
	if err != nil {
		t.Fatalf("GMSD: %v", err)
	}
	b, err := imgmetrics.GMSD(data1, data2, nil, width, height, legacy)
	if err != nil {
		t.Fatalf("GMSD: %v", err)
	}
	if a == b {
		t.Error("different C constants produced identical GMSD scores")
	}
}
