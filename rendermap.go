package imgmetrics

// renderMap upscales a [0,1]-valued map of size mapW*mapH into a RGBA8
// output buffer of size imgW*imgH using nearest-neighbor, per §4.9: every
// destination pixel picks its nearest map cell, written once, avoiding the
// coverage gaps a forward map->image iteration leaves when imgW isn't an
// exact multiple of mapW (see SPEC_FULL.md decision D.4).
func renderMap(values []float32, mapW, mapH, imgW, imgH int, output []byte) {
	for y := 0; y < imgH; y++ {
		v := y * mapH / imgH
		rowOff := y * imgW
		for x := 0; x < imgW; x++ {
			u := x * mapW / imgW
			val := clamp01(values[v*mapW+u])
			g := byte(val * 255)
			pos := (rowOff + x) * 4
			output[pos] = g
			output[pos+1] = g
			output[pos+2] = g
			output[pos+3] = 255
		}
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
