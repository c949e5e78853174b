package imgmetrics

// isAntiAliased decides whether the pixel (x,y) of current is sub-pixel
// anti-aliasing rather than a genuine difference, per §4.2. other is the
// counterpart image (data2 when current is data1, and vice versa); the
// final "many siblings" check is run against both.
func isAntiAliased(current, other []byte, x, y, width, height int) bool {
	x0, x2 := max(x-1, 0), min(x+1, width-1)
	y0, y2 := max(y-1, 0), min(y+1, height-1)

	zeroes := 0
	if x == x0 || x == x2 || y == y0 || y == y2 {
		zeroes = 1
	}

	centerPos := (y*width + x) * 4
	var lo, hi float64
	var loX, loY, hiX, hiY int

	for yy := y0; yy <= y2; yy++ {
		for xx := x0; xx <= x2; xx++ {
			if xx == x && yy == y {
				continue
			}
			neighborPos := (yy*width + xx) * 4
			delta := yiqDelta(current, current, centerPos, neighborPos, true)

			switch {
			case delta == 0:
				zeroes++
				if zeroes > 2 {
					return false
				}
			case delta < lo:
				lo, loX, loY = delta, xx, yy
			case delta > hi:
				hi, hiX, hiY = delta, xx, yy
			}
		}
	}

	if lo == 0 || hi == 0 {
		return false
	}

	return (hasManySiblings(current, loX, loY, width, height) && hasManySiblings(other, loX, loY, width, height)) ||
		(hasManySiblings(current, hiX, hiY, width, height) && hasManySiblings(other, hiX, hiY, width, height))
}

// hasManySiblings reports whether the pixel (x,y) of img has at least 3
// neighbors (counting an implicit one at the image border) whose RGBA word
// equals its own, per §4.2.
func hasManySiblings(img []byte, x, y, width, height int) bool {
	x0, x2 := max(x-1, 0), min(x+1, width-1)
	y0, y2 := max(y-1, 0), min(y+1, height-1)

	zeroes := 0
	if x == x0 || x == x2 || y == y0 || y == y2 {
		zeroes = 1
	}

	center := word32(img, (y*width+x)*4)

	for yy := y0; yy <= y2; yy++ {
		for xx := x0; xx <= x2; xx++ {
			if xx == x && yy == y {
				continue
			}
			if word32(img, (yy*width+xx)*4) == center {
				zeroes++
			}
			if zeroes > 2 {
				return true
			}
		}
	}
	return false
}
