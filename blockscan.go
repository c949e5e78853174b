package imgmetrics

import "math"

// changedBlock records one block of the scanning grid that was found to
// differ between the two images during pass 1 (§4.3).
type changedBlock struct {
	startX, startY, endX, endY int
}

// adaptiveBlockSize picks the block side length for the scanner, per §4.3:
// the power of two nearest to 16*sqrt(sqrt(W*H)/100).
func adaptiveBlockSize(width, height int) int {
	s := math.Sqrt(float64(width*height)) / 100
	raw := 16 * math.Sqrt(s)
	if raw < 1 {
		raw = 1
	}
	exp := math.Round(math.Log2(raw))
	size := int(math.Pow(2, exp))
	if size < 1 {
		size = 1
	}
	return size
}

// scanBlocks is pass 1 of the block scanner (§4.3): it partitions the image
// into a grid of blockSize blocks, sweeps each via the 32-bit word alias,
// and either fills fully-equal blocks in output (when output is requested:
// gray pixels, or transparent black when diffMask is on) or records the
// block as changed.
//
// Block rows are scanned on independent goroutines, mirroring the
// teacher's per-row worker shape; each goroutine accumulates its own
// changed-block slice, merged into the result afterward in row order so
// that pass 2 processes blocks deterministically.
func scanBlocks(data1, data2, output []byte, width, height, blockSize int, alpha float64, diffMask bool) []changedBlock {
	rows := (height + blockSize - 1) / blockSize
	cols := (width + blockSize - 1) / blockSize

	perRow := make([][]changedBlock, rows)
	parallelEachRow(rows, func(by int) {
		startY := by * blockSize
		endY := min(startY+blockSize, height)
		var local []changedBlock
		for bx := 0; bx < cols; bx++ {
			startX := bx * blockSize
			endX := min(startX+blockSize, width)

			equal := true
		scan:
			for y := startY; y < endY; y++ {
				rowOff := y * width
				for x := startX; x < endX; x++ {
					pos := (rowOff + x) * 4
					if word32(data1, pos) != word32(data2, pos) {
						equal = false
						break scan
					}
				}
			}

			if equal {
				if output != nil {
					for y := startY; y < endY; y++ {
						rowOff := y * width
						for x := startX; x < endX; x++ {
							pos := (rowOff + x) * 4
							if diffMask {
								output[pos], output[pos+1], output[pos+2], output[pos+3] = 0, 0, 0, 0
							} else {
								drawGrayPixel(data1, pos, alpha, output)
							}
						}
					}
				}
				continue
			}
			local = append(local, changedBlock{startX, startY, endX, endY})
		}
		perRow[by] = local
	})

	var blocks []changedBlock
	for _, local := range perRow {
		blocks = append(blocks, local...)
	}
	return blocks
}
