package wiregl

// DrawLine rasterizes the segment (x0,y0)-(x1,y1) into t with integer
// Bresenham stepping. All octants are handled; a zero-length segment still
// writes its single pixel. Samples outside the target bounds are skipped
// silently, so a partially visible line draws only its visible run.
func DrawLine(t Target, x0, y0, x1, y1 int, c Color) {
	w, h := t.Size()

	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy

	x, y := x0, y0
	for {
		if x >= 0 && x < w && y >= 0 && y < h {
			t.SetPixel(x, y, c)
		}
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
