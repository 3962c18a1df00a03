package wordcloud

// Occupied reports whether the pixel at (x, y) counts as drawn on.
//
// A pixel is occupied if its alpha is non-zero, or if all three color
// channels are non-zero. The second clause is a heuristic: a transparent
// pixel with a zero channel counts as blank even though it may carry color.
// Pixels outside the pixmap are never occupied.
func (p *Pixmap) Occupied(x, y int) bool {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return false
	}
	i := (y*p.width + x) * 4
	d := p.data[i : i+4 : i+4]
	return d[3] != 0 || (d[0] != 0 && d[1] != 0 && d[2] != 0)
}

// OccupiedCount returns the number of occupied pixels.
func (p *Pixmap) OccupiedCount() int {
	n := 0
	for i := 0; i < len(p.data); i += 4 {
		d := p.data[i : i+4 : i+4]
		if d[3] != 0 || (d[0] != 0 && d[1] != 0 && d[2] != 0) {
			n++
		}
	}
	return n
}

// blank reports whether the w×h rectangle at (x, y) is unoccupied when
// sampled every step pixels in both directions, starting at its top-left
// corner. The rectangle must lie inside the pixmap.
func (p *Pixmap) blank(x, y, w, h, step int) bool {
	for i := x; i < x+w; i += step {
		for j := y; j < y+h; j += step {
			if p.Occupied(i, j) {
				return false
			}
		}
	}
	return true
}
