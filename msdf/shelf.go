package msdf

// ShelfAllocator packs rectangles into horizontal shelves. Items go left to
// right on the first shelf that has room; a new shelf opens below the last
// one when none does. Only the last shelf may grow taller.
type ShelfAllocator struct {
	width, height int
	padding       int
	shelves       []shelf
	used          int
}

type shelf struct {
	y, height, x int
}

// NewShelfAllocator creates an allocator for a width x height area.
func NewShelfAllocator(width, height, padding int) *ShelfAllocator {
	return &ShelfAllocator{
		width:   width,
		height:  height,
		padding: padding,
		shelves: make([]shelf, 0, 16),
	}
}

// Allocate reserves a w x h rectangle and returns its top-left corner.
// It returns ok == false when there is no room left.
func (a *ShelfAllocator) Allocate(w, h int) (x, y int, ok bool) {
	pw, ph := w+a.padding, h+a.padding
	if w <= 0 || h <= 0 || pw > a.width || ph > a.height {
		return -1, -1, false
	}

	last := len(a.shelves) - 1
	for i := range a.shelves {
		s := &a.shelves[i]
		if s.x+pw > a.width {
			continue
		}
		if h > s.height {
			if i != last || s.y+ph > a.height {
				continue
			}
			s.height = h
		}
		x, y = s.x, s.y
		s.x += pw
		a.used += w * h
		return x, y, true
	}

	top := 0
	if last >= 0 {
		top = a.shelves[last].y + a.shelves[last].height + a.padding
	}
	if top+ph > a.height {
		return -1, -1, false
	}
	a.shelves = append(a.shelves, shelf{y: top, height: h, x: pw})
	a.used += w * h
	return 0, top, true
}

// Reset forgets all allocations.
func (a *ShelfAllocator) Reset() {
	a.shelves = a.shelves[:0]
	a.used = 0
}

// Utilization returns the used fraction of the area, 0 to 1.
func (a *ShelfAllocator) Utilization() float64 {
	if a.width <= 0 || a.height <= 0 {
		return 0
	}
	return float64(a.used) / float64(a.width*a.height)
}

// ShelfCount returns the number of open shelves.
func (a *ShelfAllocator) ShelfCount() int { return len(a.shelves) }
