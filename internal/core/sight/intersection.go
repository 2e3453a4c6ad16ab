package sight

// Intersection returns the point where s meets other, if any.
//
// When the two segments overlap along a shared line only one boundary of
// the overlap is reported: for sloped segments the first of s's own
// endpoints (low x, then high x) that lies on other, for vertical segments
// the first of other's endpoints (low y, then high y) that lies on s. The
// rule ignores the direction of either segment, so Intersection(a, b) and
// Intersection(b, a) may name different points of the same overlap.
// Crossing segments give the same point in either order.
// Comparisons are exact; no tolerance is applied.
func (s Segment) Intersection(other Segment) (Point, bool) {
	switch a := s.shape.(type) {
	case sloped:
		switch b := other.shape.(type) {
		case sloped:
			return intersectSloped(a, b)
		case vertical:
			return intersectMixed(b, a)
		}
	case vertical:
		switch b := other.shape.(type) {
		case sloped:
			return intersectMixed(a, b)
		case vertical:
			return intersectVertical(a, b)
		}
	}
	return Point{}, false
}

func intersectSloped(a, b sloped) (Point, bool) {
	if a.slope == b.slope {
		if a.yIntercept != b.yIntercept {
			return Point{}, false
		}
		if between(a.minX, b.minX, b.maxX) {
			return a.pointAt(a.minX)
		}
		if between(a.maxX, b.minX, b.maxX) {
			return a.pointAt(a.maxX)
		}
		return Point{}, false
	}

	// Swapping a and b negates both operands, which leaves x unchanged.
	x := (b.yIntercept - a.yIntercept) / (a.slope - b.slope)
	if !between(x, a.minX, a.maxX) || !between(x, b.minX, b.maxX) {
		return Point{}, false
	}
	// y comes from the line with the smaller slope so both argument orders
	// agree.
	line := a
	if b.slope < a.slope {
		line = b
	}
	y := line.yAt(x)
	if isNaN(y) {
		return Point{}, false
	}
	return Point{X: x, Y: y}, true
}

func intersectVertical(a, b vertical) (Point, bool) {
	if a.x != b.x {
		return Point{}, false
	}
	if between(b.minY, a.minY, a.maxY) {
		return Point{X: a.x, Y: b.minY}, true
	}
	if between(b.maxY, a.minY, a.maxY) {
		return Point{X: a.x, Y: b.maxY}, true
	}
	return Point{}, false
}

// intersectMixed is symmetric, so both argument orders of a vertical and a
// sloped segment land here.
func intersectMixed(v vertical, s sloped) (Point, bool) {
	p, ok := s.pointAt(v.x)
	if !ok || !between(p.Y, v.minY, v.maxY) {
		return Point{}, false
	}
	return p, true
}
