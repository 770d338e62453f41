package math3d

// Line2D is a 2D line in normal-offset form: the points p with
// p·Normal() == W(). The normal is stored at unit length.
type Line2D struct {
	normal Vec2
	w      float64
}

// NewLine2D creates a line from a non-zero normal and offset. The normal is
// rescaled to unit length and w is multiplied by the normal's original length.
func NewLine2D(normal Vec2, w float64) Line2D {
	l := normal.Len()
	w *= l
	normal = normal.Scale(1.0 / l)
	return Line2D{normal: normal, w: w}
}

// Line2DFromPoints returns the line through p1 and p2.
func Line2DFromPoints(p1, p2 Vec2) Line2D {
	direction := p2.Sub(p1)
	normal := direction.Perpendicular().Unit()
	w := p1.Dot(normal)
	return NewLine2D(normal, w)
}

// Normal returns the unit normal of the line.
func (l Line2D) Normal() Vec2 {
	return l.normal
}

// W returns the offset of the line from the origin along Normal.
func (l Line2D) W() float64 {
	return l.w
}

// Direction returns a unit vector along the line.
func (l Line2D) Direction() Vec2 {
	return l.normal.Normal()
}
