package math

// NewExtents2DFromCenter returns the box of the given size centred on center.
func NewExtents2DFromCenter(center Vec2, width, height float32) Extents2D {
	half := Vec2{width / 2, height / 2}
	return Extents2D{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

func (e Extents2D) Width() float32 {
	return e.Max.X - e.Min.X
}

func (e Extents2D) Height() float32 {
	return e.Max.Y - e.Min.Y
}

func (e Extents2D) Center() Vec2 {
	return e.Min.Add(e.Max).MulScalar(0.5)
}

// Overlaps reports whether the two boxes touch or intersect. Each box's
// minimum must not exceed the other's maximum on both axes.
func (e Extents2D) Overlaps(other Extents2D) bool {
	return other.Min.X <= e.Max.X &&
		other.Min.Y <= e.Max.Y &&
		e.Min.X <= other.Max.X &&
		e.Min.Y <= other.Max.Y
}

// Contains reports whether p lies inside the box, edges included.
func (e Extents2D) Contains(p Vec2) bool {
	return p.X >= e.Min.X && p.X <= e.Max.X && p.Y >= e.Min.Y && p.Y <= e.Max.Y
}

// ClosestPoint returns the point of the box nearest to p.
func (e Extents2D) ClosestPoint(p Vec2) Vec2 {
	return ClampVec2(p, e.Min, e.Max)
}

// Overlaps reports whether the two boxes touch or intersect on all three axes.
func (e Extents3D) Overlaps(other Extents3D) bool {
	return other.Min.X <= e.Max.X && e.Min.X <= other.Max.X &&
		other.Min.Y <= e.Max.Y && e.Min.Y <= other.Max.Y &&
		other.Min.Z <= e.Max.Z && e.Min.Z <= other.Max.Z
}
