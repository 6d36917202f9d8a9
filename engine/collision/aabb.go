package collision

import "github.com/spaghettifunk/mathforgames/engine/math"

// AABBCollider is an axis aligned box centred on its owner. The size is
// fixed at construction and does not follow the owner's scale.
type AABBCollider struct {
	owner  Body
	Width  float32
	Height float32
}

func NewAABBCollider(owner Body, width, height float32) *AABBCollider {
	return &AABBCollider{
		owner:  owner,
		Width:  width,
		Height: height,
	}
}

func (c *AABBCollider) Owner() Body {
	return c.owner
}

func (c *AABBCollider) Kind() ColliderKind {
	return ColliderKindAABB
}

func (c *AABBCollider) Left() float32 {
	return c.owner.WorldPosition().X - c.Width/2
}

func (c *AABBCollider) Right() float32 {
	return c.owner.WorldPosition().X + c.Width/2
}

// Top is the smaller y edge; screen y grows downwards.
func (c *AABBCollider) Top() float32 {
	return c.owner.WorldPosition().Y - c.Height/2
}

func (c *AABBCollider) Bottom() float32 {
	return c.owner.WorldPosition().Y + c.Height/2
}

// Bounds returns the box in world space.
func (c *AABBCollider) Bounds() math.Extents2D {
	return math.NewExtents2DFromCenter(c.owner.WorldPosition(), c.Width, c.Height)
}

func (c *AABBCollider) CheckCollision(other Collider) bool {
	switch o := other.(type) {
	case *AABBCollider:
		return c.CheckCollisionAABB(o)
	case *CircleCollider:
		return c.CheckCollisionCircle(o)
	}
	return false
}

func (c *AABBCollider) CheckCollisionAABB(other *AABBCollider) bool {
	if other == nil || sameOwner(c, other) {
		return false
	}
	return c.Bounds().Overlaps(other.Bounds())
}

func (c *AABBCollider) CheckCollisionCircle(other *CircleCollider) bool {
	if other == nil || sameOwner(c, other) {
		return false
	}
	return circleBoxOverlap(other, c)
}
