package collision

import "github.com/spaghettifunk/mathforgames/engine/math"

// CircleCollider is a circle centred on its owner.
type CircleCollider struct {
	owner  Body
	Radius float32
}

func NewCircleCollider(owner Body, radius float32) *CircleCollider {
	return &CircleCollider{
		owner:  owner,
		Radius: radius,
	}
}

func (c *CircleCollider) Owner() Body {
	return c.owner
}

func (c *CircleCollider) Kind() ColliderKind {
	return ColliderKindCircle
}

func (c *CircleCollider) Center() math.Vec2 {
	return c.owner.WorldPosition()
}

func (c *CircleCollider) CheckCollision(other Collider) bool {
	switch o := other.(type) {
	case *AABBCollider:
		return c.CheckCollisionAABB(o)
	case *CircleCollider:
		return c.CheckCollisionCircle(o)
	}
	return false
}

func (c *CircleCollider) CheckCollisionCircle(other *CircleCollider) bool {
	if other == nil || sameOwner(c, other) {
		return false
	}
	return c.Center().Distance(other.Center()) <= c.Radius+other.Radius
}

func (c *CircleCollider) CheckCollisionAABB(other *AABBCollider) bool {
	if other == nil || sameOwner(c, other) {
		return false
	}
	return circleBoxOverlap(c, other)
}
