package collision

import (
	"fmt"
	"strings"

	"github.com/spaghettifunk/mathforgames/engine/core"
	"github.com/spaghettifunk/mathforgames/engine/math"
)

// Body is whatever owns a collider. Colliders read the owner's world
// position on every check, so they always test against the current frame.
type Body interface {
	WorldPosition() math.Vec2
}

type ColliderKind uint8

const (
	ColliderKindAABB ColliderKind = iota
	ColliderKindCircle
)

func (k ColliderKind) String() string {
	switch k {
	case ColliderKindAABB:
		return "aabb"
	case ColliderKindCircle:
		return "circle"
	}
	return "unknown"
}

// ParseColliderKind maps the names used in scene files to a ColliderKind.
func ParseColliderKind(name string) (ColliderKind, error) {
	switch strings.ToLower(name) {
	case "aabb", "box":
		return ColliderKindAABB, nil
	case "circle":
		return ColliderKindCircle, nil
	}
	return 0, fmt.Errorf("collider %q: %w", name, core.ErrUnknownCollider)
}

// Collider tests for overlap against another collider. CheckCollision
// dispatches on the concrete type of other; the typed variants do the math.
// A collider never collides with another collider of the same owner.
type Collider interface {
	Owner() Body
	Kind() ColliderKind
	CheckCollision(other Collider) bool
	CheckCollisionAABB(other *AABBCollider) bool
	CheckCollisionCircle(other *CircleCollider) bool
}

func sameOwner(a, b Collider) bool {
	return a.Owner() == b.Owner()
}

// circleBoxOverlap clamps the circle centre into the box and compares the
// distance to the closest point with the radius.
func circleBoxOverlap(circle *CircleCollider, box *AABBCollider) bool {
	center := circle.Center()
	closest := box.Bounds().ClosestPoint(center)
	return closest.Distance(center) <= circle.Radius
}
