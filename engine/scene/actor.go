package scene

import (
	"github.com/google/uuid"

	"github.com/spaghettifunk/mathforgames/engine/collision"
	"github.com/spaghettifunk/mathforgames/engine/math"
	"github.com/spaghettifunk/mathforgames/engine/renderer"
)

// Handle identifies an actor inside its scene. A handle stops resolving once
// its actor is removed, even after the slot is reused by another actor.
type Handle uint32

const InvalidHandle Handle = ^Handle(0)

func (h Handle) Valid() bool {
	return h != InvalidHandle
}

/**
 * @brief An entity of a scene. The transform is owned by the actor; the
 * parent and children are handles into the same scene, so the actor never
 * owns another actor. Global is only valid after the scene's transform pass.
 */
type Actor struct {
	ID   uuid.UUID
	Name string
	// Tag groups actors, e.g. "Enemy". Behaviors match on it.
	Tag       string
	Transform math.Transform2D
	Collider  collision.Collider
	Shape     *renderer.Shape
	Behavior  Behavior

	handle   Handle
	parent   Handle
	children []Handle
	started  bool
}

func NewActor(name string, position math.Vec2) *Actor {
	return &Actor{
		ID:        uuid.New(),
		Name:      name,
		Transform: math.TransformFromPosition2D(position),
		handle:    InvalidHandle,
		parent:    InvalidHandle,
	}
}

// Handle returns the actor's handle, or InvalidHandle when it is not in a scene.
func (a *Actor) Handle() Handle {
	return a.handle
}

func (a *Actor) Parent() Handle {
	return a.parent
}

func (a *Actor) HasParent() bool {
	return a.parent.Valid()
}

// Children returns a copy of the child handles in attach order.
func (a *Actor) Children() []Handle {
	out := make([]Handle, len(a.children))
	copy(out, a.children)
	return out
}

func (a *Actor) Started() bool {
	return a.started
}

// WorldPosition returns the translation of the global transform.
func (a *Actor) WorldPosition() math.Vec2 {
	return a.Transform.WorldPosition()
}

// SetAABBCollider replaces the collider with a box of the given size.
func (a *Actor) SetAABBCollider(width, height float32) *collision.AABBCollider {
	c := collision.NewAABBCollider(a, width, height)
	a.Collider = c
	return c
}

// SetCircleCollider replaces the collider with a circle of the given radius.
func (a *Actor) SetCircleCollider(radius float32) *collision.CircleCollider {
	c := collision.NewCircleCollider(a, radius)
	a.Collider = c
	return c
}

// CheckForCollision reports whether the two actors' colliders overlap.
// Actors without a collider never collide.
func (a *Actor) CheckForCollision(other *Actor) bool {
	if other == nil || a.Collider == nil || other.Collider == nil {
		return false
	}
	return a.Collider.CheckCollision(other.Collider)
}

func (a *Actor) removeChild(child Handle) bool {
	for i, h := range a.children {
		if h == child {
			a.children = append(a.children[:i], a.children[i+1:]...)
			return true
		}
	}
	return false
}
