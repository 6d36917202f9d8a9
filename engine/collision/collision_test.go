package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/mathforgames/engine/core"
	"github.com/spaghettifunk/mathforgames/engine/math"
)

type body struct {
	position math.Vec2
}

func (b *body) WorldPosition() math.Vec2 {
	return b.position
}

func at(x, y float32) *body {
	return &body{position: math.NewVec2(x, y)}
}

func TestAABBEdges(t *testing.T) {
	box := NewAABBCollider(at(15, 15), 10, 4)
	assert.Equal(t, float32(10), box.Left())
	assert.Equal(t, float32(20), box.Right())
	assert.Equal(t, float32(13), box.Top())
	assert.Equal(t, float32(17), box.Bottom())
	assert.Equal(t, math.Extents2D{Min: math.NewVec2(10, 13), Max: math.NewVec2(20, 17)}, box.Bounds())
}

func TestAABBvsAABB(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *AABBCollider
		expected bool
	}{
		{"overlapping", NewAABBCollider(at(0, 0), 10, 10), NewAABBCollider(at(5, 5), 10, 10), true},
		{"touching edges", NewAABBCollider(at(0, 0), 10, 10), NewAABBCollider(at(10, 0), 10, 10), true},
		{"apart on x", NewAABBCollider(at(0, 0), 10, 10), NewAABBCollider(at(11, 0), 10, 10), false},
		{"apart on y", NewAABBCollider(at(0, 0), 10, 10), NewAABBCollider(at(0, -20), 10, 10), false},
		{"contained", NewAABBCollider(at(0, 0), 100, 100), NewAABBCollider(at(3, 3), 1, 1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.CheckCollisionAABB(tt.b))
			assert.Equal(t, tt.expected, tt.b.CheckCollisionAABB(tt.a), "symmetric")
			assert.Equal(t, tt.expected, tt.a.CheckCollision(tt.b))
		})
	}
}

func TestCirclevsCircle(t *testing.T) {
	a := NewCircleCollider(at(0, 0), 5)
	assert.True(t, a.CheckCollision(NewCircleCollider(at(8, 0), 3)), "touching")
	assert.True(t, a.CheckCollision(NewCircleCollider(at(3, 4), 1)))
	assert.False(t, a.CheckCollision(NewCircleCollider(at(10, 0), 4)))
}

func TestCirclevsAABB(t *testing.T) {
	// box spanning (10,10)-(20,20)
	box := NewAABBCollider(at(15, 15), 10, 10)

	small := NewCircleCollider(at(0, 0), 5)
	assert.False(t, small.CheckCollision(box))
	assert.False(t, box.CheckCollision(small))

	large := NewCircleCollider(at(0, 0), 20)
	assert.True(t, large.CheckCollision(box))
	assert.True(t, box.CheckCollision(large))

	inside := NewCircleCollider(at(15, 15), 1)
	assert.True(t, inside.CheckCollisionAABB(box), "centre inside the box")
}

func TestSelfCollision(t *testing.T) {
	owner := at(0, 0)
	box := NewAABBCollider(owner, 10, 10)
	circle := NewCircleCollider(owner, 10)

	assert.False(t, box.CheckCollision(box))
	assert.False(t, circle.CheckCollision(circle))
	assert.False(t, box.CheckCollision(circle), "same owner, different colliders")
	assert.False(t, circle.CheckCollision(box))
}

func TestNilOther(t *testing.T) {
	box := NewAABBCollider(at(0, 0), 10, 10)
	assert.False(t, box.CheckCollision(nil))
	assert.False(t, box.CheckCollisionAABB(nil))
	assert.False(t, box.CheckCollisionCircle(nil))
}

func TestColliderFollowsOwner(t *testing.T) {
	a, b := at(0, 0), at(100, 0)
	ca := NewCircleCollider(a, 5)
	cb := NewCircleCollider(b, 5)
	assert.False(t, ca.CheckCollision(cb))

	b.position = math.NewVec2(9, 0)
	assert.True(t, ca.CheckCollision(cb))
}

func TestParseColliderKind(t *testing.T) {
	kind, err := ParseColliderKind("Circle")
	require.NoError(t, err)
	assert.Equal(t, ColliderKindCircle, kind)

	kind, err = ParseColliderKind("box")
	require.NoError(t, err)
	assert.Equal(t, ColliderKindAABB, kind)

	_, err = ParseColliderKind("capsule")
	assert.ErrorIs(t, err, core.ErrUnknownCollider)
}
