package actors

import (
	"github.com/spaghettifunk/mathforgames/engine/math"
	"github.com/spaghettifunk/mathforgames/engine/scene"
)

// DefaultSightDistance is how far an enemy sees when no distance is set.
const DefaultSightDistance float32 = 150

/**
 * @brief Chases a target actor. The enemy only moves while the target is
 * inside its viewing cone: the angle between the enemy's forward axis and
 * the direction to the target must be below MaxViewingAngle, and the target
 * no further than SightDistance. Forward is the X axis of the enemy's world
 * transform.
 */
type Enemy struct {
	Speed float32
	// MaxViewingAngle is the half-angle of the viewing cone, in radians.
	MaxViewingAngle float32
	SightDistance   float32
	Target          scene.Handle
	// FaceTarget turns the enemy towards the target while it chases.
	FaceTarget bool
	// Velocity is the displacement applied in the last update.
	Velocity math.Vec2
}

func NewEnemy(speed, maxViewingAngle float32, target scene.Handle) *Enemy {
	return &Enemy{
		Speed:           speed,
		MaxViewingAngle: maxViewingAngle,
		SightDistance:   DefaultSightDistance,
		Target:          target,
	}
}

func (e *Enemy) Update(ctx *scene.Context, self *scene.Actor) {
	e.Velocity = math.NewVec2Zero()
	target, ok := ctx.Scene.Get(e.Target)
	if !ok {
		return
	}
	if !e.TargetInSight(self, target) {
		return
	}

	direction := target.WorldPosition().Sub(self.WorldPosition()).Normalize()
	e.Velocity = direction.MulScalar(e.Speed * float32(ctx.DeltaTime))
	self.Transform.Translate(e.Velocity.X, e.Velocity.Y)
	if e.FaceTarget {
		self.Transform.Face(direction)
	}
}

func (e *Enemy) OnCollision(ctx *scene.Context, self, other *scene.Actor) {}

// TargetInSight reports whether target is inside self's viewing cone.
func (e *Enemy) TargetInSight(self, target *scene.Actor) bool {
	if target == nil {
		return false
	}
	sight := e.SightDistance
	if sight <= 0 {
		sight = DefaultSightDistance
	}

	toTarget := target.WorldPosition().Sub(self.WorldPosition())
	angle := math.Acos(toTarget.Normalize().Dot(self.Transform.WorldForward()))
	return angle < e.MaxViewingAngle && toTarget.Length() <= sight
}

// GetTargetInSight resolves the tracked target in the actor's scene.
func (e *Enemy) GetTargetInSight(s *scene.Scene, self *scene.Actor) bool {
	target, ok := s.Get(e.Target)
	if !ok {
		return false
	}
	return e.TargetInSight(self, target)
}
