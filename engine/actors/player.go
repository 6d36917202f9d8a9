package actors

import (
	"github.com/spaghettifunk/mathforgames/engine/core"
	"github.com/spaghettifunk/mathforgames/engine/math"
	"github.com/spaghettifunk/mathforgames/engine/scene"
)

// EnemyTag marks actors that end the game when the player touches them.
const EnemyTag = "Enemy"

// Player moves its actor with the direction keys. Screen y grows
// downwards, so "up" decreases y.
type Player struct {
	Speed float32
	// Velocity is the displacement applied in the last update.
	Velocity math.Vec2
}

func NewPlayer(speed float32) *Player {
	return &Player{Speed: speed}
}

func (p *Player) Update(ctx *scene.Context, self *scene.Actor) {
	var direction math.Vec2
	if ctx.IsDirectionDown(core.DirectionLeft) {
		direction.X--
	}
	if ctx.IsDirectionDown(core.DirectionRight) {
		direction.X++
	}
	if ctx.IsDirectionDown(core.DirectionUp) {
		direction.Y--
	}
	if ctx.IsDirectionDown(core.DirectionDown) {
		direction.Y++
	}

	p.Velocity = direction.Normalize().MulScalar(p.Speed * float32(ctx.DeltaTime))
	self.Transform.Translate(p.Velocity.X, p.Velocity.Y)
}

// OnCollision asks the application to quit when other is an enemy.
func (p *Player) OnCollision(ctx *scene.Context, self, other *scene.Actor) {
	if other.Tag != EnemyTag {
		return
	}
	core.LogInfo("%s was caught by %s", self.Name, other.Name)
	ctx.Quit(self)
}
