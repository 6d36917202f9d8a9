package actors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/mathforgames/engine/assets/loaders"
	"github.com/spaghettifunk/mathforgames/engine/collision"
	"github.com/spaghettifunk/mathforgames/engine/containers"
	"github.com/spaghettifunk/mathforgames/engine/core"
	"github.com/spaghettifunk/mathforgames/engine/math"
	"github.com/spaghettifunk/mathforgames/engine/renderer"
	"github.com/spaghettifunk/mathforgames/engine/scene"
)

const tol = 1e-4

type keys map[core.Direction]bool

func (k keys) IsDirectionDown(d core.Direction) bool {
	return k[d]
}

type poster struct {
	events []core.EventContext
	fired  []core.EventContext
	full   bool
}

func (p *poster) Post(e core.EventContext) error {
	if p.full {
		return containers.ErrQueueFull
	}
	p.events = append(p.events, e)
	return nil
}

func (p *poster) Fire(e core.EventContext) bool {
	p.fired = append(p.fired, e)
	return true
}

func assertVec2(t *testing.T, expected, actual math.Vec2) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, tol)
	assert.InDelta(t, expected.Y, actual.Y, tol)
}

func TestEnemyTargetInSight(t *testing.T) {
	enemy := NewEnemy(10, math.K_QUARTER_PI, scene.InvalidHandle)
	self := scene.NewActor("enemy", math.NewVec2Zero())

	tests := []struct {
		name     string
		target   math.Vec2
		expected bool
	}{
		{"directly ahead", math.NewVec2(100, 0), true},
		{"directly behind", math.NewVec2(-100, 0), false},
		{"ahead at the sight limit", math.NewVec2(150, 0), true},
		{"ahead beyond the sight limit", math.NewVec2(151, 0), false},
		{"inside the cone", math.NewVec2(50, 30), true},
		{"outside the cone", math.NewVec2(30, 50), false},
		{"to the side", math.NewVec2(0, 10), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := scene.NewActor("target", tt.target)
			assert.Equal(t, tt.expected, enemy.TargetInSight(self, target))
		})
	}
	assert.False(t, enemy.TargetInSight(self, nil))
}

func TestEnemyForwardFollowsRotation(t *testing.T) {
	enemy := NewEnemy(10, math.K_QUARTER_PI, scene.InvalidHandle)
	self := scene.NewActor("enemy", math.NewVec2Zero())
	self.Transform.SetRotation(math.K_PI)
	self.Transform.UpdateTransforms(nil)

	assert.True(t, enemy.TargetInSight(self, scene.NewActor("behind", math.NewVec2(-100, 0))))
	assert.False(t, enemy.TargetInSight(self, scene.NewActor("ahead", math.NewVec2(100, 0))))
}

func TestEnemyChasesOnlyWhenInSight(t *testing.T) {
	s := scene.New("chase")
	target := s.AddActor(scene.NewActor("player", math.NewVec2(100, 0)))

	chaser := scene.NewActor("chaser", math.NewVec2Zero())
	enemy := NewEnemy(10, math.K_QUARTER_PI, target)
	chaser.Behavior = enemy
	s.AddActor(chaser)

	ctx := &scene.Context{DeltaTime: 1}
	s.Start(ctx)
	s.Update(ctx)
	assertVec2(t, math.NewVec2(10, 0), chaser.WorldPosition())
	assertVec2(t, math.NewVec2(10, 0), enemy.Velocity)
	assert.True(t, enemy.GetTargetInSight(s, chaser))

	p, _ := s.Get(target)
	p.Transform.SetTranslation(-100, 0)
	s.UpdateTransforms()
	s.Update(ctx)
	assertVec2(t, math.NewVec2(10, 0), chaser.WorldPosition())
	assertVec2(t, math.NewVec2Zero(), enemy.Velocity)
	assert.False(t, enemy.GetTargetInSight(s, chaser))

	enemy.Target = scene.Handle(42)
	s.Update(ctx)
	assertVec2(t, math.NewVec2(10, 0), chaser.WorldPosition())
}

func TestEnemyIgnoresActorReusingTargetSlot(t *testing.T) {
	s := scene.New("chase")
	target := s.AddActor(scene.NewActor("player", math.NewVec2(50, 0)))
	chaser := scene.NewActor("chaser", math.NewVec2Zero())
	enemy := NewEnemy(10, math.K_PI, target)
	chaser.Behavior = enemy
	s.AddActor(chaser)

	require.NoError(t, s.RemoveActor(target))
	rock := s.AddActor(scene.NewActor("rock", math.NewVec2(50, 0)))
	require.NotEqual(t, target, rock)

	ctx := &scene.Context{DeltaTime: 1}
	s.Update(ctx)
	assertVec2(t, math.NewVec2Zero(), chaser.WorldPosition())
	assertVec2(t, math.NewVec2Zero(), enemy.Velocity)
	assert.False(t, enemy.GetTargetInSight(s, chaser))
}

func TestEnemyFaceTarget(t *testing.T) {
	s := scene.New("chase")
	target := s.AddActor(scene.NewActor("player", math.NewVec2(0, 50)))

	chaser := scene.NewActor("chaser", math.NewVec2Zero())
	enemy := NewEnemy(10, math.K_PI, target)
	enemy.FaceTarget = true
	chaser.Behavior = enemy
	s.AddActor(chaser)

	s.Update(&scene.Context{DeltaTime: 1})
	assertVec2(t, math.NewVec2(0, 10), chaser.WorldPosition())
	assertVec2(t, math.NewVec2(0, 1), chaser.Transform.WorldForward())
}

func TestEnemyFaceTargetAsChild(t *testing.T) {
	s := scene.New("turret")
	target := s.AddActor(scene.NewActor("player", math.NewVec2(0, 50)))

	mount := scene.NewActor("mount", math.NewVec2Zero())
	mount.Transform.SetRotation(math.K_PI)
	mountHandle := s.AddActor(mount)

	gunner := scene.NewActor("gunner", math.NewVec2Zero())
	enemy := NewEnemy(0, math.K_PI, target)
	enemy.FaceTarget = true
	gunner.Behavior = enemy
	require.NoError(t, s.AddChild(mountHandle, s.AddActor(gunner)))
	s.UpdateTransforms()
	assertVec2(t, math.NewVec2(-1, 0), gunner.Transform.WorldForward())

	s.Update(&scene.Context{DeltaTime: 1})
	assertVec2(t, math.NewVec2(0, 1), gunner.Transform.WorldForward())
}

func TestPlayerMovesNormalized(t *testing.T) {
	s := scene.New("move")
	actor := scene.NewActor("player", math.NewVec2(10, 10))
	player := NewPlayer(10)
	actor.Behavior = player
	s.AddActor(actor)

	ctx := &scene.Context{DeltaTime: 0.5, Input: keys{core.DirectionRight: true, core.DirectionDown: true}}
	s.Update(ctx)
	d := float32(5 / 1.41421356)
	assertVec2(t, math.NewVec2(10+d, 10+d), actor.WorldPosition())
	assert.InDelta(t, 5, player.Velocity.Length(), tol)

	ctx.Input = keys{core.DirectionUp: true, core.DirectionLeft: true, core.DirectionRight: true}
	s.Update(ctx)
	assertVec2(t, math.NewVec2(10+d, 10+d-5), actor.WorldPosition())

	ctx.Input = nil
	s.Update(ctx)
	assertVec2(t, math.NewVec2(10+d, 10+d-5), actor.WorldPosition())
}

func TestPlayerQuitsOnEnemyCollision(t *testing.T) {
	s := scene.New("catch")
	player := scene.NewActor("player", math.NewVec2Zero())
	player.Behavior = NewPlayer(0)
	player.SetCircleCollider(5)

	friend := scene.NewActor("friend", math.NewVec2(3, 0))
	friend.SetCircleCollider(5)

	s.AddActor(player)
	s.AddActor(friend)

	events := &poster{}
	ctx := &scene.Context{Events: events}
	s.Update(ctx)
	assert.Empty(t, events.fired, "friendly collision")

	grunt := scene.NewActor("grunt", math.NewVec2(0, 3))
	grunt.Tag = EnemyTag
	grunt.SetAABBCollider(2, 2)
	s.AddActor(grunt)

	events.events = nil
	s.Update(ctx)
	var quits int
	for _, e := range events.fired {
		if e.Type == core.EVENT_CODE_APPLICATION_QUIT {
			quits++
			assert.Same(t, player, e.Sender)
		}
	}
	assert.Equal(t, 1, quits)
}

func TestPlayerQuitsWhenQueueIsFull(t *testing.T) {
	s := scene.New("full")
	player := scene.NewActor("player", math.NewVec2Zero())
	player.Behavior = NewPlayer(0)
	player.SetCircleCollider(5)
	grunt := scene.NewActor("grunt", math.NewVec2(1, 0))
	grunt.Tag = EnemyTag
	grunt.SetCircleCollider(5)
	s.AddActor(player)
	s.AddActor(grunt)

	events := &poster{full: true}
	s.Update(&scene.Context{Events: events})
	assert.Empty(t, events.events)
	require.Len(t, events.fired, 1)
	assert.Equal(t, core.EVENT_CODE_APPLICATION_QUIT, events.fired[0].Type)
}

func TestBuildScene(t *testing.T) {
	cfg := &loaders.SceneConfig{
		Name:           "arena",
		DebugColliders: true,
		Actors: []loaders.ActorConfig{
			{
				Name:     "player",
				Position: loaders.Vec2Config{X: 10, Y: 20},
				Shape:    &loaders.ShapeConfig{Icon: "@", Colour: "yellow"},
				Collider: &loaders.ColliderConfig{Kind: "circle", Radius: 4},
				Behavior: &loaders.BehaviorConfig{Kind: "player", Speed: 50},
			},
			{
				Name:     "sword",
				Parent:   "player",
				Position: loaders.Vec2Config{X: 5},
				Scale:    &loaders.Vec2Config{X: 2, Y: 1},
				Shape:    &loaders.ShapeConfig{Kind: "rect", Width: 2, Height: 1},
			},
			{
				Name:     "grunt",
				Tag:      EnemyTag,
				Position: loaders.Vec2Config{X: 100, Y: 20},
				Rotation: 180,
				Collider: &loaders.ColliderConfig{Kind: "aabb", Width: 8, Height: 8},
				Behavior: &loaders.BehaviorConfig{Kind: "enemy", Speed: 20, ViewingAngle: 45, Target: "player", SightDistance: 200},
			},
		},
	}

	s, err := BuildScene(cfg)
	require.NoError(t, err)
	assert.Equal(t, "arena", s.Name)
	assert.True(t, s.DebugColliders)
	require.Equal(t, 3, s.Len())

	player, ok := s.Find("player")
	require.True(t, ok)
	assert.Equal(t, '@', player.Shape.Icon)
	assert.Equal(t, renderer.ShapeKindIcon, player.Shape.Kind)
	assert.IsType(t, &collision.CircleCollider{}, player.Collider)
	assert.IsType(t, &Player{}, player.Behavior)

	sword, _ := s.Find("sword")
	assert.Equal(t, player.Handle(), sword.Parent())
	assertVec2(t, math.NewVec2(15, 20), sword.WorldPosition())
	assertVec2(t, math.NewVec2(2, 1), sword.Transform.LocalScale())

	grunt, _ := s.Find("grunt")
	enemy := grunt.Behavior.(*Enemy)
	assert.Equal(t, player.Handle(), enemy.Target)
	assert.InDelta(t, math.K_QUARTER_PI, enemy.MaxViewingAngle, tol)
	assert.Equal(t, float32(200), enemy.SightDistance)
	assertVec2(t, math.NewVec2(-1, 0), grunt.Transform.WorldForward())
	assert.True(t, enemy.GetTargetInSight(s, grunt), "the grunt faces the player 90 units away")
}

func TestBuildSceneErrors(t *testing.T) {
	tests := []struct {
		name   string
		actor  loaders.ActorConfig
		target error
	}{
		{"collider", loaders.ActorConfig{Name: "a", Collider: &loaders.ColliderConfig{Kind: "capsule"}}, core.ErrUnknownCollider},
		{"shape", loaders.ActorConfig{Name: "a", Shape: &loaders.ShapeConfig{Kind: "hexagon"}}, core.ErrUnknownShape},
		{"behavior", loaders.ActorConfig{Name: "a", Behavior: &loaders.BehaviorConfig{Kind: "npc"}}, core.ErrUnknownBehavior},
		{"parent", loaders.ActorConfig{Name: "a", Parent: "ghost"}, core.ErrActorNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildScene(&loaders.SceneConfig{Name: "bad", Actors: []loaders.ActorConfig{tt.actor}})
			assert.ErrorIs(t, err, tt.target)
		})
	}
}
