package testbed

import (
	"errors"
	"io/fs"

	"github.com/spaghettifunk/mathforgames/engine"
	"github.com/spaghettifunk/mathforgames/engine/actors"
	"github.com/spaghettifunk/mathforgames/engine/core"
	"github.com/spaghettifunk/mathforgames/engine/math"
	"github.com/spaghettifunk/mathforgames/engine/renderer"
	"github.com/spaghettifunk/mathforgames/engine/scene"
)

const helpText = "WASD/arrows move  C colliders  Esc quit"

// spin speed of the turret, radians per second
const turretSpin float32 = math.K_QUARTER_PI

type TestGame struct {
	*engine.Game
}

type gameState struct {
	width  int
	height int

	engine *engine.Engine
	player scene.Handle
	turret scene.Handle
}

// NewTestGame reads the application config at configPath. A missing file
// falls back to defaults and a scene built in code.
func NewTestGame(configPath string) (*TestGame, error) {
	config, err := engine.LoadApplicationConfig(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		core.LogWarn("no config at %s, using defaults", configPath)
		config, err = &engine.ApplicationConfig{ShowStats: true}, nil
	}
	if err != nil {
		return nil, err
	}

	tg := &TestGame{
		Game: &engine.Game{
			ApplicationConfig: config,
			State: &gameState{
				player: scene.InvalidHandle,
				turret: scene.InvalidHandle,
			},
		},
	}

	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnRender = tg.Render
	tg.FnOnResize = tg.OnResize
	tg.FnShutdown = tg.Shutdown

	return tg, nil
}

func (g *TestGame) Initialize(e *engine.Engine) error {
	core.LogDebug("TestGame Initialize fn....")
	state := g.State.(*gameState)
	state.engine = e

	if e.CurrentScene() == nil {
		e.AddScene(g.buildArena())
	}
	state.bind(e.CurrentScene())

	e.Events().Register(core.EVENT_CODE_SCENE_RELOADED, g, g.onSceneReloaded)
	e.Events().Register(core.EVENT_CODE_COLLISION, g, g.onCollision)
	return nil
}

// buildArena is the scene used when no scene file is configured: a player,
// two enemies and a spinning turret carrying a barrel as its child.
func (g *TestGame) buildArena() *scene.Scene {
	s := scene.New("arena")

	player := scene.NewActor("player", math.NewVec2(40, 40))
	player.Tag = "Player"
	player.Shape = renderer.NewIconShape('@', "yellow")
	player.SetCircleCollider(6)
	player.Behavior = actors.NewPlayer(60)
	target := s.AddActor(player)

	grunt := scene.NewActor("grunt", math.NewVec2(200, 40))
	grunt.Tag = actors.EnemyTag
	grunt.Transform.SetRotation(math.K_PI)
	grunt.Shape = renderer.NewIconShape('E', "red")
	grunt.SetAABBCollider(8, 16)
	grunt.Behavior = actors.NewEnemy(25, math.DegToRad(45), target)
	s.AddActor(grunt)

	stalker := scene.NewActor("stalker", math.NewVec2(40, 200))
	stalker.Tag = actors.EnemyTag
	stalker.Transform.SetRotation(-math.K_HALF_PI)
	stalker.Shape = renderer.NewIconShape('S', "orangered")
	stalker.SetCircleCollider(6)
	enemy := actors.NewEnemy(15, math.DegToRad(30), target)
	enemy.FaceTarget = true
	stalker.Behavior = enemy
	s.AddActor(stalker)

	turret := scene.NewActor("turret", math.NewVec2(160, 160))
	turret.Shape = renderer.NewRectShape(16, 16, "steelblue")
	turretHandle := s.AddActor(turret)

	barrel := scene.NewActor("barrel", math.NewVec2(24, 0))
	barrel.Shape = renderer.NewIconShape('o', "lightskyblue")
	barrelHandle := s.AddActor(barrel)
	if err := s.AddChild(turretHandle, barrelHandle); err != nil {
		core.LogError("%s", err)
	}
	s.UpdateTransforms()
	return s
}

func (g *TestGame) Update(e *engine.Engine, deltaTime float64) error {
	state := g.State.(*gameState)
	s := e.CurrentScene()
	if s == nil {
		return nil
	}

	if turret, ok := s.Get(state.turret); ok {
		turret.Transform.Rotate(turretSpin * float32(deltaTime))
	}

	// keep the player in the middle of the terminal
	if cr, ok := e.Renderer().(*renderer.ConsoleRenderer); ok {
		if player, ok := s.Get(state.player); ok {
			w, h := cr.ViewSize()
			cr.Camera().CenterOn(player.WorldPosition(), w, h)
		}
	}
	return nil
}

func (g *TestGame) Render(r renderer.Renderer, deltaTime float64) error {
	state := g.State.(*gameState)
	if state.height > 0 {
		r.DrawText(helpText, 0, state.height-1, "gray")
	}
	return nil
}

func (g *TestGame) OnResize(width, height int) error {
	state := g.State.(*gameState)
	state.width = width
	state.height = height
	return nil
}

func (g *TestGame) Shutdown() error {
	core.LogInfo("testbed shutting down")
	return nil
}

func (g *TestGame) onSceneReloaded(context core.EventContext, listener interface{}) bool {
	state := g.State.(*gameState)
	core.LogInfo("scene reloaded from %v", context.Data)
	state.bind(state.engine.CurrentScene())
	return false
}

func (g *TestGame) onCollision(context core.EventContext, listener interface{}) bool {
	ce, ok := context.Data.(*core.CollisionEvent)
	if !ok {
		return false
	}
	core.LogDebug("collision between actors %d and %d", ce.Actor, ce.Other)
	return false
}

// bind looks up the actors the game drives itself.
func (state *gameState) bind(s *scene.Scene) {
	state.player, state.turret = scene.InvalidHandle, scene.InvalidHandle
	if s == nil {
		return
	}
	if a, ok := s.Find("player"); ok {
		state.player = a.Handle()
	}
	if a, ok := s.Find("turret"); ok {
		state.turret = a.Handle()
	}
}
