package engine

import (
	"github.com/spaghettifunk/mathforgames/engine/renderer"
)

// Game holds the application config and the hooks the engine calls.
// Every hook is optional.
type Game struct {
	ApplicationConfig *ApplicationConfig
	State             interface{}
	FnInitialize      Initialize
	FnUpdate          Update
	FnRender          Render
	FnOnResize        OnResize
	FnShutdown        Shutdown
}

// Initialize runs once the engine is ready, before the first frame.
// Scenes are usually created here.
type Initialize func(e *Engine) error

// Update runs every frame before the current scene updates.
type Update func(e *Engine, deltaTime float64) error

// Render runs after the current scene is drawn, for overlays.
type Render func(r renderer.Renderer, deltaTime float64) error

type OnResize func(width, height int) error

type Shutdown func() error
