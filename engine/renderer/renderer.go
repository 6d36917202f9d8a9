package renderer

import (
	"github.com/spaghettifunk/mathforgames/engine/collision"
	"github.com/spaghettifunk/mathforgames/engine/core"
	"github.com/spaghettifunk/mathforgames/engine/math"
)

// Renderer draws one frame at a time. Positions handed to DrawShape are
// world transforms; DrawText takes screen cells.
type Renderer interface {
	BeginFrame(deltaTime float64) error
	EndFrame(deltaTime float64) error
	Resized(width, height int) error
	Shutdown() error

	DrawShape(shape *Shape, world math.Mat3)
	DrawText(text string, x, y int, colour string)
	DrawCollider(collider collision.Collider)
}

type RendererType uint8

const (
	Console RendererType = iota
	Headless
)

// DrawFrame wraps draw in a BeginFrame/EndFrame pair.
func DrawFrame(r Renderer, deltaTime float64, draw func(r Renderer) error) error {
	if err := r.BeginFrame(deltaTime); err != nil {
		core.LogError("%s", err)
		return err
	}
	if draw != nil {
		if err := draw(r); err != nil {
			core.LogError("frame draw failed: %s", err.Error())
			return err
		}
	}
	if err := r.EndFrame(deltaTime); err != nil {
		core.LogError("RendererEndFrame failed. Application shutting down...")
		return err
	}
	return nil
}
