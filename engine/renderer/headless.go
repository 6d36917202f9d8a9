package renderer

import (
	"github.com/spaghettifunk/mathforgames/engine/collision"
	"github.com/spaghettifunk/mathforgames/engine/math"
)

// HeadlessRenderer draws nothing and counts what it was asked to draw.
// It backs the engine when no terminal is attached.
type HeadlessRenderer struct {
	Frames    int
	Shapes    int
	Texts     int
	Colliders int
	inFrame   bool
}

func NewHeadlessRenderer() *HeadlessRenderer {
	return &HeadlessRenderer{}
}

func (r *HeadlessRenderer) BeginFrame(deltaTime float64) error {
	r.inFrame = true
	return nil
}

func (r *HeadlessRenderer) EndFrame(deltaTime float64) error {
	if r.inFrame {
		r.Frames++
	}
	r.inFrame = false
	return nil
}

func (r *HeadlessRenderer) Resized(width, height int) error { return nil }

func (r *HeadlessRenderer) Shutdown() error { return nil }

func (r *HeadlessRenderer) DrawShape(shape *Shape, world math.Mat3) {
	if shape != nil {
		r.Shapes++
	}
}

func (r *HeadlessRenderer) DrawText(text string, x, y int, colour string) {
	r.Texts++
}

func (r *HeadlessRenderer) DrawCollider(collider collision.Collider) {
	if collider != nil {
		r.Colliders++
	}
}
