package renderer

import (
	"github.com/spaghettifunk/mathforgames/engine/math"
)

/**
 * @brief A 2D camera. The console renderer maps world positions to
 * screen cells through its view matrix.
 */
type Camera struct {
	/**
	 * @brief The world position shown at the top-left corner of the screen.
	 * NOTE: Do not set this directly, use SetPosition() instead
	 * so the view matrix is recalculated when needed.
	 */
	Position math.Vec2
	/** @brief Internal flag used to determine when the view matrix needs to be rebuilt. */
	IsDirty bool
	/**
	 * @brief The view matrix of this camera.
	 * NOTE: IMPORTANT: Do not get this directly, use GetView() instead.
	 */
	ViewMatrix math.Mat3
}

/** @brief The name of the default camera. */
const DEFAULT_CAMERA_NAME string = "default"

func NewCamera() *Camera {
	camera := &Camera{}
	camera.Reset()
	return camera
}

func (c *Camera) Reset() {
	c.Position = math.NewVec2Zero()
	c.IsDirty = false
	c.ViewMatrix = math.NewMat3Identity()
}

func (c *Camera) GetPosition() math.Vec2 {
	return c.Position
}

func (c *Camera) SetPosition(position math.Vec2) {
	c.Position = position
	c.IsDirty = true
}

// GetView returns the world-to-view transform, the inverse of the camera translation.
func (c *Camera) GetView() math.Mat3 {
	if c.IsDirty {
		c.ViewMatrix = math.NewMat3Translation(-c.Position.X, -c.Position.Y)
		c.IsDirty = false
	}
	return c.ViewMatrix
}

func (c *Camera) Move(amount math.Vec2) {
	c.Position = c.Position.Add(amount)
	c.IsDirty = true
}

// CenterOn moves the camera so target sits in the middle of a view of the given size.
func (c *Camera) CenterOn(target math.Vec2, viewWidth, viewHeight float32) {
	c.SetPosition(target.Sub(math.NewVec2(viewWidth/2, viewHeight/2)))
}
