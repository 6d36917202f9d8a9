package renderer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/spaghettifunk/mathforgames/engine/collision"
	"github.com/spaghettifunk/mathforgames/engine/core"
	"github.com/spaghettifunk/mathforgames/engine/math"
)

const (
	fillRune        = '█'
	colliderRune    = '·'
	defaultIconRune = '?'
)

// ConsoleRenderer draws into a tcell screen. Each cell covers
// CellWidth x CellHeight world units; the camera picks the world
// position shown at cell (0,0). The screen is owned by the caller.
type ConsoleRenderer struct {
	screen     tcell.Screen
	camera     *Camera
	CellWidth  float32
	CellHeight float32
	// DebugColour is used for collider outlines.
	DebugColour string

	width  int
	height int
}

func NewConsoleRenderer(screen tcell.Screen, cellWidth, cellHeight float32) *ConsoleRenderer {
	if cellWidth <= 0 {
		cellWidth = 1
	}
	if cellHeight <= 0 {
		cellHeight = 1
	}
	w, h := screen.Size()
	return &ConsoleRenderer{
		screen:      screen,
		camera:      NewCamera(),
		CellWidth:   cellWidth,
		CellHeight:  cellHeight,
		DebugColour: "lime",
		width:       w,
		height:      h,
	}
}

func (r *ConsoleRenderer) Camera() *Camera {
	return r.camera
}

// ViewSize returns the world area covered by the screen.
func (r *ConsoleRenderer) ViewSize() (float32, float32) {
	return float32(r.width) * r.CellWidth, float32(r.height) * r.CellHeight
}

func (r *ConsoleRenderer) BeginFrame(deltaTime float64) error {
	r.screen.Clear()
	return nil
}

func (r *ConsoleRenderer) EndFrame(deltaTime float64) error {
	r.screen.Show()
	return nil
}

func (r *ConsoleRenderer) Resized(width, height int) error {
	r.width, r.height = width, height
	r.screen.Sync()
	core.LogDebug("console renderer resized to %dx%d cells", width, height)
	return nil
}

func (r *ConsoleRenderer) Shutdown() error {
	r.screen.Clear()
	r.screen.Show()
	return nil
}

func (r *ConsoleRenderer) DrawShape(shape *Shape, world math.Mat3) {
	if shape == nil {
		return
	}
	style := tcell.StyleDefault.Foreground(terminalColour(shape.Colour))
	center := world.Translation()
	scale := world.ScaleFactors()

	switch shape.Kind {
	case ShapeKindRect:
		w, h := shape.Width*scale.X, shape.Height*scale.Y
		r.fillRect(math.NewExtents2DFromCenter(center, w, h), style)
	case ShapeKindCircle:
		radius := shape.Radius * max(scale.X, scale.Y)
		r.fillCircle(center, radius, style)
	default:
		icon := shape.Icon
		if icon == 0 {
			icon = defaultIconRune
		}
		x, y := r.toCell(center)
		r.screen.SetContent(x, y, icon, nil, style)
	}
}

func (r *ConsoleRenderer) DrawText(text string, x, y int, colour string) {
	style := tcell.StyleDefault.Foreground(terminalColour(colour))
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col++
	}
}

// DrawCollider outlines a collider's world bounds.
func (r *ConsoleRenderer) DrawCollider(collider collision.Collider) {
	if collider == nil {
		return
	}
	style := tcell.StyleDefault.Foreground(terminalColour(r.DebugColour))

	switch c := collider.(type) {
	case *collision.AABBCollider:
		r.outlineRect(c.Bounds(), style)
	case *collision.CircleCollider:
		r.outlineCircle(c.Center(), c.Radius, style)
	}
}

// toCell maps a world position to the screen cell containing it.
func (r *ConsoleRenderer) toCell(p math.Vec2) (int, int) {
	v := r.camera.GetView().TransformPoint(p)
	return int(math.Floor(v.X / r.CellWidth)), int(math.Floor(v.Y / r.CellHeight))
}

// cellCenter is the inverse of toCell, returning the world centre of a cell.
func (r *ConsoleRenderer) cellCenter(x, y int) math.Vec2 {
	origin := r.camera.GetPosition()
	return math.NewVec2(
		origin.X+(float32(x)+0.5)*r.CellWidth,
		origin.Y+(float32(y)+0.5)*r.CellHeight,
	)
}

func (r *ConsoleRenderer) fillRect(bounds math.Extents2D, style tcell.Style) {
	x0, y0 := r.toCell(bounds.Min)
	x1, y1 := r.toCell(bounds.Max)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.screen.SetContent(x, y, fillRune, nil, style)
		}
	}
}

func (r *ConsoleRenderer) outlineRect(bounds math.Extents2D, style tcell.Style) {
	x0, y0 := r.toCell(bounds.Min)
	x1, y1 := r.toCell(bounds.Max)
	for x := x0; x <= x1; x++ {
		r.screen.SetContent(x, y0, colliderRune, nil, style)
		r.screen.SetContent(x, y1, colliderRune, nil, style)
	}
	for y := y0; y <= y1; y++ {
		r.screen.SetContent(x0, y, colliderRune, nil, style)
		r.screen.SetContent(x1, y, colliderRune, nil, style)
	}
}

func (r *ConsoleRenderer) fillCircle(center math.Vec2, radius float32, style tcell.Style) {
	r.eachCellAround(center, radius, func(x, y int, distance float32) {
		if distance <= radius {
			r.screen.SetContent(x, y, fillRune, nil, style)
		}
	})
	// Circles smaller than a cell still show up.
	x, y := r.toCell(center)
	r.screen.SetContent(x, y, fillRune, nil, style)
}

func (r *ConsoleRenderer) outlineCircle(center math.Vec2, radius float32, style tcell.Style) {
	band := max(r.CellWidth, r.CellHeight) / 2
	r.eachCellAround(center, radius, func(x, y int, distance float32) {
		if distance >= radius-band && distance <= radius+band {
			r.screen.SetContent(x, y, colliderRune, nil, style)
		}
	})
}

func (r *ConsoleRenderer) eachCellAround(center math.Vec2, radius float32, fn func(x, y int, distance float32)) {
	reach := math.NewVec2(radius, radius)
	x0, y0 := r.toCell(center.Sub(reach))
	x1, y1 := r.toCell(center.Add(reach))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			fn(x, y, r.cellCenter(x, y).Distance(center))
		}
	}
}
