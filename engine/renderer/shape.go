package renderer

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/colornames"

	"github.com/spaghettifunk/mathforgames/engine/core"
)

type ShapeKind uint8

const (
	ShapeKindIcon ShapeKind = iota
	ShapeKindRect
	ShapeKindCircle
	ShapeKindSprite
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeKindIcon:
		return "icon"
	case ShapeKindRect:
		return "rect"
	case ShapeKindCircle:
		return "circle"
	case ShapeKindSprite:
		return "sprite"
	}
	return "unknown"
}

// ParseShapeKind maps the names used in scene files to a ShapeKind.
func ParseShapeKind(name string) (ShapeKind, error) {
	switch strings.ToLower(name) {
	case "", "icon":
		return ShapeKindIcon, nil
	case "rect", "rectangle", "box":
		return ShapeKindRect, nil
	case "circle":
		return ShapeKindCircle, nil
	case "sprite":
		return ShapeKindSprite, nil
	}
	return 0, fmt.Errorf("shape %q: %w", name, core.ErrUnknownShape)
}

/**
 * @brief Describes how an actor looks. Sizes are in world units and
 * are scaled by the actor's world transform when drawn.
 */
type Shape struct {
	Kind ShapeKind
	/** @brief The glyph drawn for icons, and for sprites on backends that cannot load images. */
	Icon rune
	/** @brief An SVG colour name such as "red" or "lightseagreen". */
	Colour string
	Width  float32
	Height float32
	Radius float32
	/** @brief Opaque image path handed to backends that draw sprites. */
	SpritePath string
}

func NewIconShape(icon rune, colour string) *Shape {
	return &Shape{Kind: ShapeKindIcon, Icon: icon, Colour: colour}
}

func NewRectShape(width, height float32, colour string) *Shape {
	return &Shape{Kind: ShapeKindRect, Width: width, Height: height, Colour: colour}
}

func NewCircleShape(radius float32, colour string) *Shape {
	return &Shape{Kind: ShapeKindCircle, Radius: radius, Colour: colour}
}

func NewSpriteShape(path string, fallback rune) *Shape {
	return &Shape{Kind: ShapeKindSprite, SpritePath: path, Icon: fallback}
}

// LookupColour resolves an SVG colour name or a #rrggbb value. Unknown
// names report false.
func LookupColour(name string) (color.RGBA, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if strings.HasPrefix(name, "#") && len(name) == 7 {
		var c color.RGBA
		if _, err := fmt.Sscanf(name, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
			return color.RGBA{}, false
		}
		c.A = 255
		return c, true
	}
	c, ok := colornames.Map[name]
	return c, ok
}

func terminalColour(name string) tcell.Color {
	c, ok := LookupColour(name)
	if !ok {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
