package loaders

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"

	"github.com/spaghettifunk/mathforgames/engine/core"
)

// SpriteImage is a decoded sprite. The console draws a sprite as a single
// glyph, so only its size and average colour are kept.
type SpriteImage struct {
	Width   int
	Height  int
	Average color.RGBA
}

// Hex returns the average colour as #rrggbb.
func (si *SpriteImage) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", si.Average.R, si.Average.G, si.Average.B)
}

// SpriteLoader decodes PNG, JPEG and BMP sprites into a *SpriteImage.
type SpriteLoader struct{}

func (sl *SpriteLoader) Load(path string, params interface{}) (*Resource, error) {
	sprite, err := LoadSprite(path)
	if err != nil {
		return nil, err
	}
	return &Resource{
		Name:     resourceName(path),
		FullPath: path,
		Type:     ResourceTypeSprite,
		Data:     sprite,
	}, nil
}

func (sl *SpriteLoader) Unload(*Resource) error {
	return nil
}

func LoadSprite(path string) (*SpriteImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("sprite %s: %w", path, err)
	}
	bounds := img.Bounds()
	return &SpriteImage{
		Width:   bounds.Dx(),
		Height:  bounds.Dy(),
		Average: averageColour(img),
	}, nil
}

// averageColour weights every pixel by its alpha, so transparent
// background does not darken the result.
func averageColour(img image.Image) color.RGBA {
	var r, g, b, weight uint64
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.A == 0 {
				continue
			}
			a := uint64(c.A)
			r += uint64(c.R) * a
			g += uint64(c.G) * a
			b += uint64(c.B) * a
			weight += a
		}
	}
	if weight == 0 {
		return color.RGBA{}
	}
	return color.RGBA{
		R: uint8(r / weight),
		G: uint8(g / weight),
		B: uint8(b / weight),
		A: 255,
	}
}

// ResolveSprites gives every sprite shape without a colour the average
// colour of its image. Relative sprite paths are taken from dir. A sprite
// that cannot be decoded keeps the default colour.
func ResolveSprites(cfg *SceneConfig, dir string) {
	for i := range cfg.Actors {
		shape := cfg.Actors[i].Shape
		if shape == nil || shape.Sprite == "" || shape.Colour != "" {
			continue
		}
		path := shape.Sprite
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		sprite, err := LoadSprite(path)
		if err != nil {
			core.LogWarn("actor %q: %s", cfg.Actors[i].Name, err)
			continue
		}
		shape.Colour = sprite.Hex()
	}
}
