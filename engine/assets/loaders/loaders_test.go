package loaders

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/mathforgames/engine/core"
)

const sceneTOML = `
name = "arena"
debug_colliders = true

[[actors]]
name = "player"
tag = "Player"
position = { x = 10.0, y = 20.0 }
shape = { kind = "icon", icon = "@", colour = "yellow" }
collider = { kind = "circle", radius = 4.0 }
behavior = { kind = "player", speed = 50.0 }

[[actors]]
name = "sword"
parent = "player"
position = { x = 5.0, y = 0.0 }
scale = { x = 2.0, y = 1.0 }

[[actors]]
name = "grunt"
tag = "Enemy"
position = { x = 100.0, y = 20.0 }
rotation = 180.0
collider = { kind = "aabb", width = 8.0, height = 8.0 }
behavior = { kind = "enemy", speed = 20.0, viewing_angle = 45.0, target = "player" }
`

const sceneYAML = `
name: arena
actors:
  - name: player
    position: {x: 10, y: 20}
    behavior: {kind: player, speed: 50}
  - name: grunt
    tag: Enemy
    position: {x: 100, y: 20}
    behavior: {kind: enemy, speed: 20, viewing_angle: 45, target: player}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSceneTOML(t *testing.T) {
	cfg, err := LoadSceneConfig(writeFile(t, "arena.scene.toml", sceneTOML))
	require.NoError(t, err)

	assert.Equal(t, "arena", cfg.Name)
	assert.True(t, cfg.DebugColliders)
	require.Len(t, cfg.Actors, 3)

	player := cfg.Actors[0]
	assert.Equal(t, Vec2Config{X: 10, Y: 20}, player.Position)
	require.NotNil(t, player.Shape)
	assert.Equal(t, "@", player.Shape.Icon)
	require.NotNil(t, player.Collider)
	assert.Equal(t, float32(4), player.Collider.Radius)
	assert.Nil(t, player.Scale)

	sword := cfg.Actors[1]
	assert.Equal(t, "player", sword.Parent)
	assert.Equal(t, &Vec2Config{X: 2, Y: 1}, sword.Scale)

	grunt := cfg.Actors[2]
	assert.Equal(t, float32(180), grunt.Rotation)
	assert.Equal(t, "player", grunt.Behavior.Target)
	assert.Equal(t, float32(45), grunt.Behavior.ViewingAngle)
}

func TestLoadSceneYAML(t *testing.T) {
	cfg, err := LoadSceneConfig(writeFile(t, "arena.scene.yaml", sceneYAML))
	require.NoError(t, err)
	require.Len(t, cfg.Actors, 2)
	assert.Equal(t, "Enemy", cfg.Actors[1].Tag)
	assert.Equal(t, float32(20), cfg.Actors[1].Behavior.Speed)
}

func TestLoadSceneDefaultsName(t *testing.T) {
	cfg, err := LoadSceneConfig(writeFile(t, "level1.scene.toml", "[[actors]]\nname = \"a\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "level1", cfg.Name)
}

func TestLoadSceneErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		target  error
	}{
		{"unknown extension", "arena.scene.json", "{}", core.ErrUnsupportedAsset},
		{"missing parent", "a.scene.toml", "[[actors]]\nname = \"a\"\nparent = \"ghost\"\n", core.ErrActorNotFound},
		{"missing target", "a.scene.yaml", "actors:\n  - name: a\n    behavior: {kind: enemy, target: ghost}\n", core.ErrActorNotFound},
		{"duplicate name", "a.scene.toml", "[[actors]]\nname = \"a\"\n[[actors]]\nname = \"a\"\n", nil},
		{"unknown field", "a.scene.toml", "[[actors]]\nname = \"a\"\nspeed = 3\n", nil},
		{"unknown yaml field", "a.scene.yaml", "actors:\n  - name: a\n    speed: 3\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSceneConfig(writeFile(t, tt.file, tt.content))
			require.Error(t, err)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}

	_, err := LoadSceneConfig(filepath.Join(t.TempDir(), "missing.scene.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSceneLoader(t *testing.T) {
	path := writeFile(t, "arena.scene.toml", sceneTOML)
	res, err := (&SceneLoader{}).Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, ResourceTypeScene, res.Type)
	assert.Equal(t, "arena", res.Name)
	assert.IsType(t, &SceneConfig{}, res.Data)
}

func TestConfigLoader(t *testing.T) {
	type appConfig struct {
		Name  string `toml:"name"`
		Width int    `toml:"width"`
	}
	path := writeFile(t, "app.toml", "name = \"demo\"\nwidth = 80\n")

	var cfg appConfig
	res, err := (&ConfigLoader{}).Load(path, &cfg)
	require.NoError(t, err)
	assert.Equal(t, "app", res.Name)
	assert.Equal(t, appConfig{Name: "demo", Width: 80}, cfg)

	_, err = (&ConfigLoader{}).Load(path, nil)
	assert.Error(t, err)

	bad := writeFile(t, "bad.toml", "name = ")
	assert.Error(t, LoadConfig(bad, &cfg))
}

func TestDetermineResourceType(t *testing.T) {
	tests := map[string]ResourceType{
		"assets/arena.scene.toml": ResourceTypeScene,
		"assets/arena.scene.YML":  ResourceTypeScene,
		"app.toml":                ResourceTypeConfig,
		"sprites/enemy.png":       ResourceTypeSprite,
		"notes.txt":               ResourceTypeNone,
		"arena.yaml":              ResourceTypeNone,
	}
	for path, expected := range tests {
		assert.Equal(t, expected, DetermineResourceType(path), path)
	}
}

func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestLoadSpriteAverageColour(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		img.SetNRGBA(x, 0, color.NRGBA{R: 200, G: 0, B: 100, A: 255})
		// transparent row is ignored
		img.SetNRGBA(x, 1, color.NRGBA{R: 0, G: 255, B: 0, A: 0})
	}
	path := writePNG(t, t.TempDir(), "enemy.png", img)

	sprite, err := LoadSprite(path)
	require.NoError(t, err)
	assert.Equal(t, 4, sprite.Width)
	assert.Equal(t, 2, sprite.Height)
	assert.Equal(t, color.RGBA{R: 200, G: 0, B: 100, A: 255}, sprite.Average)
	assert.Equal(t, "#c80064", sprite.Hex())

	res, err := (&SpriteLoader{}).Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, ResourceTypeSprite, res.Type)
	assert.Equal(t, "enemy", res.Name)

	notAnImage := writeFile(t, "broken.png", "nope")
	_, err = LoadSprite(notAnImage)
	assert.Error(t, err)
}

func TestSceneSpritesGetImageColour(t *testing.T) {
	dir := t.TempDir()
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 16, G: 32, B: 48, A: 255})
	writePNG(t, dir, "ghost.png", img)

	scene := `
[[actors]]
name = "ghost"
shape = { kind = "sprite", sprite = "ghost.png", icon = "G" }

[[actors]]
name = "tinted"
shape = { kind = "sprite", sprite = "ghost.png", colour = "red" }

[[actors]]
name = "lost"
shape = { kind = "sprite", sprite = "missing.png" }
`
	path := filepath.Join(dir, "haunted.scene.toml")
	require.NoError(t, os.WriteFile(path, []byte(scene), 0o644))

	cfg, err := LoadSceneConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "#102030", cfg.Actors[0].Shape.Colour)
	assert.Equal(t, "red", cfg.Actors[1].Shape.Colour, "explicit colours win")
	assert.Empty(t, cfg.Actors[2].Shape.Colour)
}
