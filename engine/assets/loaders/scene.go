package loaders

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/spaghettifunk/mathforgames/engine/core"
)

type Vec2Config struct {
	X float32 `toml:"x" yaml:"x"`
	Y float32 `toml:"y" yaml:"y"`
}

type ShapeConfig struct {
	Kind   string  `toml:"kind" yaml:"kind"`
	Icon   string  `toml:"icon" yaml:"icon"`
	Colour string  `toml:"colour" yaml:"colour"`
	Width  float32 `toml:"width" yaml:"width"`
	Height float32 `toml:"height" yaml:"height"`
	Radius float32 `toml:"radius" yaml:"radius"`
	Sprite string  `toml:"sprite" yaml:"sprite"`
}

type ColliderConfig struct {
	Kind   string  `toml:"kind" yaml:"kind"`
	Width  float32 `toml:"width" yaml:"width"`
	Height float32 `toml:"height" yaml:"height"`
	Radius float32 `toml:"radius" yaml:"radius"`
}

type BehaviorConfig struct {
	// Kind is "player" or "enemy".
	Kind  string  `toml:"kind" yaml:"kind"`
	Speed float32 `toml:"speed" yaml:"speed"`
	// ViewingAngle is in degrees.
	ViewingAngle  float32 `toml:"viewing_angle" yaml:"viewing_angle"`
	SightDistance float32 `toml:"sight_distance" yaml:"sight_distance"`
	// Target names the actor an enemy chases.
	Target     string `toml:"target" yaml:"target"`
	FaceTarget bool   `toml:"face_target" yaml:"face_target"`
}

type ActorConfig struct {
	Name     string      `toml:"name" yaml:"name"`
	Tag      string      `toml:"tag" yaml:"tag"`
	Position Vec2Config  `toml:"position" yaml:"position"`
	Rotation float32     `toml:"rotation" yaml:"rotation"`
	Scale    *Vec2Config `toml:"scale" yaml:"scale"`
	// Parent names another actor of the same scene.
	Parent   string          `toml:"parent" yaml:"parent"`
	Shape    *ShapeConfig    `toml:"shape" yaml:"shape"`
	Collider *ColliderConfig `toml:"collider" yaml:"collider"`
	Behavior *BehaviorConfig `toml:"behavior" yaml:"behavior"`
}

// SceneConfig describes a scene file. Rotations are in degrees.
type SceneConfig struct {
	Name           string        `toml:"name" yaml:"name"`
	DebugColliders bool          `toml:"debug_colliders" yaml:"debug_colliders"`
	Actors         []ActorConfig `toml:"actors" yaml:"actors"`
}

type SceneFormat uint8

const (
	SceneFormatTOML SceneFormat = iota
	SceneFormatYAML
)

func sceneFormat(path string) (SceneFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return SceneFormatTOML, nil
	case ".yaml", ".yml":
		return SceneFormatYAML, nil
	}
	return 0, fmt.Errorf("scene file %s: %w", path, core.ErrUnsupportedAsset)
}

type SceneLoader struct{}

func (sl *SceneLoader) Load(path string, params interface{}) (*Resource, error) {
	cfg, err := LoadSceneConfig(path)
	if err != nil {
		return nil, err
	}
	return &Resource{
		Name:     cfg.Name,
		FullPath: path,
		Type:     ResourceTypeScene,
		Data:     cfg,
	}, nil
}

func (sl *SceneLoader) Unload(*Resource) error {
	return nil
}

// LoadSceneConfig reads and validates a scene file. The format follows
// the extension. Sprite colours are resolved against the file's directory.
func LoadSceneConfig(path string) (*SceneConfig, error) {
	format, err := sceneFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := DecodeSceneConfig(data, format)
	if err != nil {
		return nil, fmt.Errorf("scene file %s: %w", path, err)
	}
	if cfg.Name == "" {
		cfg.Name = resourceName(path)
	}
	ResolveSprites(cfg, filepath.Dir(path))
	return cfg, nil
}

func DecodeSceneConfig(data []byte, format SceneFormat) (*SceneConfig, error) {
	cfg := &SceneConfig{}
	switch format {
	case SceneFormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	case SceneFormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	default:
		return nil, core.ErrUnsupportedAsset
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that actor names are unique and that every parent and
// target refers to an actor of the scene.
func (sc *SceneConfig) Validate() error {
	names := make(map[string]bool, len(sc.Actors))
	for i, a := range sc.Actors {
		if a.Name == "" {
			return fmt.Errorf("actor #%d has no name", i)
		}
		if names[a.Name] {
			return fmt.Errorf("actor %q is declared twice", a.Name)
		}
		names[a.Name] = true
	}
	for _, a := range sc.Actors {
		if a.Parent != "" && !names[a.Parent] {
			return fmt.Errorf("actor %q: parent %q: %w", a.Name, a.Parent, core.ErrActorNotFound)
		}
		if a.Behavior != nil && a.Behavior.Target != "" && !names[a.Behavior.Target] {
			return fmt.Errorf("actor %q: target %q: %w", a.Name, a.Behavior.Target, core.ErrActorNotFound)
		}
	}
	return nil
}
