package loaders

import (
	"path/filepath"
	"strings"
)

type ResourceType uint8

const (
	ResourceTypeNone ResourceType = iota
	ResourceTypeScene
	ResourceTypeConfig
	ResourceTypeSprite
)

func (rt ResourceType) String() string {
	switch rt {
	case ResourceTypeScene:
		return "scene"
	case ResourceTypeConfig:
		return "config"
	case ResourceTypeSprite:
		return "sprite"
	}
	return "none"
}

// Resource is a loaded asset. Data holds the decoded value, e.g. a *SceneConfig.
type Resource struct {
	Name     string
	FullPath string
	Type     ResourceType
	Data     interface{}
}

// DetermineResourceType picks the resource type from the file name.
// Scene files end in .scene.toml, .scene.yaml or .scene.yml; other
// .toml files are configuration.
func DetermineResourceType(path string) ResourceType {
	base := strings.ToLower(filepath.Base(path))
	switch {
	case strings.HasSuffix(base, ".scene.toml"),
		strings.HasSuffix(base, ".scene.yaml"),
		strings.HasSuffix(base, ".scene.yml"):
		return ResourceTypeScene
	}
	switch filepath.Ext(base) {
	case ".toml":
		return ResourceTypeConfig
	case ".png", ".jpg", ".jpeg", ".bmp":
		return ResourceTypeSprite
	default:
		return ResourceTypeNone
	}
}

func resourceName(path string) string {
	base := filepath.Base(path)
	if i := strings.Index(base, "."); i > 0 {
		return base[:i]
	}
	return base
}
