package engine

import (
	"fmt"
	"strings"

	"github.com/spaghettifunk/mathforgames/engine/assets/loaders"
	"github.com/spaghettifunk/mathforgames/engine/core"
	"github.com/spaghettifunk/mathforgames/engine/renderer"
)

type ApplicationConfig struct {
	// The application name, shown in logs.
	Name string `toml:"name"`
	// One of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
	// Log destination while the console renderer owns the terminal.
	LogFile string `toml:"log_file"`
	// "console" draws to the terminal, "headless" draws nothing.
	Renderer string `toml:"renderer"`
	// World units covered by one terminal cell.
	CellWidth  float32 `toml:"cell_width"`
	CellHeight float32 `toml:"cell_height"`
	// Frame cap. Zero picks 60, a negative value runs unthrottled.
	TargetFPS int `toml:"target_fps"`
	// Directory watched for scene changes. Empty disables hot reload.
	AssetsDir string `toml:"assets_dir"`
	// Scene files loaded at startup, in order. The first becomes current.
	Scenes []string `toml:"scenes"`
	// Draws frame statistics in the top-left corner.
	ShowStats bool `toml:"show_stats"`
}

const (
	defaultLogFile    = "mathforgames.log"
	defaultCellWidth  = 8
	defaultCellHeight = 16
	defaultTargetFPS  = 60
)

// LoadApplicationConfig reads a TOML application config and fills defaults.
func LoadApplicationConfig(path string) (*ApplicationConfig, error) {
	cfg := &ApplicationConfig{}
	if err := loaders.LoadConfig(path, cfg); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if _, err := cfg.RendererType(); err != nil {
		return nil, err
	}
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetDefaults fills every zero field with its default.
func (c *ApplicationConfig) SetDefaults() {
	if c.Name == "" {
		c.Name = "MathForGames"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFile == "" {
		c.LogFile = defaultLogFile
	}
	if c.Renderer == "" {
		c.Renderer = "console"
	}
	if c.CellWidth <= 0 {
		c.CellWidth = defaultCellWidth
	}
	if c.CellHeight <= 0 {
		c.CellHeight = defaultCellHeight
	}
	if c.TargetFPS == 0 {
		c.TargetFPS = defaultTargetFPS
	}
}

func (c *ApplicationConfig) RendererType() (renderer.RendererType, error) {
	switch strings.ToLower(c.Renderer) {
	case "", "console":
		return renderer.Console, nil
	case "headless":
		return renderer.Headless, nil
	}
	return 0, fmt.Errorf("unknown renderer %q", c.Renderer)
}

func (c *ApplicationConfig) Level() (core.LogLevel, error) {
	return core.ParseLogLevel(c.LogLevel)
}
