package loaders

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ConfigLoader decodes a TOML file into the value passed as params,
// which must be a pointer.
type ConfigLoader struct{}

func (cl *ConfigLoader) Load(path string, params interface{}) (*Resource, error) {
	if params == nil {
		return nil, fmt.Errorf("config loader needs a destination for %s", path)
	}
	if err := LoadConfig(path, params); err != nil {
		return nil, err
	}
	return &Resource{
		Name:     resourceName(path),
		FullPath: path,
		Type:     ResourceTypeConfig,
		Data:     params,
	}, nil
}

func (cl *ConfigLoader) Unload(*Resource) error {
	return nil
}

// LoadConfig decodes the TOML file at path into out.
func LoadConfig(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	return nil
}
