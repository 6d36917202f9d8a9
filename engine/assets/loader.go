package assets

import "github.com/spaghettifunk/mathforgames/engine/assets/loaders"

type Loader interface {
	Load(path string, params interface{}) (*loaders.Resource, error) // `interface{}` here lets a loader decode into a caller-owned value
	Unload(*loaders.Resource) error
}
