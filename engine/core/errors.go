package core

import (
	"errors"
)

var (
	ErrInvalidHandle    = errors.New("invalid actor handle")
	ErrActorCycle       = errors.New("parenting would create a cycle")
	ErrActorNotFound    = errors.New("actor not found")
	ErrUnknownCollider  = errors.New("unknown collider type")
	ErrUnknownShape     = errors.New("unknown shape type")
	ErrUnknownBehavior  = errors.New("unknown behavior")
	ErrSceneNotFound    = errors.New("scene not found")
	ErrUnsupportedAsset = errors.New("unsupported asset format")
	ErrNotInitialized   = errors.New("subsystem not initialized")
	ErrUnknown          = errors.New("unknown")
)
