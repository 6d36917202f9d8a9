package actors

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spaghettifunk/mathforgames/engine/assets/loaders"
	"github.com/spaghettifunk/mathforgames/engine/collision"
	"github.com/spaghettifunk/mathforgames/engine/core"
	"github.com/spaghettifunk/mathforgames/engine/math"
	"github.com/spaghettifunk/mathforgames/engine/renderer"
	"github.com/spaghettifunk/mathforgames/engine/scene"
)

// BuildScene creates a scene from a decoded scene file. Actors are added in
// file order, then parents are attached and enemy targets resolved by name.
func BuildScene(cfg *loaders.SceneConfig) (*scene.Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := scene.New(cfg.Name)
	s.DebugColliders = cfg.DebugColliders

	handles := make(map[string]scene.Handle, len(cfg.Actors))
	for _, ac := range cfg.Actors {
		actor, err := buildActor(ac)
		if err != nil {
			return nil, fmt.Errorf("scene %q: actor %q: %w", cfg.Name, ac.Name, err)
		}
		handles[ac.Name] = s.AddActor(actor)
	}

	for _, ac := range cfg.Actors {
		if ac.Parent != "" {
			if err := s.AddChild(handles[ac.Parent], handles[ac.Name]); err != nil {
				return nil, fmt.Errorf("scene %q: %w", cfg.Name, err)
			}
		}
		if ac.Behavior != nil && ac.Behavior.Target != "" {
			actor, _ := s.Get(handles[ac.Name])
			if enemy, ok := actor.Behavior.(*Enemy); ok {
				enemy.Target = handles[ac.Behavior.Target]
			}
		}
	}

	s.UpdateTransforms()
	core.LogDebug("built scene %q with %d actors", s.Name, s.Len())
	return s, nil
}

func buildActor(ac loaders.ActorConfig) (*scene.Actor, error) {
	actor := scene.NewActor(ac.Name, math.NewVec2(ac.Position.X, ac.Position.Y))
	actor.Tag = ac.Tag
	actor.Transform.SetRotation(math.DegToRad(ac.Rotation))
	if ac.Scale != nil {
		actor.Transform.SetScale(ac.Scale.X, ac.Scale.Y)
	}

	if ac.Shape != nil {
		shape, err := buildShape(ac.Shape)
		if err != nil {
			return nil, err
		}
		actor.Shape = shape
	}

	if ac.Collider != nil {
		kind, err := collision.ParseColliderKind(ac.Collider.Kind)
		if err != nil {
			return nil, err
		}
		switch kind {
		case collision.ColliderKindAABB:
			actor.SetAABBCollider(ac.Collider.Width, ac.Collider.Height)
		case collision.ColliderKindCircle:
			actor.SetCircleCollider(ac.Collider.Radius)
		}
	}

	if ac.Behavior != nil {
		behavior, err := buildBehavior(ac.Behavior)
		if err != nil {
			return nil, err
		}
		actor.Behavior = behavior
	}
	return actor, nil
}

func buildShape(sc *loaders.ShapeConfig) (*renderer.Shape, error) {
	kind, err := renderer.ParseShapeKind(sc.Kind)
	if err != nil {
		return nil, err
	}
	icon, _ := utf8.DecodeRuneInString(sc.Icon)
	if icon == utf8.RuneError {
		icon = 0
	}
	return &renderer.Shape{
		Kind:       kind,
		Icon:       icon,
		Colour:     sc.Colour,
		Width:      sc.Width,
		Height:     sc.Height,
		Radius:     sc.Radius,
		SpritePath: sc.Sprite,
	}, nil
}

func buildBehavior(bc *loaders.BehaviorConfig) (scene.Behavior, error) {
	switch strings.ToLower(bc.Kind) {
	case "player":
		return NewPlayer(bc.Speed), nil
	case "enemy":
		enemy := NewEnemy(bc.Speed, math.DegToRad(bc.ViewingAngle), scene.InvalidHandle)
		if bc.SightDistance > 0 {
			enemy.SightDistance = bc.SightDistance
		}
		enemy.FaceTarget = bc.FaceTarget
		return enemy, nil
	}
	return nil, fmt.Errorf("behavior %q: %w", bc.Kind, core.ErrUnknownBehavior)
}
