package scene

import (
	"fmt"

	"github.com/spaghettifunk/mathforgames/engine/core"
	"github.com/spaghettifunk/mathforgames/engine/renderer"
)

// Scene owns a set of actors. Actors are updated and drawn in insertion
// order; transforms are resolved parent before child.
type Scene struct {
	Name string
	// DebugColliders outlines every collider when drawing.
	DebugColliders bool

	actors  *core.Identifiers[*Actor]
	order   []Handle
	started bool
}

func New(name string) *Scene {
	return &Scene{
		Name:   name,
		actors: core.NewIdentifiers[*Actor](16),
		order:  make([]Handle, 0, 16),
	}
}

// AddActor stores the actor and returns its handle. Adding an actor that is
// already in the scene returns its existing handle.
func (s *Scene) AddActor(actor *Actor) Handle {
	if existing, ok := s.actors.Get(uint32(actor.handle)); ok && existing == actor {
		return actor.handle
	}
	actor.handle = Handle(s.actors.Acquire(actor))
	actor.parent = InvalidHandle
	actor.children = nil
	s.order = append(s.order, actor.handle)

	// keep the global transform meaningful before the first frame
	actor.Transform.UpdateTransforms(nil)
	return actor.handle
}

// StartActor adds an actor to a running scene and starts it right away.
func (s *Scene) StartActor(ctx *Context, actor *Actor) Handle {
	h := s.AddActor(actor)
	if s.started {
		s.startActor(ctx, actor)
	}
	return h
}

// RemoveActor detaches the actor from its parent, orphans its children and
// frees its handle. The actor itself is left intact.
func (s *Scene) RemoveActor(h Handle) error {
	actor, ok := s.actors.Get(uint32(h))
	if !ok {
		return fmt.Errorf("remove actor %d: %w", h, core.ErrInvalidHandle)
	}
	if parent, ok := s.actors.Get(uint32(actor.parent)); ok {
		parent.removeChild(h)
	}
	for _, c := range actor.children {
		if child, ok := s.actors.Get(uint32(c)); ok {
			child.parent = InvalidHandle
		}
	}
	actor.children = nil
	actor.parent = InvalidHandle

	if err := s.actors.Release(uint32(h)); err != nil {
		return err
	}
	for i, o := range s.order {
		if o == h {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	actor.handle = InvalidHandle
	return nil
}

func (s *Scene) Get(h Handle) (*Actor, bool) {
	return s.actors.Get(uint32(h))
}

// Find returns the first actor with the given name, in insertion order.
func (s *Scene) Find(name string) (*Actor, bool) {
	for _, h := range s.order {
		if a, ok := s.Get(h); ok && a.Name == name {
			return a, true
		}
	}
	return nil, false
}

// FindByTag returns every actor carrying tag, in insertion order.
func (s *Scene) FindByTag(tag string) []*Actor {
	var out []*Actor
	for _, a := range s.Actors() {
		if a.Tag == tag {
			out = append(out, a)
		}
	}
	return out
}

// Actors returns the actors in insertion order.
func (s *Scene) Actors() []*Actor {
	out := make([]*Actor, 0, len(s.order))
	for _, h := range s.order {
		if a, ok := s.Get(h); ok {
			out = append(out, a)
		}
	}
	return out
}

func (s *Scene) Len() int {
	return len(s.order)
}

func (s *Scene) Started() bool {
	return s.started
}

// AddChild makes child a child of parent, detaching it from any previous
// parent. It fails with ErrActorCycle when child is parent or one of its
// ancestors.
func (s *Scene) AddChild(parent, child Handle) error {
	p, ok := s.Get(parent)
	if !ok {
		return fmt.Errorf("add child: parent %d: %w", parent, core.ErrInvalidHandle)
	}
	c, ok := s.Get(child)
	if !ok {
		return fmt.Errorf("add child: child %d: %w", child, core.ErrInvalidHandle)
	}
	for h := parent; h.Valid(); {
		if h == child {
			return fmt.Errorf("add child %q to %q: %w", c.Name, p.Name, core.ErrActorCycle)
		}
		a, ok := s.Get(h)
		if !ok {
			break
		}
		h = a.parent
	}

	if old, ok := s.Get(c.parent); ok {
		old.removeChild(child)
	}
	p.children = append(p.children, child)
	c.parent = parent
	return nil
}

// RemoveChild detaches child from parent and reports whether it was
// attached. The child stays in the scene as a root.
func (s *Scene) RemoveChild(parent, child Handle) bool {
	p, ok := s.Get(parent)
	if !ok {
		return false
	}
	if !p.removeChild(child) {
		return false
	}
	if c, ok := s.Get(child); ok {
		c.parent = InvalidHandle
	}
	return true
}

// UpdateTransforms recomputes every global transform. Roots are visited in
// insertion order and each subtree depth first, so a parent's global is
// always current before its children read it.
func (s *Scene) UpdateTransforms() {
	for _, h := range s.order {
		a, ok := s.Get(h)
		if !ok || a.HasParent() {
			continue
		}
		s.updateTransform(a)
	}
}

func (s *Scene) updateTransform(a *Actor) {
	if parent, ok := s.Get(a.parent); ok {
		global := parent.Transform.Global()
		a.Transform.UpdateTransforms(&global)
	} else {
		a.Transform.UpdateTransforms(nil)
	}
	for _, c := range a.children {
		if child, ok := s.Get(c); ok {
			s.updateTransform(child)
		}
	}
}

// Start resolves transforms and starts every actor.
func (s *Scene) Start(ctx *Context) {
	ctx = s.bind(ctx)
	s.UpdateTransforms()
	for _, a := range s.Actors() {
		s.startActor(ctx, a)
	}
	s.started = true
	core.LogDebug("scene %q started with %d actors", s.Name, s.Len())
}

func (s *Scene) startActor(ctx *Context, a *Actor) {
	if a.started {
		return
	}
	a.started = true
	if starter, ok := a.Behavior.(Starter); ok {
		starter.Start(ctx, a)
	}
}

// Update runs one frame: behaviors, then the transform pass, then the
// collision pass. Each overlapping pair is reported once to both actors.
func (s *Scene) Update(ctx *Context) {
	ctx = s.bind(ctx)

	for _, a := range s.Actors() {
		// an earlier behavior may have removed it
		if !a.handle.Valid() || a.Behavior == nil {
			continue
		}
		a.Behavior.Update(ctx, a)
	}

	s.UpdateTransforms()
	s.checkCollisions(ctx)
}

func (s *Scene) checkCollisions(ctx *Context) {
	actors := s.Actors()
	for i := 0; i < len(actors); i++ {
		for j := i + 1; j < len(actors); j++ {
			a, b := actors[i], actors[j]
			if !a.handle.Valid() || !b.handle.Valid() || !a.CheckForCollision(b) {
				continue
			}
			ctx.Post(core.EVENT_CODE_COLLISION, s, &core.CollisionEvent{
				Actor: uint32(a.handle),
				Other: uint32(b.handle),
			})
			if a.Behavior != nil {
				a.Behavior.OnCollision(ctx, a, b)
			}
			if b.Behavior != nil {
				b.Behavior.OnCollision(ctx, b, a)
			}
		}
	}
}

// Draw hands every actor with a shape to the renderer.
func (s *Scene) Draw(r renderer.Renderer) {
	for _, a := range s.Actors() {
		if a.Shape != nil {
			r.DrawShape(a.Shape, a.Transform.Global())
		}
		if s.DebugColliders && a.Collider != nil {
			r.DrawCollider(a.Collider)
		}
	}
}

// End calls the end hook of every actor and marks the scene stopped.
func (s *Scene) End(ctx *Context) {
	ctx = s.bind(ctx)
	for _, a := range s.Actors() {
		if ender, ok := a.Behavior.(Ender); ok {
			ender.End(ctx, a)
		}
		a.started = false
	}
	s.started = false
	core.LogDebug("scene %q ended", s.Name)
}

func (s *Scene) bind(ctx *Context) *Context {
	if ctx == nil {
		ctx = &Context{}
	}
	ctx.Scene = s
	return ctx
}
