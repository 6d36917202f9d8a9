package scene

import (
	"github.com/spaghettifunk/mathforgames/engine/core"
)

// Behavior gives an actor its per-frame logic. Update runs before the
// transform pass, so it may freely mutate the actor's transform.
type Behavior interface {
	Update(ctx *Context, self *Actor)
	OnCollision(ctx *Context, self, other *Actor)
}

// Starter is implemented by behaviors that need to run once when the
// scene starts, or when the actor joins a running scene.
type Starter interface {
	Start(ctx *Context, self *Actor)
}

// Ender is implemented by behaviors that clean up when the scene ends.
type Ender interface {
	End(ctx *Context, self *Actor)
}

// DirectionInput answers whether a logical direction is pressed.
type DirectionInput interface {
	IsDirectionDown(direction core.Direction) bool
}

// EventSink queues events for the end of the frame, or fires them at once.
type EventSink interface {
	Post(context core.EventContext) error
	Fire(context core.EventContext) bool
}

// Context is handed to every behavior call of a frame.
type Context struct {
	Scene     *Scene
	DeltaTime float64
	Input     DirectionInput
	Events    EventSink
}

// Post queues an event when an event sink is attached. Failures are logged.
func (ctx *Context) Post(code core.EventCode, sender, data interface{}) {
	if ctx == nil || ctx.Events == nil {
		return
	}
	if err := ctx.Events.Post(core.EventContext{Type: code, Sender: sender, Data: data}); err != nil {
		core.LogWarn("%s", err)
	}
}

// Quit fires the application quit event immediately. It never goes through
// the frame queue, so a queue full of other events cannot drop it.
func (ctx *Context) Quit(sender interface{}) {
	if ctx == nil || ctx.Events == nil {
		return
	}
	ctx.Events.Fire(core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT, Sender: sender})
}

// IsDirectionDown is false when no input is attached.
func (ctx *Context) IsDirectionDown(direction core.Direction) bool {
	if ctx == nil || ctx.Input == nil {
		return false
	}
	return ctx.Input.IsDirectionDown(direction)
}
