package core

import (
	"fmt"

	"github.com/spaghettifunk/mathforgames/engine/containers"
)

// System internal event codes. Application should use codes beyond 255.
type EventCode uint16

const (
	// Shuts the application down on the next frame.
	EVENT_CODE_APPLICATION_QUIT EventCode = 0x01

	// Keyboard key pressed. Data is a *KeyEvent.
	EVENT_CODE_KEY_PRESSED EventCode = 0x02

	// Keyboard key released. Data is a *KeyEvent.
	EVENT_CODE_KEY_RELEASED EventCode = 0x03

	// Two actors overlapped this frame. Data is a *CollisionEvent.
	EVENT_CODE_COLLISION EventCode = 0x04

	// The current scene was rebuilt from a changed scene file. Data is the file path.
	EVENT_CODE_SCENE_RELOADED EventCode = 0x05

	// Resized/resolution changed. Data is a *ResizeEvent.
	EVENT_CODE_RESIZED EventCode = 0x06

	MAX_EVENT_CODE EventCode = 0xFF
)

// Default capacity of the deferred event queue.
const DefaultEventQueueSize = 256

type KeyEvent struct {
	KeyCode KeyCode
}

type ResizeEvent struct {
	Width  int
	Height int
}

// CollisionEvent names the two actors by their scene handles.
type CollisionEvent struct {
	Actor uint32
	Other uint32
}

type EventContext struct {
	Type   EventCode
	Sender interface{}
	Data   interface{}
}

// Should return true if handled.
type FnOnEvent func(context EventContext, listener interface{}) bool

type registeredEvent struct {
	listener interface{}
	callback FnOnEvent
}

// EventSystem dispatches events to registered listeners, either right away
// (Fire) or at the end of the frame (Post + ProcessEvents). It is not safe
// for concurrent use; everything runs on the frame loop goroutine.
type EventSystem struct {
	registered map[EventCode][]*registeredEvent
	queue      *containers.RingQueue[EventContext]
}

func NewEventSystem(queueSize int) *EventSystem {
	if queueSize <= 0 {
		queueSize = DefaultEventQueueSize
	}
	return &EventSystem{
		registered: make(map[EventCode][]*registeredEvent),
		queue:      containers.NewRingQueue[EventContext](queueSize),
	}
}

/**
 * Register to listen for when events are sent with the provided code. Events with duplicate
 * listeners will not be registered again and will cause this to return false.
 */
func (es *EventSystem) Register(code EventCode, listener interface{}, onEvent FnOnEvent) bool {
	for _, e := range es.registered[code] {
		if e.listener == listener {
			LogWarn("listener already registered for event code %d", code)
			return false
		}
	}
	es.registered[code] = append(es.registered[code], &registeredEvent{
		listener: listener,
		callback: onEvent,
	})
	return true
}

/**
 * Unregister from listening for when events are sent with the provided code. If no matching
 * registration is found, this function returns false.
 */
func (es *EventSystem) Unregister(code EventCode, listener interface{}) bool {
	events := es.registered[code]
	for i, e := range events {
		if e.listener == listener {
			es.registered[code] = append(events[:i], events[i+1:]...)
			return true
		}
	}
	return false
}

/**
 * Fires an event to listeners of the given code. If an event handler returns
 * true, the event is considered handled and is not passed on to any more listeners.
 */
func (es *EventSystem) Fire(context EventContext) bool {
	for _, e := range es.registered[context.Type] {
		if e.callback(context, e.listener) {
			return true
		}
	}
	return false
}

// Post queues an event to be fired by the next ProcessEvents call.
func (es *EventSystem) Post(context EventContext) error {
	if err := es.queue.Enqueue(context); err != nil {
		return fmt.Errorf("posting event %d: %w", context.Type, err)
	}
	return nil
}

// ProcessEvents fires every queued event in posting order and returns how many ran.
// Events posted by handlers while draining are fired in the same call.
func (es *EventSystem) ProcessEvents() int {
	fired := 0
	for !es.queue.IsEmpty() {
		context, err := es.queue.Dequeue()
		if err != nil {
			break
		}
		es.Fire(context)
		fired++
	}
	return fired
}

// Pending returns the number of queued events.
func (es *EventSystem) Pending() int {
	return es.queue.Len()
}

func (es *EventSystem) Shutdown() {
	es.registered = make(map[EventCode][]*registeredEvent)
	for !es.queue.IsEmpty() {
		_, _ = es.queue.Dequeue()
	}
}
