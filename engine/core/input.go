package core

// Key code definitions
type KeyCode uint16

const (
	KEY_BACKSPACE KeyCode = 0x08
	KEY_TAB       KeyCode = 0x09
	KEY_ENTER     KeyCode = 0x0D
	KEY_ESCAPE    KeyCode = 0x1B
	KEY_SPACE     KeyCode = 0x20
	KEY_LEFT      KeyCode = 0x25
	KEY_UP        KeyCode = 0x26
	KEY_RIGHT     KeyCode = 0x27
	KEY_DOWN      KeyCode = 0x28
	KEY_A         KeyCode = 0x41
	KEY_B         KeyCode = 0x42
	KEY_C         KeyCode = 0x43
	KEY_D         KeyCode = 0x44
	KEY_E         KeyCode = 0x45
	KEY_F         KeyCode = 0x46
	KEY_G         KeyCode = 0x47
	KEY_H         KeyCode = 0x48
	KEY_I         KeyCode = 0x49
	KEY_J         KeyCode = 0x4A
	KEY_K         KeyCode = 0x4B
	KEY_L         KeyCode = 0x4C
	KEY_M         KeyCode = 0x4D
	KEY_N         KeyCode = 0x4E
	KEY_O         KeyCode = 0x4F
	KEY_P         KeyCode = 0x50
	KEY_Q         KeyCode = 0x51
	KEY_R         KeyCode = 0x52
	KEY_S         KeyCode = 0x53
	KEY_T         KeyCode = 0x54
	KEY_U         KeyCode = 0x55
	KEY_V         KeyCode = 0x56
	KEY_W         KeyCode = 0x57
	KEY_X         KeyCode = 0x58
	KEY_Y         KeyCode = 0x59
	KEY_Z         KeyCode = 0x5A
	KEYS_MAX_KEYS KeyCode = 0xFF
)

// Direction is a logical movement direction, independent of the physical key.
type Direction uint8

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

var directionKeys = map[Direction][]KeyCode{
	DirectionUp:    {KEY_W, KEY_UP},
	DirectionDown:  {KEY_S, KEY_DOWN},
	DirectionLeft:  {KEY_A, KEY_LEFT},
	DirectionRight: {KEY_D, KEY_RIGHT},
}

// Keyboard state structure
type KeyboardState struct {
	Keys [256]bool
}

// Input holds the current and previous keyboard states. Key changes are
// fired through the event system when one is attached.
type Input struct {
	KeyboardCurrent  KeyboardState
	KeyboardPrevious KeyboardState

	events *EventSystem
}

func NewInput(events *EventSystem) *Input {
	return &Input{events: events}
}

// Update copies the current state into the previous one. Call once per frame
// after the game has read input.
func (in *Input) Update() {
	in.KeyboardPrevious = in.KeyboardCurrent
}

// ReleaseAll marks every held key as released. Terminals only report presses,
// so the platform treats each press as held for a single frame.
func (in *Input) ReleaseAll() {
	for k, down := range in.KeyboardCurrent.Keys {
		if down {
			in.ProcessKey(KeyCode(k), false)
		}
	}
}

func (in *Input) IsKeyDown(key KeyCode) bool {
	return in.KeyboardCurrent.Keys[key]
}

func (in *Input) IsKeyUp(key KeyCode) bool {
	return !in.KeyboardCurrent.Keys[key]
}

func (in *Input) WasKeyDown(key KeyCode) bool {
	return in.KeyboardPrevious.Keys[key]
}

func (in *Input) WasKeyUp(key KeyCode) bool {
	return !in.KeyboardPrevious.Keys[key]
}

// IsDirectionDown reports whether any key bound to the direction is held.
// WASD and the arrow keys are both bound.
func (in *Input) IsDirectionDown(direction Direction) bool {
	for _, key := range directionKeys[direction] {
		if in.IsKeyDown(key) {
			return true
		}
	}
	return false
}

func (in *Input) ProcessKey(key KeyCode, pressed bool) {
	// Only handle this if the state actually changed.
	if in.KeyboardCurrent.Keys[key] == pressed {
		return
	}
	in.KeyboardCurrent.Keys[key] = pressed

	if in.events == nil {
		return
	}
	code := EVENT_CODE_KEY_RELEASED
	if pressed {
		code = EVENT_CODE_KEY_PRESSED
	}
	// Fire off an event for immediate processing.
	in.events.Fire(EventContext{
		Type:   code,
		Sender: in,
		Data:   &KeyEvent{KeyCode: key},
	})
}
