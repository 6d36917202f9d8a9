package platform

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/spaghettifunk/mathforgames/engine/core"
)

// Number of terminal events buffered between two frames.
const eventBufferSize = 128

var startTime time.Time

// Platform owns the terminal. A goroutine polls tcell for events and the
// frame loop drains them with PumpMessages.
type Platform struct {
	Screen tcell.Screen

	events  chan tcell.Event
	quit    chan struct{}
	started bool
}

// New wraps screen, or a fresh terminal screen when screen is nil.
func New(screen tcell.Screen) *Platform {
	return &Platform{
		Screen: screen,
		events: make(chan tcell.Event, eventBufferSize),
		quit:   make(chan struct{}),
	}
}

func (p *Platform) Startup(applicationName string) error {
	if p.Screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			core.LogError("failed to create terminal screen: %s", err)
			return err
		}
		p.Screen = screen
	}
	if err := p.Screen.Init(); err != nil {
		core.LogError("failed to initialize terminal screen: %s", err)
		return err
	}
	p.Screen.HideCursor()
	p.Screen.Clear()

	p.started = true
	go p.poll()

	startTime = time.Now()
	w, h := p.Screen.Size()
	core.LogInfo("%s started on a %dx%d terminal", applicationName, w, h)
	return nil
}

func (p *Platform) poll() {
	for {
		ev := p.Screen.PollEvent()
		if ev == nil {
			// the screen was finalized
			return
		}
		select {
		case p.events <- ev:
		case <-p.quit:
			return
		}
	}
}

// Shutdown restores the terminal. It is a no-op unless Startup succeeded.
func (p *Platform) Shutdown() error {
	if !p.started {
		return nil
	}
	p.started = false
	close(p.quit)
	p.Screen.Fini()
	return nil
}

// Size returns the terminal size in cells.
func (p *Platform) Size() (int, int) {
	return p.Screen.Size()
}

// PumpMessages feeds every pending terminal event into input and events.
// It returns false when the user asked to quit.
func (p *Platform) PumpMessages(input *core.Input, events *core.EventSystem) bool {
	for {
		select {
		case ev := <-p.events:
			if !p.handleEvent(ev, input, events) {
				return false
			}
		default:
			return true
		}
	}
}

func (p *Platform) handleEvent(ev tcell.Event, input *core.Input, events *core.EventSystem) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			events.Fire(core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT, Sender: p})
			return false
		}
		if key, ok := translateKey(ev); ok {
			input.ProcessKey(key, true)
		}
	case *tcell.EventResize:
		w, h := ev.Size()
		events.Fire(core.EventContext{
			Type:   core.EVENT_CODE_RESIZED,
			Sender: p,
			Data:   &core.ResizeEvent{Width: w, Height: h},
		})
	}
	return true
}

func translateKey(ev *tcell.EventKey) (core.KeyCode, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.KEY_UP, true
	case tcell.KeyDown:
		return core.KEY_DOWN, true
	case tcell.KeyLeft:
		return core.KEY_LEFT, true
	case tcell.KeyRight:
		return core.KEY_RIGHT, true
	case tcell.KeyEnter:
		return core.KEY_ENTER, true
	case tcell.KeyTab:
		return core.KEY_TAB, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return core.KEY_BACKSPACE, true
	case tcell.KeyRune:
		r := unicode.ToUpper(ev.Rune())
		switch {
		case r == ' ':
			return core.KEY_SPACE, true
		case r >= 'A' && r <= 'Z':
			return core.KeyCode(r), true
		}
	}
	return 0, false
}

// GetAbsoluteTime returns the seconds since Startup.
func GetAbsoluteTime() float64 {
	return time.Since(startTime).Seconds()
}

func (p *Platform) Sleep(ms float64) {
	time.Sleep(time.Duration(ms * float64(time.Millisecond)))
}
