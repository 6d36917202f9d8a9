package engine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/spaghettifunk/mathforgames/engine/actors"
	"github.com/spaghettifunk/mathforgames/engine/assets"
	"github.com/spaghettifunk/mathforgames/engine/assets/loaders"
	"github.com/spaghettifunk/mathforgames/engine/core"
	"github.com/spaghettifunk/mathforgames/engine/platform"
	"github.com/spaghettifunk/mathforgames/engine/renderer"
	"github.com/spaghettifunk/mathforgames/engine/scene"
	"github.com/spaghettifunk/mathforgames/engine/systems"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently booting up
	EngineStageBooting
	// Engine completed boot process and is ready to be initialized
	EngineStageBootComplete
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

type Engine struct {
	currentStage Stage
	gameInstance *Game
	isRunning    bool
	isSuspended  bool
	platform     *platform.Platform
	renderer     renderer.Renderer
	assetManager *assets.AssetManager
	events       *core.EventSystem
	input        *core.Input
	clock        *core.Clock
	metrics      *core.Metrics
	width        int
	height       int
	logFile      *os.File

	scenes       []*scene.Scene
	currentScene int
	// scene file (absolute path) -> scene index, for hot reload
	scenePaths map[string]int
}

// New creates an engine drawing to the terminal, or to nothing when the
// config asks for the headless renderer.
func New(g *Game) (*Engine, error) {
	return NewWithScreen(g, nil)
}

// NewWithScreen is New with a caller-provided tcell screen, e.g. a
// simulation screen in tests.
func NewWithScreen(g *Game, screen tcell.Screen) (*Engine, error) {
	if g.ApplicationConfig == nil {
		g.ApplicationConfig = &ApplicationConfig{}
	}
	g.ApplicationConfig.SetDefaults()
	cfg := g.ApplicationConfig

	rendererType, err := cfg.RendererType()
	if err != nil {
		core.LogError("%s", err)
		return nil, err
	}

	events := core.NewEventSystem(core.DefaultEventQueueSize)
	e := &Engine{
		currentStage: EngineStageBooting,
		gameInstance: g,
		events:       events,
		input:        core.NewInput(events),
		clock:        core.NewClock(),
		metrics:      core.NewMetrics(),
		isRunning:    true,
		isSuspended:  false,
		currentScene: -1,
		scenePaths:   make(map[string]int),
	}

	if rendererType == renderer.Console {
		e.platform = platform.New(screen)
	}

	if cfg.AssetsDir != "" {
		am, err := assets.NewAssetManager()
		if err != nil {
			core.LogError("%s", err)
			return nil, err
		}
		e.assetManager = am
	}

	e.currentStage = EngineStageBootComplete
	return e, nil
}

func (e *Engine) Initialize() error {
	e.currentStage = EngineStageInitializing
	cfg := e.gameInstance.ApplicationConfig

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	core.SetLogLevel(level)

	// register some events
	e.events.Register(core.EVENT_CODE_APPLICATION_QUIT, e, e.onEvent)
	e.events.Register(core.EVENT_CODE_KEY_PRESSED, e, e.onKey)
	e.events.Register(core.EVENT_CODE_RESIZED, e, e.onResized)

	if e.platform != nil {
		// the terminal belongs to the renderer from here on
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		e.logFile = f
		core.SetLogOutput(f)

		if err := e.platform.Startup(cfg.Name); err != nil {
			return err
		}
		e.width, e.height = e.platform.Size()
		e.renderer = renderer.NewConsoleRenderer(e.platform.Screen, cfg.CellWidth, cfg.CellHeight)
	} else {
		e.renderer = renderer.NewHeadlessRenderer()
	}

	// initialize subsystems
	if e.assetManager != nil {
		if err := e.assetManager.Initialize(cfg.AssetsDir); err != nil {
			return err
		}
	}

	if err := e.loadScenes(cfg.Scenes); err != nil {
		return err
	}

	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(e); err != nil {
			return err
		}
	}
	if e.gameInstance.FnOnResize != nil {
		if err := e.gameInstance.FnOnResize(e.width, e.height); err != nil {
			return err
		}
	}

	e.currentStage = EngineStageInitialized
	return nil
}

func (e *Engine) Run() error {
	e.currentStage = EngineStageRunning
	e.clock.Start()
	e.clock.Update()

	if s := e.CurrentScene(); s != nil && !s.Started() {
		s.Start(e.context(0))
	}

	var targetFrameSeconds float64
	if fps := e.gameInstance.ApplicationConfig.TargetFPS; fps > 0 {
		targetFrameSeconds = 1.0 / float64(fps)
	}

	for e.isRunning {
		if e.platform != nil && !e.platform.PumpMessages(e.input, e.events) {
			e.isRunning = false
			break
		}

		if e.isSuspended {
			time.Sleep(100 * time.Millisecond)
			continue
		}

		// Update clock and get delta time.
		e.clock.Update()
		delta := e.clock.Delta()
		frameStartTime := platform.GetAbsoluteTime()

		if err := e.Frame(delta); err != nil {
			core.LogError("Game frame failed, shutting down: %s", err)
			e.isRunning = false
			return err
		}

		// Figure out how long the frame took and, if below the target,
		// give the rest back to the OS.
		frameElapsedTime := platform.GetAbsoluteTime() - frameStartTime
		if remainingSeconds := targetFrameSeconds - frameElapsedTime; remainingSeconds > 0 {
			time.Sleep(time.Duration(remainingSeconds * float64(time.Second)))
		}
	}
	return nil
}

// Frame runs a single frame with the given delta time: reloads, game and
// scene update, drawing, queued events, then input rollover.
func (e *Engine) Frame(deltaTime float64) error {
	e.applyReloads()

	if e.gameInstance.FnUpdate != nil {
		if err := e.gameInstance.FnUpdate(e, deltaTime); err != nil {
			return err
		}
	}

	current := e.CurrentScene()
	if current != nil {
		current.Update(e.context(deltaTime))
	}

	if err := renderer.DrawFrame(e.renderer, deltaTime, func(r renderer.Renderer) error {
		if current != nil {
			current.Draw(r)
		}
		if e.gameInstance.ApplicationConfig.ShowStats {
			fps, frameTime := e.metrics.Frame()
			r.DrawText(fmt.Sprintf("%.0f fps  %.2f ms", fps, frameTime), 0, 0, "white")
		}
		if e.gameInstance.FnRender != nil {
			return e.gameInstance.FnRender(r, deltaTime)
		}
		return nil
	}); err != nil {
		return err
	}

	e.events.ProcessEvents()
	e.metrics.Update(deltaTime)

	// NOTE: Input update/state copying should always be handled
	// after any input should be recorded; I.E. before this line.
	// As a safety, input is the last thing to be updated before
	// this frame ends.
	e.input.Update()
	if e.platform != nil {
		// terminals only report presses, a key counts as held for one frame
		e.input.ReleaseAll()
	}
	return nil
}

func (e *Engine) Shutdown() error {
	e.currentStage = EngineStageShuttingDown
	e.isRunning = false

	if s := e.CurrentScene(); s != nil && s.Started() {
		s.End(e.context(0))
	}
	var errs []error
	if e.gameInstance.FnShutdown != nil {
		errs = append(errs, e.gameInstance.FnShutdown())
	}
	e.events.Shutdown()
	if e.assetManager != nil {
		errs = append(errs, e.assetManager.Shutdown())
	}
	if e.renderer != nil {
		errs = append(errs, e.renderer.Shutdown())
	}
	if e.platform != nil {
		errs = append(errs, e.platform.Shutdown())
	}
	if e.logFile != nil {
		core.SetLogOutput(os.Stderr)
		errs = append(errs, e.logFile.Close())
		e.logFile = nil
	}
	e.currentStage = EngineStageUninitialized
	return errors.Join(errs...)
}

// Quit asks the engine to stop after the current frame.
func (e *Engine) Quit() {
	e.events.Fire(core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT, Sender: e})
}

// AddScene appends a scene and returns its index. The first scene added
// becomes the current one.
func (e *Engine) AddScene(s *scene.Scene) int {
	e.scenes = append(e.scenes, s)
	if e.currentScene < 0 {
		e.currentScene = 0
	}
	return len(e.scenes) - 1
}

// LoadScene builds a scene from a scene file and adds it. Files inside the
// assets directory are reloaded when they change.
func (e *Engine) LoadScene(path string) (int, error) {
	cfg, err := e.readSceneConfig(path)
	if err != nil {
		return -1, err
	}
	return e.addSceneConfig(path, cfg)
}

// loadScenes decodes the scene files on a worker pool, then builds and adds
// them in the given order.
func (e *Engine) loadScenes(paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	js, err := systems.NewJobSystem(min(len(paths), runtime.NumCPU()), len(paths))
	if err != nil {
		return err
	}
	defer js.Shutdown()

	configs := make([]*loaders.SceneConfig, len(paths))
	errs := make([]error, len(paths))
	for i, path := range paths {
		js.Submit(systems.JobTask{
			Name: path,
			OnStart: func() (interface{}, error) {
				return e.readSceneConfig(path)
			},
			OnComplete: func(result interface{}) { configs[i] = result.(*loaders.SceneConfig) },
			OnFailure:  func(err error) { errs[i] = err },
		})
	}
	js.Wait()
	if err := errors.Join(errs...); err != nil {
		return err
	}

	for i, cfg := range configs {
		if _, err := e.addSceneConfig(paths[i], cfg); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) readSceneConfig(path string) (*loaders.SceneConfig, error) {
	if e.assetManager != nil {
		res, err := e.assetManager.LoadAsset(path, nil)
		if err == nil {
			return res.Data.(*loaders.SceneConfig), nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}
	return loaders.LoadSceneConfig(path)
}

func (e *Engine) addSceneConfig(path string, cfg *loaders.SceneConfig) (int, error) {
	s, err := actors.BuildScene(cfg)
	if err != nil {
		return -1, err
	}
	index := e.AddScene(s)
	e.scenePaths[absPath(path)] = index
	core.LogInfo("scene %q loaded from %s", s.Name, path)
	return index, nil
}

func (e *Engine) GetScene(index int) (*scene.Scene, error) {
	if index < 0 || index >= len(e.scenes) {
		return nil, fmt.Errorf("scene %d: %w", index, core.ErrSceneNotFound)
	}
	return e.scenes[index], nil
}

// CurrentScene returns nil when no scene was added.
func (e *Engine) CurrentScene() *scene.Scene {
	if e.currentScene < 0 || e.currentScene >= len(e.scenes) {
		return nil
	}
	return e.scenes[e.currentScene]
}

func (e *Engine) CurrentSceneIndex() int {
	return e.currentScene
}

func (e *Engine) SceneCount() int {
	return len(e.scenes)
}

// SetCurrentScene switches scenes. While running, the old scene is ended
// and the new one started.
func (e *Engine) SetCurrentScene(index int) error {
	next, err := e.GetScene(index)
	if err != nil {
		return err
	}
	if current := e.CurrentScene(); current != nil && current.Started() {
		current.End(e.context(0))
	}
	e.currentScene = index
	if e.currentStage == EngineStageRunning && !next.Started() {
		next.Start(e.context(0))
	}
	return nil
}

func (e *Engine) applyReloads() {
	if e.assetManager == nil {
		return
	}
	for {
		select {
		case res, ok := <-e.assetManager.Reloads():
			if !ok {
				return
			}
			e.replaceScene(res)
		case err, ok := <-e.assetManager.Errors():
			if !ok {
				return
			}
			core.LogWarn("asset reload: %s", err)
		default:
			return
		}
	}
}

func (e *Engine) replaceScene(res *loaders.Resource) {
	index, ok := e.scenePaths[absPath(res.FullPath)]
	if !ok {
		return
	}
	cfg, ok := res.Data.(*loaders.SceneConfig)
	if !ok {
		return
	}
	next, err := actors.BuildScene(cfg)
	if err != nil {
		core.LogError("reloading scene from %s: %s", res.FullPath, err)
		return
	}

	old := e.scenes[index]
	wasStarted := old.Started()
	if wasStarted {
		old.End(e.context(0))
	}
	e.scenes[index] = next
	if wasStarted {
		next.Start(e.context(0))
	}
	e.events.Fire(core.EventContext{Type: core.EVENT_CODE_SCENE_RELOADED, Sender: e, Data: res.FullPath})
}

func (e *Engine) context(deltaTime float64) *scene.Context {
	return &scene.Context{
		DeltaTime: deltaTime,
		Input:     e.input,
		Events:    e.events,
	}
}

func (e *Engine) Stage() Stage {
	return e.currentStage
}

func (e *Engine) IsRunning() bool {
	return e.isRunning
}

func (e *Engine) Input() *core.Input {
	return e.input
}

func (e *Engine) Events() *core.EventSystem {
	return e.events
}

func (e *Engine) Renderer() renderer.Renderer {
	return e.renderer
}

func (e *Engine) Metrics() *core.Metrics {
	return e.metrics
}

// GetFramebufferSize returns the width and height (in this order) of the
// terminal in cells.
func (e *Engine) GetFramebufferSize() (int, int) {
	return e.width, e.height
}

func (e *Engine) onEvent(context core.EventContext, listener interface{}) bool {
	switch context.Type {
	case core.EVENT_CODE_APPLICATION_QUIT:
		core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down.")
		e.isRunning = false
	}
	return false
}

func (e *Engine) onKey(context core.EventContext, listener interface{}) bool {
	ke, ok := context.Data.(*core.KeyEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return false
	}

	switch ke.KeyCode {
	case core.KEY_C:
		if s := e.CurrentScene(); s != nil {
			s.DebugColliders = !s.DebugColliders
			core.LogDebug("collider outlines: %t", s.DebugColliders)
		}
	default:
		core.LogDebug("'%c' key pressed", rune(ke.KeyCode))
	}
	return false
}

func (e *Engine) onResized(context core.EventContext, listener interface{}) bool {
	re, ok := context.Data.(*core.ResizeEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return false
	}

	width, height := re.Width, re.Height
	// Check if different. If so, trigger a resize event.
	if width == e.width && height == e.height {
		return false
	}
	e.width, e.height = width, height
	core.LogDebug("Terminal resize: %d, %d", width, height)

	// Handle minimization
	if width == 0 || height == 0 {
		core.LogInfo("Terminal minimized, suspending application.")
		e.isSuspended = true
		return false
	}
	if e.isSuspended {
		core.LogInfo("Terminal restored, resuming application.")
		e.isSuspended = false
	}
	if e.renderer != nil {
		if err := e.renderer.Resized(width, height); err != nil {
			core.LogError("%s", err)
		}
	}
	if e.gameInstance.FnOnResize != nil {
		if err := e.gameInstance.FnOnResize(width, height); err != nil {
			core.LogError("%s", err)
		}
	}
	return false
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
