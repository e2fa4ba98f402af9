// Package viewer implements the interactive day/night viewer loop.
package viewer

import (
	"fmt"
	"image"
	"os"
	"time"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/tianguis/internal/config"
	"github.com/Faultbox/tianguis/internal/engine/audio"
	"github.com/Faultbox/tianguis/internal/engine/controls"
	"github.com/Faultbox/tianguis/internal/engine/debug"
	"github.com/Faultbox/tianguis/internal/engine/input"
	"github.com/Faultbox/tianguis/internal/engine/renderer"
	"github.com/Faultbox/tianguis/internal/engine/scene"
	"github.com/Faultbox/tianguis/internal/engine/texture"
	"github.com/Faultbox/tianguis/internal/engine/window"
	"github.com/Faultbox/tianguis/internal/logger"
	"github.com/Faultbox/tianguis/internal/setup"
)

// Time scale steps for the [ and ] keys.
const (
	slower = 0.5
	faster = 2.0
)

// Viewer is the interactive viewer instance.
type Viewer struct {
	config  *config.Config
	log     *zap.Logger
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	scene  *scene.State
	tracer *scene.Renderer
	clock  *scene.Clock
	frame  *image.RGBA

	ambience    *audio.Ambience
	screenshots *debug.ScreenshotCapture
	overlay     bool
	fps         float64

	// Paths picked in the native file dialog. The dialog runs on its own
	// goroutine; textures are swapped on the main loop.
	pendingTexture chan string
	dialogOpen     bool
}

// New creates a new viewer instance.
func New(cfg *config.Config) (*Viewer, error) {
	log := logger.Named("viewer")
	log.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Float64("cycle", cfg.Cycle.Length),
	)

	v := &Viewer{
		config:         cfg,
		log:            log,
		overlay:        true,
		pendingTexture: make(chan string, 1),
	}

	// Create window (this also creates OpenGL context)
	var err error
	v.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	dw, dh := v.window.DrawableSize()
	v.renderer, err = renderer.New(renderer.Config{Width: dw, Height: dh})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.input = input.New()
	v.scene = setup.NewScene(cfg)
	v.tracer = scene.NewRenderer(cfg.Render.Workers)
	v.clock = scene.NewClock(cfg.Cycle.TimeScale, cfg.Cycle.StartOffset)
	v.screenshots = debug.NewScreenshotCapture(cfg.Screenshots.Dir, "tianguis")
	v.resize(dw, dh)

	v.ambience = audio.NewAmbience(float64(cfg.Audio.Volume))
	v.ambience.SetFire(v.scene.Fire.Enabled())
	if cfg.Audio.Enabled {
		v.initAudio()
	}

	log.Info("viewer initialized",
		zap.Int("workers", v.tracer.Workers()),
		zap.Int("draws", len(v.scene.Draws())),
		zap.Bool("textured_ground", v.scene.Ground.Textured()),
	)
	return v, nil
}

// initAudio starts the ambience. Audio is optional, so failures only warn.
func (v *Viewer) initAudio() {
	var data []byte
	if path := v.config.Audio.Crackle; path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			v.log.Warn("crackle sound unavailable, using synthesized crackle",
				zap.String("path", path), zap.Error(err))
		}
	}
	if err := v.ambience.Init(data); err != nil {
		v.log.Warn("audio disabled", zap.Error(err))
	}
}

// resize reallocates the CPU frame for a new drawable size.
func (v *Viewer) resize(width, height int) {
	fw, fh := scene.FrameSize(width, height, v.config.Render.Scale)
	if v.frame != nil && v.frame.Rect.Dx() == fw && v.frame.Rect.Dy() == fh {
		return
	}
	v.frame = image.NewRGBA(image.Rect(0, 0, fw, fh))
	v.log.Debug("frame resized", zap.Int("width", fw), zap.Int("height", fh))
}

// Run starts the main loop. It returns when the window closes or Quit is
// pressed.
func (v *Viewer) Run() {
	v.running = true

	// Timing
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	v.log.Info("starting viewer loop")

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		if v.input.Update() {
			v.running = false
			break
		}
		if _, _, ok := v.input.Resized(); ok {
			dw, dh := v.window.DrawableSize()
			v.renderer.Resize(dw, dh)
			v.resize(dw, dh)
		}

		// 2. Update scene state
		v.update(float32(dt))

		// 3. Render
		v.render()

		// 4. Present (swap buffers)
		v.window.SwapBuffers()

		// FPS counter
		frameCount++
		if elapsed := time.Since(fpsTimer); elapsed >= time.Second {
			v.fps = float64(frameCount) / elapsed.Seconds()
			v.log.Debug("fps", zap.Float64("fps", v.fps), zap.Float64("dt_ms", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
}

// update applies input and advances the scene.
func (v *Viewer) update(dt float32) {
	c := v.input.State()

	if c.Pressed(controls.ToggleFire) {
		on := v.scene.ToggleFire()
		v.ambience.SetFire(on)
		v.log.Info("campfire toggled", zap.Bool("on", on))
	}
	if c.Pressed(controls.TogglePause) {
		v.log.Info("time paused", zap.Bool("paused", v.clock.TogglePause()))
	}
	if c.Pressed(controls.SlowerTime) {
		v.clock.SetScale(v.clock.Scale() * slower)
		v.log.Debug("time scale", zap.Float64("scale", v.clock.Scale()))
	}
	if c.Pressed(controls.FasterTime) {
		v.clock.SetScale(v.clock.Scale() * faster)
		v.log.Debug("time scale", zap.Float64("scale", v.clock.Scale()))
	}
	if c.Pressed(controls.ToggleOverlay) {
		v.overlay = !v.overlay
	}
	if c.Pressed(controls.OpenTexture) {
		v.openTextureDialog()
	}

	select {
	case path := <-v.pendingTexture:
		v.dialogOpen = false
		if path != "" {
			v.loadGroundTexture(path)
		}
	default:
	}

	cam := v.scene.Camera
	if dx, dy := c.Drag(); dx != 0 || dy != 0 {
		cam.HandleDrag(dx, dy)
	}
	if f, r, u := c.Movement(); f != 0 || r != 0 || u != 0 {
		cam.HandleMovement(f, r, u, dt)
	}

	v.scene.Update(v.clock.Tick())
}

// render traces the frame and presents it.
func (v *Viewer) render() {
	v.tracer.Render(v.scene, v.frame)

	if v.input.State().Pressed(controls.Screenshot) {
		v.saveScreenshot()
	}

	if v.overlay {
		sun := v.scene.Sun()
		debug.DrawOverlay(v.frame, debug.Status{
			TimeOfDay:  float64(sun.TimeOfDay),
			Visibility: sun.Visibility,
			Fire:       v.scene.Fire.Enabled(),
			Paused:     v.clock.Paused(),
			TimeScale:  v.clock.Scale(),
			FPS:        v.fps,
		})
	}

	v.renderer.Upload(v.frame)
	v.renderer.Draw()
}

// saveScreenshot writes the frame upscaled to the drawable size, without
// the overlay.
func (v *Viewer) saveScreenshot() {
	dw, dh := v.window.DrawableSize()
	full := image.NewRGBA(image.Rect(0, 0, dw, dh))
	scene.Upscale(full, v.frame)
	path, err := v.screenshots.Capture(full)
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}

// openTextureDialog shows a native file dialog to pick a ground texture.
func (v *Viewer) openTextureDialog() {
	if v.dialogOpen {
		return
	}
	v.dialogOpen = true
	// SDL window operations must stay on the main thread, so the result is
	// handed back through pendingTexture.
	go func() {
		filename, err := dialog.File().
			Filter("Images", "png", "jpg", "jpeg", "tga", "bmp").
			Filter("All Files", "*").
			Title("Open Ground Texture").
			Load()
		if err != nil && err != dialog.ErrCancelled {
			v.log.Warn("file dialog error", zap.Error(err))
		}
		v.pendingTexture <- filename
	}()
}

// loadGroundTexture swaps the ground albedo. On failure the current ground
// stays in place.
func (v *Viewer) loadGroundTexture(path string) {
	tex, err := texture.Load(path)
	if err != nil {
		v.log.Warn("failed to load ground texture", zap.String("path", path), zap.Error(err))
		return
	}
	v.scene.SetGroundTexture(tex)
	w, h := tex.Size()
	v.log.Info("ground texture loaded", zap.String("path", path), zap.Int("width", w), zap.Int("height", h))
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.ambience != nil {
		v.ambience.Close()
	}
	if v.tracer != nil {
		v.tracer.Close()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
