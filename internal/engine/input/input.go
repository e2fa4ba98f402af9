// Package input translates SDL2 events into viewer controls.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/tianguis/internal/engine/controls"
)

// DefaultBindings maps keys to actions.
var DefaultBindings = map[sdl.Scancode]controls.Action{
	sdl.SCANCODE_W:            controls.MoveForward,
	sdl.SCANCODE_UP:           controls.MoveForward,
	sdl.SCANCODE_S:            controls.MoveBack,
	sdl.SCANCODE_DOWN:         controls.MoveBack,
	sdl.SCANCODE_A:            controls.MoveLeft,
	sdl.SCANCODE_LEFT:         controls.MoveLeft,
	sdl.SCANCODE_D:            controls.MoveRight,
	sdl.SCANCODE_RIGHT:        controls.MoveRight,
	sdl.SCANCODE_SPACE:        controls.MoveUp,
	sdl.SCANCODE_LSHIFT:       controls.MoveDown,
	sdl.SCANCODE_F:            controls.ToggleFire,
	sdl.SCANCODE_P:            controls.TogglePause,
	sdl.SCANCODE_LEFTBRACKET:  controls.SlowerTime,
	sdl.SCANCODE_RIGHTBRACKET: controls.FasterTime,
	sdl.SCANCODE_F12:          controls.Screenshot,
	sdl.SCANCODE_O:            controls.OpenTexture,
	sdl.SCANCODE_F3:           controls.ToggleOverlay,
	sdl.SCANCODE_ESCAPE:       controls.Quit,
}

// Input polls SDL events into a controls.State.
type Input struct {
	bindings map[sdl.Scancode]controls.Action
	state    controls.State

	resized       bool
	width, height int
}

// New creates a new input handler with the default bindings.
func New() *Input {
	return &Input{bindings: DefaultBindings}
}

// Update drains pending SDL events without blocking. Returns true if the
// viewer should quit.
func (i *Input) Update() bool {
	i.state.BeginFrame()
	i.resized = false

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.resized = true
				i.width, i.height = int(e.Data1), int(e.Data2)
			}

		case *sdl.KeyboardEvent:
			a, ok := i.bindings[e.Keysym.Scancode]
			if !ok {
				continue
			}
			if e.Type == sdl.KEYDOWN {
				i.state.Press(a, e.Repeat != 0)
			} else {
				i.state.Release(a)
			}

		case *sdl.MouseButtonEvent:
			if e.Button != sdl.BUTTON_RIGHT {
				continue
			}
			if e.Type == sdl.MOUSEBUTTONDOWN {
				i.state.Press(controls.Look, false)
			} else {
				i.state.Release(controls.Look)
			}

		case *sdl.MouseMotionEvent:
			i.state.AddDrag(float32(e.XRel), float32(e.YRel))
		}
	}

	return quit || i.state.Pressed(controls.Quit)
}

// State returns the control state of the last Update.
func (i *Input) State() *controls.State {
	return &i.state
}

// Resized reports a window resize during the last Update and the new size.
func (i *Input) Resized() (w, h int, ok bool) {
	return i.width, i.height, i.resized
}
