// Package controls tracks viewer actions independent of the input backend:
// held state, single-frame press edges and mouse-look deltas.
package controls

// Action is a bindable viewer action.
type Action int

const (
	ActionNone Action = iota
	MoveForward
	MoveBack
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
	Look // held while dragging turns the camera
	ToggleFire
	TogglePause
	SlowerTime
	FasterTime
	Screenshot
	OpenTexture
	ToggleOverlay
	Quit

	numActions
)

var actionNames = [numActions]string{
	ActionNone:    "none",
	MoveForward:   "move-forward",
	MoveBack:      "move-back",
	MoveLeft:      "move-left",
	MoveRight:     "move-right",
	MoveUp:        "move-up",
	MoveDown:      "move-down",
	Look:          "look",
	ToggleFire:    "toggle-fire",
	TogglePause:   "toggle-pause",
	SlowerTime:    "slower-time",
	FasterTime:    "faster-time",
	Screenshot:    "screenshot",
	OpenTexture:   "open-texture",
	ToggleOverlay: "toggle-overlay",
	Quit:          "quit",
}

func (a Action) String() string {
	if a < 0 || a >= numActions {
		return "unknown"
	}
	return actionNames[a]
}

// State is the per-frame action state.
type State struct {
	held    [numActions]bool
	pressed [numActions]bool

	dragX, dragY float32
}

// BeginFrame clears edges and drag accumulated during the previous frame.
func (s *State) BeginFrame() {
	s.pressed = [numActions]bool{}
	s.dragX, s.dragY = 0, 0
}

// Press records a key or button going down. Auto-repeat never produces a new
// edge, so a toggle flips exactly once per physical press.
func (s *State) Press(a Action, repeat bool) {
	if !valid(a) {
		return
	}
	if !s.held[a] && !repeat {
		s.pressed[a] = true
	}
	s.held[a] = true
}

// Release records a key or button going up.
func (s *State) Release(a Action) {
	if !valid(a) {
		return
	}
	s.held[a] = false
}

// Pressed reports whether a went down this frame.
func (s *State) Pressed(a Action) bool {
	return valid(a) && s.pressed[a]
}

// Held reports whether a is down.
func (s *State) Held(a Action) bool {
	return valid(a) && s.held[a]
}

// AddDrag accumulates relative mouse motion. Motion is ignored unless Look
// is held.
func (s *State) AddDrag(dx, dy float32) {
	if !s.held[Look] {
		return
	}
	s.dragX += dx
	s.dragY += dy
}

// Drag returns the mouse-look motion of this frame in pixels.
func (s *State) Drag() (dx, dy float32) {
	return s.dragX, s.dragY
}

// Movement returns the movement axes in [-1,1], opposite keys cancelling.
func (s *State) Movement() (forward, right, up float32) {
	return axis(s.held[MoveForward], s.held[MoveBack]),
		axis(s.held[MoveRight], s.held[MoveLeft]),
		axis(s.held[MoveUp], s.held[MoveDown])
}

func axis(pos, neg bool) float32 {
	var v float32
	if pos {
		v++
	}
	if neg {
		v--
	}
	return v
}

func valid(a Action) bool {
	return a > ActionNone && a < numActions
}
