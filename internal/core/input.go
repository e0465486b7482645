package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionJump           // Space, W, Up arrow - also starts a run from a title screen
	ActionConfirm        // Enter - start a run
	ActionBack           // B, Escape - back to the level menu
	ActionPause          // P - freeze the host
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the intent snapshot consumed by the simulation for one display frame.
// Held flags are sampled continuously; Pressed flags are edges latched until consumed.
type InputFrame struct {
	MoveLeft     bool
	MoveRight    bool
	JumpHeld     bool
	JumpPressed  bool
	StartPressed bool
}

// Horizontal returns -1, 0 or +1 for the horizontal intent.
func (f InputFrame) Horizontal() int {
	dir := 0
	if f.MoveLeft {
		dir--
	}
	if f.MoveRight {
		dir++
	}
	return dir
}

// ClearEdges drops the edge-triggered flags, keeping held state.
func (f *InputFrame) ClearEdges() {
	f.JumpPressed = false
	f.StartPressed = false
}

// Default hold windows for terminals that only report key presses and repeats.
const (
	DefaultInitialHold = 550 * time.Millisecond
	DefaultRepeatHold  = 120 * time.Millisecond
)

// keyHold tracks one key that terminals report as a stream of repeats.
type keyHold struct {
	last    time.Time
	repeats int
}

func (k *keyHold) press(now time.Time) {
	if k.last.IsZero() {
		k.repeats = 0
	} else {
		k.repeats++
	}
	k.last = now
}

func (k keyHold) held(now time.Time, initial, repeat time.Duration) bool {
	if k.last.IsZero() {
		return false
	}
	window := repeat
	if k.repeats == 0 {
		window = initial
	}
	return now.Sub(k.last) <= window
}

// InputCollector turns key press events into per-frame InputFrames.
// A key counts as held while its presses keep arriving within the hold window;
// the first press gets the longer initial window to cover the repeat delay.
type InputCollector struct {
	InitialHold time.Duration
	RepeatHold  time.Duration

	left, right, jump keyHold
	jumpPressed       bool
	startPressed      bool
}

// NewInputCollector creates a collector with the default hold windows.
func NewInputCollector() *InputCollector {
	return &InputCollector{
		InitialHold: DefaultInitialHold,
		RepeatHold:  DefaultRepeatHold,
	}
}

// Press records a key press (or auto-repeat) for the given action.
func (c *InputCollector) Press(a Action, now time.Time) {
	c.expire(now)
	switch a {
	case ActionLeft:
		c.left.press(now)
		c.right = keyHold{}
	case ActionRight:
		c.right.press(now)
		c.left = keyHold{}
	case ActionJump:
		if !c.jump.held(now, c.InitialHold, c.RepeatHold) {
			c.jumpPressed = true
			c.startPressed = true
		}
		c.jump.press(now)
	case ActionConfirm:
		c.startPressed = true
	}
}

// expire forgets keys whose hold window elapsed, so the next press starts a new streak.
func (c *InputCollector) expire(now time.Time) {
	for _, k := range []*keyHold{&c.left, &c.right, &c.jump} {
		if !k.held(now, c.InitialHold, c.RepeatHold) {
			*k = keyHold{}
		}
	}
}

// Frame samples the intent snapshot at the given time.
func (c *InputCollector) Frame(now time.Time) InputFrame {
	return InputFrame{
		MoveLeft:     c.left.held(now, c.InitialHold, c.RepeatHold),
		MoveRight:    c.right.held(now, c.InitialHold, c.RepeatHold),
		JumpHeld:     c.jump.held(now, c.InitialHold, c.RepeatHold),
		JumpPressed:  c.jumpPressed,
		StartPressed: c.startPressed,
	}
}

// Consume clears the edge flags after a frame's substeps have observed them.
func (c *InputCollector) Consume() {
	c.jumpPressed = false
	c.startPressed = false
}

// ReleaseAll forgets every key, e.g. when the terminal loses focus.
func (c *InputCollector) ReleaseAll() {
	c.left = keyHold{}
	c.right = keyHold{}
	c.jump = keyHold{}
	c.Consume()
}
