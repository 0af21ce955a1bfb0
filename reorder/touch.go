package reorder

import "time"

// DefaultLongPress is how long a press must be held before it turns into a
// drag.
const DefaultLongPress = 200 * time.Millisecond

// Point is a position on screen.
type Point struct {
	X, Y float64
}

// Rect is the rendered bounds of a list item.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// HitTest returns the index of the first bounds rectangle containing p, or
// -1.
func HitTest(bounds []Rect, p Point) int {
	for i, r := range bounds {
		if r.Contains(p) {
			return i
		}
	}

	return -1
}

// Haptic gives physical feedback when a long press arms a drag.
type Haptic interface {
	Vibrate(d time.Duration)
}

// Touch emulates drag-and-drop with a long press. A press held for the
// long-press threshold arms the drag; subsequent moves hit-test the item
// bounds to find the drop indicator and the release performs the move.
//
// Presses that originate in the card palette carry the id of the card being
// added instead of a source index. A quick tap on a palette card appends it.
type Touch struct {
	pressedAt time.Time
	engine    *Engine
	haptic    Haptic
	paletteID string
	longPress time.Duration
	source    int
	indicator int
	pressed   bool
	armed     bool
}

// TouchOption configures a Touch adapter.
type TouchOption func(*Touch)

// WithLongPress overrides the long-press threshold.
func WithLongPress(d time.Duration) TouchOption {
	return func(t *Touch) {
		if d > 0 {
			t.longPress = d
		}
	}
}

// WithHaptic enables haptic feedback when a drag is armed.
func WithHaptic(h Haptic) TouchOption {
	return func(t *Touch) {
		t.haptic = h
	}
}

// NewTouch returns a long-press adapter for engine.
func NewTouch(engine *Engine, opts ...TouchOption) *Touch {
	t := &Touch{
		engine:    engine,
		longPress: DefaultLongPress,
	}

	for _, opt := range opts {
		opt(t)
	}

	t.reset()

	return t
}

func (t *Touch) reset() {
	t.pressed = false
	t.armed = false
	t.source = -1
	t.indicator = -1
	t.paletteID = ""
	t.pressedAt = time.Time{}
}

// Press starts a touch on the list item at index.
func (t *Touch) Press(index int, at time.Time) {
	t.reset()

	if index < 0 || index >= t.engine.Len() {
		return
	}

	t.pressed = true
	t.source = index
	t.pressedAt = at
}

// PressPalette starts a touch on a palette card.
func (t *Touch) PressPalette(id string, at time.Time) {
	t.reset()

	if id == "" {
		return
	}

	t.pressed = true
	t.paletteID = id
	t.pressedAt = at
}

// Hold arms the drag once the press has lasted the long-press threshold. It
// reports whether the drag is armed.
func (t *Touch) Hold(at time.Time) bool {
	if !t.pressed || t.armed {
		return t.armed
	}

	if at.Sub(t.pressedAt) < t.longPress {
		return false
	}

	t.armed = true

	if t.haptic != nil {
		t.haptic.Vibrate(50 * time.Millisecond)
	}

	return true
}

// Move samples the item under p. Before the drag is armed the move only
// checks the long-press threshold.
func (t *Touch) Move(p Point, at time.Time, bounds []Rect) {
	if !t.Hold(at) {
		return
	}

	if i := HitTest(bounds, p); i >= 0 {
		t.indicator = i
	}
}

// Armed reports whether the long press has turned into a drag.
func (t *Touch) Armed() bool {
	return t.armed
}

// Indicator returns the current drop indicator, or -1.
func (t *Touch) Indicator() int {
	return t.indicator
}

// Release ends the touch. An armed drag moves the source to the indicator,
// or to the end when no indicator was found. An unarmed tap on a palette card
// appends the card. An unarmed tap on a list item does nothing.
func (t *Touch) Release(at time.Time) (bool, error) {
	if !t.pressed {
		return false, nil
	}

	t.Hold(at)

	armed, source, indicator, paletteID := t.armed, t.source, t.indicator, t.paletteID

	t.reset()

	if paletteID != "" {
		if armed && indicator >= 0 {
			return t.engine.Insert(paletteID, indicator)
		}

		return t.engine.Append(paletteID)
	}

	if !armed {
		return false, nil
	}

	if indicator < 0 {
		indicator = t.engine.Len() - 1
	}

	return t.engine.Move(source, indicator)
}

// Cancel abandons the touch.
func (t *Touch) Cancel() {
	t.reset()
}
