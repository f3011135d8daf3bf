package dialog

import (
	"image/color"

	"github.com/entrhq/parley/pkg/easing"
)

// Frame is the per-frame handle the host render loop passes to Queue.Show.
// It is the only boundary between the engine and the hosting framework;
// pkg/termui provides an implementation for bubbletea hosts, and tests
// drive the engine through scripted fakes.
type Frame interface {
	// Bounds reports the drawable region of the host surface in cells.
	Bounds() Rect

	// Keys reports the key presses captured for the overlay layer since
	// the previous frame, in arrival order, using bubbletea key names
	// ("enter", "esc", "left", "tab", ...).
	Keys() []string

	// PaintMask fills r above all background content with c at the given
	// opacity, rounding corners by radius cells, and consumes every
	// pointer event inside r for this frame so background widgets cannot
	// receive input.
	PaintMask(r Rect, radius int, c color.Color, opacity float64)

	// PaintDialog draws a rendered dialog view centered in r, above the
	// mask layer.
	PaintDialog(r Rect, view string)

	// Animate moves the value stored under key toward 1 when on is true
	// and toward 0 otherwise, shaped by curve, and reports the current
	// position. The value must land exactly on 0 or 1 once the animation
	// completes. A key seen for the first time starts at its target.
	Animate(key string, on bool, curve easing.Curve) float64

	// DefocusBackground clears keyboard focus from any control that does
	// not belong to the overlay layer.
	DefocusBackground()

	// RequestRepaint schedules one extra redraw after the current frame.
	RequestRepaint()
}
