// Package termui hosts dialog overlays inside a bubbletea program. The
// Compositor implements dialog.Frame on top of the bubbletea update/view
// cycle: the program feeds it messages from Update, renders the queue with
// Render, and layers the result over its own view with Composite.
package termui

import (
	"image/color"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/entrhq/parley/pkg/dialog"
	"github.com/entrhq/parley/pkg/easing"
	"github.com/entrhq/parley/pkg/logging"
)

// DefaultFadeDuration is how long a full 0-to-1 opacity fade takes.
const DefaultFadeDuration = 150 * time.Millisecond

// frameInterval paces repaint ticks while an animation is in flight.
const frameInterval = 33 * time.Millisecond

// RepaintMsg asks the program for another frame; the Compositor emits it
// while a fade is running and after one completes.
type RepaintMsg struct{}

// Repaint schedules a repaint tick.
func Repaint() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return RepaintMsg{}
	})
}

type maskLayer struct {
	rect    dialog.Rect
	radius  int
	color   color.Color
	opacity float64
}

// Compositor adapts a bubbletea program to dialog.Frame. Use it from a
// single program:
//
//	Update: consumed := comp.Update(msg); reply, cmd := comp.Render(queue)
//	View:   return comp.Composite(baseView)
type Compositor struct {
	width  int
	height int

	fadeDuration time.Duration
	clock        func() time.Time
	onDefocus    func()
	log          *logging.Logger

	anims map[string]*anim

	keys    []string
	keyMsgs []tea.KeyMsg

	// active records whether the overlay was visible on the last rendered
	// frame; while it is, key and mouse input is consumed instead of
	// reaching the host program.
	active bool

	mask       *maskLayer
	dialogRect dialog.Rect
	dialogView string
	defocused  bool
	repaint    bool
}

// CompositorOption configures a Compositor during creation.
type CompositorOption func(*Compositor)

// WithFadeDuration sets the wall-clock length of a full fade.
func WithFadeDuration(d time.Duration) CompositorOption {
	return func(c *Compositor) { c.fadeDuration = d }
}

// WithClock overrides the time source. Tests use this to step animations
// deterministically.
func WithClock(now func() time.Time) CompositorOption {
	return func(c *Compositor) { c.clock = now }
}

// WithDefocus registers a callback invoked once per frame while the
// overlay is visible, so the host can blur its own focused widgets.
func WithDefocus(fn func()) CompositorOption {
	return func(c *Compositor) { c.onDefocus = fn }
}

// WithCompositorLogger attaches a debug logger.
func WithCompositorLogger(l *logging.Logger) CompositorOption {
	return func(c *Compositor) { c.log = l }
}

// NewCompositor creates a Compositor. It learns the terminal size from the
// first tea.WindowSizeMsg passed to Update.
func NewCompositor(opts ...CompositorOption) *Compositor {
	c := &Compositor{
		fadeDuration: DefaultFadeDuration,
		clock:        time.Now,
		anims:        make(map[string]*anim),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Update feeds one bubbletea message to the overlay. It reports whether
// the message was consumed; a consumed message must not be forwarded to
// the host program's own widgets. Window size messages are recorded but
// never consumed, the host needs them too.
func (c *Compositor) Update(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width, c.height = msg.Width, msg.Height
		return false
	case RepaintMsg:
		return true
	case tea.KeyMsg:
		if !c.active {
			return false
		}
		c.keyMsgs = append(c.keyMsgs, msg)
		c.keys = append(c.keys, msg.String())
		return true
	case tea.MouseMsg:
		// Background widgets must not react to clicks under the mask.
		return c.active
	}
	return false
}

// Render drives the queue for one frame. Call it from Update after feeding
// the current message; the layered output is produced later by Composite.
// The returned command, when non-nil, keeps frames flowing while a fade is
// in progress and must be dispatched by the program.
func (c *Compositor) Render(q *dialog.Queue) (*dialog.Reply, tea.Cmd) {
	c.mask = nil
	c.dialogView = ""
	c.dialogRect = dialog.Rect{}
	c.defocused = false

	rep := q.Show(c)

	c.keys = c.keys[:0]
	c.keyMsgs = c.keyMsgs[:0]
	c.active = c.defocused

	var cmd tea.Cmd
	if c.repaint || c.animating() {
		c.repaint = false
		cmd = Repaint()
	}
	return rep, cmd
}

func (c *Compositor) animating() bool {
	now := c.clock()
	for _, a := range c.anims {
		if !a.settled(now, c.fadeDuration) {
			return true
		}
	}
	return false
}

// KeyMsgs exposes this frame's raw key messages for dialogs that embed
// input widgets and need more than the key strings dialog.Frame carries.
// Custom dialogs may type-assert their Frame to *Compositor to reach it.
func (c *Compositor) KeyMsgs() []tea.KeyMsg {
	return c.keyMsgs
}

// Bounds implements dialog.Frame.
func (c *Compositor) Bounds() dialog.Rect {
	return dialog.Rect{W: c.width, H: c.height}
}

// Keys implements dialog.Frame.
func (c *Compositor) Keys() []string {
	return c.keys
}

// PaintMask implements dialog.Frame.
func (c *Compositor) PaintMask(r dialog.Rect, radius int, col color.Color, opacity float64) {
	c.mask = &maskLayer{rect: r, radius: radius, color: col, opacity: opacity}
}

// PaintDialog implements dialog.Frame.
func (c *Compositor) PaintDialog(r dialog.Rect, view string) {
	c.dialogRect = r
	c.dialogView = view
}

// Animate implements dialog.Frame. A key seen for the first time starts at
// its target; afterwards the value eases toward the target over the fade
// duration, restarting smoothly when the target flips mid-flight.
func (c *Compositor) Animate(key string, on bool, curve easing.Curve) float64 {
	target := 0.0
	if on {
		target = 1
	}
	now := c.clock()

	a, ok := c.anims[key]
	if !ok {
		a = &anim{from: target, target: target, start: now}
		c.anims[key] = a
		return target
	}
	a.retarget(target, now, c.fadeDuration, curve)
	return a.valueAt(now, c.fadeDuration, curve)
}

// DefocusBackground implements dialog.Frame.
func (c *Compositor) DefocusBackground() {
	c.defocused = true
	if c.onDefocus != nil {
		c.onDefocus()
	}
}

// RequestRepaint implements dialog.Frame.
func (c *Compositor) RequestRepaint() {
	c.repaint = true
}

// Composite layers the frame's mask and dialog over the host program's
// view. With nothing to show it returns base unchanged.
func (c *Compositor) Composite(base string) string {
	if c.mask == nil && c.dialogView == "" {
		return base
	}

	canvas := newCanvas(base, c.width, c.height)
	if c.mask != nil {
		canvas.fillScrim(c.mask.rect, c.mask.radius, scrimStyle(c.mask.color, c.mask.opacity))
	}
	if c.dialogView != "" {
		canvas.overlayCentered(c.dialogRect, c.dialogView)
	}
	return canvas.String()
}
