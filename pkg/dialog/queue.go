package dialog

import (
	"fmt"
	"image/color"

	"github.com/gobwas/glob"
	"github.com/google/uuid"

	"github.com/entrhq/parley/pkg/easing"
	"github.com/entrhq/parley/pkg/logging"
)

// Queue owns the ordered collection of pending dialog entries for one
// overlay instance and drives the per-frame overlay state machine. A
// Queue belongs to exactly one host application state and must only be
// used from its render loop; it performs no internal synchronization.
//
// At most one entry is active at any time: either the front of the queue,
// or a single retired entry kept alive in the fading slot to finish its
// exit animation. While a fading entry exists the live front does not
// render; dialogs are strictly serialized, never stacked or cross-faded.
type Queue struct {
	entries []abstractEntry
	fading  abstractEntry

	maskMargin Margin
	maskRadius int
	maskColor  color.Color  // nil means DefaultMask
	anim       easing.Curve // nil disables animation
	style      *Style
	log        *logging.Logger

	// animKey identifies this queue's opacity value in the host's
	// animation store, so concurrent overlay instances animate
	// independently.
	animKey string
}

// Option configures a Queue during creation.
type Option func(*Queue)

// WithMaskMargin insets the mask rect from the host bounds. Useful when
// the host surface has chrome the mask should not cover.
func WithMaskMargin(m Margin) Option {
	return func(q *Queue) { q.maskMargin = m }
}

// WithMaskRadius rounds the mask corners by r cells.
func WithMaskRadius(r int) Option {
	return func(q *Queue) { q.maskRadius = r }
}

// WithMaskColor sets the mask color for entries that do not pick their own
// with Entry.WithMask. Unset, DefaultMask applies.
func WithMaskColor(c color.Color) Option {
	return func(q *Queue) { q.maskColor = c }
}

// WithEasing sets the animation curve for fade-in and fade-out.
func WithEasing(c easing.Curve) Option {
	return func(q *Queue) { q.anim = c }
}

// WithoutAnimation disables entry and exit animation: opacity snaps
// between 0 and 1 and closed dialogs disappear on the next frame.
func WithoutAnimation() Option {
	return func(q *Queue) { q.anim = nil }
}

// WithStyle overrides the style dialogs render with while they are on
// screen.
func WithStyle(s *Style) Option {
	return func(q *Queue) { q.style = s }
}

// WithLogger attaches a debug logger for queue state transitions.
func WithLogger(l *logging.Logger) Option {
	return func(q *Queue) { q.log = l }
}

// NewQueue creates an empty overlay queue. Animation defaults to
// easing.CubicOut.
func NewQueue(opts ...Option) *Queue {
	q := &Queue{
		anim:    easing.CubicOut,
		animKey: "parley-mask-" + uuid.NewString(),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Animated reports whether the queue fades dialogs in and out.
func (q *Queue) Animated() bool {
	return q.anim != nil
}

func (q *Queue) add(e abstractEntry) {
	q.entries = append(q.entries, e)
	q.log.Debugf("enqueued %q (pending: %d)", e.entryID(), len(q.entries))
}

func (q *Queue) addImmediate(e abstractEntry) {
	q.entries = append([]abstractEntry{e}, q.entries...)
	q.log.Debugf("enqueued %q at front (pending: %d)", e.entryID(), len(q.entries))
}

func (q *Queue) addIfAbsent(e abstractEntry) bool {
	if id := e.entryID(); id != "" && q.IsOpen(id) {
		return false
	}
	q.add(e)
	return true
}

// Count returns the number of pending entries, excluding a fading one.
func (q *Queue) Count() int {
	return len(q.entries)
}

// IsOpen reports whether an entry with the given identity is enqueued
// anywhere, including the front.
func (q *Queue) IsOpen(id string) bool {
	if id == "" {
		return false
	}
	for _, e := range q.entries {
		if e.entryID() == id {
			return true
		}
	}
	return false
}

// Popped is an entry removed from a queue with PopFront or PopBack. The
// host can inspect its identity or requeue it, on the same queue or a
// different one; its dialog, mask and handler travel with it.
type Popped struct {
	entry abstractEntry
}

// ID returns the removed entry's identity, or "" if it had none.
func (p *Popped) ID() string {
	return p.entry.entryID()
}

// Submit appends the removed entry to the back of q.
func (p *Popped) Submit(q *Queue) {
	q.add(p.entry)
}

// SubmitImmediate prepends the removed entry so it becomes the very next
// active dialog.
func (p *Popped) SubmitImmediate(q *Queue) {
	q.addImmediate(p.entry)
}

// PopFront removes the front entry without showing or replying it.
func (q *Queue) PopFront() (*Popped, bool) {
	if len(q.entries) == 0 {
		return nil, false
	}
	e := q.entries[0]
	q.entries = q.entries[1:]
	return &Popped{entry: e}, true
}

// PopBack removes the most recently appended entry without showing or
// replying it.
func (q *Queue) PopBack() (*Popped, bool) {
	if len(q.entries) == 0 {
		return nil, false
	}
	last := len(q.entries) - 1
	e := q.entries[last]
	q.entries = q.entries[:last]
	return &Popped{entry: e}, true
}

// CancelMatching removes every pending entry whose identity matches the
// glob pattern (entries without an identity never match). It returns the
// number of entries removed.
func (q *Queue) CancelMatching(pattern string) (int, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return 0, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	kept := q.entries[:0]
	removed := 0
	for _, e := range q.entries {
		if id := e.entryID(); id != "" && g.Match(id) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	q.entries = kept
	if removed > 0 {
		q.log.Debugf("cancelled %d entries matching %q", removed, pattern)
	}
	return removed, nil
}

// Show drives the overlay for one frame. The host must call it on every
// redraw. It returns the wrapped reply on the frame a dialog finalizes
// and nil on all other frames (nothing to show, or the dialog is still
// open).
func (q *Queue) Show(f Frame) *Reply {
	on := len(q.entries) > 0 && q.fading == nil

	var howOn float64
	if on || q.fading != nil {
		active := q.fading
		if active == nil {
			active = q.entries[0]
		}
		if c, ok := active.maskColor(); ok {
			if c == nil {
				c = q.maskColor
			}
			if c == nil {
				c = DefaultMask
			}
			howOn = q.showMask(f, c, on)
		} else if q.anim != nil {
			howOn = f.Animate(q.animKey, on, q.anim)
		} else if on {
			howOn = 1
		}
	}

	if howOn == 0 {
		if q.fading != nil {
			// The exit animation just finished: drop the retired entry
			// and repaint once more so the host redraws without the mask.
			q.log.Debugf("fade finished: %q", q.fading.entryID())
			q.fading = nil
			f.RequestRepaint()
		}
		return nil
	}

	// While anything overlay-related is visible, keyboard input must not
	// leak to background widgets.
	f.DefocusBackground()

	entry := q.fading
	closed := entry != nil
	if entry == nil {
		entry = q.entries[0]
	}

	style := q.style
	if style == nil {
		style = DefaultStyle()
	}
	ctx := &Context{
		ID:            entry.entryID(),
		Easing:        q.anim,
		Opacity:       howOn,
		AlreadyClosed: closed,
		Bounds:        f.Bounds().Inset(q.maskMargin),
		Style:         style,
	}

	rep, done := entry.show(f, ctx)
	if !done {
		return nil
	}
	if closed {
		// A retired contract must not reply again; if it does during the
		// fade, the reply is dropped.
		return nil
	}

	q.entries = q.entries[1:]
	if q.anim != nil {
		q.fading = entry
		q.log.Debugf("closed %q, fading out", ctx.ID)
	} else {
		q.log.Debugf("closed %q", ctx.ID)
	}
	return &rep
}

// showMask paints the interaction-blocking mask and returns the painted
// opacity. With animation enabled the opacity is interpolated toward 1
// while dialogOn holds and toward 0 otherwise; without animation it
// snaps.
func (q *Queue) showMask(f Frame, c color.Color, dialogOn bool) float64 {
	var howOn float64
	switch {
	case q.anim != nil:
		howOn = f.Animate(q.animKey, dialogOn, q.anim)
		if howOn == 0 {
			return 0
		}
	case dialogOn:
		howOn = 1
	default:
		return 0
	}

	f.PaintMask(f.Bounds().Inset(q.maskMargin), q.maskRadius, c, howOn)
	return howOn
}
