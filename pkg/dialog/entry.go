package dialog

import "image/color"

// DefaultMask is the mask color used when neither the entry nor its queue
// picks one: half-opaque black.
var DefaultMask color.Color = color.NRGBA{A: 0x80}

// abstractEntry erases an entry's reply type so the queue can hold
// heterogeneous entries in one ordered collection.
type abstractEntry interface {
	// show renders one frame and, on the frame the dialog finalizes,
	// wraps the typed reply into a Reply (running any attached handler).
	show(f Frame, ctx *Context) (Reply, bool)
	// maskColor reports whether the entry wants a mask and, when it does,
	// the color picked with WithMask. A nil color means the entry defers
	// to the queue's default.
	maskColor() (color.Color, bool)
	entryID() string
}

// Entry wraps a Dialog with its identity, mask color, and reply handler.
// Build one with NewEntry and the chainable With* methods, then hand it to
// a queue with one of the Submit methods.
type Entry[R any] struct {
	dialog  Dialog[R]
	handler func(R)
	mask    color.Color
	masked  bool
	id      string
}

// NewEntry wraps a dialog with the dimming mask enabled, in the queue's
// default color, and no identity.
func NewEntry[R any](d Dialog[R]) *Entry[R] {
	return &Entry[R]{dialog: d, masked: true}
}

// WithID sets a stable identity used for de-duplication, queue lookup and
// reply routing.
func (e *Entry[R]) WithID(id string) *Entry[R] {
	e.id = id
	return e
}

// WithMask overrides the dimming mask color.
func (e *Entry[R]) WithMask(c color.Color) *Entry[R] {
	e.mask = c
	e.masked = true
	return e
}

// WithoutMask disables the dimming mask for this entry. The overlay still
// intercepts background keyboard focus while the dialog is shown.
func (e *Entry[R]) WithoutMask() *Entry[R] {
	e.masked = false
	return e
}

// OnReply attaches a single-shot handler invoked with the typed reply on
// the frame the dialog finalizes. When a handler is attached the payload
// surfacing to the host is empty: the Reply only records which entry
// closed. The handler may mutate host state; that mutation is applied by
// the time Queue.Show returns.
func (e *Entry[R]) OnReply(fn func(R)) *Entry[R] {
	e.handler = fn
	return e
}

// Map returns a new entry whose dialog delegates to e's dialog and applies
// fn to its reply before it is observed further. The transform runs at
// most once, on the first (and only) finalizing frame. Identity and mask
// carry over; a handler does not, attach one to the returned entry.
func Map[R, T any](e *Entry[R], fn func(R) T) *Entry[T] {
	return &Entry[T]{
		dialog: &mappedDialog[R, T]{inner: e.dialog, fn: fn},
		mask:   e.mask,
		masked: e.masked,
		id:     e.id,
	}
}

// mappedDialog composes an inner dialog with a single-shot reply transform.
type mappedDialog[R, T any] struct {
	inner Dialog[R]
	fn    func(R) T
}

func (m *mappedDialog[R, T]) Show(f Frame, ctx *Context) (T, bool) {
	var zero T
	r, done := m.inner.Show(f, ctx)
	if !done {
		return zero, false
	}
	fn := m.fn
	m.fn = nil
	if fn == nil {
		// The inner dialog replied a second time, which the contract
		// forbids; drop it.
		return zero, false
	}
	return fn(r), true
}

// Submit appends the entry to the back of the queue.
func (e *Entry[R]) Submit(q *Queue) {
	q.add(e)
}

// SubmitImmediate prepends the entry so it becomes the very next active
// dialog, interrupting the current queue order.
func (e *Entry[R]) SubmitImmediate(q *Queue) {
	q.addImmediate(e)
}

// SubmitIfAbsent appends the entry unless one with the same identity is
// already enqueued. It reports whether the entry was added.
func (e *Entry[R]) SubmitIfAbsent(q *Queue) bool {
	return q.addIfAbsent(e)
}

func (e *Entry[R]) show(f Frame, ctx *Context) (Reply, bool) {
	r, done := e.dialog.Show(f, ctx)
	if !done {
		return Reply{}, false
	}
	rep := Reply{id: e.id}
	if e.handler != nil {
		fn := e.handler
		e.handler = nil
		fn(r)
	} else {
		rep.value = r
	}
	return rep, true
}

func (e *Entry[R]) maskColor() (color.Color, bool) {
	if !e.masked {
		return nil, false
	}
	return e.mask, true
}

func (e *Entry[R]) entryID() string {
	return e.id
}
