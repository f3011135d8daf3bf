// Package dialog implements a modal dialog overlay queue for frame-driven
// terminal UIs. A host application submits dialogs (ready-made standard
// prompts or custom implementations of the Dialog interface) to a Queue
// and calls Queue.Show once per frame; the queue paints an
// interaction-blocking mask, animates entry and exit opacity, renders the
// front dialog, and returns a type-erased Reply on the frame the user
// finalizes it. Nothing blocks: waiting for an answer is modeled by Show
// returning nil until the user acts.
package dialog

import "github.com/entrhq/parley/pkg/easing"

// Dialog is implemented by anything that can be shown as a modal dialog.
// R is the reply type delivered when the user finalizes the dialog.
//
// Show is called once per frame while the dialog is active. It draws the
// dialog for the current frame and reports done=false until the frame on
// which the user's action finalizes it, when it returns the reply and
// done=true exactly once. A finalized dialog is never shown live again;
// during a fade-out it is still drawn with ctx.AlreadyClosed set and must
// not accept input on those frames.
type Dialog[R any] interface {
	Show(f Frame, ctx *Context) (reply R, done bool)
}

// Context is the read-only per-frame record passed to Dialog.Show.
type Context struct {
	// ID is the stable identity of the entry being shown, or "" if the
	// entry was submitted without one.
	ID string

	// Easing is the queue's animation curve, nil when animation is
	// disabled.
	Easing easing.Curve

	// Opacity is the current overlay opacity in [0, 1].
	Opacity float64

	// AlreadyClosed reports whether the dialog has replied and is only
	// being drawn to finish its exit animation.
	AlreadyClosed bool

	// Bounds is the on-screen rect available to the dialog (the mask
	// rect: host bounds minus the queue's mask margin).
	Bounds Rect

	// Style is the effective style for this frame: the queue's override
	// while one is configured, the package default otherwise.
	Style *Style
}
