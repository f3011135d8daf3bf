package dialog

// Reply carries a dialog's outcome back to the host: the identity of the
// entry that closed plus an optional type-erased payload. When the entry
// was submitted with an OnReply handler the handler consumes the typed
// value and the payload here is empty; the Reply then only records which
// dialog closed.
type Reply struct {
	id    string
	value any
	read  bool
}

// ID returns the identity of the entry that produced this reply, or ""
// if the entry had none.
func (r *Reply) ID() string {
	return r.id
}

// From reports whether this reply was produced by the entry with the
// given identity.
func (r *Reply) From(id string) bool {
	return r.id == id
}

// HasReply reports whether r still carries an unread payload.
func (r *Reply) HasReply() bool {
	return r.value != nil && !r.read
}

// HasReplyFrom reports whether r carries an unread payload produced by
// the entry with the given identity.
func (r *Reply) HasReplyFrom(id string) bool {
	return r.From(id) && r.HasReply()
}

// Value extracts the typed payload from a reply. If the payload is not a
// T (or was already read, or was consumed by an OnReply handler) the
// reply is left unchanged and ok is false, so the caller can retry with a
// different type or inspect the id. On success the payload is marked read
// and subsequent HasReply calls report false.
func Value[T any](r *Reply) (T, bool) {
	var zero T
	if r == nil || r.read || r.value == nil {
		return zero, false
	}
	v, ok := r.value.(T)
	if !ok {
		return zero, false
	}
	r.read = true
	return v, true
}
