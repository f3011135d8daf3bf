package dialog

// Direct submission helpers for the standard dialog kinds.

// Info enqueues an information dialog.
func (q *Queue) Info(title, body string) {
	NewEntry(Info(title, body)).Submit(q)
}

// Success enqueues a success dialog.
func (q *Queue) Success(title, body string) {
	NewEntry(Success(title, body)).Submit(q)
}

// Warning enqueues a warning dialog.
func (q *Queue) Warning(title, body string) {
	NewEntry(Warning(title, body)).Submit(q)
}

// Error enqueues an error dialog.
func (q *Queue) Error(title, body string) {
	NewEntry(Error(title, body)).Submit(q)
}

// Confirm enqueues a confirmation dialog and routes its answer to handler.
// The handler is invoked at most once, on the frame the user answers.
func (q *Queue) Confirm(title, body string, handler func(StandardReply)) {
	NewEntry(Confirm(title, body)).OnReply(handler).Submit(q)
}
