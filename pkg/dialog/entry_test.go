package dialog

import (
	"image/color"
	"testing"
)

func TestEntryDefaults(t *testing.T) {
	e := NewEntry(&scripted[string]{})

	c, masked := e.maskColor()
	if !masked {
		t.Fatal("new entry is not masked")
	}
	if c != nil {
		t.Errorf("mask = %v, want nil (defer to the queue default)", c)
	}
	if e.entryID() != "" {
		t.Errorf("entryID = %q, want empty", e.entryID())
	}
}

func TestEntryBuilders(t *testing.T) {
	red := color.NRGBA{R: 0xFF, A: 0x40}
	e := NewEntry(&scripted[string]{}).WithID("warn").WithMask(red)

	if e.entryID() != "warn" {
		t.Errorf("entryID = %q", e.entryID())
	}
	if c, masked := e.maskColor(); !masked || c != red {
		t.Errorf("maskColor = %v, %v", c, masked)
	}

	e.WithoutMask()
	if _, masked := e.maskColor(); masked {
		t.Error("WithoutMask left the entry masked")
	}
}

func TestOnReplyConsumesPayload(t *testing.T) {
	q := NewQueue(WithoutAnimation())
	f := newFakeFrame()

	var got string
	calls := 0
	NewEntry(&scripted[string]{reply: "picked", replyOnCall: 1}).
		WithID("picker").
		OnReply(func(r string) {
			got = r
			calls++
		}).
		Submit(q)

	rep := q.Show(f)
	if rep == nil {
		t.Fatal("expected a reply")
	}
	if calls != 1 || got != "picked" {
		t.Fatalf("handler: calls=%d got=%q", calls, got)
	}

	// The handler consumed the value; the surfaced reply only records the
	// identity.
	if !rep.From("picker") {
		t.Errorf("reply from %q", rep.ID())
	}
	if rep.HasReply() {
		t.Error("payload surfaced despite handler")
	}
	if _, ok := Value[string](rep); ok {
		t.Error("handler-consumed payload extracted")
	}
}

func TestMapTransformsReply(t *testing.T) {
	q := NewQueue(WithoutAnimation())
	f := newFakeFrame()

	inner := NewEntry(&scripted[StandardReply]{reply: ReplyYes, replyOnCall: 1}).WithID("confirm")
	Map(inner, func(r StandardReply) bool { return r.Accepted() }).Submit(q)

	rep := q.Show(f)
	if rep == nil {
		t.Fatal("expected a reply")
	}
	if !rep.From("confirm") {
		t.Errorf("mapped entry lost its identity: %q", rep.ID())
	}
	v, ok := Value[bool](rep)
	if !ok || v != true {
		t.Fatalf("Value[bool] = %v, %v", v, ok)
	}
}

func TestMapTransformIsSingleShot(t *testing.T) {
	transforms := 0
	m := &mappedDialog[string, int]{
		inner: &misbehaving{},
		fn: func(string) int {
			transforms++
			return transforms
		},
	}

	f := newFakeFrame()
	ctx := &Context{Opacity: 1, Style: DefaultStyle(), Bounds: f.Bounds()}

	if _, done := m.Show(f, ctx); !done {
		t.Fatal("first reply not surfaced")
	}
	// The inner dialog violates the contract and replies again; the
	// transform must not run a second time.
	if _, done := m.Show(f, ctx); done {
		t.Error("second reply surfaced")
	}
	if transforms != 1 {
		t.Errorf("transform ran %d times", transforms)
	}
}

func TestHandlerRunsBeforeShowReturns(t *testing.T) {
	q := NewQueue(WithoutAnimation())
	f := newFakeFrame()

	state := "pending"
	NewEntry(&scripted[StandardReply]{reply: ReplyYes, replyOnCall: 1}).
		OnReply(func(r StandardReply) {
			if r.Accepted() {
				state = "confirmed"
			}
		}).
		Submit(q)

	q.Show(f)
	if state != "confirmed" {
		t.Errorf("state = %q after Show returned", state)
	}
}
