package dialog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stdCtx() *Context {
	return &Context{Opacity: 1, Style: DefaultStyle(), Bounds: Rect{W: 80, H: 24}}
}

func englishLocale(t *testing.T) {
	t.Helper()
	t.Setenv("LANGUAGE", "")
	t.Setenv("LC_ALL", "en_US.UTF-8")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "")
}

func TestStandardEnterActivatesFocusedButton(t *testing.T) {
	englishLocale(t)
	d := Confirm("Delete file", "Really delete it?")
	f := newFakeFrame()

	f.keys = nil
	if _, done := d.Show(f, stdCtx()); done {
		t.Fatal("dialog finalized without input")
	}

	f.keys = []string{"enter"}
	reply, done := d.Show(f, stdCtx())
	require.True(t, done)
	assert.Equal(t, ReplyYes, reply)
}

func TestStandardFocusMovement(t *testing.T) {
	englishLocale(t)
	for _, tc := range []struct {
		name string
		keys []string
		want StandardReply
	}{
		{"right", []string{"right", "enter"}, ReplyNo},
		{"tab", []string{"tab", "enter"}, ReplyNo},
		{"wrap forward", []string{"right", "right", "enter"}, ReplyYes},
		{"wrap backward", []string{"shift+tab", "enter"}, ReplyNo},
		{"back and forth", []string{"right", "left", "enter"}, ReplyYes},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d := Confirm("Quit", "Save before quitting?")
			f := newFakeFrame()
			f.keys = tc.keys

			reply, done := d.Show(f, stdCtx())
			require.True(t, done)
			assert.Equal(t, tc.want, reply)
		})
	}
}

func TestStandardEscAnswersLastButton(t *testing.T) {
	englishLocale(t)
	f := newFakeFrame()
	f.keys = []string{"esc"}

	confirm := Confirm("Quit", "Really quit?")
	reply, done := confirm.Show(f, stdCtx())
	require.True(t, done)
	assert.Equal(t, ReplyNo, reply, "dismissing a confirm declines it")

	info := Info("Note", "Saved.")
	reply, done = info.Show(f, stdCtx())
	require.True(t, done)
	assert.Equal(t, ReplyOK, reply)
}

func TestStandardNoButtonsCannotClose(t *testing.T) {
	d := NewStandard[StandardReply]("Working", "Please wait...")
	f := newFakeFrame()
	f.keys = []string{"esc", "enter"}

	if _, done := d.Show(f, stdCtx()); done {
		t.Error("buttonless dialog finalized")
	}
	if len(f.dialogViews) != 1 {
		t.Errorf("dialog painted %d times, want 1", len(f.dialogViews))
	}
}

func TestStandardIgnoresInputWhileClosed(t *testing.T) {
	englishLocale(t)
	d := Confirm("Quit", "Really quit?")
	f := newFakeFrame()
	f.keys = []string{"enter"}

	ctx := stdCtx()
	ctx.AlreadyClosed = true
	if _, done := d.Show(f, ctx); done {
		t.Error("closed dialog accepted input")
	}
	// It still paints: the queue keeps it on screen for the exit fade.
	if len(f.dialogViews) != 1 {
		t.Errorf("dialog painted %d times, want 1", len(f.dialogViews))
	}
}

func TestStandardStopsAtFirstFinalizingKey(t *testing.T) {
	englishLocale(t)
	d := Confirm("Quit", "Really quit?")
	f := newFakeFrame()
	// Keys after enter belong to whoever is focused next, not this dialog.
	f.keys = []string{"enter", "right", "enter"}

	reply, done := d.Show(f, stdCtx())
	require.True(t, done)
	assert.Equal(t, ReplyYes, reply)
}

func TestStandardViewShowsLocalizedButtons(t *testing.T) {
	englishLocale(t)
	d := Confirm("Quit", "Really quit?")
	f := newFakeFrame()

	d.Show(f, stdCtx())
	require.Len(t, f.dialogViews, 1)
	view := f.dialogViews[0]
	assert.Contains(t, view, "Quit")
	assert.Contains(t, view, "Really quit?")
	assert.Contains(t, view, "Yes")
	assert.Contains(t, view, "No")
	assert.Contains(t, view, "✕")
}

func TestStandardCustomButtons(t *testing.T) {
	d := NewStandard[string]("Conflict", "Keep which copy?").
		WithIcon(IconWarning).
		WithButtons(
			Button[string]{Label: "Mine", Value: "local"},
			Button[string]{Label: "Theirs", Value: "remote"},
		)
	f := newFakeFrame()
	f.keys = []string{"right", "enter"}

	reply, done := d.Show(f, stdCtx())
	require.True(t, done)
	assert.Equal(t, "remote", reply)
}

func TestStandardLongBodyScrolls(t *testing.T) {
	englishLocale(t)
	body := strings.Repeat("A very long line of explanation.\n", 40)
	d := Info("Release notes", body)
	f := newFakeFrame()

	ctx := stdCtx()
	ctx.Bounds = Rect{W: 60, H: 16}
	d.Show(f, ctx)
	require.True(t, d.vpReady, "oversized body did not enter the viewport")
	require.Len(t, f.dialogViews, 1)
	assert.Contains(t, f.dialogViews[0], "↑/↓ scroll")

	f.keys = []string{"down", "down"}
	if _, done := d.Show(f, ctx); done {
		t.Fatal("scrolling finalized the dialog")
	}
	assert.Equal(t, 2, d.vp.YOffset)

	f.keys = []string{"up"}
	d.Show(f, ctx)
	assert.Equal(t, 1, d.vp.YOffset)

	f.keys = []string{"pgdown"}
	d.Show(f, ctx)
	assert.Equal(t, 1+d.vp.Height, d.vp.YOffset)
}

func TestStandardWidthBounds(t *testing.T) {
	ctx := stdCtx()

	short := NewStandard[StandardReply]("Hi", "ok")
	if w := short.innerWidth(ctx); w != 20 {
		t.Errorf("floor width = %d, want 20", w)
	}

	wide := NewStandard[StandardReply]("T", strings.Repeat("x", 200)).WithMaxWidth(40)
	if w := wide.innerWidth(ctx); w != 40 {
		t.Errorf("capped width = %d, want 40", w)
	}

	padded := NewStandard[StandardReply]("Hi", "ok").WithMinWidth(30)
	if w := padded.innerWidth(ctx); w != 30 {
		t.Errorf("min width = %d, want 30", w)
	}
}

func TestStandardReplyPredicates(t *testing.T) {
	assert.True(t, ReplyOK.Accepted())
	assert.True(t, ReplyYes.Accepted())
	assert.False(t, ReplyNo.Accepted())
	assert.False(t, ReplyCancel.Accepted())

	assert.True(t, ReplyNo.Rejected())
	assert.True(t, ReplyCancel.Rejected())
	assert.False(t, ReplyOK.Rejected())
	assert.False(t, ReplyYes.Rejected())
}

func TestStandardReplyLocalize(t *testing.T) {
	assert.Equal(t, "OK", ReplyOK.Localize([]string{"en-US"}))
	assert.Equal(t, "Sí", ReplyYes.Localize([]string{"es"}))
	assert.Equal(t, "Annuler", ReplyCancel.Localize([]string{"fr"}))
	assert.Equal(t, "いいえ", ReplyNo.Localize([]string{"ja"}))
	// Unknown locales fall back to English.
	assert.Equal(t, "Yes", ReplyYes.Localize([]string{"xx"}))
}
