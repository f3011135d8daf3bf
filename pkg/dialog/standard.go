package dialog

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/entrhq/parley/pkg/locale"
)

// StandardReply is the answer delivered by the built-in dialog kinds.
type StandardReply int

const (
	ReplyOK StandardReply = iota
	ReplyCancel
	ReplyYes
	ReplyNo
)

// Accepted reports whether the reply is an affirmative answer.
func (r StandardReply) Accepted() bool {
	return r == ReplyOK || r == ReplyYes
}

// Rejected reports whether the reply is a negative answer.
func (r StandardReply) Rejected() bool {
	return r == ReplyCancel || r == ReplyNo
}

// Localize returns the reply's button label under the best-matching
// locale in prefs, falling back to English.
func (r StandardReply) Localize(prefs []string) string {
	switch r {
	case ReplyOK:
		return locale.Text(locale.PhraseOK, prefs)
	case ReplyCancel:
		return locale.Text(locale.PhraseCancel, prefs)
	case ReplyYes:
		return locale.Text(locale.PhraseYes, prefs)
	case ReplyNo:
		return locale.Text(locale.PhraseNo, prefs)
	}
	return ""
}

// String returns the label under the system locale preferences.
func (r StandardReply) String() string {
	return r.Localize(locale.Preferences())
}

// Button pairs a label with the reply delivered when it is activated.
type Button[R any] struct {
	Label string
	Value R
}

// StdButton builds a button for a built-in reply, labeled under the
// system locale.
func StdButton(r StandardReply) Button[StandardReply] {
	return Button[StandardReply]{Label: r.String(), Value: r}
}

// Icon is the glyph shown beside a standard dialog title.
type Icon struct {
	Glyph string
	Color lipgloss.Color
}

// The built-in dialog icons.
var (
	IconInfo    = Icon{Glyph: "ℹ", Color: infoBlue}
	IconSuccess = Icon{Glyph: "✔", Color: mintGreen}
	IconConfirm = Icon{Glyph: "?", Color: frameBlue}
	IconWarning = Icon{Glyph: "▲", Color: amberYellow}
	IconError   = Icon{Glyph: "✖", Color: softRed}
)

// Standard is the ready-made dialog variant behind the info, success,
// warning, error and confirm prompts: a titled window with an icon, a
// wrapped (scrollable when oversized) body, and a row of buttons.
//
// Keyboard model: left/right (or tab/shift+tab) move button focus, enter
// activates the focused button, up/down scroll a long body, and esc is
// the window close affordance, answering with the last-declared button.
type Standard[R any] struct {
	Title    string
	Body     string
	Icon     Icon
	Buttons  []Button[R]
	MinWidth int
	MaxWidth int

	selected int
	vp       viewport.Model
	vpReady  bool
}

// NewStandard creates a bare standard dialog with no icon and no buttons.
// A dialog without buttons cannot be closed by the user, so add at least
// one with WithButtons.
func NewStandard[R any](title, body string) *Standard[R] {
	return &Standard[R]{Title: title, Body: body}
}

// WithIcon sets the title icon.
func (d *Standard[R]) WithIcon(icon Icon) *Standard[R] {
	d.Icon = icon
	return d
}

// WithButtons replaces the button set. Buttons are declared in reading
// order; the last-declared button doubles as the close-affordance answer.
func (d *Standard[R]) WithButtons(buttons ...Button[R]) *Standard[R] {
	d.Buttons = buttons
	if d.selected >= len(d.Buttons) {
		d.selected = 0
	}
	return d
}

// WithMinWidth sets a lower bound on the dialog's inner width.
func (d *Standard[R]) WithMinWidth(w int) *Standard[R] {
	d.MinWidth = w
	return d
}

// WithMaxWidth sets an upper bound on the dialog's inner width.
func (d *Standard[R]) WithMaxWidth(w int) *Standard[R] {
	d.MaxWidth = w
	return d
}

// Info creates an information dialog with a single OK button.
func Info(title, body string) *Standard[StandardReply] {
	return &Standard[StandardReply]{
		Title:   title,
		Body:    body,
		Icon:    IconInfo,
		Buttons: []Button[StandardReply]{StdButton(ReplyOK)},
	}
}

// Success creates a success dialog with a single OK button.
func Success(title, body string) *Standard[StandardReply] {
	return &Standard[StandardReply]{
		Title:   title,
		Body:    body,
		Icon:    IconSuccess,
		Buttons: []Button[StandardReply]{StdButton(ReplyOK)},
	}
}

// Confirm creates a confirmation dialog with Yes and No buttons. Closing
// the window without answering delivers No.
func Confirm(title, body string) *Standard[StandardReply] {
	return &Standard[StandardReply]{
		Title:   title,
		Body:    body,
		Icon:    IconConfirm,
		Buttons: []Button[StandardReply]{StdButton(ReplyYes), StdButton(ReplyNo)},
	}
}

// Warning creates a warning dialog with a single OK button.
func Warning(title, body string) *Standard[StandardReply] {
	return &Standard[StandardReply]{
		Title:   title,
		Body:    body,
		Icon:    IconWarning,
		Buttons: []Button[StandardReply]{StdButton(ReplyOK)},
	}
}

// Error creates an error dialog with a single OK button.
func Error(title, body string) *Standard[StandardReply] {
	return &Standard[StandardReply]{
		Title:   title,
		Body:    body,
		Icon:    IconError,
		Buttons: []Button[StandardReply]{StdButton(ReplyOK)},
	}
}

// Show renders one frame of the dialog and handles this frame's input.
func (d *Standard[R]) Show(f Frame, ctx *Context) (R, bool) {
	var zero R
	var reply *R
	closeRequested := false

	if !ctx.AlreadyClosed {
		for _, key := range f.Keys() {
			switch key {
			case "left", "shift+tab":
				d.moveFocus(-1)
			case "right", "tab":
				d.moveFocus(1)
			case "up":
				d.scroll(-1)
			case "down":
				d.scroll(1)
			case "pgup":
				d.scroll(-d.vp.Height)
			case "pgdown":
				d.scroll(d.vp.Height)
			case "enter":
				if len(d.Buttons) > 0 {
					v := d.Buttons[d.selected].Value
					reply = &v
				}
			case "esc":
				closeRequested = true
			}
			if reply != nil || closeRequested {
				break
			}
		}
	}

	f.PaintDialog(ctx.Bounds, d.view(ctx))

	switch {
	case reply != nil:
		return *reply, true
	case closeRequested && len(d.Buttons) > 0:
		// The close affordance answers with the last-declared button.
		return d.Buttons[len(d.Buttons)-1].Value, true
	}
	return zero, false
}

func (d *Standard[R]) moveFocus(delta int) {
	n := len(d.Buttons)
	if n == 0 {
		return
	}
	d.selected = ((d.selected+delta)%n + n) % n
}

func (d *Standard[R]) scroll(lines int) {
	if !d.vpReady {
		return
	}
	d.vp.SetYOffset(d.vp.YOffset + lines)
}

// view renders the dialog window for the current frame.
func (d *Standard[R]) view(ctx *Context) string {
	st := ctx.Style
	frameColor := Fade(st.FrameColor, ctx.Opacity)

	width := d.innerWidth(ctx)
	body := st.Body.Width(width).Render(d.Body)

	// The body scrolls inside a viewport when it would not fit above the
	// button row.
	bodyAvail := ctx.Bounds.H - 6 // border, header, spacing, buttons
	scrolling := false
	if bodyAvail > 0 && lipgloss.Height(body) > bodyAvail {
		if !d.vpReady || d.vp.Width != width || d.vp.Height != bodyAvail {
			d.vp = viewport.New(width, bodyAvail)
			d.vpReady = true
		}
		d.vp.SetContent(body)
		body = d.vp.View()
		scrolling = true
	}

	sections := []string{
		d.header(st, width, ctx.Opacity),
		"",
		body,
		"",
		d.buttonRow(st, width, scrolling),
	}
	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	return st.Frame.BorderForeground(frameColor).Render(content)
}

func (d *Standard[R]) header(st *Style, width int, opacity float64) string {
	var left string
	if d.Icon.Glyph != "" {
		icon := lipgloss.NewStyle().
			Foreground(Fade(d.Icon.Color, opacity)).
			Render(d.Icon.Glyph)
		left = icon + " "
	}
	left += st.Title.Render(d.Title)

	closeHint := st.Hint.Render("✕")
	gap := width - lipgloss.Width(left) - lipgloss.Width(closeHint)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + closeHint
}

func (d *Standard[R]) buttonRow(st *Style, width int, scrolling bool) string {
	if len(d.Buttons) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(d.Buttons))
	for i, b := range d.Buttons {
		style := st.Button
		if i == d.selected {
			style = st.ButtonActive
		}
		rendered = append(rendered, style.Render(b.Label))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, rendered...)

	var hint string
	if scrolling {
		hint = st.Hint.Render("↑/↓ scroll")
	}

	gap := width - lipgloss.Width(hint) - lipgloss.Width(row)
	if gap < 1 {
		gap = 1
	}
	return hint + strings.Repeat(" ", gap) + row
}

// innerWidth picks the dialog's content width for the available bounds.
func (d *Standard[R]) innerWidth(ctx *Context) int {
	avail := ctx.Bounds.W - 8 // frame border, padding, breathing room
	if d.MaxWidth > 0 && avail > d.MaxWidth {
		avail = d.MaxWidth
	}

	longest := lipgloss.Width(d.Body)
	if tw := lipgloss.Width(d.Title) + 6; tw > longest {
		longest = tw
	}

	width := longest
	if width > avail {
		width = avail
	}
	if width < d.MinWidth {
		width = d.MinWidth
	}
	if width < 20 {
		width = 20
	}
	return width
}
