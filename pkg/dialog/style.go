package dialog

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color palette for the default dialog style.
var (
	frameBlue   = lipgloss.Color("#7AA2F7") // dialog border
	brightWhite = lipgloss.Color("#F9FAFB") // titles, button labels
	mutedGray   = lipgloss.Color("#6B7280") // hints, close affordance
	infoBlue    = lipgloss.Color("#7DCFFF")
	mintGreen   = lipgloss.Color("#A8E6CF") // success / accept states
	amberYellow = lipgloss.Color("#E0AF68")
	softRed     = lipgloss.Color("#F7768E")
)

// Style collects the lipgloss styles a standard dialog renders with. The
// queue applies an override Style only while a dialog is on screen; custom
// dialogs receive the effective style through the frame context and may
// use or ignore it.
type Style struct {
	// Frame wraps the whole dialog window.
	Frame lipgloss.Style
	// Title renders the title text in the header row.
	Title lipgloss.Style
	// Body renders the message text.
	Body lipgloss.Style
	// Button renders an unfocused button.
	Button lipgloss.Style
	// ButtonActive renders the keyboard-focused button.
	ButtonActive lipgloss.Style
	// Hint renders the close affordance and key hints.
	Hint lipgloss.Style

	// FrameColor is the border color before opacity fading is applied.
	FrameColor lipgloss.Color
}

// DefaultStyle returns the package default style. Each call returns a
// fresh value so a host can tweak it without affecting other queues.
func DefaultStyle() *Style {
	return &Style{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(frameBlue).
			Padding(0, 2),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(brightWhite),
		Body: lipgloss.NewStyle().
			Foreground(brightWhite),
		Button: lipgloss.NewStyle().
			Foreground(brightWhite).
			Padding(0, 1),
		ButtonActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1A1B26")).
			Background(frameBlue).
			Bold(true).
			Padding(0, 1),
		Hint: lipgloss.NewStyle().
			Foreground(mutedGray),
		FrameColor: frameBlue,
	}
}

// Fade blends c toward black by 1-opacity, approximating alpha compositing
// against a dark terminal background. Colors that fail to parse are
// returned unchanged.
func Fade(c lipgloss.Color, opacity float64) lipgloss.Color {
	if opacity >= 1 {
		return c
	}
	if opacity < 0 {
		opacity = 0
	}
	col, err := colorful.Hex(string(c))
	if err != nil {
		return c
	}
	faded := col.BlendRgb(colorful.Color{}, 1-opacity)
	return lipgloss.Color(faded.Hex())
}

// TerminalColor converts an image/color mask color to a lipgloss color at
// the given opacity, folding the color's own alpha into the blend.
func TerminalColor(c color.Color, opacity float64) lipgloss.Color {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	alpha := float64(nrgba.A) / 255 * opacity
	base := colorful.Color{
		R: float64(nrgba.R) / 255,
		G: float64(nrgba.G) / 255,
		B: float64(nrgba.B) / 255,
	}
	blended := colorful.Color{}.BlendRgb(base, alpha)
	return lipgloss.Color(blended.Hex())
}
