package termui

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/entrhq/parley/pkg/dialog"
)

// scrimGlyph fills masked cells. A shade block reads as translucency on
// terminals that cannot blend real alpha.
const scrimGlyph = "░"

func scrimStyle(c color.Color, opacity float64) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(dialog.TerminalColor(c, opacity))
}

// canvas edits a rendered frame line by line. Splices preserve the ANSI
// styling of the untouched parts of each line; a style that was open
// across a cut point does not continue past it.
type canvas struct {
	lines []string
	width int
}

func newCanvas(base string, width, height int) *canvas {
	lines := strings.Split(base, "\n")
	if height > 0 {
		for len(lines) < height {
			lines = append(lines, "")
		}
		if len(lines) > height {
			lines = lines[:height]
		}
	}
	return &canvas{lines: lines, width: width}
}

func (c *canvas) String() string {
	return strings.Join(c.lines, "\n")
}

// splice overwrites the cells [col, col+width(seg)) of row with seg.
func (c *canvas) splice(row, col int, seg string) {
	if row < 0 || row >= len(c.lines) || seg == "" {
		return
	}
	if col < 0 {
		col = 0
	}

	line := c.lines[row]
	prefix := ansi.Truncate(line, col, "")
	if pad := col - ansi.StringWidth(prefix); pad > 0 {
		prefix += strings.Repeat(" ", pad)
	}
	suffix := ansi.TruncateLeft(line, col+ansi.StringWidth(seg), "")
	c.lines[row] = prefix + seg + suffix
}

// fillScrim covers r with the scrim glyph. Corner rows are shortened by
// the radius so the mask reads as a rounded region.
func (c *canvas) fillScrim(r dialog.Rect, radius int, style lipgloss.Style) {
	if r.Empty() {
		return
	}
	for y := r.Y; y < r.Y+r.H; y++ {
		inset := 0
		if radius > 0 && (y-r.Y < radius || r.Y+r.H-1-y < radius) {
			inset = radius
		}
		run := r.W - 2*inset
		if run <= 0 {
			continue
		}
		c.splice(y, r.X+inset, style.Render(strings.Repeat(scrimGlyph, run)))
	}
}

// overlayCentered splices view into the canvas, centered within r.
func (c *canvas) overlayCentered(r dialog.Rect, view string) {
	lines := strings.Split(view, "\n")

	w := 0
	for _, l := range lines {
		if lw := ansi.StringWidth(l); lw > w {
			w = lw
		}
	}

	startRow := r.Y + (r.H-len(lines))/2
	if startRow < 0 {
		startRow = 0
	}
	startCol := r.X + (r.W-w)/2
	if startCol < 0 {
		startCol = 0
	}

	for i, l := range lines {
		c.splice(startRow+i, startCol, l)
	}
}
