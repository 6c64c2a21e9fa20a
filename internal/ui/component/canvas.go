package component

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/slidertui/internal/slider"
	"github.com/leighmacdonald/slidertui/internal/ui/styles"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	glyphTrackH       = '─'
	glyphTrackV       = '│'
	glyphFilledH      = '━'
	glyphFilledV      = '┃'
	glyphThumb        = '●'
	glyphThumbHollow  = '○'
	glyphMarker       = '◆'
	glyphEmpty        = ' '
	haloMaxBlend      = 0.65
	outlineHorizontal = '┄'
	outlineVertical   = '┆'
)

type cell struct {
	glyph rune
	fg    lipgloss.Color
	bg    lipgloss.Color
	bold  bool
}

// Canvas is a grid of terminal cells implementing slider.Painter. One slider unit is one cell.
type Canvas struct {
	size        image.Point
	orientation slider.Orientation
	haloMax     int
	cells       []cell
}

func NewCanvas(size image.Point, orientation slider.Orientation, haloMax int) *Canvas {
	size.X = max(0, size.X)
	size.Y = max(0, size.Y)

	cells := make([]cell, size.X*size.Y)
	for idx := range cells {
		cells[idx].glyph = glyphEmpty
	}

	return &Canvas{size: size, orientation: orientation, haloMax: max(1, haloMax), cells: cells}
}

func (c *Canvas) at(x int, y int) *cell {
	if x < 0 || y < 0 || x >= c.size.X || y >= c.size.Y {
		return nil
	}

	return &c.cells[y*c.size.X+x]
}

// Glyph returns the rune at x, y or zero outside the canvas.
func (c *Canvas) Glyph(x int, y int) rune {
	if cell := c.at(x, y); cell != nil {
		return cell.glyph
	}

	return 0
}

func (c *Canvas) Background(x int, y int) lipgloss.Color {
	if cell := c.at(x, y); cell != nil {
		return cell.bg
	}

	return ""
}

func (c *Canvas) Track(r image.Rectangle, style slider.TrackStyle) {
	glyph, colour := glyphTrackH, styles.TrackColours[style.Emphasis]
	if c.orientation == slider.Vertical {
		glyph = glyphTrackV
	}

	if style.Filled {
		colour = styles.FilledColours[style.Emphasis]
		glyph = glyphFilledH
		if c.orientation == slider.Vertical {
			glyph = glyphFilledV
		}
	}

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if cell := c.at(x, y); cell != nil {
				cell.glyph = glyph
				cell.fg = colour
			}
		}
	}
}

func (c *Canvas) Thumb(r image.Rectangle, style slider.ThumbStyle) {
	center := image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)

	if style.Halo > 0 && style.Emphasis != slider.EmphasisDisabled {
		background := c.haloColour(style.Halo)
		spread := image.Pt(1, 0)
		if c.orientation == slider.Vertical {
			spread = image.Pt(0, 1)
		}

		for _, p := range []image.Point{center.Sub(spread), center, center.Add(spread)} {
			if cell := c.at(p.X, p.Y); cell != nil {
				cell.bg = background
			}
		}
	}

	cell := c.at(center.X, center.Y)
	if cell == nil {
		return
	}

	cell.glyph = glyphThumb
	if style.Hollow {
		cell.glyph = glyphThumbHollow
	}

	cell.fg = styles.ThumbColours[style.Emphasis]
	cell.bold = style.Emphasis == slider.EmphasisPressed
}

// haloColour blends the halo colour into the background, stronger for a larger halo.
func (c *Canvas) haloColour(halo int) lipgloss.Color {
	base, errBase := colorful.Hex(string(styles.Black))
	accent, errAccent := colorful.Hex(string(styles.HaloColour))
	if errBase != nil || errAccent != nil {
		return styles.HaloColour
	}

	amount := min(1, float64(halo)/float64(c.haloMax)) * haloMaxBlend

	return lipgloss.Color(base.BlendLab(accent, amount).Clamped().Hex())
}

func (c *Canvas) Marker(p image.Point) {
	if cell := c.at(p.X, p.Y); cell != nil {
		cell.glyph = glyphMarker
		cell.fg = styles.MarkerColour
	}
}

func (c *Canvas) Outline(r image.Rectangle) {
	r = r.Intersect(image.Rectangle{Max: c.size})
	if r.Empty() {
		return
	}

	for x := r.Min.X; x < r.Max.X; x++ {
		c.outline(x, r.Min.Y, outlineHorizontal)
		c.outline(x, r.Max.Y-1, outlineHorizontal)
	}

	for y := r.Min.Y; y < r.Max.Y; y++ {
		c.outline(r.Min.X, y, outlineVertical)
		c.outline(r.Max.X-1, y, outlineVertical)
	}
}

func (c *Canvas) outline(x int, y int, glyph rune) {
	if cell := c.at(x, y); cell != nil && cell.glyph == glyphEmpty {
		cell.glyph = glyph
		cell.fg = styles.OutlineColour
	}
}

// String renders the grid, merging runs of identically styled cells.
func (c *Canvas) String() string {
	rows := make([]string, 0, c.size.Y)

	for y := range c.size.Y {
		var (
			row strings.Builder
			run []rune
			cur cell
		)

		flush := func() {
			if len(run) == 0 {
				return
			}

			style := lipgloss.NewStyle().Bold(cur.bold)
			if cur.fg != "" {
				style = style.Foreground(cur.fg)
			}

			if cur.bg != "" {
				style = style.Background(cur.bg)
			}

			row.WriteString(style.Render(string(run)))
			run = run[:0]
		}

		for x := range c.size.X {
			next := c.cells[y*c.size.X+x]
			if len(run) > 0 && (next.fg != cur.fg || next.bg != cur.bg || next.bold != cur.bold) {
				flush()
			}

			cur = next
			run = append(run, next.glyph)
		}

		flush()
		rows = append(rows, row.String())
	}

	return strings.Join(rows, "\n")
}
