package slider

import (
	"image"
	"math"
)

// Metrics are the fixed sizes the geometry is derived from. They are in whatever unit the host
// reports pointer coordinates in, pixels for a graphical surface, cells for a terminal.
type Metrics struct {
	// Margin insets the track at both ends so the thumb is never clipped. The thumb box is a
	// square of twice the margin centered on the thumb position.
	Margin int
	// ThumbHit is the side of the square used to hit test the thumb. It never follows the
	// rendered halo size.
	ThumbHit int
	// HoverSlop inflates the track box for hover tests.
	HoverSlop int
	// MinimumSize is the smallest sensible widget extent along either axis.
	MinimumSize int
}

var (
	PixelMetrics = Metrics{Margin: 30, ThumbHit: 16, HoverSlop: 2, MinimumSize: 20}
	CellMetrics  = Metrics{Margin: 1, ThumbHit: 3, HoverSlop: 0, MinimumSize: 3}
)

// Geometry describes the widget box the slider lives in. Everything derived from it is computed on
// demand, nothing is cached between events.
type Geometry struct {
	Size        image.Point
	Orientation Orientation
	Inverted    bool
	TrackWidth  int
	Metrics     Metrics
}

// TrackGeometry is the derived layout used for painting and hit testing.
type TrackGeometry struct {
	Track  image.Rectangle
	Thumb  image.Rectangle
	Offset int
}

func (g Geometry) primary(p image.Point) int {
	if g.Orientation == Vertical {
		return p.Y
	}

	return p.X
}

// TrackExtent is the primary axis extent minus the margin at each end. It can be zero or
// negative for undersized widgets.
func (g Geometry) TrackExtent() int {
	return g.primary(g.Size) - 2*g.Metrics.Margin
}

func (g Geometry) MinimumSize() image.Point {
	return image.Pt(g.Metrics.MinimumSize, g.Metrics.MinimumSize)
}

// ValueFromPosition maps a widget local point onto the range. Points beyond the track are clamped.
func (g Geometry) ValueFromPosition(r Range, p image.Point) int {
	return ValueFromOffset(r, g.primary(p)-g.Metrics.Margin, g.TrackExtent(), g.Inverted)
}

// ThumbOffset is the thumb leading edge offset for the current slider position.
func (g Geometry) ThumbOffset(r Range) int {
	return OffsetFromValue(r, r.Position, g.TrackExtent(), g.Inverted)
}

// TrackRect is the visible track, TrackWidth thick, centered on the cross axis.
func (g Geometry) TrackRect() image.Rectangle {
	margin := g.Metrics.Margin
	half := g.TrackWidth / 2

	if g.Orientation == Vertical {
		x := g.Size.X/2 - half

		return image.Rect(x, margin, x+g.TrackWidth, g.Size.Y-margin)
	}

	y := g.Size.Y/2 - half

	return image.Rect(margin, y, g.Size.X-margin, y+g.TrackWidth)
}

// ThumbRect is the thumb box: a square of twice the margin whose center sits on the track at the
// thumb offset.
func (g Geometry) ThumbRect(r Range) image.Rectangle {
	margin := g.Metrics.Margin
	offset := g.ThumbOffset(r)

	if g.Orientation == Vertical {
		return image.Rect(g.Size.X/2-margin, offset, g.Size.X/2+margin, offset+2*margin)
	}

	return image.Rect(offset, g.Size.Y/2-margin, offset+2*margin, g.Size.Y/2+margin)
}

// ThumbCenter is the point on the track the thumb represents.
func (g Geometry) ThumbCenter(r Range) image.Point {
	thumb := g.ThumbRect(r)

	return image.Pt((thumb.Min.X+thumb.Max.X)/2, (thumb.Min.Y+thumb.Max.Y)/2)
}

// ThumbHitRect is the fixed size square centered on the thumb used for press and hover tests.
func (g Geometry) ThumbHitRect(r Range) image.Rectangle {
	center := g.ThumbCenter(r)
	size := g.Metrics.ThumbHit
	minPt := center.Sub(image.Pt(size/2, size/2))

	return image.Rectangle{Min: minPt, Max: minPt.Add(image.Pt(size, size))}
}

// TrackHitRect is the track box inflated by the hover slop.
func (g Geometry) TrackHitRect() image.Rectangle {
	return g.TrackRect().Inset(-g.Metrics.HoverSlop)
}

func (g Geometry) Layout(r Range) TrackGeometry {
	return TrackGeometry{
		Track:  g.TrackRect(),
		Thumb:  g.ThumbRect(r),
		Offset: g.ThumbOffset(r),
	}
}

// wide ranges switch to float math, the integer form would overflow int64.
const maxExactSpan = math.MaxInt32

// ValueFromOffset maps an offset along a track of span units onto the range, rounding half up.
// Offsets outside [0, span] clamp to the ends. A degenerate range or a non-positive span always
// yields the minimum.
func ValueFromOffset(r Range, offset int, span int, inverted bool) int {
	if r.Degenerate() || span <= 0 {
		return r.Minimum
	}

	if offset <= 0 {
		if inverted {
			return r.Maximum
		}

		return r.Minimum
	}

	if offset >= span {
		if inverted {
			return r.Minimum
		}

		return r.Maximum
	}

	var steps int64
	if r.Span() > maxExactSpan || int64(span) > maxExactSpan {
		steps = int64(math.Round(float64(offset) * float64(r.Span()) / float64(span)))
	} else {
		steps = (2*int64(offset)*r.Span() + int64(span)) / (2 * int64(span))
	}

	if inverted {
		return int(int64(r.Maximum) - steps)
	}

	return int(int64(r.Minimum) + steps)
}

// OffsetFromValue is the inverse of ValueFromOffset. Values outside the range are clamped first.
func OffsetFromValue(r Range, value int, span int, inverted bool) int {
	if r.Degenerate() || span <= 0 {
		return 0
	}

	value = r.Clamp(value)

	distance := int64(value) - int64(r.Minimum)
	if inverted {
		distance = int64(r.Maximum) - int64(value)
	}

	if r.Span() > maxExactSpan || int64(span) > maxExactSpan {
		return int(math.Round(float64(distance) * float64(span) / float64(r.Span())))
	}

	return int((2*distance*int64(span) + r.Span()) / (2 * r.Span()))
}
