package slider

import "image"

// Emphasis selects the visual weight a part is painted with.
type Emphasis int

const (
	EmphasisNormal Emphasis = iota
	EmphasisHover
	EmphasisPressed
	EmphasisDisabled
)

type TrackStyle struct {
	Emphasis Emphasis
	// Filled marks the part of the track between the minimum end and the thumb.
	Filled bool
}

type ThumbStyle struct {
	Emphasis Emphasis
	Halo     int
	Hollow   bool
}

// Painter is the drawing surface. Rectangles are widget local, the painter decides how to
// rasterize them.
type Painter interface {
	Track(r image.Rectangle, style TrackStyle)
	Thumb(r image.Rectangle, style ThumbStyle)
	Marker(p image.Point)
	Outline(r image.Rectangle)
}

// Appearance is the animated part of the look, owned by the animation layer.
type Appearance struct {
	Halo   int
	Hollow bool
}

// Render paints the current state: track, filled track, step target marker, thumb. It reads state
// only.
func Render(s Slider, appearance Appearance, painter Painter) {
	layout := s.Layout()

	painter.Track(layout.Track, TrackStyle{Emphasis: s.trackEmphasis()})

	if filled := s.filledTrack(layout.Track); !filled.Empty() {
		painter.Track(filled, TrackStyle{Emphasis: s.trackEmphasis(), Filled: true})
	}

	if s.flags.Stepping && s.flags.HasStepTarget {
		painter.Marker(s.trackPoint(s.flags.StepTarget))
	}

	painter.Thumb(layout.Thumb, ThumbStyle{
		Emphasis: s.thumbEmphasis(),
		Halo:     appearance.Halo,
		Hollow:   appearance.Hollow,
	})

	if debugLayout {
		painter.Outline(image.Rectangle{Max: s.geometry.Size})
	}
}

func (s Slider) trackEmphasis() Emphasis {
	switch {
	case !s.enabled:
		return EmphasisDisabled
	case s.flags.Pressed || s.flags.HoverTrack:
		return EmphasisHover
	default:
		return EmphasisNormal
	}
}

func (s Slider) thumbEmphasis() Emphasis {
	switch {
	case !s.enabled:
		return EmphasisDisabled
	case s.flags.Pressed:
		return EmphasisPressed
	case s.flags.HoverThumb:
		return EmphasisHover
	default:
		return EmphasisNormal
	}
}

// trackPoint is the point on the track center line that represents value.
func (s Slider) trackPoint(value int) image.Point {
	track := s.geometry.TrackRect()
	along := s.geometry.Metrics.Margin + OffsetFromValue(s.rng, value, s.geometry.TrackExtent(), s.geometry.Inverted)

	if s.geometry.Orientation == Vertical {
		return image.Pt((track.Min.X+track.Max.X)/2, along)
	}

	return image.Pt(along, (track.Min.Y+track.Max.Y)/2)
}

// filledTrack is the slice of track between the minimum end and the thumb center.
func (s Slider) filledTrack(track image.Rectangle) image.Rectangle {
	center := s.trackPoint(s.rng.Position)
	filled := track

	switch {
	case s.geometry.Orientation == Vertical && s.geometry.Inverted:
		filled.Min.Y = center.Y
	case s.geometry.Orientation == Vertical:
		filled.Max.Y = center.Y
	case s.geometry.Inverted:
		filled.Min.X = center.X
	default:
		filled.Max.X = center.X
	}

	return filled.Canon().Intersect(track)
}
