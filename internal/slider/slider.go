package slider

import (
	"image"
	"time"
)

const (
	DefaultSingleStep     = 1
	DefaultPageStep       = 10
	DefaultTrackWidth     = 2
	DefaultRepeatDelay    = 500 * time.Millisecond
	DefaultRepeatInterval = 50 * time.Millisecond
)

// Options configure a new Slider. The zero value is not useful, start from DefaultOptions.
type Options struct {
	Minimum        int
	Maximum        int
	Value          int
	SingleStep     int
	PageStep       int
	PageStepMode   bool
	Tracking       bool
	Inverted       bool
	Orientation    Orientation
	TrackWidth     int
	Size           image.Point
	Metrics        Metrics
	RepeatDelay    time.Duration
	RepeatInterval time.Duration
}

func DefaultOptions() Options {
	return Options{
		Minimum:        0,
		Maximum:        99,
		SingleStep:     DefaultSingleStep,
		PageStep:       DefaultPageStep,
		PageStepMode:   true,
		TrackWidth:     DefaultTrackWidth,
		Metrics:        PixelMetrics,
		Size:           image.Pt(200, 60),
		RepeatDelay:    DefaultRepeatDelay,
		RepeatInterval: DefaultRepeatInterval,
	}
}

// Flags are the interaction flags. They only change in response to pointer events.
type Flags struct {
	HoverTrack bool
	HoverThumb bool
	// Pressed means the slider is down, the thumb follows the pointer.
	Pressed bool
	// Stepping means a page step press is held and the repeat timer is armed.
	Stepping bool
	// StepTarget is the value under the pointer when stepping started, valid if HasStepTarget.
	StepTarget    int
	HasStepTarget bool
}

// Hovered is the combined hover signal.
func (f Flags) Hovered() bool {
	return f.HoverTrack || f.HoverThumb
}

// Slider is the control state. It is a value, every mutation returns the next Slider together with
// the effects the host has to carry out.
type Slider struct {
	rng            Range
	geometry       Geometry
	flags          Flags
	hovered        bool
	enabled        bool
	pageStepMode   bool
	tracking       bool
	singleStep     int
	pageStep       int
	repeatAction   Action
	repeatTag      uint64
	repeatDelay    time.Duration
	repeatInterval time.Duration
}

func New(opts Options) Slider {
	if opts.SingleStep <= 0 {
		opts.SingleStep = DefaultSingleStep
	}

	if opts.PageStep <= 0 {
		opts.PageStep = DefaultPageStep
	}

	if opts.RepeatDelay <= 0 {
		opts.RepeatDelay = DefaultRepeatDelay
	}

	if opts.RepeatInterval <= 0 {
		opts.RepeatInterval = DefaultRepeatInterval
	}

	return Slider{
		rng: NewRange(opts.Minimum, opts.Maximum, opts.Value),
		geometry: Geometry{
			Size:        opts.Size,
			Orientation: opts.Orientation,
			Inverted:    opts.Inverted,
			TrackWidth:  max(0, opts.TrackWidth),
			Metrics:     opts.Metrics,
		},
		enabled:        true,
		pageStepMode:   opts.PageStepMode,
		tracking:       opts.Tracking,
		singleStep:     opts.SingleStep,
		pageStep:       opts.PageStep,
		repeatDelay:    opts.RepeatDelay,
		repeatInterval: opts.RepeatInterval,
	}
}

func (s Slider) Range() Range             { return s.rng }
func (s Slider) Value() int               { return s.rng.Value }
func (s Slider) Position() int            { return s.rng.Position }
func (s Slider) Minimum() int             { return s.rng.Minimum }
func (s Slider) Maximum() int             { return s.rng.Maximum }
func (s Slider) Flags() Flags             { return s.flags }
func (s Slider) Geometry() Geometry       { return s.geometry }
func (s Slider) Enabled() bool            { return s.enabled }
func (s Slider) Hovered() bool            { return s.hovered }
func (s Slider) PageStepMode() bool       { return s.pageStepMode }
func (s Slider) Tracking() bool           { return s.tracking }
func (s Slider) SingleStep() int          { return s.singleStep }
func (s Slider) PageStep() int            { return s.pageStep }
func (s Slider) RepeatAction() Action     { return s.repeatAction }
func (s Slider) RepeatTag() uint64        { return s.repeatTag }
func (s Slider) Orientation() Orientation { return s.geometry.Orientation }
func (s Slider) Inverted() bool           { return s.geometry.Inverted }
func (s Slider) TrackWidth() int          { return s.geometry.TrackWidth }
func (s Slider) Layout() TrackGeometry    { return s.geometry.Layout(s.rng) }

// ThumbOffset is the leading edge offset of the thumb along the track.
func (s Slider) ThumbOffset() int {
	return s.geometry.ThumbOffset(s.rng)
}

// SetValue moves both value and position, clamped into the range.
func (s Slider) SetValue(value int) (Slider, []Effect) {
	var out effects
	s.setValue(value, &out)

	return s, out
}

// SetRange replaces the bounds. A maximum below the minimum is raised to the minimum. The current
// value is re-clamped, which may fire boundary transitions.
func (s Slider) SetRange(minimum int, maximum int) (Slider, []Effect) {
	var out effects

	maximum = max(minimum, maximum)
	if minimum == s.rng.Minimum && maximum == s.rng.Maximum {
		return s, nil
	}

	s.rng.Minimum = minimum
	s.rng.Maximum = maximum
	s.rng.Position = s.rng.Clamp(s.rng.Position)
	s.setValue(s.rng.Clamp(s.rng.Value), &out)

	if s.flags.HasStepTarget {
		s.flags.StepTarget = s.rng.Clamp(s.flags.StepTarget)
	}

	out.redraw()

	return s, out
}

func (s Slider) SetSteps(singleStep int, pageStep int) Slider {
	if singleStep > 0 {
		s.singleStep = singleStep
	}

	if pageStep > 0 {
		s.pageStep = pageStep
	}

	return s
}

func (s Slider) SetPageStepMode(pageStepMode bool) Slider {
	s.pageStepMode = pageStepMode

	return s
}

func (s Slider) SetTracking(tracking bool) Slider {
	s.tracking = tracking

	return s
}

func (s Slider) SetTrackWidth(width int) (Slider, []Effect) {
	width = max(0, width)
	if width == s.geometry.TrackWidth {
		return s, nil
	}

	s.geometry.TrackWidth = width

	return s, []Effect{Redraw{}}
}

func (s Slider) SetInverted(inverted bool) (Slider, []Effect) {
	if inverted == s.geometry.Inverted {
		return s, nil
	}

	s.geometry.Inverted = inverted

	return s, []Effect{Redraw{}}
}

// SetSize updates the widget box. Hover flags are stale until the next move.
func (s Slider) SetSize(size image.Point) (Slider, []Effect) {
	if size == s.geometry.Size {
		return s, nil
	}

	s.geometry.Size = size

	return s, []Effect{Redraw{}}
}

// SetOrientation swaps the primary axis. Hover regions move with it so hover is reset.
func (s Slider) SetOrientation(orientation Orientation) (Slider, []Effect) {
	if orientation == s.geometry.Orientation {
		return s, nil
	}

	var out effects

	s.geometry.Orientation = orientation
	s.clearHover(&out)
	out.add(OrientationChanged{Orientation: orientation})
	out.redraw()

	return s, out
}

// SetEnabled flips the enabled flag. Disabling behaves like losing pointer capture: a drag is
// committed and stepping stops.
func (s Slider) SetEnabled(enabled bool) (Slider, []Effect) {
	transition, changed := EnabledTransition(s.enabled, enabled)
	if !changed {
		return s, nil
	}

	var out effects

	if !enabled {
		s.releaseCapture(&out)
		s.clearHover(&out)
	}

	s.enabled = enabled
	out.add(TransitionFired{Transition: transition})
	out.redraw()

	return s, out
}

// TriggerAction applies action to the position and commits it to the value.
func (s Slider) TriggerAction(action Action) (Slider, []Effect) {
	var out effects
	s.trigger(action, &out)

	return s, out
}

// movePosition sets the position without committing it.
func (s *Slider) movePosition(position int, out *effects) {
	position = s.rng.Clamp(position)
	if position == s.rng.Position {
		return
	}

	s.rng.Position = position
	out.add(PositionChanged{Position: position})
	out.redraw()
}

// setSliderPosition moves the position, committing it unless a drag is in progress without tracking.
func (s *Slider) setSliderPosition(position int, out *effects) {
	s.movePosition(position, out)

	if s.tracking || !s.flags.Pressed {
		s.setValue(s.rng.Position, out)
	}
}

func (s *Slider) setValue(value int, out *effects) {
	value = s.rng.Clamp(value)

	if value != s.rng.Position {
		s.rng.Position = value
		out.add(PositionChanged{Position: value})
		out.redraw()
	}

	if value == s.rng.Value {
		return
	}

	old := s.rng.Value
	s.rng.Value = value
	out.add(ValueChanged{Old: old, New: value})
	out.redraw()

	for _, transition := range ValueTransitions(old, value, s.rng.Minimum, s.rng.Maximum) {
		out.add(TransitionFired{Transition: transition})

		switch transition {
		case ReachedMinimum:
			out.add(ActionTriggered{Action: ActionToMinimum})
		case ReachedMaximum:
			out.add(ActionTriggered{Action: ActionToMaximum})
		case LeftMinimum, Enabled, Disabled:
		}
	}
}

func (s *Slider) trigger(action Action, out *effects) {
	if action == ActionNone {
		return
	}

	s.movePosition(action.target(s.rng, s.rng.Position, s.singleStep, s.pageStep), out)
	out.add(ActionTriggered{Action: action})
	s.setValue(s.rng.Position, out)
}
