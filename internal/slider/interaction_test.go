package slider_test

import (
	"image"
	"testing"
	"time"

	"github.com/leighmacdonald/slidertui/internal/slider"
	"github.com/stretchr/testify/require"
)

// newSlider is a 260x60 horizontal slider over 0..100 at 50. The track runs from x=30 to x=230 and
// the thumb hit square spans 122..138 on both axes around (130, 30).
func newSlider(t *testing.T, mutate ...func(*slider.Options)) slider.Slider {
	t.Helper()

	opts := slider.DefaultOptions()
	opts.Maximum = 100
	opts.Value = 50
	opts.Size = image.Pt(260, 60)

	for _, fn := range mutate {
		fn(&opts)
	}

	return slider.New(opts)
}

func collect[T slider.Effect](list []slider.Effect) []T {
	var out []T

	for _, effect := range list {
		if v, ok := effect.(T); ok {
			out = append(out, v)
		}
	}

	return out
}

func TestNewDefaults(t *testing.T) {
	s := slider.New(slider.DefaultOptions())

	require.Equal(t, 0, s.Minimum())
	require.Equal(t, 99, s.Maximum())
	require.Equal(t, 0, s.Value())
	require.True(t, s.PageStepMode())
	require.False(t, s.Tracking())
	require.True(t, s.Enabled())
	require.Equal(t, slider.DefaultTrackWidth, s.TrackWidth())
	require.Equal(t, slider.StateIdle, s.State())
	require.Equal(t, slider.ActionNone, s.RepeatAction())
}

func TestPageStepDirection(t *testing.T) {
	tests := []struct {
		name   string
		press  image.Point
		target int
		action slider.Action
		value  int
	}{
		{name: "toward maximum", press: image.Pt(190, 30), target: 80, action: slider.ActionPageStepAdd, value: 60},
		{name: "toward minimum", press: image.Pt(70, 30), target: 20, action: slider.ActionPageStepSub, value: 40},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, effects := newSlider(t).Update(slider.Press(tc.press))

			require.Equal(t, []slider.Effect{
				slider.PositionChanged{Position: tc.value},
				slider.Redraw{},
				slider.ActionTriggered{Action: tc.action},
				slider.ValueChanged{Old: 50, New: tc.value},
				slider.ScheduleRepeat{Action: tc.action, Tag: 1, After: 500 * time.Millisecond},
			}, effects)
			require.Equal(t, slider.StateStepping, s.State())
			require.Equal(t, tc.value, s.Value())
			require.Equal(t, tc.action, s.RepeatAction())

			flags := s.Flags()
			require.True(t, flags.HasStepTarget)
			require.Equal(t, tc.target, flags.StepTarget)
			require.False(t, flags.Pressed)
		})
	}
}

func TestRepeatUntilRelease(t *testing.T) {
	s, _ := newSlider(t).Update(slider.Press(image.Pt(190, 30)))
	tag := s.RepeatTag()

	s, effects := s.Update(slider.Repeat(tag))
	require.Equal(t, 70, s.Value())
	require.Contains(t, effects, slider.ScheduleRepeat{Action: slider.ActionPageStepAdd, Tag: tag, After: 50 * time.Millisecond})
	require.Len(t, collect[slider.Redraw](effects), 1)

	s, _ = s.Update(slider.Repeat(tag))
	s, _ = s.Update(slider.Repeat(tag))
	require.Equal(t, 90, s.Value(), "stepping continues past the press point while held")

	s, effects = s.Update(slider.Release(image.Pt(190, 30)))
	require.Contains(t, effects, slider.CancelRepeat{Tag: tag})
	require.Equal(t, slider.StateIdle, s.State())
	require.False(t, s.Flags().HasStepTarget)

	s, effects = s.Update(slider.Repeat(tag))
	require.Empty(t, effects)
	require.Equal(t, 90, s.Value())
}

func TestRepeatReachesMaximum(t *testing.T) {
	s := newSlider(t, func(opts *slider.Options) { opts.Value = 85 })

	s, _ = s.Update(slider.Press(image.Pt(229, 30)))
	require.Equal(t, 95, s.Value())

	s, effects := s.Update(slider.Repeat(s.RepeatTag()))
	require.Equal(t, 100, s.Value())
	require.Equal(t, []slider.Transition{slider.ReachedMaximum}, slider.Transitions(effects))
	require.Contains(t, effects, slider.ActionTriggered{Action: slider.ActionToMaximum})

	s, effects = s.Update(slider.Repeat(s.RepeatTag()))
	require.Equal(t, 100, s.Value())
	require.Empty(t, slider.Transitions(effects))
}

func TestStaleRepeatTag(t *testing.T) {
	s, _ := newSlider(t).Update(slider.Press(image.Pt(190, 30)))
	first := s.RepeatTag()

	s, _ = s.Update(slider.Release(image.Pt(190, 30)))
	s, _ = s.Update(slider.Press(image.Pt(190, 30)))
	second := s.RepeatTag()
	require.NotEqual(t, first, second)
	require.Equal(t, 70, s.Value())

	for _, stale := range []uint64{first, first + 1, second + 1} {
		var effects []slider.Effect
		s, effects = s.Update(slider.Repeat(stale))
		require.Empty(t, effects, "tag %d", stale)
	}

	require.Equal(t, 70, s.Value())

	s, _ = s.Update(slider.Repeat(second))
	require.Equal(t, 80, s.Value())
}

func TestHoverDebounce(t *testing.T) {
	s := newSlider(t)

	var all []slider.Effect

	for _, pos := range []image.Point{image.Pt(128, 30), image.Pt(129, 31), image.Pt(131, 29), image.Pt(130, 30)} {
		var effects []slider.Effect
		s, effects = s.Update(slider.Move(pos))
		all = append(all, effects...)
	}

	require.Len(t, collect[slider.Redraw](all), 1)
	require.Equal(t, []slider.Hovered{{Hovered: true}}, collect[slider.Hovered](all))
	require.Equal(t, slider.StateHovering, s.State())
	require.True(t, s.Flags().HoverThumb)
	require.True(t, s.Flags().HoverTrack)

	s, effects := s.Update(slider.Move(image.Pt(128, 45)))
	require.Equal(t, []slider.Effect{slider.Redraw{}, slider.Hovered{Hovered: false}}, effects)
	require.Equal(t, slider.StateIdle, s.State())
}

func TestHoverTrackOnly(t *testing.T) {
	s, effects := newSlider(t).Update(slider.Move(image.Pt(60, 32)))

	require.Contains(t, effects, slider.Hovered{Hovered: true})
	require.True(t, s.Flags().HoverTrack)
	require.False(t, s.Flags().HoverThumb)

	// Moving along the track onto the thumb flips only the thumb flag.
	s, effects = s.Update(slider.Move(image.Pt(130, 32)))
	require.Equal(t, []slider.Effect{slider.Redraw{}}, effects)
	require.True(t, s.Flags().HoverThumb)
}

func TestLeave(t *testing.T) {
	s, _ := newSlider(t).Update(slider.Move(image.Pt(130, 30)))

	s, effects := s.Update(slider.Leave())
	require.Equal(t, []slider.Effect{slider.Redraw{}, slider.Hovered{Hovered: false}}, effects)
	require.False(t, s.Flags().Hovered())

	_, effects = s.Update(slider.Leave())
	require.Empty(t, effects)
}

func TestSpuriousEvents(t *testing.T) {
	s := newSlider(t)

	for _, event := range []slider.Event{
		slider.Release(image.Pt(130, 30)),
		slider.CaptureLost(),
		slider.Leave(),
		slider.Repeat(0),
		slider.Repeat(1),
	} {
		next, effects := s.Update(event)
		require.Empty(t, effects, event.Kind.String())
		require.Equal(t, s, next, event.Kind.String())
	}
}

func TestDragCommitsOnRelease(t *testing.T) {
	s, effects := newSlider(t).Update(slider.Press(image.Pt(130, 30)))
	require.Equal(t, []slider.Effect{slider.Pressed{}, slider.Redraw{}}, effects)
	require.Equal(t, slider.StateDragging, s.State())

	s, effects = s.Update(slider.Move(image.Pt(230, 30)))
	require.Equal(t, []slider.Effect{slider.PositionChanged{Position: 100}, slider.Redraw{}}, effects)
	require.Equal(t, 100, s.Position())
	require.Equal(t, 50, s.Value())

	s, effects = s.Update(slider.Move(image.Pt(500, 30)))
	require.Empty(t, effects)

	s, effects = s.Update(slider.Release(image.Pt(500, 30)))
	require.Equal(t, []slider.Effect{
		slider.Released{},
		slider.ValueChanged{Old: 50, New: 100},
		slider.Redraw{},
		slider.TransitionFired{Transition: slider.ReachedMaximum},
		slider.ActionTriggered{Action: slider.ActionToMaximum},
	}, effects)
	require.Equal(t, 100, s.Value())
	require.Equal(t, slider.StateIdle, s.State())
}

func TestDragTracking(t *testing.T) {
	s := newSlider(t, func(opts *slider.Options) { opts.Tracking = true })

	s, _ = s.Update(slider.Press(image.Pt(130, 30)))
	s, effects := s.Update(slider.Move(image.Pt(80, 30)))

	require.Contains(t, effects, slider.ValueChanged{Old: 50, New: 25})
	require.Equal(t, 25, s.Value())
	require.Len(t, collect[slider.Redraw](effects), 1)

	s, effects = s.Update(slider.Release(image.Pt(80, 30)))
	require.Equal(t, []slider.Effect{slider.Released{}, slider.Redraw{}}, effects)
	require.Equal(t, 25, s.Value())
}

func TestDragSurvivesLeave(t *testing.T) {
	s, _ := newSlider(t).Update(slider.Press(image.Pt(130, 30)))

	s, _ = s.Update(slider.Leave())
	require.Equal(t, slider.StateDragging, s.State())

	s, _ = s.Update(slider.Move(image.Pt(-50, 30)))
	require.Equal(t, 0, s.Position())

	s, effects := s.Update(slider.Release(image.Pt(-50, 30)))
	require.Equal(t, 0, s.Value())
	require.Equal(t, []slider.Transition{slider.ReachedMinimum}, slider.Transitions(effects))
}

func TestDirectPositioning(t *testing.T) {
	s := newSlider(t, func(opts *slider.Options) { opts.PageStepMode = false })

	s, effects := s.Update(slider.Press(image.Pt(80, 30)))
	require.Equal(t, []slider.Effect{
		slider.PositionChanged{Position: 25},
		slider.Redraw{},
		slider.CollapseHalo{},
		slider.Pressed{},
	}, effects)
	require.Equal(t, 25, s.Position())
	require.Equal(t, 50, s.Value())
	require.Equal(t, slider.StateDragging, s.State())
	require.Equal(t, uint64(0), s.RepeatTag())

	s, _ = s.Update(slider.Release(image.Pt(80, 30)))
	require.Equal(t, 25, s.Value())
}

func TestThumbHitIgnoresHalo(t *testing.T) {
	for _, halo := range []int{0, 8, 40} {
		s := newSlider(t)
		slider.Render(s, slider.Appearance{Halo: halo}, &recorder{})

		require.True(t, s.HitThumb(image.Pt(137, 30)))
		require.False(t, s.HitThumb(image.Pt(138, 30)))

		outside, _ := s.Update(slider.Press(image.Pt(139, 30)))
		require.Equal(t, slider.StateStepping, outside.State(), "halo %d", halo)

		inside, _ := s.Update(slider.Press(image.Pt(137, 37)))
		require.Equal(t, slider.StateDragging, inside.State(), "halo %d", halo)
	}
}

func TestDisabledIgnoresInput(t *testing.T) {
	s, effects := newSlider(t).SetEnabled(false)
	require.Equal(t, []slider.Transition{slider.Disabled}, slider.Transitions(effects))

	for _, event := range []slider.Event{
		slider.Move(image.Pt(130, 30)),
		slider.Press(image.Pt(130, 30)),
		slider.Press(image.Pt(190, 30)),
		slider.Release(image.Pt(130, 30)),
	} {
		var got []slider.Effect
		s, got = s.Update(event)
		require.Empty(t, got, event.Kind.String())
	}

	require.Equal(t, slider.StateIdle, s.State())
	require.Equal(t, 50, s.Value())

	_, effects = s.SetEnabled(false)
	require.Empty(t, effects)

	s, effects = s.SetEnabled(true)
	require.Equal(t, []slider.Transition{slider.Enabled}, slider.Transitions(effects))
	require.True(t, s.Enabled())
}

func TestDisableDuringDrag(t *testing.T) {
	s, _ := newSlider(t).Update(slider.Press(image.Pt(130, 30)))
	s, _ = s.Update(slider.Move(image.Pt(230, 30)))

	s, effects := s.SetEnabled(false)
	require.Contains(t, effects, slider.Released{})
	require.Contains(t, effects, slider.ValueChanged{Old: 50, New: 100})
	require.Equal(t, []slider.Transition{slider.ReachedMaximum, slider.Disabled}, slider.Transitions(effects))
	require.Len(t, collect[slider.Redraw](effects), 1)
	require.Equal(t, slider.StateIdle, s.State())
	require.Equal(t, 100, s.Value())
}

func TestCaptureLost(t *testing.T) {
	t.Run("stepping", func(t *testing.T) {
		s, _ := newSlider(t).Update(slider.Press(image.Pt(190, 30)))
		tag := s.RepeatTag()

		s, effects := s.Update(slider.CaptureLost())
		require.Contains(t, effects, slider.CancelRepeat{Tag: tag})
		require.Equal(t, slider.StateIdle, s.State())

		_, effects = s.Update(slider.Repeat(tag))
		require.Empty(t, effects)
	})

	t.Run("dragging", func(t *testing.T) {
		s, _ := newSlider(t).Update(slider.Press(image.Pt(130, 30)))
		s, _ = s.Update(slider.Move(image.Pt(80, 30)))

		s, effects := s.Update(slider.CaptureLost())
		require.Contains(t, effects, slider.Released{})
		require.Equal(t, 25, s.Value())
		require.Equal(t, slider.StateIdle, s.State())
	})
}

func TestLeaveStopsStepping(t *testing.T) {
	s, _ := newSlider(t).Update(slider.Press(image.Pt(70, 30)))
	tag := s.RepeatTag()

	s, effects := s.Update(slider.Leave())
	require.Contains(t, effects, slider.CancelRepeat{Tag: tag})
	require.Equal(t, slider.StateIdle, s.State())
	require.Equal(t, 40, s.Value())
}

func TestPressWhileSteppingIgnored(t *testing.T) {
	s, _ := newSlider(t).Update(slider.Press(image.Pt(190, 30)))

	next, effects := s.Update(slider.Press(image.Pt(70, 30)))
	require.Empty(t, effects)
	require.Equal(t, s, next)
}

func TestSetOrientation(t *testing.T) {
	s, _ := newSlider(t).Update(slider.Move(image.Pt(130, 30)))

	s, effects := s.SetOrientation(slider.Vertical)
	require.Equal(t, []slider.Effect{
		slider.Redraw{},
		slider.Hovered{Hovered: false},
		slider.OrientationChanged{Orientation: slider.Vertical},
	}, effects)
	require.False(t, s.Hovered())
	require.Equal(t, slider.Vertical, s.Orientation())

	_, effects = s.SetOrientation(slider.Vertical)
	require.Empty(t, effects)
}

func TestSetValue(t *testing.T) {
	tests := []struct {
		name  string
		value int
		want  int
		fired []slider.Transition
	}{
		{name: "inside", value: 75, want: 75},
		{name: "above", value: 150, want: 100, fired: []slider.Transition{slider.ReachedMaximum}},
		{name: "below", value: -5, want: 0, fired: []slider.Transition{slider.ReachedMinimum}},
		{name: "unchanged", value: 50, want: 50},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, effects := newSlider(t).SetValue(tc.value)
			require.Equal(t, tc.want, s.Value())
			require.Equal(t, tc.want, s.Position())
			require.Equal(t, tc.fired, slider.Transitions(effects))
		})
	}
}

func TestSetRange(t *testing.T) {
	s, effects := newSlider(t).SetRange(60, 80)
	require.Equal(t, 60, s.Value())
	require.Equal(t, []slider.Transition{slider.ReachedMinimum}, slider.Transitions(effects))

	s, _ = s.SetRange(10, 5)
	require.Equal(t, 10, s.Minimum())
	require.Equal(t, 10, s.Maximum())
	require.Equal(t, 10, s.Value())

	_, effects = s.SetRange(10, 10)
	require.Empty(t, effects)
}

func TestTriggerAction(t *testing.T) {
	tests := []struct {
		action slider.Action
		want   int
	}{
		{action: slider.ActionSingleStepAdd, want: 51},
		{action: slider.ActionSingleStepSub, want: 49},
		{action: slider.ActionPageStepAdd, want: 60},
		{action: slider.ActionPageStepSub, want: 40},
		{action: slider.ActionToMinimum, want: 0},
		{action: slider.ActionToMaximum, want: 100},
		{action: slider.ActionMove, want: 50},
		{action: slider.ActionNone, want: 50},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			s, _ := newSlider(t).TriggerAction(tc.action)
			require.Equal(t, tc.want, s.Value())
		})
	}

	s := newSlider(t).SetSteps(7, 33)
	s, _ = s.TriggerAction(slider.ActionPageStepAdd)
	require.Equal(t, 83, s.Value())
	s, _ = s.TriggerAction(slider.ActionPageStepAdd)
	require.Equal(t, 100, s.Value())
}

func TestInvertedPageStep(t *testing.T) {
	s := newSlider(t, func(opts *slider.Options) { opts.Inverted = true })

	// The right end of an inverted track is the minimum.
	s, _ = s.Update(slider.Press(image.Pt(190, 30)))
	require.Equal(t, slider.ActionPageStepSub, s.RepeatAction())
	require.Equal(t, 40, s.Value())
}
