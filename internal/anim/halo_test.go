package anim_test

import (
	"image"
	"testing"
	"time"

	"github.com/leighmacdonald/slidertui/internal/anim"
	"github.com/leighmacdonald/slidertui/internal/slider"
	"github.com/stretchr/testify/require"
)

func testSlider() slider.Slider {
	opts := slider.DefaultOptions()
	opts.Maximum = 100
	opts.Value = 50
	opts.Size = image.Pt(260, 60)

	return slider.New(opts)
}

func TestHaloHoverTween(t *testing.T) {
	halo := anim.NewHalo(anim.Config{Duration: 100 * time.Millisecond, HoverHalo: 8, PressedHalo: 16})
	halo.Apply([]slider.Effect{slider.Hovered{Hovered: true}})

	require.True(t, halo.Animating())
	require.Equal(t, 8, halo.Target())
	require.Equal(t, 0, halo.Appearance().Halo)

	require.True(t, halo.Step(50*time.Millisecond))
	mid := halo.Appearance().Halo
	require.Greater(t, mid, 0)
	require.Less(t, mid, 8)

	require.False(t, halo.Step(50*time.Millisecond))
	require.Equal(t, 8, halo.Appearance().Halo)
	require.False(t, halo.Step(time.Second))
}

func TestHaloPressAndCollapse(t *testing.T) {
	halo := anim.NewHalo(anim.Config{Duration: 0, HoverHalo: 2, PressedHalo: 4})

	halo.Apply([]slider.Effect{slider.Hovered{Hovered: true}, slider.Pressed{}})
	halo.Step(time.Millisecond)
	require.Equal(t, 4, halo.Appearance().Halo)

	halo.Apply([]slider.Effect{slider.Released{}})
	halo.Step(time.Millisecond)
	require.Equal(t, 2, halo.Appearance().Halo)

	halo.Apply([]slider.Effect{slider.CollapseHalo{}})
	require.Equal(t, 0, halo.Appearance().Halo)
	require.True(t, halo.Animating(), "collapse snaps the current size, the hover target remains")
}

func TestHaloFollowsBus(t *testing.T) {
	bus := slider.NewBus()
	halo := anim.NewHalo(anim.DefaultConfig())
	halo.Attach(bus)
	require.Equal(t, 1, bus.Len())

	s := testSlider()
	halo.Sync(s)
	require.False(t, halo.Appearance().Hollow)

	s, effects := s.SetValue(0)
	bus.PublishEffects(effects)
	require.True(t, halo.Appearance().Hollow)

	_, effects = s.SetValue(3)
	bus.PublishEffects(effects)
	require.False(t, halo.Appearance().Hollow)

	halo.Apply([]slider.Effect{slider.Hovered{Hovered: true}})
	bus.Publish(slider.Disabled)
	require.Equal(t, 0, halo.Target())

	halo.Attach(bus)
	require.Equal(t, 1, bus.Len())
	halo.Detach()
	require.Equal(t, 0, bus.Len())
}

func TestHaloSync(t *testing.T) {
	s, _ := testSlider().SetValue(0)
	s, _ = s.SetEnabled(false)

	halo := anim.NewHalo(anim.DefaultConfig())
	halo.Apply([]slider.Effect{slider.Hovered{Hovered: true}})
	halo.Sync(s)

	require.True(t, halo.Appearance().Hollow)
	require.Equal(t, 0, halo.Appearance().Halo)
	require.False(t, halo.Animating())
}
