// Package anim owns the animated part of the slider look. It listens to the transition bus and to
// the hover/press effects and tweens the thumb halo between its rest, hover and pressed sizes.
package anim

import (
	"time"

	"github.com/leighmacdonald/slidertui/internal/slider"
)

const (
	DefaultDuration    = 150 * time.Millisecond
	DefaultHoverHalo   = 2
	DefaultPressedHalo = 4
)

type Config struct {
	Duration    time.Duration
	HoverHalo   int
	PressedHalo int
}

func DefaultConfig() Config {
	return Config{
		Duration:    DefaultDuration,
		HoverHalo:   DefaultHoverHalo,
		PressedHalo: DefaultPressedHalo,
	}
}

// Halo tweens the halo size and tracks the hollow thumb shown at the minimum. It is driven from the
// ui goroutine only.
type Halo struct {
	config   Config
	current  float64
	from     float64
	target   float64
	elapsed  time.Duration
	hovered  bool
	pressed  bool
	disabled bool
	hollow   bool
	detach   func()
}

func NewHalo(config Config) *Halo {
	if config.Duration < 0 {
		config.Duration = 0
	}

	return &Halo{config: config}
}

// Attach subscribes the halo to bus. Calling it again moves the subscription.
func (h *Halo) Attach(bus *slider.Bus) {
	h.Detach()
	h.detach = bus.Subscribe(h.Observe)
}

func (h *Halo) Detach() {
	if h.detach != nil {
		h.detach()
		h.detach = nil
	}
}

// Sync sets the hollow state from the current value without animating, used for the first frame
// and after the range was replaced.
func (h *Halo) Sync(s slider.Slider) {
	h.hollow = s.Value() == s.Minimum()
	h.disabled = !s.Enabled()
	h.retarget()
	h.snap()
}

// Observe handles a published transition.
func (h *Halo) Observe(transition slider.Transition) {
	switch transition {
	case slider.ReachedMinimum:
		h.hollow = true
	case slider.LeftMinimum:
		h.hollow = false
	case slider.Disabled:
		h.disabled = true
		h.pressed = false
		h.hovered = false
	case slider.Enabled:
		h.disabled = false
	case slider.ReachedMaximum:
	}

	h.retarget()
}

// Apply consumes the hover and press signals in effects. Transitions are ignored here, they
// arrive through the bus.
func (h *Halo) Apply(effects []slider.Effect) {
	for _, effect := range effects {
		switch e := effect.(type) {
		case slider.Hovered:
			h.hovered = e.Hovered
		case slider.Pressed:
			h.pressed = true
		case slider.Released:
			h.pressed = false
		case slider.CollapseHalo:
			h.current = 0
			h.from = 0
			h.target = 0
			h.elapsed = 0
		}
	}

	h.retarget()
}

// Step advances the tween by dt and reports whether more frames are needed.
func (h *Halo) Step(dt time.Duration) bool {
	if !h.Animating() {
		return false
	}

	h.elapsed += dt
	if h.config.Duration == 0 || h.elapsed >= h.config.Duration {
		h.snap()

		return false
	}

	progress := float64(h.elapsed) / float64(h.config.Duration)
	h.current = h.from + (h.target-h.from)*easeOutCubic(progress)

	return true
}

func (h *Halo) Animating() bool {
	return h.current != h.target
}

func (h *Halo) Target() int {
	return int(h.target)
}

func (h *Halo) Appearance() slider.Appearance {
	return slider.Appearance{
		Halo:   int(h.current + 0.5),
		Hollow: h.hollow,
	}
}

func (h *Halo) retarget() {
	var target float64

	switch {
	case h.disabled:
		target = 0
	case h.pressed:
		target = float64(h.config.PressedHalo)
	case h.hovered:
		target = float64(h.config.HoverHalo)
	}

	if target == h.target {
		return
	}

	h.from = h.current
	h.target = target
	h.elapsed = 0
}

func (h *Halo) snap() {
	h.current = h.target
	h.from = h.target
	h.elapsed = 0
}

func easeOutCubic(t float64) float64 {
	t = 1 - t

	return 1 - t*t*t
}
