package slider

import "image"

// EventKind enumerates the pointer notifications the state machine consumes.
type EventKind int

const (
	EventPress EventKind = iota
	EventMove
	EventRelease
	EventLeave
	// EventCaptureLost is delivered when the host takes the pointer away mid gesture.
	EventCaptureLost
	// EventRepeat is a tick of the auto repeat timer, carrying the tag it was armed with.
	EventRepeat
)

func (k EventKind) String() string {
	switch k {
	case EventPress:
		return "press"
	case EventMove:
		return "move"
	case EventRelease:
		return "release"
	case EventLeave:
		return "leave"
	case EventCaptureLost:
		return "capture_lost"
	case EventRepeat:
		return "repeat"
	default:
		return "unknown"
	}
}

// Event is a single host notification. Pos is widget local and only meaningful for press and move.
type Event struct {
	Kind EventKind
	Pos  image.Point
	Tag  uint64
}

func Press(pos image.Point) Event   { return Event{Kind: EventPress, Pos: pos} }
func Move(pos image.Point) Event    { return Event{Kind: EventMove, Pos: pos} }
func Release(pos image.Point) Event { return Event{Kind: EventRelease, Pos: pos} }
func Leave() Event                  { return Event{Kind: EventLeave} }
func CaptureLost() Event            { return Event{Kind: EventCaptureLost} }
func Repeat(tag uint64) Event       { return Event{Kind: EventRepeat, Tag: tag} }

// State is the conceptual interaction state, derived from the flags.
type State int

const (
	StateIdle State = iota
	StateHovering
	StateDragging
	StateStepping
)

func (s State) String() string {
	switch s {
	case StateHovering:
		return "hovering"
	case StateDragging:
		return "dragging"
	case StateStepping:
		return "stepping"
	case StateIdle:
		fallthrough
	default:
		return "idle"
	}
}

func (s Slider) State() State {
	switch {
	case s.flags.Pressed:
		return StateDragging
	case s.flags.Stepping:
		return StateStepping
	case s.hovered:
		return StateHovering
	default:
		return StateIdle
	}
}

// Update is the transition function of the interaction state machine. Events that do not apply to
// the current state, a release without a press or a stale repeat tick, return no effects.
func (s Slider) Update(event Event) (Slider, []Effect) {
	var out effects

	switch event.Kind {
	case EventPress:
		s.press(event.Pos, &out)
	case EventMove:
		s.move(event.Pos, &out)
	case EventRelease:
		s.release(&out)
	case EventLeave:
		s.leave(&out)
	case EventCaptureLost:
		s.releaseCapture(&out)
	case EventRepeat:
		s.repeat(event.Tag, &out)
	}

	return s, out
}

// HitThumb reports if p is on the thumb. The test uses the fixed hit square and never the halo.
func (s Slider) HitThumb(p image.Point) bool {
	return p.In(s.geometry.ThumbHitRect(s.rng))
}

func (s *Slider) press(pos image.Point, out *effects) {
	if !s.enabled || s.flags.Pressed || s.flags.Stepping {
		return
	}

	if s.HitThumb(pos) {
		s.setDown(true, out)

		return
	}

	target := s.geometry.ValueFromPosition(s.rng, pos)

	if !s.pageStepMode {
		s.movePosition(target, out)

		if s.tracking {
			s.setValue(s.rng.Position, out)
		}

		out.add(CollapseHalo{})
		s.setDown(true, out)

		return
	}

	s.flags.Stepping = true
	s.flags.StepTarget = target
	s.flags.HasStepTarget = true

	action := ActionPageStepSub
	if target > s.rng.Position {
		action = ActionPageStepAdd
	}

	s.trigger(action, out)
	s.armRepeat(action, out)
	out.redraw()
}

func (s *Slider) move(pos image.Point, out *effects) {
	if !s.enabled {
		return
	}

	if s.flags.Pressed {
		s.setSliderPosition(s.geometry.ValueFromPosition(s.rng, pos), out)

		return
	}

	if hoverTrack := pos.In(s.geometry.TrackHitRect()); hoverTrack != s.flags.HoverTrack {
		s.flags.HoverTrack = hoverTrack
		out.redraw()
	}

	if hoverThumb := s.HitThumb(pos); hoverThumb != s.flags.HoverThumb {
		s.flags.HoverThumb = hoverThumb
		out.redraw()
	}

	s.setHovered(s.flags.Hovered(), out)
}

func (s *Slider) release(out *effects) {
	switch {
	case s.flags.Pressed:
		s.setDown(false, out)
	case s.flags.Stepping:
		s.stopStepping(out)
	}
}

func (s *Slider) leave(out *effects) {
	s.clearHover(out)

	if s.flags.Stepping {
		s.stopStepping(out)
	}
}

// releaseCapture ends whatever gesture is in progress.
func (s *Slider) releaseCapture(out *effects) {
	if s.flags.Pressed {
		s.setDown(false, out)
	}

	if s.flags.Stepping {
		s.stopStepping(out)
	}
}

func (s *Slider) repeat(tag uint64, out *effects) {
	if !s.flags.Stepping || s.repeatAction == ActionNone || tag != s.repeatTag {
		return
	}

	s.trigger(s.repeatAction, out)
	out.add(ScheduleRepeat{Action: s.repeatAction, Tag: s.repeatTag, After: s.repeatInterval})
}

func (s *Slider) setDown(down bool, out *effects) {
	if down == s.flags.Pressed {
		return
	}

	s.flags.Pressed = down

	if down {
		out.add(Pressed{})
	} else {
		out.add(Released{})
		s.setValue(s.rng.Position, out)
	}

	out.redraw()
}

func (s *Slider) setHovered(hovered bool, out *effects) {
	if hovered == s.hovered {
		return
	}

	s.hovered = hovered
	out.add(Hovered{Hovered: hovered})
}

func (s *Slider) clearHover(out *effects) {
	if s.flags.HoverTrack || s.flags.HoverThumb {
		s.flags.HoverTrack = false
		s.flags.HoverThumb = false
		out.redraw()
	}

	s.setHovered(false, out)
}

// armRepeat replaces any armed timer. Every arm gets a fresh tag so ticks from an older timer no
// longer match.
func (s *Slider) armRepeat(action Action, out *effects) {
	s.cancelRepeat(out)

	s.repeatTag++
	s.repeatAction = action
	out.add(ScheduleRepeat{Action: action, Tag: s.repeatTag, After: s.repeatDelay})
}

func (s *Slider) cancelRepeat(out *effects) {
	if s.repeatAction == ActionNone {
		return
	}

	out.add(CancelRepeat{Tag: s.repeatTag})
	s.repeatAction = ActionNone
	s.repeatTag++
}

func (s *Slider) stopStepping(out *effects) {
	s.cancelRepeat(out)
	s.flags.Stepping = false
	s.flags.StepTarget = 0
	s.flags.HasStepTarget = false
	out.redraw()
}
