package slider

import "time"

// Effect is an instruction from the state machine to its host. Hosts type switch on the concrete
// types below, unknown effects can be ignored.
type Effect interface {
	effect()
}

// Redraw asks the host to repaint. At most one is emitted per Update.
type Redraw struct{}

// Hovered reports the combined track/thumb hover signal, only when it flips.
type Hovered struct {
	Hovered bool
}

// Pressed is emitted when the slider goes down (a drag starts).
type Pressed struct{}

// Released is emitted when the slider comes back up and the drag position is committed.
type Released struct{}

type PositionChanged struct {
	Position int
}

type ValueChanged struct {
	Old int
	New int
}

type ActionTriggered struct {
	Action Action
}

// ScheduleRepeat asks the host to deliver an EventRepeat carrying Tag after the delay. A tick that
// arrives after the repeat was cancelled or re-armed is ignored, so hosts that cannot cancel
// timers may simply let them fire.
type ScheduleRepeat struct {
	Action Action
	Tag    uint64
	After  time.Duration
}

// CancelRepeat tells the host the timer armed with Tag is dead.
type CancelRepeat struct {
	Tag uint64
}

// CollapseHalo asks the animation layer to drop any hover halo immediately.
type CollapseHalo struct{}

type TransitionFired struct {
	Transition Transition
}

type OrientationChanged struct {
	Orientation Orientation
}

func (Redraw) effect()             {}
func (Hovered) effect()            {}
func (Pressed) effect()            {}
func (Released) effect()           {}
func (PositionChanged) effect()    {}
func (ValueChanged) effect()       {}
func (ActionTriggered) effect()    {}
func (ScheduleRepeat) effect()     {}
func (CancelRepeat) effect()       {}
func (CollapseHalo) effect()       {}
func (TransitionFired) effect()    {}
func (OrientationChanged) effect() {}

type effects []Effect

func (e *effects) add(effect Effect) {
	*e = append(*e, effect)
}

func (e *effects) redraw() {
	for _, existing := range *e {
		if _, ok := existing.(Redraw); ok {
			return
		}
	}

	*e = append(*e, Redraw{})
}

// Transitions filters the fired transitions out of effects, in order.
func Transitions(list []Effect) []Transition {
	var out []Transition

	for _, effect := range list {
		if fired, ok := effect.(TransitionFired); ok {
			out = append(out, fired.Transition)
		}
	}

	return out
}
