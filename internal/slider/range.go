// Package slider implements the interaction engine of a slider control: mapping pointer
// coordinates to values, the pointer state machine, the edge triggered visual transitions and
// the projection of that state into paint calls. It knows nothing about any ui toolkit, hosts feed
// it Events and act on the returned Effects.
package slider

import (
	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

func clamp[T Number](v, low, high T) T {
	if high < low {
		low, high = high, low
	}

	return min(high, max(low, v))
}

// Range holds the logical state of the slider. Position is the provisional value while the thumb
// is being dragged, it equals Value otherwise.
type Range struct {
	Minimum  int
	Maximum  int
	Value    int
	Position int
}

// NewRange returns a Range with value and position clamped into [minimum, maximum]. Reversed bounds
// are swapped.
func NewRange(minimum int, maximum int, value int) Range {
	if maximum < minimum {
		minimum, maximum = maximum, minimum
	}

	value = clamp(value, minimum, maximum)

	return Range{Minimum: minimum, Maximum: maximum, Value: value, Position: value}
}

func (r Range) Clamp(v int) int {
	return clamp(v, r.Minimum, r.Maximum)
}

// Degenerate reports if there is no room to move, minimum == maximum.
func (r Range) Degenerate() bool {
	return r.Minimum == r.Maximum
}

// Span is maximum - minimum, widened so that extreme int ranges do not overflow.
func (r Range) Span() int64 {
	return int64(r.Maximum) - int64(r.Minimum)
}

// Orientation selects which pointer axis maps onto the track.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		fallthrough
	default:
		return "horizontal"
	}
}

// ParseOrientation accepts "horizontal"/"h" and "vertical"/"v". Anything else is horizontal.
func ParseOrientation(value string) Orientation {
	switch value {
	case "vertical", "v", "Vertical":
		return Vertical
	default:
		return Horizontal
	}
}

// Action is an operation on the slider position, the same vocabulary the repeat timer is armed with.
type Action int

const (
	ActionNone Action = iota
	ActionSingleStepAdd
	ActionSingleStepSub
	ActionPageStepAdd
	ActionPageStepSub
	ActionToMinimum
	ActionToMaximum
	ActionMove
)

func (a Action) String() string {
	switch a {
	case ActionSingleStepAdd:
		return "single_step_add"
	case ActionSingleStepSub:
		return "single_step_sub"
	case ActionPageStepAdd:
		return "page_step_add"
	case ActionPageStepSub:
		return "page_step_sub"
	case ActionToMinimum:
		return "to_minimum"
	case ActionToMaximum:
		return "to_maximum"
	case ActionMove:
		return "move"
	case ActionNone:
		fallthrough
	default:
		return "none"
	}
}

// target returns the position the action moves to from position, clamped into the range.
func (a Action) target(r Range, position int, singleStep int, pageStep int) int {
	next := int64(position)

	switch a {
	case ActionSingleStepAdd:
		next += int64(singleStep)
	case ActionSingleStepSub:
		next -= int64(singleStep)
	case ActionPageStepAdd:
		next += int64(pageStep)
	case ActionPageStepSub:
		next -= int64(pageStep)
	case ActionToMinimum:
		next = int64(r.Minimum)
	case ActionToMaximum:
		next = int64(r.Maximum)
	case ActionMove, ActionNone:
	}

	return int(clamp(next, int64(r.Minimum), int64(r.Maximum)))
}
